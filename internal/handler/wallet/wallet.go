package wallet

import (
	"fmt"
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/tronwatch/usdt-backend/internal/model"
	walletstore "github.com/tronwatch/usdt-backend/internal/store/wallet"
	"github.com/tronwatch/usdt-backend/internal/utils/logger"
)

type walletHandler struct {
	db     *gorm.DB
	store  walletstore.IStore
	logger *logger.Logger
}

// New creates a new instance of the wallet registry handler
func New(db *gorm.DB, store walletstore.IStore, logger *logger.Logger) IHandler {
	return &walletHandler{
		db:     db,
		store:  store,
		logger: logger,
	}
}

// GetWallets godoc
// @Summary List monitored wallets
// @Tags wallet
// @Produce json
// @Success 200 {array} model.Wallet
// @Router /wallets [get]
func (h *walletHandler) GetWallets(c *gin.Context) {
	wallets, err := h.store.GetActiveWallets(h.db)
	if err != nil {
		h.logger.Error("[GetWallets][GetActiveWallets]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch wallets"})
		return
	}

	c.JSON(http.StatusOK, wallets)
}

// CreateWallet godoc
// @Summary Register a wallet address for monitoring
// @Tags wallet
// @Accept json
// @Produce json
// @Param request body CreateWalletRequest true "wallet address and optional display name"
// @Success 200 {object} CreateWalletResponse
// @Router /wallets [post]
func (h *walletHandler) CreateWallet(c *gin.Context) {
	var req CreateWalletRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wallet address is required"})
		return
	}

	// validate req
	if err := validator.New().Struct(req); err != nil {
		h.logger.Error("[CreateWallet][Validator]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request"})
		return
	}

	address := strings.TrimSpace(req.Address)
	name := strings.TrimSpace(req.Name)

	if address == "" {
		c.JSON(http.StatusBadRequest, gin.H{"error": "wallet address is required"})
		return
	}
	if name == "" {
		name = defaultWalletName(address)
	}

	_, err := h.store.GetActiveByAddress(h.db, address)
	if err == nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "this wallet is already being monitored"})
		return
	}
	if !errors.Is(err, gorm.ErrRecordNotFound) {
		h.logger.Error("[CreateWallet][GetActiveByAddress]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wallet"})
		return
	}

	wallet, err := h.store.Create(h.db, &model.Wallet{
		Address: address,
		Name:    name,
	})
	if err != nil {
		h.logger.Error("[CreateWallet][Create]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to create wallet"})
		return
	}

	c.JSON(http.StatusOK, CreateWalletResponse{
		Message: "Wallet added successfully!",
		Wallet:  wallet,
	})
}

// DeleteWallet godoc
// @Summary Stop monitoring a wallet (soft delete)
// @Tags wallet
// @Produce json
// @Param id path int true "wallet id"
// @Success 200 {object} map[string]string
// @Router /wallets/{id} [delete]
func (h *walletHandler) DeleteWallet(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid wallet id"})
		return
	}

	if err := h.store.Deactivate(h.db, id); err != nil {
		h.logger.Error("[DeleteWallet][Deactivate]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to remove wallet"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Wallet removed successfully!"})
}

func defaultWalletName(address string) string {
	prefix := address
	if len(prefix) > 8 {
		prefix = prefix[:8]
	}
	return fmt.Sprintf("Wallet %s...", prefix)
}
