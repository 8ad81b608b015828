package transaction

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"gorm.io/gorm"

	"github.com/tronwatch/usdt-backend/internal/model"
	txstore "github.com/tronwatch/usdt-backend/internal/store/transaction"
	"github.com/tronwatch/usdt-backend/internal/telemetry"
	"github.com/tronwatch/usdt-backend/internal/utils/logger"
)

type transactionHandler struct {
	db        *gorm.DB
	store     txstore.IStore
	telemetry telemetry.ITelemetry
	logger    *logger.Logger
}

// New creates a new instance of the transaction handler
func New(db *gorm.DB, store txstore.IStore, telemetry telemetry.ITelemetry, logger *logger.Logger) IHandler {
	return &transactionHandler{
		db:        db,
		store:     store,
		telemetry: telemetry,
		logger:    logger,
	}
}

// GetTransactions godoc
// @Summary List all observed transfers, newest first
// @Tags transaction
// @Produce json
// @Success 200 {array} model.Transaction
// @Router /transactions [get]
func (h *transactionHandler) GetTransactions(c *gin.Context) {
	h.listTransactions(c, "")
}

// GetOutgoingTransactions godoc
// @Summary List outgoing transfers, newest first
// @Tags transaction
// @Produce json
// @Success 200 {array} model.Transaction
// @Router /transactions/outgoing [get]
func (h *transactionHandler) GetOutgoingTransactions(c *gin.Context) {
	h.listTransactions(c, model.TransactionTypeOutgoing)
}

// GetIncomingTransactions godoc
// @Summary List incoming transfers, newest first
// @Tags transaction
// @Produce json
// @Success 200 {array} model.Transaction
// @Router /transactions/incoming [get]
func (h *transactionHandler) GetIncomingTransactions(c *gin.Context) {
	h.listTransactions(c, model.TransactionTypeIncoming)
}

func (h *transactionHandler) listTransactions(c *gin.Context, txType model.TransactionType) {
	txs, err := h.store.List(h.db, txType)
	if err != nil {
		h.logger.Error("[listTransactions][List]", map[string]string{
			"error": err.Error(),
			"type":  string(txType),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch transactions"})
		return
	}

	c.JSON(http.StatusOK, txs)
}

// GetDuplicateTransactions godoc
// @Summary List outgoing transfers that look like accidental re-sends
// @Tags transaction
// @Produce json
// @Success 200 {array} model.Transaction
// @Router /duplicates [get]
func (h *transactionHandler) GetDuplicateTransactions(c *gin.Context) {
	duplicates, err := h.telemetry.GetDuplicateTransactions()
	if err != nil {
		h.logger.Error("[GetDuplicateTransactions]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to fetch duplicates"})
		return
	}

	c.JSON(http.StatusOK, duplicates)
}

// UpdateNote godoc
// @Summary Set the note on a transaction (empty allowed)
// @Tags transaction
// @Accept json
// @Produce json
// @Param id path int true "transaction id"
// @Param request body UpdateNoteRequest true "note text"
// @Success 200 {object} map[string]string
// @Router /transactions/{id}/note [put]
func (h *transactionHandler) UpdateNote(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}

	var req UpdateNoteRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid request body"})
		return
	}

	if err := h.store.UpdateNote(h.db, id, strings.TrimSpace(req.Note)); err != nil {
		h.logger.Error("[UpdateNote][UpdateNote]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update note"})
		return
	}

	c.JSON(http.StatusOK, gin.H{"message": "Note updated successfully!"})
}

// ToggleComplete godoc
// @Summary Toggle the completion flag on a transaction
// @Tags transaction
// @Produce json
// @Param id path int true "transaction id"
// @Success 200 {object} map[string]string
// @Router /transactions/{id}/complete [put]
func (h *transactionHandler) ToggleComplete(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid transaction id"})
		return
	}

	tx, err := h.store.GetByID(h.db, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			// longstanding client contract: unknown ids answer 200 with a
			// message, not an HTTP error
			c.JSON(http.StatusOK, gin.H{"message": "transaction not found"})
			return
		}
		h.logger.Error("[ToggleComplete][GetByID]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}

	completed := !tx.IsCompleted
	if err := h.store.UpdateCompleted(h.db, id, completed); err != nil {
		h.logger.Error("[ToggleComplete][UpdateCompleted]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Failed to update transaction"})
		return
	}

	message := "Transaction marked as pending!"
	if completed {
		message = "Transaction marked as completed!"
	}
	c.JSON(http.StatusOK, gin.H{"message": message})
}
