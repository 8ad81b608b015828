package monitor

import (
	"fmt"
	"net/http"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"

	"github.com/tronwatch/usdt-backend/internal/telemetry"
	"github.com/tronwatch/usdt-backend/internal/utils/logger"
)

type monitorHandler struct {
	telemetry telemetry.ITelemetry
	logger    *logger.Logger
}

// New creates a new instance of the monitor handler
func New(telemetry telemetry.ITelemetry, logger *logger.Logger) IHandler {
	return &monitorHandler{
		telemetry: telemetry,
		logger:    logger,
	}
}

// Monitor godoc
// @Summary Run one ingestion cycle over all active wallets
// @Tags monitor
// @Produce json
// @Success 200 {object} MonitorResponse
// @Router /monitor [post]
func (h *monitorHandler) Monitor(c *gin.Context) {
	result, err := h.telemetry.RunMonitorCycle()
	if err != nil {
		if errors.Is(err, telemetry.ErrNoActiveWallets) {
			c.JSON(http.StatusBadRequest, gin.H{"error": "no active wallets to monitor"})
			return
		}
		h.logger.Error("[Monitor][RunMonitorCycle]", map[string]string{
			"error": err.Error(),
		})
		c.JSON(http.StatusInternalServerError, gin.H{"error": "Monitoring failed"})
		return
	}

	message := "Monitoring complete. 0 new transactions found."
	if result.NewTransactions > 0 {
		message = fmt.Sprintf("%d new transactions found! Total: %d", result.NewTransactions, result.TotalTransactions)
	}

	c.JSON(http.StatusOK, MonitorResponse{
		Message:           message,
		TransactionsFound: result.TotalTransactions,
		NewTransactions:   result.NewTransactions,
		WalletsMonitored:  result.WalletsMonitored,
	})
}
