package http

import (
	"net/http"

	"github.com/gin-gonic/gin"

	"github.com/tronwatch/usdt-backend/internal/handler"
	"github.com/tronwatch/usdt-backend/internal/utils/config"
	"github.com/tronwatch/usdt-backend/internal/utils/logger"
	"github.com/tronwatch/usdt-backend/web"
)

func loadV1Routes(r *gin.Engine, h *handler.Handler, appConfig *config.AppConfig, logger *logger.Logger) {
	api := r.Group("/api")

	wallets := api.Group("/wallets")
	{
		wallets.GET("", h.WalletHandler.GetWallets)
		wallets.POST("", h.WalletHandler.CreateWallet)
		wallets.DELETE("/:id", h.WalletHandler.DeleteWallet)
	}

	api.POST("/monitor", h.MonitorHandler.Monitor)

	transactions := api.Group("/transactions")
	{
		transactions.GET("", h.TransactionHandler.GetTransactions)
		transactions.GET("/outgoing", h.TransactionHandler.GetOutgoingTransactions)
		transactions.GET("/incoming", h.TransactionHandler.GetIncomingTransactions)
		transactions.PUT("/:id/note", h.TransactionHandler.UpdateNote)
		transactions.PUT("/:id/complete", h.TransactionHandler.ToggleComplete)
	}

	api.GET("/duplicates", h.TransactionHandler.GetDuplicateTransactions)

	r.GET("/metrics", h.MetricsHandler.Handler())

	// health check
	r.GET("/healthz", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"status":  "ok",
			"service": "USDT TRC20 Monitor",
			"version": "1.0.0",
		})
	})

	// embedded frontend
	r.GET("/", func(c *gin.Context) {
		c.Data(http.StatusOK, "text/html; charset=utf-8", web.IndexHTML)
	})
}
