package handler

import (
	"github.com/prometheus/client_golang/prometheus"
	"gorm.io/gorm"

	"github.com/tronwatch/usdt-backend/internal/handler/metrics"
	"github.com/tronwatch/usdt-backend/internal/handler/monitor"
	"github.com/tronwatch/usdt-backend/internal/handler/transaction"
	"github.com/tronwatch/usdt-backend/internal/handler/wallet"
	txstore "github.com/tronwatch/usdt-backend/internal/store/transaction"
	walletstore "github.com/tronwatch/usdt-backend/internal/store/wallet"
	"github.com/tronwatch/usdt-backend/internal/telemetry"
	"github.com/tronwatch/usdt-backend/internal/utils/config"
	"github.com/tronwatch/usdt-backend/internal/utils/logger"
)

type Handler struct {
	WalletHandler      wallet.IHandler
	TransactionHandler transaction.IHandler
	MonitorHandler     monitor.IHandler
	MetricsHandler     *metrics.MetricsHandler
}

func New(appConfig *config.AppConfig, logger *logger.Logger,
	telemetrySvc telemetry.ITelemetry,
	db *gorm.DB,
	metricsRegistry *prometheus.Registry) *Handler {
	return &Handler{
		WalletHandler:      wallet.New(db, walletstore.New(), logger),
		TransactionHandler: transaction.New(db, txstore.New(), telemetrySvc, logger),
		MonitorHandler:     monitor.New(telemetrySvc, logger),
		MetricsHandler:     metrics.NewMetricsHandler(metricsRegistry),
	}
}
