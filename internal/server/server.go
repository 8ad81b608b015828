package server

import (
	"errors"
	"strconv"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/robfig/cron/v3"

	"github.com/tronwatch/usdt-backend/internal/monitoring"
	"github.com/tronwatch/usdt-backend/internal/store"
	pgstore "github.com/tronwatch/usdt-backend/internal/store/postgres"
	"github.com/tronwatch/usdt-backend/internal/telemetry"
	"github.com/tronwatch/usdt-backend/internal/transport/http"
	"github.com/tronwatch/usdt-backend/internal/trongrid"
	"github.com/tronwatch/usdt-backend/internal/utils/config"
	"github.com/tronwatch/usdt-backend/internal/utils/logger"
)

func Init() {
	appConfig := config.New()
	logger := logger.New(appConfig.Environment)

	db := pgstore.New(appConfig, logger)

	s := store.New()
	tronRpc := trongrid.New(appConfig, logger)
	telemetrySvc := telemetry.New(db, s, appConfig, logger, tronRpc)

	metricsRegistry := prometheus.NewRegistry()
	httpMetrics := monitoring.NewHTTPMetrics()
	httpMetrics.MustRegister(metricsRegistry)

	if appConfig.MonitorPeriod != "" {
		c := cron.New()
		_, err := c.AddFunc(appConfig.MonitorPeriod, func() {
			result, err := telemetrySvc.RunMonitorCycle()
			if err != nil {
				if errors.Is(err, telemetry.ErrNoActiveWallets) {
					httpMetrics.RecordMonitorCycle("skipped")
					return
				}
				httpMetrics.RecordMonitorCycle("error")
				logger.Error("[Init][RunMonitorCycle] scheduled monitor cycle failed", map[string]string{
					"error": err.Error(),
				})
				return
			}
			httpMetrics.RecordMonitorCycle("success")
			logger.Info("[Init][RunMonitorCycle] scheduled monitor cycle completed", map[string]string{
				"newTransactions": strconv.Itoa(result.NewTransactions),
			})
		})
		if err != nil {
			logger.Error("[Init][AddFunc] failed to schedule monitor cycle", map[string]string{
				"error":  err.Error(),
				"period": appConfig.MonitorPeriod,
			})
		} else {
			c.Start()
		}
	}

	httpServer := http.NewHttpServer(appConfig, logger, telemetrySvc, db, metricsRegistry, httpMetrics)

	httpServer.Run(":" + appConfig.ApiServer.Port)
}
