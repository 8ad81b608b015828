package telemetry

import (
	"gorm.io/gorm"

	"github.com/tronwatch/usdt-backend/internal/store"
	"github.com/tronwatch/usdt-backend/internal/trongrid"
	"github.com/tronwatch/usdt-backend/internal/utils/config"
	"github.com/tronwatch/usdt-backend/internal/utils/logger"
)

type Telemetry struct {
	db        *gorm.DB
	store     *store.Store
	appConfig *config.AppConfig
	logger    *logger.Logger
	tronRpc   trongrid.ITronGrid
}

func New(db *gorm.DB, store *store.Store, appConfig *config.AppConfig, logger *logger.Logger, tronRpc trongrid.ITronGrid) ITelemetry {
	return &Telemetry{
		db:        db,
		store:     store,
		appConfig: appConfig,
		logger:    logger,
		tronRpc:   tronRpc,
	}
}
