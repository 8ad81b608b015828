package telemetry

import (
	"github.com/pkg/errors"

	"github.com/tronwatch/usdt-backend/internal/model"
)

// ErrNoActiveWallets signals that a monitor cycle had nothing to do. It is
// an expected condition, not a system fault: the caller recovers by
// registering a wallet.
var ErrNoActiveWallets = errors.New("no active wallets to monitor")

// MonitorResult summarizes one ingestion cycle.
type MonitorResult struct {
	NewTransactions   int
	TotalTransactions int64
	WalletsMonitored  int
}

type ITelemetry interface {
	// RunMonitorCycle fetches transfer candidates for every active wallet,
	// deduplicates them against persisted history by hash and persists the
	// remainder. Returns ErrNoActiveWallets when the registry is empty; any
	// other error is a persistence failure fatal to the whole cycle.
	RunMonitorCycle() (*MonitorResult, error)

	// GetDuplicateTransactions flags outgoing transfers that look like
	// accidental re-sends.
	GetDuplicateTransactions() ([]model.Transaction, error)
}
