package telemetry

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/tronwatch/usdt-backend/internal/model"
	"github.com/tronwatch/usdt-backend/internal/trongrid"
)

// transferPageLimit is the fixed page size requested per wallet and cycle.
const transferPageLimit = 50

func (t *Telemetry) RunMonitorCycle() (*MonitorResult, error) {
	t.logger.Info("[RunMonitorCycle] Start monitoring TRC20 transfers...")

	wallets, err := t.store.Wallet.GetActiveWallets(t.db)
	if err != nil {
		t.logger.Error("[RunMonitorCycle][GetActiveWallets]", map[string]string{
			"error": err.Error(),
		})
		return nil, errors.Wrap(err, "failed to load active wallets")
	}
	if len(wallets) == 0 {
		return nil, ErrNoActiveWallets
	}

	newCount := 0
	for _, wallet := range wallets {
		t.logger.Info(fmt.Sprintf("[RunMonitorCycle] Monitoring wallet: %s", wallet.Address))

		// The fetch completes in full (or degrades to synthetic data) before
		// any write is attempted; no store access spans the network call.
		transfers := t.tronRpc.GetTRC20Transfers(wallet.Address, transferPageLimit)

		for _, transfer := range transfers {
			tx := newTransaction(transfer, wallet)

			inserted, err := t.store.Transaction.CreateIfNew(t.db, tx)
			if err != nil {
				t.logger.Error("[RunMonitorCycle][CreateIfNew]", map[string]string{
					"error": err.Error(),
					"hash":  tx.Hash,
				})
				return nil, errors.Wrap(err, "failed to persist transaction")
			}
			if inserted {
				newCount++
				t.logger.Info(fmt.Sprintf("New transaction: %s USDT (%s) - %s", tx.Amount, tx.Type, tx.Hash))
			}
		}
	}

	total, err := t.store.Transaction.Count(t.db)
	if err != nil {
		t.logger.Error("[RunMonitorCycle][Count]", map[string]string{
			"error": err.Error(),
		})
		return nil, errors.Wrap(err, "failed to count transactions")
	}

	t.logger.Info(fmt.Sprintf("[RunMonitorCycle] Done. %d new transactions, %d total, %d wallets", newCount, total, len(wallets)))

	return &MonitorResult{
		NewTransactions:   newCount,
		TotalTransactions: total,
		WalletsMonitored:  len(wallets),
	}, nil
}

// newTransaction classifies a candidate transfer relative to the monitored
// wallet. The from-address check wins, so a self-transfer is outgoing.
// Direction is computed once here and never recomputed.
func newTransaction(transfer trongrid.Transfer, wallet model.Wallet) *model.Transaction {
	txType := model.TransactionTypeIncoming
	if transfer.FromAddress == wallet.Address {
		txType = model.TransactionTypeOutgoing
	}

	walletID := wallet.ID
	return &model.Transaction{
		Hash:        transfer.Hash,
		FromAddress: transfer.FromAddress,
		ToAddress:   transfer.ToAddress,
		Amount:      transfer.Amount,
		Timestamp:   transfer.Timestamp,
		Type:        txType,
		BlockNumber: transfer.BlockNumber,
		WalletID:    &walletID,
	}
}
