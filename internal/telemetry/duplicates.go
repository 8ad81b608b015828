package telemetry

import (
	"github.com/pkg/errors"

	"github.com/tronwatch/usdt-backend/internal/model"
)

// duplicateWindowMs is the proximity window for the re-send heuristic: one
// hour, in milliseconds. The boundary is inclusive.
const duplicateWindowMs = 3_600_000

func (t *Telemetry) GetDuplicateTransactions() ([]model.Transaction, error) {
	outgoing, err := t.store.Transaction.List(t.db, model.TransactionTypeOutgoing)
	if err != nil {
		t.logger.Error("[GetDuplicateTransactions][List]", map[string]string{
			"error": err.Error(),
		})
		return nil, errors.Wrap(err, "failed to load outgoing transactions")
	}

	return FindDuplicateTransfers(outgoing), nil
}

// FindDuplicateTransfers flags outgoing transfers that look like accidental
// re-sends: same amount sent within an hour of another outgoing transfer.
// Each qualifying transaction appears exactly once, in input order. Only
// outgoing transfers are compared against each other; incoming activity is
// never flagged. O(n^2) over per-wallet volumes of at most a few hundred
// rows; bucket by amount first if that ever stops holding.
func FindDuplicateTransfers(outgoing []model.Transaction) []model.Transaction {
	duplicates := make([]model.Transaction, 0)
	for i := range outgoing {
		for j := range outgoing {
			if i == j {
				continue
			}
			if !outgoing[i].Amount.Equal(outgoing[j].Amount) {
				continue
			}
			diff := outgoing[i].Timestamp - outgoing[j].Timestamp
			if diff < 0 {
				diff = -diff
			}
			if diff <= duplicateWindowMs {
				duplicates = append(duplicates, outgoing[i])
				break
			}
		}
	}
	return duplicates
}
