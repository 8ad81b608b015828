package transaction

import (
	"gorm.io/gorm"

	"github.com/tronwatch/usdt-backend/internal/model"
)

type IStore interface {
	// CreateIfNew inserts a transaction keyed by hash. Returns false when a
	// transaction with the same hash already exists; a concurrent insert
	// losing the race on the unique index is reported the same way.
	CreateIfNew(db *gorm.DB, tx *model.Transaction) (bool, error)

	// List returns transactions ordered by timestamp descending, optionally
	// filtered by direction (empty txType means all).
	List(db *gorm.DB, txType model.TransactionType) ([]model.Transaction, error)

	// Count returns the grand total of persisted transactions
	Count(db *gorm.DB) (int64, error)

	// GetByID fetches one transaction
	GetByID(db *gorm.DB, id int) (*model.Transaction, error)

	// UpdateNote sets the note field (empty string allowed)
	UpdateNote(db *gorm.DB, id int, note string) error

	// UpdateCompleted sets the completion flag
	UpdateCompleted(db *gorm.DB, id int, completed bool) error
}
