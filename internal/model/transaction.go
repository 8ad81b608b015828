package model

import (
	"time"

	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncoming TransactionType = "incoming"
	TransactionTypeOutgoing TransactionType = "outgoing"
)

// Transaction is one observed USDT TRC20 transfer. Hash is the dedup key:
// the unique index on it is what makes ingestion idempotent, including under
// concurrent monitor cycles. Rows are never deleted; only Note and
// IsCompleted are mutable after insert.
type Transaction struct {
	ID          int             `json:"id" gorm:"primaryKey;autoIncrement"`
	Hash        string          `json:"hash" gorm:"type:varchar(128);uniqueIndex;not null"`
	FromAddress string          `json:"from_address" gorm:"type:varchar(64);not null"`
	ToAddress   string          `json:"to_address" gorm:"type:varchar(64);not null"`
	Amount      decimal.Decimal `json:"amount" gorm:"type:decimal(30,6);not null"`
	Timestamp   int64           `json:"timestamp" gorm:"not null"` // ms since epoch
	Type        TransactionType `json:"type" gorm:"type:varchar(16);not null"`
	BlockNumber int64           `json:"block_number"`
	WalletID    *int            `json:"wallet_id"`
	Note        *string         `json:"note"`
	IsCompleted bool            `json:"is_completed" gorm:"default:false"`
	CreatedAt   time.Time       `json:"created_at" gorm:"autoCreateTime"`
}

func (Transaction) TableName() string {
	return "transactions"
}
