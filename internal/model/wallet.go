package model

import "time"

// Wallet is a monitored TRON address. Removal is a soft delete: IsActive
// flips to false and the row is kept so transaction back-references stay
// valid.
type Wallet struct {
	ID        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Address   string    `json:"address" gorm:"type:varchar(64);not null"`
	Name      string    `json:"name" gorm:"type:varchar(255);not null"`
	CreatedAt time.Time `json:"created_at" gorm:"autoCreateTime"`
	IsActive  bool      `json:"active" gorm:"column:is_active;default:true"`
}

func (Wallet) TableName() string {
	return "wallets"
}
