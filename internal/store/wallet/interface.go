package wallet

import (
	"gorm.io/gorm"

	"github.com/tronwatch/usdt-backend/internal/model"
)

type IStore interface {
	// Create a new wallet record
	Create(db *gorm.DB, wallet *model.Wallet) (*model.Wallet, error)

	// GetActiveWallets returns all wallets that are still monitored
	GetActiveWallets(db *gorm.DB) ([]model.Wallet, error)

	// GetActiveByAddress looks up an active wallet by its chain address
	GetActiveByAddress(db *gorm.DB, address string) (*model.Wallet, error)

	// Deactivate soft-deletes a wallet
	Deactivate(db *gorm.DB, id int) error
}
