package wallet

import (
	"gorm.io/gorm"

	"github.com/tronwatch/usdt-backend/internal/model"
)

type store struct{}

func New() IStore {
	return &store{}
}

func (s *store) Create(db *gorm.DB, wallet *model.Wallet) (*model.Wallet, error) {
	wallet.IsActive = true
	return wallet, db.Create(wallet).Error
}

func (s *store) GetActiveWallets(db *gorm.DB) ([]model.Wallet, error) {
	var wallets []model.Wallet
	err := db.Where("is_active = ?", true).Order("created_at asc").Find(&wallets).Error
	return wallets, err
}

func (s *store) GetActiveByAddress(db *gorm.DB, address string) (*model.Wallet, error) {
	var wallet model.Wallet
	err := db.Where("address = ? AND is_active = ?", address, true).First(&wallet).Error
	if err != nil {
		return nil, err
	}
	return &wallet, nil
}

func (s *store) Deactivate(db *gorm.DB, id int) error {
	return db.Model(&model.Wallet{}).Where("id = ?", id).Update("is_active", false).Error
}
