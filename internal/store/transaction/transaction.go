package transaction

import (
	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/tronwatch/usdt-backend/internal/model"
)

type store struct{}

func New() IStore {
	return &store{}
}

// CreateIfNew relies on the unique index on hash: two concurrent cycles
// racing on the same hash get exactly one winner, the loser sees a benign
// dedup hit instead of an error.
func (s *store) CreateIfNew(db *gorm.DB, tx *model.Transaction) (bool, error) {
	result := db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "hash"}},
		DoNothing: true,
	}).Create(tx)
	if result.Error != nil {
		return false, result.Error
	}
	return result.RowsAffected > 0, nil
}

func (s *store) List(db *gorm.DB, txType model.TransactionType) ([]model.Transaction, error) {
	var txs []model.Transaction
	query := db.Model(&model.Transaction{})
	if txType != "" {
		query = query.Where("type = ?", txType)
	}
	err := query.Order("timestamp desc").Find(&txs).Error
	return txs, err
}

func (s *store) Count(db *gorm.DB) (int64, error) {
	var total int64
	err := db.Model(&model.Transaction{}).Count(&total).Error
	return total, err
}

func (s *store) GetByID(db *gorm.DB, id int) (*model.Transaction, error) {
	var tx model.Transaction
	err := db.Where("id = ?", id).First(&tx).Error
	if err != nil {
		return nil, err
	}
	return &tx, nil
}

func (s *store) UpdateNote(db *gorm.DB, id int, note string) error {
	return db.Model(&model.Transaction{}).Where("id = ?", id).Update("note", note).Error
}

func (s *store) UpdateCompleted(db *gorm.DB, id int, completed bool) error {
	return db.Model(&model.Transaction{}).Where("id = ?", id).Update("is_completed", completed).Error
}
