package store

import (
	"github.com/tronwatch/usdt-backend/internal/store/transaction"
	"github.com/tronwatch/usdt-backend/internal/store/wallet"
)

type Store struct {
	Wallet      wallet.IStore
	Transaction transaction.IStore
}

func New() *Store {
	return &Store{
		Wallet:      wallet.New(),
		Transaction: transaction.New(),
	}
}
