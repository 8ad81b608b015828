package telemetry

import (
	"sort"
	"testing"

	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/gorm"

	"github.com/tronwatch/usdt-backend/internal/model"
	"github.com/tronwatch/usdt-backend/internal/store"
	"github.com/tronwatch/usdt-backend/internal/trongrid"
	"github.com/tronwatch/usdt-backend/internal/types/environments"
	"github.com/tronwatch/usdt-backend/internal/utils/config"
	"github.com/tronwatch/usdt-backend/internal/utils/logger"
)

type fakeWalletStore struct {
	wallets []model.Wallet
	err     error
}

func (s *fakeWalletStore) Create(_ *gorm.DB, wallet *model.Wallet) (*model.Wallet, error) {
	s.wallets = append(s.wallets, *wallet)
	return wallet, nil
}

func (s *fakeWalletStore) GetActiveWallets(_ *gorm.DB) ([]model.Wallet, error) {
	if s.err != nil {
		return nil, s.err
	}
	active := []model.Wallet{}
	for _, w := range s.wallets {
		if w.IsActive {
			active = append(active, w)
		}
	}
	return active, nil
}

func (s *fakeWalletStore) GetActiveByAddress(_ *gorm.DB, address string) (*model.Wallet, error) {
	for _, w := range s.wallets {
		if w.IsActive && w.Address == address {
			wallet := w
			return &wallet, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeWalletStore) Deactivate(_ *gorm.DB, id int) error {
	for i := range s.wallets {
		if s.wallets[i].ID == id {
			s.wallets[i].IsActive = false
		}
	}
	return nil
}

type fakeTransactionStore struct {
	byHash    map[string]*model.Transaction
	nextID    int
	createErr error
}

func newFakeTransactionStore() *fakeTransactionStore {
	return &fakeTransactionStore{byHash: map[string]*model.Transaction{}}
}

func (s *fakeTransactionStore) CreateIfNew(_ *gorm.DB, tx *model.Transaction) (bool, error) {
	if s.createErr != nil {
		return false, s.createErr
	}
	if _, ok := s.byHash[tx.Hash]; ok {
		return false, nil
	}
	s.nextID++
	tx.ID = s.nextID
	stored := *tx
	s.byHash[tx.Hash] = &stored
	return true, nil
}

func (s *fakeTransactionStore) List(_ *gorm.DB, txType model.TransactionType) ([]model.Transaction, error) {
	txs := []model.Transaction{}
	for _, tx := range s.byHash {
		if txType == "" || tx.Type == txType {
			txs = append(txs, *tx)
		}
	}
	sort.Slice(txs, func(i, j int) bool { return txs[i].Timestamp > txs[j].Timestamp })
	return txs, nil
}

func (s *fakeTransactionStore) Count(_ *gorm.DB) (int64, error) {
	return int64(len(s.byHash)), nil
}

func (s *fakeTransactionStore) GetByID(_ *gorm.DB, id int) (*model.Transaction, error) {
	for _, tx := range s.byHash {
		if tx.ID == id {
			found := *tx
			return &found, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (s *fakeTransactionStore) UpdateNote(_ *gorm.DB, id int, note string) error {
	for _, tx := range s.byHash {
		if tx.ID == id {
			tx.Note = &note
		}
	}
	return nil
}

func (s *fakeTransactionStore) UpdateCompleted(_ *gorm.DB, id int, completed bool) error {
	for _, tx := range s.byHash {
		if tx.ID == id {
			tx.IsCompleted = completed
		}
	}
	return nil
}

type fakeTronGrid struct {
	pages map[string][]trongrid.Transfer
}

func (g *fakeTronGrid) GetTRC20Transfers(address string, _ int) []trongrid.Transfer {
	return g.pages[address]
}

func newTestTelemetry(wallets *fakeWalletStore, txs *fakeTransactionStore, grid *fakeTronGrid) ITelemetry {
	return New(
		nil,
		&store.Store{Wallet: wallets, Transaction: txs},
		&config.AppConfig{},
		logger.New(environments.Test),
		grid,
	)
}

func TestRunMonitorCycle_NoActiveWallets(t *testing.T) {
	telemetry := newTestTelemetry(&fakeWalletStore{}, newFakeTransactionStore(), &fakeTronGrid{})

	result, err := telemetry.RunMonitorCycle()

	assert.Nil(t, result)
	assert.ErrorIs(t, err, ErrNoActiveWallets)
}

func TestRunMonitorCycle_PersistsOutgoingTransfer(t *testing.T) {
	wallets := &fakeWalletStore{wallets: []model.Wallet{
		{ID: 1, Address: "TAddr1", Name: "Main", IsActive: true},
	}}
	txs := newFakeTransactionStore()
	grid := &fakeTronGrid{pages: map[string][]trongrid.Transfer{
		"TAddr1": {{
			Hash:        "h1",
			FromAddress: "TAddr1",
			ToAddress:   "TOther",
			Amount:      decimal.NewFromInt(100),
			Timestamp:   1000,
			BlockNumber: 1,
		}},
	}}

	telemetry := newTestTelemetry(wallets, txs, grid)
	result, err := telemetry.RunMonitorCycle()

	require.NoError(t, err)
	assert.Equal(t, 1, result.NewTransactions)
	assert.Equal(t, int64(1), result.TotalTransactions)
	assert.Equal(t, 1, result.WalletsMonitored)

	stored := txs.byHash["h1"]
	require.NotNil(t, stored)
	assert.Equal(t, model.TransactionTypeOutgoing, stored.Type)
	require.NotNil(t, stored.WalletID)
	assert.Equal(t, 1, *stored.WalletID)
	assert.False(t, stored.IsCompleted)
	assert.Nil(t, stored.Note)
}

func TestRunMonitorCycle_IsIdempotent(t *testing.T) {
	wallets := &fakeWalletStore{wallets: []model.Wallet{
		{ID: 1, Address: "TAddr1", IsActive: true},
	}}
	txs := newFakeTransactionStore()
	grid := &fakeTronGrid{pages: map[string][]trongrid.Transfer{
		"TAddr1": {
			{Hash: "h1", FromAddress: "TAddr1", ToAddress: "TOther", Amount: decimal.NewFromInt(100), Timestamp: 1000, BlockNumber: 1},
			{Hash: "h2", FromAddress: "TOther", ToAddress: "TAddr1", Amount: decimal.NewFromInt(25), Timestamp: 2000, BlockNumber: 2},
		},
	}}

	telemetry := newTestTelemetry(wallets, txs, grid)

	first, err := telemetry.RunMonitorCycle()
	require.NoError(t, err)
	assert.Equal(t, 2, first.NewTransactions)

	second, err := telemetry.RunMonitorCycle()
	require.NoError(t, err)
	assert.Equal(t, 0, second.NewTransactions)
	assert.Equal(t, first.TotalTransactions, second.TotalTransactions)
}

func TestRunMonitorCycle_DirectionRule(t *testing.T) {
	wallets := &fakeWalletStore{wallets: []model.Wallet{
		{ID: 1, Address: "TAddr1", IsActive: true},
	}}
	txs := newFakeTransactionStore()
	grid := &fakeTronGrid{pages: map[string][]trongrid.Transfer{
		"TAddr1": {
			{Hash: "out", FromAddress: "TAddr1", ToAddress: "TOther", Amount: decimal.NewFromInt(1), Timestamp: 1},
			{Hash: "in", FromAddress: "TOther", ToAddress: "TAddr1", Amount: decimal.NewFromInt(1), Timestamp: 2},
			// self-transfer: the from-address check wins
			{Hash: "self", FromAddress: "TAddr1", ToAddress: "TAddr1", Amount: decimal.NewFromInt(1), Timestamp: 3},
		},
	}}

	telemetry := newTestTelemetry(wallets, txs, grid)
	_, err := telemetry.RunMonitorCycle()
	require.NoError(t, err)

	assert.Equal(t, model.TransactionTypeOutgoing, txs.byHash["out"].Type)
	assert.Equal(t, model.TransactionTypeIncoming, txs.byHash["in"].Type)
	assert.Equal(t, model.TransactionTypeOutgoing, txs.byHash["self"].Type)
}

func TestRunMonitorCycle_PersistenceFailureAbortsCycle(t *testing.T) {
	wallets := &fakeWalletStore{wallets: []model.Wallet{
		{ID: 1, Address: "TAddr1", IsActive: true},
	}}
	txs := newFakeTransactionStore()
	txs.createErr = errors.New("store unavailable")
	grid := &fakeTronGrid{pages: map[string][]trongrid.Transfer{
		"TAddr1": {{Hash: "h1", FromAddress: "TAddr1", ToAddress: "TOther", Amount: decimal.NewFromInt(1), Timestamp: 1}},
	}}

	telemetry := newTestTelemetry(wallets, txs, grid)
	result, err := telemetry.RunMonitorCycle()

	assert.Nil(t, result)
	require.Error(t, err)
	assert.NotErrorIs(t, err, ErrNoActiveWallets)
}

func TestRunMonitorCycle_MonitorsEveryActiveWallet(t *testing.T) {
	wallets := &fakeWalletStore{wallets: []model.Wallet{
		{ID: 1, Address: "TAddr1", IsActive: true},
		{ID: 2, Address: "TAddr2", IsActive: true},
		{ID: 3, Address: "TGone", IsActive: false},
	}}
	txs := newFakeTransactionStore()
	grid := &fakeTronGrid{pages: map[string][]trongrid.Transfer{
		"TAddr1": {{Hash: "a", FromAddress: "TAddr1", ToAddress: "TOther", Amount: decimal.NewFromInt(1), Timestamp: 1}},
		"TAddr2": {{Hash: "b", FromAddress: "TOther", ToAddress: "TAddr2", Amount: decimal.NewFromInt(2), Timestamp: 2}},
		"TGone":  {{Hash: "c", FromAddress: "TGone", ToAddress: "TOther", Amount: decimal.NewFromInt(3), Timestamp: 3}},
	}}

	telemetry := newTestTelemetry(wallets, txs, grid)
	result, err := telemetry.RunMonitorCycle()

	require.NoError(t, err)
	assert.Equal(t, 2, result.WalletsMonitored)
	assert.Equal(t, 2, result.NewTransactions)
	assert.Nil(t, txs.byHash["c"], "inactive wallets must not be monitored")
}
