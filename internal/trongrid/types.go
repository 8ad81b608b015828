package trongrid

import (
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"
)

// USDT is a 6-decimal fixed-point token on TRON.
const usdtDecimals = 6

// Transfer is one candidate TRC20 transfer. Direction is not assigned here;
// the ingestion engine classifies against the monitored wallet address.
type Transfer struct {
	Hash        string
	FromAddress string
	ToAddress   string
	Amount      decimal.Decimal
	Timestamp   int64 // ms since epoch
	BlockNumber int64
}

type trc20TransferListResponse struct {
	Data []trc20TransferEvent `json:"data"`
}

type trc20TransferEvent struct {
	TransactionID  string `json:"transaction_id"`
	From           string `json:"from"`
	To             string `json:"to"`
	Value          string `json:"value"`
	BlockTimestamp int64  `json:"block_timestamp"`
	Block          int64  `json:"block"`
}

func (e trc20TransferEvent) toTransfer() (Transfer, error) {
	if e.TransactionID == "" || e.From == "" || e.To == "" {
		return Transfer{}, errors.New("transfer event missing required fields")
	}

	rawValue, err := decimal.NewFromString(e.Value)
	if err != nil {
		return Transfer{}, errors.Wrap(err, "failed to parse transfer value")
	}

	return Transfer{
		Hash:        e.TransactionID,
		FromAddress: e.From,
		ToAddress:   e.To,
		Amount:      rawValue.Shift(-usdtDecimals),
		Timestamp:   e.BlockTimestamp,
		BlockNumber: e.Block,
	}, nil
}
