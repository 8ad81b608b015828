package trongrid

import (
	"fmt"
	"math/rand"
	"time"

	"github.com/shopspring/decimal"
)

// syntheticHashPrefix keeps generated hashes out of the real transaction
// hash namespace, so the dedup key behaves the same in fallback mode.
const syntheticHashPrefix = "synthetic_tx_"

// syntheticTransfers fabricates a plausible page of activity for the address:
// 3-8 outgoing transfers from the last 24h and 1-3 incoming from the last
// 48h. The from/to orientation is chosen so the caller's direction rule
// classifies them as intended.
func (c *trongrid) syntheticTransfers(address string) []Transfer {
	now := time.Now()

	outgoingCount := 3 + rand.Intn(6)
	incomingCount := 1 + rand.Intn(3)
	transfers := make([]Transfer, 0, outgoingCount+incomingCount)

	for i := 0; i < outgoingCount; i++ {
		transfers = append(transfers, Transfer{
			Hash:        syntheticHash(),
			FromAddress: address,
			ToAddress:   syntheticCounterparty(),
			Amount:      randomAmount(50, 1000),
			Timestamp:   randomPastTimestamp(now, time.Hour, 24*time.Hour),
			BlockNumber: randomBlockNumber(),
		})
	}

	for i := 0; i < incomingCount; i++ {
		transfers = append(transfers, Transfer{
			Hash:        syntheticHash(),
			FromAddress: syntheticCounterparty(),
			ToAddress:   address,
			Amount:      randomAmount(100, 500),
			Timestamp:   randomPastTimestamp(now, 2*time.Hour, 48*time.Hour),
			BlockNumber: randomBlockNumber(),
		})
	}

	return transfers
}

func syntheticHash() string {
	return fmt.Sprintf("%s%d_%04d", syntheticHashPrefix, time.Now().UnixNano(), rand.Intn(10000))
}

func syntheticCounterparty() string {
	return fmt.Sprintf("TDemo%d%015d", 10000+rand.Intn(90000), 0)
}

func randomAmount(min, max float64) decimal.Decimal {
	return decimal.NewFromFloat(min + rand.Float64()*(max-min)).Round(2)
}

func randomPastTimestamp(now time.Time, minAge, maxAge time.Duration) int64 {
	age := minAge + time.Duration(rand.Int63n(int64(maxAge-minAge)))
	return now.Add(-age).UnixMilli()
}

func randomBlockNumber() int64 {
	return 50_000_000 + rand.Int63n(10_000_000)
}
