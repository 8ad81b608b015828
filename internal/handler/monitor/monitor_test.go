package monitor

import (
	"encoding/json"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/gin-gonic/gin"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/tronwatch/usdt-backend/internal/model"
	"github.com/tronwatch/usdt-backend/internal/telemetry"
	"github.com/tronwatch/usdt-backend/internal/types/environments"
	"github.com/tronwatch/usdt-backend/internal/utils/logger"
)

type fakeTelemetry struct {
	result *telemetry.MonitorResult
	err    error
}

func (f *fakeTelemetry) RunMonitorCycle() (*telemetry.MonitorResult, error) {
	return f.result, f.err
}

func (f *fakeTelemetry) GetDuplicateTransactions() ([]model.Transaction, error) {
	return nil, nil
}

func runMonitor(tel telemetry.ITelemetry) *httptest.ResponseRecorder {
	gin.SetMode(gin.TestMode)
	h := New(tel, logger.New(environments.Test))

	r := gin.New()
	r.POST("/api/monitor", h.Monitor)

	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodPost, "/api/monitor", nil))
	return w
}

func TestMonitor_NoActiveWallets(t *testing.T) {
	w := runMonitor(&fakeTelemetry{err: telemetry.ErrNoActiveWallets})

	assert.Equal(t, http.StatusBadRequest, w.Code)
	assert.Contains(t, w.Body.String(), "no active wallets to monitor")
}

func TestMonitor_CycleFailure(t *testing.T) {
	w := runMonitor(&fakeTelemetry{err: errors.New("db down")})

	assert.Equal(t, http.StatusInternalServerError, w.Code)
	assert.Contains(t, w.Body.String(), "Monitoring failed")
}

func TestMonitor_ReportsNewTransactions(t *testing.T) {
	w := runMonitor(&fakeTelemetry{result: &telemetry.MonitorResult{
		NewTransactions:   4,
		TotalTransactions: 12,
		WalletsMonitored:  2,
	}})

	require.Equal(t, http.StatusOK, w.Code)

	var resp MonitorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "4 new transactions found! Total: 12", resp.Message)
	assert.Equal(t, int64(12), resp.TransactionsFound)
	assert.Equal(t, 4, resp.NewTransactions)
	assert.Equal(t, 2, resp.WalletsMonitored)
}

func TestMonitor_NothingNew(t *testing.T) {
	w := runMonitor(&fakeTelemetry{result: &telemetry.MonitorResult{
		NewTransactions:   0,
		TotalTransactions: 12,
		WalletsMonitored:  2,
	}})

	require.Equal(t, http.StatusOK, w.Code)

	var resp MonitorResponse
	require.NoError(t, json.Unmarshal(w.Body.Bytes(), &resp))
	assert.Equal(t, "Monitoring complete. 0 new transactions found.", resp.Message)
	assert.Equal(t, int64(12), resp.TransactionsFound)
}
