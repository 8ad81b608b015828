package monitor

type MonitorResponse struct {
	Message           string `json:"message"`
	TransactionsFound int64  `json:"transactions_found"`
	NewTransactions   int    `json:"new_transactions"`
	WalletsMonitored  int    `json:"wallets_monitored"`
}
