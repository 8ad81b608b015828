package main

import (
	"github.com/tronwatch/usdt-backend/internal/server"
)

// @title          USDT TRC20 Monitor API
// @version        1.0
// @description    Monitors USDT TRC20 transfers on registered TRON wallets.

// @BasePath /api
func main() {
	server.Init()
}
