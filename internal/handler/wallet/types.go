package wallet

import "github.com/tronwatch/usdt-backend/internal/model"

type CreateWalletRequest struct {
	Address string `json:"address" binding:"required"`
	Name    string `json:"name"`
}

type CreateWalletResponse struct {
	Message string        `json:"message"`
	Wallet  *model.Wallet `json:"wallet"`
}
