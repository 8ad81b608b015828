package wallet

import "github.com/gin-gonic/gin"

type IHandler interface {
	GetWallets(c *gin.Context)
	CreateWallet(c *gin.Context)
	DeleteWallet(c *gin.Context)
}
