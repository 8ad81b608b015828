package transaction

import "github.com/gin-gonic/gin"

type IHandler interface {
	GetTransactions(c *gin.Context)
	GetOutgoingTransactions(c *gin.Context)
	GetIncomingTransactions(c *gin.Context)
	GetDuplicateTransactions(c *gin.Context)
	UpdateNote(c *gin.Context)
	ToggleComplete(c *gin.Context)
}
