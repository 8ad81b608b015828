package monitor

import "github.com/gin-gonic/gin"

type IHandler interface {
	Monitor(c *gin.Context)
}
