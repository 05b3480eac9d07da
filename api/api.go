package api

import (
	"fmt"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"

	"longshort/internal/app"
)

type ApiHandler struct {
	Rebalancer *app.RebalancerHandler
}

func (m *ApiHandler) InitializeRouterEngine() *gin.Engine {
	router := gin.Default()
	router.Use(cors.Default())

	router.GET("/", func(ctx *gin.Context) {
		ctx.JSON(200, map[string]string{"message": "welcome to longshort"})
	})
	router.POST("/rebalance", m.rebalance)
	router.GET("/diagnostics", m.diagnostics)

	return router
}

func (m *ApiHandler) StartApi(port int) error {
	router := m.InitializeRouterEngine()
	return router.Run(fmt.Sprintf(":%d", port))
}

func returnErrorJson(err error, c *gin.Context) {
	returnErrorJsonCode(err, c, 500)
}

func returnErrorJsonCode(err error, c *gin.Context, code int) {
	c.AbortWithStatusJSON(code, gin.H{
		"error": err.Error(),
	})
}
