package router

import (
	"github.com/blues/rfs/internal/handler"
	"github.com/blues/rfs/internal/ledger"
	"github.com/gin-gonic/gin"
)

func Setup(l *ledger.Ledger) *gin.Engine {
	r := gin.New()

	// 中间件
	r.Use(gin.Logger())
	r.Use(gin.Recovery())
	r.Use(corsMiddleware())

	// 健康检查
	r.GET("/health", func(c *gin.Context) {
		c.JSON(200, gin.H{
			"status":  "ok",
			"service": "research-funding-service",
		})
	})

	// API版本组
	v1 := r.Group("/api/v1")
	{
		projectHandler := handler.NewProjectHandler(l)
		contributionHandler := handler.NewContributionHandler(l)
		payoutHandler := handler.NewPayoutHandler(l)

		// 项目相关路由
		projects := v1.Group("/projects")
		{
			projects.POST("", projectHandler.CreateProject)
			projects.GET("", projectHandler.GetProjects)
			projects.GET("/:id", projectHandler.GetProject)
			projects.GET("/:id/stats", projectHandler.GetProjectStats)
			projects.GET("/:id/price", projectHandler.GetSharePrice)
			projects.PUT("/:id/valuation", projectHandler.UpdateValuation)
			projects.POST("/:id/finalize", projectHandler.FinalizeProject)

			projects.POST("/:id/contributions", contributionHandler.Contribute)
			projects.GET("/:id/contributions", contributionHandler.GetContributionLogs)
			projects.GET("/:id/shares/:address", contributionHandler.GetHolderShares)

			projects.POST("/:id/withdraw", payoutHandler.Withdraw)
			projects.POST("/:id/refund", payoutHandler.Refund)
		}

		// 账户相关路由
		accounts := v1.Group("/accounts")
		{
			accounts.GET("/:address/contributions", contributionHandler.GetAccountContributions)
		}
	}

	return r
}

// CORS中间件
func corsMiddleware() gin.HandlerFunc {
	return func(c *gin.Context) {
		c.Header("Access-Control-Allow-Origin", "*")
		c.Header("Access-Control-Allow-Methods", "GET, POST, PUT, DELETE, OPTIONS")
		c.Header("Access-Control-Allow-Headers", "Origin, Content-Type, Content-Length, Accept-Encoding, X-CSRF-Token, Authorization")

		if c.Request.Method == "OPTIONS" {
			c.AbortWithStatus(204)
			return
		}

		c.Next()
	}
}
