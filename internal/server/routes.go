package routes

import (
	"net/http"
	"time"

	"github.com/MatiasGarciaDev/Portfolio_Api.git/internal/middleware"
	"github.com/gin-gonic/gin"
)

func RegisterRoutes(router *gin.Engine) {
	// Inicializar repositorios y servicios de cada grupo de handlers
	middleware.InitAuth()
	middleware.InitPortfolio()
	middleware.InitTransactions()
	middleware.InitReports()

	router.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "OK", "timestamp": time.Now().Format(time.RFC3339)})
	})

	// Los reportes generados se sirven como archivos estáticos
	router.Static("/public", "./public")

	router.POST("/signup", middleware.Signup)
	router.POST("/login", middleware.Login)
	router.POST("/logout", middleware.AuthMiddleware(), middleware.Logout)

	protected := router.Group("/")
	protected.Use(middleware.AuthMiddleware())
	{
		protected.PUT("/users", middleware.UpdateUser)
		protected.DELETE("/users", middleware.DeleteUser)

		// El snapshot completo: tenencias, totales y gráfico
		protected.GET("/portfolio", middleware.GetPortfolioSnapshot)

		protected.GET("/portfolios", middleware.GetUserPortfolios)
		protected.POST("/portfolios", middleware.CreatePortfolio)

		protected.POST("/transactions", middleware.CreateTransaction)
		protected.GET("/transactions", middleware.GetUserTransactions)

		protected.GET("/stocks", middleware.GetStocks)
		protected.GET("/stocks/:id/price", middleware.GetStockPriceOnDate)

		protected.GET("/reports", middleware.GetUserReports)
		protected.POST("/reports", middleware.GenerateReport)
		protected.DELETE("/reports/:id", middleware.DeleteReport)
	}

	// Rutas de admin
	admin := router.Group("/admin")
	admin.Use(middleware.AdminAuth())
	{
		admin.GET("/users", middleware.GetUsers)
		admin.GET("/users/:id", middleware.GetUser)
		admin.DELETE("/users/:id", middleware.DeleteUserByAdmin)
		admin.GET("/users/email/:email", middleware.GetUserByEmail)
	}

	router.POST("/request-reset-password", middleware.RequestResetPassword)
	router.POST("/reset-password", middleware.ResetPassword)
}
