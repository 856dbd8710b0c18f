package router

import (
	"net/http"
	"os"
	"time"

	"github.com/KarmaGirafe/chicken-hot-system/internal/order"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// NewRouter wires every route onto a fresh engine.
func NewRouter(orderHandler *order.Handler) *gin.Engine {
	r := gin.Default()

	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PUT"},
		AllowHeaders:     []string{"Origin", "Content-Type"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "healthy"})
	})

	// Dashboard markup lives in static/ when deployed with one.
	r.GET("/", func(c *gin.Context) {
		if _, err := os.Stat("static/index.html"); err == nil {
			c.File("static/index.html")
			return
		}
		c.JSON(http.StatusOK, gin.H{"service": "chicken-hot-system"})
	})

	r.POST("/webhook/:provider", orderHandler.HandleWebhook)

	api := r.Group("/api")
	{
		api.GET("/orders", orderHandler.ListOrders)
		api.PUT("/order/:id/status", orderHandler.UpdateStatus)
	}

	return r
}
