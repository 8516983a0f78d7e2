package routes

import (
	"net/http"
	"time"

	"bookexpert/handlers"

	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
)

// RegisterExpertRoutes registers the expert directory endpoints.
func RegisterExpertRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/experts")
	{
		api.GET("", hb.ListExpertsHandler)
		api.GET("/:id", hb.GetExpertByIDHandler)
		api.POST("/:id/book", hb.BookSlotHandler)
	}
}

// RegisterBookingRoutes registers the booking lifecycle endpoints.
func RegisterBookingRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/bookings")
	{
		api.GET("", hb.ListBookingsHandler)
		api.PATCH("/:id/status", hb.UpdateBookingStatusHandler)
		api.DELETE("/:id", hb.DeleteBookingHandler)
	}
}

// RegisterEventRoutes registers the real-time availability stream.
func RegisterEventRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.GET("/api/events", hb.StreamHandler)
}

// RegisterAdminRoutes registers operator endpoints.
func RegisterAdminRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	api := r.Group("/api/admin")
	{
		api.POST("/reconcile", hb.ReconcileHandler)
	}
}

// RegisterHealthRoute registers a health-check endpoint.
func RegisterHealthRoute(r *gin.Engine) {
	r.GET("/health", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{"status": "ok", "message": "Hi, I'm BookExpert"})
	})
}

// RegisterRoutes applies the CORS policy and wires every route group.
func RegisterRoutes(r *gin.Engine, hb *handlers.HandlerBundle) {
	r.Use(cors.New(cors.Config{
		AllowOrigins:     []string{"*"},
		AllowMethods:     []string{"GET", "POST", "PATCH", "DELETE", "OPTIONS"},
		AllowHeaders:     []string{"Origin", "Content-Type", "Accept"},
		ExposeHeaders:    []string{"Content-Length"},
		AllowCredentials: false,
		MaxAge:           12 * time.Hour,
	}))

	RegisterHealthRoute(r)
	RegisterExpertRoutes(r, hb)
	RegisterBookingRoutes(r, hb)
	RegisterEventRoutes(r, hb)
	RegisterAdminRoutes(r, hb)
}
