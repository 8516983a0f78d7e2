package handlers

import "github.com/gin-gonic/gin"

// HandlerBundle groups every route handler for registration.
type HandlerBundle struct {
	// Expert directory endpoints.
	ListExpertsHandler   gin.HandlerFunc
	GetExpertByIDHandler gin.HandlerFunc

	// Booking endpoints.
	BookSlotHandler            gin.HandlerFunc
	ListBookingsHandler        gin.HandlerFunc
	UpdateBookingStatusHandler gin.HandlerFunc
	DeleteBookingHandler       gin.HandlerFunc

	// Real-time event stream.
	StreamHandler gin.HandlerFunc

	// Operator endpoints.
	ReconcileHandler gin.HandlerFunc
}
