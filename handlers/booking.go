package handlers

import (
	"errors"
	"net/http"

	"bookexpert/models"
	"bookexpert/services/reservation"
	"bookexpert/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the reservation coordinator over HTTP.
type BookingHandler struct {
	Service reservation.ReservationService
	Logger  *zap.Logger
}

// NewBookingHandler creates a BookingHandler.
func NewBookingHandler(svc reservation.ReservationService, logger *zap.Logger) *BookingHandler {
	return &BookingHandler{Service: svc, Logger: logger}
}

// respondReservationError translates the coordinator's error taxonomy to
// HTTP. Anything outside the taxonomy is a storage failure and surfaces as a
// generic 500; retries belong to the caller.
func (h *BookingHandler) respondReservationError(c *gin.Context, err error) {
	var vErr *reservation.ValidationError
	if errors.As(err, &vErr) {
		utils.JSONError(c, http.StatusBadRequest, "Validation Error", vErr.Message)
		return
	}
	var nfErr *reservation.NotFoundError
	if errors.As(err, &nfErr) {
		utils.JSONError(c, http.StatusNotFound, "Not Found", nfErr.Error())
		return
	}
	var cErr *reservation.ConflictError
	if errors.As(err, &cErr) {
		utils.JSONError(c, http.StatusConflict, "Conflict", "This slot has already been booked by another user")
		return
	}
	h.Logger.Error("reservation operation failed", zap.Error(err))
	utils.JSONError(c, http.StatusInternalServerError, "Server Error", "An unexpected error occurred")
}

// BookSlotHandler handles POST /api/experts/:id/book.
func (h *BookingHandler) BookSlotHandler(c *gin.Context) {
	var req models.BookingRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation Error", "invalid request body")
		return
	}

	booking, err := h.Service.Book(c.Request.Context(), c.Param("id"), req)
	if err != nil {
		h.respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking successful", "booking": booking})
}

// ListBookingsHandler handles GET /api/bookings?email=...
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	bookings, err := h.Service.ListByEmail(c.Request.Context(), c.Query("email"))
	if err != nil {
		h.respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingStatusHandler handles PATCH /api/bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var req struct {
		Status string `json:"status"`
	}
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.JSONError(c, http.StatusBadRequest, "Validation Error", "invalid request body")
		return
	}

	booking, err := h.Service.SetStatus(c.Request.Context(), c.Param("id"), req.Status)
	if err != nil {
		h.respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking status updated successfully", "booking": booking})
}

// DeleteBookingHandler handles DELETE /api/bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Service.Delete(c.Request.Context(), c.Param("id")); err != nil {
		h.respondReservationError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
