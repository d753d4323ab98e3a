package handlers

import (
	"net/http"

	"parlorspace/models"
	"parlorspace/services/booking"
	"parlorspace/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// BookingHandler exposes the booking lifecycle endpoints.
type BookingHandler struct {
	Service booking.BookingService
}

// NewBookingHandler creates a BookingHandler over the given service.
func NewBookingHandler(svc booking.BookingService) *BookingHandler {
	return &BookingHandler{Service: svc}
}

// CreateBookingHandler handles POST /bookings.
func (h *BookingHandler) CreateBookingHandler(c *gin.Context) {
	var b models.Booking
	if err := c.ShouldBindJSON(&b); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	created, err := h.Service.CreateBooking(b)
	if err != nil {
		utils.GetLogger().Error("booking creation failed", zap.Error(err))
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusCreated, created)
}

// ListBookingsHandler handles GET /bookings?email=&decoratorEmail=&deliveryStatus=.
func (h *BookingHandler) ListBookingsHandler(c *gin.Context) {
	query := models.BookingQuery{
		UserEmail:      c.Query("email"),
		DecoratorEmail: c.Query("decoratorEmail"),
		DeliveryStatus: c.Query("deliveryStatus"),
	}
	h.respondWithList(c, query)
}

// ListDecoratorBookingsHandler handles GET /decorators?decoratorEmail=.
func (h *BookingHandler) ListDecoratorBookingsHandler(c *gin.Context) {
	query := models.BookingQuery{DecoratorEmail: c.Query("decoratorEmail")}
	h.respondWithList(c, query)
}

func (h *BookingHandler) respondWithList(c *gin.Context, query models.BookingQuery) {
	bookings, err := h.Service.ListBookings(query)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	if bookings == nil {
		bookings = []models.Booking{}
	}
	c.JSON(http.StatusOK, bookings)
}

// UpdateBookingHandler handles PATCH /bookings/:id.
func (h *BookingHandler) UpdateBookingHandler(c *gin.Context) {
	var fields map[string]any
	if err := c.ShouldBindJSON(&fields); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdateBooking(c.Param("id"), fields)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// AssignDecoratorHandler handles PATCH /bookings/:id/role.
func (h *BookingHandler) AssignDecoratorHandler(c *gin.Context) {
	var assignment models.DecoratorAssignment
	if err := c.ShouldBindJSON(&assignment); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.AssignDecorator(c.Param("id"), assignment)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// UpdateBookingStatusHandler handles PATCH /bookings/:id/status.
func (h *BookingHandler) UpdateBookingStatusHandler(c *gin.Context) {
	var body struct {
		DeliveryStatus string `json:"deliveryStatus"`
	}
	if err := c.ShouldBindJSON(&body); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	updated, err := h.Service.UpdateDeliveryStatus(c.Param("id"), body.DeliveryStatus)
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, updated)
}

// DeleteBookingHandler handles DELETE /bookings/:id.
func (h *BookingHandler) DeleteBookingHandler(c *gin.Context) {
	if err := h.Service.DeleteBooking(c.Param("id")); err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"message": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Booking deleted successfully"})
}
