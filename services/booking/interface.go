package booking

import (
	bookingRepo "parlorspace/database/repository/booking"
	"parlorspace/models"
)

// BookingService manages the lifecycle of decoration bookings.
type BookingService interface {
	// CreateBooking stamps a tracking id and the initial delivery
	// status and persists the booking.
	CreateBooking(booking models.Booking) (*models.Booking, error)
	// GetBooking retrieves one booking.
	GetBooking(id string) (*models.Booking, error)
	// ListBookings retrieves bookings matching the optional filters,
	// most recent first.
	ListBookings(query models.BookingQuery) ([]models.Booking, error)
	// AssignDecorator attaches a decorator and moves the booking to
	// materials-prepared.
	AssignDecorator(id string, assignment models.DecoratorAssignment) (*models.Booking, error)
	// UpdateDeliveryStatus moves the booking along the recognized
	// status table, rejecting unknown statuses and invalid transitions.
	UpdateDeliveryStatus(id, newStatus string) (*models.Booking, error)
	// UpdateBooking applies a generic partial update.
	UpdateBooking(id string, fields map[string]any) (*models.Booking, error)
	// DeleteBooking removes a booking.
	DeleteBooking(id string) error
}

// DefaultBookingService implements BookingService.
type DefaultBookingService struct {
	Repo bookingRepo.BookingRepository
}
