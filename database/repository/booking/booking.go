package bookingRepo

import "parlorspace/models"

// BookingRepository defines methods for booking data access.
type BookingRepository interface {
	// GetByID retrieves a booking by its unique ID.
	GetByID(id string) (*models.Booking, error)
	// List retrieves bookings matching the optional filters, most
	// recent first.
	List(query models.BookingQuery) ([]models.Booking, error)
	// Create inserts a new booking. A tracking-id collision is
	// reported as a Conflict so the caller can regenerate and retry.
	Create(booking *models.Booking) error
	// UpdateFields applies a partial update and reports the matched
	// and modified document counts.
	UpdateFields(id string, fields map[string]any) (matched, modified int64, err error)
	// Delete removes a booking by its ID.
	Delete(id string) error
}
