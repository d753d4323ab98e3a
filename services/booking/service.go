package booking

import (
	"fmt"
	"time"

	"parlorspace/models"
	"parlorspace/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

// maxTrackingAttempts bounds tracking-id regeneration when the unique
// index reports a collision.
const maxTrackingAttempts = 3

// ratingsPlaceholder is attached on decorator assignment until the
// customer leaves a real rating.
const ratingsPlaceholder = "not-rated"

// CreateBooking stamps identifiers and the initial status and persists
// the booking.
func (s *DefaultBookingService) CreateBooking(booking models.Booking) (*models.Booking, error) {
	logger := utils.GetLogger()

	if booking.UserEmail == "" {
		return nil, utils.NewValidationError("userEmail is required")
	}

	booking.ID = uuid.New().String()
	booking.DeliveryStatus = models.StatusAssigned
	if booking.Date.IsZero() {
		booking.Date = time.Now()
	}

	var err error
	for attempt := 0; attempt < maxTrackingAttempts; attempt++ {
		booking.TrackingID = utils.GenerateTrackingID()
		err = s.Repo.Create(&booking)
		if err == nil {
			logger.Info("booking created",
				zap.String("id", booking.ID),
				zap.String("trackingId", booking.TrackingID))
			return &booking, nil
		}
		if utils.ErrorCode(err) != utils.CodeConflict {
			return nil, fmt.Errorf("failed to create booking: %w", err)
		}
		logger.Warn("tracking id collision, regenerating",
			zap.String("trackingId", booking.TrackingID))
	}
	return nil, fmt.Errorf("failed to create booking after %d tracking id attempts: %w", maxTrackingAttempts, err)
}

// GetBooking retrieves one booking.
func (s *DefaultBookingService) GetBooking(id string) (*models.Booking, error) {
	return s.Repo.GetByID(id)
}

// ListBookings retrieves bookings matching the optional filters, sorted
// most recent first.
func (s *DefaultBookingService) ListBookings(query models.BookingQuery) ([]models.Booking, error) {
	return s.Repo.List(query)
}

// AssignDecorator attaches the decorator to the booking and moves it to
// materials-prepared. The transition is applied regardless of the current
// status, matching the assignment contract.
func (s *DefaultBookingService) AssignDecorator(id string, assignment models.DecoratorAssignment) (*models.Booking, error) {
	if assignment.DecoratorEmail == "" {
		return nil, utils.NewValidationError("decoratorEmail is required")
	}

	now := time.Now()
	fields := map[string]any{
		"decoratorName":   assignment.DecoratorName,
		"decoratorEmail":  assignment.DecoratorEmail,
		"decoratorStatus": assignment.DecoratorStatus,
		"deliveryStatus":  models.StatusMaterialsPrepared,
		"assignedAt":      now,
		"ratings":         ratingsPlaceholder,
	}
	if _, _, err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("decorator assigned",
		zap.String("bookingId", id),
		zap.String("decoratorEmail", assignment.DecoratorEmail))
	return s.Repo.GetByID(id)
}

// UpdateDeliveryStatus moves the booking along the recognized status
// table.
func (s *DefaultBookingService) UpdateDeliveryStatus(id, newStatus string) (*models.Booking, error) {
	if newStatus == "" {
		return nil, utils.NewValidationError("deliveryStatus is required")
	}
	if !IsRecognizedStatus(newStatus) {
		return nil, utils.NewValidationError(fmt.Sprintf("unrecognized delivery status %q", newStatus))
	}

	current, err := s.Repo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if !CanTransition(current.DeliveryStatus, newStatus) {
		return nil, utils.NewValidationError(fmt.Sprintf(
			"cannot transition booking from %q to %q", current.DeliveryStatus, newStatus))
	}

	if _, _, err := s.Repo.UpdateFields(id, map[string]any{"deliveryStatus": newStatus}); err != nil {
		return nil, err
	}

	utils.GetLogger().Info("delivery status updated",
		zap.String("bookingId", id),
		zap.String("from", current.DeliveryStatus),
		zap.String("to", newStatus))
	return s.Repo.GetByID(id)
}

// UpdateBooking applies a generic partial update. Identifiers and the
// delivery status are not writable here; status changes go through
// UpdateDeliveryStatus so the transition table holds.
func (s *DefaultBookingService) UpdateBooking(id string, fields map[string]any) (*models.Booking, error) {
	if _, ok := fields["deliveryStatus"]; ok {
		return nil, utils.NewValidationError("deliveryStatus must be updated via the status endpoint")
	}
	delete(fields, "id")
	delete(fields, "trackingId")
	if len(fields) == 0 {
		return nil, utils.NewValidationError("no updatable fields provided")
	}

	if _, _, err := s.Repo.UpdateFields(id, fields); err != nil {
		return nil, err
	}
	return s.Repo.GetByID(id)
}

// DeleteBooking removes a booking.
func (s *DefaultBookingService) DeleteBooking(id string) error {
	return s.Repo.Delete(id)
}
