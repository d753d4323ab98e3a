package payment

import (
	"context"
	"fmt"

	"parlorspace/models"
	"parlorspace/utils"

	"go.uber.org/zap"
)

// CreateCheckoutSession converts the booking cost to an integral
// minor-unit amount and delegates session creation to the provider. No
// local state is mutated.
func (s *DefaultPaymentService) CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (string, error) {
	if req.BookingID == "" {
		return "", utils.NewValidationError("bookingId is required")
	}
	if req.Cost <= 0 {
		return "", utils.NewValidationError("cost must be positive")
	}
	if req.Email == "" {
		return "", utils.NewValidationError("email is required")
	}

	// Minor units, truncated.
	amountMinor := int64(req.Cost * 100)

	url, err := s.Provider.CreateSession(ctx, req, amountMinor)
	if err != nil {
		return "", utils.NewProviderError(fmt.Sprintf("failed to create checkout session: %v", err))
	}

	utils.GetLogger().Info("checkout session created",
		zap.String("bookingId", req.BookingID),
		zap.String("trackingId", req.TrackingID),
		zap.Int64("amountMinor", amountMinor))
	return url, nil
}

// ListPayments retrieves a customer's ledger records.
func (s *DefaultPaymentService) ListPayments(email string) ([]models.Payment, error) {
	return s.Ledger.ListByEmail(email)
}
