package payment

import (
	"context"

	paymentRepo "parlorspace/database/repository/payment"
	"parlorspace/models"
)

// CheckoutProvider abstracts the external hosted-checkout integration.
type CheckoutProvider interface {
	// CreateSession starts a hosted checkout session for the given
	// minor-unit amount and returns the redirect URL.
	CreateSession(ctx context.Context, req models.CheckoutRequest, amountMinor int64) (string, error)
	// ResolveSession fetches the outcome of a checkout session.
	ResolveSession(ctx context.Context, sessionID string) (*models.CheckoutSessionInfo, error)
}

// PaymentService bridges hosted-checkout confirmations back into local
// state exactly once per external transaction.
type PaymentService interface {
	CreateCheckoutSession(ctx context.Context, req models.CheckoutRequest) (string, error)
	SettlePayment(ctx context.Context, sessionID string) (*models.SettlementResult, error)
	ListPayments(email string) ([]models.Payment, error)
}

// DefaultPaymentService implements PaymentService.
type DefaultPaymentService struct {
	Provider CheckoutProvider
	Ledger   paymentRepo.LedgerRepository
}
