package payment

import (
	"context"
	"fmt"
	"time"

	"parlorspace/models"
	"parlorspace/utils"

	"go.uber.org/zap"
)

// SettlePayment records a confirmed checkout exactly once. It resolves
// the session with the provider, consults the ledger for an earlier
// settlement of the same transaction, and otherwise applies the booking
// mutation and ledger insert as one atomic unit. Retries for the same
// transaction, whether redirect refreshes or a concurrent settlement
// losing the insert race, answer with the original record.
func (s *DefaultPaymentService) SettlePayment(ctx context.Context, sessionID string) (*models.SettlementResult, error) {
	logger := utils.GetLogger()

	if sessionID == "" {
		return nil, utils.NewValidationError("session_id is required")
	}

	info, err := s.Provider.ResolveSession(ctx, sessionID)
	if err != nil {
		return nil, utils.NewProviderError(fmt.Sprintf("failed to resolve checkout session: %v", err))
	}

	// Idempotency guard: one ledger record per external transaction.
	existing, err := s.Ledger.GetByTransactionID(info.TransactionID)
	if err != nil {
		return nil, fmt.Errorf("failed to check payment ledger: %w", err)
	}
	if existing != nil {
		logger.Info("settlement replay, returning recorded payment",
			zap.String("transactionId", info.TransactionID))
		return alreadySettledResult(existing), nil
	}

	if info.PaymentStatus != models.PaymentStatusPaid {
		logger.Warn("settlement attempted for unpaid session",
			zap.String("transactionId", info.TransactionID),
			zap.String("paymentStatus", info.PaymentStatus))
		return &models.SettlementResult{
			Success:       false,
			TrackingID:    info.TrackingID,
			TransactionID: info.TransactionID,
			Message:       fmt.Sprintf("payment not completed: status %q", info.PaymentStatus),
		}, nil
	}

	record := &models.Payment{
		TransactionID: info.TransactionID,
		ParcelID:      info.BookingID,
		TrackingID:    info.TrackingID,
		Amount:        info.Amount,
		Currency:      info.Currency,
		CustomerEmail: info.CustomerEmail,
		PaymentStatus: models.PaymentStatusPaid,
		PaidAt:        time.Now(),
	}
	bookingFields := map[string]any{
		"paymentStatus":  models.PaymentStatusPaid,
		"deliveryStatus": models.StatusPlanningPhase,
	}

	matched, modified, err := s.Ledger.SettleTransactionally(ctx, info.BookingID, bookingFields, record)
	if err != nil {
		// A concurrent settlement may win the insert between the
		// guard and the transaction; the duplicate key is a no-op,
		// not a failure.
		if utils.ErrorCode(err) == utils.CodeConflict {
			winner, lookupErr := s.Ledger.GetByTransactionID(info.TransactionID)
			if lookupErr == nil && winner != nil {
				logger.Info("settlement race, returning recorded payment",
					zap.String("transactionId", info.TransactionID))
				return alreadySettledResult(winner), nil
			}
		}
		return nil, err
	}

	logger.Info("payment settled",
		zap.String("transactionId", info.TransactionID),
		zap.String("bookingId", info.BookingID),
		zap.String("trackingId", info.TrackingID))
	return &models.SettlementResult{
		Success:       true,
		MatchedCount:  matched,
		ModifiedCount: modified,
		Payment:       record,
		TrackingID:    record.TrackingID,
		TransactionID: record.TransactionID,
		Message:       "payment recorded",
	}, nil
}

func alreadySettledResult(p *models.Payment) *models.SettlementResult {
	return &models.SettlementResult{
		Success:        true,
		AlreadySettled: true,
		Payment:        p,
		TrackingID:     p.TrackingID,
		TransactionID:  p.TransactionID,
		Message:        "payment already recorded",
	}
}
