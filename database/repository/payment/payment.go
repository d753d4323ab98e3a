package paymentRepo

import (
	"context"

	"parlorspace/models"
)

// LedgerRepository defines methods for the payment ledger. The ledger is
// keyed by the external transaction id: at most one record per transaction.
type LedgerRepository interface {
	// GetByTransactionID retrieves a ledger record. A missing record
	// is reported as (nil, nil), not an error.
	GetByTransactionID(transactionID string) (*models.Payment, error)
	// ListByEmail retrieves a customer's ledger records, most recent
	// first.
	ListByEmail(email string) ([]models.Payment, error)
	// SettleTransactionally applies the booking mutation and inserts
	// the ledger record as a single atomic unit. The booking must
	// exist: an unmatched booking id aborts the transaction and
	// nothing is written. A duplicate transaction id is reported as a
	// Conflict with nothing written either.
	SettleTransactionally(ctx context.Context, bookingID string, bookingFields map[string]any, payment *models.Payment) (matched, modified int64, err error)
}
