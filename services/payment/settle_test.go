package payment_test

import (
	"context"
	"errors"
	"fmt"
	"testing"
	"time"

	"parlorspace/models"
	"parlorspace/services/payment"
	"parlorspace/utils"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// fakeStore holds the booking and payment documents shared by the mock
// repositories, standing in for the document store.
type fakeStore struct {
	bookings map[string]*models.Booking
	payments map[string]*models.Payment
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		bookings: make(map[string]*models.Booking),
		payments: make(map[string]*models.Payment),
	}
}

// mockLedger implements paymentRepo.LedgerRepository over a fakeStore.
type mockLedger struct {
	store *fakeStore
	// raceWinner, when set, is inserted behind the caller's back on
	// the next settle attempt so the transaction hits the unique index.
	raceWinner *models.Payment
	settles    int
}

func (m *mockLedger) GetByTransactionID(transactionID string) (*models.Payment, error) {
	p, ok := m.store.payments[transactionID]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (m *mockLedger) ListByEmail(email string) ([]models.Payment, error) {
	var out []models.Payment
	for _, p := range m.store.payments {
		if email != "" && p.CustomerEmail != email {
			continue
		}
		out = append(out, *p)
	}
	return out, nil
}

func (m *mockLedger) SettleTransactionally(ctx context.Context, bookingID string, bookingFields map[string]any, record *models.Payment) (int64, int64, error) {
	m.settles++
	if m.raceWinner != nil {
		winner := m.raceWinner
		m.raceWinner = nil
		m.store.payments[winner.TransactionID] = winner
	}
	booking, ok := m.store.bookings[bookingID]
	if !ok {
		return 0, 0, utils.NewNotFoundError(fmt.Sprintf("booking with id %s not found", bookingID))
	}
	if _, exists := m.store.payments[record.TransactionID]; exists {
		return 0, 0, utils.NewConflictError(fmt.Sprintf("payment with transaction id %s already recorded", record.TransactionID))
	}
	if status, ok := bookingFields["paymentStatus"].(string); ok {
		booking.PaymentStatus = status
	}
	if status, ok := bookingFields["deliveryStatus"].(string); ok {
		booking.DeliveryStatus = status
	}
	cp := *record
	m.store.payments[record.TransactionID] = &cp
	return 1, 1, nil
}

// mockProvider implements payment.CheckoutProvider with canned sessions.
type mockProvider struct {
	sessions    map[string]*models.CheckoutSessionInfo
	lastAmount  int64
	resolveErr  error
	sessionURL  string
	createCalls int
}

func newMockProvider() *mockProvider {
	return &mockProvider{
		sessions:   make(map[string]*models.CheckoutSessionInfo),
		sessionURL: "https://checkout.example/session/cs_test_1",
	}
}

func (m *mockProvider) CreateSession(ctx context.Context, req models.CheckoutRequest, amountMinor int64) (string, error) {
	m.createCalls++
	m.lastAmount = amountMinor
	return m.sessionURL, nil
}

func (m *mockProvider) ResolveSession(ctx context.Context, sessionID string) (*models.CheckoutSessionInfo, error) {
	if m.resolveErr != nil {
		return nil, m.resolveErr
	}
	info, ok := m.sessions[sessionID]
	if !ok {
		return nil, errors.New("no such session")
	}
	return info, nil
}

func newPaymentService(store *fakeStore, provider *mockProvider) (*payment.DefaultPaymentService, *mockLedger) {
	ledger := &mockLedger{store: store}
	return &payment.DefaultPaymentService{Provider: provider, Ledger: ledger}, ledger
}

func seedBooking(store *fakeStore, id string) *models.Booking {
	b := &models.Booking{
		ID:             id,
		UserEmail:      "amy@example.com",
		TrackingID:     "PS-20260828-ABC123",
		DeliveryStatus: models.StatusMaterialsPrepared,
		Date:           time.Now(),
	}
	store.bookings[id] = b
	return b
}

func paidSession(bookingID, trackingID, transactionID string) *models.CheckoutSessionInfo {
	return &models.CheckoutSessionInfo{
		TransactionID: transactionID,
		PaymentStatus: models.PaymentStatusPaid,
		Amount:        149.99,
		Currency:      "usd",
		CustomerEmail: "amy@example.com",
		BookingID:     bookingID,
		TrackingID:    trackingID,
		ItemName:      "Living Room Makeover",
	}
}

func TestCreateCheckoutSessionTruncatesMinorUnits(t *testing.T) {
	provider := newMockProvider()
	svc, _ := newPaymentService(newFakeStore(), provider)

	url, err := svc.CreateCheckoutSession(context.Background(), models.CheckoutRequest{
		BookingID:   "b1",
		TrackingID:  "PS-20260828-ABC123",
		Cost:        149.999,
		Email:       "amy@example.com",
		ServiceName: "Living Room Makeover",
	})
	require.NoError(t, err)
	assert.Equal(t, provider.sessionURL, url)
	assert.Equal(t, int64(14999), provider.lastAmount, "minor units must be truncated, not rounded")
}

func TestCreateCheckoutSessionValidatesInput(t *testing.T) {
	svc, _ := newPaymentService(newFakeStore(), newMockProvider())

	_, err := svc.CreateCheckoutSession(context.Background(), models.CheckoutRequest{
		Cost:  100,
		Email: "amy@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))

	_, err = svc.CreateCheckoutSession(context.Background(), models.CheckoutRequest{
		BookingID: "b1",
		Cost:      -5,
		Email:     "amy@example.com",
	})
	require.Error(t, err)
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
}

func TestSettlePaymentRecordsOnce(t *testing.T) {
	store := newFakeStore()
	booking := seedBooking(store, "b1")
	provider := newMockProvider()
	provider.sessions["sess1"] = paidSession("b1", booking.TrackingID, "pi_1")
	svc, ledger := newPaymentService(store, provider)

	result, err := svc.SettlePayment(context.Background(), "sess1")
	require.NoError(t, err)
	assert.True(t, result.Success)
	assert.False(t, result.AlreadySettled)
	assert.Equal(t, booking.TrackingID, result.TrackingID)
	assert.Equal(t, "pi_1", result.TransactionID)
	assert.Equal(t, int64(1), result.MatchedCount)

	assert.Equal(t, models.PaymentStatusPaid, booking.PaymentStatus)
	assert.Equal(t, models.StatusPlanningPhase, booking.DeliveryStatus)
	assert.Len(t, store.payments, 1)
	assert.Equal(t, 1, ledger.settles)
}

func TestSettlePaymentIsIdempotent(t *testing.T) {
	store := newFakeStore()
	booking := seedBooking(store, "b1")
	provider := newMockProvider()
	provider.sessions["sess1"] = paidSession("b1", booking.TrackingID, "pi_1")
	svc, ledger := newPaymentService(store, provider)

	first, err := svc.SettlePayment(context.Background(), "sess1")
	require.NoError(t, err)
	statusAfterFirst := booking.DeliveryStatus

	second, err := svc.SettlePayment(context.Background(), "sess1")
	require.NoError(t, err)
	assert.True(t, second.Success)
	assert.True(t, second.AlreadySettled)
	assert.Equal(t, first.TrackingID, second.TrackingID)

	assert.Len(t, store.payments, 1, "replay must not add a second ledger record")
	assert.Equal(t, statusAfterFirst, booking.DeliveryStatus)
	assert.Equal(t, 1, ledger.settles, "replay must not reach the transactional write")
}

func TestSettlePaymentUnpaidSessionMutatesNothing(t *testing.T) {
	store := newFakeStore()
	booking := seedBooking(store, "b1")
	provider := newMockProvider()
	session := paidSession("b1", booking.TrackingID, "pi_1")
	session.PaymentStatus = "unpaid"
	provider.sessions["sess1"] = session
	svc, _ := newPaymentService(store, provider)

	result, err := svc.SettlePayment(context.Background(), "sess1")
	require.NoError(t, err)
	assert.False(t, result.Success)
	assert.Empty(t, store.payments)
	assert.Equal(t, models.StatusMaterialsPrepared, booking.DeliveryStatus)
	assert.Empty(t, booking.PaymentStatus)
}

func TestSettlePaymentProviderFailureIsRetryable(t *testing.T) {
	provider := newMockProvider()
	provider.resolveErr = errors.New("gateway timeout")
	svc, _ := newPaymentService(newFakeStore(), provider)

	_, err := svc.SettlePayment(context.Background(), "sess1")
	require.Error(t, err)
	assert.Equal(t, utils.CodeExternalProvider, utils.ErrorCode(err))
}

func TestSettlePaymentUnknownBookingWritesNoPayment(t *testing.T) {
	store := newFakeStore()
	provider := newMockProvider()
	provider.sessions["sess1"] = paidSession("ghost", "PS-20260828-ABC123", "pi_1")
	svc, _ := newPaymentService(store, provider)

	_, err := svc.SettlePayment(context.Background(), "sess1")
	require.Error(t, err)
	assert.Equal(t, utils.CodeNotFound, utils.ErrorCode(err))
	assert.Empty(t, store.payments, "a payment must never exist without its booking update")
}

func TestSettlePaymentInsertRaceIsBenign(t *testing.T) {
	store := newFakeStore()
	booking := seedBooking(store, "b1")
	provider := newMockProvider()
	provider.sessions["sess1"] = paidSession("b1", booking.TrackingID, "pi_1")
	svc, ledger := newPaymentService(store, provider)

	// A concurrent settlement wins the insert between the idempotency
	// guard and the transaction.
	ledger.raceWinner = &models.Payment{
		TransactionID: "pi_1",
		ParcelID:      "b1",
		TrackingID:    booking.TrackingID,
		PaymentStatus: models.PaymentStatusPaid,
		PaidAt:        time.Now(),
	}

	result, err := svc.SettlePayment(context.Background(), "sess1")
	require.NoError(t, err, "losing the insert race is a no-op, not a failure")
	assert.True(t, result.Success)
	assert.True(t, result.AlreadySettled)
	assert.Equal(t, booking.TrackingID, result.TrackingID)
	assert.Len(t, store.payments, 1)
}

func TestSettlePaymentMissingSessionIDIsValidation(t *testing.T) {
	svc, _ := newPaymentService(newFakeStore(), newMockProvider())

	_, err := svc.SettlePayment(context.Background(), "")
	require.Error(t, err)
	assert.Equal(t, utils.CodeValidation, utils.ErrorCode(err))
}

func TestListPaymentsFiltersByEmail(t *testing.T) {
	store := newFakeStore()
	store.payments["pi_1"] = &models.Payment{TransactionID: "pi_1", CustomerEmail: "amy@example.com"}
	store.payments["pi_2"] = &models.Payment{TransactionID: "pi_2", CustomerEmail: "bob@example.com"}
	svc, _ := newPaymentService(store, newMockProvider())

	mine, err := svc.ListPayments("amy@example.com")
	require.NoError(t, err)
	require.Len(t, mine, 1)
	assert.Equal(t, "pi_1", mine[0].TransactionID)
}
