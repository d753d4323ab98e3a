package models

import "time"

// Payment is a ledger record of one settled checkout. TransactionID is the
// external provider's identifier and is the unique key of the ledger:
// at most one record may ever exist per transaction. ParcelID is the wire
// name the original contract uses for the referenced booking id.
type Payment struct {
	TransactionID string    `bson:"transactionId" json:"transactionId"`
	ParcelID      string    `bson:"parcelId" json:"parcelId"`
	TrackingID    string    `bson:"trackingId" json:"trackingId"`
	Amount        float64   `bson:"amount" json:"amount"`
	Currency      string    `bson:"currency" json:"currency"`
	CustomerEmail string    `bson:"customerEmail" json:"customerEmail"`
	PaymentStatus string    `bson:"paymentStatus" json:"paymentStatus"`
	PaidAt        time.Time `bson:"paidAt" json:"paidAt"`
}

// CheckoutRequest starts a hosted checkout session for a booking.
type CheckoutRequest struct {
	BookingID   string  `json:"bookingId"`
	TrackingID  string  `json:"trackingId"`
	Cost        float64 `json:"cost"`
	Email       string  `json:"email"`
	ServiceName string  `json:"serviceName"`
}

// CheckoutSessionInfo is what the external provider reports back for a
// resolved checkout session.
type CheckoutSessionInfo struct {
	TransactionID string
	PaymentStatus string
	Amount        float64
	Currency      string
	CustomerEmail string
	BookingID     string
	TrackingID    string
	ItemName      string
}

// SettlementResult is the outcome of recording a confirmed checkout.
type SettlementResult struct {
	Success        bool     `json:"success"`
	AlreadySettled bool     `json:"alreadySettled"`
	MatchedCount   int64    `json:"matchedCount"`
	ModifiedCount  int64    `json:"modifiedCount"`
	Payment        *Payment `json:"payment,omitempty"`
	TrackingID     string   `json:"trackingId"`
	TransactionID  string   `json:"transactionId"`
	Message        string   `json:"message,omitempty"`
}
