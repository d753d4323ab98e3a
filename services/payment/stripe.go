package payment

import (
	"context"
	"fmt"

	"parlorspace/models"

	"github.com/stripe/stripe-go/v76"
	"github.com/stripe/stripe-go/v76/checkout/session"
)

// StripeCheckoutProvider implements CheckoutProvider on Stripe's hosted
// Checkout. The API key is set globally on the stripe package at startup.
type StripeCheckoutProvider struct {
	SuccessURL string
	CancelURL  string
	Currency   string
}

// CreateSession opens a Stripe Checkout session carrying the booking
// reference in its metadata and returns the hosted payment page URL.
func (p *StripeCheckoutProvider) CreateSession(ctx context.Context, req models.CheckoutRequest, amountMinor int64) (string, error) {
	params := &stripe.CheckoutSessionParams{
		Mode:          stripe.String(string(stripe.CheckoutSessionModePayment)),
		CustomerEmail: stripe.String(req.Email),
		SuccessURL:    stripe.String(p.SuccessURL),
		CancelURL:     stripe.String(p.CancelURL),
		LineItems: []*stripe.CheckoutSessionLineItemParams{
			{
				PriceData: &stripe.CheckoutSessionLineItemPriceDataParams{
					Currency:   stripe.String(p.Currency),
					UnitAmount: stripe.Int64(amountMinor),
					ProductData: &stripe.CheckoutSessionLineItemPriceDataProductDataParams{
						Name: stripe.String(req.ServiceName),
					},
				},
				Quantity: stripe.Int64(1),
			},
		},
	}
	params.Context = ctx
	params.AddMetadata("bookingId", req.BookingID)
	params.AddMetadata("trackingId", req.TrackingID)
	params.AddMetadata("itemName", req.ServiceName)

	sess, err := session.New(params)
	if err != nil {
		return "", fmt.Errorf("stripe session create: %w", err)
	}
	return sess.URL, nil
}

// ResolveSession fetches a Checkout session and maps it to the neutral
// session info shape. The payment intent id is the external transaction
// identifier the ledger is keyed by.
func (p *StripeCheckoutProvider) ResolveSession(ctx context.Context, sessionID string) (*models.CheckoutSessionInfo, error) {
	params := &stripe.CheckoutSessionParams{}
	params.Context = ctx
	params.AddExpand("payment_intent")

	sess, err := session.Get(sessionID, params)
	if err != nil {
		return nil, fmt.Errorf("stripe session get: %w", err)
	}

	transactionID := sess.ID
	if sess.PaymentIntent != nil && sess.PaymentIntent.ID != "" {
		transactionID = sess.PaymentIntent.ID
	}
	email := sess.CustomerEmail
	if sess.CustomerDetails != nil && sess.CustomerDetails.Email != "" {
		email = sess.CustomerDetails.Email
	}

	return &models.CheckoutSessionInfo{
		TransactionID: transactionID,
		PaymentStatus: string(sess.PaymentStatus),
		Amount:        float64(sess.AmountTotal) / 100.0,
		Currency:      string(sess.Currency),
		CustomerEmail: email,
		BookingID:     sess.Metadata["bookingId"],
		TrackingID:    sess.Metadata["trackingId"],
		ItemName:      sess.Metadata["itemName"],
	}, nil
}
