package handlers

import (
	"net/http"

	"parlorspace/models"
	"parlorspace/services/payment"
	"parlorspace/utils"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// PaymentHandler exposes the checkout and settlement endpoints.
type PaymentHandler struct {
	Service payment.PaymentService
}

// NewPaymentHandler creates a PaymentHandler over the given service.
func NewPaymentHandler(svc payment.PaymentService) *PaymentHandler {
	return &PaymentHandler{Service: svc}
}

// CreateCheckoutSessionHandler handles POST /payment-checkout-session and
// answers with the hosted payment page URL.
func (h *PaymentHandler) CreateCheckoutSessionHandler(c *gin.Context) {
	var req models.CheckoutRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		c.JSON(http.StatusBadRequest, gin.H{"error": "invalid input", "details": err.Error()})
		return
	}

	url, err := h.Service.CreateCheckoutSession(c.Request.Context(), req)
	if err != nil {
		utils.GetLogger().Error("checkout session failed",
			zap.String("bookingId", req.BookingID), zap.Error(err))
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, gin.H{"url": url})
}

// SettlePaymentHandler handles PATCH /payment-success?session_id=.
func (h *PaymentHandler) SettlePaymentHandler(c *gin.Context) {
	sessionID := c.Query("session_id")
	if sessionID == "" {
		c.JSON(http.StatusBadRequest, gin.H{"message": "session_id is required"})
		return
	}

	result, err := h.Service.SettlePayment(c.Request.Context(), sessionID)
	if err != nil {
		utils.GetLogger().Error("settlement failed",
			zap.String("sessionId", sessionID), zap.Error(err))
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	c.JSON(http.StatusOK, result)
}

// ListPaymentsHandler handles GET /payments?email=.
func (h *PaymentHandler) ListPaymentsHandler(c *gin.Context) {
	payments, err := h.Service.ListPayments(c.Query("email"))
	if err != nil {
		c.JSON(utils.HTTPStatus(err), gin.H{"error": err.Error()})
		return
	}
	if payments == nil {
		payments = []models.Payment{}
	}
	c.JSON(http.StatusOK, payments)
}
