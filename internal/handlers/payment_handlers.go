package handlers

import (
	"net/http"

	"gym_backend/internal/services"

	"github.com/gin-gonic/gin"
)

// PaymentHandler holds the payment service.
type PaymentHandler struct {
	paymentService services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(ps services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: ps}
}

// CreatePayment records a manual payment against an existing membership.
func (h *PaymentHandler) CreatePayment(c *gin.Context) {
	var req services.CreatePaymentRequest
	if !bindJSON(c, &req, "CreatePayment") {
		return
	}

	payment, err := h.paymentService.CreatePayment(c.Request.Context(), req)
	if err != nil {
		respondServiceError(c, err, "CreatePayment: Error from paymentService.CreatePayment", "Failed to create payment.")
		return
	}
	c.JSON(http.StatusCreated, payment)
}

func (h *PaymentHandler) GetPayments(c *gin.Context) {
	payments, err := h.paymentService.GetPayments(c.Request.Context())
	if err != nil {
		respondServiceError(c, err, "GetPayments: Error from paymentService.GetPayments", "Failed to fetch payments.")
		return
	}
	c.JSON(http.StatusOK, payments)
}

func (h *PaymentHandler) GetPaymentByID(c *gin.Context) {
	paymentID, ok := pathID(c, "payment")
	if !ok {
		return
	}

	payment, err := h.paymentService.GetPaymentByID(c.Request.Context(), paymentID)
	if err != nil {
		respondServiceError(c, err, "GetPaymentByID: Error from paymentService.GetPaymentByID", "Failed to fetch payment.")
		return
	}
	c.JSON(http.StatusOK, payment)
}

func (h *PaymentHandler) DeletePayment(c *gin.Context) {
	paymentID, ok := pathID(c, "payment")
	if !ok {
		return
	}

	if err := h.paymentService.DeletePayment(c.Request.Context(), paymentID); err != nil {
		respondServiceError(c, err, "DeletePayment: Error from paymentService.DeletePayment", "Failed to delete payment.")
		return
	}
	c.JSON(http.StatusOK, gin.H{"message": "Payment deleted successfully"})
}
