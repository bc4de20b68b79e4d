package handlers

import (
	"net/http"

	"fitclub_backend/internal/models"
	"fitclub_backend/internal/services"
	"fitclub_backend/pkg/utils"

	"github.com/gin-gonic/gin"
)

// PaymentHandler handles the payment ledger endpoints.
type PaymentHandler struct {
	paymentService *services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(paymentService *services.PaymentService) *PaymentHandler {
	return &PaymentHandler{paymentService: paymentService}
}

// RecordPayment handles POST /api/v1/payments for custom charges.
func (h *PaymentHandler) RecordPayment(c *gin.Context) {
	var req services.RecordPaymentRequest
	if err := c.ShouldBindJSON(&req); err != nil {
		utils.RespondValidationFailed(c, err.Error())
		return
	}

	payment, err := h.paymentService.RecordCustomCharge(req)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusCreated, payment)
}

// ListPayments handles GET /api/v1/payments with search, method and date
// filters, returning the rows plus their sum.
func (h *PaymentHandler) ListPayments(c *gin.Context) {
	filters := models.PaymentFilters{
		Search: c.Query("search"),
		Method: c.Query("method"),
		Date:   c.Query("date"),
	}

	result, err := h.paymentService.GetPayments(filters)
	if err != nil {
		respondServiceError(c, err)
		return
	}
	c.JSON(http.StatusOK, result)
}
