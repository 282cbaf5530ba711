package handlers

import (
	"github.com/gin-gonic/gin"

	"magala-server/internal/middleware"
	"magala-server/internal/services"
	"magala-server/internal/utils"
)

// PaymentHandler handles the caller's own payments.
type PaymentHandler struct {
	Payments services.PaymentService
}

// NewPaymentHandler creates a new PaymentHandler.
func NewPaymentHandler(payments services.PaymentService) *PaymentHandler {
	return &PaymentHandler{Payments: payments}
}

// GetPayments lists the caller's payments, newest first.
func (h *PaymentHandler) GetPayments(c *gin.Context) {
	profile, exists := middleware.GetProfileFromContext(c)
	if !exists {
		utils.Unauthorized(c, "User not authenticated")
		return
	}

	payments, err := h.Payments.ListForActor(c.Request.Context(), profile)
	if err != nil {
		utils.FromError(c, err)
		return
	}

	utils.Success(c, "Payments fetched successfully", payments)
}
