package handlers

import (
	"github.com/gin-gonic/gin"

	"magala-server/internal/middleware"
	"magala-server/internal/services"
	"magala-server/internal/utils"
)

// AdminHandler exposes the admin console operations. Routing to these
// handlers is already gated by AdminMiddleware; the service re-checks the
// actor on every call.
type AdminHandler struct {
	Admin services.AdminService
}

// NewAdminHandler creates a new AdminHandler.
func NewAdminHandler(admin services.AdminService) *AdminHandler {
	return &AdminHandler{Admin: admin}
}

func requestMeta(c *gin.Context) services.RequestMeta {
	return services.RequestMeta{
		IPAddress: c.ClientIP(),
		UserAgent: c.Request.UserAgent(),
	}
}

// GetUsers lists every profile, newest-created first.
func (h *AdminHandler) GetUsers(c *gin.Context) {
	actor, _ := middleware.GetProfileFromContext(c)

	users, err := h.Admin.ListUsers(c.Request.Context(), actor)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, "Users fetched successfully", users)
}

// UpdateUserRoleRequest represents the request body for a role change.
type UpdateUserRoleRequest struct {
	Role string `json:"role" binding:"required"`
}

// UpdateUserRole changes a user's role.
func (h *AdminHandler) UpdateUserRole(c *gin.Context) {
	actor, _ := middleware.GetProfileFromContext(c)
	userID := c.Param("id")

	var req UpdateUserRoleRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	profile, err := h.Admin.UpdateUserRole(c.Request.Context(), actor, userID, req.Role, requestMeta(c))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, "User role updated successfully", profile)
}

// UpdateUserStatusRequest represents the request body for an approval change.
type UpdateUserStatusRequest struct {
	Statut string `json:"statut" binding:"required"`
}

// UpdateUserStatus changes a professional's approval status.
func (h *AdminHandler) UpdateUserStatus(c *gin.Context) {
	actor, _ := middleware.GetProfileFromContext(c)
	userID := c.Param("id")

	var req UpdateUserStatusRequest
	if !utils.BindAndValidate(c, &req) {
		return
	}

	profile, err := h.Admin.UpdateUserStatus(c.Request.Context(), actor, userID, req.Statut, requestMeta(c))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, "User status updated successfully", profile)
}

// GetAppointments lists every appointment with both participants, newest
// scheduled first.
func (h *AdminHandler) GetAppointments(c *gin.Context) {
	actor, _ := middleware.GetProfileFromContext(c)

	appointments, err := h.Admin.ListAppointments(c.Request.Context(), actor)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, "Appointments fetched successfully", appointments)
}

// CancelAppointment sets an appointment's status to cancelled.
func (h *AdminHandler) CancelAppointment(c *gin.Context) {
	actor, _ := middleware.GetProfileFromContext(c)
	appointmentID := c.Param("id")

	appointment, err := h.Admin.CancelAppointment(c.Request.Context(), actor, appointmentID, requestMeta(c))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, "Appointment cancelled successfully", appointment)
}

// GetPayments lists every payment with the owning profile, newest first.
func (h *AdminHandler) GetPayments(c *gin.Context) {
	actor, _ := middleware.GetProfileFromContext(c)

	payments, err := h.Admin.ListPayments(c.Request.Context(), actor)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, "Payments fetched successfully", payments)
}

// RefundPayment sets a payment's status to refunded.
func (h *AdminHandler) RefundPayment(c *gin.Context) {
	actor, _ := middleware.GetProfileFromContext(c)
	paymentID := c.Param("id")

	payment, err := h.Admin.RefundPayment(c.Request.Context(), actor, paymentID, requestMeta(c))
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, "Payment refunded successfully", payment)
}

// GetAuditLogs lists the latest audit entries with their actor, newest first.
func (h *AdminHandler) GetAuditLogs(c *gin.Context) {
	actor, _ := middleware.GetProfileFromContext(c)

	entries, err := h.Admin.ListAuditLogs(c.Request.Context(), actor)
	if err != nil {
		utils.FromError(c, err)
		return
	}
	utils.Success(c, "Audit logs fetched successfully", entries)
}
