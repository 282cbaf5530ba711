package services

import (
	"context"
	"encoding/json"
	"log"

	"gorm.io/datatypes"

	"magala-server/internal/models"
	"magala-server/internal/repository"
)

// RequestMeta carries request-origin details recorded on audit entries.
type RequestMeta struct {
	IPAddress string
	UserAgent string
}

// AdminService is the role-gated facade over the four collections the admin
// console works with. Every operation re-checks the actor's role before
// touching a repository; a non-admin caller is rejected without any side
// effect. Mutations append an audit entry on success.
type AdminService interface {
	ListUsers(ctx context.Context, actor *models.Profile) ([]models.Profile, error)
	UpdateUserRole(ctx context.Context, actor *models.Profile, userID, newRole string, meta RequestMeta) (*models.Profile, error)
	UpdateUserStatus(ctx context.Context, actor *models.Profile, userID, newStatus string, meta RequestMeta) (*models.Profile, error)
	ListAppointments(ctx context.Context, actor *models.Profile) ([]models.Appointment, error)
	CancelAppointment(ctx context.Context, actor *models.Profile, appointmentID string, meta RequestMeta) (*models.Appointment, error)
	ListPayments(ctx context.Context, actor *models.Profile) ([]models.Payment, error)
	RefundPayment(ctx context.Context, actor *models.Profile, paymentID string, meta RequestMeta) (*models.Payment, error)
	ListAuditLogs(ctx context.Context, actor *models.Profile) ([]models.AuditLog, error)
}

type adminService struct {
	profiles     repository.ProfileRepository
	appointments repository.AppointmentRepository
	payments     repository.PaymentRepository
	auditLogs    repository.AuditLogRepository
	auditLimit   int
}

func NewAdminService(
	profiles repository.ProfileRepository,
	appointments repository.AppointmentRepository,
	payments repository.PaymentRepository,
	auditLogs repository.AuditLogRepository,
	auditLimit int,
) AdminService {
	return &adminService{
		profiles:     profiles,
		appointments: appointments,
		payments:     payments,
		auditLogs:    auditLogs,
		auditLimit:   auditLimit,
	}
}

// authorize is the operation gate: it fails fast, before any repository
// call, when the actor is not an admin.
func (s *adminService) authorize(actor *models.Profile) error {
	if !actor.IsAdmin() {
		return ErrUnauthorized
	}
	return nil
}

func (s *adminService) ListUsers(ctx context.Context, actor *models.Profile) ([]models.Profile, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	return s.profiles.List(ctx)
}

func (s *adminService) UpdateUserRole(ctx context.Context, actor *models.Profile, userID, newRole string, meta RequestMeta) (*models.Profile, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	role, err := models.ParseRole(newRole)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, repository.ErrNotFound
	}

	before := *profile
	profile.ChangeRole(role)
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, actor, "update_user_role", "profiles", profile.ID, before, *profile, meta)
	return profile, nil
}

func (s *adminService) UpdateUserStatus(ctx context.Context, actor *models.Profile, userID, newStatus string, meta RequestMeta) (*models.Profile, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	status, err := models.ParseApprovalStatus(newStatus)
	if err != nil {
		return nil, err
	}

	profile, err := s.profiles.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	if profile == nil {
		return nil, repository.ErrNotFound
	}

	before := *profile
	profile.StatutApprobation = status
	if err := s.profiles.Update(ctx, profile); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, actor, "update_user_status", "profiles", profile.ID, before, *profile, meta)
	return profile, nil
}

func (s *adminService) ListAppointments(ctx context.Context, actor *models.Profile) ([]models.Appointment, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	return s.appointments.List(ctx)
}

func (s *adminService) CancelAppointment(ctx context.Context, actor *models.Profile, appointmentID string, meta RequestMeta) (*models.Appointment, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	appointment, err := s.appointments.FindByID(ctx, appointmentID)
	if err != nil {
		return nil, err
	}
	if appointment == nil {
		return nil, repository.ErrNotFound
	}

	before := *appointment
	appointment.Statut = models.AppointmentCancelled
	if err := s.appointments.Update(ctx, appointment); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, actor, "cancel_appointment", "appointments", appointment.ID, before, *appointment, meta)
	return appointment, nil
}

func (s *adminService) ListPayments(ctx context.Context, actor *models.Profile) ([]models.Payment, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	return s.payments.List(ctx)
}

func (s *adminService) RefundPayment(ctx context.Context, actor *models.Profile, paymentID string, meta RequestMeta) (*models.Payment, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}

	payment, err := s.payments.FindByID(ctx, paymentID)
	if err != nil {
		return nil, err
	}
	if payment == nil {
		return nil, repository.ErrNotFound
	}

	before := *payment
	payment.Statut = models.PaymentRefunded
	if err := s.payments.Update(ctx, payment); err != nil {
		return nil, err
	}

	s.recordAudit(ctx, actor, "refund_payment", "payments", payment.ID, before, *payment, meta)
	return payment, nil
}

func (s *adminService) ListAuditLogs(ctx context.Context, actor *models.Profile) ([]models.AuditLog, error) {
	if err := s.authorize(actor); err != nil {
		return nil, err
	}
	return s.auditLogs.ListLatest(ctx, s.auditLimit)
}

// recordAudit appends an audit entry for a successful mutation. The mutation
// has already been committed at this point, so a failed audit write is
// logged rather than turned into an operation failure.
func (s *adminService) recordAudit(ctx context.Context, actor *models.Profile, action, tableName, recordID string, before, after interface{}, meta RequestMeta) {
	entry := &models.AuditLog{
		UserID:    &actor.ID,
		Action:    action,
		TableName: &tableName,
		RecordID:  &recordID,
		OldValues: marshalJSON(before),
		NewValues: marshalJSON(after),
	}
	if meta.IPAddress != "" {
		entry.IPAddress = &meta.IPAddress
	}
	if meta.UserAgent != "" {
		entry.UserAgent = &meta.UserAgent
	}

	if err := s.auditLogs.Create(ctx, entry); err != nil {
		log.Printf("failed to record audit entry for %s on %s/%s: %v", action, tableName, recordID, err)
	}
}

func marshalJSON(value interface{}) datatypes.JSON {
	data, err := json.Marshal(value)
	if err != nil {
		return nil
	}
	return datatypes.JSON(data)
}
