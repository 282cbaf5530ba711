package services

import (
	"context"
	"sort"
	"time"

	"magala-server/internal/models"
)

// In-memory repositories for exercising the services without a database.
// Every method bumps calls so tests can assert that a gated operation was
// rejected before any repository access.

type fakeProfileRepo struct {
	profiles map[string]*models.Profile
	calls    int
}

func newFakeProfileRepo() *fakeProfileRepo {
	return &fakeProfileRepo{profiles: make(map[string]*models.Profile)}
}

func (f *fakeProfileRepo) FindByID(ctx context.Context, id string) (*models.Profile, error) {
	f.calls++
	p, ok := f.profiles[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakeProfileRepo) Upsert(ctx context.Context, profile *models.Profile) error {
	f.calls++
	cp := *profile
	now := time.Now()
	if existing, ok := f.profiles[profile.ID]; ok {
		cp.CreatedAt = existing.CreatedAt
	} else {
		cp.CreatedAt = now
	}
	cp.UpdatedAt = now
	f.profiles[cp.ID] = &cp
	*profile = cp
	return nil
}

func (f *fakeProfileRepo) Update(ctx context.Context, profile *models.Profile) error {
	f.calls++
	cp := *profile
	cp.UpdatedAt = time.Now()
	f.profiles[cp.ID] = &cp
	*profile = cp
	return nil
}

func (f *fakeProfileRepo) List(ctx context.Context) ([]models.Profile, error) {
	f.calls++
	out := make([]models.Profile, 0, len(f.profiles))
	for _, p := range f.profiles {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakeProfileRepo) ListApprovedProfessionnels(ctx context.Context) ([]models.Profile, error) {
	f.calls++
	var out []models.Profile
	for _, p := range f.profiles {
		if p.Role == models.RoleProfessionnel && p.StatutApprobation == models.ApprovalApproved {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Nom < out[j].Nom })
	return out, nil
}

type fakeAppointmentRepo struct {
	appointments map[string]*models.Appointment
	calls        int
}

func newFakeAppointmentRepo() *fakeAppointmentRepo {
	return &fakeAppointmentRepo{appointments: make(map[string]*models.Appointment)}
}

func (f *fakeAppointmentRepo) FindByID(ctx context.Context, id string) (*models.Appointment, error) {
	f.calls++
	a, ok := f.appointments[id]
	if !ok {
		return nil, nil
	}
	cp := *a
	return &cp, nil
}

func (f *fakeAppointmentRepo) Create(ctx context.Context, appointment *models.Appointment) error {
	f.calls++
	if appointment.ID == "" {
		appointment.ID = "appointment-" + time.Now().Format("150405.000000000")
	}
	appointment.CreatedAt = time.Now()
	appointment.UpdatedAt = appointment.CreatedAt
	cp := *appointment
	f.appointments[cp.ID] = &cp
	return nil
}

func (f *fakeAppointmentRepo) Update(ctx context.Context, appointment *models.Appointment) error {
	f.calls++
	cp := *appointment
	cp.UpdatedAt = time.Now()
	f.appointments[cp.ID] = &cp
	*appointment = cp
	return nil
}

func (f *fakeAppointmentRepo) List(ctx context.Context) ([]models.Appointment, error) {
	f.calls++
	out := make([]models.Appointment, 0, len(f.appointments))
	for _, a := range f.appointments {
		out = append(out, *a)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateRendezVous.After(out[j].DateRendezVous) })
	return out, nil
}

func (f *fakeAppointmentRepo) ListForPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	f.calls++
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.PatientID == patientID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateRendezVous.After(out[j].DateRendezVous) })
	return out, nil
}

func (f *fakeAppointmentRepo) ListForProfessionnel(ctx context.Context, professionnelID string) ([]models.Appointment, error) {
	f.calls++
	var out []models.Appointment
	for _, a := range f.appointments {
		if a.ProfessionnelID == professionnelID {
			out = append(out, *a)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].DateRendezVous.After(out[j].DateRendezVous) })
	return out, nil
}

type fakePaymentRepo struct {
	payments map[string]*models.Payment
	calls    int
}

func newFakePaymentRepo() *fakePaymentRepo {
	return &fakePaymentRepo{payments: make(map[string]*models.Payment)}
}

func (f *fakePaymentRepo) FindByID(ctx context.Context, id string) (*models.Payment, error) {
	f.calls++
	p, ok := f.payments[id]
	if !ok {
		return nil, nil
	}
	cp := *p
	return &cp, nil
}

func (f *fakePaymentRepo) Update(ctx context.Context, payment *models.Payment) error {
	f.calls++
	cp := *payment
	cp.UpdatedAt = time.Now()
	f.payments[cp.ID] = &cp
	*payment = cp
	return nil
}

func (f *fakePaymentRepo) List(ctx context.Context) ([]models.Payment, error) {
	f.calls++
	out := make([]models.Payment, 0, len(f.payments))
	for _, p := range f.payments {
		out = append(out, *p)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

func (f *fakePaymentRepo) ListForUser(ctx context.Context, userID string) ([]models.Payment, error) {
	f.calls++
	var out []models.Payment
	for _, p := range f.payments {
		if p.UserID == userID {
			out = append(out, *p)
		}
	}
	sort.Slice(out, func(i, j int) bool { return out[i].CreatedAt.After(out[j].CreatedAt) })
	return out, nil
}

type fakeAuditLogRepo struct {
	entries []models.AuditLog
	calls   int
}

func newFakeAuditLogRepo() *fakeAuditLogRepo {
	return &fakeAuditLogRepo{}
}

func (f *fakeAuditLogRepo) Create(ctx context.Context, entry *models.AuditLog) error {
	f.calls++
	entry.CreatedAt = time.Now()
	f.entries = append(f.entries, *entry)
	return nil
}

func (f *fakeAuditLogRepo) ListLatest(ctx context.Context, limit int) ([]models.AuditLog, error) {
	f.calls++
	// Entries are appended in creation order; newest first means reverse.
	out := make([]models.AuditLog, 0, len(f.entries))
	for i := len(f.entries) - 1; i >= 0; i-- {
		out = append(out, f.entries[i])
	}
	if len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
