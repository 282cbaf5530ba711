package services

import (
	"context"

	"magala-server/internal/models"
	"magala-server/internal/repository"
)

type PaymentService interface {
	// ListForActor returns the actor's own payments, newest first.
	ListForActor(ctx context.Context, actor *models.Profile) ([]models.Payment, error)
}

type paymentService struct {
	payments repository.PaymentRepository
}

func NewPaymentService(payments repository.PaymentRepository) PaymentService {
	return &paymentService{payments: payments}
}

func (s *paymentService) ListForActor(ctx context.Context, actor *models.Profile) ([]models.Payment, error) {
	if actor == nil {
		return nil, ErrUnauthorized
	}
	return s.payments.ListForUser(ctx, actor.ID)
}
