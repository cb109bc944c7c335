package services

import (
	"ClinicBook/models"
	"ClinicBook/repositories"
	"context"
)

type BillingService struct {
	repository *repositories.BillingRepository
}

func NewBillingService(repository *repositories.BillingRepository) *BillingService {
	return &BillingService{repository: repository}
}

func (s *BillingService) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	return s.repository.CreateInvoice(ctx, invoice)
}

func (s *BillingService) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	return s.repository.GetInvoice(ctx, id)
}

func (s *BillingService) GetInvoiceByAppointment(ctx context.Context, appointmentID string) (*models.Invoice, error) {
	return s.repository.GetInvoiceByAppointment(ctx, appointmentID)
}

func (s *BillingService) UpdateInvoice(ctx context.Context, invoice *models.Invoice) error {
	return s.repository.UpdateInvoice(ctx, invoice)
}

func (s *BillingService) DeleteInvoice(ctx context.Context, id string) error {
	return s.repository.DeleteInvoice(ctx, id)
}

func (s *BillingService) RecordPayment(ctx context.Context, payment *models.Payment) error {
	return s.repository.RecordPayment(ctx, payment)
}

func (s *BillingService) ListPayments(ctx context.Context, invoiceID string) ([]models.Payment, error) {
	return s.repository.ListPayments(ctx, invoiceID)
}
