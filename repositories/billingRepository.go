package repositories

import (
	"ClinicBook/database"
	"ClinicBook/models"
	"ClinicBook/store"
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
)

type BillingRepository struct {
	store *store.Store
}

func NewBillingRepository(store *store.Store) *BillingRepository {
	return &BillingRepository{store: store}
}

func (r *BillingRepository) CreateInvoice(ctx context.Context, invoice *models.Invoice) error {
	invoice.ID = uuid.New().String()
	if invoice.Status == "" {
		invoice.Status = models.InvoiceUnpaid
	}
	if invoice.IssuedAt.IsZero() {
		invoice.IssuedAt = time.Now().UTC()
	}
	return database.WithWriteLock(ctx, func() error {
		return r.store.Create(ctx, invoice)
	})
}

func (r *BillingRepository) GetInvoice(ctx context.Context, id string) (*models.Invoice, error) {
	var invoice models.Invoice
	if err := r.store.Get(ctx, &invoice, id); err != nil {
		return nil, err
	}
	payments, err := r.ListPayments(ctx, id)
	if err != nil {
		return nil, err
	}
	invoice.Payments = payments
	return &invoice, nil
}

// GetInvoiceByAppointment returns the invoice attached to an
// appointment, or store.ErrNotFound when the appointment has none.
func (r *BillingRepository) GetInvoiceByAppointment(ctx context.Context, appointmentID string) (*models.Invoice, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var invoices []models.Invoice
	if err := database.DB.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Limit(1).
		Find(&invoices).Error; err != nil {
		return nil, fmt.Errorf("failed to get invoice by appointment: %w", err)
	}
	if len(invoices) == 0 {
		return nil, fmt.Errorf("invoice for appointment %s: %w", appointmentID, store.ErrNotFound)
	}
	return &invoices[0], nil
}

func (r *BillingRepository) UpdateInvoice(ctx context.Context, invoice *models.Invoice) error {
	return database.WithWriteLock(ctx, func() error {
		return r.store.Update(ctx, invoice)
	})
}

// DeleteInvoice removes an invoice and cascades into its payments.
func (r *BillingRepository) DeleteInvoice(ctx context.Context, id string) error {
	return database.WithWriteLock(ctx, func() error {
		return r.store.Delete(ctx, "invoice", id)
	})
}

// RecordPayment inserts a payment and rolls its amount into the
// invoice's paid total and status. Both writes commit in one store
// transaction; the write lock keeps the read-modify-write from
// interleaving with other mutations.
func (r *BillingRepository) RecordPayment(ctx context.Context, payment *models.Payment) error {
	payment.ID = uuid.New().String()
	if payment.PaidAt.IsZero() {
		payment.PaidAt = time.Now().UTC()
	}
	return database.WithWriteLock(ctx, func() error {
		var invoice models.Invoice
		if err := r.store.Get(ctx, &invoice, payment.InvoiceID); err != nil {
			return err
		}

		invoice.AmountPaid += payment.Amount
		switch {
		case invoice.AmountPaid >= invoice.AmountDue:
			invoice.Status = models.InvoicePaid
		case invoice.AmountPaid > 0:
			invoice.Status = models.InvoicePartiallyPaid
		}
		return r.store.CreateWithUpdate(ctx, payment, &invoice)
	})
}

// ListPayments returns the payments recorded against an invoice.
func (r *BillingRepository) ListPayments(ctx context.Context, invoiceID string) ([]models.Payment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var payments []models.Payment
	if err := database.DB.WithContext(ctx).
		Where("invoice_id = ?", invoiceID).
		Order("paid_at").
		Find(&payments).Error; err != nil {
		return nil, fmt.Errorf("failed to list invoice payments: %w", err)
	}
	return payments, nil
}
