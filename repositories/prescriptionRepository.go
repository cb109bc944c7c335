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

type PrescriptionRepository struct {
	store *store.Store
}

func NewPrescriptionRepository(store *store.Store) *PrescriptionRepository {
	return &PrescriptionRepository{store: store}
}

// Create inserts a prescription together with its items in a single
// transaction. A prescription with a bad item is not written at all.
func (r *PrescriptionRepository) Create(ctx context.Context, prescription *models.Prescription) error {
	prescription.ID = uuid.New().String()

	recs := make([]interface{}, 0, len(prescription.Items)+1)
	recs = append(recs, prescription)
	for i := range prescription.Items {
		prescription.Items[i].PrescriptionID = prescription.ID
		recs = append(recs, &prescription.Items[i])
	}

	return database.WithWriteLock(ctx, func() error {
		return r.store.CreateAll(ctx, recs...)
	})
}

func (r *PrescriptionRepository) GetByID(ctx context.Context, id string) (*models.Prescription, error) {
	var prescription models.Prescription
	if err := r.store.Get(ctx, &prescription, id); err != nil {
		return nil, err
	}
	if err := r.loadItems(ctx, &prescription); err != nil {
		return nil, err
	}
	return &prescription, nil
}

// GetByAppointment returns the prescription attached to an appointment,
// or store.ErrNotFound when the appointment has none.
func (r *PrescriptionRepository) GetByAppointment(ctx context.Context, appointmentID string) (*models.Prescription, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var prescriptions []models.Prescription
	if err := database.DB.WithContext(ctx).
		Where("appointment_id = ?", appointmentID).
		Limit(1).
		Find(&prescriptions).Error; err != nil {
		return nil, fmt.Errorf("failed to get prescription by appointment: %w", err)
	}
	if len(prescriptions) == 0 {
		return nil, fmt.Errorf("prescription for appointment %s: %w", appointmentID, store.ErrNotFound)
	}
	if err := r.loadItems(ctx, &prescriptions[0]); err != nil {
		return nil, err
	}
	return &prescriptions[0], nil
}

func (r *PrescriptionRepository) Update(ctx context.Context, prescription *models.Prescription) error {
	return database.WithWriteLock(ctx, func() error {
		return r.store.Update(ctx, prescription)
	})
}

// Delete removes a prescription and cascades into its items.
func (r *PrescriptionRepository) Delete(ctx context.Context, id string) error {
	return database.WithWriteLock(ctx, func() error {
		return r.store.Delete(ctx, "prescription", id)
	})
}

// AddItem attaches a medication line to an existing prescription.
func (r *PrescriptionRepository) AddItem(ctx context.Context, item *models.PrescriptionItem) error {
	return database.WithWriteLock(ctx, func() error {
		return r.store.Create(ctx, item)
	})
}

// RemoveItem detaches a medication line from a prescription.
func (r *PrescriptionRepository) RemoveItem(ctx context.Context, prescriptionID, medicationID string) error {
	item := &models.PrescriptionItem{PrescriptionID: prescriptionID, MedicationID: medicationID}
	return database.WithWriteLock(ctx, func() error {
		return r.store.DeleteComposite(ctx, item)
	})
}

// ListItems returns the medication lines of a prescription.
func (r *PrescriptionRepository) ListItems(ctx context.Context, prescriptionID string) ([]models.PrescriptionItem, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var items []models.PrescriptionItem
	if err := database.DB.WithContext(ctx).
		Where("prescription_id = ?", prescriptionID).
		Order("medication_id").
		Find(&items).Error; err != nil {
		return nil, fmt.Errorf("failed to list prescription items: %w", err)
	}
	return items, nil
}

func (r *PrescriptionRepository) loadItems(ctx context.Context, prescription *models.Prescription) error {
	items, err := r.ListItems(ctx, prescription.ID)
	if err != nil {
		return err
	}
	prescription.Items = items
	return nil
}
