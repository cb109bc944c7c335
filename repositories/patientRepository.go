package repositories

import (
	"ClinicBook/cache"
	"ClinicBook/database"
	"ClinicBook/models"
	"ClinicBook/store"
	"context"
	"encoding/json"
	"fmt"
	"log"
	"time"

	"github.com/google/uuid"
)

const PatientCacheExpiry = 24 * time.Hour

type PatientRepository struct {
	store *store.Store
	cache *cache.Cache
}

func NewPatientRepository(store *store.Store, cache *cache.Cache) *PatientRepository {
	return &PatientRepository{store: store, cache: cache}
}

func (r *PatientRepository) Create(ctx context.Context, patient *models.Patient) error {
	patient.ID = uuid.New().String()
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Create(ctx, patient); err != nil {
			return err
		}
		return r.invalidate(ctx, patient.ID)
	})
}

func (r *PatientRepository) GetByID(ctx context.Context, id string) (*models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getPatientCacheKey(id)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var patient models.Patient
		if err := json.Unmarshal([]byte(cached), &patient); err == nil {
			return &patient, nil
		}
	} else if err != nil {
		log.Printf("Failed to get patient from cache: %v", err)
	}

	var patient models.Patient
	if err := r.store.Get(ctx, &patient, id); err != nil {
		return nil, err
	}

	patientJSON, err := json.Marshal(patient)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patient: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patient in cache: %v", err)
	}

	return &patient, nil
}

func (r *PatientRepository) GetAll(ctx context.Context) ([]models.Patient, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "patients_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var patients []models.Patient
		if err := json.Unmarshal([]byte(cached), &patients); err == nil {
			return patients, nil
		}
	} else if err != nil {
		log.Printf("Failed to get patients from cache: %v", err)
	}

	var patients []models.Patient
	if err := database.DB.WithContext(ctx).
		Order("last_name, first_name").
		Find(&patients).Error; err != nil {
		return nil, fmt.Errorf("failed to get all patients: %w", err)
	}

	patientsJSON, err := json.Marshal(patients)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal patients: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, patientsJSON, PatientCacheExpiry); err != nil {
		log.Printf("Failed to set patients in cache: %v", err)
	}

	return patients, nil
}

func (r *PatientRepository) Update(ctx context.Context, patient *models.Patient) error {
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Update(ctx, patient); err != nil {
			return err
		}
		return r.invalidate(ctx, patient.ID)
	})
}

// Delete removes a patient. The delete is blocked while appointments
// reference the patient.
func (r *PatientRepository) Delete(ctx context.Context, id string) error {
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Delete(ctx, "patient", id); err != nil {
			return err
		}
		return r.invalidate(ctx, id)
	})
}

func (r *PatientRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getPatientCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete patient cache: %w", err)
	}
	return r.cache.Delete(ctx, "patients_cache")
}

func (r *PatientRepository) getPatientCacheKey(id string) string {
	return fmt.Sprintf("patient_cache:%s", id)
}
