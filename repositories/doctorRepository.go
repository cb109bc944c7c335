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

const DoctorCacheExpiry = 7 * 24 * time.Hour

type DoctorRepository struct {
	store *store.Store
	cache *cache.Cache
}

func NewDoctorRepository(store *store.Store, cache *cache.Cache) *DoctorRepository {
	return &DoctorRepository{store: store, cache: cache}
}

func (r *DoctorRepository) Create(ctx context.Context, doctor *models.Doctor) error {
	doctor.ID = uuid.New().String()
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Create(ctx, doctor); err != nil {
			return err
		}
		return r.invalidate(ctx, doctor.ID)
	})
}

func (r *DoctorRepository) GetByID(ctx context.Context, id string) (*models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getDoctorCacheKey(id)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var doctor models.Doctor
		if err := json.Unmarshal([]byte(cached), &doctor); err == nil {
			return &doctor, nil
		}
	} else if err != nil {
		log.Printf("Failed to get doctor from cache: %v", err)
	}

	var doctor models.Doctor
	if err := r.store.Get(ctx, &doctor, id); err != nil {
		return nil, err
	}

	doctorJSON, err := json.Marshal(doctor)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal doctor: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, doctorJSON, DoctorCacheExpiry); err != nil {
		log.Printf("Failed to set doctor in cache: %v", err)
	}

	return &doctor, nil
}

func (r *DoctorRepository) GetAll(ctx context.Context) ([]models.Doctor, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "doctors_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var doctors []models.Doctor
		if err := json.Unmarshal([]byte(cached), &doctors); err == nil {
			return doctors, nil
		}
	} else if err != nil {
		log.Printf("Failed to get doctors from cache: %v", err)
	}

	var doctors []models.Doctor
	if err := database.DB.WithContext(ctx).
		Order("last_name, first_name").
		Find(&doctors).Error; err != nil {
		return nil, fmt.Errorf("failed to get all doctors: %w", err)
	}

	doctorsJSON, err := json.Marshal(doctors)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal doctors: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, doctorsJSON, DoctorCacheExpiry); err != nil {
		log.Printf("Failed to set doctors in cache: %v", err)
	}

	return doctors, nil
}

func (r *DoctorRepository) Update(ctx context.Context, doctor *models.Doctor) error {
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Update(ctx, doctor); err != nil {
			return err
		}
		return r.invalidate(ctx, doctor.ID)
	})
}

// Delete removes a doctor. Specialty links are cascade-deleted by the
// store; the delete is blocked while appointments reference the doctor.
func (r *DoctorRepository) Delete(ctx context.Context, id string) error {
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Delete(ctx, "doctor", id); err != nil {
			return err
		}
		return r.invalidate(ctx, id)
	})
}

// AddSpecialty links a doctor to a specialty.
func (r *DoctorRepository) AddSpecialty(ctx context.Context, doctorID, specialtyID string) error {
	link := &models.DoctorSpecialty{DoctorID: doctorID, SpecialtyID: specialtyID}
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Create(ctx, link); err != nil {
			return err
		}
		return r.invalidate(ctx, doctorID)
	})
}

// RemoveSpecialty unlinks a doctor from a specialty.
func (r *DoctorRepository) RemoveSpecialty(ctx context.Context, doctorID, specialtyID string) error {
	link := &models.DoctorSpecialty{DoctorID: doctorID, SpecialtyID: specialtyID}
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.DeleteComposite(ctx, link); err != nil {
			return err
		}
		return r.invalidate(ctx, doctorID)
	})
}

// ListSpecialties returns the specialties linked to a doctor.
func (r *DoctorRepository) ListSpecialties(ctx context.Context, doctorID string) ([]models.Specialty, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var specialties []models.Specialty
	err := database.DB.WithContext(ctx).
		Joins("JOIN doctor_specialty ON doctor_specialty.specialty_id = specialty.id").
		Where("doctor_specialty.doctor_id = ?", doctorID).
		Order("specialty.name").
		Find(&specialties).Error
	if err != nil {
		return nil, fmt.Errorf("failed to list doctor specialties: %w", err)
	}
	return specialties, nil
}

func (r *DoctorRepository) invalidate(ctx context.Context, id string) error {
	if err := r.cache.Delete(ctx, r.getDoctorCacheKey(id)); err != nil {
		return fmt.Errorf("failed to delete doctor cache: %w", err)
	}
	return r.cache.Delete(ctx, "doctors_cache")
}

func (r *DoctorRepository) getDoctorCacheKey(id string) string {
	return fmt.Sprintf("doctor_cache:%s", id)
}
