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

const MedicationCacheExpiry = 7 * 24 * time.Hour

type MedicationRepository struct {
	store *store.Store
	cache *cache.Cache
}

func NewMedicationRepository(store *store.Store, cache *cache.Cache) *MedicationRepository {
	return &MedicationRepository{store: store, cache: cache}
}

func (r *MedicationRepository) Create(ctx context.Context, medication *models.Medication) error {
	medication.ID = uuid.New().String()
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Create(ctx, medication); err != nil {
			return err
		}
		return r.cache.Delete(ctx, "medications_cache")
	})
}

func (r *MedicationRepository) GetByID(ctx context.Context, id string) (*models.Medication, error) {
	var medication models.Medication
	if err := r.store.Get(ctx, &medication, id); err != nil {
		return nil, err
	}
	return &medication, nil
}

func (r *MedicationRepository) GetAll(ctx context.Context) ([]models.Medication, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "medications_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var medications []models.Medication
		if err := json.Unmarshal([]byte(cached), &medications); err == nil {
			return medications, nil
		}
	} else if err != nil {
		log.Printf("Failed to get medications from cache: %v", err)
	}

	var medications []models.Medication
	if err := database.DB.WithContext(ctx).Order("name").Find(&medications).Error; err != nil {
		return nil, fmt.Errorf("failed to get all medications: %w", err)
	}

	medicationsJSON, err := json.Marshal(medications)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal medications: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, medicationsJSON, MedicationCacheExpiry); err != nil {
		log.Printf("Failed to set medications in cache: %v", err)
	}

	return medications, nil
}

func (r *MedicationRepository) Update(ctx context.Context, medication *models.Medication) error {
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Update(ctx, medication); err != nil {
			return err
		}
		return r.cache.Delete(ctx, "medications_cache")
	})
}

// Delete removes a medication. The delete is blocked while prescription
// items reference it.
func (r *MedicationRepository) Delete(ctx context.Context, id string) error {
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Delete(ctx, "medication", id); err != nil {
			return err
		}
		return r.cache.Delete(ctx, "medications_cache")
	})
}
