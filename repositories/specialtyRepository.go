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

const SpecialtyCacheExpiry = 7 * 24 * time.Hour

type SpecialtyRepository struct {
	store *store.Store
	cache *cache.Cache
}

func NewSpecialtyRepository(store *store.Store, cache *cache.Cache) *SpecialtyRepository {
	return &SpecialtyRepository{store: store, cache: cache}
}

func (r *SpecialtyRepository) Create(ctx context.Context, specialty *models.Specialty) error {
	specialty.ID = uuid.New().String()
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Create(ctx, specialty); err != nil {
			return err
		}
		return r.cache.Delete(ctx, "specialties_cache")
	})
}

func (r *SpecialtyRepository) GetByID(ctx context.Context, id string) (*models.Specialty, error) {
	var specialty models.Specialty
	if err := r.store.Get(ctx, &specialty, id); err != nil {
		return nil, err
	}
	return &specialty, nil
}

// GetAll returns the specialty catalog. The catalog changes rarely, so
// the whole listing is cached as one entry.
func (r *SpecialtyRepository) GetAll(ctx context.Context) ([]models.Specialty, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "specialties_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var specialties []models.Specialty
		if err := json.Unmarshal([]byte(cached), &specialties); err == nil {
			return specialties, nil
		}
	} else if err != nil {
		log.Printf("Failed to get specialties from cache: %v", err)
	}

	var specialties []models.Specialty
	if err := database.DB.WithContext(ctx).Order("name").Find(&specialties).Error; err != nil {
		return nil, fmt.Errorf("failed to get all specialties: %w", err)
	}

	specialtiesJSON, err := json.Marshal(specialties)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal specialties: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, specialtiesJSON, SpecialtyCacheExpiry); err != nil {
		log.Printf("Failed to set specialties in cache: %v", err)
	}

	return specialties, nil
}

func (r *SpecialtyRepository) Update(ctx context.Context, specialty *models.Specialty) error {
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Update(ctx, specialty); err != nil {
			return err
		}
		return r.cache.Delete(ctx, "specialties_cache")
	})
}

// Delete removes a specialty. The delete is blocked while any doctor is
// still linked to it.
func (r *SpecialtyRepository) Delete(ctx context.Context, id string) error {
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Delete(ctx, "specialty", id); err != nil {
			return err
		}
		return r.cache.Delete(ctx, "specialties_cache")
	})
}
