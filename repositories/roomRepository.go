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

const RoomCacheExpiry = 12 * time.Hour

type RoomRepository struct {
	store *store.Store
	cache *cache.Cache
}

func NewRoomRepository(store *store.Store, cache *cache.Cache) *RoomRepository {
	return &RoomRepository{store: store, cache: cache}
}

func (r *RoomRepository) Create(ctx context.Context, room *models.Room) error {
	room.ID = uuid.New().String()
	if room.Status == "" {
		room.Status = models.RoomAvailable
	}
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Create(ctx, room); err != nil {
			return err
		}
		return r.cache.Delete(ctx, "rooms_cache")
	})
}

func (r *RoomRepository) GetByID(ctx context.Context, id string) (*models.Room, error) {
	var room models.Room
	if err := r.store.Get(ctx, &room, id); err != nil {
		return nil, err
	}
	return &room, nil
}

func (r *RoomRepository) GetAll(ctx context.Context) ([]models.Room, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := "rooms_cache"
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var rooms []models.Room
		if err := json.Unmarshal([]byte(cached), &rooms); err == nil {
			return rooms, nil
		}
	} else if err != nil {
		log.Printf("Failed to get rooms from cache: %v", err)
	}

	var rooms []models.Room
	if err := database.DB.WithContext(ctx).Order("room_number").Find(&rooms).Error; err != nil {
		return nil, fmt.Errorf("failed to get all rooms: %w", err)
	}

	roomsJSON, err := json.Marshal(rooms)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal rooms: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, roomsJSON, RoomCacheExpiry); err != nil {
		log.Printf("Failed to set rooms in cache: %v", err)
	}

	return rooms, nil
}

func (r *RoomRepository) Update(ctx context.Context, room *models.Room) error {
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Update(ctx, room); err != nil {
			return err
		}
		return r.cache.Delete(ctx, "rooms_cache")
	})
}

// Delete removes a room. Appointments keep existing with their room
// reference cleared, so the appointment caches are dropped as well.
func (r *RoomRepository) Delete(ctx context.Context, id string) error {
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Delete(ctx, "room", id); err != nil {
			return err
		}
		if err := r.cache.Delete(ctx, "rooms_cache"); err != nil {
			return fmt.Errorf("failed to delete room cache: %w", err)
		}
		return r.cache.DeleteAll(ctx, "appointment_cache:*")
	})
}
