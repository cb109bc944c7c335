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

const AppointmentCacheExpiry = 1 * time.Hour

type AppointmentRepository struct {
	store *store.Store
	cache *cache.Cache
}

func NewAppointmentRepository(store *store.Store, cache *cache.Cache) *AppointmentRepository {
	return &AppointmentRepository{store: store, cache: cache}
}

func (r *AppointmentRepository) Create(ctx context.Context, appointment *models.Appointment) error {
	appointment.ID = uuid.New().String()
	if appointment.Status == "" {
		appointment.Status = models.AppointmentScheduled
	}
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Create(ctx, appointment); err != nil {
			return err
		}
		return r.invalidate(ctx, appointment.ID)
	})
}

func (r *AppointmentRepository) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	cacheKey := r.getAppointmentCacheKey(id)
	cached, err := r.cache.Get(ctx, cacheKey)
	if err == nil && cached != "" {
		var appointment models.Appointment
		if err := json.Unmarshal([]byte(cached), &appointment); err == nil {
			return &appointment, nil
		}
	} else if err != nil {
		log.Printf("Failed to get appointment from cache: %v", err)
	}

	var appointment models.Appointment
	if err := r.store.Get(ctx, &appointment, id); err != nil {
		return nil, err
	}

	appointmentJSON, err := json.Marshal(appointment)
	if err != nil {
		return nil, fmt.Errorf("failed to marshal appointment: %w", err)
	}
	if err := r.cache.Set(ctx, cacheKey, appointmentJSON, AppointmentCacheExpiry); err != nil {
		log.Printf("Failed to set appointment in cache: %v", err)
	}

	return &appointment, nil
}

func (r *AppointmentRepository) GetAll(ctx context.Context) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointments []models.Appointment
	if err := database.DB.WithContext(ctx).
		Order("start_time").
		Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to get all appointments: %w", err)
	}
	return appointments, nil
}

// ListByPatient returns a patient's appointments ordered by start time.
func (r *AppointmentRepository) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	ctx, cancel := context.WithTimeout(ctx, 5*time.Second)
	defer cancel()

	var appointments []models.Appointment
	if err := database.DB.WithContext(ctx).
		Where("patient_id = ?", patientID).
		Order("start_time").
		Find(&appointments).Error; err != nil {
		return nil, fmt.Errorf("failed to list patient appointments: %w", err)
	}
	return appointments, nil
}

// EachByDoctor streams a doctor's appointments within [from, to) to fn
// in start-time order, so large schedules never load into memory at
// once. Batches advance by a keyset on (start_time, id); ordering by the
// key pair keeps the pagination stable under random UUID primary keys.
func (r *AppointmentRepository) EachByDoctor(ctx context.Context, doctorID string, from, to time.Time, fn func(models.Appointment) error) error {
	const batchSize = 100

	lastStart := from
	lastID := ""
	first := true
	for {
		var batch []models.Appointment
		q := database.DB.WithContext(ctx).
			Where("doctor_id = ? AND start_time < ?", doctorID, to).
			Order("start_time, id").
			Limit(batchSize)
		if first {
			q = q.Where("start_time >= ?", lastStart)
		} else {
			q = q.Where("start_time > ? OR (start_time = ? AND id > ?)", lastStart, lastStart, lastID)
		}
		if err := q.Find(&batch).Error; err != nil {
			return fmt.Errorf("failed to iterate doctor appointments: %w", err)
		}

		for _, appointment := range batch {
			if err := fn(appointment); err != nil {
				return err
			}
		}

		if len(batch) < batchSize {
			return nil
		}
		last := batch[len(batch)-1]
		lastStart = last.StartTime
		lastID = last.ID
		first = false
	}
}

func (r *AppointmentRepository) Update(ctx context.Context, appointment *models.Appointment) error {
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Update(ctx, appointment); err != nil {
			return err
		}
		return r.invalidate(ctx, appointment.ID)
	})
}

// Delete removes an appointment together with its prescription and
// invoice chain.
func (r *AppointmentRepository) Delete(ctx context.Context, id string) error {
	return database.WithWriteLock(ctx, func() error {
		if err := r.store.Delete(ctx, "appointment", id); err != nil {
			return err
		}
		return r.invalidate(ctx, id)
	})
}

func (r *AppointmentRepository) invalidate(ctx context.Context, id string) error {
	return r.cache.Delete(ctx, r.getAppointmentCacheKey(id))
}

func (r *AppointmentRepository) getAppointmentCacheKey(id string) string {
	return fmt.Sprintf("appointment_cache:%s", id)
}
