package services

import (
	"ClinicBook/models"
	"ClinicBook/repositories"
	"context"
	"time"
)

type AppointmentService struct {
	repository *repositories.AppointmentRepository
}

func NewAppointmentService(repository *repositories.AppointmentRepository) *AppointmentService {
	return &AppointmentService{repository: repository}
}

func (s *AppointmentService) Create(ctx context.Context, appointment *models.Appointment) error {
	return s.repository.Create(ctx, appointment)
}

func (s *AppointmentService) GetByID(ctx context.Context, id string) (*models.Appointment, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *AppointmentService) GetAll(ctx context.Context) ([]models.Appointment, error) {
	return s.repository.GetAll(ctx)
}

func (s *AppointmentService) ListByPatient(ctx context.Context, patientID string) ([]models.Appointment, error) {
	return s.repository.ListByPatient(ctx, patientID)
}

// DoctorSchedule collects a doctor's appointments within [from, to).
func (s *AppointmentService) DoctorSchedule(ctx context.Context, doctorID string, from, to time.Time) ([]models.Appointment, error) {
	var schedule []models.Appointment
	err := s.repository.EachByDoctor(ctx, doctorID, from, to, func(appointment models.Appointment) error {
		schedule = append(schedule, appointment)
		return nil
	})
	if err != nil {
		return nil, err
	}
	return schedule, nil
}

func (s *AppointmentService) Update(ctx context.Context, appointment *models.Appointment) error {
	return s.repository.Update(ctx, appointment)
}

func (s *AppointmentService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
