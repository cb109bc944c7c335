package services

import (
	"ClinicBook/models"
	"ClinicBook/repositories"
	"context"
)

type PrescriptionService struct {
	repository *repositories.PrescriptionRepository
}

func NewPrescriptionService(repository *repositories.PrescriptionRepository) *PrescriptionService {
	return &PrescriptionService{repository: repository}
}

func (s *PrescriptionService) Create(ctx context.Context, prescription *models.Prescription) error {
	return s.repository.Create(ctx, prescription)
}

func (s *PrescriptionService) GetByID(ctx context.Context, id string) (*models.Prescription, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *PrescriptionService) GetByAppointment(ctx context.Context, appointmentID string) (*models.Prescription, error) {
	return s.repository.GetByAppointment(ctx, appointmentID)
}

func (s *PrescriptionService) Update(ctx context.Context, prescription *models.Prescription) error {
	return s.repository.Update(ctx, prescription)
}

func (s *PrescriptionService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}

func (s *PrescriptionService) AddItem(ctx context.Context, item *models.PrescriptionItem) error {
	return s.repository.AddItem(ctx, item)
}

func (s *PrescriptionService) RemoveItem(ctx context.Context, prescriptionID, medicationID string) error {
	return s.repository.RemoveItem(ctx, prescriptionID, medicationID)
}

func (s *PrescriptionService) ListItems(ctx context.Context, prescriptionID string) ([]models.PrescriptionItem, error) {
	return s.repository.ListItems(ctx, prescriptionID)
}
