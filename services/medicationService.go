package services

import (
	"ClinicBook/models"
	"ClinicBook/repositories"
	"context"
)

type MedicationService struct {
	repository *repositories.MedicationRepository
}

func NewMedicationService(repository *repositories.MedicationRepository) *MedicationService {
	return &MedicationService{repository: repository}
}

func (s *MedicationService) Create(ctx context.Context, medication *models.Medication) error {
	return s.repository.Create(ctx, medication)
}

func (s *MedicationService) GetByID(ctx context.Context, id string) (*models.Medication, error) {
	return s.repository.GetByID(ctx, id)
}

func (s *MedicationService) GetAll(ctx context.Context) ([]models.Medication, error) {
	return s.repository.GetAll(ctx)
}

func (s *MedicationService) Update(ctx context.Context, medication *models.Medication) error {
	return s.repository.Update(ctx, medication)
}

func (s *MedicationService) Delete(ctx context.Context, id string) error {
	return s.repository.Delete(ctx, id)
}
