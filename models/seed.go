package models

import (
	"github.com/google/uuid"
	"gorm.io/gorm"
)

// SeedSpecialties inserts the base specialty catalog if missing.
func SeedSpecialties(db *gorm.DB) error {
	specialties := []Specialty{
		{Name: "General Practice", Description: "Primary care consultations"},
		{Name: "Pediatrics", Description: "Care for infants, children and adolescents"},
		{Name: "Cardiology", Description: "Heart and circulatory system"},
		{Name: "Dermatology", Description: "Skin, hair and nails"},
	}
	for _, specialty := range specialties {
		specialty.ID = uuid.New().String()
		if err := db.Where(Specialty{Name: specialty.Name}).FirstOrCreate(&specialty).Error; err != nil {
			return err
		}
	}
	return nil
}

// SeedMedications inserts the base medication catalog if missing.
func SeedMedications(db *gorm.DB) error {
	medications := []Medication{
		{Name: "Amoxicillin", Unit: "mg"},
		{Name: "Ibuprofen", Unit: "mg"},
		{Name: "Paracetamol", Unit: "mg"},
		{Name: "Oral Rehydration Salts", Unit: "sachet"},
	}
	for _, medication := range medications {
		medication.ID = uuid.New().String()
		if err := db.Where(Medication{Name: medication.Name}).FirstOrCreate(&medication).Error; err != nil {
			return err
		}
	}
	return nil
}
