package handlers

import (
	"ClinicBook/models"
	"ClinicBook/services"

	"github.com/gin-gonic/gin"
)

type MedicationHandler struct {
	service *services.MedicationService
}

func NewMedicationHandler(service *services.MedicationService) *MedicationHandler {
	return &MedicationHandler{service: service}
}

func (h *MedicationHandler) CreateMedication(c *gin.Context) {
	var medication models.Medication
	if err := c.ShouldBindJSON(&medication); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &medication); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(201, medication)
}

func (h *MedicationHandler) GetMedicationByID(c *gin.Context) {
	medication, err := h.service.GetByID(c, c.Param("medication_id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, medication)
}

func (h *MedicationHandler) GetAllMedications(c *gin.Context) {
	medications, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, medications)
}

func (h *MedicationHandler) UpdateMedication(c *gin.Context) {
	var medication models.Medication
	if err := c.ShouldBindJSON(&medication); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	medication.ID = c.Param("medication_id")

	if err := h.service.Update(c, &medication); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, medication)
}

func (h *MedicationHandler) DeleteMedication(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("medication_id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Medication deleted"})
}
