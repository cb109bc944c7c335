package handlers

import (
	"ClinicBook/models"
	"ClinicBook/services"

	"github.com/gin-gonic/gin"
)

type PrescriptionHandler struct {
	service *services.PrescriptionService
}

func NewPrescriptionHandler(service *services.PrescriptionService) *PrescriptionHandler {
	return &PrescriptionHandler{service: service}
}

func (h *PrescriptionHandler) CreatePrescription(c *gin.Context) {
	var prescription models.Prescription
	if err := c.ShouldBindJSON(&prescription); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &prescription); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(201, prescription)
}

func (h *PrescriptionHandler) GetPrescriptionByID(c *gin.Context) {
	prescription, err := h.service.GetByID(c, c.Param("prescription_id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, prescription)
}

func (h *PrescriptionHandler) GetAppointmentPrescription(c *gin.Context) {
	prescription, err := h.service.GetByAppointment(c, c.Param("appointment_id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, prescription)
}

func (h *PrescriptionHandler) UpdatePrescription(c *gin.Context) {
	var prescription models.Prescription
	if err := c.ShouldBindJSON(&prescription); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	prescription.ID = c.Param("prescription_id")

	if err := h.service.Update(c, &prescription); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, prescription)
}

func (h *PrescriptionHandler) DeletePrescription(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("prescription_id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Prescription deleted"})
}

func (h *PrescriptionHandler) AddItem(c *gin.Context) {
	var item models.PrescriptionItem
	if err := c.ShouldBindJSON(&item); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	item.PrescriptionID = c.Param("prescription_id")

	if err := h.service.AddItem(c, &item); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(201, item)
}

func (h *PrescriptionHandler) RemoveItem(c *gin.Context) {
	if err := h.service.RemoveItem(c, c.Param("prescription_id"), c.Param("medication_id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Item removed"})
}

func (h *PrescriptionHandler) ListItems(c *gin.Context) {
	items, err := h.service.ListItems(c, c.Param("prescription_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, items)
}
