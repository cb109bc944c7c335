package handlers

import (
	"ClinicBook/models"
	"ClinicBook/services"

	"github.com/gin-gonic/gin"
)

type SpecialtyHandler struct {
	service *services.SpecialtyService
}

func NewSpecialtyHandler(service *services.SpecialtyService) *SpecialtyHandler {
	return &SpecialtyHandler{service: service}
}

func (h *SpecialtyHandler) CreateSpecialty(c *gin.Context) {
	var specialty models.Specialty
	if err := c.ShouldBindJSON(&specialty); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &specialty); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(201, specialty)
}

func (h *SpecialtyHandler) GetSpecialtyByID(c *gin.Context) {
	specialty, err := h.service.GetByID(c, c.Param("specialty_id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, specialty)
}

func (h *SpecialtyHandler) GetAllSpecialties(c *gin.Context) {
	specialties, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, specialties)
}

func (h *SpecialtyHandler) UpdateSpecialty(c *gin.Context) {
	var specialty models.Specialty
	if err := c.ShouldBindJSON(&specialty); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	specialty.ID = c.Param("specialty_id")

	if err := h.service.Update(c, &specialty); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, specialty)
}

func (h *SpecialtyHandler) DeleteSpecialty(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("specialty_id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Specialty deleted"})
}
