package handlers

import (
	"ClinicBook/models"
	"ClinicBook/services"

	"github.com/gin-gonic/gin"
)

type DoctorHandler struct {
	service *services.DoctorService
}

func NewDoctorHandler(service *services.DoctorService) *DoctorHandler {
	return &DoctorHandler{service: service}
}

func (h *DoctorHandler) CreateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &doctor); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(201, doctor)
}

func (h *DoctorHandler) GetDoctorByID(c *gin.Context) {
	doctor, err := h.service.GetByID(c, c.Param("doctor_id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, doctor)
}

func (h *DoctorHandler) GetAllDoctors(c *gin.Context) {
	doctors, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, doctors)
}

func (h *DoctorHandler) UpdateDoctor(c *gin.Context) {
	var doctor models.Doctor
	if err := c.ShouldBindJSON(&doctor); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	doctor.ID = c.Param("doctor_id")

	if err := h.service.Update(c, &doctor); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, doctor)
}

func (h *DoctorHandler) DeleteDoctor(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("doctor_id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Doctor deleted"})
}

func (h *DoctorHandler) AddSpecialty(c *gin.Context) {
	if err := h.service.AddSpecialty(c, c.Param("doctor_id"), c.Param("specialty_id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(201, gin.H{"message": "Specialty linked"})
}

func (h *DoctorHandler) RemoveSpecialty(c *gin.Context) {
	if err := h.service.RemoveSpecialty(c, c.Param("doctor_id"), c.Param("specialty_id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Specialty unlinked"})
}

func (h *DoctorHandler) ListSpecialties(c *gin.Context) {
	specialties, err := h.service.ListSpecialties(c, c.Param("doctor_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, specialties)
}
