package handlers

import (
	"ClinicBook/models"
	"ClinicBook/services"
	"time"

	"github.com/gin-gonic/gin"
)

type AppointmentHandler struct {
	service *services.AppointmentService
}

func NewAppointmentHandler(service *services.AppointmentService) *AppointmentHandler {
	return &AppointmentHandler{service: service}
}

func (h *AppointmentHandler) CreateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	if err := h.service.Create(c, &appointment); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(201, appointment)
}

func (h *AppointmentHandler) GetAppointmentByID(c *gin.Context) {
	appointment, err := h.service.GetByID(c, c.Param("appointment_id"))
	if err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) GetAllAppointments(c *gin.Context) {
	appointments, err := h.service.GetAll(c)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointments)
}

func (h *AppointmentHandler) ListPatientAppointments(c *gin.Context) {
	appointments, err := h.service.ListByPatient(c, c.Param("patient_id"))
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, appointments)
}

// GetDoctorSchedule returns a doctor's appointments between the "from"
// and "to" RFC 3339 query parameters.
func (h *AppointmentHandler) GetDoctorSchedule(c *gin.Context) {
	from, err := time.Parse(time.RFC3339, c.Query("from"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid 'from' timestamp"})
		return
	}
	to, err := time.Parse(time.RFC3339, c.Query("to"))
	if err != nil {
		c.JSON(400, gin.H{"error": "Invalid 'to' timestamp"})
		return
	}

	schedule, err := h.service.DoctorSchedule(c, c.Param("doctor_id"), from, to)
	if err != nil {
		c.JSON(500, gin.H{"error": err.Error()})
		return
	}
	c.JSON(200, schedule)
}

func (h *AppointmentHandler) UpdateAppointment(c *gin.Context) {
	var appointment models.Appointment
	if err := c.ShouldBindJSON(&appointment); err != nil {
		c.JSON(400, gin.H{"error": err.Error()})
		return
	}
	appointment.ID = c.Param("appointment_id")

	if err := h.service.Update(c, &appointment); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(200, appointment)
}

func (h *AppointmentHandler) DeleteAppointment(c *gin.Context) {
	if err := h.service.Delete(c, c.Param("appointment_id")); err != nil {
		writeStoreError(c, err)
		return
	}
	c.JSON(204, gin.H{"message": "Appointment deleted"})
}
