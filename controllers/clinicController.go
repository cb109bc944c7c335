package controllers

import (
	"ClinicBook/handlers"

	"github.com/gin-gonic/gin"
)

// SetupClinicRoutes registers the routes for every clinic resource.
func SetupClinicRoutes(router *gin.Engine, doctorHandler *handlers.DoctorHandler, specialtyHandler *handlers.SpecialtyHandler, patientHandler *handlers.PatientHandler, roomHandler *handlers.RoomHandler, appointmentHandler *handlers.AppointmentHandler, prescriptionHandler *handlers.PrescriptionHandler, medicationHandler *handlers.MedicationHandler, billingHandler *handlers.BillingHandler) {
	router.POST("/doctors", doctorHandler.CreateDoctor)
	router.GET("/doctors", doctorHandler.GetAllDoctors)
	router.GET("/doctors/:doctor_id", doctorHandler.GetDoctorByID)
	router.PUT("/doctors/:doctor_id", doctorHandler.UpdateDoctor)
	router.DELETE("/doctors/:doctor_id", doctorHandler.DeleteDoctor)
	router.GET("/doctors/:doctor_id/specialties", doctorHandler.ListSpecialties)
	router.POST("/doctors/:doctor_id/specialties/:specialty_id", doctorHandler.AddSpecialty)
	router.DELETE("/doctors/:doctor_id/specialties/:specialty_id", doctorHandler.RemoveSpecialty)
	router.GET("/doctors/:doctor_id/schedule", appointmentHandler.GetDoctorSchedule)

	router.POST("/specialties", specialtyHandler.CreateSpecialty)
	router.GET("/specialties", specialtyHandler.GetAllSpecialties)
	router.GET("/specialties/:specialty_id", specialtyHandler.GetSpecialtyByID)
	router.PUT("/specialties/:specialty_id", specialtyHandler.UpdateSpecialty)
	router.DELETE("/specialties/:specialty_id", specialtyHandler.DeleteSpecialty)

	router.POST("/patients", patientHandler.CreatePatient)
	router.GET("/patients", patientHandler.GetAllPatients)
	router.GET("/patients/:patient_id", patientHandler.GetPatientByID)
	router.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
	router.DELETE("/patients/:patient_id", patientHandler.DeletePatient)
	router.GET("/patients/:patient_id/appointments", appointmentHandler.ListPatientAppointments)

	router.POST("/rooms", roomHandler.CreateRoom)
	router.GET("/rooms", roomHandler.GetAllRooms)
	router.GET("/rooms/:room_id", roomHandler.GetRoomByID)
	router.PUT("/rooms/:room_id", roomHandler.UpdateRoom)
	router.DELETE("/rooms/:room_id", roomHandler.DeleteRoom)

	router.POST("/appointments", appointmentHandler.CreateAppointment)
	router.GET("/appointments", appointmentHandler.GetAllAppointments)
	router.GET("/appointments/:appointment_id", appointmentHandler.GetAppointmentByID)
	router.PUT("/appointments/:appointment_id", appointmentHandler.UpdateAppointment)
	router.DELETE("/appointments/:appointment_id", appointmentHandler.DeleteAppointment)
	router.GET("/appointments/:appointment_id/prescription", prescriptionHandler.GetAppointmentPrescription)
	router.GET("/appointments/:appointment_id/invoice", billingHandler.GetAppointmentInvoice)

	router.POST("/prescriptions", prescriptionHandler.CreatePrescription)
	router.GET("/prescriptions/:prescription_id", prescriptionHandler.GetPrescriptionByID)
	router.PUT("/prescriptions/:prescription_id", prescriptionHandler.UpdatePrescription)
	router.DELETE("/prescriptions/:prescription_id", prescriptionHandler.DeletePrescription)
	router.GET("/prescriptions/:prescription_id/items", prescriptionHandler.ListItems)
	router.POST("/prescriptions/:prescription_id/items", prescriptionHandler.AddItem)
	router.DELETE("/prescriptions/:prescription_id/items/:medication_id", prescriptionHandler.RemoveItem)

	router.POST("/medications", medicationHandler.CreateMedication)
	router.GET("/medications", medicationHandler.GetAllMedications)
	router.GET("/medications/:medication_id", medicationHandler.GetMedicationByID)
	router.PUT("/medications/:medication_id", medicationHandler.UpdateMedication)
	router.DELETE("/medications/:medication_id", medicationHandler.DeleteMedication)

	router.POST("/invoices", billingHandler.CreateInvoice)
	router.GET("/invoices/:invoice_id", billingHandler.GetInvoiceByID)
	router.PUT("/invoices/:invoice_id", billingHandler.UpdateInvoice)
	router.DELETE("/invoices/:invoice_id", billingHandler.DeleteInvoice)
	router.GET("/invoices/:invoice_id/payments", billingHandler.ListPayments)
	router.POST("/invoices/:invoice_id/payments", billingHandler.RecordPayment)
}
