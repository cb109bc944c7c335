package routes

import (
	"ClinicBook/cache"
	"ClinicBook/config"
	"ClinicBook/controllers"
	"ClinicBook/handlers"
	"ClinicBook/middlewares"
	"ClinicBook/repositories"
	"ClinicBook/services"
	"ClinicBook/store"
	"net/http"

	"github.com/gin-gonic/gin"
	"gorm.io/gorm"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig, db *gorm.DB) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   []string{"http://localhost:3000", "https://www.clinicbook.example"},
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization"},
		AllowCredentials: true,
		MaxAgeSeconds:    "600",
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15, // 15 requests per second
		Burst:             30, // Burst of 30
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// The constrained store enforces uniqueness, references and delete
	// policies for every mutation that goes through the repositories.
	clinicStore := store.New(db, store.ClinicRegistry())

	// Initialize repositories, services, and handlers
	doctorRepo := repositories.NewDoctorRepository(clinicStore, cache)
	specialtyRepo := repositories.NewSpecialtyRepository(clinicStore, cache)
	patientRepo := repositories.NewPatientRepository(clinicStore, cache)
	roomRepo := repositories.NewRoomRepository(clinicStore, cache)
	appointmentRepo := repositories.NewAppointmentRepository(clinicStore, cache)
	prescriptionRepo := repositories.NewPrescriptionRepository(clinicStore)
	medicationRepo := repositories.NewMedicationRepository(clinicStore, cache)
	billingRepo := repositories.NewBillingRepository(clinicStore)

	doctorHandler := handlers.NewDoctorHandler(services.NewDoctorService(doctorRepo))
	specialtyHandler := handlers.NewSpecialtyHandler(services.NewSpecialtyService(specialtyRepo))
	patientHandler := handlers.NewPatientHandler(services.NewPatientService(patientRepo))
	roomHandler := handlers.NewRoomHandler(services.NewRoomService(roomRepo))
	appointmentHandler := handlers.NewAppointmentHandler(services.NewAppointmentService(appointmentRepo))
	prescriptionHandler := handlers.NewPrescriptionHandler(services.NewPrescriptionService(prescriptionRepo))
	medicationHandler := handlers.NewMedicationHandler(services.NewMedicationService(medicationRepo))
	billingHandler := handlers.NewBillingHandler(services.NewBillingService(billingRepo))

	// Register routes
	controllers.SetupClinicRoutes(
		router,
		doctorHandler,
		specialtyHandler,
		patientHandler,
		roomHandler,
		appointmentHandler,
		prescriptionHandler,
		medicationHandler,
		billingHandler,
	)

	controllers.SetupRootRoute(router)

	return router
}
