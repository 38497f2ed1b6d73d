package routes

import (
	"MedicareClinic/cache"
	"MedicareClinic/config"
	"MedicareClinic/controllers"
	"MedicareClinic/handlers"
	"MedicareClinic/middlewares"
	"MedicareClinic/repositories"
	"MedicareClinic/services"
	"net/http"

	"github.com/gin-gonic/gin"
)

// SetupRoutes initializes the routes and middleware for the server
func SetupRoutes(cache *cache.Cache, config *config.AppConfig) http.Handler {
	// Set Gin to release mode
	gin.SetMode(gin.ReleaseMode)

	// Create a Gin router
	router := gin.Default()

	// Apply Bearer token validation to all routes
	router.Use(middlewares.ValidateBearerToken(config.GetBearerToken()))

	// Create and apply CORS middleware configuration
	corsConfig := &middlewares.CorsConfig{
		AllowedOrigins:   config.AllowedOrigins,
		AllowedMethods:   []string{"GET", "POST", "PUT", "DELETE", "OPTIONS"},
		AllowedHeaders:   []string{"Content-Type", "Authorization", "X-Access-Token"},
		AllowCredentials: true,
	}
	router.Use(middlewares.CorsMiddleware(corsConfig))

	// Apply rate limiter middleware
	router.Use(middlewares.NewRateLimiterMiddleware(middlewares.RateLimiterConfig{
		RequestsPerSecond: 15,
		Burst:             30,
	}))

	// Apply logging middleware
	router.Use(middlewares.LoggingMiddleware())

	// Initialize repositories, services, and handlers
	patientRepo := repositories.NewPatientRepository(cache)
	visitRepo := repositories.NewVisitRepository()
	medicineRepo := repositories.NewMedicineRepository()
	prescriptionRepo := repositories.NewPrescriptionRepository()
	lookupRepo := repositories.NewLookupRepository(cache)
	activityLogRepo := repositories.NewActivityLogRepository()
	userRepo := repositories.NewUserRepository(cache)

	activityLogService := services.NewActivityLogService(activityLogRepo, userRepo)
	patientService := services.NewPatientService(patientRepo)
	visitService := services.NewVisitService(visitRepo, medicineRepo, patientRepo, prescriptionRepo)
	medicineService := services.NewMedicineService(medicineRepo, patientRepo)
	prescriptionService := services.NewPrescriptionService(prescriptionRepo, visitRepo)
	statsService := services.NewStatsService(visitRepo, medicineRepo)
	lookupService := services.NewLookupService(lookupRepo)
	userService := services.NewUserService(userRepo)

	patientHandler := handlers.NewPatientHandler(patientService, activityLogService, config.UploadDir)
	visitHandler := handlers.NewVisitHandler(visitService, activityLogService)
	medicineHandler := handlers.NewMedicineHandler(medicineService, activityLogService)
	prescriptionHandler := handlers.NewPrescriptionHandler(prescriptionService, activityLogService)
	statsHandler := handlers.NewStatsHandler(statsService)
	lookupHandler := handlers.NewLookupHandler(lookupService, activityLogService)
	activityLogHandler := handlers.NewActivityLogHandler(activityLogService)
	authHandler := handlers.NewAuthHandler(userService, activityLogService)

	// Register routes
	controllers.SetupClinicRoutes(
		router,
		patientHandler,
		visitHandler,
		medicineHandler,
		prescriptionHandler,
		statsHandler,
		lookupHandler,
		activityLogHandler,
	)

	authController := controllers.NewAuthController(authHandler)
	authController.RegisterRoutes(router)

	controllers.SetupRootRoute(router)

	return router
}
