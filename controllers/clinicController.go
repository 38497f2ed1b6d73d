package controllers

import (
	"MedicareClinic/handlers"
	"MedicareClinic/middlewares"
	"MedicareClinic/models"

	"github.com/gin-gonic/gin"
)

// SetupClinicRoutes registers the patient, visit, medicine, prescription and
// lookup routes. Everything here requires a valid session; financial
// reporting and the activity log are additionally restricted to the doctor.
func SetupClinicRoutes(
	router *gin.Engine,
	patientHandler *handlers.PatientHandler,
	visitHandler *handlers.VisitHandler,
	medicineHandler *handlers.MedicineHandler,
	prescriptionHandler *handlers.PrescriptionHandler,
	statsHandler *handlers.StatsHandler,
	lookupHandler *handlers.LookupHandler,
	activityLogHandler *handlers.ActivityLogHandler,
) {
	clinic := router.Group("/").Use(middlewares.TokenAuthMiddleware())
	{
		clinic.POST("/patients", patientHandler.RegisterPatient)
		clinic.GET("/patients", patientHandler.ListPatients)
		clinic.GET("/patients/:patient_id", patientHandler.GetPatientByID)
		clinic.PUT("/patients/:patient_id", patientHandler.UpdatePatient)
		clinic.DELETE("/patients/:patient_id", patientHandler.DeletePatient)
		clinic.POST("/patients/:patient_id/image", patientHandler.UploadPatientImage)
		clinic.GET("/patient-images/:filename", patientHandler.GetPatientImage)
		clinic.GET("/patients/:patient_id/visits", visitHandler.ListVisitsByPatient)
		clinic.GET("/patients/:patient_id/medicines", medicineHandler.ListMedicinesByPatient)

		clinic.POST("/visits", visitHandler.RecordVisit)
		clinic.GET("/visits", visitHandler.ListVisits)
		clinic.GET("/visits/:visit_id", visitHandler.GetVisitByID)
		clinic.PUT("/visits/:visit_id", visitHandler.UpdateVisit)
		clinic.DELETE("/visits/:visit_id", visitHandler.DeleteVisit)

		clinic.GET("/visits/:visit_id/prescription", prescriptionHandler.GetPrescriptionByVisit)
		clinic.PUT("/visits/:visit_id/prescription", prescriptionHandler.SavePrescription)
		clinic.GET("/visits/:visit_id/prescription/print", prescriptionHandler.PrintPrescription)

		clinic.POST("/medicines", medicineHandler.RecordMedicine)
		clinic.GET("/medicines", medicineHandler.ListMedicines)
		clinic.GET("/medicines/:med_id", medicineHandler.GetMedicineByID)
		clinic.PUT("/medicines/:med_id", medicineHandler.UpdateMedicine)
		clinic.DELETE("/medicines/:med_id", medicineHandler.DeleteMedicine)

		clinic.GET("/lookups/:kind", lookupHandler.GetOptions)
		clinic.POST("/lookups/:kind", lookupHandler.AddOption)
		clinic.DELETE("/lookups/:kind/:id", lookupHandler.DeleteOption)
	}

	doctor := router.Group("/").Use(
		middlewares.TokenAuthMiddleware(),
		middlewares.RoleAuthMiddleware(models.RoleDoctor),
	)
	{
		doctor.GET("/financials/daily-breakdown", statsHandler.DailyBreakdown)
		doctor.GET("/financials/daily-stats", statsHandler.DailyStats)
		doctor.GET("/financials/monthly-stats", statsHandler.MonthlyStats)
		doctor.GET("/activity-logs", activityLogHandler.ListActivityLogs)
	}
}
