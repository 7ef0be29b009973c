package routers

import (
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/services/doctors"
	"medrecord-service/internal/app/services/records"

	"github.com/go-chi/chi/v5"
)

func attachDoctorRoutes(router chi.Router, middlewares *middlewares.Middlewares, doctorController *doctors.DoctorController, recordController *records.RecordController) {
	router.With(middlewares.Authenticate, middlewares.RequireDoctor).Get("/me/patients", doctorController.GetRecentPatients)
	router.With(middlewares.Authenticate, middlewares.RequireDoctor).Get("/patients/search", doctorController.SearchPatientByCNP)
	router.With(middlewares.Authenticate, middlewares.RequireDoctor).Get("/patients/profile", doctorController.GetPatientProfileByCNP)
	router.With(middlewares.Authenticate, middlewares.RequireDoctor).Get("/patients/{patientID}/record", recordController.GetPatientRecord)
}
