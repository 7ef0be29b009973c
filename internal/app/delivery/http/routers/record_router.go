package routers

import (
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/services/export"
	"medrecord-service/internal/app/services/records"

	"github.com/go-chi/chi/v5"
)

func attachPatientRoutes(router chi.Router, middlewares *middlewares.Middlewares, recordController *records.RecordController, exportController *export.ExportController) {
	router.With(middlewares.Authenticate, middlewares.RequirePatient).Get("/me/record", recordController.GetMyRecord)
	router.With(middlewares.Authenticate, middlewares.RequirePatient).Get("/me/consultations/{consultationID}", recordController.GetMyConsultationDetail)
	router.With(middlewares.Authenticate, middlewares.RequirePatient).Post("/me/record/export", exportController.ExportMyRecord)
}
