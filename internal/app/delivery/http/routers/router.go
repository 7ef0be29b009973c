package routers

import (
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/services/doctors"
	"medrecord-service/internal/app/services/export"
	"medrecord-service/internal/app/services/media"
	"medrecord-service/internal/app/services/records"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/go-chi/cors"
	"github.com/go-chi/httprate"
)

func SetupRoutes(
	router *chi.Mux,
	internalConfig *config.InternalConfig,
	middlewares *middlewares.Middlewares,
	recordController *records.RecordController,
	doctorController *doctors.DoctorController,
	exportController *export.ExportController,
	mediaController *media.MediaController,
) {

	corsOptions := cors.Options{
		AllowedOrigins:   []string{"*"},
		AllowedMethods:   []string{"GET", "POST", "OPTIONS"},
		AllowedHeaders:   []string{"Accept", "Authorization", "Content-Type", "X-Request-ID"},
		ExposedHeaders:   []string{"Link", "Content-Disposition"},
		AllowCredentials: true,
		MaxAge:           300,
	}
	router.Use(cors.Handler(corsOptions))

	rateLimiter := httprate.LimitByIP(internalConfig.App.MaxRequests, time.Second)
	router.Use(rateLimiter)

	router.Use(middlewares.RequestIDMiddleware)
	router.Use(middlewares.Logging(middlewares.Log))
	router.Use(middlewares.ErrorHandler)

	router.Route(internalConfig.App.EndpointPrefix, func(r chi.Router) {
		r.Route("/patients", func(r chi.Router) {
			attachPatientRoutes(r, middlewares, recordController, exportController)
		})

		r.Route("/doctors", func(r chi.Router) {
			attachDoctorRoutes(r, middlewares, doctorController, recordController)
		})

		r.Route("/media", func(r chi.Router) {
			attachMediaRoutes(r, middlewares, mediaController)
		})
	})

	attachStorageProxyRoutes(router, internalConfig, middlewares, mediaController)
}
