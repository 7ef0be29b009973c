package main

import (
	"context"
	"log"
	"medrecord-service/internal/app/config"
	"medrecord-service/internal/app/delivery/http/middlewares"
	"medrecord-service/internal/app/delivery/http/routers"
	"medrecord-service/internal/app/drivers/database"
	"medrecord-service/internal/app/drivers/logger"
	"medrecord-service/internal/app/drivers/messaging"
	driverStorage "medrecord-service/internal/app/drivers/storage"
	"medrecord-service/internal/app/services/consultations"
	"medrecord-service/internal/app/services/doctors"
	"medrecord-service/internal/app/services/export"
	labResults "medrecord-service/internal/app/services/lab_results"
	"medrecord-service/internal/app/services/media"
	medicalImages "medrecord-service/internal/app/services/medical_images"
	"medrecord-service/internal/app/services/medications"
	"medrecord-service/internal/app/services/patients"
	"medrecord-service/internal/app/services/records"
	"medrecord-service/internal/app/services/shared/audit"
	"medrecord-service/internal/app/services/shared/redis"
	"medrecord-service/internal/app/services/shared/session"
	sharedStorage "medrecord-service/internal/app/services/shared/storage"
	"medrecord-service/internal/app/services/vaccinations"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/minio/minio-go/v7"
)

func main() {
	driverConfig := config.NewDriverConfig()
	internalConfig := config.NewInternalConfig()

	zapLogger := logger.NewZapLogger(driverConfig, internalConfig)
	bootLogger := logger.NewLogrusLogger(internalConfig)

	mongoDB := database.NewMongoDB(driverConfig)
	redisClient := database.NewRedisClient(driverConfig)
	rabbitMQ := messaging.NewRabbitMQ(driverConfig)
	minioClient := driverStorage.NewMinio(driverConfig)
	chiRouter := chi.NewRouter()

	bootstrap := config.Bootstrap{
		Router:         chiRouter,
		MongoDB:        mongoDB,
		Redis:          redisClient,
		Logger:         zapLogger,
		RabbitMQ:       rabbitMQ,
		DriverConfig:   driverConfig,
		InternalConfig: internalConfig,
	}

	bootstrapingTheApp(bootstrap, minioClient)

	server := &http.Server{
		Addr:    internalConfig.App.Port,
		Handler: chiRouter,
	}

	go func() {
		bootLogger.Infof("Server listening on %s", internalConfig.App.Port)
		err := server.ListenAndServe()
		if err != nil && err != http.ErrServerClosed {
			bootLogger.Fatalf("Server failed to start: %v", err)
		}
	}()

	c := make(chan os.Signal, 1)
	signal.Notify(c, os.Interrupt, syscall.SIGTERM)

	<-c

	bootLogger.Println("Waiting for pending requests that already received by server to be processed..")

	shutdownCtx, cancel := context.WithTimeout(
		context.Background(),
		time.Second*time.Duration(internalConfig.App.ShutdownTimeout),
	)
	defer cancel()

	err := server.Shutdown(shutdownCtx)
	if err != nil {
		bootLogger.Fatalf("Server forced to shutdown: %v", err)
	}

	if err := bootstrap.Shutdown(shutdownCtx); err != nil {
		bootLogger.Printf("Error while closing application resources: %v", err)
	}

	bootLogger.Println("Server exiting")
}

func bootstrapingTheApp(bootstrap config.Bootstrap, minioClient *minio.Client) {
	dbName := bootstrap.DriverConfig.MongoDB.DbName

	// Shared
	redisRepository := redis.NewRedisRepository(bootstrap.Redis)
	sessionService := session.NewSessionService(redisRepository)
	auditPublisher, err := audit.NewAuditPublisher(bootstrap.RabbitMQ, bootstrap.InternalConfig.Audit.RecordAccessQueue)
	if err != nil {
		log.Fatalf("Failed to initialize audit publisher: %v", err)
	}

	// Middlewares
	appMiddlewares := middlewares.New(bootstrap.Logger, sessionService, bootstrap.InternalConfig)

	// Repositories
	patientRepository := patients.NewPatientMongoRepository(bootstrap.MongoDB, dbName)
	consultationRepository := consultations.NewConsultationMongoRepository(bootstrap.MongoDB, dbName)
	medicationRepository := medications.NewMedicationMongoRepository(bootstrap.MongoDB, dbName)
	vaccinationRepository := vaccinations.NewVaccinationMongoRepository(bootstrap.MongoDB, dbName)
	labResultRepository := labResults.NewLabResultMongoRepository(bootstrap.MongoDB, dbName)
	medicalImageRepository := medicalImages.NewMedicalImageMongoRepository(bootstrap.MongoDB, dbName)

	// Records
	recordUsecase := records.NewRecordUsecase(
		bootstrap.Logger,
		patientRepository,
		consultationRepository,
		medicationRepository,
		vaccinationRepository,
		labResultRepository,
		medicalImageRepository,
		auditPublisher,
	)
	recordController := records.NewRecordController(bootstrap.Logger, recordUsecase)

	// Doctors
	doctorUsecase := doctors.NewDoctorUsecase(bootstrap.Logger, patientRepository, consultationRepository)
	doctorController := doctors.NewDoctorController(bootstrap.Logger, doctorUsecase)

	// Export
	documentGenerator := export.NewPDFGenerator()
	exportUsecase := export.NewExportUsecase(bootstrap.Logger, patientRepository, recordUsecase, documentGenerator, auditPublisher)
	exportController := export.NewExportController(bootstrap.Logger, exportUsecase)

	// Media
	minioStorage := sharedStorage.NewMinioStorage(minioClient)
	mediaUsecase := media.NewMediaUsecase(bootstrap.InternalConfig)
	mediaController := media.NewMediaController(bootstrap.Logger, mediaUsecase, minioStorage, bootstrap.InternalConfig.Storage.BucketName)

	routers.SetupRoutes(
		bootstrap.Router,
		bootstrap.InternalConfig,
		appMiddlewares,
		recordController,
		doctorController,
		exportController,
		mediaController,
	)
}
