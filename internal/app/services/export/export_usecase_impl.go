package export

import (
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"time"

	"go.uber.org/zap"
)

type exportUsecase struct {
	Log               *zap.Logger
	PatientRepository contracts.PatientRepository
	RecordUsecase     contracts.RecordUsecase
	DocumentGenerator contracts.DocumentGenerator
	AuditPublisher    contracts.AuditPublisher
}

func NewExportUsecase(
	logger *zap.Logger,
	patientRepository contracts.PatientRepository,
	recordUsecase contracts.RecordUsecase,
	documentGenerator contracts.DocumentGenerator,
	auditPublisher contracts.AuditPublisher,
) contracts.ExportUsecase {
	return &exportUsecase{
		Log:               logger,
		PatientRepository: patientRepository,
		RecordUsecase:     recordUsecase,
		DocumentGenerator: documentGenerator,
		AuditPublisher:    auditPublisher,
	}
}

// ExportPatientRecord renders the assembled record into a PDF. When the
// patient does not exist the export produces nothing and returns no error.
func (uc *exportUsecase) ExportPatientRecord(ctx context.Context, session *models.Session, patientID string) ([]byte, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, nil
	}

	record, err := uc.RecordUsecase.BuildPatientRecord(ctx, patientID)
	if err != nil {
		return nil, err
	}

	document, err := uc.DocumentGenerator.Generate(record)
	if err != nil {
		return nil, err
	}

	event := &models.RecordAccessEvent{
		ActorID:   session.UserID,
		ActorRole: session.RoleName,
		Action:    constvars.AuditActionRecordExport,
		PatientID: patientID,
		Timestamp: time.Now(),
	}
	if err := uc.AuditPublisher.PublishRecordAccess(ctx, event); err != nil {
		uc.Log.Warn("failed to publish record export event",
			zap.String(constvars.LoggingActorIDKey, session.UserID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}

	return document, nil
}
