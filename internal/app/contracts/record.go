package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/responses"
)

type RecordUsecase interface {
	GetPatientRecord(ctx context.Context, session *models.Session, patientID string) (*responses.PatientRecord, error)
	GetConsultationDetail(ctx context.Context, session *models.Session, patientID, consultationID string) (*responses.ConsultationDetail, error)
	// BuildPatientRecord assembles the record without emitting an access event.
	BuildPatientRecord(ctx context.Context, patientID string) (*responses.PatientRecord, error)
}
