package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/responses"
)

type ExportUsecase interface {
	ExportPatientRecord(ctx context.Context, session *models.Session, patientID string) ([]byte, error)
}

// DocumentGenerator renders an assembled record into a downloadable document.
type DocumentGenerator interface {
	Generate(record *responses.PatientRecord) ([]byte, error)
}
