package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
)

type LabResultRepository interface {
	FindByPatientID(ctx context.Context, patientID string) ([]models.LabResult, error)
}
