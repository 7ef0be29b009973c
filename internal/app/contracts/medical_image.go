package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
)

type MedicalImageRepository interface {
	FindByPatientID(ctx context.Context, patientID string) ([]models.MedicalImage, error)
}
