package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
)

type MedicationRepository interface {
	FindByPatientID(ctx context.Context, patientID string) ([]models.Medication, error)
}
