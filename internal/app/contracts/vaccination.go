package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
)

type VaccinationRepository interface {
	FindByPatientID(ctx context.Context, patientID string) ([]models.Vaccination, error)
}
