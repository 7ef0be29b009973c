package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
)

type PatientRepository interface {
	FindByID(ctx context.Context, patientID string) (*models.Patient, error)
	FindByCNP(ctx context.Context, cnp string) (*models.Patient, error)
	FindByIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error)
	FindAll(ctx context.Context) ([]models.Patient, error)
}
