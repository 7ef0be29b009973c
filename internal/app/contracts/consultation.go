package contracts

import (
	"context"
	"medrecord-service/internal/app/models"
)

type ConsultationRepository interface {
	FindByID(ctx context.Context, consultationID string) (*models.Consultation, error)
	FindByPatientID(ctx context.Context, patientID string) ([]models.Consultation, error)
	FindByDoctorID(ctx context.Context, doctorID string) ([]models.Consultation, error)
}
