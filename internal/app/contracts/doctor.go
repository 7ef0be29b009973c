package contracts

import (
	"context"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
)

type DoctorUsecase interface {
	GetRecentPatients(ctx context.Context, doctorID string) ([]responses.PatientSummary, error)
	SearchPatientByCNP(ctx context.Context, request *requests.SearchPatientRequest) (*responses.PatientSummary, error)
	GetPatientProfileByCNP(ctx context.Context, request *requests.SearchPatientRequest) (*responses.AssembledProfile, error)
}
