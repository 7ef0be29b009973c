package doctors

import (
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/app/services/records"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"medrecord-service/internal/pkg/utils"
	"strings"
	"time"

	"go.uber.org/zap"
)

type doctorUsecase struct {
	Log                    *zap.Logger
	PatientRepository      contracts.PatientRepository
	ConsultationRepository contracts.ConsultationRepository
}

func NewDoctorUsecase(
	logger *zap.Logger,
	patientRepository contracts.PatientRepository,
	consultationRepository contracts.ConsultationRepository,
) contracts.DoctorUsecase {
	return &doctorUsecase{
		Log:                    logger,
		PatientRepository:      patientRepository,
		ConsultationRepository: consultationRepository,
	}
}

// GetRecentPatients lists the patients a doctor has seen, newest visit first.
// A patient seen several times appears once, carried by their most recent
// visit.
func (uc *doctorUsecase) GetRecentPatients(ctx context.Context, doctorID string) ([]responses.PatientSummary, error) {
	consultations, err := uc.ConsultationRepository.FindByDoctorID(ctx, doctorID)
	if err != nil {
		return nil, err
	}

	patientIDs := make([]string, 0, len(consultations))
	for _, consultation := range consultations {
		patientIDs = append(patientIDs, consultation.PatientID)
	}

	patients, err := uc.PatientRepository.FindByIDs(ctx, patientIDs)
	if err != nil {
		return nil, err
	}
	patientsByID := make(map[string]models.Patient, len(patients))
	for _, patient := range patients {
		patientsByID[patient.ID] = patient
	}

	summaries := make([]responses.PatientSummary, 0, len(consultations))
	for _, consultation := range consultations {
		patient, ok := patientsByID[consultation.PatientID]
		if !ok {
			continue
		}
		summaries = append(summaries, responses.PatientSummary{
			ID:        patient.ID,
			FullName:  patient.FullName,
			CNP:       patient.CNP,
			Age:       utils.CalculateAge(patient.DateOfBirth),
			Gender:    patient.Gender,
			LastVisit: consultation.Date,
		})
	}

	return records.DedupPatientsByID(summaries), nil
}

// SearchPatientByCNP looks a patient up by their full national identifier.
// The query is trimmed first; substrings and prefixes never match.
func (uc *doctorUsecase) SearchPatientByCNP(ctx context.Context, request *requests.SearchPatientRequest) (*responses.PatientSummary, error) {
	patient, err := uc.findPatientByCNP(ctx, request)
	if err != nil {
		return nil, err
	}

	return &responses.PatientSummary{
		ID:       patient.ID,
		FullName: patient.FullName,
		CNP:      patient.CNP,
		Age:      utils.CalculateAge(patient.DateOfBirth),
		Gender:   patient.Gender,
	}, nil
}

// GetPatientProfileByCNP looks the patient up and assembles the display
// profile for the detail card.
func (uc *doctorUsecase) GetPatientProfileByCNP(ctx context.Context, request *requests.SearchPatientRequest) (*responses.AssembledProfile, error) {
	patient, err := uc.findPatientByCNP(ctx, request)
	if err != nil {
		return nil, err
	}

	profile := records.AssembleProfile(patient, time.Now())
	return &profile, nil
}

func (uc *doctorUsecase) findPatientByCNP(ctx context.Context, request *requests.SearchPatientRequest) (*models.Patient, error) {
	request.CNP = strings.TrimSpace(request.CNP)
	if request.CNP == "" {
		return nil, exceptions.ErrEmptySearchQuery(nil)
	}

	if err := utils.ValidateStruct(request); err != nil {
		return nil, exceptions.ErrInputValidation(err)
	}

	patient, err := uc.PatientRepository.FindByCNP(ctx, request.CNP)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}
	return patient, nil
}
