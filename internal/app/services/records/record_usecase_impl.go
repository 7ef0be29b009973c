package records

import (
	"context"
	"medrecord-service/internal/app/contracts"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/exceptions"
	"time"

	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

type recordUsecase struct {
	Log                    *zap.Logger
	PatientRepository      contracts.PatientRepository
	ConsultationRepository contracts.ConsultationRepository
	MedicationRepository   contracts.MedicationRepository
	VaccinationRepository  contracts.VaccinationRepository
	LabResultRepository    contracts.LabResultRepository
	MedicalImageRepository contracts.MedicalImageRepository
	AuditPublisher         contracts.AuditPublisher
}

func NewRecordUsecase(
	logger *zap.Logger,
	patientRepository contracts.PatientRepository,
	consultationRepository contracts.ConsultationRepository,
	medicationRepository contracts.MedicationRepository,
	vaccinationRepository contracts.VaccinationRepository,
	labResultRepository contracts.LabResultRepository,
	medicalImageRepository contracts.MedicalImageRepository,
	auditPublisher contracts.AuditPublisher,
) contracts.RecordUsecase {
	return &recordUsecase{
		Log:                    logger,
		PatientRepository:      patientRepository,
		ConsultationRepository: consultationRepository,
		MedicationRepository:   medicationRepository,
		VaccinationRepository:  vaccinationRepository,
		LabResultRepository:    labResultRepository,
		MedicalImageRepository: medicalImageRepository,
		AuditPublisher:         auditPublisher,
	}
}

// GetPatientRecord assembles the record and emits a view access event.
func (uc *recordUsecase) GetPatientRecord(ctx context.Context, session *models.Session, patientID string) (*responses.PatientRecord, error) {
	record, err := uc.BuildPatientRecord(ctx, patientID)
	if err != nil {
		return nil, err
	}

	uc.publishAccessEvent(ctx, session, constvars.AuditActionRecordView, patientID)
	return record, nil
}

// BuildPatientRecord loads the patient and all five sibling collections and
// assembles them into one view. The sibling fetches run concurrently and the
// whole operation fails if any of them fails, so the view is never served
// half-populated.
func (uc *recordUsecase) BuildPatientRecord(ctx context.Context, patientID string) (*responses.PatientRecord, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	record := &responses.PatientRecord{
		Profile: AssembleProfile(patient, time.Now()),
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		consultations, err := uc.ConsultationRepository.FindByPatientID(groupCtx, patientID)
		if err != nil {
			return err
		}
		record.Consultations = consultations
		return nil
	})
	group.Go(func() error {
		medications, err := uc.MedicationRepository.FindByPatientID(groupCtx, patientID)
		if err != nil {
			return err
		}
		record.Medications = medications
		return nil
	})
	group.Go(func() error {
		vaccinations, err := uc.VaccinationRepository.FindByPatientID(groupCtx, patientID)
		if err != nil {
			return err
		}
		record.Vaccinations = vaccinations
		return nil
	})
	group.Go(func() error {
		labResults, err := uc.LabResultRepository.FindByPatientID(groupCtx, patientID)
		if err != nil {
			return err
		}
		record.LabResults = labResults
		return nil
	})
	group.Go(func() error {
		medicalImages, err := uc.MedicalImageRepository.FindByPatientID(groupCtx, patientID)
		if err != nil {
			return err
		}
		record.MedicalImages = medicalImages
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return record, nil
}

// GetConsultationDetail returns one visit with the medications and images
// correlated to it. A consultation belonging to another patient is treated as
// not found.
func (uc *recordUsecase) GetConsultationDetail(ctx context.Context, session *models.Session, patientID, consultationID string) (*responses.ConsultationDetail, error) {
	patient, err := uc.PatientRepository.FindByID(ctx, patientID)
	if err != nil {
		return nil, err
	}
	if patient == nil {
		return nil, exceptions.ErrPatientNotFound(nil)
	}

	consultation, err := uc.ConsultationRepository.FindByID(ctx, consultationID)
	if err != nil {
		return nil, err
	}
	if consultation == nil || consultation.PatientID != patientID {
		return nil, exceptions.ErrConsultationNotFound(nil)
	}

	detail := &responses.ConsultationDetail{
		Consultation: *consultation,
	}

	group, groupCtx := errgroup.WithContext(ctx)
	group.Go(func() error {
		medications, err := uc.MedicationRepository.FindByPatientID(groupCtx, patientID)
		if err != nil {
			return err
		}
		detail.Medications = MedicationsForConsultation(medications, consultationID)
		return nil
	})
	group.Go(func() error {
		medicalImages, err := uc.MedicalImageRepository.FindByPatientID(groupCtx, patientID)
		if err != nil {
			return err
		}
		detail.MedicalImages = ImagesForConsultation(medicalImages, consultationID)
		return nil
	})

	if err := group.Wait(); err != nil {
		return nil, err
	}

	return detail, nil
}

// publishAccessEvent sends the audit event without blocking the response.
// Publish failures are logged and swallowed.
func (uc *recordUsecase) publishAccessEvent(ctx context.Context, session *models.Session, action, patientID string) {
	event := &models.RecordAccessEvent{
		ActorID:   session.UserID,
		ActorRole: session.RoleName,
		Action:    action,
		PatientID: patientID,
		Timestamp: time.Now(),
	}
	if err := uc.AuditPublisher.PublishRecordAccess(ctx, event); err != nil {
		uc.Log.Warn("failed to publish record access event",
			zap.String(constvars.LoggingActorIDKey, session.UserID),
			zap.String(constvars.LoggingPatientIDKey, patientID),
			zap.Error(err),
		)
	}
}
