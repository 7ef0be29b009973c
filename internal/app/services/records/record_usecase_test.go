package records

import (
	"context"
	"errors"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPatientRepo struct {
	patient *models.Patient
	err     error
}

func (s *stubPatientRepo) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	return s.patient, s.err
}
func (s *stubPatientRepo) FindByCNP(ctx context.Context, cnp string) (*models.Patient, error) {
	return s.patient, s.err
}
func (s *stubPatientRepo) FindByIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error) {
	return nil, s.err
}
func (s *stubPatientRepo) FindAll(ctx context.Context) ([]models.Patient, error) {
	return nil, s.err
}

type stubConsultationRepo struct {
	consultation  *models.Consultation
	consultations []models.Consultation
	err           error
}

func (s *stubConsultationRepo) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	return s.consultation, s.err
}
func (s *stubConsultationRepo) FindByPatientID(ctx context.Context, patientID string) ([]models.Consultation, error) {
	return s.consultations, s.err
}
func (s *stubConsultationRepo) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Consultation, error) {
	return s.consultations, s.err
}

type stubMedicationRepo struct {
	medications []models.Medication
	err         error
}

func (s *stubMedicationRepo) FindByPatientID(ctx context.Context, patientID string) ([]models.Medication, error) {
	return s.medications, s.err
}

type stubVaccinationRepo struct {
	vaccinations []models.Vaccination
	err          error
}

func (s *stubVaccinationRepo) FindByPatientID(ctx context.Context, patientID string) ([]models.Vaccination, error) {
	return s.vaccinations, s.err
}

type stubLabResultRepo struct {
	labResults []models.LabResult
	err        error
}

func (s *stubLabResultRepo) FindByPatientID(ctx context.Context, patientID string) ([]models.LabResult, error) {
	return s.labResults, s.err
}

type stubMedicalImageRepo struct {
	images []models.MedicalImage
	err    error
}

func (s *stubMedicalImageRepo) FindByPatientID(ctx context.Context, patientID string) ([]models.MedicalImage, error) {
	return s.images, s.err
}

type stubAuditPublisher struct {
	events []*models.RecordAccessEvent
	err    error
}

func (s *stubAuditPublisher) PublishRecordAccess(ctx context.Context, event *models.RecordAccessEvent) error {
	s.events = append(s.events, event)
	return s.err
}

func testSession() *models.Session {
	return &models.Session{
		SessionID: "sess-1",
		UserID:    "u1",
		RoleName:  "patient",
		PatientID: "p1",
	}
}

func newTestUsecase(
	patientRepo *stubPatientRepo,
	consultationRepo *stubConsultationRepo,
	medicationRepo *stubMedicationRepo,
	vaccinationRepo *stubVaccinationRepo,
	labResultRepo *stubLabResultRepo,
	imageRepo *stubMedicalImageRepo,
	publisher *stubAuditPublisher,
) *recordUsecase {
	return NewRecordUsecase(
		zap.NewNop(),
		patientRepo,
		consultationRepo,
		medicationRepo,
		vaccinationRepo,
		labResultRepo,
		imageRepo,
		publisher,
	).(*recordUsecase)
}

func TestGetPatientRecord(t *testing.T) {
	patient := &models.Patient{
		ID:          "p1",
		FullName:    "Maria Ionescu",
		CNP:         "2900610123456",
		DateOfBirth: "1990-06-10",
		Gender:      "female",
		Allergies:   []string{"penicillin"},
	}

	t.Run("Assembles All Collections", func(t *testing.T) {
		publisher := &stubAuditPublisher{}
		uc := newTestUsecase(
			&stubPatientRepo{patient: patient},
			&stubConsultationRepo{consultations: []models.Consultation{{ID: "c1", PatientID: "p1"}}},
			&stubMedicationRepo{medications: []models.Medication{{ID: "m1", PatientID: "p1"}}},
			&stubVaccinationRepo{vaccinations: []models.Vaccination{{ID: "v1", PatientID: "p1"}}},
			&stubLabResultRepo{labResults: []models.LabResult{{ID: "l1", PatientID: "p1"}}},
			&stubMedicalImageRepo{images: []models.MedicalImage{{ID: "i1", PatientID: "p1"}}},
			publisher,
		)

		record, err := uc.GetPatientRecord(context.Background(), testSession(), "p1")
		require.NoError(t, err)
		require.NotNil(t, record)

		assert.Equal(t, "Maria Ionescu", record.Profile.Name)
		assert.Len(t, record.Consultations, 1)
		assert.Len(t, record.Medications, 1)
		assert.Len(t, record.Vaccinations, 1)
		assert.Len(t, record.LabResults, 1)
		assert.Len(t, record.MedicalImages, 1)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, "record.view", publisher.events[0].Action)
		assert.Equal(t, "p1", publisher.events[0].PatientID)
	})

	t.Run("Missing Patient", func(t *testing.T) {
		uc := newTestUsecase(
			&stubPatientRepo{},
			&stubConsultationRepo{},
			&stubMedicationRepo{},
			&stubVaccinationRepo{},
			&stubLabResultRepo{},
			&stubMedicalImageRepo{},
			&stubAuditPublisher{},
		)

		record, err := uc.GetPatientRecord(context.Background(), testSession(), "missing")
		assert.Nil(t, record)
		require.Error(t, err)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("Sibling Failure Fails The Whole Fetch", func(t *testing.T) {
		uc := newTestUsecase(
			&stubPatientRepo{patient: patient},
			&stubConsultationRepo{},
			&stubMedicationRepo{},
			&stubVaccinationRepo{err: errors.New("boom")},
			&stubLabResultRepo{},
			&stubMedicalImageRepo{},
			&stubAuditPublisher{},
		)

		record, err := uc.GetPatientRecord(context.Background(), testSession(), "p1")
		assert.Nil(t, record)
		assert.Error(t, err)
	})

	t.Run("Audit Failure Does Not Fail The Fetch", func(t *testing.T) {
		uc := newTestUsecase(
			&stubPatientRepo{patient: patient},
			&stubConsultationRepo{},
			&stubMedicationRepo{},
			&stubVaccinationRepo{},
			&stubLabResultRepo{},
			&stubMedicalImageRepo{},
			&stubAuditPublisher{err: errors.New("broker down")},
		)

		record, err := uc.GetPatientRecord(context.Background(), testSession(), "p1")
		assert.NoError(t, err)
		assert.NotNil(t, record)
	})
}

func TestGetConsultationDetail(t *testing.T) {
	patient := &models.Patient{ID: "p1", FullName: "Maria Ionescu"}
	consultation := &models.Consultation{ID: "c1", PatientID: "p1", Diagnosis: "flu"}

	t.Run("Correlates Medications And Images", func(t *testing.T) {
		uc := newTestUsecase(
			&stubPatientRepo{patient: patient},
			&stubConsultationRepo{consultation: consultation},
			&stubMedicationRepo{medications: []models.Medication{
				{ID: "m1", ConsultationID: "c1"},
				{ID: "m2", ConsultationID: "c2"},
				{ID: "m3"},
			}},
			&stubVaccinationRepo{},
			&stubLabResultRepo{},
			&stubMedicalImageRepo{images: []models.MedicalImage{
				{ID: "i1", ConsultationID: "c1"},
				{ID: "i2"},
			}},
			&stubAuditPublisher{},
		)

		detail, err := uc.GetConsultationDetail(context.Background(), testSession(), "p1", "c1")
		require.NoError(t, err)
		require.NotNil(t, detail)

		assert.Equal(t, "flu", detail.Consultation.Diagnosis)
		require.Len(t, detail.Medications, 1)
		assert.Equal(t, "m1", detail.Medications[0].ID)
		require.Len(t, detail.MedicalImages, 1)
		assert.Equal(t, "i1", detail.MedicalImages[0].ID)
	})

	t.Run("Consultation Of Another Patient Is Not Found", func(t *testing.T) {
		foreign := &models.Consultation{ID: "c1", PatientID: "p2"}
		uc := newTestUsecase(
			&stubPatientRepo{patient: patient},
			&stubConsultationRepo{consultation: foreign},
			&stubMedicationRepo{},
			&stubVaccinationRepo{},
			&stubLabResultRepo{},
			&stubMedicalImageRepo{},
			&stubAuditPublisher{},
		)

		detail, err := uc.GetConsultationDetail(context.Background(), testSession(), "p1", "c1")
		assert.Nil(t, detail)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})

	t.Run("Missing Consultation", func(t *testing.T) {
		uc := newTestUsecase(
			&stubPatientRepo{patient: patient},
			&stubConsultationRepo{},
			&stubMedicationRepo{},
			&stubVaccinationRepo{},
			&stubLabResultRepo{},
			&stubMedicalImageRepo{},
			&stubAuditPublisher{},
		)

		detail, err := uc.GetConsultationDetail(context.Background(), testSession(), "p1", "c9")
		assert.Nil(t, detail)
		assert.Error(t, err)
	})
}
