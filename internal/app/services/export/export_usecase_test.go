package export

import (
	"context"
	"errors"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/responses"
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

type stubRecordUsecase struct {
	record *responses.PatientRecord
	err    error
}

func (s *stubRecordUsecase) GetPatientRecord(ctx context.Context, session *models.Session, patientID string) (*responses.PatientRecord, error) {
	return s.record, s.err
}
func (s *stubRecordUsecase) GetConsultationDetail(ctx context.Context, session *models.Session, patientID, consultationID string) (*responses.ConsultationDetail, error) {
	return nil, s.err
}
func (s *stubRecordUsecase) BuildPatientRecord(ctx context.Context, patientID string) (*responses.PatientRecord, error) {
	return s.record, s.err
}

type stubGenerator struct {
	document []byte
	err      error
	calls    int
}

func (s *stubGenerator) Generate(record *responses.PatientRecord) ([]byte, error) {
	s.calls++
	return s.document, s.err
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
	return &models.Session{SessionID: "sess-1", UserID: "u1", RoleName: "patient", PatientID: "p1"}
}

func TestExportPatientRecord(t *testing.T) {
	record := &responses.PatientRecord{
		Profile: responses.AssembledProfile{Name: "Maria Ionescu", CNP: "2900610123456"},
	}

	t.Run("Renders Document And Publishes Event", func(t *testing.T) {
		generator := &stubGenerator{document: []byte("%PDF-1.4")}
		publisher := &stubAuditPublisher{}
		uc := NewExportUsecase(
			zap.NewNop(),
			&stubPatientRepo{patient: &models.Patient{ID: "p1"}},
			&stubRecordUsecase{record: record},
			generator,
			publisher,
		)

		document, err := uc.ExportPatientRecord(context.Background(), testSession(), "p1")
		require.NoError(t, err)
		assert.Equal(t, []byte("%PDF-1.4"), document)
		assert.Equal(t, 1, generator.calls)

		require.Len(t, publisher.events, 1)
		assert.Equal(t, "record.export", publisher.events[0].Action)
	})

	t.Run("Missing Patient Is A Silent NoOp", func(t *testing.T) {
		generator := &stubGenerator{document: []byte("%PDF-1.4")}
		publisher := &stubAuditPublisher{}
		uc := NewExportUsecase(
			zap.NewNop(),
			&stubPatientRepo{},
			&stubRecordUsecase{record: record},
			generator,
			publisher,
		)

		document, err := uc.ExportPatientRecord(context.Background(), testSession(), "missing")
		assert.NoError(t, err)
		assert.Nil(t, document)
		assert.Equal(t, 0, generator.calls)
		assert.Empty(t, publisher.events)
	})

	t.Run("Generator Failure Propagates", func(t *testing.T) {
		uc := NewExportUsecase(
			zap.NewNop(),
			&stubPatientRepo{patient: &models.Patient{ID: "p1"}},
			&stubRecordUsecase{record: record},
			&stubGenerator{err: errors.New("render failed")},
			&stubAuditPublisher{},
		)

		document, err := uc.ExportPatientRecord(context.Background(), testSession(), "p1")
		assert.Nil(t, document)
		assert.Error(t, err)
	})

	t.Run("Publish Failure Does Not Fail The Export", func(t *testing.T) {
		uc := NewExportUsecase(
			zap.NewNop(),
			&stubPatientRepo{patient: &models.Patient{ID: "p1"}},
			&stubRecordUsecase{record: record},
			&stubGenerator{document: []byte("%PDF-1.4")},
			&stubAuditPublisher{err: errors.New("broker down")},
		)

		document, err := uc.ExportPatientRecord(context.Background(), testSession(), "p1")
		assert.NoError(t, err)
		assert.NotNil(t, document)
	})
}

func TestPDFGenerator(t *testing.T) {
	t.Run("Produces A PDF Document", func(t *testing.T) {
		generator := NewPDFGenerator()
		record := &responses.PatientRecord{
			Profile: responses.AssembledProfile{
				Name:       "Maria Ionescu",
				CNP:        "2900610123456",
				Age:        34,
				Gender:     "female",
				LastVisit:  "2024-06-15",
				Conditions: []string{"penicillin"},
			},
			Consultations: []models.Consultation{{Date: "2024-05-20", Diagnosis: "flu", DoctorName: "Dr. Pop"}},
			Medications:   []models.Medication{{Name: "Amoxicillin", Dose: "500mg", Frequency: "3x daily"}},
		}

		document, err := generator.Generate(record)
		require.NoError(t, err)
		require.NotEmpty(t, document)
		assert.Equal(t, "%PDF", string(document[:4]))
	})
}
