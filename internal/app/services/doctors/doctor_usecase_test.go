package doctors

import (
	"context"
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/requests"
	"medrecord-service/internal/pkg/exceptions"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/zap"
)

type stubPatientRepo struct {
	patients []models.Patient
	err      error
}

func (s *stubPatientRepo) FindByID(ctx context.Context, patientID string) (*models.Patient, error) {
	for _, patient := range s.patients {
		if patient.ID == patientID {
			return &patient, nil
		}
	}
	return nil, s.err
}

func (s *stubPatientRepo) FindByCNP(ctx context.Context, cnp string) (*models.Patient, error) {
	for _, patient := range s.patients {
		if patient.CNP == cnp {
			return &patient, nil
		}
	}
	return nil, s.err
}

func (s *stubPatientRepo) FindByIDs(ctx context.Context, patientIDs []string) ([]models.Patient, error) {
	wanted := make(map[string]bool, len(patientIDs))
	for _, id := range patientIDs {
		wanted[id] = true
	}
	found := make([]models.Patient, 0)
	for _, patient := range s.patients {
		if wanted[patient.ID] {
			found = append(found, patient)
		}
	}
	return found, s.err
}

func (s *stubPatientRepo) FindAll(ctx context.Context) ([]models.Patient, error) {
	return s.patients, s.err
}

type stubConsultationRepo struct {
	consultations []models.Consultation
	err           error
}

func (s *stubConsultationRepo) FindByID(ctx context.Context, consultationID string) (*models.Consultation, error) {
	return nil, s.err
}

func (s *stubConsultationRepo) FindByPatientID(ctx context.Context, patientID string) ([]models.Consultation, error) {
	return s.consultations, s.err
}

func (s *stubConsultationRepo) FindByDoctorID(ctx context.Context, doctorID string) ([]models.Consultation, error) {
	return s.consultations, s.err
}

func TestGetRecentPatients(t *testing.T) {
	patientRepo := &stubPatientRepo{patients: []models.Patient{
		{ID: "p1", FullName: "Maria Ionescu", CNP: "2900610123456", DateOfBirth: "1990-06-10", Gender: "female"},
		{ID: "p2", FullName: "Ion Popescu", CNP: "1850322123456", DateOfBirth: "1985-03-22", Gender: "male"},
	}}

	t.Run("Repeat Patient Appears Once With Latest Visit", func(t *testing.T) {
		consultationRepo := &stubConsultationRepo{consultations: []models.Consultation{
			{ID: "c3", PatientID: "p1", DoctorID: "d1", Date: "2024-05-20"},
			{ID: "c2", PatientID: "p2", DoctorID: "d1", Date: "2024-04-11"},
			{ID: "c1", PatientID: "p1", DoctorID: "d1", Date: "2024-01-05"},
		}}
		uc := NewDoctorUsecase(zap.NewNop(), patientRepo, consultationRepo)

		summaries, err := uc.GetRecentPatients(context.Background(), "d1")
		require.NoError(t, err)
		require.Len(t, summaries, 2)

		assert.Equal(t, "p1", summaries[0].ID)
		assert.Equal(t, "2024-05-20", summaries[0].LastVisit)
		assert.Equal(t, "p2", summaries[1].ID)
	})

	t.Run("No Consultations Yields Empty List", func(t *testing.T) {
		uc := NewDoctorUsecase(zap.NewNop(), patientRepo, &stubConsultationRepo{})

		summaries, err := uc.GetRecentPatients(context.Background(), "d1")
		require.NoError(t, err)
		assert.NotNil(t, summaries)
		assert.Empty(t, summaries)
	})

	t.Run("Visit Of Unknown Patient Is Skipped", func(t *testing.T) {
		consultationRepo := &stubConsultationRepo{consultations: []models.Consultation{
			{ID: "c1", PatientID: "ghost", DoctorID: "d1", Date: "2024-02-01"},
		}}
		uc := NewDoctorUsecase(zap.NewNop(), patientRepo, consultationRepo)

		summaries, err := uc.GetRecentPatients(context.Background(), "d1")
		require.NoError(t, err)
		assert.Empty(t, summaries)
	})
}

func TestSearchPatientByCNP(t *testing.T) {
	patientRepo := &stubPatientRepo{patients: []models.Patient{
		{ID: "p1", FullName: "Maria Ionescu", CNP: "2900610123456", DateOfBirth: "1990-06-10", Gender: "female"},
	}}
	uc := NewDoctorUsecase(zap.NewNop(), patientRepo, &stubConsultationRepo{})

	t.Run("Exact Match", func(t *testing.T) {
		summary, err := uc.SearchPatientByCNP(context.Background(), &requests.SearchPatientRequest{CNP: "2900610123456"})
		require.NoError(t, err)
		require.NotNil(t, summary)
		assert.Equal(t, "p1", summary.ID)
		assert.Equal(t, "Maria Ionescu", summary.FullName)
	})

	t.Run("Surrounding Whitespace Is Trimmed", func(t *testing.T) {
		summary, err := uc.SearchPatientByCNP(context.Background(), &requests.SearchPatientRequest{CNP: "  2900610123456  "})
		require.NoError(t, err)
		assert.Equal(t, "p1", summary.ID)
	})

	t.Run("Partial CNP Fails Validation", func(t *testing.T) {
		summary, err := uc.SearchPatientByCNP(context.Background(), &requests.SearchPatientRequest{CNP: "29006101"})
		assert.Nil(t, summary)
		assert.Error(t, err)
	})

	t.Run("Empty Query Is Rejected", func(t *testing.T) {
		summary, err := uc.SearchPatientByCNP(context.Background(), &requests.SearchPatientRequest{CNP: "   "})
		assert.Nil(t, summary)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 400, customErr.StatusCode)
	})

	t.Run("Unknown CNP Is Not Found", func(t *testing.T) {
		summary, err := uc.SearchPatientByCNP(context.Background(), &requests.SearchPatientRequest{CNP: "9999999999999"})
		assert.Nil(t, summary)

		var customErr *exceptions.CustomError
		require.ErrorAs(t, err, &customErr)
		assert.Equal(t, 404, customErr.StatusCode)
	})
}

func TestGetPatientProfileByCNP(t *testing.T) {
	patientRepo := &stubPatientRepo{patients: []models.Patient{
		{ID: "p1", FullName: "Maria Ionescu", CNP: "2900610123456", DateOfBirth: "1990-06-10", Gender: "female", Allergies: []string{"penicillin"}},
	}}
	uc := NewDoctorUsecase(zap.NewNop(), patientRepo, &stubConsultationRepo{})

	t.Run("Assembles Profile From Match", func(t *testing.T) {
		profile, err := uc.GetPatientProfileByCNP(context.Background(), &requests.SearchPatientRequest{CNP: "2900610123456"})
		require.NoError(t, err)
		require.NotNil(t, profile)

		assert.Equal(t, "Maria Ionescu", profile.Name)
		assert.Equal(t, "2900610123456", profile.CNP)
		assert.Equal(t, []string{"penicillin"}, profile.Conditions)
		assert.NotEmpty(t, profile.LastVisit)
	})

	t.Run("Unknown CNP Is Not Found", func(t *testing.T) {
		profile, err := uc.GetPatientProfileByCNP(context.Background(), &requests.SearchPatientRequest{CNP: "9999999999999"})
		assert.Nil(t, profile)
		assert.Error(t, err)
	})
}
