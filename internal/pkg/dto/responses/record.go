package responses

import "medrecord-service/internal/app/models"

// PatientRecord is the full assembled chart for one patient. The collection
// slices are always non-nil so clients never have to special-case null arrays.
type PatientRecord struct {
	Profile       AssembledProfile      `json:"profile"`
	Consultations []models.Consultation `json:"consultations"`
	Medications   []models.Medication   `json:"medications"`
	Vaccinations  []models.Vaccination  `json:"vaccinations"`
	LabResults    []models.LabResult    `json:"labResults"`
	MedicalImages []models.MedicalImage `json:"medicalImages"`
}

// ConsultationDetail is the drill-down view for a single visit with the
// medications and images correlated to it.
type ConsultationDetail struct {
	Consultation  models.Consultation   `json:"consultation"`
	Medications   []models.Medication   `json:"medications"`
	MedicalImages []models.MedicalImage `json:"medicalImages"`
}
