package records

import (
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/dto/responses"
)

// MedicationsForConsultation filters a patient's medications down to the ones
// prescribed during the given consultation, preserving the input order.
// Medications without a consultation reference never match, even when the
// requested ID is empty.
func MedicationsForConsultation(medications []models.Medication, consultationID string) []models.Medication {
	matched := make([]models.Medication, 0)
	for _, medication := range medications {
		if medication.ConsultationID == "" {
			continue
		}
		if medication.ConsultationID == consultationID {
			matched = append(matched, medication)
		}
	}
	return matched
}

// ImagesForConsultation filters a patient's medical images down to the ones
// captured during the given consultation, preserving the input order.
func ImagesForConsultation(images []models.MedicalImage, consultationID string) []models.MedicalImage {
	matched := make([]models.MedicalImage, 0)
	for _, image := range images {
		if image.ConsultationID == "" {
			continue
		}
		if image.ConsultationID == consultationID {
			matched = append(matched, image)
		}
	}
	return matched
}

// DedupPatientsByID keeps the first occurrence of each patient and drops the
// rest. Input order decides which row wins, so callers should pass rows sorted
// by recency.
func DedupPatientsByID(summaries []responses.PatientSummary) []responses.PatientSummary {
	seen := make(map[string]bool, len(summaries))
	deduped := make([]responses.PatientSummary, 0, len(summaries))
	for _, summary := range summaries {
		if seen[summary.ID] {
			continue
		}
		seen[summary.ID] = true
		deduped = append(deduped, summary)
	}
	return deduped
}
