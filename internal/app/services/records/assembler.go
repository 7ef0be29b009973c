package records

import (
	"medrecord-service/internal/app/models"
	"medrecord-service/internal/pkg/constvars"
	"medrecord-service/internal/pkg/dto/responses"
	"medrecord-service/internal/pkg/utils"
	"time"
)

// AssembleProfile flattens a patient into the header shown above the record.
// LastVisit is stamped with the assembly date, not an actual visit date, and
// Conditions carries the allergy list until conditions become their own
// collection. Both choices are kept deliberately so the rendered view stays
// stable within a day.
func AssembleProfile(patient *models.Patient, now time.Time) responses.AssembledProfile {
	conditions := make([]string, 0, len(patient.Allergies))
	conditions = append(conditions, patient.Allergies...)

	return responses.AssembledProfile{
		CNP:        patient.CNP,
		Name:       patient.FullName,
		Age:        utils.AgeAt(patient.DateOfBirth, now),
		Gender:     patient.Gender,
		LastVisit:  now.Format(constvars.DateLayout),
		Conditions: conditions,
	}
}
