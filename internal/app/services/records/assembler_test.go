package records

import (
	"medrecord-service/internal/app/models"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAssembleProfile(t *testing.T) {
	now := time.Date(2024, time.June, 15, 9, 30, 0, 0, time.UTC)

	patient := &models.Patient{
		ID:          "p1",
		FullName:    "Maria Ionescu",
		CNP:         "2900610123456",
		DateOfBirth: "1990-06-10",
		Gender:      "female",
		BloodType:   "A+",
		Allergies:   []string{"penicillin", "pollen"},
	}

	t.Run("Maps Patient Fields", func(t *testing.T) {
		profile := AssembleProfile(patient, now)

		assert.Equal(t, "2900610123456", profile.CNP)
		assert.Equal(t, "Maria Ionescu", profile.Name)
		assert.Equal(t, 34, profile.Age)
		assert.Equal(t, "female", profile.Gender)
	})

	t.Run("Last Visit Is Assembly Date", func(t *testing.T) {
		profile := AssembleProfile(patient, now)
		assert.Equal(t, "2024-06-15", profile.LastVisit)
	})

	t.Run("Conditions Carry Allergies", func(t *testing.T) {
		profile := AssembleProfile(patient, now)
		assert.Equal(t, []string{"penicillin", "pollen"}, profile.Conditions)
	})

	t.Run("Nil Allergies Yield Empty Conditions", func(t *testing.T) {
		bare := &models.Patient{ID: "p2", FullName: "Ion Popescu"}
		profile := AssembleProfile(bare, now)
		assert.NotNil(t, profile.Conditions)
		assert.Empty(t, profile.Conditions)
	})

	t.Run("Stable Within Same Day", func(t *testing.T) {
		morning := AssembleProfile(patient, time.Date(2024, time.June, 15, 0, 1, 0, 0, time.UTC))
		evening := AssembleProfile(patient, time.Date(2024, time.June, 15, 23, 59, 0, 0, time.UTC))
		assert.Equal(t, morning, evening)
	})
}
