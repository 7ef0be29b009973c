package utils

import (
	"medrecord-service/internal/pkg/constvars"
	"time"
)

// CalculateAge derives a whole-years age from an ISO date-of-birth string.
// Empty or unparsable input yields 0 so that incomplete records stay renderable.
func CalculateAge(dateOfBirth string) int {
	return AgeAt(dateOfBirth, time.Now())
}

// AgeAt computes the age at a reference instant. The year difference is
// decremented when the birthday has not been reached yet in the reference year.
func AgeAt(dateOfBirth string, now time.Time) int {
	if dateOfBirth == "" {
		return 0
	}
	birthDate, err := time.Parse(constvars.DateLayout, dateOfBirth)
	if err != nil {
		return 0
	}

	age := now.Year() - birthDate.Year()
	monthDiff := int(now.Month()) - int(birthDate.Month())
	if monthDiff < 0 || (monthDiff == 0 && now.Day() < birthDate.Day()) {
		age--
	}
	return age
}
