package utils

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestAgeAt(t *testing.T) {
	now := time.Date(2024, time.June, 15, 12, 0, 0, 0, time.UTC)

	t.Run("Birthday Already Passed This Year", func(t *testing.T) {
		assert.Equal(t, 34, AgeAt("1990-03-10", now))
	})

	t.Run("Birthday Exactly Today", func(t *testing.T) {
		assert.Equal(t, 34, AgeAt("1990-06-15", now))
	})

	t.Run("Birthday Tomorrow Decrements Age", func(t *testing.T) {
		assert.Equal(t, 33, AgeAt("1990-06-16", now))
	})

	t.Run("Birthday Later Month Decrements Age", func(t *testing.T) {
		assert.Equal(t, 33, AgeAt("1990-11-02", now))
	})

	t.Run("Empty Date Of Birth", func(t *testing.T) {
		assert.Equal(t, 0, AgeAt("", now))
	})

	t.Run("Unparsable Date Of Birth", func(t *testing.T) {
		assert.Equal(t, 0, AgeAt("15.06.1990", now))
		assert.Equal(t, 0, AgeAt("not-a-date", now))
	})

	t.Run("Born This Year", func(t *testing.T) {
		assert.Equal(t, 0, AgeAt("2024-01-01", now))
	})
}

func TestCalculateAge(t *testing.T) {
	t.Run("Empty Input", func(t *testing.T) {
		assert.Equal(t, 0, CalculateAge(""))
	})

	t.Run("Old Date Is Positive", func(t *testing.T) {
		assert.Greater(t, CalculateAge("1950-01-01"), 70)
	})
}
