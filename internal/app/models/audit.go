package models

import "time"

// RecordAccessEvent is the audit payload published whenever a chart is opened
// or exported. Delivery is best effort; the viewing operation never fails on a
// publish error.
type RecordAccessEvent struct {
	ActorID   string    `json:"actorId"`
	ActorRole string    `json:"actorRole"`
	Action    string    `json:"action"`
	PatientID string    `json:"patientId"`
	Timestamp time.Time `json:"timestamp"`
}
