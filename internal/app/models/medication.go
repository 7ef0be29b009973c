package models

type Medication struct {
	ID        string `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID string `json:"patientId" bson:"patientId"`
	// ConsultationID is empty for standalone prescriptions; such entries never
	// match a consultation-scoped filter.
	ConsultationID string `json:"consultationId,omitempty" bson:"consultationId,omitempty"`
	Name           string `json:"name" bson:"name"`
	Dose           string `json:"dose" bson:"dose"`
	Frequency      string `json:"frequency" bson:"frequency"`
	Duration       int    `json:"duration" bson:"duration"`
}
