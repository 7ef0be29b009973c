package models

type MedicalImage struct {
	ID             string `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID      string `json:"patientId" bson:"patientId"`
	ConsultationID string `json:"consultationId,omitempty" bson:"consultationId,omitempty"`
	Type           string `json:"type" bson:"type"`
	Notes          string `json:"notes,omitempty" bson:"notes,omitempty"`
	Date           string `json:"date" bson:"date"`
	ImageURL       string `json:"imageUrl" bson:"imageUrl"`
}
