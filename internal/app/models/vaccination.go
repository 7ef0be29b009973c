package models

type Vaccination struct {
	ID        string `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID string `json:"patientId" bson:"patientId"`
	Name      string `json:"name" bson:"name"`
	Date      string `json:"date" bson:"date"`
	Status    string `json:"status" bson:"status"`
}
