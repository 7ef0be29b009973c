package models

const (
	LabResultStatusNormal   = "normal"
	LabResultStatusAbnormal = "abnormal"
	LabResultStatusCritical = "critical"
)

type LabResult struct {
	ID        string `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID string `json:"patientId" bson:"patientId"`
	Name      string `json:"name" bson:"name"`
	Date      string `json:"date" bson:"date"`
	Value     string `json:"value" bson:"value"`
	Status    string `json:"status" bson:"status"`
}
