package models

// Consultation is a single clinical visit authored by a doctor. It is the
// anchor record that medications and medical images reference by foreign key.
type Consultation struct {
	ID         string   `json:"id,omitempty" bson:"_id,omitempty"`
	PatientID  string   `json:"patientId" bson:"patientId"`
	DoctorID   string   `json:"doctorId" bson:"doctorId"`
	DoctorName string   `json:"doctorName" bson:"doctorName"`
	Date       string   `json:"date" bson:"date"`
	Diagnosis  string   `json:"diagnosis" bson:"diagnosis"`
	Notes      string   `json:"notes,omitempty" bson:"notes,omitempty"`
	Images     []string `json:"images,omitempty" bson:"images,omitempty"`
}
