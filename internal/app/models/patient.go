package models

type Patient struct {
	ID          string   `json:"id,omitempty" bson:"_id,omitempty"`
	FullName    string   `json:"fullName" bson:"fullName"`
	CNP         string   `json:"cnp" bson:"cnp"`
	DateOfBirth string   `json:"dateOfBirth" bson:"dateOfBirth"`
	Gender      string   `json:"gender" bson:"gender"`
	BloodType   string   `json:"bloodType" bson:"bloodType"`
	Allergies   []string `json:"allergies" bson:"allergies"`
}
