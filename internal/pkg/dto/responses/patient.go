package responses

// AssembledProfile is the patient header shown at the top of a record view.
// Conditions aliases the patient's allergies until a dedicated conditions
// collection exists, and LastVisit carries the assembly date.
type AssembledProfile struct {
	CNP        string   `json:"cnp"`
	Name       string   `json:"name"`
	Age        int      `json:"age"`
	Gender     string   `json:"gender"`
	LastVisit  string   `json:"lastVisit"`
	Conditions []string `json:"conditions"`
}

// PatientSummary is a single row in a doctor's patient listing.
type PatientSummary struct {
	ID        string `json:"id"`
	FullName  string `json:"fullName"`
	CNP       string `json:"cnp"`
	Age       int    `json:"age"`
	Gender    string `json:"gender"`
	LastVisit string `json:"lastVisit"`
}
