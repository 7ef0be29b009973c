package constvars

const (
	URLParamPatientID      = "patientID"
	URLParamConsultationID = "consultationID"
	URLParamBucket         = "bucket"

	QueryParamCNP = "cnp"
	QueryParamURL = "url"
)
