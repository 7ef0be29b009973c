package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"

	// Record messages
	RecordGetSuccess             = "get patient record successfully"
	ConsultationDetailGetSuccess = "get consultation detail successfully"
	RecentPatientsGetSuccess     = "get recent patients successfully"
	PatientSearchSuccess         = "patient found"
	PatientProfileGetSuccess     = "get patient profile successfully"
	MediaResolveSuccess          = "media reference resolved successfully"
)
