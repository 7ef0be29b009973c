package constvars

type ContextKey string

const (
	CONTEXT_SESSION_KEY              ContextKey = "session"
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	RoleTypePatient = "patient"
	RoleTypeDoctor  = "doctor"
)

const (
	MongoCollectionPatients      = "patients"
	MongoCollectionConsultations = "consultations"
	MongoCollectionMedications   = "medications"
	MongoCollectionVaccinations  = "vaccinations"
	MongoCollectionLabResults    = "labResults"
	MongoCollectionMedicalImages = "medicalImages"
)

const (
	// DateLayout is the ISO calendar-date format used for dateOfBirth,
	// consultation dates and the derived lastVisit stamp.
	DateLayout = "2006-01-02"
)

const (
	MediaKindDicom = "dicom"
	MediaKindImage = "image"

	DicomFileExtension = ".dcm"
)

const (
	AuditActionRecordView   = "record.view"
	AuditActionRecordExport = "record.export"
)

const (
	ExportDocumentFileName = "medical-record.pdf"
)
