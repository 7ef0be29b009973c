package constvars

// Validation messages mapper
var CustomValidationErrorMessages = map[string]string{
	"required": "is required",
	"numeric":  "must be a number",
	"len":      "must be %s characters long",
	"min":      "must be at least %s characters long",
	"max":      "maximum at %s characters long",
	"url":      "must be a valid URL",
	"oneof":    "must be one of [%s]",
}

// Tags that require parameter substitution
var TagsWithParams = map[string]bool{
	"len":   true,
	"min":   true,
	"max":   true,
	"oneof": true,
}

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientPatientNotFound               = "no patient found with this CNP"
	ErrClientConsultationNotFound          = "consultation not found"
	ErrClientEmptySearchQuery              = "please enter a CNP to search"
	ErrClientMediaReferenceInvalid         = "the image reference cannot be opened"
)

// Error messages for developers
const (
	ErrDevInvalidInput              = "invalid input"
	ErrDevValidationFailed          = "request body or params validation failed"
	ErrDevCannotParseJSON           = "cannot parse JSON into struct or other data types"
	ErrDevServerDeadlineExceeded    = "server process exceeds the given deadline"
	ErrDevAuthTokenMissing          = "authorization token is missing from the request header"
	ErrDevAuthTokenInvalidOrExpired = "authorization token is invalid or already expired"
	ErrDevAuthInvalidSession        = "session data not found or cannot be parsed"
	ErrDevRoleTypeDoesntMatch       = "the session role is not allowed for this resource"
	ErrDevPatientNotExists          = "patient does not exist in the store"
	ErrDevConsultationNotExists     = "consultation does not exist or belongs to another patient"
	ErrDevEmptySearchQuery          = "search query is empty after trimming"

	ErrDevDBFailedToFindDocument     = "database failed to find the document"
	ErrDevDBFailedToIterateDocuments = "database failed to iterate the documents with cursor"

	ErrDevRedisGetData    = "redis failed to get data"
	ErrDevRedisSetData    = "redis failed to set data"
	ErrDevRedisDeleteData = "redis failed to delete data"

	ErrDevCannotMarshalJSON = "cannot marshal data into JSON"

	ErrDevMinioFailedToGetObject = "minio failed to get object from bucket %s"

	ErrDevRabbitMQPublishMessage = "rabbitmq failed to publish message to queue %s"

	ErrDevDocumentGenerateFailed = "document generator failed to render the record"
)
