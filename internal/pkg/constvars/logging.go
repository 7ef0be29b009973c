package constvars

const (
	LoggingRequestIDKey  = "request_id"
	LoggingOperationKey  = "operation"
	LoggingDurationKey   = "duration"
	LoggingSuccessKey    = "success"
	LoggingMethodKey     = "method"
	LoggingEndpointKey   = "endpoint"
	LoggingRemoteAddrKey = "remote_addr"
	LoggingUserAgentKey  = "user_agent"
	LoggingQueryKey      = "query"
	LoggingStatusCodeKey = "status_code"
	LoggingActorIDKey    = "actor_id"
	LoggingPatientIDKey  = "patient_id"
)
