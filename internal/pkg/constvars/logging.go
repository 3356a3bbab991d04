package constvars

const (
	LoggingRequestIDKey      = "request_id"
	LoggingDataKey           = "data"
	LoggingSessionDataKey    = "session_data"
	LoggingResponseKey       = "response"
	LoggingRequestKey        = "request"
	LoggingMethodKey         = "method"
	LoggingEndpointKey       = "endpoint"
	LoggingRemoteAddrKey     = "remote_addr"
	LoggingStatusCodeKey     = "status_code"
	LoggingDurationKey       = "duration"
	LoggingErrorCodeKey      = "error_code"
	LoggingErrorMessageKey   = "error_message"
	LoggingResourceKey       = "resource"
	LoggingResourceIDKey     = "resource_id"
	LoggingPageKey           = "page"
	LoggingCandidateCountKey = "candidate_count"
	LoggingUserAgentKey      = "user_agent"
	LoggingQueryKey          = "query"
	LoggingSuccessKey        = "success"
)
