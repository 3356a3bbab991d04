package constvars

// Error messages for clients
const (
	ErrClientCannotProcessRequest          = "failed to process your request"
	ErrClientSomethingWrongWithApplication = "there is something wrong with the application"
	ErrClientServerLongRespond             = "the app taking too long to respond"
	ErrClientNotAuthorized                 = "you can't access this feature"
	ErrClientNotLoggedIn                   = "your session ended, please login again"
	ErrClientMalformedPattern              = "the schedule notation is not valid"
	ErrClientUnknownSlot                   = "the requested time slot does not exist"
	ErrClientInvalidWeekday                = "the requested weekday is not valid"
	ErrClientTimetableUnavailable          = "the timetable service is temporarily unavailable"
	ErrClientForecastIndeterminate         = "completion date cannot be forecast for this schedule"
)

// Error messages for developers
const (
	ErrDevInvalidInput             = "invalid input"
	ErrDevCannotParseJSON          = "cannot parse JSON into struct or other data types"
	ErrDevCannotMarshalJSON        = "cannot convert struct or other data types to JSON"
	ErrDevCannotParseDate          = "cannot parse the requested date"
	ErrDevInvalidRequestPayload    = "invalid request payload"
	ErrDevValidationFailed         = "validation failed"
	ErrDevURLParamValidationFailed = "parameter %s validation failed"
	ErrDevServerDeadlineExceeded   = "server took too long to respond"

	ErrDevCreateHTTPRequest = "failed to create HTTP request"
	ErrDevSendHTTPRequest   = "failed to send HTTP request"

	ErrDevMalformedPattern     = "malformed consolidated pattern: %s"
	ErrDevUnknownSlotCode      = "unknown slot code %q"
	ErrDevInvalidWeekdayDigit  = "invalid weekday digit %d, must be within 1..7"
	ErrDevForecastZeroPerWeek  = "pattern yields zero occurrences per week, forecast is indeterminate"
	ErrDevDetectSuperseded     = "conflict detection superseded by a newer request"
	ErrDevPaginationCapReached = "pagination stopped at the %d page cap for %s %s"

	ErrDevTimetableGetResource    = "failed to get %s bookings from the timetable API"
	ErrDevTimetableDecodeResponse = "failed to decode %s response from the timetable API"
	ErrDevOptimizerPropose        = "failed to obtain a booking proposal from the optimizer service"

	ErrDevAuthSigningMethod         = "unexpected signing method"
	ErrDevAuthTokenInvalid          = "invalid token"
	ErrDevAuthTokenInvalidOrExpired = "invalid or expired token"
	ErrDevAuthTokenMissing          = "token missing"
	ErrDevAuthInvalidSession        = "invalid session"

	ErrDevRedisSet       = "failed to set value to redis"
	ErrDevRedisGetNoData = "failed to get value from redis with key %s"
	ErrDevRedisDelete    = "failed to delete value from redis"

	ErrDevMongoDBInsertDocument   = "failed to insert document to mongoDB"
	ErrDevMongoDBFindDocument     = "failed to find document in mongoDB"
	ErrDevMongoDBIterateDocuments = "failed to iterate mongoDB documents"
	ErrDevMongoDBCountDocuments   = "failed to count mongoDB documents"

	ErrDevEventPublish = "failed to publish %s event"
)
