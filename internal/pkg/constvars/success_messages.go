package constvars

const (
	// Generic messages
	ResponseUnknown = "unknown"
	ResponseSuccess = "success"
	ResponseError   = "error"

	// Schedule messages
	PatternEncodedSuccess  = "schedule pattern encoded successfully"
	PatternDecodedSuccess  = "schedule pattern decoded successfully"
	ProgressProjectSuccess = "course progress projected successfully"
	ForecastSuccess        = "completion forecast computed successfully"
	ConflictCheckSuccess   = "conflict check completed successfully"
	ProposalSuccess        = "booking proposal evaluated successfully"
	CheckRunsGetSuccess    = "get conflict check history successfully"
)
