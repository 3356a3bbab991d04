package constvars

type ContextKey string

const (
	ResourceCourses        = "courses"
	ResourcePatterns       = "patterns"
	ResourceProgress       = "progress"
	ResourceConflicts      = "conflicts"
	ResourceProposals      = "proposals"
	ResourceConflictChecks = "conflict-checks"
)

const (
	AppPaginationUrlFormat = "%s?page=%d&page_size=%d"
)

const (
	CONTEXT_REQUEST_ID_KEY           ContextKey = "request_id"
	CONTEXT_SESSION_DATA_KEY         ContextKey = "session_data"
	CONTEXT_IS_CLIENT_REQUEST_ID_KEY ContextKey = "is_client_request_id"
)

const (
	REQUEST_ID_PREFIX = "TTBL_SVC_"
)

const (
	RoleGuest       = "Guest"
	RoleCoordinator = "Coordinator"
	RoleInstructor  = "Instructor"
	RoleAdmin       = "Admin"
)
