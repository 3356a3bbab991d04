package contracts

import "context"

// SessionService resolves a session identifier extracted from a bearer token
// into the session payload the external auth service stored.
type SessionService interface {
	GetSessionData(ctx context.Context, sessionID string) (string, error)
}
