package session

import (
	"context"
	"fmt"

	"timetable-service/internal/app/contracts"
	"timetable-service/internal/pkg/exceptions"
)

const sessionKeyFmt = "session:%s"

// sessionService resolves session identifiers against the session store the
// external auth service writes to. An absent key means the session expired or
// was revoked.
type sessionService struct {
	redis contracts.RedisRepository
}

func NewSessionService(redis contracts.RedisRepository) contracts.SessionService {
	return &sessionService{redis: redis}
}

func (s *sessionService) GetSessionData(ctx context.Context, sessionID string) (string, error) {
	data, err := s.redis.Get(ctx, fmt.Sprintf(sessionKeyFmt, sessionID))
	if err != nil {
		return "", err
	}
	if data == "" {
		return "", exceptions.ErrInvalidSession(nil)
	}
	return data, nil
}
