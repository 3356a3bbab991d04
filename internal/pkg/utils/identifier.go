package utils

import (
	"timetable-service/internal/pkg/constvars"

	"github.com/google/uuid"
)

// GenerateRequestID issues a service-prefixed request identifier for requests
// that did not carry one.
func GenerateRequestID() string {
	return constvars.REQUEST_ID_PREFIX + uuid.New().String()
}
