package util

import "github.com/google/uuid"

// NewUUID returns a random id for a run directory.
func NewUUID() string {
	return uuid.New().String()
}

// ShortID is the first block of a run id, enough to tell runs apart in logs.
func ShortID(id string) string {
	if len(id) < 8 {
		return id
	}
	return id[:8]
}
