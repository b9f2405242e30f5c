package service

import (
	"encoding/base64"

	"github.com/google/uuid"
)

// NewSessionID returns a random (version 4) UUID rendered as 22 characters of unpadded base64url.
func NewSessionID() string {
	id := uuid.New()
	return base64.RawURLEncoding.EncodeToString(id[:])
}
