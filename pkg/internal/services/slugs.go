package services

import (
	"crypto/rand"
	"encoding/base64"
)

const (
	pollSlugBytes      = 6
	participantIDBytes = 16
)

// GenerateSlug returns a short url-safe identifier used in poll links.
func GenerateSlug() string {
	return randomToken(pollSlugBytes)
}

// GenerateParticipantID returns a fresh identity for a participant that
// arrived without one.
func GenerateParticipantID() string {
	return randomToken(participantIDBytes)
}

func randomToken(size int) string {
	buf := make([]byte, size)
	if _, err := rand.Read(buf); err != nil {
		panic(err)
	}
	return base64.RawURLEncoding.EncodeToString(buf)
}
