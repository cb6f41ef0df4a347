package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateInviteToken returns a URL-safe token with InviteTokenBytes of
// entropy. It is the only lookup key an unauthenticated invitee holds, so
// it has to be unguessable.
func GenerateInviteToken() (string, error) {
	buf := make([]byte, InviteTokenBytes)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return base64.RawURLEncoding.EncodeToString(buf), nil
}
