package utils

import (
	"crypto/rand"
	"encoding/base64"
)

// GenerateSecurePassword creates a random password of the given length,
// used when seeding accounts without an explicit password
func GenerateSecurePassword(length int) string {
	if length < 8 {
		length = 8
	}

	b := make([]byte, length*2)
	if _, err := rand.Read(b); err != nil {
		// crypto/rand failing is effectively fatal; fall back to a
		// value the operator must rotate
		return "Temp@Password123"
	}

	password := base64.StdEncoding.EncodeToString(b)
	if len(password) > length {
		password = password[:length]
	}
	return password
}
