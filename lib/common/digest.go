package common

import (
	"crypto/sha512"
	"encoding/base64"
)

// MakeDigest returns the base64 encoded SHA-512 of b.
func MakeDigest(b []byte) string {
	h := sha512.Sum512(b)
	return base64.StdEncoding.EncodeToString(h[:])
}
