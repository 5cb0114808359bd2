package hexid

import (
	"crypto/rand"
	"encoding/hex"
	"regexp"
)

// Every record id (and every external user reference) is a 24-character
// lowercase hex string: 12 random bytes, hex-encoded.
const Length = 24

var pattern = regexp.MustCompile(`^[0-9a-fA-F]{24}$`)

// New returns a fresh 24-character hex identifier.
func New() string {
	buf := make([]byte, Length/2)
	if _, err := rand.Read(buf); err != nil {
		panic("hexid: " + err.Error())
	}
	return hex.EncodeToString(buf)
}

// IsValid reports whether s has the 24-character hex id shape.
// It says nothing about whether a record with this id exists.
func IsValid(s string) bool {
	return pattern.MatchString(s)
}
