package util

import (
	"crypto/sha256"
	"encoding/hex"
)

// Fingerprint returns a stable hex digest of s, used to correlate user
// supplied text in logs without recording it.
func Fingerprint(s string) string {
	sum := sha256.Sum256([]byte(s))
	return hex.EncodeToString(sum[:])
}
