package tlssig

import (
	"crypto/hmac"
	"crypto/sha256"
)

// Digest computes the HMAC-SHA256 of the canonical message under key,
// returning the 32-byte digest. Keys of any length are accepted, including
// zero-length; the standard keyed-MAC construction pads or hashes the key
// to the block size as needed.
func Digest(key []byte, canonical string) []byte {
	mac := hmac.New(sha256.New, key)
	mac.Write([]byte(canonical))
	return mac.Sum(nil)
}
