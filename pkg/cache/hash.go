package cache

import (
	"crypto/sha256"
	"encoding/hex"
	"encoding/json"
)

// Hash computes a SHA-256 hash of the input data.
// Returns the full 64-character hex string.
func Hash(data []byte) string {
	h := sha256.Sum256(data)
	return hex.EncodeToString(h[:])
}

// hashParts hashes a sequence of key components through their JSON encoding.
// The full SHA-256 (64 hex chars) is kept to rule out collisions.
func hashParts(parts ...any) string {
	data, _ := json.Marshal(parts)
	return Hash(data)
}
