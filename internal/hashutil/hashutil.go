package hashutil

import (
	"crypto/sha256"
	"fmt"
	"time"
)

// RunID creates a 7-character hex ID for a generate run.
func RunID() string {
	return IDFromSeed(fmt.Sprintf("run\x00%d", time.Now().UnixNano()))
}

// IDFromSeed creates a deterministic 7-character hex ID from a seed string.
func IDFromSeed(seed string) string {
	hash := sha256.Sum256([]byte(seed))
	return fmt.Sprintf("%x", hash[:4])[:7]
}
