package utils

import (
	"crypto/rand"
	"encoding/hex"
	"fmt"
	"strings"
	"time"
)

// TrackingIDPrefix is the product prefix of every tracking id.
const TrackingIDPrefix = "PS"

// GenerateTrackingID produces a human-readable tracking identifier of the
// form PS-YYYYMMDD-XXXXXX with six uppercase hex characters of randomness.
// Practical uniqueness only; the booking store's unique index is the real
// guard, and callers regenerate on a collision.
func GenerateTrackingID() string {
	buf := make([]byte, 3)
	if _, err := rand.Read(buf); err != nil {
		// crypto/rand failing is unrecoverable for id generation
		panic(fmt.Sprintf("tracking id randomness unavailable: %v", err))
	}
	suffix := strings.ToUpper(hex.EncodeToString(buf))
	return fmt.Sprintf("%s-%s-%s", TrackingIDPrefix, time.Now().Format("20060102"), suffix)
}
