// Package pagination implements the opaque continuation tokens used by the
// event listing. A token carries the sort key of the last returned event so
// the next page can resume after it regardless of which backend serves the
// listing.
package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

// RFC3339Nano keeps creation-time tie-breaks exact across a round trip.
const tokenTimeFormat = time.RFC3339Nano

// EncodeToken packs an event's sort key, its date and creation time, into
// an opaque base64 token.
func EncodeToken(eventDate, createdAt time.Time) string {
	raw := eventDate.Format(tokenTimeFormat) + "|" + createdAt.Format(tokenTimeFormat)
	return base64.StdEncoding.EncodeToString([]byte(raw))
}

// DecodeToken unpacks a token produced by EncodeToken.
func DecodeToken(token string) (time.Time, time.Time, error) {
	raw, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("pagination token is not valid base64: %w", err)
	}
	datePart, createdPart, ok := strings.Cut(string(raw), "|")
	if !ok {
		return time.Time{}, time.Time{}, fmt.Errorf("pagination token is missing its separator")
	}

	eventDate, err := time.Parse(tokenTimeFormat, datePart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("pagination token carries a bad event date: %w", err)
	}
	createdAt, err := time.Parse(tokenTimeFormat, createdPart)
	if err != nil {
		return time.Time{}, time.Time{}, fmt.Errorf("pagination token carries a bad creation time: %w", err)
	}
	return eventDate, createdAt, nil
}
