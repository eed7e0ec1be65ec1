// Package common provides shared error kinds and small helpers used across the service
package common

import (
	"context"
	"strings"
	"time"

	"github.com/google/uuid"
)

// GenerateRequestID generates a unique identifier for one analysis request.
// The identifier is the "YYYYMMDDHHMMSS" timestamp followed by the first
// eight characters of a random UUID, e.g. "20230515103045-1b4e28ba".
func GenerateRequestID() string {
	return GenerateRequestIDAt(time.Now())
}

// GenerateRequestIDAt is GenerateRequestID with an explicit clock reading.
func GenerateRequestIDAt(t time.Time) string {
	return t.Format("20060102150405") + "-" + uuid.New().String()[:8]
}

// NonEmpty returns the trimmed, non-empty values of the input in their original order.
func NonEmpty(values []string) []string {
	var out []string
	for _, v := range values {
		v = strings.TrimSpace(v)
		if v != "" {
			out = append(out, v)
		}
	}
	return out
}

// ChannelIDLength is the length of a canonical channel identifier ("UC" + 22 characters).
const ChannelIDLength = 24

// IsChannelID reports whether s has the shape of a canonical channel identifier.
func IsChannelID(s string) bool {
	return len(s) == ChannelIDLength
}

type requestIDKey struct{}

// WithRequestID returns a context carrying the request id.
func WithRequestID(ctx context.Context, id string) context.Context {
	return context.WithValue(ctx, requestIDKey{}, id)
}

// RequestID returns the request id carried by ctx, empty when there is none.
func RequestID(ctx context.Context) string {
	id, _ := ctx.Value(requestIDKey{}).(string)
	return id
}
