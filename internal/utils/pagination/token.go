package pagination

import (
	"encoding/base64"
	"fmt"
	"strings"
	"time"
)

const timeFormat = time.RFC3339Nano // Use a precise time format

// Cursor identifies the last record of a fetched page. The store resumes
// the next page strictly after this position in (occurredAt desc,
// recordedAt desc, id) order.
type Cursor struct {
	OccurredAt time.Time
	RecordedAt time.Time
	ID         string
}

// EncodeCursor creates an opaque base64 token from a page cursor.
// This keeps pagination positions consistent across store implementations.
func EncodeCursor(c Cursor) string {
	return EncodeMultiFieldToken(c.OccurredAt.Format(timeFormat), c.RecordedAt.Format(timeFormat), c.ID)
}

// DecodeCursor parses an opaque token back into a page cursor.
func DecodeCursor(token string) (Cursor, error) {
	fields, err := DecodeMultiFieldToken(token)
	if err != nil {
		return Cursor{}, err
	}
	if len(fields) != 3 {
		return Cursor{}, fmt.Errorf("invalid pagination token format (field count)")
	}

	occurredAt, err := time.Parse(timeFormat, fields[0])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (occurred_at parse): %w", err)
	}

	recordedAt, err := time.Parse(timeFormat, fields[1])
	if err != nil {
		return Cursor{}, fmt.Errorf("invalid pagination token format (recorded_at parse): %w", err)
	}

	return Cursor{OccurredAt: occurredAt, RecordedAt: recordedAt, ID: fields[2]}, nil
}

// EncodeMultiFieldToken creates a token with any number of string fields
// This provides flexibility for different pagination strategies
func EncodeMultiFieldToken(fields ...string) string {
	tokenStr := strings.Join(fields, "|")
	return base64.StdEncoding.EncodeToString([]byte(tokenStr))
}

// DecodeMultiFieldToken decodes a token into its component fields
func DecodeMultiFieldToken(token string) ([]string, error) {
	decodedBytes, err := base64.StdEncoding.DecodeString(token)
	if err != nil {
		return nil, fmt.Errorf("invalid pagination token format (base64 decode): %w", err)
	}

	tokenStr := string(decodedBytes)
	parts := strings.Split(tokenStr, "|")
	return parts, nil
}
