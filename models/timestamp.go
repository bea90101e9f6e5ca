// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"bytes"
	"database/sql/driver"
	"encoding/json"
	"errors"
	"fmt"
	"regexp"
	"time"
)

const (
	// DateLayout is the date-only wire format (YYYY-MM-DD).
	DateLayout = "2006-01-02"

	// TimestampLayout is the canonical wire format of every timestamp the
	// server emits (YYYY-MM-DDTHH:mm:ss.sssZ, always UTC).
	TimestampLayout = "2006-01-02T15:04:05.000Z"
)

// ErrInvalidTimestamp is returned when a value cannot be parsed as a timestamp.
var ErrInvalidTimestamp = errors.New("invalid timestamp")

var (
	datePattern      = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	timestampPattern = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}T\d{2}:\d{2}:\d{2}\.\d{3}Z$`)
)

// Timestamp is a UTC instant with millisecond precision on the wire.
//
// It is used for every time column of a fasting session. JSON input accepts
// RFC 3339 and date-only values, JSON output is always [TimestampLayout].
// Timestamp implements [driver.Valuer] and [sql.Scanner] so it can be bound
// and scanned directly by both supported SQL drivers.
type Timestamp struct {
	time.Time
}

// NewTimestamp wraps t, normalized to UTC.
func NewTimestamp(t time.Time) Timestamp {
	return Timestamp{Time: t.UTC()}
}

// ParseBound parses a range bound in one of the two accepted formats:
// YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss.sssZ. dateOnly reports which one matched.
//
// Both the shape and the calendar value are checked, so "2024-13-01" fails
// just like "01/02/2024".
func ParseBound(value string) (t time.Time, dateOnly bool, err error) {
	switch {
	case datePattern.MatchString(value):
		t, err = time.Parse(DateLayout, value)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w: %q: %w", ErrInvalidTimestamp, value, err)
		}
		return t.UTC(), true, nil
	case timestampPattern.MatchString(value):
		t, err = time.Parse(TimestampLayout, value)
		if err != nil {
			return time.Time{}, false, fmt.Errorf("%w: %q: %w", ErrInvalidTimestamp, value, err)
		}
		return t.UTC(), false, nil
	default:
		return time.Time{}, false, fmt.Errorf("%w: %q does not match YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss.sssZ", ErrInvalidTimestamp, value)
	}
}

// ParseTimestamp parses a request body timestamp. Any RFC 3339 value is
// accepted as well as a date-only value, which means midnight UTC.
func ParseTimestamp(value string) (Timestamp, error) {
	if datePattern.MatchString(value) {
		t, err := time.Parse(DateLayout, value)
		if err != nil {
			return Timestamp{}, fmt.Errorf("%w: %q: %w", ErrInvalidTimestamp, value, err)
		}
		return NewTimestamp(t), nil
	}

	t, err := time.Parse(time.RFC3339Nano, value)
	if err != nil {
		return Timestamp{}, fmt.Errorf("%w: %q: %w", ErrInvalidTimestamp, value, err)
	}
	return NewTimestamp(t), nil
}

// MustParseTimestamp is like [ParseTimestamp] but panics on error.
// Intended for tests and constants.
func MustParseTimestamp(value string) Timestamp {
	ts, err := ParseTimestamp(value)
	if err != nil {
		panic(err)
	}
	return ts
}

// String returns the timestamp in [TimestampLayout].
func (t Timestamp) String() string {
	return t.UTC().Format(TimestampLayout)
}

// Ptr returns a pointer to a copy of t.
func (t Timestamp) Ptr() *Timestamp {
	return &t
}

// MarshalJSON implements [json.Marshaler].
func (t Timestamp) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON implements [json.Unmarshaler]. A JSON null leaves t untouched.
func (t *Timestamp) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		return nil
	}

	var raw string
	if err := json.Unmarshal(b, &raw); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidTimestamp, err)
	}

	parsed, err := ParseTimestamp(raw)
	if err != nil {
		return err
	}
	*t = parsed
	return nil
}

// Value implements [driver.Valuer].
func (t Timestamp) Value() (driver.Value, error) {
	return t.UTC(), nil
}

// Scan implements [sql.Scanner]. PostgreSQL (pgx) returns time.Time, SQLite
// returns time.Time for TIMESTAMP columns and falls back to text otherwise.
func (t *Timestamp) Scan(src any) error {
	switch v := src.(type) {
	case time.Time:
		*t = NewTimestamp(v)
		return nil
	case string:
		return t.scanText(v)
	case []byte:
		return t.scanText(string(v))
	case nil:
		*t = Timestamp{}
		return nil
	default:
		return fmt.Errorf("%w: cannot scan %T", ErrInvalidTimestamp, src)
	}
}

// sqliteLayouts are the text layouts go-sqlite3 writes for time values.
var sqliteLayouts = []string{
	"2006-01-02 15:04:05.999999999-07:00",
	"2006-01-02T15:04:05.999999999-07:00",
	"2006-01-02 15:04:05.999999999",
	"2006-01-02T15:04:05.999999999",
	time.RFC3339Nano,
	DateLayout,
}

func (t *Timestamp) scanText(value string) error {
	for _, layout := range sqliteLayouts {
		if parsed, err := time.Parse(layout, value); err == nil {
			*t = NewTimestamp(parsed)
			return nil
		}
	}
	return fmt.Errorf("%w: cannot scan %q", ErrInvalidTimestamp, value)
}
