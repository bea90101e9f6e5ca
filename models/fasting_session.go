// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package models

import (
	"errors"
	"fmt"
	"time"
)

// ErrInvalidSession is the root of every error produced by
// [FastingSession.CheckState].
var ErrInvalidSession = errors.New("invalid fasting session")

// Sentinel errors describing a fasting session that breaks the completion
// invariant or the interval ordering.
var (
	ErrCompleteWithoutEndTime  = fmt.Errorf("%w: a complete session requires endTime", ErrInvalidSession)
	ErrCompleteWithoutDuration = fmt.Errorf("%w: a complete session requires duration", ErrInvalidSession)
	ErrEndBeforeStart          = fmt.Errorf("%w: endTime must not precede startTime", ErrInvalidSession)
	ErrNegativeDuration        = fmt.Errorf("%w: duration must not be negative", ErrInvalidSession)
)

// FastingSession is one fast: a time interval owned by a user.
//
// A session is open while IsComplete is false; EndTime and Duration may be
// nil then. A complete session always carries both.
type FastingSession struct {
	// ID is the server-assigned identifier.
	ID int64 `json:"id"`

	// UserID is the owner. Always taken from the verified token identity.
	UserID int64 `json:"userId"`

	// StartTime is when the fast began. Required.
	StartTime Timestamp `json:"startTime"`

	// EndTime is when the fast ended; nil while the session is open.
	EndTime *Timestamp `json:"endTime"`

	// Duration is the length of the fast in seconds; nil while open.
	Duration *int64 `json:"duration"`

	// IsComplete is true iff the session is closed.
	IsComplete bool `json:"isComplete"`

	// CreatedAt is assigned by the server on insert.
	CreatedAt Timestamp `json:"createdAt"`
}

// TableName returns the name of the database table
// associated with the FastingSession model.
func (s FastingSession) TableName() string {
	return "fast_logs"
}

// CheckState verifies the completion invariant and the interval ordering.
func (s FastingSession) CheckState() error {
	if s.IsComplete {
		if s.EndTime == nil {
			return ErrCompleteWithoutEndTime
		}
		if s.Duration == nil {
			return ErrCompleteWithoutDuration
		}
	}
	if s.EndTime != nil && s.EndTime.Before(s.StartTime.Time) {
		return ErrEndBeforeStart
	}
	if s.Duration != nil && *s.Duration < 0 {
		return ErrNegativeDuration
	}
	return nil
}

// Apply returns a copy of s with every present field of patch applied.
//
// When the result is complete and has an end time, a duration that was not
// supplied by the patch is derived from the interval in whole seconds if it
// is missing or the interval was moved.
func (s FastingSession) Apply(patch SessionPatch) FastingSession {
	intervalMoved := patch.StartTime.Set || patch.EndTime.Set

	if patch.StartTime.Set {
		s.StartTime = patch.StartTime.Value
	}
	if patch.EndTime.Set {
		s.EndTime = patch.EndTime.Value
	}
	if patch.Duration.Set {
		s.Duration = patch.Duration.Value
	}
	if patch.IsComplete.Set {
		s.IsComplete = patch.IsComplete.Value
	}

	if s.IsComplete && s.EndTime != nil && !patch.Duration.Set && (s.Duration == nil || intervalMoved) {
		seconds := int64(s.EndTime.Sub(s.StartTime.Time) / time.Second)
		s.Duration = &seconds
	}

	return s
}

// SessionPatch is a partial update of one fasting session. Only fields with
// Set == true are written.
type SessionPatch struct {
	StartTime  Optional[Timestamp]  `json:"startTime,omitzero"`
	EndTime    Optional[*Timestamp] `json:"endTime,omitzero"`
	Duration   Optional[*int64]     `json:"duration,omitzero"`
	IsComplete Optional[bool]       `json:"isComplete,omitzero"`
}

// Empty reports whether the patch carries no field at all.
func (p SessionPatch) Empty() bool {
	return !p.StartTime.Set && !p.EndTime.Set && !p.Duration.Set && !p.IsComplete.Set
}

// SessionFilter selects the sessions of one user by start time.
type SessionFilter struct {
	UserID int64

	// From is an inclusive lower bound on start time.
	From *time.Time

	// To is an upper bound on start time, inclusive unless ToExclusive.
	To          *time.Time
	ToExclusive bool

	// OnlyOpen restricts the result to sessions with IsComplete == false.
	OnlyOpen bool
}
