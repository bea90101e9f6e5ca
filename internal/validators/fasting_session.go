package validators

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fastm8/models"
)

// Field name constants used to specify which fields should be validated.
// These constants are passed to Validate to restrict validation to a
// subset of fields (field-level scoping).
const (
	// FieldUserID targets the owner identifier of a request.
	FieldUserID = "user_id"

	// FieldUsername, FieldEmail and FieldPassword target account payloads.
	FieldUsername = "username"
	FieldEmail    = "email"
	FieldPassword = "password"

	// FieldStartTime targets the start of a new session.
	FieldStartTime = "start_time"

	// FieldCompletion targets the isComplete flag together with the
	// endTime and duration it requires or forbids.
	FieldCompletion = "completion"

	// FieldInterval targets the ordering of start and end and the sign
	// of the duration.
	FieldInterval = "interval"

	// FieldEdits targets the positional pairing and the content of a
	// batch edit.
	FieldEdits = "edits"

	// FieldBounds targets the optional bounds of a ranged list.
	FieldBounds = "bounds"
)

// FastingSessionValidator implements the Validator interface for the
// account and fasting-session request models: User, NewSessionRequest,
// EditRequest and SessionRange.
//
// It accepts both values and pointers for every model type and allows
// optional field-level scoping via variadic field name arguments.
type FastingSessionValidator struct {
}

// NewFastingSessionValidator constructs a new FastingSessionValidator
// and returns it as the Validator interface.
func NewFastingSessionValidator() Validator {
	return &FastingSessionValidator{}
}

// Validate dispatches validation to the appropriate type-specific method.
// Returns ErrUnsupportedType for any other type.
func (v *FastingSessionValidator) Validate(ctx context.Context, obj any, fields ...string) error {
	switch value := obj.(type) {
	case models.User:
		return v.validateUser(ctx, value, fields...)
	case *models.User:
		return v.validateUser(ctx, *value, fields...)

	case models.NewSessionRequest:
		return v.validateNewSession(ctx, value, fields...)
	case *models.NewSessionRequest:
		return v.validateNewSession(ctx, *value, fields...)

	case models.EditRequest:
		return v.validateEditRequest(ctx, value, fields...)
	case *models.EditRequest:
		return v.validateEditRequest(ctx, *value, fields...)

	case models.SessionRange:
		return v.validateRange(ctx, value, fields...)
	case *models.SessionRange:
		return v.validateRange(ctx, *value, fields...)

	default:
		return ErrUnsupportedType
	}
}

func (v *FastingSessionValidator) validateUser(_ context.Context, user models.User, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUsername, FieldEmail, FieldPassword}
	}

	for _, f := range fields {
		switch f {
		case FieldUsername:
			if user.Username == "" {
				return ErrMissingUsername
			}
		case FieldEmail:
			if user.Email == "" {
				return ErrMissingEmail
			}
		case FieldPassword:
			if user.Password == "" {
				return ErrMissingPassword
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FastingSessionValidator) validateNewSession(_ context.Context, req models.NewSessionRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldStartTime, FieldCompletion, FieldInterval}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID == nil || *req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldStartTime:
			if req.StartTime == nil || req.StartTime.IsZero() {
				return ErrMissingStartTime
			}
		case FieldCompletion:
			if req.IsComplete == nil {
				return ErrMissingIsComplete
			}
			if *req.IsComplete {
				if req.EndTime == nil {
					return ErrMissingEndTime
				}
				if req.Duration == nil {
					return ErrMissingDuration
				}
			} else if req.EndTime != nil || req.Duration != nil {
				return ErrOpenSessionClosed
			}
		case FieldInterval:
			if req.StartTime != nil && req.EndTime != nil && req.EndTime.Before(req.StartTime.Time) {
				return ErrEndBeforeStart
			}
			if req.Duration != nil && *req.Duration < 0 {
				return ErrNegativeDuration
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

func (v *FastingSessionValidator) validateEditRequest(ctx context.Context, req models.EditRequest, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldEdits}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if req.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldEdits:
			if len(req.LogIDs) != len(req.Edits) {
				return fmt.Errorf("%w: got %d logIds and %d edits", ErrIDsEditsMismatch, len(req.LogIDs), len(req.Edits))
			}
			for i, patch := range req.Edits {
				if err := v.validatePatch(ctx, patch); err != nil {
					return fmt.Errorf("edit at index %d: %w", i, err)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}

// validatePatch checks what can be checked without the stored record.
// The merged result is checked by the ledger inside the edit transaction.
func (v *FastingSessionValidator) validatePatch(_ context.Context, patch models.SessionPatch) error {
	if patch.StartTime.Set && patch.StartTime.Value.IsZero() {
		return ErrNullStartTime
	}
	if patch.IsComplete.Set && patch.IsComplete.Null {
		return ErrNullIsComplete
	}
	if patch.StartTime.Set && patch.EndTime.Set && patch.EndTime.Value != nil &&
		patch.EndTime.Value.Before(patch.StartTime.Value.Time) {
		return ErrEndBeforeStart
	}
	if patch.Duration.Set && patch.Duration.Value != nil && *patch.Duration.Value < 0 {
		return ErrNegativeDuration
	}
	return nil
}

func (v *FastingSessionValidator) validateRange(_ context.Context, rng models.SessionRange, fields ...string) error {
	if len(fields) == 0 {
		fields = []string{FieldUserID, FieldBounds}
	}

	for _, f := range fields {
		switch f {
		case FieldUserID:
			if rng.UserID <= 0 {
				return ErrInvalidUserID
			}
		case FieldBounds:
			if rng.StartTime != "" {
				if _, _, err := models.ParseBound(rng.StartTime); err != nil {
					return fmt.Errorf("%w: %q", ErrInvalidStartBound, rng.StartTime)
				}
			}
			if rng.EndTime != "" {
				if _, _, err := models.ParseBound(rng.EndTime); err != nil {
					return fmt.Errorf("%w: %q", ErrInvalidEndBound, rng.EndTime)
				}
			}
		default:
			return ErrUnknownField
		}
	}

	return nil
}
