package validators

import (
	"errors"
	"fmt"
)

// ErrValidation is the root of every error returned for invalid client
// input. Callers map it to a 400 response with errors.Is.
var ErrValidation = errors.New("validation error")

var (
	ErrUnsupportedType = errors.New("unsupported type for validation")
	ErrUnknownField    = errors.New("unknown field for validation")
)

var (
	ErrInvalidUserID = fmt.Errorf("%w: invalid user ID", ErrValidation)

	ErrMissingUsername = fmt.Errorf("%w: username is required", ErrValidation)
	ErrMissingEmail    = fmt.Errorf("%w: email is required", ErrValidation)
	ErrMissingPassword = fmt.Errorf("%w: password is required", ErrValidation)

	ErrMissingStartTime  = fmt.Errorf("%w: startTime is required", ErrValidation)
	ErrMissingIsComplete = fmt.Errorf("%w: isComplete is required", ErrValidation)
	ErrMissingEndTime    = fmt.Errorf("%w: endTime is required when isComplete is true", ErrValidation)
	ErrMissingDuration   = fmt.Errorf("%w: duration is required when isComplete is true", ErrValidation)
	ErrOpenSessionClosed = fmt.Errorf("%w: endTime and duration must be omitted when isComplete is false", ErrValidation)
	ErrEndBeforeStart    = fmt.Errorf("%w: endTime must not precede startTime", ErrValidation)
	ErrNegativeDuration  = fmt.Errorf("%w: duration must not be negative", ErrValidation)

	ErrNullStartTime     = fmt.Errorf("%w: startTime cannot be null", ErrValidation)
	ErrNullIsComplete    = fmt.Errorf("%w: isComplete cannot be null", ErrValidation)
	ErrIDsEditsMismatch  = fmt.Errorf("%w: logIds and edits must have the same length", ErrValidation)
	ErrInvalidStartBound = fmt.Errorf("%w: invalid startTime, expected YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss.sssZ", ErrValidation)
	ErrInvalidEndBound   = fmt.Errorf("%w: invalid endTime, expected YYYY-MM-DD or YYYY-MM-DDTHH:mm:ss.sssZ", ErrValidation)
)
