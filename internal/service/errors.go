package service

import (
	"errors"
	"fmt"
)

var (
	ErrInvalidDataProvided = errors.New("invalid data provided")
	ErrInvalidCredentials  = errors.New("invalid email or password")

	ErrTokenIsExpiredOrInvalid = errors.New("token is expired or invalid")
	ErrTokenIsExpired          = fmt.Errorf("%w: token is expired", ErrTokenIsExpiredOrInvalid)
	ErrTokenCreationFailed     = errors.New("token creation failed")
	ErrMissingIdentityClaim    = errors.New("token carries no user identity")

	ErrUnauthorizedAccessToDifferentUserData = errors.New("unauthorized access to different user data")
)
