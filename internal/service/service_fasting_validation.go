package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/fastm8/internal/logger"
	"github.com/MKhiriev/fastm8/internal/utils"
	"github.com/MKhiriev/fastm8/internal/validators"
	"github.com/MKhiriev/fastm8/models"
)

// fastingValidationService decorates a FastingService. It binds every call
// to the user verified by the authorization guard and validates the input
// before the inner service sees it.
type fastingValidationService struct {
	inner     FastingService
	validator validators.Validator
}

func NewFastingValidationService() FastingServiceWrapper {
	return &fastingValidationService{
		validator: validators.NewFastingSessionValidator(),
	}
}

func (v *fastingValidationService) CreateSession(ctx context.Context, req models.NewSessionRequest) (models.FastingSession, error) {
	var claimed int64
	if req.UserID != nil {
		claimed = *req.UserID
	}

	userID, err := v.identity(ctx, claimed)
	if err != nil {
		return models.FastingSession{}, err
	}
	req.UserID = &userID

	if err = v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("invalid fasting session")
		return models.FastingSession{}, err
	}

	return v.inner.CreateSession(ctx, req)
}

func (v *fastingValidationService) ListOpenSessions(ctx context.Context, userID int64) ([]models.FastingSession, error) {
	userID, err := v.identity(ctx, userID)
	if err != nil {
		return nil, err
	}

	return v.inner.ListOpenSessions(ctx, userID)
}

func (v *fastingValidationService) ListSessions(ctx context.Context, rng models.SessionRange) ([]models.FastingSession, error) {
	userID, err := v.identity(ctx, rng.UserID)
	if err != nil {
		return nil, err
	}
	rng.UserID = userID

	if err = v.validator.Validate(ctx, rng); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Str("start", rng.StartTime).Str("end", rng.EndTime).Msg("invalid session range")
		return nil, err
	}

	return v.inner.ListSessions(ctx, rng)
}

func (v *fastingValidationService) EditSessions(ctx context.Context, req models.EditRequest) (int64, error) {
	userID, err := v.identity(ctx, req.UserID)
	if err != nil {
		return 0, err
	}
	req.UserID = userID

	if err = v.validator.Validate(ctx, req); err != nil {
		logger.FromContext(ctx).Warn().Err(err).Int64("user_id", userID).Msg("invalid edit request")
		return 0, err
	}

	return v.inner.EditSessions(ctx, req)
}

func (v *fastingValidationService) DeleteOpenSessions(ctx context.Context, userID int64) (int64, error) {
	userID, err := v.identity(ctx, userID)
	if err != nil {
		return 0, err
	}

	return v.inner.DeleteOpenSessions(ctx, userID)
}

func (v *fastingValidationService) Wrap(wrapper FastingService) FastingService {
	v.inner = wrapper
	return v
}

// identity returns the verified user id from ctx. A non-zero claimed id
// must match it.
func (v *fastingValidationService) identity(ctx context.Context, claimed int64) (int64, error) {
	userID, ok := utils.GetUserIDFromContext(ctx)
	if !ok || userID <= 0 {
		return 0, ErrMissingIdentityClaim
	}

	if claimed != 0 && claimed != userID {
		logger.FromContext(ctx).Warn().
			Int64("user_id", userID).
			Int64("claimed_user_id", claimed).
			Msg("request targets another user's data")
		return 0, fmt.Errorf("%w: user %d", ErrUnauthorizedAccessToDifferentUserData, claimed)
	}

	return userID, nil
}
