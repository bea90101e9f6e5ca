package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/fastm8/internal/logger"
	"github.com/MKhiriev/fastm8/internal/store"
	"github.com/MKhiriev/fastm8/internal/validators"
	"github.com/MKhiriev/fastm8/models"
)

// fastingService is the core FastingService. It assumes its input has
// already been validated and scoped to the verified user, which is what
// the validation wrapper does.
type fastingService struct {
	sessionRepository store.FastingSessionRepository
	logger            *logger.Logger
}

func NewFastingService(sessionRepository store.FastingSessionRepository, logger *logger.Logger) FastingService {
	return &fastingService{
		sessionRepository: sessionRepository,
		logger:            logger,
	}
}

func (s *fastingService) CreateSession(ctx context.Context, req models.NewSessionRequest) (models.FastingSession, error) {
	session, err := s.sessionRepository.CreateSession(ctx, req.Session())
	if err != nil {
		return models.FastingSession{}, fmt.Errorf("error creating fasting session: %w", err)
	}

	logger.FromContext(ctx).Info().
		Int64("user_id", session.UserID).
		Int64("id", session.ID).
		Bool("is_complete", session.IsComplete).
		Msg("fasting session created")

	return session, nil
}

func (s *fastingService) ListOpenSessions(ctx context.Context, userID int64) ([]models.FastingSession, error) {
	sessions, err := s.sessionRepository.ListSessions(ctx, models.SessionFilter{UserID: userID, OnlyOpen: true})
	if err != nil {
		return nil, fmt.Errorf("error listing open fasting sessions: %w", err)
	}
	return sessions, nil
}

func (s *fastingService) ListSessions(ctx context.Context, rng models.SessionRange) ([]models.FastingSession, error) {
	filter, err := rangeFilter(rng)
	if err != nil {
		return nil, err
	}

	sessions, err := s.sessionRepository.ListSessions(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("error listing fasting sessions: %w", err)
	}
	return sessions, nil
}

func (s *fastingService) EditSessions(ctx context.Context, req models.EditRequest) (int64, error) {
	updated, err := s.sessionRepository.EditSessions(ctx, req.UserID, req.LogIDs, req.Edits)
	if err != nil {
		return 0, fmt.Errorf("error editing fasting sessions: %w", err)
	}
	return updated, nil
}

func (s *fastingService) DeleteOpenSessions(ctx context.Context, userID int64) (int64, error) {
	deleted, err := s.sessionRepository.DeleteOpenSessions(ctx, userID)
	if err != nil {
		return 0, fmt.Errorf("error deleting open fasting sessions: %w", err)
	}
	return deleted, nil
}

// rangeFilter turns the raw bounds of rng into a filter. A date-only lower
// bound starts at midnight UTC; a date-only upper bound covers its whole day.
//
// The validation wrapper checks the same bounds before this runs. The
// errors here only surface when the core service is used unwrapped.
func rangeFilter(rng models.SessionRange) (models.SessionFilter, error) {
	filter := models.SessionFilter{UserID: rng.UserID}

	if rng.StartTime != "" {
		from, _, err := models.ParseBound(rng.StartTime)
		if err != nil {
			return models.SessionFilter{}, fmt.Errorf("%w: %w", validators.ErrInvalidStartBound, err)
		}
		filter.From = &from
	}

	if rng.EndTime != "" {
		to, dateOnly, err := models.ParseBound(rng.EndTime)
		if err != nil {
			return models.SessionFilter{}, fmt.Errorf("%w: %w", validators.ErrInvalidEndBound, err)
		}
		if dateOnly {
			to = to.Add(24 * time.Hour)
			filter.ToExclusive = true
		}
		filter.To = &to
	}

	return filter, nil
}
