package service

import (
	"context"
	"fmt"

	"github.com/MKhiriev/eye-test-server/internal/logger"
	"github.com/MKhiriev/eye-test-server/internal/store"
	"github.com/MKhiriev/eye-test-server/models"
)

// resultService is the concrete implementation of ResultService.
type resultService struct {
	resultRepository store.ResultRepository
	logger           *logger.Logger
}

// NewResultService constructs a ResultService wired to the given
// ResultRepository.
func NewResultService(resultRepository store.ResultRepository, logger *logger.Logger) ResultService {
	return &resultService{
		resultRepository: resultRepository,
		logger:           logger,
	}
}

// SaveResult persists one vision test result.
//
// Both acuity measurements are required; power and condition fields are
// optional. result.UserID must already be the authenticated user's id — the
// transport layer never forwards a client-supplied owner.
//
// Returns the stored result (with server-assigned ResultID and TestDate) or:
//   - ErrMissingAcuity if either required measurement is empty.
//   - ErrInvalidDataProvided if no user id is set.
//   - A wrapped storage error if the insert fails.
func (s *resultService) SaveResult(ctx context.Context, result models.TestResult) (models.TestResult, error) {
	log := logger.FromContext(ctx)

	if result.UserID == 0 {
		log.Error().Msg("no user id provided for test result")
		return models.TestResult{}, ErrInvalidDataProvided
	}
	if result.LeftEyeAcuity == "" || result.RightEyeAcuity == "" {
		log.Error().Int64("user_id", result.UserID).Msg("missing required acuity measurements")
		return models.TestResult{}, ErrMissingAcuity
	}

	savedResult, err := s.resultRepository.SaveResult(ctx, result)
	if err != nil {
		log.Err(err).Int64("user_id", result.UserID).Msg("saving test result ended with error")
		return models.TestResult{}, fmt.Errorf("saving test result ended with error: %w", err)
	}

	return savedResult, nil
}

// GetUserResults returns every stored result of the given user, newest
// first. A user with no results yields an empty slice.
func (s *resultService) GetUserResults(ctx context.Context, userID int64) ([]models.TestResult, error) {
	log := logger.FromContext(ctx)

	if userID == 0 {
		log.Error().Msg("no user id provided for result listing")
		return nil, ErrInvalidDataProvided
	}

	results, err := s.resultRepository.GetResultsByUserID(ctx, userID)
	if err != nil {
		log.Err(err).Int64("user_id", userID).Msg("listing test results ended with error")
		return nil, fmt.Errorf("listing test results ended with error: %w", err)
	}

	return results, nil
}
