package store

import (
	"context"
	"fmt"

	"github.com/MKhiriev/eye-test-server/internal/logger"
	"github.com/MKhiriev/eye-test-server/models"
)

// resultRepository is the PostgreSQL-backed implementation of
// [ResultRepository]. It executes all test-result operations against the
// "test_results" table using the embedded [*DB] connection.
type resultRepository struct {
	*DB
	logger *logger.Logger
}

// NewResultRepository constructs a [ResultRepository] backed by the provided
// database connection and logger.
func NewResultRepository(db *DB, logger *logger.Logger) ResultRepository {
	logger.Debug().Msg("creating result repository")
	return &resultRepository{
		DB:     db,
		logger: logger,
	}
}

// SaveResult persists a new test result scoped to result.UserID and returns
// it with the server-assigned ResultID and TestDate populated.
//
// The referenced user must exist; a foreign-key violation or any other
// driver-level failure is wrapped and logged with its retryability
// classification.
func (p *resultRepository) SaveResult(ctx context.Context, result models.TestResult) (models.TestResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildInsertResultQuery(result)
	if err != nil {
		log.Err(err).
			Str("func", "resultRepository.SaveResult").
			Int64("user_id", result.UserID).
			Msg("failed to build insert query")
		return models.TestResult{}, err
	}

	row := p.DB.QueryRowContext(ctx, query, args...)
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "resultRepository.SaveResult").
			Int64("user_id", result.UserID).
			Bool("retryable", p.errorClassifier.Classify(err) == Retryable).
			Msg("failed to execute insert for test result")
		return models.TestResult{}, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}

	if err := row.Scan(&result.ResultID, &result.TestDate); err != nil {
		log.Err(err).
			Str("func", "resultRepository.SaveResult").
			Int64("user_id", result.UserID).
			Bool("retryable", p.errorClassifier.Classify(err) == Retryable).
			Msg("failed to scan inserted test result")
		return models.TestResult{}, fmt.Errorf("%w: %w", ErrScanningRow, err)
	}

	return result, nil
}

// GetResultsByUserID retrieves every test result belonging to userID,
// ordered by test_date descending. A user with no results yields an empty
// slice, not an error.
func (p *resultRepository) GetResultsByUserID(ctx context.Context, userID int64) ([]models.TestResult, error) {
	log := logger.FromContext(ctx)

	query, args, err := buildSelectResultsQuery(userID)
	if err != nil {
		log.Err(err).
			Str("func", "resultRepository.GetResultsByUserID").
			Int64("user_id", userID).
			Msg("failed to build select query")
		return nil, err
	}

	rows, err := p.DB.QueryContext(ctx, query, args...)
	if err != nil {
		log.Err(err).
			Str("func", "resultRepository.GetResultsByUserID").
			Int64("user_id", userID).
			Bool("retryable", p.errorClassifier.Classify(err) == Retryable).
			Msg("failed to execute query for test results")
		return nil, fmt.Errorf("%w: %w", ErrExecutingQuery, err)
	}
	defer rows.Close()

	results := make([]models.TestResult, 0, 10)

	for rows.Next() {
		var item models.TestResult

		scanErr := rows.Scan(
			&item.ResultID,
			&item.UserID,
			&item.LeftEyeAcuity,
			&item.RightEyeAcuity,
			&item.LeftEyePower,
			&item.RightEyePower,
			&item.LeftEyeCondition,
			&item.RightEyeCondition,
			&item.TestDate,
		)
		if scanErr != nil {
			log.Err(scanErr).
				Str("func", "resultRepository.GetResultsByUserID").
				Int64("user_id", userID).
				Msg("failed to scan test result row")
			return nil, fmt.Errorf("%w: %w", ErrScanningRow, scanErr)
		}

		results = append(results, item)
	}

	if err := rows.Err(); err != nil {
		log.Err(err).
			Str("func", "resultRepository.GetResultsByUserID").
			Int64("user_id", userID).
			Msg("row iteration ended with error")
		return nil, fmt.Errorf("%w: %w", ErrScanningRows, err)
	}

	return results, nil
}
