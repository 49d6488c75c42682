package store

import (
	"fmt"

	sq "github.com/Masterminds/squirrel"
	"github.com/MKhiriev/eye-test-server/models"
)

const (
	createUser = `INSERT INTO users (email, password_hash, name, role)
    VALUES ($1, $2, $3, $4)
    RETURNING user_id, email, password_hash, name, role, created_at;`

	findUserByEmail = `SELECT user_id, email, password_hash, name, role, created_at
    FROM users
    WHERE email = $1;`
)

// resultColumns is the canonical column order of the test_results table,
// shared by the insert and select builders and their Scan calls.
var resultColumns = []string{
	"result_id",
	"user_id",
	"left_eye_acuity",
	"right_eye_acuity",
	"left_eye_power",
	"right_eye_power",
	"left_eye_condition",
	"right_eye_condition",
	"test_date",
}

// buildInsertResultQuery builds the INSERT for a new test result.
// result_id and test_date are server-assigned and returned via RETURNING.
func buildInsertResultQuery(result models.TestResult) (string, []any, error) {
	query, args, err := sq.Insert(result.TableName()).
		Columns(
			"user_id",
			"left_eye_acuity",
			"right_eye_acuity",
			"left_eye_power",
			"right_eye_power",
			"left_eye_condition",
			"right_eye_condition",
		).
		Values(
			result.UserID,
			result.LeftEyeAcuity,
			result.RightEyeAcuity,
			result.LeftEyePower,
			result.RightEyePower,
			result.LeftEyeCondition,
			result.RightEyeCondition,
		).
		Suffix("RETURNING result_id, test_date").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}

// buildSelectResultsQuery builds the SELECT returning all results of one
// user ordered by test_date descending (newest first).
func buildSelectResultsQuery(userID int64) (string, []any, error) {
	query, args, err := sq.Select(resultColumns...).
		From(models.TestResult{}.TableName()).
		Where(sq.Eq{"user_id": userID}).
		OrderBy("test_date DESC").
		PlaceholderFormat(sq.Dollar).
		ToSql()
	if err != nil {
		return "", nil, fmt.Errorf("%w: %w", ErrBuildingSQLQuery, err)
	}

	return query, args, nil
}
