package models

import "time"

// TestResult represents a single stored vision test, owned by one user.
// Results are immutable once created; the only query path is "all results
// of a user, newest first".
//
// Acuity fields are required free-form measurements (e.g. "20/20").
// Power and condition fields are optional and stay nil/NULL when the test
// did not measure them.
type TestResult struct {
	// ResultID is the server-assigned unique identifier of the record.
	ResultID int64 `json:"id"`

	// UserID references the owning user. Always taken from the verified
	// session token, never from the request body.
	UserID int64 `json:"user_id"`

	LeftEyeAcuity  string `json:"left_eye_acuity"`
	RightEyeAcuity string `json:"right_eye_acuity"`

	LeftEyePower  *float64 `json:"left_eye_power"`
	RightEyePower *float64 `json:"right_eye_power"`

	LeftEyeCondition  *string `json:"left_eye_condition"`
	RightEyeCondition *string `json:"right_eye_condition"`

	// TestDate is assigned by the database at insert time.
	TestDate time.Time `json:"test_date"`
}

// TableName returns the name of the database table
// associated with the TestResult model.
func (r TestResult) TableName() string {
	return "test_results"
}
