package models

// RegisterRequest is the body of POST /api/auth/register.
// All three fields are required.
type RegisterRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
	Name     string `json:"name"`
}

// LoginRequest is the body of POST /api/auth/login.
// Both fields are required.
type LoginRequest struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

// SubmitResultRequest is the body of POST /api/results.
// Acuity fields are required; the rest are optional.
// The owning user is never part of the body — it comes from the
// verified bearer token.
type SubmitResultRequest struct {
	LeftEyeAcuity  string `json:"left_eye_acuity"`
	RightEyeAcuity string `json:"right_eye_acuity"`

	LeftEyePower  *float64 `json:"left_eye_power"`
	RightEyePower *float64 `json:"right_eye_power"`

	LeftEyeCondition  *string `json:"left_eye_condition"`
	RightEyeCondition *string `json:"right_eye_condition"`
}
