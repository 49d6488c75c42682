package models

// MessageResponse is a generic success acknowledgment body.
type MessageResponse struct {
	Message string `json:"message"`
}

// ErrorResponse is the body of every non-2xx response.
// It carries a client-safe description only; internal error detail
// (SQL text, driver errors) stays in the server logs.
type ErrorResponse struct {
	Error string `json:"error"`
}

// LoginResponse is the body of a successful POST /api/auth/login.
// User marshals to its public view (id, email, name, role); the
// password hash is excluded by the model's JSON tags.
type LoginResponse struct {
	Token string `json:"token"`
	User  User   `json:"user"`
}

// ResultCreatedResponse is the body of a successful POST /api/results.
type ResultCreatedResponse struct {
	Message  string `json:"message"`
	ResultID int64  `json:"resultId"`
}
