package service

import (
	"context"

	"github.com/MKhiriev/eye-test-server/models"
)

// AuthService orchestrates registration, credential verification, and the
// JWT session-token lifecycle.
type AuthService interface {
	RegisterUser(ctx context.Context, user models.User, password string) (models.User, error)
	Login(ctx context.Context, email, password string) (models.User, error)
	CreateToken(ctx context.Context, user models.User) (models.Token, error)
	ParseToken(ctx context.Context, tokenString string) (models.Token, error)
}

// ResultService stores and retrieves vision test results on behalf of an
// already-authenticated user. Callers must pass the user id recovered from
// a verified token, never a client-supplied one.
type ResultService interface {
	SaveResult(ctx context.Context, result models.TestResult) (models.TestResult, error)
	GetUserResults(ctx context.Context, userID int64) ([]models.TestResult, error)
}
