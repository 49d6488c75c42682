package store

import (
	"context"

	"github.com/MKhiriev/eye-test-server/models"
)

// UserRepository is the persistence contract for user accounts.
// Email uniqueness is enforced by the database, not by callers: concurrent
// registrations with the same email race at the uniqueness constraint and
// exactly one insert succeeds.
type UserRepository interface {
	CreateUser(ctx context.Context, user models.User) (models.User, error)
	FindUserByEmail(ctx context.Context, email string) (models.User, error)
}

// ResultRepository is the persistence contract for vision test results.
// Results are write-once; the only read path is "all results of one user,
// newest first".
type ResultRepository interface {
	SaveResult(ctx context.Context, result models.TestResult) (models.TestResult, error)
	GetResultsByUserID(ctx context.Context, userID int64) ([]models.TestResult, error)
}
