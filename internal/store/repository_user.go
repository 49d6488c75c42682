package store

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/MKhiriev/eye-test-server/internal/logger"
	"github.com/MKhiriev/eye-test-server/models"
	"github.com/jackc/pgerrcode"
)

// userRepository is the PostgreSQL-backed implementation of [UserRepository].
// It handles user account creation and lookup against the "users" table.
//
// All methods obtain a context-scoped logger via [logger.FromContext] for
// structured, request-level tracing of database interactions.
type userRepository struct {
	logger *logger.Logger
	db     *DB
}

// NewUserRepository constructs a [UserRepository] backed by the provided
// database connection and logger.
func NewUserRepository(db *DB, logger *logger.Logger) UserRepository {
	logger.Debug().Msg("creating user repository")
	return &userRepository{
		db:     db,
		logger: logger,
	}
}

// CreateUser persists a new user record and returns the fully populated
// [models.User] with server-assigned fields (UserID, CreatedAt).
//
// The INSERT uses the [createUser] prepared query which returns all columns
// via a RETURNING clause, so the caller receives the canonical database
// representation of the newly created account.
//
// Error handling:
//   - PostgreSQL unique_violation (23505) → [ErrEmailAlreadyExists].
//   - Any other driver-level error → wrapped as "unexpected DB error",
//     logged with its retryability classification.
//   - Scan failure → returned directly.
func (r *userRepository) CreateUser(ctx context.Context, user models.User) (models.User, error) {
	log := logger.FromContext(ctx)

	row := r.db.QueryRowContext(ctx, createUser, user.Email, user.PasswordHash, user.Name, user.Role)

	// create user in db
	if err := row.Err(); err != nil {
		switch postgresError(err) {
		case pgerrcode.UniqueViolation:
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("email already taken")
			return models.User{}, ErrEmailAlreadyExists
		default:
			log.Err(err).
				Str("func", "*userRepository.CreateUser").
				Bool("retryable", r.db.errorClassifier.Classify(err) == Retryable).
				Msg("error: unexpected DB error")
			return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
		}
	}

	// scan saved user from db
	if err := row.Scan(&user.UserID, &user.Email, &user.PasswordHash, &user.Name, &user.Role, &user.CreatedAt); err != nil {
		if postgresError(err) == pgerrcode.UniqueViolation {
			log.Err(err).Str("func", "*userRepository.CreateUser").Msg("email already taken")
			return models.User{}, ErrEmailAlreadyExists
		}
		log.Err(err).Str("func", "*userRepository.CreateUser").Msg("error: scanning error")
		return models.User{}, err
	}

	return user, nil
}

// FindUserByEmail retrieves the user record whose Email exactly matches the
// given value.
//
// Error handling:
//   - No matching row ([sql.ErrNoRows]) → [ErrUserNotFound].
//   - Any other driver-level error → wrapped as "unexpected DB error",
//     logged with its retryability classification.
func (r *userRepository) FindUserByEmail(ctx context.Context, email string) (models.User, error) {
	log := logger.FromContext(ctx)

	var foundUser models.User
	row := r.db.QueryRowContext(ctx, findUserByEmail, email)

	// find user by email
	if err := row.Err(); err != nil {
		log.Err(err).
			Str("func", "*userRepository.FindUserByEmail").
			Bool("retryable", r.db.errorClassifier.Classify(err) == Retryable).
			Msg("error: unexpected DB error")
		return models.User{}, fmt.Errorf("unexpected DB error: %w", err)
	}

	// scan found user from db
	if err := row.Scan(&foundUser.UserID, &foundUser.Email, &foundUser.PasswordHash, &foundUser.Name, &foundUser.Role, &foundUser.CreatedAt); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return models.User{}, ErrUserNotFound
		}
		log.Err(err).Str("func", "*userRepository.FindUserByEmail").Msg("error: scanning error")
		return models.User{}, err
	}

	return foundUser, nil
}
