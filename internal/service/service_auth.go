package service

import (
	"context"
	"fmt"
	"time"

	"github.com/MKhiriev/eye-test-server/internal/config"
	"github.com/MKhiriev/eye-test-server/internal/logger"
	"github.com/MKhiriev/eye-test-server/internal/store"
	"github.com/MKhiriev/eye-test-server/internal/utils"
	"github.com/MKhiriev/eye-test-server/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and the JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, cfg config.Auth, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		logger:         logger,
	}
}

// RegisterUser creates a new user account.
//
// It validates that Email, Name and the plaintext password are non-empty,
// hashes the password with bcrypt, defaults the role, and delegates
// persistence to the UserRepository. No token is issued on registration —
// the user must subsequently log in.
//
// Returns the persisted user (with a server-assigned UserID) or:
//   - ErrInvalidDataProvided if any required field is empty.
//   - store.ErrEmailAlreadyExists (wrapped) if the email is already taken.
//   - A wrapped storage or hashing error on any other failure.
func (a *authService) RegisterUser(ctx context.Context, user models.User, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if user.Email == "" || user.Name == "" || password == "" {
		log.Error().Str("email", user.Email).Msg("invalid registration data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	passwordHash, err := utils.HashPassword(password)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user.PasswordHash = passwordHash
	if user.Role == "" {
		user.Role = models.DefaultRole
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user)
	if err != nil {
		log.Err(err).Str("email", user.Email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser, nil
}

// Login authenticates an existing user.
//
// It validates that both email and password are non-empty, looks up the
// account by email, and verifies the password against the stored bcrypt hash.
//
// Returns the authenticated user record or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - A wrapped storage error if the lookup fails (including
//     store.ErrUserNotFound for an unknown email).
//   - ErrWrongPassword if the password does not match.
//   - ErrPasswordVerification (wrapped) if the stored hash is malformed.
//
// The handler layer maps ErrUserNotFound and ErrWrongPassword to one
// identical response so that callers cannot tell which check failed.
func (a *authService) Login(ctx context.Context, email, password string) (models.User, error) {
	log := logger.FromContext(ctx)

	if email == "" || password == "" {
		log.Error().Str("email", email).Msg("invalid login data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	match, err := utils.VerifyPassword(password, foundUser.PasswordHash)
	if err != nil {
		log.Err(err).Int64("id", foundUser.UserID).Msg("password verification failed")
		return models.User{}, fmt.Errorf("%w: %w", ErrPasswordVerification, err)
	}
	if !match {
		log.Error().
			Int64("id", foundUser.UserID).
			Str("email", foundUser.Email).
			Msg("wrong password")
		return models.User{}, ErrWrongPassword
	}

	return foundUser, nil
}

// CreateToken issues a signed JWT session token for the given user.
//
// The token is signed with the configured tokenSignKey, carries the configured
// tokenIssuer as the "iss" claim plus the user's id, role and email, and
// expires after tokenDuration. Issuance is stateless: nothing is persisted,
// and any process holding the same sign key can verify the result.
//
// Returns the token model on success or a wrapped error if JWT generation fails.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user, a.tokenDuration, a.tokenSignKey)
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// It delegates to utils.ValidateAndParseJWTToken, verifying the signature,
// the expiry, and the issuer claim. Any validation failure (expired, wrong
// issuer, malformed, tampered) is normalised to ErrTokenIsExpiredOrInvalid
// so that callers do not need to inspect low-level JWT errors.
//
// Stale tokens cannot be revoked before their natural expiry: there is no
// server-side session state. This is an accepted limitation.
//
// Returns the decoded token model on success or ErrTokenIsExpiredOrInvalid on
// any validation failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer)
	if err != nil {
		return models.Token{}, ErrTokenIsExpiredOrInvalid
	}

	return token, nil
}
