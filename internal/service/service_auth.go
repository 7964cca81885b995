package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/MKhiriev/go-poke-keeper/internal/config"
	"github.com/MKhiriev/go-poke-keeper/internal/logger"
	"github.com/MKhiriev/go-poke-keeper/internal/store"
	"github.com/MKhiriev/go-poke-keeper/internal/utils"
	"github.com/MKhiriev/go-poke-keeper/models"
)

// authService is the concrete implementation of AuthService.
// It handles user registration, credential verification, and JWT token
// lifecycle using a UserRepository for persistence and bcrypt for password
// hashing.
type authService struct {
	// userRepository is the data-access layer used to create and look up users.
	userRepository store.UserRepository

	// hasher computes and verifies bcrypt hashes under a concurrency bound.
	hasher *PasswordHasher

	// ids generates user and account identifiers.
	ids IDGenerator

	// tokenSignKey is the HMAC secret used to sign and verify JWT tokens.
	tokenSignKey string

	// tokenIssuer is the "iss" claim embedded in every issued JWT.
	// Tokens whose issuer does not match this value are rejected during parsing.
	tokenIssuer string

	// tokenDuration controls how long a newly issued JWT remains valid.
	tokenDuration time.Duration

	// createAccount makes RegisterUser create an account holding
	// initialBalance for every new user.
	createAccount  bool
	initialBalance int64

	// now is the clock used to issue and verify tokens.
	now func() time.Time

	// logger is the structured logger used for diagnostic and error output.
	logger *logger.Logger
}

// NewAuthService constructs a new AuthService wired to the given UserRepository
// and populated with security parameters from cfg.
//
// The returned service is safe for concurrent use; all state is read-only after
// construction.
func NewAuthService(userRepository store.UserRepository, hasher *PasswordHasher, ids IDGenerator, cfg config.App, logger *logger.Logger) AuthService {
	return &authService{
		userRepository: userRepository,
		hasher:         hasher,
		ids:            ids,
		tokenSignKey:   cfg.TokenSignKey,
		tokenIssuer:    cfg.TokenIssuer,
		tokenDuration:  cfg.TokenDuration,
		createAccount:  cfg.CreateAccountOnSignup,
		initialBalance: cfg.InitialBalance,
		now:            time.Now,
		logger:         logger,
	}
}

// RegisterUser creates a new user and, when enabled, its account.
//
// Returns the persisted user without secrets or:
//   - ErrInvalidDataProvided if email or password is empty or the password
//     exceeds the bcrypt input limit.
//   - store.ErrEmailAlreadyExists if the email is taken.
func (a *authService) RegisterUser(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Error().Str("email", email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	hash, err := a.hasher.Hash(ctx, credentials.Password)
	if err != nil {
		log.Err(err).Str("email", email).Msg("password hashing failed")
		return models.User{}, fmt.Errorf("password hashing failed: %w", err)
	}

	user := models.User{
		UserID:       a.ids.Generate(),
		Email:        email,
		PasswordHash: hash,
	}

	var account *models.Account
	if a.createAccount {
		account = &models.Account{
			AccountID: a.ids.Generate(),
			UserID:    user.UserID,
			Balance:   a.initialBalance,
		}
	}

	registeredUser, err := a.userRepository.CreateUser(ctx, user, account)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user creation ended with error")
		return models.User{}, fmt.Errorf("user creation ended with error: %w", err)
	}

	return registeredUser.Public(), nil
}

// Login authenticates an existing user.
//
// Returns the authenticated user without secrets or:
//   - ErrInvalidDataProvided if email or password is empty.
//   - store.ErrUserNotFound if no user has the email.
//   - ErrWrongPassword if the password does not match.
func (a *authService) Login(ctx context.Context, credentials models.Credentials) (models.User, error) {
	log := logger.FromContext(ctx)

	email := strings.TrimSpace(credentials.Email)
	if email == "" || credentials.Password == "" {
		log.Error().Str("email", email).Msg("invalid user data provided")
		return models.User{}, ErrInvalidDataProvided
	}

	foundUser, err := a.userRepository.FindUserByEmail(ctx, email)
	if err != nil {
		log.Err(err).Str("email", email).Msg("user search by email failed")
		return models.User{}, fmt.Errorf("user search by email failed: %w", err)
	}

	if err = a.hasher.Compare(ctx, foundUser.PasswordHash, credentials.Password); err != nil {
		if errors.Is(err, ErrWrongPassword) {
			log.Warn().Str("id", foundUser.UserID).Msg("wrong password")
			return models.User{}, ErrWrongPassword
		}
		return models.User{}, fmt.Errorf("password verification failed: %w", err)
	}

	return foundUser.Public(), nil
}

// CreateToken issues a signed JWT for the given user.
//
// The token carries the configured tokenIssuer as the "iss" claim and
// expires after tokenDuration. A zero duration yields a token that is
// already expired when verified at the same instant.
func (a *authService) CreateToken(ctx context.Context, user models.User) (models.Token, error) {
	token, err := utils.GenerateJWTToken(a.tokenIssuer, user.UserID, a.tokenDuration, a.tokenSignKey, a.now())
	if err != nil {
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenCreationFailed, err)
	}

	return token, nil
}

// ParseToken validates and parses a raw JWT string.
//
// Returns ErrTokenIsExpired when the verification time is at or past the
// expiry and ErrTokenIsInvalid for any other failure.
func (a *authService) ParseToken(ctx context.Context, tokenString string) (models.Token, error) {
	token, err := utils.ValidateAndParseJWTToken(tokenString, a.tokenSignKey, a.tokenIssuer, a.now())
	if err != nil {
		if errors.Is(err, utils.ErrTokenExpired) {
			return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsExpired, err)
		}
		return models.Token{}, fmt.Errorf("%w: %w", ErrTokenIsInvalid, err)
	}

	return token, nil
}
