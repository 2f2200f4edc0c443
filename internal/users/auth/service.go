// Copyright (c) 2026 Yomira. All rights reserved.
// Author: tai.buivan.jp@gmail.com

package auth

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"time"
	"unicode/utf8"

	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/taibuivan/salesdesk/internal/platform/apperr"
	"github.com/taibuivan/salesdesk/internal/platform/sec"
	"github.com/taibuivan/salesdesk/internal/platform/validate"
	"github.com/taibuivan/salesdesk/pkg/uuid"
)

// # Contracts & Types

// PasswordHasher derives and checks password digests.
type PasswordHasher interface {
	Hash(secret string) (string, error)
	Verify(secret, digest string) bool
}

// TokenIssuer signs session tokens.
type TokenIssuer interface {
	Issue(userID, email string) (string, *sec.Claims, error)
}

// Recorder receives authentication metrics.
type Recorder interface {
	RecordSignup()
	RecordLoginFailure()
	RecordLogout()
}

// Service implements signup, login, session lookup and logout.
// Passwords are stored only as argon2id digests.
type Service struct {
	userRepository UserRepository
	revokedTokens  RevokedTokenRepository
	hasher         PasswordHasher
	tokenIssuer    TokenIssuer
	metrics        Recorder
	logger         *slog.Logger
	now            func() time.Time
	dummyDigest    string
}

// NewService constructs a new [Service].
//
// revokedTokens may be nil, in which case logout is client-side only.
func NewService(
	userRepo UserRepository,
	revokedTokens RevokedTokenRepository,
	hasher PasswordHasher,
	tokenIssuer TokenIssuer,
	metrics Recorder,
	logger *slog.Logger,
) (*Service, error) {
	dummyDigest, err := hasher.Hash(dummyPassword)
	if err != nil {
		return nil, fmt.Errorf("auth_service_dummy_digest_failed: %w", err)
	}

	return &Service{
		userRepository: userRepo,
		revokedTokens:  revokedTokens,
		hasher:         hasher,
		tokenIssuer:    tokenIssuer,
		metrics:        metrics,
		logger:         logger,
		now:            time.Now,
		dummyDigest:    dummyDigest,
	}, nil
}

// NormalizeEmail trims and lower-cases an address so lookups are case-insensitive.
func NormalizeEmail(email string) string {
	// cases.Caser keeps internal state; one per call.
	return cases.Lower(language.Und).String(strings.TrimSpace(email))
}

// # Signup Flow

// SignupInput holds the data required to create an account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

/*
Signup validates, hashes, and persists a brand new user account, then issues
a session token for it.

Parameters:
  - context: context.Context
  - input: SignupInput

Returns:
  - *Session: Token and public profile
  - err: VALIDATION_ERROR, CONFLICT (email taken) or internal errors
*/
func (service *Service) Signup(context context.Context, input SignupInput) (*Session, error) {
	name := strings.TrimSpace(input.Name)
	email := NormalizeEmail(input.Email)

	validator := &validate.Validator{}
	validator.
		Custom(FieldName, name == "", MsgNameRequired).
		MaxLen(FieldName, name, MaxNameLength).
		Custom(FieldEmail, email == "", MsgEmailRequired).
		Custom(FieldPassword, utf8.RuneCountInString(input.Password) < MinPasswordLength, MsgPasswordTooShort)
	if email != "" && !strings.Contains(email, "@") {
		validator.Custom(FieldEmail, true, MsgEmailInvalid)
	}
	if err := validator.Err(); err != nil {
		return nil, err
	}

	// Fast-path uniqueness check; the UNIQUE constraint remains authoritative.
	_, err := service.userRepository.FindByEmail(context, email)
	if err == nil {
		return nil, apperr.Conflict(MsgEmailTaken)
	}
	if !apperr.HasCode(err, apperr.CodeNotFound) {
		return nil, fmt.Errorf("auth_service_lookup_failed: %w", err)
	}

	digest, err := service.hasher.Hash(input.Password)
	if err != nil {
		return nil, fmt.Errorf("auth_service_hash_failed: %w", err)
	}

	user := &User{
		ID:           uuid.New(),
		Name:         name,
		Email:        email,
		PasswordHash: digest,
		CreatedAt:    service.now().UTC(),
	}

	if err := service.userRepository.Create(context, user); err != nil {
		if apperr.HasCode(err, apperr.CodeConflict) {
			return nil, apperr.Conflict(MsgEmailTaken).WithCause(err)
		}
		return nil, fmt.Errorf("auth_service_signup_failed: %w", err)
	}

	session, err := service.issueSession(user)
	if err != nil {
		return nil, err
	}

	service.metrics.RecordSignup()
	service.logger.InfoContext(context, "user_signed_up", slog.String("user_id", user.ID))

	return session, nil
}

// # Authentication Flow

// LoginInput defines credentials for an authentication attempt.
type LoginInput struct {
	Email    string
	Password string
}

/*
Login validates user credentials and issues a fresh session token.

An unknown email still costs one digest verification so that response
latency does not reveal whether the account exists.

Returns:
  - *Session: Token and public profile
  - err: VALIDATION_ERROR, [ErrInvalidCredentials] or internal failures
*/
func (service *Service) Login(context context.Context, input LoginInput) (*Session, error) {
	email := NormalizeEmail(input.Email)
	if email == "" || input.Password == "" {
		return nil, apperr.ValidationError(MsgCredentialsMissing)
	}

	user, err := service.userRepository.FindByEmail(context, email)
	if err != nil {
		if !apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, fmt.Errorf("auth_service_lookup_failed: %w", err)
		}
		service.hasher.Verify(input.Password, service.dummyDigest)
		return nil, service.rejectLogin(context)
	}

	if !service.hasher.Verify(input.Password, user.PasswordHash) {
		return nil, service.rejectLogin(context)
	}

	return service.issueSession(user)
}

func (service *Service) rejectLogin(context context.Context) error {
	service.metrics.RecordLoginFailure()
	service.logger.InfoContext(context, "login_rejected")
	return ErrInvalidCredentials
}

func (service *Service) issueSession(user *User) (*Session, error) {
	token, _, err := service.tokenIssuer.Issue(user.ID, user.Email)
	if err != nil {
		return nil, fmt.Errorf("auth_service_token_generation_failed: %w", err)
	}
	return &Session{Token: token, User: user.Profile()}, nil
}

// # Session Management

/*
Me returns the profile of the authenticated user.

Returns:
  - *Profile: Public user fields
  - err: NOT_FOUND when the account no longer exists
*/
func (service *Service) Me(context context.Context, userID string) (*Profile, error) {
	user, err := service.userRepository.FindByID(context, userID)
	if err != nil {
		if apperr.HasCode(err, apperr.CodeNotFound) {
			return nil, err
		}
		return nil, fmt.Errorf("auth_service_me_failed: %w", err)
	}

	profile := user.Profile()
	return &profile, nil
}

/*
Logout adds the token's ID to the deny-list for the rest of its lifetime.

Without a deny-list configured this is a no-op: tokens stay valid until
they expire and the client is expected to discard them.
*/
func (service *Service) Logout(context context.Context, claims *sec.Claims) error {
	if service.revokedTokens == nil || claims == nil || claims.ID == "" {
		return nil
	}

	var remaining time.Duration
	if claims.ExpiresAt != nil {
		remaining = claims.ExpiresAt.Time.Sub(service.now())
	}
	if remaining <= 0 {
		return nil
	}

	if err := service.revokedTokens.Revoke(context, claims.ID, remaining); err != nil {
		return fmt.Errorf("auth_service_logout_failed: %w", err)
	}

	service.metrics.RecordLogout()
	service.logger.InfoContext(context, "user_logged_out", slog.String("user_id", claims.UserID()))

	return nil
}
