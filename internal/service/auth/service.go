// Package auth implements the stateless authentication gate: it issues
// access tokens on login, resolves presented tokens back to users, and
// enforces resource ownership. No session state is kept server-side;
// every request re-validates its token independently.
package auth

import (
	"context"
	"fmt"
	"strconv"

	"golang.org/x/crypto/bcrypt"

	"recipe-catalog/internal/domain/entity"
	"recipe-catalog/internal/repository"
)

// bcryptCost is the work factor for new password hashes.
const bcryptCost = 12

// dummyHash is compared against when the account does not exist, so that
// login with an unknown email costs the same as login with a wrong password.
// Hash of an unguessable throwaway string, generated once at cost 12.
const dummyHash = "$2a$12$R9h/cIPz0gi.URNNX3kh2OPST9/PgBkqquzi.Ss7KIUgO2t0jWMUW"

const minPasswordLength = 8

// SignupInput carries the fields accepted at account creation.
type SignupInput struct {
	FirstName string
	Surname   string
	Email     string
	Password  string
}

// Service is the authentication gate. It depends only on the token codec
// and the user repository; it holds no mutable per-request state and is
// safe to share across in-flight requests.
type Service struct {
	codec *Codec
	users repository.UserRepository
}

// NewService creates an authentication service.
func NewService(codec *Codec, users repository.UserRepository) *Service {
	return &Service{codec: codec, users: users}
}

// Login verifies the credentials and returns a signed access token whose
// subject is the user's id. Unknown email and wrong password both fail with
// entity.ErrInvalidCredentials; the caller cannot tell them apart.
func (s *Service) Login(ctx context.Context, email, password string) (string, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return "", fmt.Errorf("find user by email: %w", err)
	}
	if user == nil {
		// Burn a comparison anyway to keep timing uniform.
		_ = bcrypt.CompareHashAndPassword([]byte(dummyHash), []byte(password))
		return "", entity.ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", entity.ErrInvalidCredentials
	}

	token, err := s.codec.Encode(strconv.FormatInt(user.ID, 10))
	if err != nil {
		return "", fmt.Errorf("encode token: %w", err)
	}
	return token, nil
}

// Resolve decodes a presented token and maps its subject to a user.
// Token errors (ErrTokenExpired, ErrTokenMalformed, ErrTokenMissingSubject)
// propagate as-is; a subject that no longer maps to a user fails with
// entity.ErrInvalidCredentials.
func (s *Service) Resolve(ctx context.Context, presented string) (*entity.User, error) {
	subject, err := s.codec.Decode(presented)
	if err != nil {
		return nil, err
	}

	id, err := strconv.ParseInt(subject, 10, 64)
	if err != nil {
		return nil, ErrTokenMalformed
	}

	user, err := s.users.FindByID(ctx, id)
	if err != nil {
		return nil, fmt.Errorf("find user by id: %w", err)
	}
	if user == nil {
		return nil, entity.ErrInvalidCredentials
	}
	return user, nil
}

// RequireOwnership fails with entity.ErrForbidden unless the authenticated
// user is the owner of the resource. The identity is never silently
// substituted for a mismatched owner.
func (s *Service) RequireOwnership(user *entity.User, ownerID int64) error {
	if user == nil || user.ID != ownerID {
		return entity.ErrForbidden
	}
	return nil
}

// Signup creates a new account with a bcrypt-hashed password.
// Fails with entity.ErrDuplicateUser when the email is already registered
// and with ValidationError for malformed input.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*entity.User, error) {
	if err := entity.ValidateEmail(in.Email); err != nil {
		return nil, err
	}
	if len(in.Password) < minPasswordLength {
		return nil, &entity.ValidationError{
			Field:   "password",
			Message: fmt.Sprintf("must be at least %d characters", minPasswordLength),
		}
	}

	existing, err := s.users.FindByEmail(ctx, in.Email)
	if err != nil {
		return nil, fmt.Errorf("find user by email: %w", err)
	}
	if existing != nil {
		return nil, entity.ErrDuplicateUser
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	user := &entity.User{
		FirstName:      in.FirstName,
		Surname:        in.Surname,
		Email:          in.Email,
		HashedPassword: string(hashed),
	}
	if err := s.users.Create(ctx, user); err != nil {
		// The repository maps unique violations to ErrDuplicateUser, which
		// covers the race between the existence check and the insert.
		return nil, err
	}
	return user, nil
}
