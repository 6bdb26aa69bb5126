package admin

import (
	"context"
	"fmt"
	"strings"
	"time"

	"golang.org/x/crypto/bcrypt"

	"lawgan/internal/domain/entity"
	"lawgan/internal/repository"
)

// bcryptCost is the work factor applied to new password hashes.
const bcryptCost = 12

// SignupInput represents the input parameters for registering an admin account.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// SignInInput represents the credentials presented at sign-in.
type SignInInput struct {
	Email    string
	Password string
}

// Service provides administrator account use cases.
type Service struct {
	Repo repository.AdminRepository
}

// Signup registers a new admin account.
// The email is normalized before the uniqueness check and the password is
// hashed with bcrypt before storage. Returns a ValidationError when a
// required field is missing and ErrEmailTaken on a duplicate email.
func (s *Service) Signup(ctx context.Context, in SignupInput) (*entity.AdminAccount, error) {
	if in.Name == "" {
		return nil, &entity.ValidationError{Field: "name", Message: "is required"}
	}
	if in.Email == "" {
		return nil, &entity.ValidationError{Field: "email", Message: "is required"}
	}
	if in.Password == "" {
		return nil, &entity.ValidationError{Field: "password", Message: "is required"}
	}

	email := entity.NormalizeEmail(in.Email)
	taken, err := s.Repo.ExistsByEmail(ctx, email)
	if err != nil {
		return nil, fmt.Errorf("check email: %w", err)
	}
	if taken {
		return nil, ErrEmailTaken
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hash password: %w", err)
	}

	account := &entity.AdminAccount{
		Name:         strings.TrimSpace(in.Name),
		Email:        email,
		PasswordHash: string(hash),
	}
	if err := s.Repo.Create(ctx, account); err != nil {
		return nil, fmt.Errorf("create admin: %w", err)
	}
	return account, nil
}

// SignIn verifies the presented credentials and records the login time.
// Returns ErrInvalidCredentials for an unknown email or a wrong password.
func (s *Service) SignIn(ctx context.Context, in SignInInput) (*entity.AdminAccount, error) {
	if in.Email == "" || in.Password == "" {
		return nil, &entity.ValidationError{Field: "email", Message: "and password are required"}
	}

	account, err := s.Repo.GetByEmail(ctx, entity.NormalizeEmail(in.Email))
	if err != nil {
		return nil, fmt.Errorf("get admin: %w", err)
	}
	if account == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(in.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	now := time.Now().UTC()
	if err := s.Repo.UpdateLastLogin(ctx, account.ID, now); err != nil {
		return nil, fmt.Errorf("update last login: %w", err)
	}
	account.LastLogin = now
	return account, nil
}
