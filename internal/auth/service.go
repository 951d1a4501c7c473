// Package auth implements the registration and login flow for the
// admissions site: duplicate detection, password hashing, and session
// token issuance over an account store.
package auth

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"golang.org/x/crypto/bcrypt"

	"github.com/lumenarts/school-be/internal/models"
	"github.com/lumenarts/school-be/internal/storage"
)

var (
	// ErrAlreadyExists means an account with the same email or username
	// exists. Which field collided is deliberately not disclosed.
	ErrAlreadyExists = errors.New("account already exists")

	// ErrNotFound means no account matches the login email.
	ErrNotFound = errors.New("account not found")

	// ErrInvalidCredentials means the password did not match.
	ErrInvalidCredentials = errors.New("invalid credentials")

	// ErrStorage wraps any unexpected persistence failure.
	ErrStorage = errors.New("storage failure")
)

// ValidationError reports a missing required field, detected before any
// storage call.
type ValidationError struct {
	Field string
}

func (e *ValidationError) Error() string {
	return e.Field + " is required"
}

// RegisterInput carries everything the signup wizard submits.
type RegisterInput struct {
	Username  string
	Email     string
	Password  string
	FirstName string
	LastName  string
	Phone     string

	DOB     string
	Country string
	Street1 string
	Street2 string
	City    string
	State   string
	PinCode string

	Centre      string
	Level       string
	Stream      string
	Scholarship bool
	Comments    string

	Communications *models.Communications
}

// LoginResult is a successful login: the session token plus the account
// profile. The credential hash is excluded by the model's serialization.
type LoginResult struct {
	Token   string
	Account models.Account
}

// Service orchestrates registration and login. It is the sole owner of the
// hashing and token-issuance policy.
type Service struct {
	store      storage.AccountStore
	tokens     *TokenManager
	bcryptCost int
}

// NewService constructs the auth service. cost is the bcrypt work factor.
func NewService(store storage.AccountStore, tokens *TokenManager, cost int) *Service {
	return &Service{store: store, tokens: tokens, bcryptCost: cost}
}

// Register validates the input, checks for collisions, hashes the password,
// and persists the account. The store's uniqueness constraint is the
// correctness guarantee under concurrent registration; the pre-check only
// gives fast feedback.
func (s *Service) Register(ctx context.Context, in RegisterInput) error {
	if err := validateRegister(in); err != nil {
		return err
	}

	email := normalizeEmail(in.Email)
	username := strings.TrimSpace(in.Username)

	if _, err := s.store.FindByEmailOrUsername(ctx, email, username); err == nil {
		return ErrAlreadyExists
	} else if !errors.Is(err, storage.ErrNotFound) {
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(in.Password), s.bcryptCost)
	if err != nil {
		return fmt.Errorf("hash password: %w", err)
	}

	account := models.Account{
		Username:     username,
		Email:        email,
		PasswordHash: string(hash),
		FirstName:    strings.TrimSpace(in.FirstName),
		LastName:     strings.TrimSpace(in.LastName),
		Phone:        strings.TrimSpace(in.Phone),
		DOB:          strings.TrimSpace(in.DOB),
		Country:      strings.TrimSpace(in.Country),
		Street1:      strings.TrimSpace(in.Street1),
		Street2:      strings.TrimSpace(in.Street2),
		City:         strings.TrimSpace(in.City),
		State:        strings.TrimSpace(in.State),
		PinCode:      strings.TrimSpace(in.PinCode),
		Centre:       strings.TrimSpace(in.Centre),
		Level:        strings.TrimSpace(in.Level),
		Stream:       strings.TrimSpace(in.Stream),
		Scholarship:  in.Scholarship,
		Comments:     strings.TrimSpace(in.Comments),
	}
	if in.Communications != nil {
		account.Communications = *in.Communications
	}

	if _, err := s.store.CreateAccount(ctx, account); err != nil {
		// A unique violation detected only at insert time means we lost a
		// race with another registration; same outcome as the pre-check.
		if errors.Is(err, storage.ErrAlreadyExists) {
			return ErrAlreadyExists
		}
		return fmt.Errorf("%w: %v", ErrStorage, err)
	}
	return nil
}

// Login verifies the email/password pair and issues a session token.
func (s *Service) Login(ctx context.Context, email, password string) (LoginResult, error) {
	if strings.TrimSpace(email) == "" {
		return LoginResult{}, &ValidationError{Field: "email"}
	}
	if password == "" {
		return LoginResult{}, &ValidationError{Field: "password"}
	}

	account, err := s.store.FindByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, storage.ErrNotFound) {
			return LoginResult{}, ErrNotFound
		}
		return LoginResult{}, fmt.Errorf("%w: %v", ErrStorage, err)
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.PasswordHash), []byte(password)); err != nil {
		return LoginResult{}, ErrInvalidCredentials
	}

	token, err := s.tokens.Generate(account)
	if err != nil {
		return LoginResult{}, fmt.Errorf("generate token: %w", err)
	}
	return LoginResult{Token: token, Account: account}, nil
}

func validateRegister(in RegisterInput) error {
	required := []struct {
		field, value string
	}{
		{"username", in.Username},
		{"email", in.Email},
		{"password", in.Password},
		{"firstName", in.FirstName},
		{"lastName", in.LastName},
		{"phone", in.Phone},
	}
	for _, r := range required {
		if strings.TrimSpace(r.value) == "" {
			return &ValidationError{Field: r.field}
		}
	}
	return nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
