package usecase

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"movieapp_backend/internal/feature/auth/domain/entity"

	"golang.org/x/crypto/bcrypt"
)

// hashCost is the bcrypt cost factor for new password hashes.
const hashCost = 10

// AccountRepository abstracts the persistence layer for account entities.
// Following Go convention, the interface is defined by the consumer
// (usecase) rather than the provider (adapters).
type AccountRepository interface {
	// EnsureSchema creates the accounts table if it does not exist.
	// It is idempotent and called once at startup.
	EnsureSchema(ctx context.Context) error

	// FindByUsername retrieves the account with the exact given username.
	// It returns ErrAccountNotFound if no such account exists.
	FindByUsername(ctx context.Context, username string) (*entity.Account, error)

	// Create persists a new account to the storage.
	// It returns ErrUsernameTaken if the username is already in use.
	Create(ctx context.Context, account *entity.Account) error
}

// RegisterInput carries the fields of a registration request.
// Email and Phone are optional; nil means absent.
type RegisterInput struct {
	Username string
	Password string
	Email    *string
	Phone    *string
}

// authUsecase implements the authentication business logic.
type authUsecase struct {
	accounts AccountRepository
}

// NewAuthUsecase creates a new instance of authUsecase.
func NewAuthUsecase(accounts AccountRepository) *authUsecase {
	return &authUsecase{accounts: accounts}
}

// Register creates a new account with a hashed password.
//
// Validation is fail-fast: missing or blank username/password returns
// ErrInvalidInput before the store is touched. The duplicate pre-check
// is advisory; the store's uniqueness constraint remains authoritative
// when two registrations for the same username race, so Create may
// still return ErrUsernameTaken.
func (u *authUsecase) Register(ctx context.Context, in RegisterInput) error {
	creds, ok := normalizeCredentials(in.Username, in.Password)
	if !ok {
		return ErrInvalidInput
	}

	if _, err := u.accounts.FindByUsername(ctx, creds.Username); err == nil {
		return ErrUsernameTaken
	} else if !errors.Is(err, ErrAccountNotFound) {
		return fmt.Errorf("%w: %v", ErrRegistration, err)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(creds.Password), hashCost)
	if err != nil {
		return fmt.Errorf("%w: %v", ErrHashPassword, err)
	}

	account := &entity.Account{
		Username: creds.Username,
		Password: string(hashed),
		Email:    normalizeOptional(in.Email),
		Phone:    normalizeOptional(in.Phone),
	}
	if err := u.accounts.Create(ctx, account); err != nil {
		if errors.Is(err, ErrUsernameTaken) {
			return ErrUsernameTaken
		}
		return fmt.Errorf("%w: %v", ErrRegistration, err)
	}
	return nil
}

// Login verifies a username/password pair against the stored hash.
//
// It returns (true, nil) on a verified match and (false, nil) for an
// unknown username, a wrong password, or an account with a missing
// stored hash; those three outcomes are indistinguishable to the
// caller. An error is returned only for invalid input or an internal
// failure of the store or of hash verification itself.
func (u *authUsecase) Login(ctx context.Context, username, password string) (bool, error) {
	creds, ok := normalizeCredentials(username, password)
	if !ok {
		return false, ErrInvalidInput
	}

	account, err := u.accounts.FindByUsername(ctx, creds.Username)
	if err != nil {
		if errors.Is(err, ErrAccountNotFound) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrStoreUnavailable, err)
	}

	// Malformed row: an account without a hash cannot authenticate,
	// but must not crash the request.
	if account.Password == "" {
		slog.Warn("account found but password hash is missing", "username", creds.Username)
		return false, nil
	}

	if err := bcrypt.CompareHashAndPassword([]byte(account.Password), []byte(creds.Password)); err != nil {
		if errors.Is(err, bcrypt.ErrMismatchedHashAndPassword) {
			return false, nil
		}
		return false, fmt.Errorf("%w: %v", ErrComparePassword, err)
	}
	return true, nil
}
