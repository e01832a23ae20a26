// Package adapters provides the repository implementations for the auth feature.
package adapters

import (
	"context"
	"errors"
	"fmt"

	"github.com/go-sql-driver/mysql"
	"gorm.io/gorm"

	"movieapp_backend/internal/feature/auth/domain/entity"
	"movieapp_backend/internal/feature/auth/usecase"
)

// accountMySQL is the MySQL implementation of the AccountRepository
// interface, backed by GORM. Connections come from GORM's bounded pool:
// each call acquires one for the duration of the query and releases it
// on every return path.
type accountMySQL struct {
	db *gorm.DB
}

// Compile-time check that accountMySQL implements AccountRepository.
var _ usecase.AccountRepository = (*accountMySQL)(nil)

// NewAccountMySQL creates a new accountMySQL with the given gorm.DB
// connection. Constructor for dependency injection.
func NewAccountMySQL(db *gorm.DB) *accountMySQL {
	return &accountMySQL{db: db}
}

// EnsureSchema creates the users table if it does not already exist.
// Safe to call on every startup.
func (r *accountMySQL) EnsureSchema(ctx context.Context) error {
	if err := r.db.WithContext(ctx).AutoMigrate(&entity.Account{}); err != nil {
		return fmt.Errorf("migrate accounts table: %w", err)
	}
	return nil
}

// FindByUsername retrieves an account by its exact username.
// It returns usecase.ErrAccountNotFound if the account does not exist.
func (r *accountMySQL) FindByUsername(ctx context.Context, username string) (*entity.Account, error) {
	var a entity.Account
	if err := r.db.WithContext(ctx).Where("username = ?", username).First(&a).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, usecase.ErrAccountNotFound
		}
		return nil, err
	}
	return &a, nil
}

// Create inserts an account into the database.
// It returns usecase.ErrUsernameTaken when the unique index on username
// is violated, which is the authoritative duplicate check even when two
// inserts for the same username race past the caller's pre-check.
func (r *accountMySQL) Create(ctx context.Context, a *entity.Account) error {
	if err := r.db.WithContext(ctx).Create(a).Error; err != nil {
		if isDuplicateKey(err) {
			return usecase.ErrUsernameTaken
		}
		return err
	}
	return nil
}

// isDuplicateKey reports whether err is a unique-constraint violation.
// MySQL error 1062 is checked directly; gorm.ErrDuplicatedKey covers
// dialects with error translation enabled, such as the SQLite driver
// used in tests.
func isDuplicateKey(err error) bool {
	var mysqlErr *mysql.MySQLError
	if errors.As(err, &mysqlErr) && mysqlErr.Number == 1062 {
		return true
	}
	return errors.Is(err, gorm.ErrDuplicatedKey)
}
