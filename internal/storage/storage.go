package storage

import (
	"context"
	"errors"

	"github.com/lumenarts/school-be/internal/models"
)

// ErrNotFound indicates a record does not exist.
var ErrNotFound = errors.New("record not found")

// ErrAlreadyExists indicates a uniqueness conflict on email or username.
var ErrAlreadyExists = errors.New("record already exists")

// AccountStore captures persistence operations needed by the auth service.
// CreateAccount must enforce the email/username uniqueness constraints
// atomically; callers may only use the find operations as a fast path.
type AccountStore interface {
	CreateAccount(ctx context.Context, account models.Account) (models.Account, error)
	FindByEmail(ctx context.Context, email string) (models.Account, error)
	FindByEmailOrUsername(ctx context.Context, email, username string) (models.Account, error)
}
