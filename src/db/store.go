package db

import (
	"context"
	"time"

	"findash-server/src/models"
)

// TransactionFilter narrows a transaction read. Zero-value fields are
// ignored except Owners, which always applies: an empty owner set matches
// nothing.
type TransactionFilter struct {
	Owners   []int64
	Type     string
	Category string
	From     time.Time // inclusive
	To       time.Time // exclusive
	DateDesc bool
	Limit    int
}

// Store is the data-store boundary. Handlers and the report service take
// it as an explicit dependency so tests can substitute an in-memory
// implementation for the Postgres one.
type Store interface {
	GetAuthorizedUserIDs(ctx context.Context) ([]int64, error)
	GetAllAuthorizedUsers(ctx context.Context) ([]models.AuthorizedUser, error)
	AddAuthorizedUser(ctx context.Context, userID int64) (*models.AuthorizedUser, error)
	DeleteAuthorizedUser(ctx context.Context, userID int64) error

	GetTransactions(ctx context.Context, f TransactionFilter) ([]models.Transaction, error)
	InsertTransaction(ctx context.Context, t *models.Transaction) (*models.Transaction, error)

	GetCategories(ctx context.Context, owners []int64, categoryType string) ([]models.Category, error)
	InsertCategory(ctx context.Context, c *models.Category) (*models.Category, error)

	CreateUser(ctx context.Context, req models.RegisterRequest, passwordHash string) (*models.RegisterResponse, error)
	GetUserByID(ctx context.Context, id int64) (*models.User, error)
	GetUserByUsername(ctx context.Context, username string) (*models.User, error)
	GetUserByEmail(ctx context.Context, email string) (*models.User, error)
}
