// Package memory holds an in-memory Store used by tests in place of
// Postgres. Writes are counted so tests can assert that validation
// failures never reach the store.
package memory

import (
	"context"
	"errors"
	"sort"
	"sync"
	"time"

	store "findash-server/src/db"
	"findash-server/src/models"
)

type Memory struct {
	mu sync.Mutex

	AuthorizedIDs []int64
	Transactions  []models.Transaction
	Categories    []models.Category
	Users         []models.User

	// Error injection, one knob per read path.
	AuthorizedErr   error
	TransactionsErr error
	CategoriesErr   error

	// Write counters.
	TransactionInserts int
	CategoryInserts    int

	nextID int64
}

func New() *Memory {
	return &Memory{}
}

func (m *Memory) id() int64 {
	m.nextID++
	return m.nextID
}

func (m *Memory) GetAuthorizedUserIDs(_ context.Context) ([]int64, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AuthorizedErr != nil {
		return nil, m.AuthorizedErr
	}
	return append([]int64(nil), m.AuthorizedIDs...), nil
}

func (m *Memory) GetAllAuthorizedUsers(_ context.Context) ([]models.AuthorizedUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.AuthorizedErr != nil {
		return nil, m.AuthorizedErr
	}
	users := make([]models.AuthorizedUser, 0, len(m.AuthorizedIDs))
	for _, id := range m.AuthorizedIDs {
		users = append(users, models.AuthorizedUser{UserID: id})
	}
	return users, nil
}

func (m *Memory) AddAuthorizedUser(_ context.Context, userID int64) (*models.AuthorizedUser, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, id := range m.AuthorizedIDs {
		if id == userID {
			return nil, errors.New("duplicate key")
		}
	}
	m.AuthorizedIDs = append(m.AuthorizedIDs, userID)
	return &models.AuthorizedUser{UserID: userID, CreatedAt: time.Now()}, nil
}

func (m *Memory) DeleteAuthorizedUser(_ context.Context, userID int64) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i, id := range m.AuthorizedIDs {
		if id == userID {
			m.AuthorizedIDs = append(m.AuthorizedIDs[:i], m.AuthorizedIDs[i+1:]...)
			return nil
		}
	}
	return errors.New("authorized user not found")
}

func (m *Memory) GetTransactions(_ context.Context, f store.TransactionFilter) ([]models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.TransactionsErr != nil {
		return nil, m.TransactionsErr
	}

	owners := make(map[int64]bool, len(f.Owners))
	for _, id := range f.Owners {
		owners[id] = true
	}

	var out []models.Transaction
	for _, t := range m.Transactions {
		if !owners[t.UserID] {
			continue
		}
		if f.Type != "" && t.Type != f.Type {
			continue
		}
		if f.Category != "" && t.Category != f.Category {
			continue
		}
		if !f.From.IsZero() && t.Date.Before(f.From) {
			continue
		}
		if !f.To.IsZero() && !t.Date.Before(f.To) {
			continue
		}
		out = append(out, t)
	}
	if f.DateDesc {
		sort.Slice(out, func(i, j int) bool { return out[i].Date.After(out[j].Date) })
	}
	if f.Limit > 0 && len(out) > f.Limit {
		out = out[:f.Limit]
	}
	return out, nil
}

func (m *Memory) InsertTransaction(_ context.Context, t *models.Transaction) (*models.Transaction, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.TransactionInserts++
	created := *t
	created.ID = m.id()
	created.CreatedAt = time.Now()
	m.Transactions = append(m.Transactions, created)
	return &created, nil
}

func (m *Memory) GetCategories(_ context.Context, owners []int64, categoryType string) ([]models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.CategoriesErr != nil {
		return nil, m.CategoriesErr
	}

	allowed := make(map[int64]bool, len(owners))
	for _, id := range owners {
		allowed[id] = true
	}

	var out []models.Category
	for _, c := range m.Categories {
		if !allowed[c.UserID] {
			continue
		}
		if categoryType != "" && c.Type != categoryType {
			continue
		}
		out = append(out, c)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].Name < out[j].Name })
	return out, nil
}

func (m *Memory) InsertCategory(_ context.Context, c *models.Category) (*models.Category, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.CategoryInserts++
	created := *c
	created.ID = m.id()
	created.CreatedAt = time.Now()
	m.Categories = append(m.Categories, created)
	return &created, nil
}

func (m *Memory) CreateUser(_ context.Context, req models.RegisterRequest, passwordHash string) (*models.RegisterResponse, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for _, u := range m.Users {
		if u.Username == req.Username || u.Email == req.Email {
			return nil, errors.New("duplicate key")
		}
	}
	user := models.User{
		ID:           m.id(),
		Username:     req.Username,
		Email:        req.Email,
		FirstName:    req.FirstName,
		LastName:     req.LastName,
		PasswordHash: []byte(passwordHash),
		CreatedAt:    time.Now(),
	}
	m.Users = append(m.Users, user)
	return &models.RegisterResponse{ID: user.ID, Email: user.Email, Username: user.Username}, nil
}

func (m *Memory) GetUserByID(_ context.Context, id int64) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Users {
		if m.Users[i].ID == id {
			u := m.Users[i]
			return &u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (m *Memory) GetUserByUsername(_ context.Context, username string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Users {
		if m.Users[i].Username == username {
			u := m.Users[i]
			return &u, nil
		}
	}
	return nil, errors.New("user not found")
}

func (m *Memory) GetUserByEmail(_ context.Context, email string) (*models.User, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	for i := range m.Users {
		if m.Users[i].Email == email {
			u := m.Users[i]
			return &u, nil
		}
	}
	return nil, errors.New("user not found")
}

var _ store.Store = (*Memory)(nil)
