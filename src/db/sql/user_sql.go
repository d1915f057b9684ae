package db

import (
	"context"
	"errors"
	"fmt"

	"findash-server/src/models"

	"github.com/jackc/pgx/v5"
)

const userColumns = `id, username, email, first_name, last_name, password_hash, super_admin, created_at`

func scanUser(row pgx.Row) (*models.User, error) {
	var user models.User
	err := row.Scan(
		&user.ID,
		&user.Username,
		&user.Email,
		&user.FirstName,
		&user.LastName,
		&user.PasswordHash,
		&user.SuperAdmin,
		&user.CreatedAt,
	)
	if err != nil {
		if errors.Is(err, pgx.ErrNoRows) {
			return nil, errors.New("user not found")
		}
		return nil, fmt.Errorf("query error: %w", err)
	}
	return &user, nil
}

func (p *Postgres) GetUserByID(ctx context.Context, id int64) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE id = $1`
	return scanUser(p.pool.QueryRow(ctx, query, id))
}

func (p *Postgres) GetUserByUsername(ctx context.Context, username string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE username = $1`
	return scanUser(p.pool.QueryRow(ctx, query, username))
}

func (p *Postgres) GetUserByEmail(ctx context.Context, email string) (*models.User, error) {
	query := `SELECT ` + userColumns + ` FROM users WHERE email = $1`
	return scanUser(p.pool.QueryRow(ctx, query, email))
}

func (p *Postgres) CreateUser(ctx context.Context, req models.RegisterRequest, passwordHash string) (*models.RegisterResponse, error) {
	query := `
		INSERT INTO users (first_name, last_name, username, email, password_hash)
		VALUES ($1, $2, $3, $4, $5)
		RETURNING id
	`

	var userID int64
	err := p.pool.QueryRow(
		ctx,
		query,
		req.FirstName,
		req.LastName,
		req.Username,
		req.Email,
		passwordHash,
	).Scan(&userID)
	if err != nil {
		return nil, fmt.Errorf("failed to create user: %w", err)
	}

	return &models.RegisterResponse{
		ID:       userID,
		Email:    req.Email,
		Username: req.Username,
	}, nil
}
