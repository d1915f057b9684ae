package db

import (
	"context"
	"fmt"

	"findash-server/src/models"
)

// GetAuthorizedUserIDs loads the full allow-list. There is no pagination;
// the list holds a handful of ids.
func (p *Postgres) GetAuthorizedUserIDs(ctx context.Context) ([]int64, error) {
	rows, err := p.pool.Query(ctx, `SELECT user_id FROM authorized_users ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("query authorized users: %w", err)
	}
	defer rows.Close()

	var ids []int64
	for rows.Next() {
		var id int64
		if err := rows.Scan(&id); err != nil {
			return nil, fmt.Errorf("scan authorized user: %w", err)
		}
		ids = append(ids, id)
	}
	return ids, rows.Err()
}

func (p *Postgres) GetAllAuthorizedUsers(ctx context.Context) ([]models.AuthorizedUser, error) {
	rows, err := p.pool.Query(ctx, `SELECT user_id, created_at FROM authorized_users ORDER BY user_id`)
	if err != nil {
		return nil, fmt.Errorf("query authorized users: %w", err)
	}
	defer rows.Close()

	var users []models.AuthorizedUser
	for rows.Next() {
		var u models.AuthorizedUser
		if err := rows.Scan(&u.UserID, &u.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan authorized user: %w", err)
		}
		users = append(users, u)
	}
	return users, rows.Err()
}

func (p *Postgres) AddAuthorizedUser(ctx context.Context, userID int64) (*models.AuthorizedUser, error) {
	query := `
		INSERT INTO authorized_users (user_id)
		VALUES ($1)
		RETURNING user_id, created_at
	`
	var u models.AuthorizedUser
	if err := p.pool.QueryRow(ctx, query, userID).Scan(&u.UserID, &u.CreatedAt); err != nil {
		return nil, fmt.Errorf("insert authorized user: %w", err)
	}
	return &u, nil
}

func (p *Postgres) DeleteAuthorizedUser(ctx context.Context, userID int64) error {
	cmd, err := p.pool.Exec(ctx, `DELETE FROM authorized_users WHERE user_id = $1`, userID)
	if err != nil {
		return fmt.Errorf("delete authorized user: %w", err)
	}
	if cmd.RowsAffected() == 0 {
		return fmt.Errorf("authorized user not found")
	}
	return nil
}
