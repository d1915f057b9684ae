package db

import (
	"context"
	"fmt"

	"findash-server/src/models"
)

func (p *Postgres) GetCategories(ctx context.Context, owners []int64, categoryType string) ([]models.Category, error) {
	query := `
		SELECT id, name, type, user_id, created_at
		FROM categories
		WHERE user_id = ANY($1)
	`
	args := []interface{}{owners}
	if categoryType != "" {
		query += " AND type = $2"
		args = append(args, categoryType)
	}
	query += " ORDER BY name"

	rows, err := p.pool.Query(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("query categories: %w", err)
	}
	defer rows.Close()

	var categories []models.Category
	for rows.Next() {
		var c models.Category
		if err := rows.Scan(&c.ID, &c.Name, &c.Type, &c.UserID, &c.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan category: %w", err)
		}
		categories = append(categories, c)
	}
	return categories, rows.Err()
}

func (p *Postgres) InsertCategory(ctx context.Context, c *models.Category) (*models.Category, error) {
	query := `
		INSERT INTO categories (name, type, user_id)
		VALUES ($1, $2, $3)
		RETURNING id, name, type, user_id, created_at
	`
	var created models.Category
	err := p.pool.QueryRow(ctx, query, c.Name, c.Type, c.UserID).
		Scan(&created.ID, &created.Name, &created.Type, &created.UserID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert category: %w", err)
	}
	return &created, nil
}
