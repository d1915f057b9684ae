package db

import (
	"context"
	"fmt"
	"strings"

	store "findash-server/src/db"
	"findash-server/src/models"
)

func (p *Postgres) GetTransactions(ctx context.Context, f store.TransactionFilter) ([]models.Transaction, error) {
	var sb strings.Builder
	sb.WriteString(`
		SELECT id, description, amount, date, category, type, user_id, created_at
		FROM transactions
		WHERE user_id = ANY($1)
	`)
	args := []interface{}{f.Owners}

	if f.Type != "" {
		args = append(args, f.Type)
		fmt.Fprintf(&sb, " AND type = $%d", len(args))
	}
	if f.Category != "" {
		args = append(args, f.Category)
		fmt.Fprintf(&sb, " AND category = $%d", len(args))
	}
	if !f.From.IsZero() {
		args = append(args, f.From)
		fmt.Fprintf(&sb, " AND date >= $%d", len(args))
	}
	if !f.To.IsZero() {
		args = append(args, f.To)
		fmt.Fprintf(&sb, " AND date < $%d", len(args))
	}
	if f.DateDesc {
		sb.WriteString(" ORDER BY date DESC")
	}
	if f.Limit > 0 {
		args = append(args, f.Limit)
		fmt.Fprintf(&sb, " LIMIT $%d", len(args))
	}

	rows, err := p.pool.Query(ctx, sb.String(), args...)
	if err != nil {
		return nil, fmt.Errorf("query transactions: %w", err)
	}
	defer rows.Close()

	var txns []models.Transaction
	for rows.Next() {
		var t models.Transaction
		if err := rows.Scan(&t.ID, &t.Description, &t.Amount, &t.Date, &t.Category, &t.Type, &t.UserID, &t.CreatedAt); err != nil {
			return nil, fmt.Errorf("scan transaction: %w", err)
		}
		txns = append(txns, t)
	}
	return txns, rows.Err()
}

func (p *Postgres) InsertTransaction(ctx context.Context, t *models.Transaction) (*models.Transaction, error) {
	query := `
		INSERT INTO transactions (description, amount, date, category, type, user_id)
		VALUES ($1, $2, $3, $4, $5, $6)
		RETURNING id, description, amount, date, category, type, user_id, created_at
	`
	var created models.Transaction
	err := p.pool.QueryRow(ctx, query, t.Description, t.Amount, t.Date, t.Category, t.Type, t.UserID).
		Scan(&created.ID, &created.Description, &created.Amount, &created.Date, &created.Category, &created.Type, &created.UserID, &created.CreatedAt)
	if err != nil {
		return nil, fmt.Errorf("insert transaction: %w", err)
	}
	return &created, nil
}
