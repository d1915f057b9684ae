package models

import "time"

const (
	TypeIncome  = "income"
	TypeExpense = "expense"
)

// Transaction is a single income or expense entry. Expenses are stored
// with a negative amount; rows are never updated or deleted.
type Transaction struct {
	ID          int64     `json:"id"`
	Description string    `json:"description"`
	Amount      float64   `json:"amount"`
	Date        time.Time `json:"date"`
	Category    string    `json:"category"`
	Type        string    `json:"type"`
	UserID      int64     `json:"user_id"`
	CreatedAt   time.Time `json:"created_at"`
}
