package db

import (
	store "findash-server/src/db"

	"github.com/jackc/pgx/v5/pgxpool"
)

// Postgres is the pgx-backed Store implementation.
type Postgres struct {
	pool *pgxpool.Pool
}

func New(pool *pgxpool.Pool) *Postgres {
	return &Postgres{pool: pool}
}

var _ store.Store = (*Postgres)(nil)
