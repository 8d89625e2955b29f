// Package repository handles all interactions with the database.
//
// It contains the parameterized SQL and methods to fetch, persist, and
// update rows, abstracting SQL away from the service layer. Queries are
// always parameterized, never string-concatenated. Each method performs
// exactly one logical unit of work against the pool; the pool hands out
// and reclaims connections on every exit path.
package repository

import (
	"context"

	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgconn"
)

// Querier is the subset of pgxpool.Pool the repositories use. Keeping
// it an interface lets tests substitute a mock pool.
type Querier interface {
	Query(ctx context.Context, sql string, args ...any) (pgx.Rows, error)
	QueryRow(ctx context.Context, sql string, args ...any) pgx.Row
	Exec(ctx context.Context, sql string, args ...any) (pgconn.CommandTag, error)
}
