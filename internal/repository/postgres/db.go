package postgres

import (
	"fmt"
	"time"

	_ "github.com/jackc/pgx/v5/stdlib"
	"github.com/jmoiron/sqlx"

	"worksbill/internal/config"
)

// NewDB creates a new PostgreSQL connection pool.
func NewDB(cfg *config.DBConfig) (*sqlx.DB, error) {
	db, err := sqlx.Connect("pgx", cfg.DSN())
	if err != nil {
		return nil, fmt.Errorf("connecting to postgres: %w", err)
	}
	db.SetMaxOpenConns(cfg.MaxOpen)
	db.SetMaxIdleConns(cfg.MaxIdle)
	return db, nil
}

// dateClause appends inclusive date bounds on column to clause.
func dateClause(clause, column string, from, to *time.Time, args []interface{}) (string, []interface{}) {
	if from != nil {
		args = append(args, *from)
		clause += fmt.Sprintf(" AND %s::date >= $%d", column, len(args))
	}
	if to != nil {
		args = append(args, *to)
		clause += fmt.Sprintf(" AND %s::date <= $%d", column, len(args))
	}
	return clause, args
}
