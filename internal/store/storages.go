package store

import (
	"context"

	"github.com/pfalcao/go-biblioteca/internal/config"
	"github.com/pfalcao/go-biblioteca/internal/logger"
)

// Storages aggregates every repository backed by the shared database
// connection.
type Storages struct {
	DB             *DB
	UserRepository UserRepository
	BookRepository BookRepository
	LoanRepository LoanRepository
}

// NewStorages connects to PostgreSQL and wires all repositories onto the
// shared connection.
func NewStorages(ctx context.Context, cfg config.Storage, log *logger.Logger) (*Storages, error) {
	db, err := NewConnectPostgres(ctx, cfg.DB, log)
	if err != nil {
		return nil, err
	}

	return &Storages{
		DB:             db,
		UserRepository: NewUserRepository(db, log),
		BookRepository: NewBookRepository(db, log),
		LoanRepository: NewLoanRepository(db, log),
	}, nil
}
