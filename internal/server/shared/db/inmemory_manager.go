package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/labkeeper/internal/server/accounts"
)

// InMemoryRepositoryManager backs the server with a map-based account
// store. Used in tests and for local development without PostgreSQL.
type InMemoryRepositoryManager struct {
	accounts accounts.Repository
}

func (m InMemoryRepositoryManager) Conn() *sql.DB {
	return nil
}

func (m InMemoryRepositoryManager) RunMigrations(ctx context.Context) error {
	return nil
}

func (m InMemoryRepositoryManager) Accounts() accounts.Repository {
	return m.accounts
}

func NewInMemoryRepositoryManager() RepositoryManager {
	return InMemoryRepositoryManager{accounts: accounts.NewMemoryRepository()}
}
