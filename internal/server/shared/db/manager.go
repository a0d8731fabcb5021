package db

import (
	"context"
	"database/sql"

	"github.com/dmitrijs2005/labkeeper/internal/server/accounts"
)

type RepositoryManager interface {
	RunMigrations(context.Context) error
	Conn() *sql.DB
	Accounts() accounts.Repository
}
