package accounts

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/labkeeper/internal/common"
)

// pgUniqueViolation is the PostgreSQL error code for a unique constraint
// violation (duplicate login name on the accounts table).
const pgUniqueViolation = "23505"

type PostgresRepository struct {
	db *sql.DB
}

func NewPostgresRepository(db *sql.DB) *PostgresRepository {
	return &PostgresRepository{db: db}
}

func (r *PostgresRepository) Create(ctx context.Context, account *Account) error {

	query :=
		`INSERT INTO accounts (id, student_name, student_id, login_name, password_hash, role)
         VALUES ($1, $2, $3, $4, $5, $6)
		 `

	_, err := r.db.ExecContext(ctx, query,
		account.ID, account.StudentName, account.StudentID,
		account.LoginName, account.PasswordHash, string(account.Role))

	if err != nil {
		var pgErr *pgconn.PgError
		if errors.As(err, &pgErr) && pgErr.Code == pgUniqueViolation {
			return common.ErrorDuplicateLogin
		}
		return fmt.Errorf("db error: %w", err)
	}

	return nil
}

func (r *PostgresRepository) GetByLogin(ctx context.Context, loginName string) (*Account, error) {
	query :=
		`SELECT id, student_name, student_id, login_name, password_hash, role FROM accounts
		 WHERE login_name = $1
		 `

	account := &Account{}
	var role string
	err := r.db.QueryRowContext(ctx, query, loginName).Scan(
		&account.ID, &account.StudentName, &account.StudentID,
		&account.LoginName, &account.PasswordHash, &role)

	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, common.ErrorNotFound
		}
		return nil, fmt.Errorf("db error: %w", err)
	}

	account.Role = Role(role)
	return account, nil
}
