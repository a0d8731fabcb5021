package accounts

import (
	"context"
	"database/sql"
	"errors"
	"regexp"
	"testing"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/jackc/pgx/v5/pgconn"

	"github.com/dmitrijs2005/labkeeper/internal/common"
)

func newRepoWithMock(t *testing.T) (*PostgresRepository, sqlmock.Sqlmock, *sql.DB) {
	t.Helper()
	db, mock, err := sqlmock.New(sqlmock.QueryMatcherOption(sqlmock.QueryMatcherRegexp))
	if err != nil {
		t.Fatalf("sqlmock.New error: %v", err)
	}
	return NewPostgresRepository(db), mock, db
}

const insertQ = `(?s)^INSERT\s+INTO\s+accounts\s*\(id,\s*student_name,\s*student_id,\s*login_name,\s*password_hash,\s*role\)\s*VALUES\s*\(\$1,\s*\$2,\s*\$3,\s*\$4,\s*\$5,\s*\$6\)\s*$`
const selectQ = `(?s)^SELECT\s+id,\s*student_name,\s*student_id,\s*login_name,\s*password_hash,\s*role\s+FROM\s+accounts\s+WHERE\s+login_name\s*=\s*\$1\s*$`

func testAccount() *Account {
	return &Account{
		ID:           "a-1",
		StudentName:  "Alice",
		StudentID:    "42",
		LoginName:    "Alice@42",
		PasswordHash: []byte("$2a$10$hash"),
		Role:         RoleStudent,
	}
}

func TestCreate_Success(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQ).
		WithArgs("a-1", "Alice", "42", "Alice@42", []byte("$2a$10$hash"), "student").
		WillReturnResult(sqlmock.NewResult(0, 1))

	if err := repo.Create(context.Background(), testAccount()); err != nil {
		t.Fatalf("Create error: %v", err)
	}
}

func TestCreate_DuplicateLoginName(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQ).
		WithArgs("a-1", "Alice", "42", "Alice@42", []byte("$2a$10$hash"), "student").
		WillReturnError(&pgconn.PgError{Code: "23505", ConstraintName: "accounts_login_name_key"})

	err := repo.Create(context.Background(), testAccount())
	if !errors.Is(err, common.ErrorDuplicateLogin) {
		t.Fatalf("expected ErrorDuplicateLogin, got %v", err)
	}
}

func TestCreate_DBError(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectExec(insertQ).
		WithArgs("a-1", "Alice", "42", "Alice@42", []byte("$2a$10$hash"), "student").
		WillReturnError(errors.New("db down"))

	err := repo.Create(context.Background(), testAccount())
	if err == nil || !regexp.MustCompile(`db error: .*db down`).MatchString(err.Error()) {
		t.Fatalf("expected wrapped db error, got %v", err)
	}
}

func TestGetByLogin_Found(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	rows := sqlmock.NewRows([]string{"id", "student_name", "student_id", "login_name", "password_hash", "role"}).
		AddRow("a-1", "Alice", "42", "Alice@42", []byte("$2a$10$hash"), "instructor")
	mock.ExpectQuery(selectQ).
		WithArgs("Alice@42").
		WillReturnRows(rows)

	got, err := repo.GetByLogin(context.Background(), "Alice@42")
	if err != nil {
		t.Fatalf("GetByLogin error: %v", err)
	}
	if got.ID != "a-1" || got.LoginName != "Alice@42" || got.Role != RoleInstructor {
		t.Fatalf("unexpected account: %+v", got)
	}
}

func TestGetByLogin_NotFound(t *testing.T) {
	repo, mock, db := newRepoWithMock(t)
	defer db.Close()

	mock.ExpectQuery(selectQ).
		WithArgs("ghost").
		WillReturnError(sql.ErrNoRows)

	_, err := repo.GetByLogin(context.Background(), "ghost")
	if !errors.Is(err, common.ErrorNotFound) {
		t.Fatalf("expected ErrorNotFound, got %v", err)
	}
}
