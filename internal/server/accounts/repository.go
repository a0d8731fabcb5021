package accounts

import (
	"context"
)

// Repository is the credential store contract. Implementations must
// enforce login-name uniqueness atomically with respect to concurrent
// inserts: of two simultaneous Create calls with the same login name,
// exactly one succeeds and the other gets common.ErrorDuplicateLogin.
type Repository interface {
	Create(ctx context.Context, account *Account) error
	GetByLogin(ctx context.Context, loginName string) (*Account, error)
}
