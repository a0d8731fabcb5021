package accounts

import (
	"context"
	"sync"

	"github.com/dmitrijs2005/labkeeper/internal/common"
)

// MemoryRepository is a map-backed Repository used in tests and local
// development. A mutex around the map makes Create atomic, so concurrent
// inserts with the same login name still produce exactly one success.
type MemoryRepository struct {
	mu       sync.Mutex
	accounts map[string]*Account
}

func NewMemoryRepository() *MemoryRepository {
	return &MemoryRepository{accounts: make(map[string]*Account)}
}

func (r *MemoryRepository) Create(ctx context.Context, account *Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, ok := r.accounts[account.LoginName]; ok {
		return common.ErrorDuplicateLogin
	}

	stored := *account
	r.accounts[account.LoginName] = &stored
	return nil
}

func (r *MemoryRepository) GetByLogin(ctx context.Context, loginName string) (*Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	account, ok := r.accounts[loginName]
	if !ok {
		return nil, common.ErrorNotFound
	}

	found := *account
	return &found, nil
}
