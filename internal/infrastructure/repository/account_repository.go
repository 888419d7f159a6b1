package repository

import (
	"context"
	"sync"
	"time"

	"github.com/dkazmin/casinobot/internal/domain"
)

// AccountRepository implements domain.AccountRepository over the ledger
// store's accounts document. The whole document is read-modified-written,
// so a repository-level mutex keeps concurrent saves from clobbering each
// other's entries.
type AccountRepository struct {
	store domain.LedgerStore
	mu    sync.Mutex
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(store domain.LedgerStore) domain.AccountRepository {
	return &AccountRepository{store: store}
}

func (r *AccountRepository) loadDoc(ctx context.Context) (map[string]*domain.Account, error) {
	accounts := make(map[string]*domain.Account)
	if _, err := r.store.Get(ctx, domain.DocAccounts, &accounts); err != nil {
		return nil, domain.NewStoreError("load accounts", err)
	}
	return accounts, nil
}

func (r *AccountRepository) saveDoc(ctx context.Context, accounts map[string]*domain.Account) error {
	if err := r.store.Set(ctx, domain.DocAccounts, accounts); err != nil {
		return domain.NewStoreError("save accounts", err)
	}
	return nil
}

// Get returns the account for userID, or nil if it does not exist
func (r *AccountRepository) Get(userID string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	accounts, err := r.loadDoc(context.Background())
	if err != nil {
		return nil, err
	}
	return accounts[userID], nil
}

// GetOrCreate returns the existing account or creates one with the
// starting balance, persisting immediately.
func (r *AccountRepository) GetOrCreate(userID string) (*domain.Account, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx := context.Background()
	accounts, err := r.loadDoc(ctx)
	if err != nil {
		return nil, err
	}

	if account, ok := accounts[userID]; ok {
		return account, nil
	}

	now := time.Now()
	account := &domain.Account{
		UserID:    userID,
		Balance:   domain.StartingBalance,
		CreatedAt: now,
		UpdatedAt: now,
	}
	accounts[userID] = account

	if err := r.saveDoc(ctx, accounts); err != nil {
		return nil, err
	}
	return account, nil
}

// Save persists a single account
func (r *AccountRepository) Save(account *domain.Account) error {
	return r.SaveAll(account)
}

// SaveAll persists several accounts in one document write, so a duel
// settlement lands for both participants or for neither.
func (r *AccountRepository) SaveAll(updated ...*domain.Account) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx := context.Background()
	accounts, err := r.loadDoc(ctx)
	if err != nil {
		return err
	}

	for _, account := range updated {
		accounts[account.UserID] = account
	}

	return r.saveDoc(ctx, accounts)
}
