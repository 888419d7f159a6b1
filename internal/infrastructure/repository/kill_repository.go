package repository

import (
	"context"
	"sync"

	"github.com/dkazmin/casinobot/internal/domain"
)

// killsDoc is the shape of the kills ledger document: month key to board
type killsDoc map[string]domain.MonthBoard

// KillRepository implements domain.KillRepository over the ledger store's
// kills document.
type KillRepository struct {
	store domain.LedgerStore
	mu    sync.Mutex
}

// NewKillRepository creates a new kill-board repository
func NewKillRepository(store domain.LedgerStore) domain.KillRepository {
	return &KillRepository{store: store}
}

func (r *KillRepository) loadDoc(ctx context.Context) (killsDoc, error) {
	doc := make(killsDoc)
	if _, err := r.store.Get(ctx, domain.DocKills, &doc); err != nil {
		return nil, domain.NewStoreError("load kills", err)
	}
	return doc, nil
}

// GetMonth returns the board for the month, or an empty board if absent
func (r *KillRepository) GetMonth(month string) (domain.MonthBoard, error) {
	r.mu.Lock()
	defer r.mu.Unlock()

	doc, err := r.loadDoc(context.Background())
	if err != nil {
		return nil, err
	}

	board, ok := doc[month]
	if !ok {
		return make(domain.MonthBoard), nil
	}
	return board, nil
}

// SaveMonth persists the board for the month
func (r *KillRepository) SaveMonth(month string, board domain.MonthBoard) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	ctx := context.Background()
	doc, err := r.loadDoc(ctx)
	if err != nil {
		return err
	}

	doc[month] = board
	if err := r.store.Set(ctx, domain.DocKills, doc); err != nil {
		return domain.NewStoreError("save kills", err)
	}
	return nil
}
