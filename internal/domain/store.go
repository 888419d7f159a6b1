package domain

import "context"

// Ledger store document keys. The ledger holds two flat documents: the
// accounts-by-id mapping and the kills-by-month mapping.
const (
	DocAccounts = "accounts"
	DocKills    = "kills"
)

// LedgerStore is the key-value persistence behind accounts and the kill
// board. Set must not be assumed synchronously durable; backends flush
// eventually. Absent keys yield found == false and leave out untouched.
type LedgerStore interface {
	Get(ctx context.Context, key string, out interface{}) (found bool, err error)
	Set(ctx context.Context, key string, value interface{}) error
	Flush(ctx context.Context) error
	Close(ctx context.Context) error
}
