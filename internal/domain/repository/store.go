package repository

import "context"

// Store is the persistence port for the whole application: a key-value store
// holding JSON documents under fixed keys. Directories read a full document,
// mutate it in memory and write it back.
//
// Get reports found=false both when the key is unset and when the stored
// bytes fail to decode into dest. Malformed state reads as "no state" so the
// service stays usable even over a corrupted store; backend errors (network,
// I/O) are still returned.
type Store interface {
	Get(ctx context.Context, key string, dest any) (bool, error)
	Set(ctx context.Context, key string, value any) error
	Remove(ctx context.Context, key string) error
}
