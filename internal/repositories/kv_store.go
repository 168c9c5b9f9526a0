package repositories

import "context"

// KVStore is the persistence seam shared by settings and plans. Get reports
// whether the key exists; a missing key is not an error.
type KVStore interface {
	Get(ctx context.Context, key string) (string, bool, error)
	Set(ctx context.Context, key, value string) error
	// Delete removes key; deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
}
