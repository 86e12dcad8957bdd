package outbound

import "context"

// MemoryPort is the external memory/context service. Both operations are
// best-effort: callers log failures and carry on without context.
type MemoryPort interface {
	Search(ctx context.Context, userID string, query string) (string, error)
	Add(ctx context.Context, userID string, content string) error
}
