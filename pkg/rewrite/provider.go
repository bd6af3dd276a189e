// Package rewrite is the gateway to the note-rewriting model. The rest of
// the system treats it as an opaque text transform; the only failure detail
// that leaks out is whether the upstream throttled us.
package rewrite

import (
	"context"
	"errors"
)

// ErrRateLimited marks an upstream 429. Callers surface a distinct
// "try again later" message for it.
var ErrRateLimited = errors.New("rewrite provider rate limited")

// Provider rewrites a raw note into a cleaner, structured version.
type Provider interface {
	Rewrite(ctx context.Context, note string) (string, error)
}
