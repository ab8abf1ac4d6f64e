// Package schema guards database schema initialization behind a process-wide
// one-shot latch. The startup goroutine and user-triggered operations may
// call Ensure concurrently; only the first caller runs the migration while
// the rest wait for its result.
package schema

import (
	"context"
	"fmt"
	"sync"

	"github.com/uelms-project/uelms/internal/common"
)

// Ensurer runs a migration function at most once per successful completion.
// A failed run leaves the latch open so a later user action can retry;
// idempotency across retries comes from the migration itself (goose version
// table plus IF NOT EXISTS DDL).
type Ensurer struct {
	mu   sync.Mutex
	done bool
	run  func(ctx context.Context) error
}

func NewEnsurer(run func(ctx context.Context) error) *Ensurer {
	return &Ensurer{run: run}
}

// Ensure applies the schema if it has not been applied yet in this process.
// Concurrent callers block until the in-flight run finishes and then share
// its outcome. Failures are reported as common.ErrorSchema.
func (e *Ensurer) Ensure(ctx context.Context) error {
	e.mu.Lock()
	defer e.mu.Unlock()

	if e.done {
		return nil
	}

	if err := e.run(ctx); err != nil {
		return fmt.Errorf("%w: %v", common.ErrorSchema, err)
	}

	e.done = true
	return nil
}
