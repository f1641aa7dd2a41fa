package apperr

import (
	"context"

	"github.com/m-mizutani/ctxlog"
)

// Handle logs a top-level error through the context logger. Per-record
// problems never reach here; only precondition and CLI failures do.
func Handle(ctx context.Context, err error) {
	logger := ctxlog.From(ctx)
	logger.Error("command failed", "error", err)
}
