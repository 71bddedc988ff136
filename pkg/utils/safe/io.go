package safe

import (
	"context"
	"database/sql"
	"errors"
	"io"
	"log/slog"

	"github.com/m-mizutani/octosearch/pkg/utils/logging"
)

// Close closes the resource and logs the error with the logger of ctx
func Close(ctx context.Context, closer io.Closer) {
	if closer == nil {
		return
	}
	if err := closer.Close(); err != nil && !errors.Is(err, io.EOF) {
		logging.From(ctx).Warn("failed to close resource", slog.Any("error", err))
	}
}

// Rollback rolls back tx unless it is already committed
func Rollback(ctx context.Context, tx *sql.Tx) {
	if tx == nil {
		return
	}
	if err := tx.Rollback(); err != nil && !errors.Is(err, sql.ErrTxDone) {
		logging.From(ctx).Warn("failed to rollback transaction", slog.Any("error", err))
	}
}
