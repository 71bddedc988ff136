package errutil

import (
	"context"
	"errors"
	"fmt"

	"github.com/getsentry/sentry-go"
	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/utils/logging"
)

// HandleError logs err and sends it to Sentry. Canceled work is only logged at debug level.
func HandleError(ctx context.Context, msg string, err error) {
	if err == nil {
		return
	}
	if errors.Is(err, context.Canceled) {
		logging.From(ctx).Debug(msg, "error", err)
		return
	}

	hub := sentry.CurrentHub().Clone()
	hub.ConfigureScope(func(scope *sentry.Scope) {
		if goErr := goerr.Unwrap(err); goErr != nil {
			for k, v := range goErr.Values() {
				scope.SetExtra(fmt.Sprintf("%v", k), v)
			}
		}
	})
	evID := hub.CaptureException(err)

	logging.From(ctx).Error(msg,
		"error", err,
		"sentry.EventID", evID,
	)
}
