package errutil_test

import (
	"context"
	"errors"
	"testing"

	"github.com/m-mizutani/goerr/v2"
	"github.com/m-mizutani/octosearch/pkg/utils/errutil"
)

func TestHandleError(t *testing.T) {
	ctx := context.Background()

	t.Run("handle plain error", func(t *testing.T) {
		errutil.HandleError(ctx, "test message", errors.New("test error"))
	})

	t.Run("handle goerr with values", func(t *testing.T) {
		err := goerr.New("test error", goerr.V("query", "octocat"))
		errutil.HandleError(ctx, "test message", err)
	})

	t.Run("handle canceled error", func(t *testing.T) {
		errutil.HandleError(ctx, "test message", goerr.Wrap(context.Canceled, "search superseded"))
	})

	t.Run("handle nil error", func(t *testing.T) {
		errutil.HandleError(ctx, "test message", nil)
	})
}
