// Package flow holds the state of the sign-in, search and repository detail
// screens. Front ends drive a flow and observe its state through channels.
package flow

import (
	"errors"

	"github.com/m-mizutani/octosearch/pkg/domain/types"
)

const (
	noSearchResult  = "No search result"
	unexpectedError = "Unexpected error."
)

// Message converts err into the text shown to the user
func Message(err error) string {
	switch {
	case err == nil:
		return ""
	case errors.Is(err, types.ErrEmptyResult):
		return noSearchResult
	}

	if msg := err.Error(); msg != "" {
		return msg
	}
	return unexpectedError
}
