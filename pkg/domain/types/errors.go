package types

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidOption    = goerr.New("invalid option")
	ErrValidationFailed = goerr.New("validation failed")

	// ErrNetwork is a transport or deserialization failure of a GitHub request
	ErrNetwork = goerr.New("network error")
	// ErrAuth means GitHub rejected the credentials (token exchange or API call)
	ErrAuth = goerr.New("authentication rejected")
	// ErrUnauthenticated means no access token is stored for an authenticated call
	ErrUnauthenticated = goerr.New("not signed in")
	ErrNotFound        = goerr.New("not found")
	// ErrEmptyResult is the "no search result" condition. It is not a failure of the request.
	ErrEmptyResult = goerr.New("no search result")

	ErrMissingCode      = goerr.New("no code in redirect")
	ErrMissingLoginData = goerr.New("no login or repository name")
	ErrInvalidQuery     = goerr.New("search query is empty")
	ErrInvalidState     = goerr.New("invalid state transition")
)
