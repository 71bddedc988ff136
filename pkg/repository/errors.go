package repository

import "github.com/m-mizutani/goerr/v2"

var (
	ErrInvalidInput = goerr.New("invalid input")
	// ErrCorrupted means a stored record could not be decoded
	ErrCorrupted = goerr.New("corrupted record")
)
