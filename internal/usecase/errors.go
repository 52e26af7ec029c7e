package usecase

import "github.com/cockroachdb/errors"

var (
	ErrInvalidInput        = errors.New("invalid input")
	ErrNotFound            = errors.New("resource not found")
	ErrUpstreamUnavailable = errors.New("upstream unavailable")
	ErrUnexpectedShape     = errors.New("unexpected upstream shape")
)
