package esdex

import (
	"errors"

	"github.com/kailas-cloud/esdex/internal/transport"
)

// ErrInvalidResponse reports a response body that does not match the
// expected envelope shape. Errors returned by result decoding wrap it.
var ErrInvalidResponse = errors.New("esdex: response shape invalid")

// ErrNoSource reports a typed decode of a hit or document that carries no
// source.
var ErrNoSource = errors.New("esdex: no source document")

// StatusError is returned by the default HTTP transport when the engine
// answers with a non-2xx status.
type StatusError = transport.StatusError

// IsNotFound reports whether err is a StatusError with status 404.
func IsNotFound(err error) bool {
	var se *StatusError
	return errors.As(err, &se) && se.StatusCode == 404
}
