package catalog

import "errors"

// Every failure in a run wraps exactly one of these, so callers can
// classify with errors.Is. None of them is retried.
var (
	ErrInvalidConfig        = errors.New("invalid config")
	ErrMissingCredential    = errors.New("missing credential")
	ErrInvalidHeaderValue   = errors.New("invalid header value")
	ErrTransport            = errors.New("transport error")
	ErrDecode               = errors.New("decode error")
	ErrUnsuccessfulResponse = errors.New("unsuccessful response")
	ErrExportIO             = errors.New("export io error")
)
