package identity_client

import (
	"errors"
	"fmt"
)

// Error is implemented by the three failure kinds a call can surface:
// *SerializationError, *URLCompositionError and *TransportError.
// The set is closed; match on it with errors.As.
type Error interface {
	error
	Unwrap() error
	identityError()
}

var (
	_ Error = (*SerializationError)(nil)
	_ Error = (*URLCompositionError)(nil)
	_ Error = (*TransportError)(nil)
)

// Sentinel causes produced by URL composition.
var (
	ErrInvalidUTF8     = errors.New("composed url is not valid utf-8")
	ErrInvalidEndpoint = errors.New("endpoint must be a single non-empty path segment")
)

// ErrInvalidFieldUTF8 is the cause of a SerializationError for a request
// field that is not valid UTF-8.
var ErrInvalidFieldUTF8 = errors.New("request field is not valid utf-8")

// SerializationError reports a request that could not be encoded or a
// response body that could not be decoded.
type SerializationError struct {
	Op       string // "encode" or "decode"
	Endpoint string
	Err      error
}

func (e *SerializationError) Error() string {
	return fmt.Sprintf("identity %s: %s json: %v", e.Endpoint, e.Op, e.Err)
}

func (e *SerializationError) Unwrap() error { return e.Err }
func (*SerializationError) identityError() {}

// URLCompositionError reports that {host}/{endpoint} could not be built.
type URLCompositionError struct {
	Host     string
	Endpoint string
	Err      error
}

func (e *URLCompositionError) Error() string {
	return fmt.Sprintf("identity %s: compose url from host %q: %v", e.Endpoint, e.Host, e.Err)
}

func (e *URLCompositionError) Unwrap() error { return e.Err }
func (*URLCompositionError) identityError() {}

// TransportError wraps a failure of the HTTP exchange itself. HTTP status
// codes are never turned into a TransportError.
type TransportError struct {
	Op       string // "post" or "read"
	Endpoint string
	URL      string
	Err      error
}

func (e *TransportError) Error() string {
	return fmt.Sprintf("identity %s: %s %s: %v", e.Endpoint, e.Op, e.URL, e.Err)
}

func (e *TransportError) Unwrap() error { return e.Err }
func (*TransportError) identityError() {}

// IsSerialization reports whether err is or wraps a *SerializationError.
func IsSerialization(err error) bool {
	var target *SerializationError
	return errors.As(err, &target)
}

// IsURLComposition reports whether err is or wraps a *URLCompositionError.
func IsURLComposition(err error) bool {
	var target *URLCompositionError
	return errors.As(err, &target)
}

// IsTransport reports whether err is or wraps a *TransportError.
func IsTransport(err error) bool {
	var target *TransportError
	return errors.As(err, &target)
}
