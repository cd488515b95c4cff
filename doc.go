// Package identity_client is a client for the identity service's login,
// signup and auth endpoints.
//
// Each call encodes a typed request as JSON, POSTs it to {host}/{endpoint}
// and returns the raw *http.Response. Decoding is left to the caller, see
// DecodeResponse and its typed shorthands. Status codes are passed through
// untouched: a 401 from the service is a successful call at this layer.
//
// # Errors
//
// Every failure is one of three types:
//
//   - [SerializationError]: the request could not be encoded, or a response
//     could not be decoded.
//   - [URLCompositionError]: {host}/{endpoint} could not be built. No network
//     I/O happened.
//   - [TransportError]: the HTTP exchange failed (DNS, refused connection,
//     context cancelled or timed out).
//
// Use errors.As to get at the underlying cause.
//
// # Thread Safety
//
// An [IdentityClient] is immutable once created and may be shared by any
// number of goroutines. It imposes no timeout; pass a context with a deadline.
package identity_client
