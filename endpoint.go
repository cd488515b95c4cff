package identity_client

import (
	"net/url"
	"strings"
	"unicode/utf8"
)

// Endpoint names, appended to the host as a single path segment.
const (
	EndpointLogin  = "login"
	EndpointSignup = "signup"
	EndpointAuth   = "auth"
)

const pathSeparator = "/"

// JoinEndpoint composes {host}/{endpoint}. Trailing separators on host are
// collapsed so exactly one separates the two parts; ".." is left as is.
// Failures are returned as *URLCompositionError.
func JoinEndpoint(host, endpoint string) (string, error) {
	if endpoint == "" || strings.Contains(endpoint, pathSeparator) {
		return "", &URLCompositionError{Host: host, Endpoint: endpoint, Err: ErrInvalidEndpoint}
	}

	joined := strings.TrimRight(host, pathSeparator) + pathSeparator + endpoint
	if !utf8.ValidString(joined) {
		return "", &URLCompositionError{Host: host, Endpoint: endpoint, Err: ErrInvalidUTF8}
	}
	if _, err := url.Parse(joined); err != nil {
		return "", &URLCompositionError{Host: host, Endpoint: endpoint, Err: err}
	}
	return joined, nil
}
