package identity_client

import (
	"errors"
	"strings"
	"testing"

	"github.com/leanovate/gopter"
	"github.com/leanovate/gopter/gen"
	"github.com/leanovate/gopter/prop"
)

func TestJoinEndpoint(t *testing.T) {
	tests := []struct {
		name     string
		host     string
		endpoint string
		want     string
		wantErr  error
	}{
		{name: "origin", host: "http://id.local", endpoint: "login", want: "http://id.local/login"},
		{name: "origin with slash", host: "http://id.local/", endpoint: "login", want: "http://id.local/login"},
		{name: "prefix", host: "https://id.local/api/v1", endpoint: "signup", want: "https://id.local/api/v1/signup"},
		{name: "repeated slashes", host: "https://id.local/api//", endpoint: "auth", want: "https://id.local/api/auth"},
		{name: "dot segments kept", host: "http://id.local/a/../b", endpoint: "auth", want: "http://id.local/a/../b/auth"},
		{name: "bare path", host: "/srv/identity", endpoint: "login", want: "/srv/identity/login"},
		{name: "empty host", host: "", endpoint: "login", want: "/login"},
		{name: "invalid utf-8", host: "http://id.local/\xc3\x28", endpoint: "login", wantErr: ErrInvalidUTF8},
		{name: "empty endpoint", host: "http://id.local", endpoint: "", wantErr: ErrInvalidEndpoint},
		{name: "nested endpoint", host: "http://id.local", endpoint: "a/b", wantErr: ErrInvalidEndpoint},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := JoinEndpoint(tt.host, tt.endpoint)
			if tt.wantErr != nil {
				if !errors.Is(err, tt.wantErr) {
					t.Fatalf("expected %v, got %v", tt.wantErr, err)
				}
				if !IsURLComposition(err) {
					t.Fatalf("expected URLCompositionError, got %T", err)
				}
				return
			}
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if got != tt.want {
				t.Fatalf("got %q, want %q", got, tt.want)
			}
		})
	}
}

func TestJoinEndpoint_UnparsableURL(t *testing.T) {
	_, err := JoinEndpoint("http://id.local/%zz", "login")
	if !IsURLComposition(err) {
		t.Fatalf("expected URLCompositionError, got %T: %v", err, err)
	}
}

func TestJoinEndpointProperties(t *testing.T) {
	parameters := gopter.DefaultTestParameters()
	parameters.MinSuccessfulTests = 200
	properties := gopter.NewProperties(parameters)

	hostGen := gen.Identifier().Map(func(s string) string { return "http://" + s + ".local/" + s })
	endpointGen := gen.OneConstOf(EndpointLogin, EndpointSignup, EndpointAuth)

	properties.Property("single separator between host and endpoint", prop.ForAll(
		func(host, endpoint string, trailing bool) bool {
			if trailing {
				host += "/"
			}
			got, err := JoinEndpoint(host, endpoint)
			if err != nil {
				return false
			}
			return strings.HasPrefix(got, host) &&
				strings.HasSuffix(got, "/"+endpoint) &&
				!strings.HasSuffix(got, "//"+endpoint) &&
				got == strings.TrimSuffix(host, "/")+"/"+endpoint
		},
		hostGen,
		endpointGen,
		gen.Bool(),
	))

	properties.TestingRun(t)
}
