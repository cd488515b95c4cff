package identity_client

import (
	"errors"
	"io"
	"net/http"
	"net/url"
	"strings"
	"testing"
)

type errReader struct{ err error }

func (r errReader) Read([]byte) (int, error) { return 0, r.err }

func newResponse(path, body string) *http.Response {
	return &http.Response{
		StatusCode: http.StatusOK,
		Body:       io.NopCloser(strings.NewReader(body)),
		Request:    &http.Request{URL: &url.URL{Scheme: "http", Host: "id.local", Path: path}},
	}
}

func TestDecodeAuth(t *testing.T) {
	resp := newResponse("/auth", `{"user":{"id":3,"username":"alice","email":"alice@example.com"}}`)
	out, err := DecodeAuth(resp)
	if err != nil {
		t.Fatalf("DecodeAuth: %v", err)
	}
	want := User{ID: 3, Username: "alice", Email: "alice@example.com"}
	if out.User != want {
		t.Fatalf("got %+v, want %+v", out.User, want)
	}
}

func TestDecodeResponse_Errors(t *testing.T) {
	tests := []struct {
		name     string
		resp     *http.Response
		wantSer  bool
		wantRead bool
	}{
		{name: "unknown field", resp: newResponse("/login", `{"token":"t","extra":1}`), wantSer: true},
		{name: "wrong type", resp: newResponse("/signup", `{"token":42}`), wantSer: true},
		{name: "not json", resp: newResponse("/login", `<html>oops</html>`), wantSer: true},
		{name: "trailing data", resp: newResponse("/login", `{"token":"t"} junk`), wantSer: true},
		{name: "trailing brace", resp: newResponse("/login", `{"token":"t"}}`), wantSer: true},
		{name: "trailing brackets", resp: newResponse("/login", `{"token":"t"}]]]`), wantSer: true},
		{name: "second value", resp: newResponse("/login", `{"token":"t"}{"token":"u"}`), wantSer: true},
		{name: "empty body", resp: newResponse("/login", ``), wantSer: true},
		{name: "nil response", resp: nil, wantSer: true},
		{
			name: "body read failure",
			resp: &http.Response{
				Body:    io.NopCloser(errReader{err: errors.New("reset by peer")}),
				Request: &http.Request{URL: &url.URL{Path: "/login"}},
			},
			wantRead: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := DecodeLogin(tt.resp)
			if err == nil {
				t.Fatalf("expected error, got nil")
			}
			if tt.wantSer && !IsSerialization(err) {
				t.Fatalf("expected SerializationError, got %T: %v", err, err)
			}
			if tt.wantRead {
				var te *TransportError
				if !errors.As(err, &te) || te.Op != "read" {
					t.Fatalf("expected read TransportError, got %T: %v", err, err)
				}
			}
		})
	}
}

func TestDecodeResponse_TrailingWhitespaceAllowed(t *testing.T) {
	out, err := DecodeLogin(newResponse("/login", "{\"token\":\"t\"}\n  "))
	if err != nil {
		t.Fatalf("DecodeLogin: %v", err)
	}
	if out.Token != "t" {
		t.Fatalf("token: got %q", out.Token)
	}
}

func TestDecodeResponse_EndpointFromRequest(t *testing.T) {
	_, err := DecodeSignup(newResponse("/api/signup", `{"nope":true}`))
	var se *SerializationError
	if !errors.As(err, &se) {
		t.Fatalf("expected SerializationError, got %T", err)
	}
	if se.Endpoint != EndpointSignup || se.Op != "decode" {
		t.Fatalf("unexpected error context: %+v", se)
	}
}
