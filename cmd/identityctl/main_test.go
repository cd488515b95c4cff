package main

import (
	"bytes"
	"errors"
	"io"
	"net/http"
	"strings"
	"testing"
)

type stubDoer struct {
	status  int
	body    string
	err     error
	lastURL string
	lastReq string
}

func (d *stubDoer) Do(req *http.Request) (*http.Response, error) {
	d.lastURL = req.URL.String()
	raw, _ := io.ReadAll(req.Body)
	d.lastReq = string(raw)
	if d.err != nil {
		return nil, d.err
	}
	return &http.Response{
		Status:     http.StatusText(d.status),
		StatusCode: d.status,
		Body:       io.NopCloser(strings.NewReader(d.body)),
		Request:    req,
	}, nil
}

func TestRun_Commands(t *testing.T) {
	cases := []struct {
		name     string
		args     []string
		wantURL  string
		wantBody string
	}{
		{
			name:     "login",
			args:     []string{"-config", "", "-host", "http://id.test/api/", "login", "-username", "alice", "-password", "secret"},
			wantURL:  "http://id.test/api/login",
			wantBody: `{"username":"alice","password":"secret"}`,
		},
		{
			name:     "signup",
			args:     []string{"-host", "http://id.test", "signup", "-username", "bob", "-email", "bob@x.io", "-password", "pw"},
			wantURL:  "http://id.test/signup",
			wantBody: `{"username":"bob","email":"bob@x.io","password":"pw"}`,
		},
		{
			name:     "auth",
			args:     []string{"-host", "http://id.test", "auth", "-token", "tok"},
			wantURL:  "http://id.test/auth",
			wantBody: `{"token":"tok"}`,
		},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			doer := &stubDoer{status: http.StatusOK, body: `{"ok":true}`}
			var stdout, stderr bytes.Buffer

			if code := run(tc.args, &stdout, &stderr, doer); code != 0 {
				t.Fatalf("exit code %d, stderr=%s", code, stderr.String())
			}
			if doer.lastURL != tc.wantURL {
				t.Fatalf("url: got %q, want %q", doer.lastURL, tc.wantURL)
			}
			if doer.lastReq != tc.wantBody {
				t.Fatalf("body: got %s, want %s", doer.lastReq, tc.wantBody)
			}
			if !strings.Contains(stdout.String(), `{"ok":true}`) {
				t.Fatalf("response body not printed: %q", stdout.String())
			}
		})
	}
}

func TestRun_ErrorStatusIsPrintedNotFailed(t *testing.T) {
	doer := &stubDoer{status: http.StatusUnauthorized, body: `{"error":"invalid credentials"}`}
	var stdout, stderr bytes.Buffer

	code := run([]string{"-host", "http://id.test", "login", "-username", "u", "-password", "x"}, &stdout, &stderr, doer)
	if code != 0 {
		t.Fatalf("exit code %d, want 0", code)
	}
	if !strings.Contains(stdout.String(), "Unauthorized") {
		t.Fatalf("status not printed: %q", stdout.String())
	}
}

func TestRun_TransportFailure(t *testing.T) {
	doer := &stubDoer{err: errors.New("connection refused")}
	var stdout, stderr bytes.Buffer

	if code := run([]string{"-host", "http://id.test", "auth", "-token", "t"}, &stdout, &stderr, doer); code != 1 {
		t.Fatalf("exit code %d, want 1", code)
	}
	if !strings.Contains(stderr.String(), "connection refused") {
		t.Fatalf("cause not reported: %q", stderr.String())
	}
}

func TestRun_Usage(t *testing.T) {
	for _, args := range [][]string{
		{},
		{"logout"},
		{"login", "-nope"},
	} {
		var stdout, stderr bytes.Buffer
		if code := run(args, &stdout, &stderr, &stubDoer{status: http.StatusOK}); code != 2 {
			t.Fatalf("args %v: exit code %d, want 2", args, code)
		}
	}
}
