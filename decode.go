package identity_client

import (
	"bytes"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"path"
)

// DecodeResponse reads resp.Body, closes it, and decodes it into T. The body
// must match T exactly: unknown fields and trailing data are rejected.
// The status code is not looked at; check resp.StatusCode first.
func DecodeResponse[T any](resp *http.Response) (T, error) {
	var out T
	if resp == nil || resp.Body == nil {
		return out, &SerializationError{Op: "decode", Err: io.ErrUnexpectedEOF}
	}
	defer resp.Body.Close()

	endpoint, target := "", ""
	if resp.Request != nil && resp.Request.URL != nil {
		target = resp.Request.URL.String()
		endpoint = path.Base(resp.Request.URL.Path)
	}

	raw, err := io.ReadAll(resp.Body)
	if err != nil {
		return out, &TransportError{Op: "read", Endpoint: endpoint, URL: target, Err: err}
	}
	if err := decodeStrict(raw, &out); err != nil {
		return out, &SerializationError{Op: "decode", Endpoint: endpoint, Err: err}
	}
	return out, nil
}

// DecodeLogin decodes the body of a Login response.
func DecodeLogin(resp *http.Response) (LoginResponse, error) {
	return DecodeResponse[LoginResponse](resp)
}

// DecodeSignup decodes the body of a Signup response.
func DecodeSignup(resp *http.Response) (SignupResponse, error) {
	return DecodeResponse[SignupResponse](resp)
}

// DecodeAuth decodes the body of an Auth response.
func DecodeAuth(resp *http.Response) (AuthResponse, error) {
	return DecodeResponse[AuthResponse](resp)
}

func decodeStrict(raw []byte, dst any) error {
	dec := json.NewDecoder(bytes.NewReader(raw))
	dec.DisallowUnknownFields()
	if err := dec.Decode(dst); err != nil {
		return err
	}
	if err := dec.Decode(&json.RawMessage{}); err != io.EOF {
		return errors.New("trailing data after json value")
	}
	return nil
}
