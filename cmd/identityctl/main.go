package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"net/http"
	"os"

	identity "identity_client"
	"identity_client/internal/config"
	"identity_client/internal/logger"
)

const usage = `usage: identityctl [-config dir] [-host url] <command> [flags]

commands:
  login   -username U -password P
  signup  -username U -email E -password P
  auth    -token T
`

var errUsage = errors.New("usage")

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr, nil))
}

// run executes one command. transport replaces the default HTTP client when
// non-nil. The exit code is 0 whenever a response came back, whatever its
// status; 1 for client errors and 2 for usage errors.
func run(args []string, stdout, stderr io.Writer, transport identity.Doer) int {
	global := flag.NewFlagSet("identityctl", flag.ContinueOnError)
	global.SetOutput(stderr)
	configDir := global.String("config", "configs", "directory holding config.yml")
	host := global.String("host", "", "identity service host (overrides config)")
	if err := global.Parse(args); err != nil {
		return 2
	}

	cfg, err := config.Load(*configDir)
	if err != nil {
		fmt.Fprintf(stderr, "identityctl: %v\n", err)
		return 1
	}
	if *host != "" {
		cfg.Host = *host
	}
	log := logger.Get(cfg.LogLevel)

	opts := []identity.Option{identity.WithLogger(log.SugaredLogger), identity.WithUserAgent("identityctl/1")}
	if transport != nil {
		opts = append(opts, identity.WithHTTPClient(transport))
	}
	client := identity.CreateClient(cfg.Host, opts...)

	ctx, cancel := context.WithTimeout(context.Background(), cfg.Timeout)
	defer cancel()

	resp, err := dispatch(ctx, client, global.Args(), stderr)
	if errors.Is(err, errUsage) {
		fmt.Fprint(stderr, usage)
		return 2
	}
	if err != nil {
		log.Errorw("identity_call_failed", "host", cfg.Host, "err", err)
		fmt.Fprintf(stderr, "identityctl: %v\n", err)
		return 1
	}
	defer resp.Body.Close()

	fmt.Fprintln(stdout, resp.Status)
	if _, err := io.Copy(stdout, resp.Body); err != nil {
		fmt.Fprintf(stderr, "identityctl: read response: %v\n", err)
		return 1
	}
	fmt.Fprintln(stdout)
	return 0
}

func dispatch(ctx context.Context, client *identity.IdentityClient, args []string, stderr io.Writer) (*http.Response, error) {
	if len(args) == 0 {
		return nil, errUsage
	}
	fs := flag.NewFlagSet(args[0], flag.ContinueOnError)
	fs.SetOutput(stderr)

	switch args[0] {
	case identity.EndpointLogin:
		var req identity.LoginRequest
		fs.StringVar(&req.Username, "username", "", "account name")
		fs.StringVar(&req.Password, "password", "", "account password")
		if err := fs.Parse(args[1:]); err != nil {
			return nil, errUsage
		}
		return client.Login(ctx, req)
	case identity.EndpointSignup:
		var req identity.SignupRequest
		fs.StringVar(&req.Username, "username", "", "account name")
		fs.StringVar(&req.Email, "email", "", "account email")
		fs.StringVar(&req.Password, "password", "", "account password")
		if err := fs.Parse(args[1:]); err != nil {
			return nil, errUsage
		}
		return client.Signup(ctx, req)
	case identity.EndpointAuth:
		var req identity.AuthRequest
		fs.StringVar(&req.Token, "token", "", "token to validate")
		if err := fs.Parse(args[1:]); err != nil {
			return nil, errUsage
		}
		return client.Auth(ctx, req)
	default:
		return nil, errUsage
	}
}
