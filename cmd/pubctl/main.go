// Command pubctl is an operator CLI for the publishing API.
//
// Usage:
//
//	pubctl [flags] overview <workspace-id>
//	pubctl [flags] roster <workspace-id>
//	pubctl version
//
// Flags:
//
//	-api     API base URL (default $PUBCTL_API_URL or http://localhost:5000)
//	-token   bearer session token (default $PUBCTL_TOKEN)
//	-local   assemble the overview client-side instead of asking the server
//	-limit   concurrent requests for -local (default 8)
package main

import (
	"context"
	"encoding/json"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/inkhouse/publishing-backend/internal/app"
	"github.com/inkhouse/publishing-backend/internal/service/overview"
	"github.com/inkhouse/publishing-backend/pkg/apiclient"
)

var errUsage = errors.New("usage: pubctl [flags] overview|roster <workspace-id> | version")

func main() {
	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	if err := run(ctx, os.Args[1:], os.Stdout); err != nil {
		fmt.Fprintln(os.Stderr, "pubctl:", err)
		if errors.Is(err, errUsage) {
			os.Exit(2)
		}
		os.Exit(1)
	}
}

func run(ctx context.Context, args []string, out io.Writer) error {
	fs := flag.NewFlagSet("pubctl", flag.ContinueOnError)
	fs.SetOutput(io.Discard)
	apiURL := fs.String("api", envOr("PUBCTL_API_URL", "http://localhost:5000"), "API base URL")
	token := fs.String("token", os.Getenv("PUBCTL_TOKEN"), "bearer session token")
	local := fs.Bool("local", false, "assemble the overview client-side")
	limit := fs.Int("limit", overview.DefaultConcurrency, "concurrent requests for -local")
	if err := fs.Parse(args); err != nil {
		return fmt.Errorf("%w: %v", errUsage, err)
	}

	rest := fs.Args()
	if len(rest) == 0 {
		return errUsage
	}
	if rest[0] == "version" {
		_, err := fmt.Fprintln(out, app.BuildVersion())
		return err
	}
	if len(rest) != 2 {
		return errUsage
	}

	client := apiclient.New(*apiURL, apiclient.WithToken(*token))
	workspaceID := rest[1]

	var result any
	var err error
	switch rest[0] {
	case "overview":
		if *local {
			result, err = overview.NewAggregator(client, *limit).Build(ctx, workspaceID)
		} else {
			result, err = client.Overview(ctx, workspaceID)
		}
	case "roster":
		result, err = client.Roster(ctx, workspaceID)
	default:
		return errUsage
	}
	if err != nil {
		return err
	}

	enc := json.NewEncoder(out)
	enc.SetIndent("", "  ")
	return enc.Encode(result)
}

func envOr(key, fallback string) string {
	if v := os.Getenv(key); v != "" {
		return v
	}
	return fallback
}
