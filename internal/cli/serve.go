package cli

import (
	"context"
	"fmt"
	"log/slog"
	"os"
	"strings"

	"github.com/aretw0/lifecycle"
	"github.com/aretw0/stategate"
	"github.com/aretw0/stategate/internal/config"
	"github.com/aretw0/stategate/internal/presentation/tui"
	httpAdapter "github.com/aretw0/stategate/pkg/adapters/http"
	mcpAdapter "github.com/aretw0/stategate/pkg/adapters/mcp"
	"github.com/aretw0/stategate/pkg/observability"
)

// ServeOptions configures the long-running commands.
type ServeOptions struct {
	Config config.Config
	Debug  bool
	// SSEPort serves MCP over SSE instead of stdio when non-zero.
	SSEPort int
}

func (o ServeOptions) setup(quiet bool) (*stategate.Engine, *slog.Logger, error) {
	level, err := o.Config.Level()
	if err != nil {
		return nil, nil, err
	}
	logger := createLogger(level, o.Debug, quiet)

	var metrics *observability.Metrics
	if o.Config.Metrics {
		metrics = observability.New()
	}

	eng, err := createEngine(o.Config.Definitions, logger, metrics)
	if err != nil {
		return nil, nil, err
	}
	return eng, logger, nil
}

// RunServe starts the HTTP API until ctx is cancelled or a signal arrives.
func RunServe(ctx context.Context, opts ServeOptions) error {
	eng, logger, err := opts.setup(false)
	if err != nil {
		return err
	}

	if tui.IsTerminal(os.Stdout) {
		tui.PrintBanner(os.Stdout, stategate.Version)
	}

	handlerOpts := []httpAdapter.Option{httpAdapter.WithLogger(logger)}
	if m := eng.Metrics(); m != nil {
		handlerOpts = append(handlerOpts, httpAdapter.WithMetrics(m))
	}
	handler := httpAdapter.NewHandler(eng.Registry(), handlerOpts...)

	// SIGINT/SIGTERM drain in-flight requests through Serve's graceful shutdown.
	runCtx := lifecycle.NewSignalContext(ctx)
	if err := httpAdapter.Serve(runCtx, opts.Config.Addr, handler, logger); err != nil {
		return fmt.Errorf("server error: %w", err)
	}
	logger.Info("server stopped", "addr", opts.Config.Addr, "gates", eng.Registry().Len())
	return nil
}

// RunMCP serves the registry to MCP clients over stdio, or SSE when a port is set.
func RunMCP(ctx context.Context, opts ServeOptions) error {
	// Stdout belongs to the protocol in stdio mode.
	eng, logger, err := opts.setup(opts.SSEPort == 0 && !opts.Debug)
	if err != nil {
		return err
	}

	mcpOpts := []mcpAdapter.Option{mcpAdapter.WithLogger(logger)}
	if m := eng.Metrics(); m != nil {
		mcpOpts = append(mcpOpts, mcpAdapter.WithMetrics(m))
	}
	srv := mcpAdapter.NewServer(eng.Registry(), strings.TrimSpace(stategate.Version), mcpOpts...)

	if opts.SSEPort != 0 {
		return srv.ServeSSE(lifecycle.NewSignalContext(ctx), opts.SSEPort)
	}
	return srv.ServeStdio()
}
