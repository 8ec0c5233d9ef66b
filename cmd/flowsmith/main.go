package main

import (
	"context"
	"flag"
	"fmt"
	"log/slog"
	"os"
	"os/signal"
	"syscall"

	"github.com/rendis/flowsmith/internal/logging"
	flowmcp "github.com/rendis/flowsmith/pkg/mcp"
)

func main() {
	if len(os.Args) > 1 {
		switch os.Args[1] {
		case "version", "--version", "-v":
			printVersion()
		case "install":
			runInstall(os.Args[2:])
		case "check":
			runCheck(os.Args[2:])
		case "render":
			runRender(os.Args[2:])
		case "serve":
			runServe(os.Args[2:])
		case "help", "--help", "-h":
			usage()
		default:
			fmt.Fprintf(os.Stderr, "unknown command %q\n", os.Args[1])
			usage()
			os.Exit(2)
		}
		return
	}

	// No subcommand: serve over the configured transport (stdio by default),
	// which is what MCP client configs invoke.
	runServe(nil)
}

func usage() {
	fmt.Fprintln(os.Stderr, `usage: flowsmith [command]

Commands:
  serve     start the MCP server (default when no command is given)
  check     analyze a description for flowchart completeness
  render    compile a description to Mermaid flowchart syntax
  install   write default settings to ~/.flowsmith/settings.json
  version   print the build version`)
}

func runServe(args []string) {
	fs := flag.NewFlagSet("serve", flag.ExitOnError)
	transport := fs.String("transport", "", "transport: stdio or sse (default from config)")
	toolset := fs.String("toolset", "", "toolset: full or diagram (default from config)")
	if err := fs.Parse(args); err != nil {
		os.Exit(1)
	}

	cfg := loadConfig()
	if *transport != "" {
		cfg.Transport = *transport
	}
	if *toolset != "" {
		cfg.Toolset = *toolset
	}

	logger := newLogger(cfg.LogLevel)

	srv := flowmcp.NewFlowsmithServer(flowmcp.FlowsmithServerDeps{
		Toolset: flowmcp.Toolset(cfg.Toolset),
		Logger:  logger,
	})

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	var err error
	switch cfg.Transport {
	case "sse":
		logger.Info("serving MCP over SSE",
			slog.String("addr", cfg.ListenAddr),
			slog.String("toolset", cfg.Toolset))
		err = srv.ServeSSE(ctx, cfg.ListenAddr, cfg.BaseURL)
	default:
		err = srv.Serve(ctx)
	}
	if err != nil && ctx.Err() == nil {
		logger.Error("server exited", slog.String("error", err.Error()))
		os.Exit(1)
	}
}

// newLogger builds the process logger. Logs go to stderr so the stdio
// transport keeps stdout clean for the protocol stream.
func newLogger(level string) *slog.Logger {
	var lvl slog.Level
	switch level {
	case "debug":
		lvl = slog.LevelDebug
	case "warn":
		lvl = slog.LevelWarn
	case "error":
		lvl = slog.LevelError
	default:
		lvl = slog.LevelInfo
	}
	inner := slog.NewTextHandler(os.Stderr, &slog.HandlerOptions{Level: lvl})
	return slog.New(logging.NewCorrelationHandler(inner))
}
