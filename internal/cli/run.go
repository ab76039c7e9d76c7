package cli

import (
	"context"
	"fmt"
	"net"
	"os"
	"os/signal"
	"strconv"
	"syscall"

	"github.com/Gunvolt24/sand_conformance/config"
	"github.com/Gunvolt24/sand_conformance/internal/app"
	"github.com/joho/godotenv"
	"github.com/spf13/cobra"
)

// RunOptions — флаги команды run; поверх конфигурации из окружения.
type RunOptions struct {
	Port int
}

// NewRunCommand — запуск HTTP-сервера.
func NewRunCommand(rootOpts *RootOptions) *cobra.Command {
	opts := &RunOptions{}

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Start the conformance HTTP server",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := loadRunConfig(rootOpts, opts)
			if err != nil {
				return err
			}

			ctx, stop := signal.NotifyContext(cmd.Context(), syscall.SIGINT, syscall.SIGTERM)
			defer stop()

			return runServer(ctx, cfg)
		},
	}

	cmd.Flags().IntVarP(&opts.Port, "port", "p", 0, "listen port (default: SANDCONF_HTTP_ADDR, :5000)")

	return cmd
}

// loadRunConfig — .env.local, окружение, затем флаги.
func loadRunConfig(rootOpts *RootOptions, opts *RunOptions) (*config.Config, error) {
	_ = godotenv.Load(".env.local")

	cfg, err := config.Load()
	if err != nil {
		return nil, fmt.Errorf("load config: %w", err)
	}
	if err := applyRunFlags(&cfg, rootOpts, opts); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func applyRunFlags(cfg *config.Config, rootOpts *RootOptions, opts *RunOptions) error {
	if opts.Port != 0 {
		if opts.Port < 0 || opts.Port > 65535 {
			return fmt.Errorf("invalid port %d", opts.Port)
		}
		host, _, err := net.SplitHostPort(cfg.HTTP.Addr)
		if err != nil {
			host = ""
		}
		cfg.HTTP.Addr = net.JoinHostPort(host, strconv.Itoa(opts.Port))
	}
	if rootOpts.Schema != "" {
		cfg.Schema.Path = rootOpts.Schema
	}
	return nil
}

func runServer(ctx context.Context, cfg *config.Config) error {
	a, cleanup, err := app.Bootstrap(ctx, cfg)
	if err != nil {
		return fmt.Errorf("bootstrap: %w", err)
	}
	defer cleanup()

	if err := a.Run(ctx); err != nil {
		fmt.Fprintf(os.Stderr, "server stopped with error: %v\n", err)
		return err
	}
	return nil
}
