// twi-translator serves a rule-based English→Twi translation demo: a JSON
// API plus a small web form, backed by a CSV dictionary and a context-free
// grammar with per-request proper-noun rules.
package main

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/spf13/cobra"

	"github.com/akanlabs/twi-translator/internal/config"
	"github.com/akanlabs/twi-translator/internal/httpapi"
	"github.com/akanlabs/twi-translator/internal/service"
	"github.com/akanlabs/twi-translator/pkg/log"
)

// Version information (set via -ldflags during build)
var (
	version = "dev"
	commit  = "none"
	date    = "unknown"
)

func newRootCmd() *cobra.Command {
	root := &cobra.Command{
		Use:           "twi-translator",
		Short:         "English to Twi translator web app",
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	root.AddCommand(newServeCmd(), newVersionCmd())
	return root
}

func newVersionCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Printf("twi-translator %s (commit %s, built %s)\n", version, commit, date)
		},
	}
}

func newServeCmd() *cobra.Command {
	var (
		host string
		port int
	)

	cmd := &cobra.Command{
		Use:   "serve",
		Short: "Start the translation web server",
		RunE: func(cmd *cobra.Command, args []string) error {
			var opts []config.Option
			if cmd.Flags().Changed("host") {
				opts = append(opts, func(c *config.Config) { c.HTTP.Host = host })
			}
			if cmd.Flags().Changed("port") {
				opts = append(opts, func(c *config.Config) { c.HTTP.Port = port })
			}

			cfg, err := config.New(opts...)
			if err != nil {
				return fmt.Errorf("load configuration: %w", err)
			}
			log.InitLogger(log.ParseLevel(cfg.System.LogLevel))

			return serve(cfg)
		},
	}

	cmd.Flags().StringVar(&host, "host", "0.0.0.0", "listen address")
	cmd.Flags().IntVar(&port, "port", 7860, "listen port")
	return cmd
}

func serve(cfg *config.Config) error {
	svc := service.New(cfg)
	srv := httpapi.NewServer(svc, httpapi.WithUI(cfg.UI.StaticDir, cfg.UI.Enabled))

	if cfg.Dict.CheckCron != "" {
		c := cron.New()
		if _, err := c.AddFunc(cfg.Dict.CheckCron, svc.CheckDictionary); err != nil {
			return fmt.Errorf("invalid DICT_CHECK_CRON %q: %w", cfg.Dict.CheckCron, err)
		}
		c.Start()
		defer c.Stop()
		log.Info("dictionary health check scheduled: %s", cfg.Dict.CheckCron)
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)
	go func() {
		errCh <- srv.Start(cfg.HTTP.Addr())
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}
		return err
	case <-ctx.Done():
		log.Info("shutting down")
		shutdownCtx, cancel := context.WithTimeout(context.Background(), 10*time.Second)
		defer cancel()
		return srv.Shutdown(shutdownCtx)
	}
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		log.Fatal("%v", err)
	}
}
