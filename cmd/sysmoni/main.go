// Command sysmoni is a terminal system monitor with JSON and Prometheus
// outputs.
package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"syscall"
	"time"

	"golang.org/x/sync/errgroup"

	"github.com/Dicklesworthstone/sysmoni/internal/apperrors"
	"github.com/Dicklesworthstone/sysmoni/internal/config"
	"github.com/Dicklesworthstone/sysmoni/internal/exporter"
	"github.com/Dicklesworthstone/sysmoni/internal/logging"
	"github.com/Dicklesworthstone/sysmoni/internal/sampler"
	"github.com/Dicklesworthstone/sysmoni/internal/source"
	"github.com/Dicklesworthstone/sysmoni/internal/ui"
)

func main() {
	if err := run(os.Args[1:]); err != nil {
		fmt.Fprintln(os.Stderr, "sysmoni:", err)
		os.Exit(1)
	}
}

func run(args []string) error {
	cfg, err := config.FromFlags(args)
	if errors.Is(err, flag.ErrHelp) {
		return nil
	}
	if err != nil {
		return err
	}

	log := newLogger(cfg)

	src := source.NewGopsutil()
	src.WithEnviron = cfg.WithEnviron
	s := sampler.New(src, sampler.WithLogger(log))

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()
	ctx, cancel := context.WithCancel(ctx)
	defer cancel()

	g, ctx := errgroup.WithContext(ctx)

	if cfg.MetricsAddr != "" {
		srv := &http.Server{
			Addr:              cfg.MetricsAddr,
			Handler:           metricsMux(s, log),
			ReadHeaderTimeout: 5 * time.Second,
		}
		g.Go(func() error {
			log.Info("serving metrics", logging.String("addr", cfg.MetricsAddr))
			if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
				log.Error("metrics server stopped", err, logging.String("addr", cfg.MetricsAddr))
				return apperrors.WrapError(err, "metrics server")
			}
			return nil
		})
		g.Go(func() error {
			<-ctx.Done()
			shutdownCtx, done := context.WithTimeout(context.Background(), 5*time.Second)
			defer done()
			return srv.Shutdown(shutdownCtx)
		})
	}

	g.Go(func() error {
		switch {
		case cfg.JSON:
			defer cancel()
			return oneShot(ctx, s, log, os.Stdout, cfg.Interval, cfg.Selection())
		case cfg.JSONStream:
			defer cancel()
			return stream(ctx, s, os.Stdout, cfg.Interval, cfg.Selection())
		case cfg.MetricsAddr != "" && !isTerminal(os.Stdout):
			return poll(ctx, s, log, cfg.Interval, cfg.Selection())
		default:
			defer cancel()
			return ui.RunTUI(cfg, s)
		}
	})

	return g.Wait()
}

// newLogger picks the log output for the run mode. The dashboard owns the
// terminal, so it runs without log output. A non-terminal stderr gets JSON
// entries for log collectors.
func newLogger(cfg config.Config) *logging.ZerologAdapter {
	switch {
	case !cfg.JSON && !cfg.JSONStream && cfg.MetricsAddr == "":
		return logging.NewNop()
	case isTerminal(os.Stderr):
		return logging.NewDefaultLogger().WithLevel(cfg.LogLevel)
	default:
		return logging.NewLogger(os.Stderr, "sysmoni").WithLevel(cfg.LogLevel)
	}
}

func metricsMux(s *sampler.Sampler, log *logging.ZerologAdapter) http.Handler {
	mux := http.NewServeMux()
	mux.Handle("/metrics", exporter.Handler(exporter.NewCollector(s), log))
	mux.HandleFunc("/healthz", func(w http.ResponseWriter, _ *http.Request) {
		w.WriteHeader(http.StatusOK)
	})
	return mux
}

func isTerminal(f *os.File) bool {
	fi, err := f.Stat()
	if err != nil {
		return false
	}
	return fi.Mode()&os.ModeCharDevice != 0
}
