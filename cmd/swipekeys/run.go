// Package main starts the SwipeKeys server.
package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"log"
	"net"
	"net/http"
	"os"
	"os/signal"
	"path/filepath"
	"time"

	"github.com/frudas24/swipekeys/internal/app"
	"github.com/frudas24/swipekeys/internal/config"
	"github.com/frudas24/swipekeys/internal/control"
	"github.com/frudas24/swipekeys/internal/keymap"
	"github.com/frudas24/swipekeys/internal/session"
	"github.com/frudas24/swipekeys/internal/wininput"
	"github.com/pion/logging"
)

// run wires the application and blocks until shutdown.
func run(debug bool) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	logs := cfg.LoggerFactory(os.Stderr, debug)
	if debug {
		log.Printf("debug: enabled")
	}
	logStartup(cfg)

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt)
	defer stop()

	holder, err := loadKeymap(cfg.KeymapPath)
	if err != nil {
		return err
	}
	rows, cols := holder.Table().Dims()
	log.Printf("keymap: %s (%dx%d)", holder.Table().Name(), rows, cols)

	if cfg.KeymapWatch {
		watcher := keymap.NewWatcher(cfg.KeymapPath, holder, logs.NewLogger("keymap"))
		watcher.OnChange(func(t *keymap.Table) {
			r, c := t.Dims()
			log.Printf("keymap reloaded: %s (%dx%d)", t.Name(), r, c)
		})
		if err := watcher.Start(ctx); err != nil {
			return err
		}
		defer func() {
			if err := watcher.Close(); err != nil {
				log.Printf("keymap watcher: %v", err)
			}
		}()
	}

	host, err := newHostSink(cfg, logs)
	if err != nil {
		return err
	}

	sess := session.New(cfg.UIPassword)
	appInstance, err := app.New(cfg, sess, holder, host, logs)
	if err != nil {
		return err
	}

	mux := http.NewServeMux()
	appInstance.RegisterRoutes(mux, "")
	server := &http.Server{
		Addr:              cfg.ListenAddr,
		Handler:           mux,
		ReadHeaderTimeout: 10 * time.Second,
	}

	errCh := make(chan error, 1)
	go func() {
		if err := server.ListenAndServe(); err != nil {
			errCh <- err
		}
	}()

	select {
	case <-ctx.Done():
	case err := <-errCh:
		if !errors.Is(err, http.ErrServerClosed) {
			return err
		}
	}

	shutdownCtx, cancel := context.WithTimeout(context.Background(), 5*time.Second)
	defer cancel()
	return server.Shutdown(shutdownCtx)
}

// loadKeymap returns a holder for the configured layout, or the built-in one.
func loadKeymap(path string) (*keymap.Holder, error) {
	if path == "" {
		return keymap.NewHolder(nil), nil
	}
	t, err := keymap.Load(path)
	if err != nil {
		return nil, err
	}
	return keymap.NewHolder(t), nil
}

// newHostSink returns the host injection sink when enabled.
func newHostSink(cfg config.Config, logs logging.LoggerFactory) (control.ActionSink, error) {
	if !cfg.HostInject {
		return nil, nil
	}
	injector, err := wininput.NewInjector()
	if err != nil {
		return nil, fmt.Errorf("HOST_INJECT: %w", err)
	}
	log.Printf("host injection: enabled")
	return control.NewHostSink(injector, logs.NewLogger("host")), nil
}

// checkKeymap loads and validates the configured keymap, printing its shape.
func checkKeymap(w io.Writer) error {
	cfg, err := config.Load()
	if err != nil {
		return err
	}
	holder, err := loadKeymap(cfg.KeymapPath)
	if err != nil {
		return err
	}
	t := holder.Table()
	rows, cols := t.Dims()
	mapped := 0
	t.Each(func(_, _, _ int, _ int32) { mapped++ })
	_, err = fmt.Fprintf(w, "keymap %s: %d rows, %d cols, %d mapped entries\n", t.Name(), rows, cols, mapped)
	return err
}

// logFatal prints and exits for startup failures.
func logFatal(err error) {
	log.Printf("fatal: %v", err)
	os.Exit(1)
}

// logStartup prints startup checks and connection info.
func logStartup(cfg config.Config) {
	log.Printf("SwipeKeys starting")
	logEnvStatus(cfg)
	log.Printf("swipe threshold: %.1fpx, cell: %.0fx%.0f", cfg.MinSwipeLen, cfg.CellWidth, cfg.CellHeight)
	logListenStatus(cfg.ListenAddr)
}

// logEnvStatus reports whether a .env file was found and required values are set.
func logEnvStatus(cfg config.Config) {
	envPath := filepath.Join(cfg.DataDir, ".env")
	if fileExists(envPath) {
		log.Printf("env check: ok (%s)", envPath)
	} else {
		log.Printf("env check: missing (%s)", envPath)
	}
	if cfg.PasswordMode {
		log.Printf("env UI_PASSWORD: set")
	} else {
		log.Printf("env PASSWORD_MODE: disabled (dev mode)")
	}
	if cfg.KeymapPath == "" {
		log.Printf("env KEYMAP_PATH: unset, using built-in layout")
	}
}

// logListenStatus reports the listen address and a local URL helper.
func logListenStatus(addr string) {
	log.Printf("listen addr: %s", addr)
	host, port, err := net.SplitHostPort(addr)
	if err != nil {
		return
	}
	if host == "" || host == "0.0.0.0" || host == "::" {
		host = "localhost"
	}
	log.Printf("local url: http://%s", net.JoinHostPort(host, port))
}

// fileExists reports whether a path exists and is a file.
func fileExists(path string) bool {
	info, err := os.Stat(path)
	if err != nil {
		return false
	}
	return !info.IsDir()
}
