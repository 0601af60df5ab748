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

	"github.com/joho/godotenv"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
	"gopkg.in/yaml.v3"

	"github.com/dropDatabas3/rbacconsole/internal/config"
	"github.com/dropDatabas3/rbacconsole/internal/http/server"
	"github.com/dropDatabas3/rbacconsole/internal/observability/logger"
	"github.com/dropDatabas3/rbacconsole/internal/util"
)

func main() {
	var (
		flagConfigPath = flag.String("config", "", "path to config.yaml (fallback: $CONFIG_PATH, then built-in defaults)")
		flagEnvFile    = flag.String("env-file", ".env", "path to a .env file, loaded when present")
		flagPrint      = flag.Bool("print-config", false, "print the effective config and exit")
	)
	flag.Parse()

	if err := godotenv.Load(*flagEnvFile); err != nil && !errors.Is(err, os.ErrNotExist) {
		fmt.Fprintf(os.Stderr, "rbacd: load %s: %v\n", *flagEnvFile, err)
	}

	cfgPath := *flagConfigPath
	if cfgPath == "" {
		cfgPath = os.Getenv("CONFIG_PATH")
	}
	cfg, err := config.Load(cfgPath)
	if err != nil {
		fmt.Fprintf(os.Stderr, "rbacd: config: %v\n", err)
		os.Exit(1)
	}

	if *flagPrint {
		redacted := *cfg
		redacted.Server.AdminAPIKey = util.MaskSecret(redacted.Server.AdminAPIKey)
		redacted.Cache.Redis.Password = util.MaskSecret(redacted.Cache.Redis.Password)
		_ = yaml.NewEncoder(os.Stdout).Encode(&redacted)
		return
	}

	logger.Init(logger.Config{Env: cfg.App.Env, Level: cfg.Log.Level, ServiceName: "rbacd"})
	defer func() { _ = logger.Sync() }()

	if err := run(cfg); err != nil {
		logger.L().Error("rbacd stopped", logger.Err(err))
		_ = logger.Sync()
		os.Exit(1)
	}
}

func run(cfg *config.Config) error {
	log := logger.L()

	app, err := server.Build(cfg, server.Options{Logger: log})
	if err != nil {
		return err
	}
	defer app.Close()

	srv := &http.Server{
		Addr:              cfg.Server.Addr,
		Handler:           app.Handler,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       10 * time.Second,
		WriteTimeout:      30 * time.Second,
		IdleTimeout:       60 * time.Second,
	}

	ctx, stop := signal.NotifyContext(context.Background(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		log.Info("listening", zap.String("addr", cfg.Server.Addr), zap.String("env", cfg.App.Env))
		if err := srv.ListenAndServe(); err != nil && !errors.Is(err, http.ErrServerClosed) {
			return fmt.Errorf("serve: %w", err)
		}
		return nil
	})
	g.Go(func() error {
		<-gctx.Done()
		log.Info("shutting down", zap.Duration("timeout", cfg.ShutdownTimeout()))
		sctx, cancel := context.WithTimeout(context.Background(), cfg.ShutdownTimeout())
		defer cancel()
		return srv.Shutdown(sctx)
	})
	return g.Wait()
}
