/*
 * Copyright 2026 Humaid Alqasimi
 * SPDX-License-Identifier: Apache-2.0
 */
package cmd

import (
	"context"
	"errors"
	"fmt"
	"net/http"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/flamego/csrf"
	"github.com/flamego/flamego"
	"github.com/flamego/session"
	"github.com/flamego/template"
	"github.com/google/uuid"
	"github.com/urfave/cli/v3"

	"github.com/humaidq/confidenceai/db"
	"github.com/humaidq/confidenceai/i18n"
	"github.com/humaidq/confidenceai/metrics"
	"github.com/humaidq/confidenceai/routes"
	"github.com/humaidq/confidenceai/static"
	"github.com/humaidq/confidenceai/templates"
)

const (
	runtimeEnvVar   = "APP_ENV"
	shutdownTimeout = 10 * time.Second
)

var CmdStart = &cli.Command{
	Name:    "start",
	Aliases: []string{"run"},
	Usage:   "Start the web server",
	Flags:   startFlags(),
	Action:  start,
}

func startFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:    "port",
			Value:   "8080",
			Sources: cli.EnvVars("PORT"),
			Usage:   "the web server port",
		},
		&cli.StringFlag{
			Name:    "database-url",
			Sources: cli.EnvVars("DATABASE_URL"),
			Usage:   "PostgreSQL connection string for persistent sessions (memory sessions when empty)",
		},
		&cli.StringFlag{
			Name:    "csrf-secret",
			Sources: cli.EnvVars("CSRF_SECRET"),
			Usage:   "secret used to sign CSRF tokens (required in production)",
		},
		&cli.StringFlag{
			Name:    "default-lang",
			Value:   i18n.DefaultLocale,
			Sources: cli.EnvVars("DEFAULT_LANG"),
			Usage:   "language used when the browser gives no preference (hi or en)",
		},
		&cli.BoolFlag{
			Name:    "metrics",
			Value:   true,
			Sources: cli.EnvVars("METRICS_ENABLED"),
			Usage:   "expose Prometheus metrics on /metrics",
		},
		&cli.BoolFlag{
			Name:  "dev",
			Value: false,
			Usage: "enables development mode (for templates)",
		},
	}
}

// runtimeConfig is the validated server configuration.
type runtimeConfig struct {
	Port          string
	DatabaseURL   string
	CSRFSecret    string
	DefaultLocale string
	Metrics       bool
	Dev           bool
	Production    bool
}

func loadRuntimeConfig(cmd *cli.Command) (runtimeConfig, error) {
	production, err := isProduction(os.Getenv(runtimeEnvVar))
	if err != nil {
		return runtimeConfig{}, err
	}

	locale, ok := i18n.Normalize(cmd.String("default-lang"))
	if !ok {
		return runtimeConfig{}, errInvalidDefaultLang
	}

	cfg := runtimeConfig{
		Port:          cmd.String("port"),
		DatabaseURL:   strings.TrimSpace(cmd.String("database-url")),
		CSRFSecret:    strings.TrimSpace(cmd.String("csrf-secret")),
		DefaultLocale: locale,
		Metrics:       cmd.Bool("metrics"),
		Dev:           cmd.Bool("dev"),
		Production:    production,
	}

	if cfg.CSRFSecret == "" {
		if cfg.Production {
			return runtimeConfig{}, errCSRFSecretRequired
		}

		cfg.CSRFSecret = uuid.NewString()
	}

	return cfg, nil
}

func isProduction(env string) (bool, error) {
	switch strings.ToLower(strings.TrimSpace(env)) {
	case "", "development", "dev":
		return false, nil
	case "production", "prod":
		return true, nil
	}

	return false, errInvalidRuntimeEnv
}

func start(ctx context.Context, cmd *cli.Command) error {
	cfg, err := loadRuntimeConfig(cmd)
	if err != nil {
		return err
	}

	sessionOpts := session.Options{}

	if cfg.DatabaseURL != "" {
		if err := os.Setenv(db.DatabaseURLEnvVar, cfg.DatabaseURL); err != nil {
			return fmt.Errorf("failed to set %s: %w", db.DatabaseURLEnvVar, err)
		}

		appLogger.Info("connecting to database")
		if err := db.Init(ctx); err != nil {
			return fmt.Errorf("failed to initialize database: %w", err)
		}
		defer db.Close()

		appLogger.Info("syncing database schema")
		if err := db.SyncSchema(ctx); err != nil {
			return fmt.Errorf("failed to sync schema: %w", err)
		}

		sessionOpts.Initer = db.PostgresSessionIniter()
		sessionOpts.Config = db.PostgresSessionConfig{}
		appLogger.Info("using postgres session store")
	} else {
		appLogger.Info("using in-memory session store")
	}

	registry := metrics.New()

	f, err := newServer(cfg, sessionOpts, registry)
	if err != nil {
		return err
	}

	srv := &http.Server{
		Addr:              fmt.Sprintf("0.0.0.0:%s", cfg.Port),
		Handler:           f,
		ReadHeaderTimeout: 5 * time.Second,
		ReadTimeout:       30 * time.Second,
		WriteTimeout:      30 * time.Second,
		ErrorLog:          requestStdLogger,
	}

	return serve(ctx, srv)
}

// newServer wires middleware and routes.
func newServer(cfg runtimeConfig, sessionOpts session.Options, registry *metrics.Registry) (*flamego.Flame, error) {
	fs, err := template.EmbedFS(templates.Templates, ".", []string{".html"})
	if err != nil {
		return nil, fmt.Errorf("failed to load templates: %w", err)
	}

	if cfg.Dev {
		flamego.SetEnv(flamego.EnvTypeDev)
	} else {
		flamego.SetEnv(flamego.EnvTypeProd)
	}

	f := flamego.New()
	f.Use(flamego.Recovery())
	f.Use(flamego.Static(flamego.StaticOptions{
		FileSystem: http.FS(static.Static),
	}))

	f.Map(i18n.Default())
	f.Map(registry)

	if cfg.Metrics {
		f.Get("/metrics", registry.Handler().ServeHTTP)
	}
	f.Get("/healthz", routes.Healthz)

	f.Group("", func() {
		f.Get("/", routes.Home)
		f.Post("/use-case", csrf.Validate, routes.SelectUseCase)
		f.Post("/language", csrf.Validate, routes.SetLanguage)

		f.Get("/health", routes.HealthForm)
		f.Post("/health/analyze", csrf.Validate, routes.AnalyzeHealth)
		f.Post("/health/report", csrf.Validate, routes.DownloadHealthReport)

		f.Get("/finance", routes.ComingSoon(routes.UseCaseFinance))
		f.Get("/education", routes.ComingSoon(routes.UseCaseEducation))

		f.Get("/custom", routes.CustomForm)
		f.Post("/custom/upload", csrf.Validate, routes.UploadCustomData)
		f.Post("/custom/analyze", csrf.Validate, routes.AnalyzeCustomData)

		f.Get("/about", routes.About)
	},
		session.Sessioner(sessionOpts),
		csrf.Csrfer(csrf.Options{Secret: cfg.CSRFSecret}),
		template.Templater(template.Options{FileSystem: fs}),
		routes.RequestLogger,
		routes.NoCacheHeaders(),
		routes.CSRFInjector(),
		routes.ViewStateInjector(cfg.DefaultLocale),
	)

	configureEmptyNotFoundHandler(f)

	return f, nil
}

func configureEmptyNotFoundHandler(f *flamego.Flame) {
	f.NotFound(func(c flamego.Context) {
		c.ResponseWriter().WriteHeader(http.StatusNotFound)
	})
}

func serve(ctx context.Context, srv *http.Server) error {
	ctx, stop := signal.NotifyContext(ctx, os.Interrupt, syscall.SIGTERM)
	defer stop()

	errCh := make(chan error, 1)

	go func() {
		appLogger.Info("starting web server", "addr", srv.Addr)
		errCh <- srv.ListenAndServe()
	}()

	select {
	case err := <-errCh:
		if errors.Is(err, http.ErrServerClosed) {
			return nil
		}

		return err
	case <-ctx.Done():
	}

	appLogger.Info("shutting down web server")

	shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
	defer cancel()

	return srv.Shutdown(shutdownCtx)
}
