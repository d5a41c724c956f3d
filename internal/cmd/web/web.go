// Package web parses web command flags and launches the browser-facing
// service.
package web

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"log"
	"strings"

	entrypoint "github.com/devtinder/web/internal/platform/cmd"
	"github.com/devtinder/web/internal/services/web"
	"github.com/devtinder/web/internal/services/web/platform/requestmeta"
)

// devSessionSecret signs cookies when -dev is set and no secret is given.
const devSessionSecret = "devtinder-dev-session-secret"

// Config holds the web command configuration.
type Config struct {
	HTTPAddr            string `env:"DEVTINDER_WEB_HTTP_ADDR" envDefault:"localhost:8086"`
	APIBaseURL          string `env:"DEVTINDER_API_BASE_URL" envDefault:"http://localhost:7777"`
	SessionSecret       string `env:"DEVTINDER_WEB_SESSION_SECRET"`
	DBPath              string `env:"DEVTINDER_WEB_DB_PATH"`
	LogFile             string `env:"DEVTINDER_WEB_LOG_FILE"`
	TrustForwardedProto bool   `env:"DEVTINDER_WEB_TRUST_FORWARDED_PROTO"`
	Dev                 bool   `env:"DEVTINDER_WEB_DEV"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	bindFlags(fs, &cfg)
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return finish(cfg)
}

func bindFlags(fs *flag.FlagSet, cfg *Config) {
	fs.StringVar(&cfg.HTTPAddr, "http-addr", cfg.HTTPAddr, "HTTP listen address")
	fs.StringVar(&cfg.APIBaseURL, "api-base-url", cfg.APIBaseURL, "DevTinder API base URL")
	fs.StringVar(&cfg.DBPath, "db-path", cfg.DBPath, "SQLite path for browser sessions (empty keeps them in memory)")
	fs.StringVar(&cfg.LogFile, "log-file", cfg.LogFile, "Rotated log file (empty logs to stderr)")
	fs.BoolVar(&cfg.Dev, "dev", cfg.Dev, "Use a fixed session secret for local development")
}

func finish(cfg Config) (Config, error) {
	cfg.HTTPAddr = strings.TrimSpace(cfg.HTTPAddr)
	cfg.APIBaseURL = strings.TrimSpace(cfg.APIBaseURL)
	cfg.SessionSecret = strings.TrimSpace(cfg.SessionSecret)
	if cfg.SessionSecret == "" {
		if !cfg.Dev {
			return Config{}, errors.New("DEVTINDER_WEB_SESSION_SECRET is required outside -dev")
		}
		cfg.SessionSecret = devSessionSecret
	}
	return cfg, nil
}

// Run starts the web server.
func Run(ctx context.Context, cfg Config) error {
	entrypoint.ConfigureLogging(entrypoint.ServiceWeb, entrypoint.LogOptions{File: cfg.LogFile})
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceWeb, func(ctx context.Context) error {
		server, err := web.NewServer(web.Config{
			HTTPAddr:      cfg.HTTPAddr,
			APIBaseURL:    cfg.APIBaseURL,
			SessionSecret: []byte(cfg.SessionSecret),
			DBPath:        cfg.DBPath,
			Policy:        requestmeta.SchemePolicy{TrustForwardedProto: cfg.TrustForwardedProto},
			Logger:        log.Default(),
		})
		if err != nil {
			return fmt.Errorf("init web server: %w", err)
		}
		defer server.Close()

		if err := server.ListenAndServe(ctx); err != nil {
			return fmt.Errorf("serve web: %w", err)
		}
		return nil
	})
}
