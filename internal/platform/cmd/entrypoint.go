// Package cmd holds the startup plumbing shared by DevTinder commands.
package cmd

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"
	"time"

	"github.com/devtinder/web/internal/platform/config"
	"github.com/devtinder/web/internal/platform/otel"
	"gopkg.in/natefinch/lumberjack.v2"
)

const defaultOTelShutdownTimeout = 5 * time.Second

// ServiceWeb identifies the browser-facing web service in logs and traces.
const ServiceWeb = "web"

// RunOptions controls shared entrypoint behavior for service commands.
type RunOptions struct {
	// ShutdownTimeout sets the timeout used when stopping telemetry.
	ShutdownTimeout time.Duration
}

// LogOptions selects where the process log is written.
type LogOptions struct {
	// File enables a size-rotated log file when non-empty.
	File       string
	MaxSizeMB  int
	MaxBackups int
	MaxAgeDays int
}

// ParseConfig loads environment defaults into cfg.
func ParseConfig[T any](cfg *T) error {
	if cfg == nil {
		return errors.New("config target is required")
	}
	return config.ParseEnv(cfg)
}

// ParseArgs parses command-line flags.
func ParseArgs(fs *flag.FlagSet, args []string) error {
	if fs == nil {
		return errors.New("flag parser is required")
	}
	if args == nil {
		args = []string{}
	}
	return fs.Parse(args)
}

// ParseConfigFromArgs loads defaults from env and then parses flags.
func ParseConfigFromArgs[T any](cfg *T, fs *flag.FlagSet, args []string) error {
	if err := ParseConfig(cfg); err != nil {
		return err
	}
	return ParseArgs(fs, args)
}

// LogWriter returns the writer for the process log. Without a file it is
// stderr; otherwise a lumberjack logger that rotates by size.
func LogWriter(options LogOptions) io.Writer {
	file := strings.TrimSpace(options.File)
	if file == "" {
		return os.Stderr
	}
	maxSize := options.MaxSizeMB
	if maxSize <= 0 {
		maxSize = 50
	}
	maxBackups := options.MaxBackups
	if maxBackups <= 0 {
		maxBackups = 3
	}
	maxAge := options.MaxAgeDays
	if maxAge <= 0 {
		maxAge = 14
	}
	return &lumberjack.Logger{
		Filename:   file,
		MaxSize:    maxSize,
		MaxBackups: maxBackups,
		MaxAge:     maxAge,
		Compress:   true,
	}
}

// ConfigureLogging points the standard logger at the selected output and
// tags every line with the service name.
func ConfigureLogging(service string, options LogOptions) {
	log.SetOutput(LogWriter(options))
	service = strings.ToUpper(strings.TrimSpace(service))
	if service != "" {
		log.SetPrefix("[" + service + "] ")
	}
}

// RunWithTelemetry configures observability and executes a service run loop.
func RunWithTelemetry(ctx context.Context, service string, run func(context.Context) error) error {
	return RunWithTelemetryAndOptions(ctx, service, RunOptions{}, run)
}

// RunWithTelemetryAndOptions configures observability and executes a service run loop.
func RunWithTelemetryAndOptions(ctx context.Context, service string, options RunOptions, run func(context.Context) error) error {
	service = strings.TrimSpace(service)
	if service == "" {
		return fmt.Errorf("service name is required")
	}
	if run == nil {
		return fmt.Errorf("run function is required")
	}
	shutdown, err := otel.Setup(ctx, "devtinder-"+service)
	if err != nil {
		return err
	}
	defer func() {
		shutdownTimeout := options.ShutdownTimeout
		if shutdownTimeout <= 0 {
			shutdownTimeout = defaultOTelShutdownTimeout
		}
		shutdownCtx, cancel := context.WithTimeout(context.Background(), shutdownTimeout)
		defer cancel()
		if err := shutdown(shutdownCtx); err != nil {
			log.Printf("otel shutdown service=%s err=%v", service, err)
		}
	}()
	return run(ctx)
}
