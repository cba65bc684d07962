package main

import (
	"context"
	"errors"
	"flag"
	"fmt"
	"io"
	"os"

	"github.com/mashiahd/http-mock/internal/app"
	"github.com/mashiahd/http-mock/internal/config"
	log "github.com/sirupsen/logrus"
)

const (
	exitOK    = 0
	exitError = 1

	defaultsWrittenMessage = "Default .env file created. Please edit it with your desired values and run the application again."
)

func main() {
	os.Exit(run(context.Background(), os.Args[1:], os.Stdout, os.Stderr))
}

// run returns the process exit code. It only binds a port once the
// configuration has been validated.
func run(ctx context.Context, args []string, stdout, stderr io.Writer) int {
	flags := flag.NewFlagSet("http-mock", flag.ContinueOnError)
	flags.SetOutput(stderr)
	envPath := flags.String("env", ".env", "path to the env file")
	logPath := flags.String("log", "app.log", "path to the log file")
	logLevel := flags.String("log-level", "error", "log level (debug, info, warn, error)")
	if err := flags.Parse(args); err != nil {
		return exitError
	}

	level, err := log.ParseLevel(*logLevel)
	if err != nil {
		fmt.Fprintf(stderr, "invalid log level: %v\n", err)
		return exitError
	}

	logger, closer, err := app.OpenLogger(*logPath, level)
	if err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	defer closer.Close()

	cfg, err := config.Load(*envPath)
	switch {
	case errors.Is(err, config.ErrDefaultsWritten):
		logger.Error(defaultsWrittenMessage)
		fmt.Fprintln(stdout, defaultsWrittenMessage)
		return exitOK
	case err != nil:
		logger.WithError(err).Error("invalid configuration")
		fmt.Fprintf(stderr, "Error in %s: %v\n", *envPath, err)
		return exitError
	}

	fmt.Fprintf(stdout, "Host: %s, Port: %d\n", cfg.Host, cfg.Port)

	a, err := app.New(cfg, logger, stdout)
	if err != nil {
		logger.WithError(err).Error("failed to initialize application")
		return exitError
	}

	if err := a.Run(ctx); err != nil {
		fmt.Fprintln(stderr, err)
		return exitError
	}
	return exitOK
}
