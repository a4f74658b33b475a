package main

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/teller/infra/initializer"
	"github.com/amirasaad/teller/infra/terminal"
	"github.com/amirasaad/teller/pkg/app"
	"github.com/amirasaad/teller/pkg/config"
	log "github.com/charmbracelet/log"
)

// exitInterrupted is the conventional status for a Ctrl-C termination.
const exitInterrupted = 130

func main() {
	if err := run(os.Stdin, os.Stdout); err != nil {
		if errors.Is(err, terminal.ErrInterrupted) {
			os.Exit(exitInterrupted)
		}
		log.Fatal(err)
	}
}

func run(in *os.File, out io.Writer) error {
	cfg, err := config.Load(".env")
	if err != nil {
		return fmt.Errorf("failed to load application configuration: %w", err)
	}

	deps, err := initializer.InitializeDependencies(cfg, terminal.New(in, out))
	if err != nil {
		return fmt.Errorf("failed to initialize dependencies: %w", err)
	}
	defer deps.Closer.Close() //nolint:errcheck

	teller, err := app.New(deps, cfg)
	if err != nil {
		return fmt.Errorf("failed to start session: %w", err)
	}

	outcome, err := teller.Run(context.Background())
	if err != nil {
		return err
	}
	deps.Logger.Info("Session finished", "outcome", outcome)
	return nil
}
