package initializer

import (
	"fmt"

	"github.com/amirasaad/teller/infra/terminal"
	"github.com/amirasaad/teller/pkg/app"
	"github.com/amirasaad/teller/pkg/config"
	"github.com/amirasaad/teller/pkg/service/auth"
	"github.com/amirasaad/teller/pkg/ui"
	"github.com/google/uuid"
)

// InitializeDependencies builds the logger, renderer and PIN verifier for a
// session running on console.
func InitializeDependencies(cfg *config.App, console *terminal.Console) (deps *app.Deps, err error) {
	w, closer, err := logOutput(cfg.Log.Output)
	if err != nil {
		return nil, err
	}
	sessionID := uuid.New()
	logger := setupLogger(cfg.Log, w).With("session_id", sessionID)

	verifier, err := newVerifier(cfg.Bank)
	if err != nil {
		closer.Close() //nolint:errcheck
		return nil, fmt.Errorf("failed to initialize PIN verifier: %w", err)
	}

	deps = &app.Deps{
		SessionID: sessionID,
		Console:   console,
		View:      ui.New(console.Writer(), ui.ColorMode(cfg.UI.Color)),
		Verifier:  verifier,
		Logger:    logger,
		Closer:    closer,
	}
	logger.Info("Dependencies initialized",
		"interactive", console.Interactive(),
		"verifier", fmt.Sprintf("%T", verifier),
	)
	return deps, nil
}

// newVerifier prefers a configured hash over a plain PIN.
func newVerifier(cfg *config.Bank) (auth.Verifier, error) {
	if cfg.PINHash != "" {
		v, err := auth.NewHashVerifier(cfg.PINHash)
		if err != nil {
			return nil, err
		}
		return v, nil
	}
	return auth.NewPlainVerifier(cfg.PIN), nil
}
