// Package app composes a teller session: banner, PIN gate, operations menu
// and farewell.
package app

import (
	"context"
	"fmt"
	"io"
	"log/slog"

	"github.com/amirasaad/teller/infra/terminal"
	"github.com/amirasaad/teller/pkg/config"
	"github.com/amirasaad/teller/pkg/domain/account"
	"github.com/amirasaad/teller/pkg/menu"
	accountsvc "github.com/amirasaad/teller/pkg/service/account"
	authsvc "github.com/amirasaad/teller/pkg/service/auth"
	"github.com/amirasaad/teller/pkg/ui"
	"github.com/google/uuid"
)

// Deps contains the infrastructure a session runs on.
type Deps struct {
	SessionID uuid.UUID
	Console   *terminal.Console
	View      *ui.Renderer
	Verifier  authsvc.Verifier
	Logger    *slog.Logger
	// Closer releases the log output, if it was opened by the initializer.
	Closer io.Closer
}

// Outcome is how a session ended.
type Outcome int

const (
	// OutcomeExited means the user chose Exit from the menu.
	OutcomeExited Outcome = iota
	// OutcomeLocked means the PIN attempt budget was exhausted.
	OutcomeLocked
)

func (o Outcome) String() string {
	if o == OutcomeLocked {
		return "locked"
	}
	return "exited"
}

type App struct {
	Deps           *Deps
	Config         *config.App
	Account        *account.Account
	AuthService    *authsvc.Service
	AccountService *accountsvc.Service
	Dispatcher     *menu.Dispatcher
}

// New opens the session account and wires the services.
func New(deps *Deps, cfg *config.App) (*App, error) {
	acc, err := account.New().
		WithID(deps.SessionID).
		WithBalance(cfg.Bank.InitialBalance.Amount).
		Build()
	if err != nil {
		return nil, fmt.Errorf("failed to open account: %w", err)
	}

	app := &App{
		Deps:    deps,
		Config:  cfg,
		Account: acc,
	}
	app.AuthService = authsvc.New(
		deps.Verifier,
		cfg.Bank.MaxAttempts,
		deps.Console,
		deps.View,
		deps.Logger,
	)
	app.AccountService = accountsvc.New(acc, deps.Logger)
	app.Dispatcher = menu.NewDispatcher(app.AccountService, deps.Console, deps.View, deps.Logger)
	return app, nil
}

// Run drives one session to its end. Both a lockout and a normal exit are
// successful outcomes; errors mean the console failed or ctx was cancelled.
func (a *App) Run(ctx context.Context) (Outcome, error) {
	log := a.Deps.Logger.With("context", "Run")
	log.Info("Session started",
		"bank", a.Config.Bank.Name,
		"initial_balance", a.Account.Balance().String(),
	)

	a.Deps.View.Banner(a.Config.Bank.Name)

	ok, err := a.AuthService.Authenticate(ctx)
	if err != nil {
		return OutcomeExited, fmt.Errorf("authentication: %w", err)
	}
	if !ok {
		a.Deps.View.Locked(a.Config.Bank.SupportContact)
		log.Warn("Session locked", "attempts", a.AuthService.Attempts())
		return OutcomeLocked, nil
	}
	a.Deps.View.LoginSuccessful()

	if err := a.Dispatcher.Run(ctx); err != nil {
		return OutcomeExited, fmt.Errorf("operations menu: %w", err)
	}

	a.Deps.View.Farewell(a.Config.Bank.Name)
	log.Info("Session ended", "balance", a.Account.Balance().String())
	return OutcomeExited, nil
}
