package menu

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/amirasaad/teller/pkg/money"
	accountsvc "github.com/amirasaad/teller/pkg/service/account"
)

// State is a step of the menu loop.
type State int

const (
	MenuShown State = iota
	Dispatching
	Continuing
	Exited
)

func (s State) String() string {
	switch s {
	case MenuShown:
		return "menu_shown"
	case Dispatching:
		return "dispatching"
	case Continuing:
		return "continuing"
	case Exited:
		return "exited"
	default:
		return fmt.Sprintf("state(%d)", int(s))
	}
}

// Input is the unmasked side of the console.
type Input interface {
	ReadLine() (string, error)
	WaitForKey() error
	Clear()
}

// View renders the menu screens.
type View interface {
	Menu()
	ChoicePrompt()
	ChoiceRead()
	InvalidChoice()
	PausePrompt()
	DepositPrompt()
	Deposited(amount, balance money.Amount)
	DepositFailed(err error)
	WithdrawPrompt(balance money.Amount)
	Withdrew(amount, balance money.Amount)
	WithdrawFailed(err error)
	Balance(balance money.Amount)
}

// Dispatcher routes menu selections to the account operations until Exit.
type Dispatcher struct {
	accounts *accountsvc.Service
	input    Input
	view     View
	logger   *slog.Logger
}

// NewDispatcher creates a Dispatcher.
func NewDispatcher(
	accounts *accountsvc.Service,
	input Input,
	view View,
	logger *slog.Logger,
) *Dispatcher {
	return &Dispatcher{
		accounts: accounts,
		input:    input,
		view:     view,
		logger:   logger,
	}
}

// Run shows the menu and dispatches selections until the user exits.
// Only input failures and cancellation are returned as errors.
func (d *Dispatcher) Run(ctx context.Context) error {
	log := d.logger.With("context", "Dispatcher")
	state := MenuShown
	op := Invalid

	for state != Exited {
		if err := ctx.Err(); err != nil {
			return err
		}
		log.Debug("menu state", "state", state, "operation", op)

		switch state {
		case MenuShown:
			d.view.Menu()
			d.view.ChoicePrompt()
			choice, err := d.input.ReadLine()
			if err != nil {
				return fmt.Errorf("reading menu choice: %w", err)
			}
			d.view.ChoiceRead()
			op = ParseOperation(choice)
			state = Dispatching

		case Dispatching:
			next, err := d.dispatch(ctx, op)
			if err != nil {
				return err
			}
			state = next

		case Continuing:
			d.view.PausePrompt()
			if err := d.input.WaitForKey(); err != nil {
				return fmt.Errorf("waiting for key: %w", err)
			}
			d.input.Clear()
			state = MenuShown
		}
	}

	log.Info("menu exited")
	return nil
}

// dispatch runs one operation and returns the next state.
func (d *Dispatcher) dispatch(ctx context.Context, op Operation) (State, error) {
	switch op {
	case Deposit:
		return Continuing, d.deposit(ctx)
	case Withdraw:
		return Continuing, d.withdraw(ctx)
	case BalanceInquiry:
		d.view.Balance(d.accounts.Balance(ctx))
		return Continuing, nil
	case Exit:
		return Exited, nil
	default:
		d.logger.Debug("menu choice rejected", "error", ErrInvalidChoice)
		d.view.InvalidChoice()
		return Continuing, nil
	}
}

func (d *Dispatcher) deposit(ctx context.Context) error {
	d.view.DepositPrompt()
	input, err := d.input.ReadLine()
	if err != nil {
		return fmt.Errorf("reading deposit amount: %w", err)
	}
	receipt, err := d.accounts.Deposit(ctx, input)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		d.view.DepositFailed(err)
		return nil
	}
	d.view.Deposited(receipt.Amount, receipt.Balance)
	return nil
}

func (d *Dispatcher) withdraw(ctx context.Context) error {
	d.view.WithdrawPrompt(d.accounts.Balance(ctx))
	input, err := d.input.ReadLine()
	if err != nil {
		return fmt.Errorf("reading withdrawal amount: %w", err)
	}
	receipt, err := d.accounts.Withdraw(ctx, input)
	if err != nil {
		if ctxErr := ctx.Err(); ctxErr != nil {
			return ctxErr
		}
		d.view.WithdrawFailed(err)
		return nil
	}
	d.view.Withdrew(receipt.Amount, receipt.Balance)
	return nil
}
