// Package account provides the teller operations over the session's single
// account: deposit, withdrawal and balance inquiry. Inputs arrive as the raw
// strings typed at the prompt and are parsed here.
package account

import (
	"context"
	"log/slog"

	"github.com/amirasaad/teller/pkg/domain/account"
	"github.com/amirasaad/teller/pkg/money"
)

// Receipt describes a completed deposit or withdrawal.
type Receipt struct {
	Amount  money.Amount
	Balance money.Amount
}

// Service owns the account for the lifetime of a session.
type Service struct {
	account *account.Account
	logger  *slog.Logger
}

// New creates a Service over acc.
func New(acc *account.Account, logger *slog.Logger) *Service {
	return &Service{account: acc, logger: logger}
}

// Deposit parses input and adds it to the balance.
// Errors: money.ErrInvalidAmount, account.ErrTransactionAmountMustBePositive.
func (s *Service) Deposit(ctx context.Context, input string) (*Receipt, error) {
	return s.executeOperation(ctx, operationDeposit, input, depositHandler{})
}

// Withdraw parses input and removes it from the balance.
// Errors: money.ErrInvalidAmount, account.ErrTransactionAmountMustBePositive,
// *account.InsufficientFundsError.
func (s *Service) Withdraw(ctx context.Context, input string) (*Receipt, error) {
	return s.executeOperation(ctx, operationWithdraw, input, withdrawHandler{})
}

// Balance returns the current balance without changing it.
func (s *Service) Balance(ctx context.Context) money.Amount {
	balance := s.account.Balance()
	s.logger.Debug("Balance inquiry", "account_id", s.account.ID, "balance", balance.String())
	return balance
}
