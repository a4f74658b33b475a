package account

import (
	"context"

	"github.com/amirasaad/teller/pkg/domain/account"
	"github.com/amirasaad/teller/pkg/money"
)

type operationType string

const (
	operationDeposit  operationType = "deposit"
	operationWithdraw operationType = "withdraw"
)

// operationHandler applies one kind of balance change to the account.
type operationHandler interface {
	execute(acc *account.Account, amount money.Amount) error
}

type depositHandler struct{}

func (depositHandler) execute(acc *account.Account, amount money.Amount) error {
	return acc.Deposit(amount)
}

type withdrawHandler struct{}

func (withdrawHandler) execute(acc *account.Account, amount money.Amount) error {
	return acc.Withdraw(amount)
}

// executeOperation parses the input and runs the handler, so deposit and
// withdraw share parsing, logging and error reporting.
func (s *Service) executeOperation(
	ctx context.Context,
	op operationType,
	input string,
	handler operationHandler,
) (result *Receipt, err error) {
	logger := s.logger.With(
		"account_id", s.account.ID,
		"operation", op,
	)
	logger.Debug("executeOperation started", "input", input)
	defer func() {
		if err != nil {
			logger.Warn("executeOperation rejected", "error", err)
		} else {
			logger.Info("executeOperation successful",
				"amount", result.Amount.String(),
				"balance", result.Balance.String(),
			)
		}
	}()

	if err = ctx.Err(); err != nil {
		return nil, err
	}

	amount, err := money.Parse(input)
	if err != nil {
		return nil, err
	}
	if err = handler.execute(s.account, amount); err != nil {
		return nil, err
	}
	return &Receipt{Amount: amount, Balance: s.account.Balance()}, nil
}
