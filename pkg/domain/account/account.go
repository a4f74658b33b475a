package account

import (
	"errors"
	"fmt"
	"time"

	"github.com/amirasaad/teller/pkg/money"
	"github.com/google/uuid"
)

var (
	// ErrTransactionAmountMustBePositive is returned when a transaction amount is not positive.
	ErrTransactionAmountMustBePositive = errors.New("transaction amount must be positive")

	// ErrInsufficientFunds is returned when an account has insufficient funds for a withdrawal.
	ErrInsufficientFunds = errors.New("insufficient funds")

	// ErrNegativeInitialBalance is returned when an account is built with a balance below zero.
	ErrNegativeInitialBalance = errors.New("initial balance cannot be negative")
)

// InsufficientFundsError carries the figures of a rejected withdrawal.
// It matches ErrInsufficientFunds with errors.Is.
type InsufficientFundsError struct {
	Available money.Amount
	Attempted money.Amount
}

// Shortfall is the part of the attempted amount the balance cannot cover.
func (e *InsufficientFundsError) Shortfall() money.Amount {
	return e.Attempted.Sub(e.Available)
}

func (e *InsufficientFundsError) Error() string {
	return fmt.Sprintf("%s: available %s, attempted %s, shortfall %s",
		ErrInsufficientFunds, e.Available.Format(), e.Attempted.Format(), e.Shortfall().Format())
}

func (e *InsufficientFundsError) Unwrap() error {
	return ErrInsufficientFunds
}

// Account holds the single balance of a session.
//
// Invariants:
//   - The balance is never negative.
//   - Only Deposit and Withdraw change the balance.
//
// An Account has exactly one owner (the running session), so it carries no lock.
type Account struct {
	ID        uuid.UUID
	balance   money.Amount
	CreatedAt time.Time
	UpdatedAt time.Time
}

// Builder provides a fluent API for constructing Account instances.
type Builder struct {
	id        uuid.UUID
	balance   money.Amount
	createdAt time.Time
}

// New creates a new Builder with a fresh ID and a zero balance.
func New() *Builder {
	return &Builder{
		id:        uuid.New(),
		createdAt: time.Now(),
	}
}

// WithID sets the ID for the account being built.
func (b *Builder) WithID(id uuid.UUID) *Builder {
	b.id = id
	return b
}

// WithBalance sets the opening balance.
func (b *Builder) WithBalance(balance money.Amount) *Builder {
	b.balance = balance
	return b
}

// Build validates the opening balance and returns the account.
func (b *Builder) Build() (*Account, error) {
	if b.balance.IsNegative() {
		return nil, ErrNegativeInitialBalance
	}
	return &Account{
		ID:        b.id,
		balance:   b.balance,
		CreatedAt: b.createdAt,
		UpdatedAt: b.createdAt,
	}, nil
}

// Balance returns the current balance. It never mutates the account.
func (a *Account) Balance() money.Amount {
	return a.balance
}

func validateAmount(amount money.Amount) error {
	if !amount.IsPositive() {
		return ErrTransactionAmountMustBePositive
	}
	return nil
}

// ValidateDeposit checks all business invariants for a deposit operation.
func (a *Account) ValidateDeposit(amount money.Amount) error {
	return validateAmount(amount)
}

// ValidateWithdraw checks all business invariants for a withdrawal.
// Invariants enforced:
//   - Withdrawal amount must be positive.
//   - Cannot withdraw more than the current balance.
func (a *Account) ValidateWithdraw(amount money.Amount) error {
	if err := validateAmount(amount); err != nil {
		return err
	}
	if amount.GreaterThan(a.balance) {
		return &InsufficientFundsError{Available: a.balance, Attempted: amount}
	}
	return nil
}

// Deposit adds a positive amount to the balance.
func (a *Account) Deposit(amount money.Amount) error {
	if err := a.ValidateDeposit(amount); err != nil {
		return err
	}
	a.balance = a.balance.Add(amount)
	a.UpdatedAt = time.Now()
	return nil
}

// Withdraw removes amount from the balance. A withdrawal that would leave the
// balance negative is rejected with *InsufficientFundsError and changes nothing.
func (a *Account) Withdraw(amount money.Amount) error {
	if err := a.ValidateWithdraw(amount); err != nil {
		return err
	}
	next, err := a.balance.SubNonNegative(amount)
	if err != nil {
		return err
	}
	a.balance = next
	a.UpdatedAt = time.Now()
	return nil
}
