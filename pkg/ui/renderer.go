// Package ui renders the teller screens: banner, menu box, prompts and
// transaction messages. Boxes are drawn with lipgloss; message colors come
// from fatih/color and can be switched off.
package ui

import (
	"errors"
	"fmt"
	"io"
	"strings"

	"github.com/amirasaad/teller/pkg/domain/account"
	"github.com/amirasaad/teller/pkg/money"
	"github.com/charmbracelet/lipgloss"
	"github.com/fatih/color"
)

// ColorMode selects whether messages are colored.
type ColorMode string

const (
	ColorAuto   ColorMode = "auto"
	ColorAlways ColorMode = "always"
	ColorNever  ColorMode = "never"
)

const menuWidth = 32

var menuItems = []string{
	"1. Deposit",
	"2. Withdrawal",
	"3. Balance Inquiry",
	"4. Exit",
}

// Renderer writes screens to the display device.
type Renderer struct {
	out     io.Writer
	lg      *lipgloss.Renderer
	success *color.Color
	failure *color.Color
	heading *color.Color
	notice  *color.Color
}

// New returns a Renderer writing to out.
func New(out io.Writer, mode ColorMode) *Renderer {
	r := &Renderer{
		out:     out,
		lg:      lipgloss.NewRenderer(out),
		success: color.New(color.FgGreen, color.Bold),
		failure: color.New(color.FgRed),
		heading: color.New(color.FgCyan, color.Bold),
		notice:  color.New(color.FgYellow),
	}
	for _, c := range []*color.Color{r.success, r.failure, r.heading, r.notice} {
		switch mode {
		case ColorAlways:
			c.EnableColor()
		case ColorNever:
			c.DisableColor()
		}
	}
	return r
}

func (r *Renderer) println(a ...any) {
	fmt.Fprintln(r.out, a...) //nolint:errcheck
}

func (r *Renderer) printf(format string, a ...any) {
	fmt.Fprintf(r.out, format, a...) //nolint:errcheck
}

// Banner prints the welcome box.
func (r *Renderer) Banner(bankName string) {
	box := r.lg.NewStyle().
		Border(lipgloss.DoubleBorder()).
		Padding(0, 3).
		Render("Welcome to " + bankName)
	r.println(box)
	r.println()
}

// PINPrompt asks for the PIN of the given attempt (1-based).
func (r *Renderer) PINPrompt(attempt, maxAttempts int) {
	r.printf("Enter PIN (Attempt %d/%d): ", attempt, maxAttempts)
}

// IncorrectPIN reports a failed attempt.
func (r *Renderer) IncorrectPIN(remaining int) {
	r.failure.Fprintf(r.out, " Incorrect PIN. You have %d attempt(s) remaining.\n", remaining) //nolint:errcheck
}

// Locked reports that the attempt budget is exhausted.
func (r *Renderer) Locked(contact string) {
	r.println()
	r.failure.Fprintln(r.out, " System Locked! Too many failed attempts.") //nolint:errcheck
	r.notice.Fprintf(r.out, "Please contact %s.\n", contact)                //nolint:errcheck
}

// LoginSuccessful confirms authentication.
func (r *Renderer) LoginSuccessful() {
	r.println()
	r.success.Fprintln(r.out, "✓ Login Successful!") //nolint:errcheck
	r.println()
}

// Menu prints the operations box.
func (r *Renderer) Menu() {
	title := r.lg.NewStyle().
		Border(lipgloss.NormalBorder(), true, true, false, true).
		Width(menuWidth).
		Align(lipgloss.Center).
		Render("BANKING OPERATIONS")

	divider := lipgloss.NormalBorder()
	divider.TopLeft = "├"
	divider.TopRight = "┤"
	items := r.lg.NewStyle().
		Border(divider).
		Width(menuWidth).
		PaddingLeft(1).
		Render(strings.Join(menuItems, "\n"))

	r.println(lipgloss.JoinVertical(lipgloss.Left, title, items))
	r.println()
}

// ChoicePrompt asks for a menu selection.
func (r *Renderer) ChoicePrompt() {
	r.printf("Enter your choice: ")
}

// ChoiceRead separates the selection from the operation output.
func (r *Renderer) ChoiceRead() {
	r.println()
}

// InvalidChoice reports a selection outside the menu.
func (r *Renderer) InvalidChoice() {
	r.failure.Fprintln(r.out, " Invalid choice. Please select 1-4.") //nolint:errcheck
}

// PausePrompt asks for acknowledgment before the menu is shown again.
func (r *Renderer) PausePrompt() {
	r.println()
	r.println("Press any key to continue...")
}

// DepositPrompt opens the deposit screen.
func (r *Renderer) DepositPrompt() {
	r.heading.Fprintln(r.out, "═══ DEPOSIT ═══") //nolint:errcheck
	r.printf("Enter amount to deposit: $")
}

// Deposited confirms a deposit.
func (r *Renderer) Deposited(amount, balance money.Amount) {
	r.println()
	r.success.Fprintf(r.out, "✓ Successfully deposited %s\n", amount.Format()) //nolint:errcheck
	r.printf("New balance: %s\n", balance.Format())
}

// DepositFailed reports a rejected deposit.
func (r *Renderer) DepositFailed(err error) {
	r.amountFailed("Deposit", err)
}

// WithdrawPrompt opens the withdrawal screen showing the current balance.
func (r *Renderer) WithdrawPrompt(balance money.Amount) {
	r.heading.Fprintln(r.out, "═══ WITHDRAWAL ═══") //nolint:errcheck
	r.printf("Current balance: %s\n", balance.Format())
	r.printf("Enter amount to withdraw: $")
}

// Withdrew confirms a withdrawal.
func (r *Renderer) Withdrew(amount, balance money.Amount) {
	r.println()
	r.success.Fprintf(r.out, "✓ Successfully withdrew %s\n", amount.Format()) //nolint:errcheck
	r.printf("New balance: %s\n", balance.Format())
}

// WithdrawFailed reports a rejected withdrawal.
func (r *Renderer) WithdrawFailed(err error) {
	var insufficient *account.InsufficientFundsError
	if errors.As(err, &insufficient) {
		r.println()
		r.failure.Fprintln(r.out, " Error: Insufficient funds!") //nolint:errcheck
		r.printf("Available balance: %s\n", insufficient.Available.Format())
		r.printf("Attempted withdrawal: %s\n", insufficient.Attempted.Format())
		r.printf("Shortfall: %s\n", insufficient.Shortfall().Format())
		return
	}
	r.amountFailed("Withdrawal", err)
}

func (r *Renderer) amountFailed(operation string, err error) {
	r.println()
	switch {
	case errors.Is(err, account.ErrTransactionAmountMustBePositive):
		r.failure.Fprintf(r.out, " Error: %s amount must be positive!\n", operation) //nolint:errcheck
	case errors.Is(err, money.ErrInvalidAmount):
		r.failure.Fprintln(r.out, " Error: Invalid amount. Please enter a valid number.") //nolint:errcheck
	default:
		r.failure.Fprintf(r.out, " Error: %v\n", err) //nolint:errcheck
	}
}

// Balance prints the balance inquiry screen.
func (r *Renderer) Balance(balance money.Amount) {
	r.heading.Fprintln(r.out, "═══ BALANCE INQUIRY ═══") //nolint:errcheck
	r.println()
	r.printf("Your current balance: %s\n", balance.Format())
}

// Farewell closes the session.
func (r *Renderer) Farewell(bankName string) {
	r.println()
	r.printf("Thank you for using %s!\n", bankName)
	r.println("Goodbye!")
}
