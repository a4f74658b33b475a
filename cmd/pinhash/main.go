// Command pinhash prints a bcrypt hash of a PIN for BANK_PIN_HASH.
// The PIN is read twice with masked input and must match.
package main

import (
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/amirasaad/teller/infra/terminal"
	"github.com/amirasaad/teller/pkg/utils"
	log "github.com/charmbracelet/log"
)

var errPINMismatch = errors.New("PINs do not match")

func main() {
	if err := run(terminal.New(os.Stdin, os.Stderr), os.Stdout, utils.DefaultPINCost); err != nil {
		log.Fatal(err)
	}
}

func run(console *terminal.Console, out io.Writer, cost int) error {
	prompt := console.Writer()

	fmt.Fprint(prompt, "New PIN: ") //nolint:errcheck
	pin, err := console.ReadMasked()
	if err != nil {
		return err
	}
	fmt.Fprint(prompt, "Confirm PIN: ") //nolint:errcheck
	confirm, err := console.ReadMasked()
	if err != nil {
		return err
	}
	if pin != confirm {
		return errPINMismatch
	}

	hash, err := utils.HashPIN(pin, cost)
	if err != nil {
		return fmt.Errorf("failed to hash PIN: %w", err)
	}
	_, err = fmt.Fprintln(out, hash)
	return err
}
