package main

import (
	"bytes"
	"strings"
	"testing"

	"github.com/amirasaad/teller/infra/terminal"
	"github.com/amirasaad/teller/pkg/utils"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func TestRun(t *testing.T) {
	prompts := &bytes.Buffer{}
	out := &bytes.Buffer{}
	console := terminal.NewBuffered(strings.NewReader("5050\n5050\n"), prompts)

	require.NoError(t, run(console, out, bcrypt.MinCost))

	hash := strings.TrimSpace(out.String())
	assert.True(t, utils.CheckPINHash("5050", hash))
	assert.Contains(t, prompts.String(), "New PIN: ****")
	assert.NotContains(t, prompts.String(), "5050")
}

func TestRunMismatch(t *testing.T) {
	console := terminal.NewBuffered(strings.NewReader("5050\n5051\n"), &bytes.Buffer{})
	out := &bytes.Buffer{}

	err := run(console, out, bcrypt.MinCost)
	assert.ErrorIs(t, err, errPINMismatch)
	assert.Empty(t, out.String())
}

func TestRunPINTooLong(t *testing.T) {
	pin := strings.Repeat("1", utils.MaxPINBytes+1)
	console := terminal.NewBuffered(strings.NewReader(pin+"\n"+pin+"\n"), &bytes.Buffer{})
	out := &bytes.Buffer{}

	err := run(console, out, bcrypt.MinCost)
	assert.ErrorIs(t, err, utils.ErrPINTooLong)
	assert.Empty(t, out.String())
}
