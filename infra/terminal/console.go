// Package terminal provides the console capability used by a teller session:
// masked PIN entry, line input, pausing, and clearing the display.
//
// On a TTY, masked reads and pauses switch stdin to raw mode with
// golang.org/x/term and restore it before returning. Without a TTY the same
// key handling runs over buffered input, so scripted sessions behave like
// typed ones.
package terminal

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"
	"unicode"

	"golang.org/x/term"
)

var (
	// ErrInterrupted is returned when Ctrl-C is pressed during a raw read.
	ErrInterrupted = errors.New("input interrupted")
)

const (
	keyInterrupt = 0x03
	keyBackspace = 0x08
	keyEscape    = 0x1b
	keyDelete    = 0x7f

	maskChar = "*"
	// back, overwrite with space, back again
	eraseSequence = "\b \b"
	clearSequence = "\033[H\033[2J"
)

// Console reads keys and lines from an input device and echoes to a display.
type Console struct {
	in  *bufio.Reader
	out io.Writer
	fd  int
	tty bool
}

// New returns a Console over a file such as os.Stdin. Raw mode is used only
// when the file is a terminal.
func New(in *os.File, out io.Writer) *Console {
	fd := int(in.Fd())
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		fd:  fd,
		tty: term.IsTerminal(fd),
	}
}

// NewBuffered returns a Console that never enters raw mode.
func NewBuffered(in io.Reader, out io.Writer) *Console {
	return &Console{
		in:  bufio.NewReader(in),
		out: out,
		fd:  -1,
	}
}

// Interactive reports whether the input device is a terminal.
func (c *Console) Interactive() bool {
	return c.tty
}

// Writer returns the display device.
func (c *Console) Writer() io.Writer {
	return c.out
}

// ReadLine reads one line of unmasked input without its line terminator.
// A final line without a terminator is returned as is; io.EOF is returned
// only when nothing was read.
func (c *Console) ReadLine() (string, error) {
	line, err := c.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		return "", err
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// ReadMasked reads one line, echoing a mask per character typed. Like
// ReadLine, a final line without a terminator is returned as is.
func (c *Console) ReadMasked() (string, error) {
	if c.tty {
		state, err := term.MakeRaw(c.fd)
		if err != nil {
			return "", err
		}
		defer term.Restore(c.fd, state) //nolint:errcheck
	}
	return c.readLineMasked()
}

func (c *Console) readLineMasked() (string, error) {
	var buf []rune
	for {
		r, _, err := c.in.ReadRune()
		if err != nil {
			if errors.Is(err, io.EOF) && len(buf) > 0 {
				c.newline()
				return string(buf), nil
			}
			return "", err
		}
		switch {
		case r == '\n' || r == '\r':
			if r == '\r' && !c.tty {
				c.skipLineFeed()
			}
			c.newline()
			return string(buf), nil
		case r == keyBackspace || r == keyDelete:
			if len(buf) > 0 {
				buf = buf[:len(buf)-1]
				c.eraseLastMask()
			}
		case r == keyEscape:
			c.skipEscapeSequence()
		case r == keyInterrupt && c.tty:
			c.newline()
			return "", ErrInterrupted
		case unicode.IsPrint(r):
			buf = append(buf, r)
			c.appendVisibleMask()
		}
	}
}

// skipLineFeed drops the '\n' of a "\r\n" pair when it is already buffered.
func (c *Console) skipLineFeed() {
	if c.in.Buffered() == 0 {
		return
	}
	if b, err := c.in.Peek(1); err == nil && b[0] == '\n' {
		_, _ = c.in.ReadByte()
	}
}

// skipEscapeSequence discards the rest of a CSI or SS3 sequence (arrow and
// function keys) that arrived together with its ESC.
func (c *Console) skipEscapeSequence() {
	if c.in.Buffered() == 0 {
		return
	}
	b, err := c.in.Peek(1)
	if err != nil || (b[0] != '[' && b[0] != 'O') {
		return
	}
	introducer, _ := c.in.ReadByte()
	for c.in.Buffered() > 0 {
		final, err := c.in.ReadByte()
		if err != nil {
			return
		}
		if introducer == 'O' || (final >= 0x40 && final <= 0x7e) {
			return
		}
	}
}

func (c *Console) appendVisibleMask() {
	_, _ = io.WriteString(c.out, maskChar)
}

func (c *Console) eraseLastMask() {
	_, _ = io.WriteString(c.out, eraseSequence)
}

func (c *Console) newline() {
	if c.tty {
		_, _ = io.WriteString(c.out, "\r\n")
		return
	}
	_, _ = io.WriteString(c.out, "\n")
}

// WaitForKey blocks until a single key is pressed. Without a terminal there
// is nobody to acknowledge, so it returns immediately.
func (c *Console) WaitForKey() error {
	if !c.tty {
		return nil
	}
	state, err := term.MakeRaw(c.fd)
	if err != nil {
		return err
	}
	defer term.Restore(c.fd, state) //nolint:errcheck

	return c.readKey()
}

// readKey consumes one key press. Arrow and function keys arrive as an
// escape sequence and are consumed whole.
func (c *Console) readKey() error {
	r, _, err := c.in.ReadRune()
	if err != nil {
		return err
	}
	switch r {
	case keyInterrupt:
		return ErrInterrupted
	case keyEscape:
		c.skipEscapeSequence()
	}
	return nil
}

// Clear erases the display. It is a no-op without a terminal so that
// transcripts stay readable.
func (c *Console) Clear() {
	if !c.tty {
		return
	}
	_, _ = io.WriteString(c.out, clearSequence)
}
