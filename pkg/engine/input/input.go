package input

import (
	"bufio"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

// KeyReader decodes key presses from a raw-mode terminal byte stream
type KeyReader struct {
	r *bufio.Reader
}

// NewKeyReader wraps r (normally os.Stdin in raw mode)
func NewKeyReader(r io.Reader) *KeyReader {
	return &KeyReader{r: bufio.NewReader(r)}
}

// MakeRaw puts the terminal behind f into raw mode and returns a function that restores it.
func MakeRaw(f *os.File) (func(), error) {
	fd := int(f.Fd())
	oldState, err := term.MakeRaw(fd)
	if err != nil {
		return nil, fmt.Errorf("cannot set terminal to raw mode: %w", err)
	}
	return func() {
		term.Restore(fd, oldState)
	}, nil
}

// ReadKey blocks until one key press is decoded and returns its code.
// Letters are lower-cased; arrows return "arrow_up" etc.
// Unknown escape sequences are discarded and reading continues.
func (k *KeyReader) ReadKey() (string, error) {
	for {
		b, err := k.r.ReadByte()
		if err != nil {
			return "", err
		}

		switch {
		case b == 3:
			return "ctrl_c", nil
		case b == '\r' || b == '\n':
			return "enter", nil
		case b == ' ':
			return "space", nil
		case b == 0x1b:
			code, err := k.readEscape()
			if err != nil {
				return "", err
			}
			if code != "" {
				return code, nil
			}
		case b >= 32 && b < 127:
			return strings.ToLower(string(b)), nil
		}
	}
}

// readEscape decodes the rest of an escape sequence.
// A lone ESC (nothing buffered behind it) is the escape key.
func (k *KeyReader) readEscape() (string, error) {
	if k.r.Buffered() == 0 {
		return "escape", nil
	}

	b2, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}
	// Handle both CSI sequences (ESC [) and SS3 sequences (ESC O)
	if b2 != '[' && b2 != 'O' {
		return "", nil
	}

	b3, err := k.r.ReadByte()
	if err != nil {
		return "", err
	}
	switch b3 {
	case 'A':
		return "arrow_up", nil
	case 'B':
		return "arrow_down", nil
	case 'C':
		return "arrow_right", nil
	case 'D':
		return "arrow_left", nil
	}

	// Function keys: ESC [ <digits> ~
	if b3 < '0' || b3 > '9' {
		return "", nil
	}
	digits := []byte{b3}
	for {
		b, err := k.r.ReadByte()
		if err != nil {
			return "", err
		}
		if b == '~' {
			break
		}
		if b < '0' || b > '9' {
			return "", nil
		}
		digits = append(digits, b)
	}
	switch string(digits) {
	case "15":
		return "f5", nil
	}
	return "", nil
}
