package input

import (
	"fmt"
	"io"
	"os"
	"time"

	"golang.org/x/term"
)

// KeyReader reads single key presses from a terminal in raw mode.
type KeyReader struct {
	in      io.Reader
	fd      int
	pending []byte
}

// NewKeyReader returns a KeyReader on stdin.
func NewKeyReader() *KeyReader {
	return NewKeyReaderFrom(os.Stdin)
}

// NewKeyReaderFrom returns a KeyReader on in. Raw mode is only used when in
// is a terminal.
func NewKeyReaderFrom(in io.Reader) *KeyReader {
	fd := -1
	if f, ok := in.(*os.File); ok {
		fd = int(f.Fd())
	}
	return &KeyReader{in: in, fd: fd}
}

// fill reads whatever is ready when nothing is pending. A terminal delivers
// a whole escape sequence in one read, so a lone ESC arrives on its own.
func (r *KeyReader) fill() error {
	if len(r.pending) > 0 {
		return nil
	}
	buf := make([]byte, 16)
	n, err := r.in.Read(buf)
	if n > 0 {
		r.pending = buf[:n]
		return nil
	}
	if err == nil {
		err = io.ErrNoProgress
	}
	return err
}

func (r *KeyReader) next() byte {
	b := r.pending[0]
	r.pending = r.pending[1:]
	return b
}

// ReadKey blocks for one key press and returns it as a raw input. The
// terminal is only held in raw mode for the duration of the read.
func (r *KeyReader) ReadKey() (RawInput, error) {
	if term.IsTerminal(r.fd) {
		oldState, err := term.MakeRaw(r.fd)
		if err != nil {
			return RawInput{}, fmt.Errorf("raw mode: %w", err)
		}
		defer term.Restore(r.fd, oldState)
	}

	code, err := r.readCode()
	if err != nil {
		return RawInput{}, err
	}
	return RawInput{Device: DeviceTerminal, Code: code, Timestamp: time.Now()}, nil
}

func (r *KeyReader) readCode() (string, error) {
	if err := r.fill(); err != nil {
		return "", fmt.Errorf("read key: %w", err)
	}
	b1 := r.next()

	switch {
	case b1 == 3:
		return "ctrl_c", nil
	case b1 == '\r' || b1 == '\n':
		return "enter", nil
	case b1 == 0x1b:
		return r.readEscape(), nil
	case b1 >= 32 && b1 < 127:
		return string(rune(b1)), nil
	}
	return "", nil
}

// readEscape decodes an arrow key from the bytes read with the ESC. Both CSI
// (ESC [) and SS3 (ESC O) forms are accepted. It never reads again, so a bare
// ESC is reported as escape straight away.
func (r *KeyReader) readEscape() string {
	if len(r.pending) == 0 || (r.pending[0] != '[' && r.pending[0] != 'O') {
		return "escape"
	}
	r.next()
	if len(r.pending) == 0 {
		return "escape"
	}
	switch r.next() {
	case 'A':
		return "arrow_up"
	case 'B':
		return "arrow_down"
	case 'C':
		return "arrow_right"
	case 'D':
		return "arrow_left"
	}
	return ""
}
