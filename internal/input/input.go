package input

import (
	"errors"
	"fmt"
	"io"
	"os"
	"strings"
	"unicode/utf8"

	"github.com/mattn/go-isatty"
	"golang.org/x/text/unicode/norm"
)

var (
	ErrNoInput    = errors.New("no input detected via pipe")
	ErrEmptyInput = errors.New("the input was empty")
)

// Options selects where the text comes from. Text wins over Path, Path
// wins over Stdin.
type Options struct {
	Text      string
	HasText   bool
	Path      string
	Stdin     io.Reader
	Normalize bool
}

// Read returns the text to segment.
func Read(opts Options) (string, error) {
	var (
		text string
		err  error
	)

	switch {
	case opts.HasText:
		text = opts.Text
	case opts.Path != "":
		text, err = readFile(opts.Path)
	default:
		text, err = readStdin(opts.Stdin)
	}
	if err != nil {
		return "", err
	}

	if strings.TrimSpace(text) == "" {
		return "", ErrEmptyInput
	}
	if opts.Normalize {
		text = norm.NFC.String(text)
	}
	return text, nil
}

func readFile(path string) (string, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return "", fmt.Errorf("read input file: %w", err)
	}
	return toValidUTF8(data), nil
}

func readStdin(r io.Reader) (string, error) {
	if r == nil {
		r = os.Stdin
	}
	if IsTerminal(r) {
		return "", ErrNoInput
	}
	data, err := io.ReadAll(r)
	if err != nil {
		return "", fmt.Errorf("failed to read from stdin: %w", err)
	}
	return toValidUTF8(data), nil
}

// IsTerminal reports whether r is an interactive terminal.
func IsTerminal(r io.Reader) bool {
	file, ok := r.(*os.File)
	if !ok {
		return false
	}
	fd := file.Fd()
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}

// invalid bytes become U+FFFD
func toValidUTF8(data []byte) string {
	if utf8.Valid(data) {
		return string(data)
	}
	return strings.ToValidUTF8(string(data), string(utf8.RuneError))
}
