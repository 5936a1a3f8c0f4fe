// Package input provides the sources a single expression line is read from.
package input

import (
	"bufio"
	"errors"
	"io"
	"os"
	"strings"

	"github.com/peterh/liner"
	"golang.org/x/term"
)

// ErrAborted is returned when the user interrupts an interactive prompt.
var ErrAborted = errors.New("input aborted")

// LineSource yields one line of text without its line terminator.
// io.EOF reports that no line is available.
type LineSource interface {
	ReadLine() (string, error)
	Close() error
}

// Open returns an interactive prompt when f is a terminal and a plain reader otherwise.
func Open(f *os.File, prompt string) LineSource {
	if term.IsTerminal(int(f.Fd())) {
		return NewTerminal(prompt)
	}
	return NewReader(f)
}

type Reader struct {
	reader *bufio.Reader
}

func NewReader(r io.Reader) *Reader {
	return &Reader{reader: bufio.NewReader(r)}
}

// ReadLine returns the next line; a final line without a newline is still returned.
func (r *Reader) ReadLine() (string, error) {
	line, err := r.reader.ReadString('\n')
	if err != nil && !(errors.Is(err, io.EOF) && line != "") {
		return "", err
	}

	line = strings.TrimSuffix(line, "\n")
	return strings.TrimSuffix(line, "\r"), nil
}

func (r *Reader) Close() error {
	return nil
}

// Terminal prompts for a line with editing support.
type Terminal struct {
	state  *liner.State
	prompt string
}

func NewTerminal(prompt string) *Terminal {
	state := liner.NewLiner()
	state.SetCtrlCAborts(true)

	return &Terminal{
		state:  state,
		prompt: prompt,
	}
}

func (t *Terminal) ReadLine() (string, error) {
	line, err := t.state.Prompt(t.prompt)
	if errors.Is(err, liner.ErrPromptAborted) {
		return "", ErrAborted
	}
	if err != nil {
		return "", err
	}

	return line, nil
}

// Close restores the terminal mode.
func (t *Terminal) Close() error {
	return t.state.Close()
}

// String serves a fixed line once.
type String struct {
	line string
	read bool
}

func NewString(line string) *String {
	return &String{line: line}
}

func (s *String) ReadLine() (string, error) {
	if s.read {
		return "", io.EOF
	}
	s.read = true
	return s.line, nil
}

func (s *String) Close() error {
	return nil
}
