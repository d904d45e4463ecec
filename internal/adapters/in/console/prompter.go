package console

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"strconv"
	"strings"
)

// ErrInputClosed is returned when the operator's input ends before a dialog
// is complete.
var ErrInputClosed = errors.New("input closed")

// Prompter reads trimmed answers from the operator.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter creates a prompter reading from in and writing prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{
		in:  bufio.NewReader(in),
		out: out,
	}
}

// Ask prints label and returns the next line without surrounding whitespace.
// A final line without a newline is still returned; ErrInputClosed follows on
// the next call.
func (p *Prompter) Ask(label string) (string, error) {
	fmt.Fprintf(p.out, "%s: ", label)

	line, err := p.in.ReadString('\n')
	if err != nil {
		if !errors.Is(err, io.EOF) {
			return "", fmt.Errorf("read input: %w", err)
		}
		if line == "" {
			fmt.Fprintln(p.out)
			return "", ErrInputClosed
		}
	}

	return strings.TrimSpace(line), nil
}

// AskInt asks until the answer is an integer accepted by valid. hint is
// printed after every rejected answer.
func (p *Prompter) AskInt(label string, valid func(int) bool, hint string) (int, error) {
	for {
		raw, err := p.Ask(label)
		if err != nil {
			return 0, err
		}

		if n, ok := parseInt(raw); ok && valid(n) {
			return n, nil
		}
		p.Say(hint)
	}
}

// Say prints one line.
func (p *Prompter) Say(format string, args ...any) {
	fmt.Fprintf(p.out, format+"\n", args...)
}

func parseInt(raw string) (int, bool) {
	n, err := strconv.Atoi(strings.TrimSpace(raw))
	if err != nil {
		return 0, false
	}
	return n, true
}
