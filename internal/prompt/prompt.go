package prompt

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"golang.org/x/term"
)

var ErrAborted = errors.New("aborted")

// Prompter asks questions on out and reads answers from in. Hidden input is
// only possible when in is a terminal; otherwise answers are read as lines.
type Prompter struct {
	in       *bufio.Reader
	out      io.Writer
	fd       int
	terminal bool
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	p := &Prompter{in: bufio.NewReader(in), out: out}
	if f, ok := in.(*os.File); ok && term.IsTerminal(int(f.Fd())) {
		p.fd = int(f.Fd())
		p.terminal = true
	}
	return p
}

// Prompt asks until a non-empty answer is given.
func (p *Prompter) Prompt(label string) (string, error) {
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		answer, err := p.readLine()
		if err != nil {
			return "", err
		}
		if answer != "" {
			return answer, nil
		}
	}
}

// PromptHidden is Prompt without echoing the answer.
func (p *Prompter) PromptHidden(label string) (string, error) {
	if !p.terminal {
		return p.Prompt(label)
	}
	for {
		fmt.Fprintf(p.out, "%s: ", label)
		answer, err := term.ReadPassword(p.fd)
		fmt.Fprintln(p.out)
		if err != nil {
			return "", fmt.Errorf("error reading input: %w", err)
		}
		if len(answer) > 0 {
			return string(answer), nil
		}
	}
}

// Confirm asks a yes/no question, defaulting to no.
func (p *Prompter) Confirm(label string) (bool, error) {
	for {
		fmt.Fprintf(p.out, "%s [y/N]: ", label)
		answer, err := p.readLine()
		if err != nil {
			return false, err
		}
		switch strings.ToLower(strings.TrimSpace(answer)) {
		case "y", "yes":
			return true, nil
		case "", "n", "no":
			return false, nil
		default:
			fmt.Fprintln(p.out, "Error: invalid input")
		}
	}
}

func (p *Prompter) readLine() (string, error) {
	line, err := p.in.ReadString('\n')
	if err != nil {
		if errors.Is(err, io.EOF) && line != "" {
			return strings.TrimRight(line, "\r\n"), nil
		}
		if errors.Is(err, io.EOF) {
			return "", ErrAborted
		}
		return "", fmt.Errorf("error reading input: %w", err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}
