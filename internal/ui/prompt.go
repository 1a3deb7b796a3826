package ui

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Prompter reads operator input line by line from an interactive stream.
// Both streams are injected so the whole dialogue is testable; the single
// buffered reader is shared for the lifetime of a run, so no input is
// lost between prompts.
type Prompter struct {
	in  *bufio.Reader
	out io.Writer
}

// NewPrompter wraps the given streams. in is usually os.Stdin and out
// os.Stdout.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewReader(in), out: out}
}

// Ask prints the prompt verbatim (prompts carry their own spacing) and
// returns the next input line with surrounding whitespace trimmed.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)

	input, err := p.in.ReadString('\n')
	if err != nil && input == "" {
		return "", fmt.Errorf("read input: %w", err)
	}

	return strings.TrimSpace(input), nil
}
