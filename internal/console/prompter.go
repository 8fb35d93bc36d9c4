// Package console reads line-oriented answers from an interactive terminal.
package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"
)

const invalidNumberMessage = "Please enter a valid number."

// Prompter writes prompts to out and reads one line of input per answer.
// Read errors, including io.EOF once input is exhausted, are returned as is.
type Prompter struct {
	in  *bufio.Scanner
	out io.Writer
}

func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	return &Prompter{in: bufio.NewScanner(in), out: out}
}

func (p *Prompter) Out() io.Writer {
	return p.out
}

func (p *Prompter) Println(a ...any) {
	fmt.Fprintln(p.out, a...)
}

func (p *Prompter) Printf(format string, a ...any) {
	fmt.Fprintf(p.out, format, a...)
}

// Line prints prompt and returns the next input line without the newline.
func (p *Prompter) Line(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	if !p.in.Scan() {
		if err := p.in.Err(); err != nil {
			return "", fmt.Errorf("console: read input: %w", err)
		}
		return "", io.EOF
	}
	return strings.TrimRight(p.in.Text(), "\r"), nil
}

// Int prompts until the answer parses as an integer.
func (p *Prompter) Int(prompt string) (int, error) {
	for {
		line, err := p.Line(prompt)
		if err != nil {
			return 0, err
		}
		n, err := strconv.Atoi(strings.TrimSpace(line))
		if err == nil {
			return n, nil
		}
		fmt.Fprintln(p.out, invalidNumberMessage)
	}
}

// Confirm reports whether the answer is "yes", ignoring case and surrounding spaces.
func (p *Prompter) Confirm(prompt string) (bool, error) {
	line, err := p.Line(prompt)
	if err != nil {
		return false, err
	}
	return strings.EqualFold(strings.TrimSpace(line), "yes"), nil
}
