package lifecycle

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"sync"
)

// Prompter asks the player for one line of input.
type Prompter interface {
	Prompt(ctx context.Context, label string) (string, error)
}

type answer struct {
	line string
	err  error
}

// LinePrompter reads newline-terminated answers. The quit token and end of
// input both surface as ErrQuit. A cancelled context ends a pending Prompt
// without waiting for the line.
type LinePrompter struct {
	scanner *bufio.Scanner
	out     io.Writer
	once    sync.Once
	answers chan answer
}

func NewLinePrompter(in io.Reader, out io.Writer) *LinePrompter {
	return &LinePrompter{
		scanner: bufio.NewScanner(in),
		out:     out,
		answers: make(chan answer),
	}
}

// read feeds answers one at a time; the channel closes at end of input.
func (p *LinePrompter) read() {
	defer close(p.answers)

	for p.scanner.Scan() {
		p.answers <- answer{line: p.scanner.Text()}
	}
	if err := p.scanner.Err(); err != nil {
		p.answers <- answer{err: err}
	}
}

func (p *LinePrompter) Prompt(ctx context.Context, label string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	fmt.Fprint(p.out, label)
	p.once.Do(func() { go p.read() })

	select {
	case <-ctx.Done():
		return "", ctx.Err()
	case a, ok := <-p.answers:
		if !ok {
			return "", ErrQuit
		}
		if a.err != nil {
			return "", a.err
		}
		if IsQuit(a.line) {
			return "", ErrQuit
		}
		return a.line, nil
	}
}
