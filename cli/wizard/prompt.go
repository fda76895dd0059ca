package wizard

import (
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"os/signal"
)

// ErrInterrupted reports an interrupt signal or input EOF during a
// prompt wait. The session ends with a farewell, not an error exit.
var ErrInterrupted = errors.New("prompt interrupted")

// Prompter reads line-oriented answers to prompts, turning Ctrl+C and
// closed stdin into ErrInterrupted instead of killing the process
// mid-prompt.
type Prompter struct {
	out   io.Writer
	lines <-chan string
	sigs  chan os.Signal
}

// NewPrompter creates a prompter reading answers from in and writing
// prompts to out.
func NewPrompter(in io.Reader, out io.Writer) *Prompter {
	lines := make(chan string)
	go func() {
		scanner := bufio.NewScanner(in)
		for scanner.Scan() {
			lines <- scanner.Text()
		}
		close(lines)
	}()

	sigs := make(chan os.Signal, 1)
	signal.Notify(sigs, os.Interrupt)

	return &Prompter{out: out, lines: lines, sigs: sigs}
}

// Ask prints the prompt and blocks for the next input line.
func (p *Prompter) Ask(prompt string) (string, error) {
	fmt.Fprint(p.out, prompt)
	select {
	case line, ok := <-p.lines:
		if !ok {
			return "", ErrInterrupted
		}
		return line, nil
	case <-p.sigs:
		return "", ErrInterrupted
	}
}

// Close releases the signal registration.
func (p *Prompter) Close() {
	signal.Stop(p.sigs)
}
