// Package console is the line-oriented front end around the compiler: an
// interactive loop, batch files and watch mode.
package console

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"
	"time"

	"github.com/polinichcka-coding/Compiler/internal/compiler"
	"github.com/polinichcka-coding/Compiler/internal/diagnostics"
	"github.com/rs/zerolog"
)

const maxLineSize = 1024 * 1024

type Session struct {
	Compiler  *compiler.Compiler
	Collector *diagnostics.Collector
	Logger    zerolog.Logger
	Styles    Styles

	// Prompt is written before each line is read; empty for piped input.
	Prompt string
	RunID  string
}

func NewSession(c *compiler.Compiler, logger zerolog.Logger) *Session {
	return &Session{
		Compiler:  c,
		Collector: diagnostics.New(logger),
		Logger:    logger,
	}
}

// Entry is the outcome of one input line.
type Entry struct {
	Line   int    `json:"line" yaml:"line"`
	Input  string `json:"input" yaml:"input"`
	Result string `json:"result" yaml:"result"`
	Ok     bool   `json:"ok" yaml:"ok"`
}

// Translate runs one expression, reporting failures to the collector.
func (s *Session) Translate(line int, input string) Entry {
	start := time.Now()
	entry := Entry{Line: line, Input: input}

	result, err := s.Compiler.Translate(input)
	if err != nil {
		entry.Result = compiler.FormatMistake(err)
		s.Collector.Report(line, input, err)
		return entry
	}

	entry.Result = result.Output
	entry.Ok = true
	s.Logger.Debug().
		Int("line", line).
		Int("tokens", len(result.Tokens)).
		Int("folded", result.Stats.Folded).
		Dur("took", time.Since(start)).
		Msg("translated")
	return entry
}

// Run reads one expression per line until EOF or ctx is done. Blank lines are
// skipped; every other line is echoed with its result. Cancelling ctx returns
// at once, even while a read is pending.
func (s *Session) Run(ctx context.Context, in io.Reader, out io.Writer) error {
	lines := make(chan string)
	readErr := make(chan error, 1)
	go readLines(ctx, in, lines, readErr)

	lineNo := 0
	for {
		if err := ctx.Err(); err != nil {
			return nil
		}
		if s.Prompt != "" {
			fmt.Fprint(out, s.Prompt)
		}

		var line string
		select {
		case <-ctx.Done():
			return nil
		case l, ok := <-lines:
			if !ok {
				if err := <-readErr; err != nil {
					return fmt.Errorf("reading input: %w", err)
				}
				return nil
			}
			line = l
		}
		lineNo++

		input := strings.TrimSpace(line)
		if input == "" {
			continue
		}
		s.WriteEntry(out, s.Translate(lineNo, input))
	}
}

// readLines sends every line of in to lines and closes it at EOF or when ctx
// is done. Exactly one value is sent on errc before lines is closed.
func readLines(ctx context.Context, in io.Reader, lines chan<- string, errc chan<- error) {
	defer close(lines)

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)
	for scanner.Scan() {
		select {
		case lines <- scanner.Text():
		case <-ctx.Done():
			errc <- nil
			return
		}
	}
	errc <- scanner.Err()
}

func (s *Session) WriteEntry(out io.Writer, entry Entry) {
	fmt.Fprintf(out, "%s %s\n", s.Styles.label("Expression:"), entry.Input)
	fmt.Fprintf(out, "%s %s\n", s.Styles.label("Result:"), s.Styles.result(entry.Result, entry.Ok))
	fmt.Fprintln(out)
}
