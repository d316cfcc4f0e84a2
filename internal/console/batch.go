package console

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"os"
	"strings"

	"gopkg.in/yaml.v3"
)

type Report struct {
	RunID    string  `json:"run_id" yaml:"run_id"`
	Source   string  `json:"source" yaml:"source"`
	Entries  []Entry `json:"entries" yaml:"entries"`
	Mistakes int     `json:"mistakes" yaml:"mistakes"`
}

// Batch translates every non-blank line of in. Line numbers count blank
// lines too, so they match the source file.
func (s *Session) Batch(source string, in io.Reader) (*Report, error) {
	report := &Report{RunID: s.RunID, Source: source, Entries: []Entry{}}

	scanner := bufio.NewScanner(in)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineSize)

	lineNo := 0
	for scanner.Scan() {
		lineNo++
		input := strings.TrimSpace(scanner.Text())
		if input == "" {
			continue
		}

		entry := s.Translate(lineNo, input)
		if !entry.Ok {
			report.Mistakes++
		}
		report.Entries = append(report.Entries, entry)
	}
	if err := scanner.Err(); err != nil {
		return nil, fmt.Errorf("reading %s: %w", source, err)
	}

	s.Logger.Info().
		Str("source", source).
		Int("expressions", len(report.Entries)).
		Int("mistakes", report.Mistakes).
		Msg("batch finished")
	return report, nil
}

func (s *Session) BatchFile(path string) (*Report, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer file.Close()
	return s.Batch(path, file)
}

// WriteReport renders report as text, json or yaml.
func (s *Session) WriteReport(w io.Writer, report *Report, format string) error {
	switch format {
	case "json":
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(report)
	case "yaml":
		enc := yaml.NewEncoder(w)
		enc.SetIndent(2)
		if err := enc.Encode(report); err != nil {
			return err
		}
		return enc.Close()
	case "text", "":
		for _, entry := range report.Entries {
			s.WriteEntry(w, entry)
		}
		_, err := fmt.Fprintf(w, "%d expressions, %d mistakes\n", len(report.Entries), report.Mistakes)
		return err
	default:
		return fmt.Errorf("unknown output format %q", format)
	}
}
