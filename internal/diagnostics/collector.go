package diagnostics

import (
	"errors"

	"github.com/polinichcka-coding/Compiler/internal/compiler"
	"github.com/rs/zerolog"
)

var (
	COMPILER_ERROR_FOUND = errors.New("compiler error found")
)

// Diag is one failed translation. Line is 1-based, 0 when the input did not
// come from a file.
type Diag struct {
	Line    int    `json:"line,omitempty" yaml:"line,omitempty"`
	Input   string `json:"input" yaml:"input"`
	Stage   string `json:"stage" yaml:"stage"`
	Message string `json:"message" yaml:"message"`
}

type Collector struct {
	Diags []Diag

	logger zerolog.Logger
}

func New(logger zerolog.Logger) *Collector {
	return &Collector{
		Diags:  nil,
		logger: logger,
	}
}

func (collector *Collector) ReportAndSave(diag Diag) {
	collector.logger.Warn().
		Int("line", diag.Line).
		Str("stage", diag.Stage).
		Str("input", diag.Input).
		Msg(diag.Message)
	collector.Diags = append(collector.Diags, diag)
}

// Report records err for input. The stage is taken from a
// *compiler.StageError when err wraps one.
func (collector *Collector) Report(line int, input string, err error) {
	stage := "unknown"
	var stageErr *compiler.StageError
	if errors.As(err, &stageErr) {
		stage = stageErr.Stage.String()
	}
	collector.ReportAndSave(Diag{Line: line, Input: input, Stage: stage, Message: err.Error()})
}

func (collector *Collector) HasErrors() bool {
	return len(collector.Diags) > 0
}

// Err returns COMPILER_ERROR_FOUND when anything was reported.
func (collector *Collector) Err() error {
	if collector.HasErrors() {
		return COMPILER_ERROR_FOUND
	}
	return nil
}

// ByStage counts the reported diagnostics per stage.
func (collector *Collector) ByStage() map[string]int {
	counts := make(map[string]int)
	for _, diag := range collector.Diags {
		counts[diag.Stage]++
	}
	return counts
}

func (collector *Collector) Reset() {
	collector.Diags = nil
}
