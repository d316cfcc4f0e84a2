package diagnostics

import (
	"bytes"
	"errors"
	"testing"

	"github.com/polinichcka-coding/Compiler/internal/compiler"
	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReport(t *testing.T) {
	var logs bytes.Buffer
	collector := New(zerolog.New(&logs))

	_, err := compiler.Translate("add(1)")
	require.Error(t, err)
	collector.Report(3, "add(1)", err)

	require.Len(t, collector.Diags, 1)
	assert.Equal(t, Diag{
		Line:    3,
		Input:   "add(1)",
		Stage:   "validate",
		Message: "Function add expects 2 but receives 1",
	}, collector.Diags[0])
	assert.Contains(t, logs.String(), `"level":"warn"`)
	assert.Contains(t, logs.String(), `"stage":"validate"`)
}

func TestReportUnknownStage(t *testing.T) {
	collector := New(zerolog.Nop())
	collector.Report(0, "x", errors.New("boom"))
	assert.Equal(t, "unknown", collector.Diags[0].Stage)
}

func TestByStageAndErr(t *testing.T) {
	collector := New(zerolog.Nop())
	assert.False(t, collector.HasErrors())
	assert.NoError(t, collector.Err())

	for _, src := range []string{"1+2", "foo(1,2)", "add(1)", "add(1,"} {
		_, err := compiler.Translate(src)
		collector.Report(0, src, err)
	}

	assert.Equal(t, map[string]int{"lex": 1, "parse": 1, "validate": 2}, collector.ByStage())
	assert.ErrorIs(t, collector.Err(), COMPILER_ERROR_FOUND)

	collector.Reset()
	assert.False(t, collector.HasErrors())
}
