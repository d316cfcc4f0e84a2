package testutil

import (
	"bytes"

	"github.com/polinichcka-coding/Compiler/internal/codegen/infix"
	"github.com/polinichcka-coding/Compiler/internal/compiler"
	"github.com/polinichcka-coding/Compiler/internal/console"
	"github.com/polinichcka-coding/Compiler/internal/diagnostics"
	"github.com/rs/zerolog"
)

func CompileFile(path string) (string, *diagnostics.Collector) {
	return CompileFileWithOptions(path, compiler.Options{})
}

// CompileFileWithOptions translates every line of path like `infixc batch`
// does and returns the plain text report.
func CompileFileWithOptions(path string, opts compiler.Options) (string, *diagnostics.Collector) {
	session := console.NewSession(compiler.New(opts), zerolog.Nop())

	report, err := session.BatchFile(path)
	if err != nil {
		session.Collector.ReportAndSave(diagnostics.Diag{Message: err.Error()})
		return "", session.Collector
	}

	var out bytes.Buffer
	if err := session.WriteReport(&out, report, "text"); err != nil {
		session.Collector.ReportAndSave(diagnostics.Diag{Message: err.Error()})
		return "", session.Collector
	}
	return out.String(), session.Collector
}

func ParentRelative() compiler.Options {
	return compiler.Options{Codegen: infix.Options{NestedTernary: infix.PARENT_RELATIVE}}
}
