package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/polinichcka-coding/Compiler/internal/diagnostics"
)

var (
	version = "1.0.0"
	commit  = "none"
)

func main() {
	if err := newRootCmd().Execute(); err != nil {
		// mistakes were already printed next to their expressions
		if !errors.Is(err, diagnostics.COMPILER_ERROR_FOUND) {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		}
		os.Exit(1)
	}
}
