package main

import (
	"encoding/json"
	"fmt"
	"os"
	"os/signal"
	"runtime"
	"syscall"

	"github.com/polinichcka-coding/Compiler/internal/ast"
	"github.com/polinichcka-coding/Compiler/internal/codegen/llvm"
	"github.com/polinichcka-coding/Compiler/internal/compiler"
	"github.com/polinichcka-coding/Compiler/internal/config"
	"github.com/polinichcka-coding/Compiler/internal/console"
	"github.com/polinichcka-coding/Compiler/internal/diagnostics"
	"github.com/spf13/cobra"
)

func (a *app) newTranslateCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "translate <expression>...",
		Short: "Translate each argument and print one result per line",
		Example: `  infixc translate 'add(1,mul(2,3))'
  infixc translate 'pow(2,pow(3,4))' 'mul(0,add(3,4))'`,
		Args: cobra.MinimumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			s := a.newSession(cmd)
			for i, arg := range args {
				entry := s.Translate(i+1, arg)
				fmt.Fprintln(cmd.OutOrStdout(), entry.Result)
			}
			return s.Collector.Err()
		},
	}
}

func (a *app) newReplCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "repl",
		Short: "Read expressions from stdin, one per line",
		Args:  cobra.NoArgs,
		RunE:  a.runRepl,
	}
}

func (a *app) runRepl(cmd *cobra.Command, args []string) error {
	ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
	defer stop()

	s := a.newSession(cmd)
	if console.IsTerminal(cmd.InOrStdin()) {
		s.Prompt = a.cfg.Prompt
	}
	return s.Run(ctx, cmd.InOrStdin(), cmd.OutOrStdout())
}

func (a *app) newBatchCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "batch <file>",
		Short: "Translate every line of a file",
		Long:  "Translate every non-blank line of a file and print a report as text, json or yaml.",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			format := a.outputFormat(cmd, output)
			s := a.newSession(cmd)

			report, err := s.BatchFile(args[0])
			if err != nil {
				return err
			}
			if err := s.WriteReport(cmd.OutOrStdout(), report, format); err != nil {
				return err
			}
			return s.Collector.Err()
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "report format (text, json, yaml)")
	return cmd
}

func (a *app) newWatchCmd() *cobra.Command {
	var output string

	cmd := &cobra.Command{
		Use:   "watch <file>",
		Short: "Translate a file again every time it is saved",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			ctx, stop := signal.NotifyContext(cmd.Context(), os.Interrupt, syscall.SIGTERM)
			defer stop()

			format := a.outputFormat(cmd, output)
			s := a.newSession(cmd)
			return console.Watch(ctx, args[0], a.logger, func() error {
				s.Collector.Reset()
				report, err := s.BatchFile(args[0])
				if err != nil {
					return err
				}
				return s.WriteReport(cmd.OutOrStdout(), report, format)
			})
		},
	}
	cmd.Flags().StringVarP(&output, "output", "o", "", "report format (text, json, yaml)")
	return cmd
}

func (a *app) outputFormat(cmd *cobra.Command, flag string) string {
	if cmd.Flags().Changed("output") {
		return flag
	}
	return a.cfg.Output
}

func (a *app) newInspectCmd() *cobra.Command {
	return &cobra.Command{
		Use:   "inspect <expression>",
		Short: "Show the tokens and trees built for an expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			result, err := a.compiler.Translate(args[0])
			if err != nil {
				fmt.Fprintln(out, compiler.FormatMistake(err))
				return diagnostics.COMPILER_ERROR_FOUND
			}

			fmt.Fprintln(out, "Tokens:")
			for _, tok := range result.Tokens {
				fmt.Fprintf(out, "  %s\n", tok)
			}
			fmt.Fprintf(out, "Tree: %s (depth %d)\n%s", result.Tree, ast.Depth(result.Tree), ast.Dump(result.Tree))
			fmt.Fprintf(out, "Optimized: %s (depth %d, %s)\n%s", result.Optimized, ast.Depth(result.Optimized), result.Stats, ast.Dump(result.Optimized))
			fmt.Fprintf(out, "Result: %s\n", result.Output)
			return nil
		},
	}
}

func (a *app) newLlvmCmd() *cobra.Command {
	var name string

	cmd := &cobra.Command{
		Use:   "llvm <expression>",
		Short: "Print LLVM IR computing the optimized expression",
		Args:  cobra.ExactArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			result, err := a.compiler.Translate(args[0])
			if err != nil {
				fmt.Fprintln(out, compiler.FormatMistake(err))
				return diagnostics.COMPILER_ERROR_FOUND
			}

			ir, err := llvm.Emit(result.Optimized, name)
			if err != nil {
				return err
			}
			fmt.Fprint(out, ir)
			return nil
		},
	}
	cmd.Flags().StringVar(&name, "name", llvm.DefaultFunctionName, "name of the emitted function")
	return cmd
}

func (a *app) newEnvCmd() *cobra.Command {
	var initFile bool

	cmd := &cobra.Command{
		Use:   "env",
		Short: "Show the effective configuration",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			out := cmd.OutOrStdout()

			path := a.cfgFile
			if path == "" {
				defaultPath, err := config.DefaultPath()
				if err != nil {
					return err
				}
				path = defaultPath
			}

			if initFile {
				created, err := config.WriteDefault(path)
				if err != nil {
					return err
				}
				if created {
					a.logger.Info().Str("path", path).Msg("wrote default config")
				}
			}

			state := "missing, using defaults"
			if config.Exists(path) {
				state = "found"
			}
			fmt.Fprintf(out, "config='%s' (%s)\n", path, state)
			for _, kv := range a.cfg.Values() {
				fmt.Fprintf(out, "%s='%s'\n", kv[0], kv[1])
			}
			return nil
		},
	}
	cmd.Flags().BoolVar(&initFile, "init", false, "write a default config file if none exists")
	return cmd
}

type versionInfo struct {
	Version   string `json:"version"`
	Commit    string `json:"commit"`
	GoVersion string `json:"go_version"`
	Platform  string `json:"platform"`
}

func (a *app) newVersionCmd() *cobra.Command {
	var jsonOutput bool

	cmd := &cobra.Command{
		Use:   "version",
		Short: "Print version information",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			info := versionInfo{
				Version:   version,
				Commit:    commit,
				GoVersion: runtime.Version(),
				Platform:  runtime.GOOS + "/" + runtime.GOARCH,
			}
			out := cmd.OutOrStdout()

			if jsonOutput {
				enc := json.NewEncoder(out)
				enc.SetIndent("", "  ")
				return enc.Encode(info)
			}
			fmt.Fprintf(out, "infixc v%s (%s)\n", info.Version, info.Commit)
			fmt.Fprintf(out, "Go Version: %s\n", info.GoVersion)
			fmt.Fprintf(out, "Platform: %s\n", info.Platform)
			return nil
		},
	}
	cmd.Flags().BoolVar(&jsonOutput, "json", false, "print as JSON")
	return cmd
}
