package main

import (
	"os"

	"github.com/google/uuid"
	"github.com/polinichcka-coding/Compiler/internal/codegen/infix"
	"github.com/polinichcka-coding/Compiler/internal/compiler"
	"github.com/polinichcka-coding/Compiler/internal/config"
	"github.com/polinichcka-coding/Compiler/internal/console"
	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
)

// app is the state shared by every command, filled in by load before a
// command runs.
type app struct {
	cfgFile  string
	logLevel string
	color    string
	ternary  string

	cfg      *config.Config
	logger   zerolog.Logger
	compiler *compiler.Compiler
	runID    string
}

func newRootCmd() *cobra.Command {
	a := &app{}

	rootCmd := &cobra.Command{
		Use:   "infixc",
		Short: "Translate prefix function calls into infix expressions",
		Long: `infixc rewrites expressions such as add(1,mul(2,3)) into infix form,
folding additive and multiplicative identities on the way.

Functions: ` + infix.Symbols() + `

Without a command infixc reads one expression per line from stdin.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
		RunE: a.runRepl,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVar(&a.cfgFile, "config", "", "config file (default: $XDG_CONFIG_HOME/infixc/config.toml)")
	flags.StringVar(&a.logLevel, "log-level", "", "log level (debug, info, warn, error)")
	flags.StringVar(&a.color, "color", "", "colour output (auto, always, never)")
	flags.StringVar(&a.ternary, "ternary-parens", "", "nested ternary rule (root, parent)")

	rootCmd.AddCommand(
		a.newTranslateCmd(),
		a.newReplCmd(),
		a.newBatchCmd(),
		a.newWatchCmd(),
		a.newInspectCmd(),
		a.newLlvmCmd(),
		a.newEnvCmd(),
		a.newVersionCmd(),
	)
	return rootCmd
}

func (a *app) load(cmd *cobra.Command) error {
	cfg, err := config.Load(a.cfgFile)
	if err != nil {
		return err
	}

	flags := cmd.Flags()
	if flags.Changed("log-level") {
		cfg.LogLevel = a.logLevel
	}
	if flags.Changed("color") {
		cfg.Color = a.color
	}
	if flags.Changed("ternary-parens") {
		cfg.TernaryParens = a.ternary
	}
	if err := cfg.Validate(version); err != nil {
		return err
	}

	opts, err := cfg.CompilerOptions()
	if err != nil {
		return err
	}

	a.cfg = cfg
	a.runID = uuid.NewString()
	a.logger = zerolog.New(zerolog.ConsoleWriter{Out: cmd.ErrOrStderr(), NoColor: !console.ColorEnabled(cfg.Color, os.Stderr)}).
		With().Timestamp().Str("service", "infixc").Str("run", a.runID).Logger().
		Level(cfg.Level())
	a.compiler = compiler.New(opts)

	a.logger.Debug().Str("version", version).Str("config", cfg.Path).Msg("starting")
	return nil
}

func (a *app) newSession(cmd *cobra.Command) *console.Session {
	s := console.NewSession(a.compiler, a.logger)
	s.RunID = a.runID
	s.Styles = console.NewStyles(cmd.OutOrStdout(), console.ColorEnabled(a.cfg.Color, cmd.OutOrStdout()))
	return s
}
