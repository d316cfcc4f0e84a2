package config

import (
	"errors"
	"fmt"
	"io/fs"
	"os"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"
	"github.com/Masterminds/semver/v3"
	"github.com/polinichcka-coding/Compiler/internal/codegen/infix"
	"github.com/polinichcka-coding/Compiler/internal/compiler"
	"github.com/rs/zerolog"
)

var DEFAULT_CONFIG_FILE string = `# infixc configuration
requires       = ">= 1.0.0"
log_level      = "warn"
color          = "auto"   # auto, always, never
output         = "text"   # text, json, yaml
ternary_parens = "root"   # root, parent
prompt         = "> "
`

type Config struct {
	Requires      string `toml:"requires"`
	LogLevel      string `toml:"log_level"`
	Color         string `toml:"color"`
	Output        string `toml:"output"`
	TernaryParens string `toml:"ternary_parens"`
	Prompt        string `toml:"prompt"`

	// Path is the file the values came from, empty when only defaults apply.
	Path string `toml:"-"`
}

func Default() *Config {
	return &Config{
		Requires:      ">= 1.0.0",
		LogLevel:      "warn",
		Color:         "auto",
		Output:        "text",
		TernaryParens: "root",
		Prompt:        "> ",
	}
}

// Load reads path over the defaults. An empty path means DefaultPath(); a
// missing file is not an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	explicit := path != ""
	if !explicit {
		defaultPath, err := DefaultPath()
		if err != nil {
			return cfg, nil
		}
		path = defaultPath
	}

	md, err := toml.DecodeFile(path, cfg)
	if err != nil {
		if errors.Is(err, fs.ErrNotExist) && !explicit {
			return cfg, nil
		}
		return nil, fmt.Errorf("failed to read config file %s: %w", path, err)
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, key := range undecoded {
			keys[i] = key.String()
		}
		return nil, fmt.Errorf("config file %s: unknown keys: %s", path, strings.Join(keys, ", "))
	}

	cfg.Path = path
	return cfg, nil
}

// Validate checks every value, and that version satisfies Requires.
func (c *Config) Validate(version string) error {
	if c.Requires != "" {
		constraint, err := semver.NewConstraint(c.Requires)
		if err != nil {
			return fmt.Errorf("invalid requires constraint %q: %w", c.Requires, err)
		}
		v, err := semver.NewVersion(version)
		if err != nil {
			return fmt.Errorf("invalid version %q: %w", version, err)
		}
		if ok, errs := constraint.Validate(v); !ok {
			return fmt.Errorf("infixc %s does not satisfy requires %q: %w", version, c.Requires, errors.Join(errs...))
		}
	}

	if _, err := zerolog.ParseLevel(c.LogLevel); err != nil {
		return fmt.Errorf("invalid log_level %q: %w", c.LogLevel, err)
	}
	if err := oneOf("color", c.Color, "auto", "always", "never"); err != nil {
		return err
	}
	if err := oneOf("output", c.Output, "text", "json", "yaml"); err != nil {
		return err
	}
	if _, err := infix.ParseNestedTernary(c.TernaryParens); err != nil {
		return fmt.Errorf("invalid ternary_parens: %w", err)
	}
	return nil
}

func (c *Config) Level() zerolog.Level {
	level, err := zerolog.ParseLevel(c.LogLevel)
	if err != nil {
		return zerolog.WarnLevel
	}
	return level
}

func (c *Config) CompilerOptions() (compiler.Options, error) {
	mode, err := infix.ParseNestedTernary(c.TernaryParens)
	if err != nil {
		return compiler.Options{}, err
	}
	return compiler.Options{Codegen: infix.Options{NestedTernary: mode}}, nil
}

// Values returns the effective settings as sorted key/value pairs.
func (c *Config) Values() [][2]string {
	values := map[string]string{
		"requires":       c.Requires,
		"log_level":      c.LogLevel,
		"color":          c.Color,
		"output":         c.Output,
		"ternary_parens": c.TernaryParens,
		"prompt":         c.Prompt,
	}
	keys := make([]string, 0, len(values))
	for key := range values {
		keys = append(keys, key)
	}
	sort.Strings(keys)

	pairs := make([][2]string, len(keys))
	for i, key := range keys {
		pairs[i] = [2]string{key, values[key]}
	}
	return pairs
}

func oneOf(key, value string, allowed ...string) error {
	for _, a := range allowed {
		if value == a {
			return nil
		}
	}
	return fmt.Errorf("invalid %s %q (want one of %s)", key, value, strings.Join(allowed, ", "))
}

// Exists reports whether path names a regular file.
func Exists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.Mode().IsRegular()
}
