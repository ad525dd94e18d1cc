// Package config loads the gobool YAML configuration: default notation,
// bracket policy and database settings, plus user-defined notations.
package config

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"unicode"

	"github.com/go-playground/validator/v10"
	"gopkg.in/yaml.v3"

	"github.com/bawdo/gobool/visitors"
)

// Environment variables overriding file settings.
const (
	EnvConfig   = "GOBOOL_CONFIG"
	EnvNotation = "GOBOOL_NOTATION"
	EnvPolicy   = "GOBOOL_POLICY"
	EnvEngine   = "GOBOOL_ENGINE"
	EnvDSN      = "DATABASE_URL"
)

// NotationConfig is a user-defined token set.
type NotationConfig struct {
	Name     string `yaml:"name" validate:"required,ident"`
	Not      string `yaml:"not" validate:"required"`
	Or       string `yaml:"or" validate:"required"`
	And      string `yaml:"and"`
	Open     string `yaml:"open" validate:"required"`
	Close    string `yaml:"close" validate:"required"`
	NotOpen  string `yaml:"not_open,omitempty" validate:"required_with=NotClose"`
	NotClose string `yaml:"not_close,omitempty" validate:"required_with=NotOpen"`
}

// Notation converts c to a renderer token set.
func (c NotationConfig) Notation() visitors.Notation {
	return visitors.Notation{
		Not: c.Not, Or: c.Or, And: c.And,
		Open: c.Open, Close: c.Close,
		NotOpen: c.NotOpen, NotClose: c.NotClose,
	}
}

// Config is the root of config.yaml.
type Config struct {
	Notation  string           `yaml:"notation" validate:"required"`
	Policy    string           `yaml:"policy" validate:"policy"`
	MaxDepth  int              `yaml:"max_depth" validate:"gte=0"`
	MaxSteps  int              `yaml:"max_steps" validate:"gte=0"`
	Database  DatabaseConfig   `yaml:"database"`
	Notations []NotationConfig `yaml:"notations" validate:"unique=Name,dive"`
}

// DatabaseConfig selects the engine used for SQL output and evaluation.
type DatabaseConfig struct {
	Engine string `yaml:"engine" validate:"oneof=postgres mysql sqlite"`
	DSN    string `yaml:"dsn,omitempty"`
}

// DefaultConfig returns the configuration written on first run.
func DefaultConfig() Config {
	return Config{
		Notation: visitors.PresetDefault.String(),
		Policy:   visitors.PolicyPrecedence.String(),
		MaxSteps: 1000,
		Database: DatabaseConfig{Engine: "postgres"},
		Notations: []NotationConfig{
			{Name: "arrows", Not: "~", Or: "\\/", And: "/\\", Open: "(", Close: ")"},
		},
	}
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	_ = v.RegisterValidation("policy", validatePolicy)
	_ = v.RegisterValidation("ident", validateIdent)
	return v
}

// validateIdent accepts lowercase names without whitespace.
func validateIdent(fl validator.FieldLevel) bool {
	s := fl.Field().String()
	return s == strings.ToLower(s) && !strings.ContainsFunc(s, unicode.IsSpace)
}

func validatePolicy(fl validator.FieldLevel) bool {
	_, err := visitors.ParsePolicy(fl.Field().String())
	return err == nil
}

// Validate checks field constraints and that Notation names a preset or a
// custom notation. Custom notations may not shadow presets.
func (c *Config) Validate() error {
	if err := validate.Struct(c); err != nil {
		var verrs validator.ValidationErrors
		if errors.As(err, &verrs) {
			msgs := make([]string, len(verrs))
			for i, fe := range verrs {
				msgs[i] = fmt.Sprintf("%s: failed %q", fe.Namespace(), fe.Tag())
			}
			return fmt.Errorf("invalid config: %s", strings.Join(msgs, "; "))
		}
		return fmt.Errorf("invalid config: %w", err)
	}
	for _, n := range c.Notations {
		if _, err := visitors.ParsePreset(n.Name); err == nil {
			return fmt.Errorf("invalid config: notation %q shadows a built-in preset", n.Name)
		}
	}
	if _, err := c.ResolveNotation(c.Notation); err != nil {
		return fmt.Errorf("invalid config: %w", err)
	}
	return nil
}

// ResolveNotation returns the custom notation called name, or else the
// preset with that name.
func (c *Config) ResolveNotation(name string) (visitors.Notation, error) {
	key := strings.ToLower(strings.TrimSpace(name))
	for _, n := range c.Notations {
		if n.Name == key {
			return n.Notation(), nil
		}
	}
	return visitors.NotationByName(name)
}

// NotationNames lists the presets followed by the custom notations.
func (c *Config) NotationNames() []string {
	var names []string
	for _, p := range visitors.Presets() {
		names = append(names, p.String())
	}
	for _, n := range c.Notations {
		names = append(names, n.Name)
	}
	return names
}

// RendererOptions returns the renderer options for the configured notation,
// policy and depth limit. c must be valid.
func (c *Config) RendererOptions() []visitors.Option {
	n, _ := c.ResolveNotation(c.Notation)
	p, _ := visitors.ParsePolicy(c.Policy)
	return []visitors.Option{
		visitors.WithNotation(n),
		visitors.WithPolicy(p),
		visitors.WithMaxDepth(c.MaxDepth),
	}
}

// ApplyEnv overrides settings from environment variables read by getenv.
// Unset or empty variables leave the setting alone.
func (c *Config) ApplyEnv(getenv func(string) string) {
	if v := getenv(EnvNotation); v != "" {
		c.Notation = v
	}
	if v := getenv(EnvPolicy); v != "" {
		c.Policy = v
	}
	if v := getenv(EnvEngine); v != "" {
		c.Database.Engine = v
	}
	if v := getenv(EnvDSN); v != "" {
		c.Database.DSN = v
	}
}

// DefaultPath returns $GOBOOL_CONFIG, or ~/.gobool/config.yaml.
func DefaultPath() (string, error) {
	if p := os.Getenv(EnvConfig); p != "" {
		return p, nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", fmt.Errorf("could not find the user's home directory: %w", err)
	}
	return filepath.Join(home, ".gobool", "config.yaml"), nil
}

// Load reads and validates the config at path, writing DefaultConfig there
// first if the file does not exist. created reports a first run.
func Load(path string) (cfg *Config, created bool, err error) {
	if _, err := os.Stat(path); errors.Is(err, os.ErrNotExist) {
		if err := createDefault(path); err != nil {
			return nil, false, err
		}
		created = true
	}

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, created, fmt.Errorf("failed to read the config file: %w", err)
	}
	cfg, err = Parse(data)
	if err != nil {
		return nil, created, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, created, nil
}

// Parse decodes and validates YAML. Missing fields take their defaults.
func Parse(data []byte) (*Config, error) {
	cfg := DefaultConfig()
	cfg.Notations = nil
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("failed to parse the config: %w", err)
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return &cfg, nil
}

func createDefault(path string) error {
	dir := filepath.Dir(path)
	if err := os.MkdirAll(dir, 0755); err != nil {
		return fmt.Errorf("failed to create the config directory: %w", err)
	}
	data, err := yaml.Marshal(DefaultConfig())
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
