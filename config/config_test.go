package config

import (
	"os"
	"path/filepath"
	"testing"

	"gopkg.in/yaml.v3"

	"github.com/bawdo/gobool/internal/testutil"
	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/visitors"
)

func TestDefaultConfigIsValid(t *testing.T) {
	cfg := DefaultConfig()
	testutil.AssertNoError(t, cfg.Validate())
	testutil.AssertEqual(t, cfg.Notation, "default")
	testutil.AssertEqual(t, cfg.Policy, "precedence")
	testutil.AssertEqual(t, cfg.Database.Engine, "postgres")
}

func TestLoadCreatesDefault(t *testing.T) {
	path := filepath.Join(t.TempDir(), ".gobool", "config.yaml")

	cfg, created, err := Load(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, created, true)
	testutil.AssertDeepEqual(t, *cfg, DefaultConfig())

	_, err = os.Stat(path)
	testutil.AssertNoError(t, err, "config file was not created")

	data, err := os.ReadFile(path)
	testutil.AssertNoError(t, err)
	var onDisk Config
	testutil.AssertNoError(t, yaml.Unmarshal(data, &onDisk))
	testutil.AssertEqual(t, onDisk.Notations[0].Name, "arrows")

	// Second load reads the existing file.
	_, created, err = Load(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, created, false)
}

func TestLoadExistingFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	content := `
notation: words
policy: explicit
database:
  engine: sqlite
  dsn: ":memory:"
notations:
  - name: dots
    not: "-"
    or: "v"
    and: "."
    open: "["
    close: "]"
`
	testutil.AssertNoError(t, os.WriteFile(path, []byte(content), 0644))

	cfg, created, err := Load(path)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, created, false)
	testutil.AssertEqual(t, cfg.Database.Engine, "sqlite")
	testutil.AssertEqual(t, cfg.Database.DSN, ":memory:")
	testutil.AssertEqual(t, cfg.MaxSteps, 1000, "missing fields keep defaults")
	if len(cfg.Notations) != 1 {
		t.Fatalf("expected 1 notation, got %d", len(cfg.Notations))
	}

	n, err := cfg.ResolveNotation("dots")
	testutil.AssertNoError(t, err)
	s := nodes.MustNot(nodes.MustOr("A", nodes.MustAnd("B", "C")))
	testutil.AssertEqual(t, visitors.Render(s, n), "-[A v B . C]")
}

func TestLoadInvalidYAML(t *testing.T) {
	path := filepath.Join(t.TempDir(), "config.yaml")
	testutil.AssertNoError(t, os.WriteFile(path, []byte("notation: [unclosed"), 0644))

	_, _, err := Load(path)
	testutil.AssertError(t, err)
	testutil.AssertContains(t, err.Error(), "failed to parse")
}

func TestValidateErrors(t *testing.T) {
	tests := []struct {
		name   string
		mutate func(*Config)
		want   string
	}{
		{"unknown notation", func(c *Config) { c.Notation = "klingon" }, "unknown notation"},
		{"empty notation", func(c *Config) { c.Notation = "" }, "Config.Notation"},
		{"bad policy", func(c *Config) { c.Policy = "sometimes" }, "Config.Policy"},
		{"bad engine", func(c *Config) { c.Database.Engine = "oracle" }, "Config.Database.Engine"},
		{"negative depth", func(c *Config) { c.MaxDepth = -1 }, "Config.MaxDepth"},
		{"blank custom name", func(c *Config) { c.Notations[0].Name = "" }, "Name"},
		{"name with space", func(c *Config) { c.Notations[0].Name = "my style" }, "ident"},
		{"uppercase name", func(c *Config) { c.Notations[0].Name = "Arrows" }, "ident"},
		{"missing or token", func(c *Config) { c.Notations[0].Or = "" }, "Or"},
		{"unpaired not bracket", func(c *Config) { c.Notations[0].NotOpen = "{" }, "NotClose"},
		{
			"duplicate names",
			func(c *Config) { c.Notations = append(c.Notations, c.Notations[0]) },
			"unique",
		},
		{"shadows preset", func(c *Config) { c.Notations[0].Name = "latex" }, "shadows"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			cfg := DefaultConfig()
			tt.mutate(&cfg)
			err := cfg.Validate()
			testutil.AssertError(t, err)
			testutil.AssertContains(t, err.Error(), tt.want)
		})
	}
}

func TestEmptyAndTokenAllowed(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Notations[0].And = ""
	testutil.AssertNoError(t, cfg.Validate())
}

func TestApplyEnv(t *testing.T) {
	env := map[string]string{
		EnvNotation: "latex",
		EnvEngine:   "mysql",
		EnvDSN:      "root:pw@tcp(localhost)/db",
	}
	cfg := DefaultConfig()
	cfg.ApplyEnv(func(k string) string { return env[k] })

	testutil.AssertEqual(t, cfg.Notation, "latex")
	testutil.AssertEqual(t, cfg.Policy, "precedence", "unset variables leave settings alone")
	testutil.AssertEqual(t, cfg.Database.Engine, "mysql")
	testutil.AssertEqual(t, cfg.Database.DSN, "root:pw@tcp(localhost)/db")
	testutil.AssertNoError(t, cfg.Validate())
}

func TestRendererOptions(t *testing.T) {
	cfg := DefaultConfig()
	cfg.Notation = "cstyle"
	cfg.Policy = "explicit"
	r := visitors.NewRenderer(cfg.RendererOptions()...)

	s := nodes.MustNot(nodes.MustOr("A", nodes.MustAnd("B", "C", true)))
	got, err := r.Render(s)
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, got, "!(A || (B && C && 1))")
}

func TestNotationNames(t *testing.T) {
	cfg := DefaultConfig()
	testutil.AssertDeepEqual(t, cfg.NotationNames(),
		[]string{"default", "cstyle", "written", "mathematical", "latex", "arrows"})
}

func TestDefaultPathFromEnv(t *testing.T) {
	t.Setenv(EnvConfig, "/tmp/custom.yaml")
	p, err := DefaultPath()
	testutil.AssertNoError(t, err)
	testutil.AssertEqual(t, p, "/tmp/custom.yaml")
}
