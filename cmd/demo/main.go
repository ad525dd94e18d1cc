// Demo binary printing the four sample expressions under a chosen notation,
// bracket policy and output format.
//
// Usage:
//
//	go run ./cmd/demo
//	go run ./cmd/demo --notation cstyle --policy explicit
//	go run ./cmd/demo --simplify --trace
//	go run ./cmd/demo --format dot | dot -Tpng > samples.png
package main

import (
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/spf13/cobra"

	"github.com/bawdo/gobool/config"
	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/rewrite"
	"github.com/bawdo/gobool/visitors"
)

// options holds the parsed command flags.
type options struct {
	configPath string
	notation   string
	policy     string
	format     string
	simplify   bool
	trace      bool
}

// samples returns the demonstration trees in display order.
func samples() []nodes.Symbol {
	return []nodes.Symbol{
		nodes.MustNot(nodes.MustOr("A", nodes.MustAnd("B", "C", true))),
		nodes.MustOr("C", nodes.MustNot(nodes.MustAnd("B", "C"))),
		nodes.MustNot(true),
		nodes.MustAnd(
			nodes.MustNot(nodes.MustAnd("A", "B")),
			nodes.MustOr(nodes.MustNot("A"), "B"),
			nodes.MustOr(nodes.MustNot("B"), "B"),
		),
	}
}

func newRootCmd() *cobra.Command {
	opts := &options{}
	cmd := &cobra.Command{
		Use:   "demo",
		Short: "Render the sample Boolean expressions",
		Long: `Render the four sample Boolean expressions.

Notations are the built-in presets (default, cstyle, written, mathematical,
latex) plus any custom notations in the config file given with --config.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, _ []string) error {
			return runDemo(cmd.OutOrStdout(), opts)
		},
	}

	f := cmd.Flags()
	f.StringVar(&opts.configPath, "config", "", "YAML config file with custom notations")
	f.StringVarP(&opts.notation, "notation", "n", "", "notation name (default from config)")
	f.StringVarP(&opts.policy, "policy", "p", "", "bracket policy: precedence or explicit")
	f.StringVarP(&opts.format, "format", "f", "text", "output format: text, dot or outline")
	f.BoolVarP(&opts.simplify, "simplify", "s", false, "simplify each expression before output")
	f.BoolVar(&opts.trace, "trace", false, "print the rewrite steps (text format with --simplify)")
	return cmd
}

// loadConfig returns the config at path, or the defaults when path is empty.
// The demo never writes a config file.
func loadConfig(path string) (*config.Config, error) {
	if path == "" {
		cfg := config.DefaultConfig()
		return &cfg, nil
	}
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read the config file: %w", err)
	}
	cfg, err := config.Parse(data)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", path, err)
	}
	return cfg, nil
}

func runDemo(out io.Writer, opts *options) error {
	cfg, err := loadConfig(opts.configPath)
	if err != nil {
		return err
	}
	if opts.notation != "" {
		cfg.Notation = opts.notation
	}
	if opts.policy != "" {
		cfg.Policy = opts.policy
	}
	if err := cfg.Validate(); err != nil {
		return err
	}
	r := visitors.NewRenderer(cfg.RendererOptions()...)

	format := strings.ToLower(opts.format)
	switch format {
	case "text", "dot", "outline":
	default:
		return fmt.Errorf("unknown format %q (want text, dot or outline)", opts.format)
	}

	simplifier := rewrite.New(rewrite.WithMaxSteps(cfg.MaxSteps))
	for i, s := range samples() {
		var steps []rewrite.Step
		if opts.simplify {
			if steps, err = simplifier.Simplify(s); err != nil {
				return fmt.Errorf("sample %d: %w", i+1, err)
			}
			if len(steps) > 0 {
				s = steps[len(steps)-1].Result
			}
		}

		switch format {
		case "dot":
			_, _ = fmt.Fprint(out, visitors.ToDot(s, r))
		case "outline":
			_, _ = fmt.Fprintf(out, "%d.\n%s", i+1, visitors.Outline(s))
		default:
			text, err := r.Render(s)
			if err != nil {
				return fmt.Errorf("sample %d: %w", i+1, err)
			}
			_, _ = fmt.Fprintf(out, "%d. %s\n", i+1, text)
			if opts.trace {
				for _, step := range steps {
					line, err := step.Format(r, 24)
					if err != nil {
						return fmt.Errorf("sample %d: %w", i+1, err)
					}
					_, _ = fmt.Fprintf(out, "   %s\n", line)
				}
			}
		}
	}
	return nil
}

func main() {
	if err := newRootCmd().Execute(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
