package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/bawdo/gobool/config"
	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/plugins"
	"github.com/bawdo/gobool/plugins/simplify"
	"github.com/bawdo/gobool/plugins/substitute"
	"github.com/bawdo/gobool/rewrite"
)

// buildSubstitute parses "A=1 B=0 C=X" style arguments: a truth value
// binds the variable, any other value renames it.
func buildSubstitute(_ *config.Config, args string) (plugins.Transformer, string, error) {
	pairs := strings.FieldsFunc(args, func(r rune) bool { return r == ' ' || r == ',' })
	if len(pairs) == 0 {
		return nil, "", errors.New("usage: plugin substitute <name>=<0|1|newname> ...")
	}

	var opts []substitute.Option
	for _, pair := range pairs {
		name, val, ok := strings.Cut(pair, "=")
		if !ok || name == "" || val == "" {
			return nil, "", fmt.Errorf("invalid substitution %q (want name=0|1|newname)", pair)
		}
		if v, err := parseBool(val); err == nil {
			opts = append(opts, substitute.WithBinding(name, v))
			continue
		}
		if err := nodes.ValidateName(val); err != nil {
			return nil, "", err
		}
		opts = append(opts, substitute.WithRename(name, val))
	}

	sub := substitute.New(opts...)
	return sub, sub.String(), nil
}

// buildSimplify simplifies every output, bounded by the configured step limit.
func buildSimplify(cfg *config.Config, args string) (plugins.Transformer, string, error) {
	if strings.TrimSpace(args) != "" {
		return nil, "", errors.New("usage: plugin simplify")
	}
	maxSteps := cfg.MaxSteps
	if maxSteps < 1 {
		maxSteps = rewrite.DefaultMaxSteps
	}
	return simplify.New(rewrite.WithMaxSteps(maxSteps)), fmt.Sprintf("max steps: %d", maxSteps), nil
}
