package main

import (
	"strings"

	"github.com/bawdo/gobool/database"
	"github.com/bawdo/gobool/nodes"
)

// completionContext describes what kind of completion is appropriate.
type completionContext int

const (
	contextCommand   completionContext = iota // start of line or partial command
	contextEngine                             // after engine/set_engine
	contextPlugin                             // after plugin
	contextPluginOff                          // after plugin off
	contextConstant                           // after const
	contextPolicy                             // after policy
	contextNotation                           // after notation
	contextVariable                           // variable names in name=value lists
	contextNone                               // nothing to offer
)

var constantNames = []string{"0", "1", "false", "true"}
var policyNames = []string{"explicit", "precedence"}

// replCompleter implements readline's AutoCompleter interface.
type replCompleter struct {
	sess *Session
}

// Do returns completion candidates for the current line/cursor position.
// length is the number of chars from end of line[:pos] that form the prefix being completed.
// newLine contains the suffixes to append for each candidate.
func (c *replCompleter) Do(line []rune, pos int) (newLine [][]rune, length int) {
	lineStr := string(line[:pos])
	ctx, prefix := c.parseContext(lineStr)

	var candidates []string
	suffix := " "
	switch ctx {
	case contextCommand:
		candidates = c.completeCommands(prefix)
	case contextEngine:
		candidates = filterPrefix(database.Engines(), prefix)
	case contextPlugin:
		candidates = filterPrefix(append([]string{"off"}, c.sess.pluginNames()...), prefix)
	case contextPluginOff:
		candidates = filterPrefix(c.sess.plugins.activeNames(), prefix)
	case contextConstant:
		candidates = filterPrefix(constantNames, prefix)
	case contextPolicy:
		candidates = filterPrefix(policyNames, prefix)
	case contextNotation:
		candidates = filterPrefix(c.sess.cfg.NotationNames(), prefix)
	case contextVariable:
		candidates = c.completeVariables(prefix)
		suffix = "="
	}

	for _, cand := range candidates {
		newLine = append(newLine, []rune(cand[len(prefix):]+suffix))
	}
	length = len([]rune(prefix))
	return
}

// parseContext examines the line up to cursor and determines what kind of
// completion is needed and the current prefix being typed.
func (c *replCompleter) parseContext(line string) (completionContext, string) {
	lower := strings.ToLower(line)

	for _, cmd := range c.sess.commands {
		if !strings.HasSuffix(cmd.prefix, " ") {
			continue // exact-match commands have no arg completion
		}
		if strings.HasPrefix(lower, cmd.prefix) && cmd.completer != nil {
			return cmd.completer(line[len(cmd.prefix):])
		}
	}

	// Default: command completion.
	return contextCommand, strings.TrimSpace(line)
}

// completeCommands returns command names matching the prefix.
func (c *replCompleter) completeCommands(prefix string) []string {
	return filterPrefix(c.sess.commandNames(), prefix)
}

// completeVariables returns the variables of the top entry matching prefix.
func (c *replCompleter) completeVariables(prefix string) []string {
	top, err := c.sess.stack.Peek()
	if err != nil {
		return nil
	}
	return filterPrefix(nodes.Variables(top), prefix)
}

// filterPrefix returns items that start with prefix (case-insensitive).
func filterPrefix(items []string, prefix string) []string {
	if prefix == "" {
		result := make([]string, len(items))
		copy(result, items)
		return result
	}
	lowerPrefix := strings.ToLower(prefix)
	var result []string
	for _, item := range items {
		if strings.HasPrefix(strings.ToLower(item), lowerPrefix) {
			result = append(result, item)
		}
	}
	return result
}

// lastToken returns the last whitespace-separated token, handling commas.
func lastToken(s string) string {
	lastSep := -1
	for i := len(s) - 1; i >= 0; i-- {
		if s[i] == ' ' || s[i] == ',' || s[i] == '\t' {
			lastSep = i
			break
		}
	}
	if lastSep >= 0 {
		return s[lastSep+1:]
	}
	return s
}
