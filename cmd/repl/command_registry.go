package main

import (
	"errors"
	"sort"
	"strings"

	"github.com/bawdo/gobool/nodes"
)

// commandEntry maps a REPL prefix to its handler and optional tab-completer.
type commandEntry struct {
	prefix    string
	handler   func(args string) error
	completer func(args string) (completionContext, string) // nil = no arg completion
	hidden    bool                                          // excluded from commandNames()
}

// initCommands builds the command registry and sorts by prefix length descending.
func (s *Session) initCommands() {
	s.commands = []commandEntry{
		// --- stack building ---
		{prefix: "var ", handler: s.cmdVar},
		{prefix: "v ", handler: s.cmdVar, hidden: true},
		{prefix: "const ", handler: s.cmdConst, completer: completeConstArgs},
		{prefix: "not", handler: func(_ string) error { return s.cmdApply(nodes.OpNot, "") }},
		{prefix: "and ", handler: func(a string) error { return s.cmdApply(nodes.OpAnd, a) }},
		{prefix: "and", handler: func(_ string) error { return s.cmdApply(nodes.OpAnd, "") }},
		{prefix: "or ", handler: func(a string) error { return s.cmdApply(nodes.OpOr, a) }},
		{prefix: "or", handler: func(_ string) error { return s.cmdApply(nodes.OpOr, "") }},
		{prefix: "pop", handler: func(_ string) error { return s.cmdPop() }},
		{prefix: "dup", handler: func(_ string) error { return s.cmdDup() }},
		{prefix: "swap", handler: func(_ string) error { return s.cmdSwap() }},
		{prefix: "clear", handler: func(_ string) error { return s.cmdClear() }},
		{prefix: "reset", handler: func(_ string) error { return s.cmdClear() }, hidden: true},

		// --- display ---
		{prefix: "show", handler: func(_ string) error { return s.cmdShow() }},
		{prefix: "stack", handler: func(_ string) error { return s.cmdStack() }},
		{prefix: "outline", handler: func(_ string) error { return s.cmdOutline() }},
		{prefix: "ast", handler: func(_ string) error { return s.cmdOutline() }, hidden: true},
		{prefix: "dot ", handler: s.cmdDot},
		{prefix: "dot", handler: func(_ string) error { return s.cmdDot("") }},
		{prefix: "notation ", handler: s.cmdNotation, completer: completeNotationArgs},
		{prefix: "notation", handler: func(_ string) error { return s.cmdNotation("") }},
		{prefix: "notations", handler: func(_ string) error { s.cmdNotations(); return nil }},
		{prefix: "policy ", handler: s.cmdPolicy, completer: completePolicyArgs},
		{prefix: "policy", handler: func(_ string) error { return s.cmdPolicy("") }},
		{prefix: "help", handler: func(_ string) error { s.cmdHelp(); return nil }},

		// --- algebra ---
		{prefix: "simplify", handler: func(_ string) error { return s.cmdSimplify() }},
		{prefix: "eval ", handler: s.cmdEval, completer: s.completeAssignmentArgs},
		{prefix: "eval", handler: func(_ string) error { return s.cmdEval("") }},
		{prefix: "truth", handler: func(_ string) error { return s.cmdTruth() }},

		// --- SQL ---
		{prefix: "engine ", handler: s.cmdEngine, completer: completeEngineArgs},
		{prefix: "set_engine ", handler: s.cmdEngine, completer: completeEngineArgs, hidden: true},
		{prefix: "sql ", handler: s.cmdSQL, completer: s.completeAssignmentArgs},
		{prefix: "sql", handler: func(_ string) error { return s.cmdSQL("") }},
		{prefix: "tosql", handler: func(_ string) error { return s.cmdSQL("") }, hidden: true},

		// --- database connectivity ---
		{prefix: "connect ", handler: s.cmdConnect},
		{prefix: "connect", handler: func(_ string) error { return s.cmdConnect("") }},
		{prefix: "disconnect", handler: func(_ string) error { return s.cmdDisconnect() }},
		{prefix: "sqleval ", handler: s.cmdSQLEval, completer: s.completeAssignmentArgs},
		{prefix: "sqleval", handler: func(_ string) error { return s.cmdSQLEval("") }},
		{prefix: "query ", handler: s.cmdQuery},
		{prefix: "query", handler: func(_ string) error { return errors.New("usage: query <sql>") }},

		// --- plugins ---
		{prefix: "plugin ", handler: s.cmdPlugin, completer: completePluginArgs},
		{prefix: "plugins", handler: func(_ string) error { s.cmdPlugins(); return nil }},
	}

	// Sort by prefix length descending so longest prefixes match first.
	sort.SliceStable(s.commands, func(i, j int) bool {
		return len(s.commands[i].prefix) > len(s.commands[j].prefix)
	})
}

// commandNames derives the command name list from the registry for tab completion.
func (s *Session) commandNames() []string {
	seen := make(map[string]bool)
	var names []string
	for _, cmd := range s.commands {
		if cmd.hidden {
			continue
		}
		name := strings.TrimRight(cmd.prefix, " ")
		if !seen[name] {
			seen[name] = true
			names = append(names, name)
		}
	}
	// exit/quit are handled by the REPL loop, not Execute().
	for _, extra := range []string{"exit", "quit"} {
		if !seen[extra] {
			names = append(names, extra)
		}
	}
	sort.Strings(names)
	return names
}

// --- Shared completion helpers ---

// completeConstArgs completes truth values for const.
func completeConstArgs(args string) (completionContext, string) {
	return contextConstant, strings.TrimSpace(args)
}

// completeEngineArgs handles completion for engine/set_engine commands.
func completeEngineArgs(args string) (completionContext, string) {
	return contextEngine, strings.TrimSpace(args)
}

// completePolicyArgs handles completion for the policy command.
func completePolicyArgs(args string) (completionContext, string) {
	return contextPolicy, strings.TrimSpace(args)
}

// completeNotationArgs handles completion for the notation command.
func completeNotationArgs(args string) (completionContext, string) {
	return contextNotation, strings.TrimSpace(args)
}

// completeAssignmentArgs completes variable names of the top entry in
// name=value lists (eval, sql, sqleval).
func (s *Session) completeAssignmentArgs(args string) (completionContext, string) {
	if strings.HasSuffix(args, " ") || args == "" {
		return contextVariable, ""
	}
	last := lastToken(args)
	if strings.Contains(last, "=") {
		return contextNone, ""
	}
	return contextVariable, last
}

// completePluginArgs handles completion for the plugin command:
// plugin names, or after "off" the names of enabled plugins.
func completePluginArgs(args string) (completionContext, string) {
	if strings.HasPrefix(strings.ToLower(args), "off ") {
		partial := strings.TrimSpace(args[4:])
		return contextPluginOff, partial
	}
	arg := strings.TrimSpace(args)
	if !strings.Contains(arg, " ") {
		return contextPlugin, arg
	}
	return contextNone, ""
}
