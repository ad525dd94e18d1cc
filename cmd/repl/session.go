package main

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/ergochat/readline"

	"github.com/bawdo/gobool/config"
	"github.com/bawdo/gobool/database"
	"github.com/bawdo/gobool/managers"
	"github.com/bawdo/gobool/nodes"
	"github.com/bawdo/gobool/rewrite"
	"github.com/bawdo/gobool/visitors"
)

// Session holds the REPL state: the expression stack, the active notation,
// policy and engine, any enabled plugins and the database connection.
type Session struct {
	cfg      *config.Config
	stack    *managers.StackManager
	notation string // name of the active notation
	policy   visitors.Policy
	renderer *visitors.Renderer
	engine   string
	plugins  *pluginSet
	commands []commandEntry // command registry (sorted by prefix length desc)
	conn     *database.Conn // nil when disconnected
	lastDSN  string         // remembers the previous DSN for reconnect
	rl       *readline.Instance
	out      io.Writer // destination for REPL output (default os.Stdout)
	log      *slog.Logger
}

// NewSession creates a session from cfg. A nil cfg uses the defaults.
func NewSession(cfg *config.Config, rl *readline.Instance) *Session {
	if cfg == nil {
		def := config.DefaultConfig()
		cfg = &def
	}
	s := &Session{
		cfg:   cfg,
		stack: managers.NewStackManager(),
		rl:    rl,
		out:   os.Stdout,
		log:   slog.New(slog.NewTextHandler(io.Discard, nil)),
	}
	s.plugins = newPluginSet(
		pluginKind{name: "substitute", build: buildSubstitute},
		pluginKind{name: "simplify", build: buildSimplify},
	)
	s.policy, _ = visitors.ParsePolicy(cfg.Policy)
	if err := s.setNotation(cfg.Notation); err != nil {
		_ = s.setNotation(visitors.PresetDefault.String())
	}
	s.setEngine(cfg.Database.Engine)
	s.initCommands()
	return s
}

// pluginNames returns the names of all known plugins (for tab completion).
func (s *Session) pluginNames() []string {
	return s.plugins.kindNames()
}

func (s *Session) setEngine(engine string) {
	if !database.IsValidEngine(engine) {
		engine = "postgres"
	}
	s.engine = engine
}

func (s *Session) setNotation(name string) error {
	if _, err := s.cfg.ResolveNotation(name); err != nil {
		return err
	}
	s.notation = strings.ToLower(strings.TrimSpace(name))
	s.rebuildRenderer()
	return nil
}

func (s *Session) rebuildRenderer() {
	n, _ := s.cfg.ResolveNotation(s.notation)
	s.renderer = visitors.NewRenderer(
		visitors.WithNotation(n),
		visitors.WithPolicy(s.policy),
		visitors.WithMaxDepth(s.cfg.MaxDepth),
	)
}

func (s *Session) simplifier() *rewrite.Simplifier {
	return rewrite.New(rewrite.WithMaxSteps(s.cfg.MaxSteps))
}

// result returns the top of the stack after enabled plugins run.
func (s *Session) result() (nodes.Symbol, error) {
	return s.stack.Result()
}

// printf writes formatted output to the session writer.
func (s *Session) printf(format string, args ...any) {
	_, _ = fmt.Fprintf(s.out, format, args...)
}

// Execute parses and runs a single REPL command.
func (s *Session) Execute(line string) error {
	line = strings.TrimSpace(line)
	if line == "" {
		return nil
	}
	lower := strings.ToLower(line)

	for _, cmd := range s.commands {
		if strings.HasSuffix(cmd.prefix, " ") {
			if strings.HasPrefix(lower, cmd.prefix) {
				return cmd.handler(strings.TrimSpace(line[len(cmd.prefix):]))
			}
		} else {
			if lower == cmd.prefix {
				return cmd.handler("")
			}
		}
	}

	word := strings.Fields(line)[0]
	return fmt.Errorf("unknown command: %s (type 'help' for commands)", word)
}

// --- Stack building ---

func (s *Session) cmdVar(args string) error {
	names := strings.Fields(args)
	if len(names) == 0 {
		return errors.New("usage: var <name> [name ...]")
	}
	for _, name := range names {
		if err := s.stack.Variable(name); err != nil {
			return err
		}
	}
	return s.cmdShow()
}

func (s *Session) cmdConst(args string) error {
	v, err := parseBool(args)
	if err != nil {
		return fmt.Errorf("usage: const 0|1: %w", err)
	}
	s.stack.Constant(v)
	return s.cmdShow()
}

func (s *Session) cmdApply(op nodes.Operator, args string) error {
	n := 1
	if op != nodes.OpNot {
		var err error
		if n, err = parseCount(args, 2); err != nil {
			return err
		}
	}
	if err := s.stack.Apply(op, n); err != nil {
		return err
	}
	return s.cmdShow()
}

func (s *Session) cmdPop() error {
	top, err := s.stack.Pop()
	if err != nil {
		return err
	}
	out, err := s.renderer.Render(top)
	if err != nil {
		return err
	}
	s.printf("  Popped %s\n", out)
	return nil
}

func (s *Session) cmdDup() error {
	if err := s.stack.Dup(); err != nil {
		return err
	}
	return s.cmdShow()
}

func (s *Session) cmdSwap() error {
	if err := s.stack.Swap(); err != nil {
		return err
	}
	return s.cmdShow()
}

func (s *Session) cmdClear() error {
	s.stack.Clear()
	s.printf("  Stack cleared\n")
	return nil
}

// --- Display ---

// cmdShow renders the top of the stack after plugins.
func (s *Session) cmdShow() error {
	out, err := s.stack.Render(s.renderer)
	if err != nil {
		return err
	}
	s.printf("  %s\n", out)
	return nil
}

// cmdStack lists every entry, bottom first, without plugins.
func (s *Session) cmdStack() error {
	items := s.stack.Items()
	if len(items) == 0 {
		s.printf("  (empty)\n")
		return nil
	}
	for i, item := range items {
		out, err := s.renderer.Render(item)
		if err != nil {
			return err
		}
		s.printf("  [%d] %s\n", i, out)
	}
	return nil
}

func (s *Session) cmdOutline() error {
	top, err := s.result()
	if err != nil {
		return err
	}
	for _, line := range strings.Split(strings.TrimSuffix(visitors.Outline(top), "\n"), "\n") {
		s.printf("  %s\n", line)
	}
	return nil
}

func (s *Session) cmdDot(args string) error {
	top, err := s.result()
	if err != nil {
		return err
	}
	dot := visitors.ToDot(top, s.renderer)

	fpath := strings.TrimSpace(args)
	if fpath == "" {
		s.printf("%s", dot)
		return nil
	}
	if err := os.WriteFile(fpath, []byte(dot), 0600); err != nil {
		return fmt.Errorf("failed to write DOT file: %w", err)
	}
	s.printf("  Wrote DOT to %s\n", fpath)
	return nil
}

func (s *Session) cmdNotation(args string) error {
	if args == "" {
		s.printf("  Notation: %s\n", s.notation)
		return nil
	}
	if err := s.setNotation(args); err != nil {
		return err
	}
	s.printf("  Notation set to %s\n", s.notation)
	if s.stack.Len() > 0 {
		return s.cmdShow()
	}
	return nil
}

func (s *Session) cmdNotations() {
	for _, name := range s.cfg.NotationNames() {
		n, _ := s.cfg.ResolveNotation(name)
		marker := " "
		if name == s.notation {
			marker = "*"
		}
		sample := visitors.Render(nodes.MustNot(nodes.MustOr("A", nodes.MustAnd("B", "C"))), n)
		s.printf("  %s %-14s %s\n", marker, name, sample)
	}
}

func (s *Session) cmdPolicy(args string) error {
	if args == "" {
		s.printf("  Policy: %s\n", s.policy)
		return nil
	}
	p, err := visitors.ParsePolicy(args)
	if err != nil {
		return err
	}
	s.policy = p
	s.rebuildRenderer()
	s.printf("  Policy set to %s\n", s.policy)
	if s.stack.Len() > 0 {
		return s.cmdShow()
	}
	return nil
}

// --- Simplification and evaluation ---

// cmdSimplify prints the rewrite trace of the top entry as built, before
// any plugins, and replaces it with the simplified form. Plugins keep
// applying on output.
func (s *Session) cmdSimplify() error {
	top, err := s.stack.Peek()
	if err != nil {
		return err
	}
	steps, err := s.simplifier().Simplify(top)
	if err != nil {
		return err
	}
	if len(steps) == 0 {
		s.printf("  Already simplified\n")
		return nil
	}
	for _, step := range steps {
		line, err := step.Format(s.renderer, 24)
		if err != nil {
			return err
		}
		s.printf("  %s\n", line)
	}
	if _, err := s.stack.Pop(); err != nil {
		return err
	}
	return s.stack.Push(steps[len(steps)-1].Result)
}

func (s *Session) cmdEval(args string) error {
	top, err := s.result()
	if err != nil {
		return err
	}
	a, err := parseAssignment(args)
	if err != nil {
		return err
	}
	v, err := nodes.Evaluate(top, a)
	if err != nil {
		return err
	}
	s.printf("  %s\n", literal(v))
	return nil
}

// cmdTruth prints the truth table of the top of the stack.
func (s *Session) cmdTruth() error {
	top, err := s.result()
	if err != nil {
		return err
	}
	names := nodes.Variables(top)
	if len(names) > maxTruthVars {
		return fmt.Errorf("truth table limited to %d variables, expression has %d", maxTruthVars, len(names))
	}
	columns := append(append([]string{}, names...), visitors.ResultColumn)
	var rows [][]string
	for mask := 0; mask < 1<<len(names); mask++ {
		a := nodes.Assignment{}
		row := make([]string, 0, len(columns))
		for i, name := range names {
			// First variable is the most significant bit.
			v := mask&(1<<(len(names)-1-i)) != 0
			a[name] = v
			row = append(row, literal(v))
		}
		v, err := nodes.Evaluate(top, a)
		if err != nil {
			return err
		}
		rows = append(rows, append(row, literal(v)))
	}
	s.printf("%s", database.FormatTable(columns, rows))
	return nil
}

// --- SQL ---

func (s *Session) cmdEngine(args string) error {
	name := strings.TrimSpace(strings.ToLower(args))
	if !database.IsValidEngine(name) {
		return fmt.Errorf("unknown engine %q (choose: %s)", name, strings.Join(database.Engines(), ", "))
	}
	s.setEngine(name)
	s.printf("  Engine set to %s\n", s.engine)
	return nil
}

// cmdSQL prints the SQL rendering of the top of the stack, or with an
// assignment the full evaluation statement and its parameters.
func (s *Session) cmdSQL(args string) error {
	v, err := visitors.NewSQLVisitor(s.engine)
	if err != nil {
		return err
	}
	if args == "" {
		top, err := s.result()
		if err != nil {
			return err
		}
		s.printf("  %s\n", top.Accept(v))
		return nil
	}
	a, err := parseAssignment(args)
	if err != nil {
		return err
	}
	sqlStr, params, err := s.stack.ToSQL(v, a)
	if err != nil {
		return err
	}
	s.printf("  %s;\n", sqlStr)
	if len(params) > 0 {
		s.printf("  Params: %v\n", params)
	}
	return nil
}

// --- Plugins ---

// cmdPlugin routes plugin sub-commands: enables a plugin by name, or
// dispatches to cmdPluginOff for disabling.
func (s *Session) cmdPlugin(args string) error {
	parts := strings.Fields(args)
	if len(parts) == 0 {
		return errors.New("usage: plugin <name> [args] | plugin off [name]")
	}
	name := strings.ToLower(parts[0])
	if name == "off" {
		return s.cmdPluginOff(parts[1:])
	}
	ap, err := s.plugins.enable(s.cfg, name, strings.TrimSpace(args[len(parts[0]):]))
	if err != nil {
		return err
	}
	s.syncPlugins()
	s.printf("  %s enabled (%s)\n", strings.ToUpper(ap.name[:1])+ap.name[1:], ap.settings)
	return nil
}

func (s *Session) cmdPluginOff(parts []string) error {
	if len(parts) == 0 {
		s.plugins.disableAll()
		s.printf("  All plugins disabled\n")
	} else {
		name := strings.ToLower(parts[0])
		if err := s.plugins.disable(name); err != nil {
			return err
		}
		s.printf("  %s disabled\n", name)
	}
	s.syncPlugins()
	return nil
}

func (s *Session) cmdPlugins() {
	s.printf("  Available plugins:\n")
	for _, name := range s.plugins.kindNames() {
		if settings, ok := s.plugins.settings(name); ok {
			s.printf("    %-14s on   (%s)\n", name, settings)
		} else {
			s.printf("    %-14s off\n", name)
		}
	}
}

// syncPlugins installs the enabled plugin chain on the stack manager.
func (s *Session) syncPlugins() {
	s.stack.ClearTransformers()
	s.stack.Use(s.plugins.transformers()...)
}

func (s *Session) cmdHelp() {
	s.printf("%s\n", `
  Building (reverse Polish):
    var <name> [name ...]     Push variables
    const 0|1                 Push a constant
    not                       Negate the top entry
    and [n]                   AND the top n entries (default 2)
    or [n]                    OR the top n entries (default 2)
    pop | dup | swap | clear  Stack manipulation

  Display:
    show                      Render the top entry (after plugins)
    stack                     List every entry
    outline                   Print the top entry as an indented tree
    dot [file]                Graphviz DOT output, printed or written to file
    notation [name]           Show or set the notation
    notations                 List notations with a sample
    policy [precedence|explicit]  Show or set the bracket policy

  Algebra:
    simplify                  Print the rewrite trace and replace the top entry
    eval A=1 B=0 ...          Evaluate the top entry
    truth                     Print the truth table of the top entry

  SQL:
    engine <name>             Set SQL dialect (postgres, mysql, sqlite)
    sql [A=1 B=0 ...]         Show the SQL expression, or the evaluation query
    connect [dsn]             Connect to a database (wizard without dsn)
    disconnect                Close the connection
    sqleval A=1 B=0 ...       Evaluate the top entry on the database
    query <sql>               Run raw SQL and print the rows

  Plugins:
    plugin substitute A=1 B=X Bind or rename variables
    plugin simplify           Simplify before every output
    plugin off [name]         Disable one or all plugins
    plugins                   Show plugin status

  help                        Show this help
  exit | quit                 Leave the REPL`)
}
