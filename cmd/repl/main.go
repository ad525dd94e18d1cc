// REPL binary for interactively building, rendering, simplifying and
// evaluating Boolean expressions.
//
// Configuration is read from ~/.gobool/config.yaml (created on first run)
// and overridden by env vars:
//
//	GOBOOL_CONFIG=<path>                  (optional, alternative config file)
//	GOBOOL_NOTATION=<name>                (optional, initial notation)
//	GOBOOL_POLICY=precedence|explicit     (optional, bracket policy)
//	GOBOOL_ENGINE=postgres|mysql|sqlite   (optional, prompted if absent)
//	DATABASE_URL=<dsn>                    (optional, auto-connects if set)
//	GOBOOL_LOG_LEVEL=debug|info|warn|error
//
// Usage:
//
//	go run ./cmd/repl
package main

import (
	"errors"
	"fmt"
	"io"
	"net/url"
	"os"
	"os/user"
	"path/filepath"
	"strings"

	"github.com/ergochat/readline"

	"github.com/bawdo/gobool/config"
	"github.com/bawdo/gobool/database"
)

func main() {
	logger := newLogger(os.Stderr, os.Getenv("GOBOOL_LOG_LEVEL"))

	cfg, err := loadConfig()
	if err != nil {
		fmt.Fprintf(os.Stderr, "config: %v\n", err)
		os.Exit(1)
	}

	rl, err := readline.NewFromConfig(&readline.Config{
		Prompt:          "[Config] ",
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})
	if err != nil {
		fmt.Fprintf(os.Stderr, "readline init: %v\n", err)
		os.Exit(1)
	}
	defer func() { _ = rl.Close() }()

	cfg.Database.Engine = loadEngine(rl, cfg.Database.Engine)
	sess := NewSession(cfg, rl)
	sess.log = logger
	logger.Debug("session started", "notation", sess.notation, "policy", sess.policy.String(), "engine", sess.engine)

	// Set up the completer now that we have a session.
	comp := &replCompleter{sess: sess}
	_ = rl.SetConfig(&readline.Config{
		Prompt:          "gobool> ",
		HistoryFile:     historyPath(),
		HistoryLimit:    500,
		AutoComplete:    comp,
		InterruptPrompt: "^C",
		EOFPrompt:       "exit",
	})

	if dsn := cfg.Database.DSN; dsn != "" {
		fmt.Printf("[Config] Connecting to %s...\n", database.SanitizeDSN(dsn))
		if err := sess.Execute("connect " + dsn); err != nil {
			fmt.Fprintf(os.Stderr, "  Warning: connect failed: %v\n", err)
		}
	}

	fmt.Println()
	fmt.Println("gobool REPL: type 'help' for commands, 'exit' to quit")
	fmt.Println()

	rl.SetPrompt("gobool> ")
	for {
		line, err := rl.ReadLine()
		if errors.Is(err, readline.ErrInterrupt) {
			continue
		}
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		lower := strings.ToLower(line)
		if lower == "exit" || lower == "quit" {
			break
		}
		if err := sess.Execute(line); err != nil {
			fmt.Fprintf(os.Stderr, "  Error: %v\n", err)
		}
	}
	if sess.conn != nil {
		_ = sess.conn.Close()
	}
	fmt.Println()
}

// loadConfig loads the config file and applies env overrides.
func loadConfig() (*config.Config, error) {
	path, err := config.DefaultPath()
	if err != nil {
		return nil, err
	}
	cfg, created, err := config.Load(path)
	if err != nil {
		return nil, err
	}
	if created {
		fmt.Printf("[Config] First run detected, created %s\n", path)
	}
	cfg.ApplyEnv(os.Getenv)
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	return cfg, nil
}

// loadEngine takes the engine from GOBOOL_ENGINE (already applied to the
// config) or prompts for it, defaulting to the configured one.
func loadEngine(rl *readline.Instance, configured string) string {
	if os.Getenv(config.EnvEngine) != "" {
		fmt.Printf("[Config] Engine: %s (from %s)\n", configured, config.EnvEngine)
		return configured
	}

	choice := prompt(rl, "Select engine (postgres, mysql, sqlite)", configured)
	choice = strings.TrimSpace(strings.ToLower(choice))
	if !database.IsValidEngine(choice) {
		fmt.Fprintf(os.Stderr, "Warning: unknown engine %q, using %s\n", choice, configured)
		return configured
	}
	fmt.Printf("[Config] Engine: %s\n", choice)
	return choice
}

// prompt prints a label with an optional default and returns the user's input
// (or the default if they press enter).
func prompt(rl *readline.Instance, label, defaultVal string) string {
	if rl == nil {
		return defaultVal
	}
	if defaultVal != "" {
		rl.SetPrompt(fmt.Sprintf("[Config]   %s [%s]: ", label, defaultVal))
	} else {
		rl.SetPrompt(fmt.Sprintf("[Config]   %s: ", label))
	}
	defer rl.SetPrompt("gobool> ")
	line, err := rl.ReadLine()
	if err != nil {
		return defaultVal
	}
	val := strings.TrimSpace(line)
	if val == "" {
		return defaultVal
	}
	return val
}

func buildSQLiteDSN(rl *readline.Instance) string {
	fmt.Println("[Config] SQLite connection setup:")
	return prompt(rl, "Database path", ":memory:")
}

func buildPostgresDSN(rl *readline.Instance) string {
	fmt.Println("[Config] PostgreSQL connection setup:")

	defaultUser := "postgres"
	if u, err := user.Current(); err == nil && u.Username != "" {
		defaultUser = u.Username
	}

	dbUser := prompt(rl, "User", defaultUser)
	dbPass := prompt(rl, "Password", "")
	host := prompt(rl, "Host", "localhost")
	port := prompt(rl, "Port", "5432")
	dbName := prompt(rl, "Database", dbUser)
	sslMode := prompt(rl, "SSL mode (disable/require/verify-full)", "disable")

	var userInfo *url.Userinfo
	if dbPass != "" {
		userInfo = url.UserPassword(dbUser, dbPass)
	} else {
		userInfo = url.User(dbUser)
	}
	u := &url.URL{
		Scheme:   "postgres",
		User:     userInfo,
		Host:     host + ":" + port,
		Path:     "/" + dbName,
		RawQuery: "sslmode=" + sslMode,
	}
	return u.String()
}

func buildMySQLDSN(rl *readline.Instance) string {
	fmt.Println("[Config] MySQL connection setup:")

	dbUser := prompt(rl, "User", "root")
	dbPass := prompt(rl, "Password", "")
	host := prompt(rl, "Host", "localhost")
	port := prompt(rl, "Port", "3306")
	dbName := prompt(rl, "Database", "")

	if dbName == "" {
		return ""
	}

	// Format: user:pass@tcp(host:port)/dbname
	auth := dbUser
	if dbPass != "" {
		auth = dbUser + ":" + dbPass
	}
	return fmt.Sprintf("%s@tcp(%s:%s)/%s", auth, host, port, dbName)
}

func historyPath() string {
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".gobool_history")
}
