package main

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/bawdo/gobool/database"
)

// dbTimeout bounds each database round trip.
const dbTimeout = 30 * time.Second

var errNotConnected = errors.New("not connected (use 'connect <dsn>' first)")

func (s *Session) cmdConnect(args string) error {
	dsn := strings.TrimSpace(args)

	if s.conn != nil {
		return fmt.Errorf("already connected to %s (use 'disconnect' first)", s.conn.DSN())
	}

	// Direct DSN provided: connect immediately.
	if dsn != "" {
		return s.connectWithDSN(dsn)
	}

	// Interactive: offer reconnect if we have a previous DSN, otherwise wizard.
	if s.lastDSN != "" {
		choice := prompt(s.rl, fmt.Sprintf("Reconnect to %s? (y/n/setup)", database.SanitizeDSN(s.lastDSN)), "y")
		switch strings.ToLower(choice) {
		case "y", "yes":
			return s.connectWithDSN(s.lastDSN)
		case "s", "setup":
			return s.connectViaWizard()
		default:
			s.printf("  Connect cancelled\n")
			return nil
		}
	}

	return s.connectViaWizard()
}

func (s *Session) connectWithDSN(dsn string) error {
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()

	s.log.Debug("connecting", "engine", s.engine, "dsn", database.SanitizeDSN(dsn))
	conn, err := database.Open(ctx, s.engine, dsn)
	if err != nil {
		s.log.Warn("connect failed", "engine", s.engine, "err", err)
		return fmt.Errorf("connect: %w", err)
	}
	s.conn = conn
	s.lastDSN = dsn
	s.log.Info("connected", "engine", s.engine, "dsn", conn.DSN())
	s.printf("  Connected to %s (%s)\n", conn.DSN(), s.engine)
	return nil
}

func (s *Session) connectViaWizard() error {
	var dsn string
	switch s.engine {
	case "sqlite":
		dsn = buildSQLiteDSN(s.rl)
	case "mysql":
		dsn = buildMySQLDSN(s.rl)
	default:
		dsn = buildPostgresDSN(s.rl)
	}

	if dsn == "" {
		s.printf("  No connection configured\n")
		return nil
	}

	s.printf("  DSN: %s\n", database.SanitizeDSN(dsn))
	return s.connectWithDSN(dsn)
}

func (s *Session) cmdDisconnect() error {
	if s.conn == nil {
		return errors.New("not connected")
	}
	dsn := s.conn.DSN()
	if err := s.conn.Close(); err != nil {
		return fmt.Errorf("disconnect: %w", err)
	}
	s.conn = nil
	s.log.Info("disconnected", "dsn", dsn)
	s.printf("  Disconnected from %s\n", dsn)
	return nil
}

// checkConn returns an error when disconnected and warns when the
// connection's engine differs from the session's.
func (s *Session) checkConn() error {
	if s.conn == nil {
		return errNotConnected
	}
	if s.conn.Engine() != s.engine {
		s.printf("  Warning: connected to %s but engine is set to %s\n", s.conn.Engine(), s.engine)
	}
	return nil
}

// cmdSQLEval evaluates the top of the stack on the database and prints the
// bindings with the result.
func (s *Session) cmdSQLEval(args string) error {
	if err := s.checkConn(); err != nil {
		return err
	}
	top, err := s.result()
	if err != nil {
		return err
	}
	a, err := parseAssignment(args)
	if err != nil {
		return err
	}

	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	table, err := s.conn.Table(ctx, top, a)
	if err != nil {
		return err
	}
	s.printf("%s", table)
	return nil
}

// cmdQuery runs raw SQL on the connection.
//
// SECURITY: the statement is sent verbatim.
func (s *Session) cmdQuery(args string) error {
	if err := s.checkConn(); err != nil {
		return err
	}
	if args == "" {
		return errors.New("usage: query <sql>")
	}
	ctx, cancel := context.WithTimeout(context.Background(), dbTimeout)
	defer cancel()
	result, err := s.conn.Query(ctx, args)
	if err != nil {
		return err
	}
	s.printf("%s", result)
	return nil
}
