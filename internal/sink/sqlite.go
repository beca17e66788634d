package sink

import (
	"database/sql"
	"fmt"
	"sort"

	_ "modernc.org/sqlite"

	"firestige.xyz/rcg/pkg/log"
	"firestige.xyz/rcg/pkg/rcg"
)

const SQLiteName = "sqlite"

func init() {
	mustRegister(Definition{
		Name:        SQLiteName,
		Description: "tables of shows, players, teams, play modes, messages and parameters",
		OwnsPath:    true,
		Binary:      true,
		New:         newSQLiteSink,
	})
}

// SQLiteOptions tunes the sqlite sink.
type SQLiteOptions struct {
	Batch int  `mapstructure:"batch"` // rows per transaction
	Reset bool `mapstructure:"reset"` // drop existing tables first
}

var sqliteSchema = []string{
	`CREATE TABLE IF NOT EXISTS shows (
		time INTEGER NOT NULL,
		ball_x REAL, ball_y REAL, ball_vx REAL, ball_vy REAL
	)`,
	`CREATE TABLE IF NOT EXISTS players (
		time INTEGER NOT NULL,
		side TEXT NOT NULL, unum INTEGER NOT NULL, type INTEGER, state INTEGER,
		x REAL, y REAL, vx REAL, vy REAL, body REAL, neck REAL,
		stamina REAL, effort REAL, recovery REAL, capacity REAL
	)`,
	`CREATE TABLE IF NOT EXISTS teams (
		time INTEGER NOT NULL,
		left_name TEXT, left_score INTEGER, left_pen_score INTEGER, left_pen_miss INTEGER,
		right_name TEXT, right_score INTEGER, right_pen_score INTEGER, right_pen_miss INTEGER
	)`,
	`CREATE TABLE IF NOT EXISTS playmodes (time INTEGER NOT NULL, mode TEXT NOT NULL)`,
	`CREATE TABLE IF NOT EXISTS messages (time INTEGER NOT NULL, board INTEGER, text TEXT)`,
	`CREATE TABLE IF NOT EXISTS params (kind TEXT NOT NULL, seq INTEGER NOT NULL, name TEXT NOT NULL, value TEXT)`,
	`CREATE INDEX IF NOT EXISTS players_time ON players (time)`,
}

var sqliteTables = []string{"shows", "players", "teams", "playmodes", "messages", "params"}

const (
	insertShow     = `INSERT INTO shows (time, ball_x, ball_y, ball_vx, ball_vy) VALUES (?, ?, ?, ?, ?)`
	insertPlayer   = `INSERT INTO players (time, side, unum, type, state, x, y, vx, vy, body, neck, stamina, effort, recovery, capacity) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)`
	insertTeam     = `INSERT INTO teams (time, left_name, left_score, left_pen_score, left_pen_miss, right_name, right_score, right_pen_score, right_pen_miss) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?)`
	insertPlayMode = `INSERT INTO playmodes (time, mode) VALUES (?, ?)`
	insertMessage  = `INSERT INTO messages (time, board, text) VALUES (?, ?, ?)`
	insertParam    = `INSERT INTO params (kind, seq, name, value) VALUES (?, ?, ?, ?)`
)

// SQLiteSink persists records for analysis with SQL.
type SQLiteSink struct {
	rcg.BaseHandler
	db    *sql.DB
	tx    *sql.Tx
	stmts map[string]*sql.Stmt
	opts  SQLiteOptions
	rows  int
	seq   map[string]int
	log   log.Logger
}

func newSQLiteSink(t Target, raw map[string]interface{}) (Sink, error) {
	opts := SQLiteOptions{Batch: 1000}
	if err := decodeOptions(raw, &opts); err != nil {
		return nil, err
	}
	if opts.Batch <= 0 {
		return nil, fmt.Errorf("batch must be positive, got %d", opts.Batch)
	}
	return OpenSQLite(t.Path, opts)
}

// OpenSQLite opens (creating when needed) the database at path.
func OpenSQLite(path string, opts SQLiteOptions) (*SQLiteSink, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}
	// one writer connection keeps the transaction and the statements together
	db.SetMaxOpenConns(1)

	s := &SQLiteSink{
		db:    db,
		stmts: make(map[string]*sql.Stmt),
		opts:  opts,
		seq:   make(map[string]int),
		log:   log.GetLogger().WithField("sink", SQLiteName),
	}
	if err := s.migrate(); err != nil {
		db.Close()
		return nil, err
	}
	for _, q := range []string{insertShow, insertPlayer, insertTeam, insertPlayMode, insertMessage, insertParam} {
		stmt, err := db.Prepare(q)
		if err != nil {
			db.Close()
			return nil, fmt.Errorf("failed to prepare statement: %w", err)
		}
		s.stmts[q] = stmt
	}
	s.log.WithField("path", path).Debug("database opened")
	return s, nil
}

func (s *SQLiteSink) migrate() error {
	if s.opts.Reset {
		for _, t := range sqliteTables {
			if _, err := s.db.Exec("DROP TABLE IF EXISTS " + t); err != nil {
				return fmt.Errorf("failed to drop %s: %w", t, err)
			}
		}
	}
	for _, ddl := range sqliteSchema {
		if _, err := s.db.Exec(ddl); err != nil {
			return fmt.Errorf("failed to create schema: %w", err)
		}
	}
	return nil
}

// exec runs one insert inside the current batch transaction.
func (s *SQLiteSink) exec(query string, args ...interface{}) error {
	if s.tx == nil {
		tx, err := s.db.Begin()
		if err != nil {
			return fmt.Errorf("failed to begin transaction: %w", err)
		}
		s.tx = tx
	}
	if _, err := s.tx.Stmt(s.stmts[query]).Exec(args...); err != nil {
		return fmt.Errorf("failed to insert: %w", err)
	}
	s.rows++
	if s.rows >= s.opts.Batch {
		return s.commit()
	}
	return nil
}

func (s *SQLiteSink) commit() error {
	if s.tx == nil {
		return nil
	}
	err := s.tx.Commit()
	s.tx = nil
	s.rows = 0
	if err != nil {
		return fmt.Errorf("failed to commit: %w", err)
	}
	return nil
}

func nullable(ok bool, v float64) interface{} {
	if !ok {
		return nil
	}
	return v
}

func (s *SQLiteSink) HandleShow(rec *rcg.ShowRecord) error {
	if err := s.exec(insertShow, rec.Time, rec.Ball.X, rec.Ball.Y, rec.Ball.VX, rec.Ball.VY); err != nil {
		return err
	}
	for i := range rec.Players {
		p := &rec.Players[i]
		if !p.Populated() {
			continue
		}
		err := s.exec(insertPlayer, rec.Time, p.Side.String(), p.Unum, p.Type, int64(p.State),
			p.X, p.Y, p.VX, p.VY, p.Body, p.Neck,
			nullable(p.HasStamina, p.Stamina), nullable(p.HasStamina, p.Effort),
			nullable(p.HasStamina, p.Recovery), nullable(p.HasCapacity, p.Capacity))
		if err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteSink) HandleMsg(m *rcg.MsgRecord) error {
	return s.exec(insertMessage, m.Time, m.Board, m.Text)
}

func (s *SQLiteSink) HandlePlayMode(time int, pm rcg.PlayMode) error {
	return s.exec(insertPlayMode, time, pm.String())
}

func (s *SQLiteSink) HandleTeam(t *rcg.TeamRecord) error {
	return s.exec(insertTeam, t.Time,
		t.Left.Name, t.Left.Score, t.Left.PenaltyScore, t.Left.PenaltyMiss,
		t.Right.Name, t.Right.Score, t.Right.PenaltyScore, t.Right.PenaltyMiss)
}

func (s *SQLiteSink) params(kind string, values map[string]string) error {
	seq := s.seq[kind]
	s.seq[kind] = seq + 1
	names := make([]string, 0, len(values))
	for name := range values {
		names = append(names, name)
	}
	sort.Strings(names)
	for _, name := range names {
		if err := s.exec(insertParam, kind, seq, name, values[name]); err != nil {
			return err
		}
	}
	return nil
}

func (s *SQLiteSink) HandleServerParam(p *rcg.ServerParam) error {
	return s.params(KindServerParam, p.Values())
}

func (s *SQLiteSink) HandlePlayerParam(p *rcg.PlayerParam) error {
	return s.params(KindPlayerParam, p.Values())
}

func (s *SQLiteSink) HandlePlayerType(p *rcg.PlayerType) error {
	return s.params(KindPlayerType, p.Values())
}

func (s *SQLiteSink) HandleEOF() error { return s.commit() }

// DB exposes the underlying database for queries.
func (s *SQLiteSink) DB() *sql.DB { return s.db }

func (s *SQLiteSink) Close() error {
	err := s.commit()
	for _, stmt := range s.stmts {
		stmt.Close()
	}
	if cerr := s.db.Close(); err == nil {
		err = cerr
	}
	return err
}
