// Package store provides data persistence implementations.
package store

import (
	"context"
	"database/sql"
	"encoding/json"
	"fmt"
	"strings"
	"time"

	_ "github.com/mattn/go-sqlite3"
	"tradejournal/internal/errors"
	"tradejournal/internal/models"
)

// SQLiteStore implements DataStore using SQLite.
type SQLiteStore struct {
	db *sql.DB
}

// NewSQLiteStore creates a new SQLite-based data store.
func NewSQLiteStore(dbPath string) (*SQLiteStore, error) {
	db, err := sql.Open("sqlite3", dbPath+"?_journal_mode=WAL&_busy_timeout=5000")
	if err != nil {
		return nil, fmt.Errorf("failed to open database: %w", err)
	}

	// Configure connection pool for concurrent access
	db.SetMaxOpenConns(10)
	db.SetMaxIdleConns(5)
	db.SetConnMaxLifetime(time.Hour)

	store := &SQLiteStore{db: db}

	if err := store.initSchema(); err != nil {
		db.Close()
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	return store, nil
}

// initSchema creates all required tables and indexes.
func (s *SQLiteStore) initSchema() error {
	schema := `
	-- Trades table for closed journal entries
	CREATE TABLE IF NOT EXISTS trades (
		id TEXT PRIMARY KEY,
		symbol TEXT NOT NULL,
		direction TEXT NOT NULL,
		quantity REAL NOT NULL,
		entry_price REAL NOT NULL,
		exit_price REAL NOT NULL,
		stop_loss REAL,
		target_price REAL,
		strategy TEXT,
		entry_date DATETIME NOT NULL,
		exit_date DATETIME,
		gross_pl REAL NOT NULL,
		net_pl REAL NOT NULL,
		risk_reward REAL NOT NULL,
		confidence_level INTEGER,
		pre_emotion TEXT,
		post_emotion TEXT,
		exit_emotion TEXT,
		primary_exit_reason TEXT,
		sleep_quality INTEGER,
		fomo_level INTEGER,
		pre_stress INTEGER,
		stress_during INTEGER,
		technical_confluence TEXT,
		followed_rules TEXT,
		waited_for_setup TEXT,
		would_take_again TEXT,
		market_session TEXT,
		notes TEXT,
		lesson TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Daily confidence ratings, one row per calendar day
	CREATE TABLE IF NOT EXISTS confidence (
		id TEXT PRIMARY KEY,
		date DATE NOT NULL UNIQUE,
		level INTEGER NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Daily notes, one row per calendar day
	CREATE TABLE IF NOT EXISTS notes (
		id TEXT PRIMARY KEY,
		date DATE NOT NULL UNIQUE,
		content TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Trading rules
	CREATE TABLE IF NOT EXISTS rules (
		id TEXT PRIMARY KEY,
		title TEXT NOT NULL,
		description TEXT,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		updated_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	-- Create indexes for performance
	CREATE INDEX IF NOT EXISTS idx_trades_symbol ON trades(symbol);
	CREATE INDEX IF NOT EXISTS idx_trades_strategy ON trades(strategy);
	CREATE INDEX IF NOT EXISTS idx_trades_entry_date ON trades(entry_date);
	CREATE INDEX IF NOT EXISTS idx_confidence_date ON confidence(date);
	CREATE INDEX IF NOT EXISTS idx_notes_date ON notes(date);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func newID(prefix string) string {
	return fmt.Sprintf("%s-%d", prefix, time.Now().UnixNano())
}

// dateKey normalizes a timestamp to its calendar day for UNIQUE(date) columns.
func dateKey(t time.Time) string {
	return t.Format("2006-01-02")
}

// ============================================================================
// Trades Methods
// ============================================================================

// SaveTrade inserts a closed trade. An empty ID is assigned before insert.
func (s *SQLiteStore) SaveTrade(ctx context.Context, trade *models.Trade) error {
	if trade.ID == "" {
		trade.ID = newID("TRD")
	}
	if trade.CreatedAt.IsZero() {
		trade.CreatedAt = time.Now()
	}

	confluence, err := json.Marshal(trade.TechnicalConfluence)
	if err != nil {
		return errors.NewStoreError("save", "trade", err)
	}
	followed, err := json.Marshal(trade.FollowedRules)
	if err != nil {
		return errors.NewStoreError("save", "trade", err)
	}

	_, err = s.db.ExecContext(ctx, `
		INSERT INTO trades (
			id, symbol, direction, quantity, entry_price, exit_price,
			stop_loss, target_price, strategy, entry_date, exit_date,
			gross_pl, net_pl, risk_reward, confidence_level,
			pre_emotion, post_emotion, exit_emotion, primary_exit_reason,
			sleep_quality, fomo_level, pre_stress, stress_during,
			technical_confluence, followed_rules, waited_for_setup,
			would_take_again, market_session, notes, lesson, created_at
		) VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`,
		trade.ID, trade.Symbol, string(trade.Direction), trade.Quantity,
		trade.EntryPrice, trade.ExitPrice, trade.StopLoss, trade.TargetPrice,
		trade.Strategy, trade.EntryDate, trade.ExitDate,
		trade.GrossPL, trade.NetPL, trade.RiskRewardRatio, trade.ConfidenceLevel,
		trade.PreEmotion, trade.PostEmotion, trade.ExitEmotion, trade.PrimaryExitReason,
		trade.SleepQuality, trade.FomoLevel, trade.PreStress, trade.StressDuring,
		string(confluence), string(followed), trade.WaitedForSetup,
		trade.WouldTakeAgain, trade.MarketSession, trade.Notes, trade.Lesson,
		trade.CreatedAt,
	)
	if err != nil {
		return errors.NewStoreError("save", "trade", err)
	}
	return nil
}

const tradeColumns = `
	id, symbol, direction, quantity, entry_price, exit_price,
	stop_loss, target_price, strategy, entry_date, exit_date,
	gross_pl, net_pl, risk_reward, confidence_level,
	pre_emotion, post_emotion, exit_emotion, primary_exit_reason,
	sleep_quality, fomo_level, pre_stress, stress_during,
	technical_confluence, followed_rules, waited_for_setup,
	would_take_again, market_session, notes, lesson, created_at
`

func scanTrade(scanner interface{ Scan(...interface{}) error }) (*models.Trade, error) {
	var t models.Trade
	var direction string
	var confluence, followed string
	var exitDate sql.NullTime

	err := scanner.Scan(
		&t.ID, &t.Symbol, &direction, &t.Quantity, &t.EntryPrice, &t.ExitPrice,
		&t.StopLoss, &t.TargetPrice, &t.Strategy, &t.EntryDate, &exitDate,
		&t.GrossPL, &t.NetPL, &t.RiskRewardRatio, &t.ConfidenceLevel,
		&t.PreEmotion, &t.PostEmotion, &t.ExitEmotion, &t.PrimaryExitReason,
		&t.SleepQuality, &t.FomoLevel, &t.PreStress, &t.StressDuring,
		&confluence, &followed, &t.WaitedForSetup,
		&t.WouldTakeAgain, &t.MarketSession, &t.Notes, &t.Lesson, &t.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	t.Direction = models.Direction(direction)
	if exitDate.Valid {
		t.ExitDate = exitDate.Time
	}
	if confluence != "" {
		if err := json.Unmarshal([]byte(confluence), &t.TechnicalConfluence); err != nil {
			return nil, fmt.Errorf("decoding confluence tags: %w", err)
		}
	}
	if followed != "" {
		if err := json.Unmarshal([]byte(followed), &t.FollowedRules); err != nil {
			return nil, fmt.Errorf("decoding followed rules: %w", err)
		}
	}
	return &t, nil
}

// GetTrade retrieves one trade by ID.
func (s *SQLiteStore) GetTrade(ctx context.Context, id string) (*models.Trade, error) {
	row := s.db.QueryRowContext(ctx, `SELECT `+tradeColumns+` FROM trades WHERE id = ?`, id)
	trade, err := scanTrade(row)
	if err == sql.ErrNoRows {
		return nil, errors.ErrDataNotFound
	}
	if err != nil {
		return nil, errors.NewStoreError("get", "trade", err)
	}
	return trade, nil
}

// GetTrades retrieves trades matching the filter, most recent entry first.
func (s *SQLiteStore) GetTrades(ctx context.Context, filter TradeFilter) ([]models.Trade, error) {
	query := `SELECT ` + tradeColumns + ` FROM trades WHERE 1=1`
	var args []interface{}

	if filter.Symbol != "" {
		query += " AND symbol = ?"
		args = append(args, filter.Symbol)
	}
	if filter.Strategy != "" {
		query += " AND strategy = ?"
		args = append(args, filter.Strategy)
	}
	if !filter.StartDate.IsZero() {
		query += " AND entry_date >= ?"
		args = append(args, filter.StartDate)
	}
	if !filter.EndDate.IsZero() {
		query += " AND entry_date <= ?"
		args = append(args, filter.EndDate)
	}

	query += " ORDER BY entry_date DESC, created_at DESC"
	if filter.Limit > 0 {
		query += " LIMIT ?"
		args = append(args, filter.Limit)
	}

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError("query", "trades", err)
	}
	defer rows.Close()

	var trades []models.Trade
	for rows.Next() {
		trade, err := scanTrade(rows)
		if err != nil {
			return nil, errors.NewStoreError("scan", "trade", err)
		}
		trades = append(trades, *trade)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreError("iterate", "trades", err)
	}
	return trades, nil
}

// DeleteTrade removes a trade by ID.
func (s *SQLiteStore) DeleteTrade(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM trades WHERE id = ?`, id)
	if err != nil {
		return errors.NewStoreError("delete", "trade", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrDataNotFound
	}
	return nil
}

// ============================================================================
// Confidence Methods
// ============================================================================

// SetConfidence records the confidence level for a day, replacing any
// existing entry for that date.
func (s *SQLiteStore) SetConfidence(ctx context.Context, date time.Time, level int) error {
	if level < 1 || level > 10 {
		return errors.NewValidationError("level", level, "must be between 1 and 10")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO confidence (id, date, level) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET level = excluded.level
	`, newID("CNF"), dateKey(date), level)
	if err != nil {
		return errors.NewStoreError("set", "confidence", err)
	}
	return nil
}

// GetConfidence retrieves confidence entries within [from, to], oldest first.
// Zero bounds are open-ended.
func (s *SQLiteStore) GetConfidence(ctx context.Context, from, to time.Time) ([]models.ConfidenceEntry, error) {
	query := `SELECT id, date, level FROM confidence WHERE 1=1`
	var args []interface{}
	if !from.IsZero() {
		query += " AND date >= ?"
		args = append(args, dateKey(from))
	}
	if !to.IsZero() {
		query += " AND date <= ?"
		args = append(args, dateKey(to))
	}
	query += " ORDER BY date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError("query", "confidence", err)
	}
	defer rows.Close()

	var entries []models.ConfidenceEntry
	for rows.Next() {
		var e models.ConfidenceEntry
		if err := rows.Scan(&e.ID, &e.Date, &e.Level); err != nil {
			return nil, errors.NewStoreError("scan", "confidence", err)
		}
		entries = append(entries, e)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreError("iterate", "confidence", err)
	}
	return entries, nil
}

// ============================================================================
// Notes Methods
// ============================================================================

// SetNote writes the note for a day. A second write to the same date
// replaces the content and bumps updated_at.
func (s *SQLiteStore) SetNote(ctx context.Context, date time.Time, content string) error {
	if strings.TrimSpace(content) == "" {
		return errors.NewValidationError("content", content, "must not be empty")
	}

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO notes (id, date, content) VALUES (?, ?, ?)
		ON CONFLICT(date) DO UPDATE SET content = excluded.content, updated_at = CURRENT_TIMESTAMP
	`, newID("NOTE"), dateKey(date), content)
	if err != nil {
		return errors.NewStoreError("set", "note", err)
	}
	return nil
}

// GetNotes retrieves notes within [from, to], oldest first. Zero bounds are
// open-ended.
func (s *SQLiteStore) GetNotes(ctx context.Context, from, to time.Time) ([]models.Note, error) {
	query := `SELECT id, date, content, created_at, updated_at FROM notes WHERE 1=1`
	var args []interface{}
	if !from.IsZero() {
		query += " AND date >= ?"
		args = append(args, dateKey(from))
	}
	if !to.IsZero() {
		query += " AND date <= ?"
		args = append(args, dateKey(to))
	}
	query += " ORDER BY date ASC"

	rows, err := s.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, errors.NewStoreError("query", "notes", err)
	}
	defer rows.Close()

	var notes []models.Note
	for rows.Next() {
		var n models.Note
		if err := rows.Scan(&n.ID, &n.Date, &n.Content, &n.CreatedAt, &n.UpdatedAt); err != nil {
			return nil, errors.NewStoreError("scan", "note", err)
		}
		notes = append(notes, n)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreError("iterate", "notes", err)
	}
	return notes, nil
}

// ============================================================================
// Rules Methods
// ============================================================================

// SaveRule inserts a new rule. An empty ID is assigned before insert.
func (s *SQLiteStore) SaveRule(ctx context.Context, rule *models.Rule) error {
	if strings.TrimSpace(rule.Title) == "" {
		return errors.NewValidationError("title", rule.Title, "must not be empty")
	}
	if rule.ID == "" {
		rule.ID = newID("RULE")
	}
	now := time.Now()
	if rule.CreatedAt.IsZero() {
		rule.CreatedAt = now
	}
	rule.UpdatedAt = now

	_, err := s.db.ExecContext(ctx, `
		INSERT INTO rules (id, title, description, created_at, updated_at)
		VALUES (?, ?, ?, ?, ?)
	`, rule.ID, rule.Title, rule.Description, rule.CreatedAt, rule.UpdatedAt)
	if err != nil {
		return errors.NewStoreError("save", "rule", err)
	}
	return nil
}

// UpdateRule updates the title and description of an existing rule.
func (s *SQLiteStore) UpdateRule(ctx context.Context, rule *models.Rule) error {
	if strings.TrimSpace(rule.Title) == "" {
		return errors.NewValidationError("title", rule.Title, "must not be empty")
	}

	res, err := s.db.ExecContext(ctx, `
		UPDATE rules SET title = ?, description = ?, updated_at = CURRENT_TIMESTAMP WHERE id = ?
	`, rule.Title, rule.Description, rule.ID)
	if err != nil {
		return errors.NewStoreError("update", "rule", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrDataNotFound
	}
	return nil
}

// DeleteRule removes a rule by ID. Trades that referenced the rule keep the
// title in their followed-rules set.
func (s *SQLiteStore) DeleteRule(ctx context.Context, id string) error {
	res, err := s.db.ExecContext(ctx, `DELETE FROM rules WHERE id = ?`, id)
	if err != nil {
		return errors.NewStoreError("delete", "rule", err)
	}
	if n, _ := res.RowsAffected(); n == 0 {
		return errors.ErrDataNotFound
	}
	return nil
}

// GetRules retrieves all rules, newest first.
func (s *SQLiteStore) GetRules(ctx context.Context) ([]models.Rule, error) {
	rows, err := s.db.QueryContext(ctx, `
		SELECT id, title, description, created_at, updated_at
		FROM rules ORDER BY created_at DESC
	`)
	if err != nil {
		return nil, errors.NewStoreError("query", "rules", err)
	}
	defer rows.Close()

	var rules []models.Rule
	for rows.Next() {
		var r models.Rule
		if err := rows.Scan(&r.ID, &r.Title, &r.Description, &r.CreatedAt, &r.UpdatedAt); err != nil {
			return nil, errors.NewStoreError("scan", "rule", err)
		}
		rules = append(rules, r)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.NewStoreError("iterate", "rules", err)
	}
	return rules, nil
}
