// Package storage provides SQLite-based persistence for the player profile:
// the money balance, the collection of unlocked loot, the consumable stock
// and the run history.
// Uses the pure-Go modernc.org/sqlite driver to avoid CGO dependencies.
package storage

import (
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // Pure Go SQLite driver

	"github.com/vovakirdan/sneakout/internal/engine"
)

// Store manages the SQLite database connection for profile persistence.
type Store struct {
	db *sql.DB
}

// Unlock is one entry of the collection: a loot id and how many times it has
// been extracted.
type Unlock struct {
	LootID     string
	Count      int
	FirstFound time.Time
}

// RunRecord is one finished run.
type RunRecord struct {
	ID        int64
	Archetype string
	Outcome   string // "victory" or "game over"
	Payout    int
	Turns     int
	LootCount int
	CreatedAt time.Time
}

// Open creates or opens a SQLite database at the given path.
// It creates the parent directories if needed and runs migrations.
func Open(dbPath string) (*Store, error) {
	// Expand ~ to home directory
	if dbPath != "" && dbPath[0] == '~' {
		home, err := os.UserHomeDir()
		if err != nil {
			return nil, fmt.Errorf("storage: cannot expand home directory: %w", err)
		}
		dbPath = filepath.Join(home, dbPath[1:])
	}

	// Create parent directories
	dir := filepath.Dir(dbPath)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return nil, fmt.Errorf("storage: cannot create directory %s: %w", dir, err)
	}

	// Open database
	db, err := sql.Open("sqlite", dbPath)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot open database: %w", err)
	}

	// Test connection
	if err := db.Ping(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: cannot connect to database: %w", err)
	}

	store := &Store{db: db}

	// Run migrations
	if err := store.migrate(); err != nil {
		db.Close()
		return nil, fmt.Errorf("storage: migration failed: %w", err)
	}

	return store, nil
}

// migrate creates the database schema if it doesn't exist.
func (s *Store) migrate() error {
	schema := `
		CREATE TABLE IF NOT EXISTS profile (
			id INTEGER PRIMARY KEY CHECK (id = 1),
			money INTEGER NOT NULL DEFAULT 0
		);
		INSERT OR IGNORE INTO profile (id, money) VALUES (1, 0);

		CREATE TABLE IF NOT EXISTS unlocks (
			loot_id TEXT PRIMARY KEY,
			count INTEGER NOT NULL DEFAULT 0,
			first_found DATETIME DEFAULT CURRENT_TIMESTAMP
		);

		CREATE TABLE IF NOT EXISTS consumables (
			kind TEXT PRIMARY KEY,
			count INTEGER NOT NULL DEFAULT 0
		);

		CREATE TABLE IF NOT EXISTS runs (
			id INTEGER PRIMARY KEY AUTOINCREMENT,
			archetype TEXT NOT NULL,
			outcome TEXT NOT NULL,
			payout INTEGER NOT NULL DEFAULT 0,
			turns INTEGER NOT NULL DEFAULT 0,
			loot_count INTEGER NOT NULL DEFAULT 0,
			created_at DATETIME DEFAULT CURRENT_TIMESTAMP
		);
		CREATE INDEX IF NOT EXISTS idx_runs_archetype ON runs(archetype);
	`

	_, err := s.db.Exec(schema)
	return err
}

// Close closes the database connection.
func (s *Store) Close() error {
	if s.db != nil {
		return s.db.Close()
	}
	return nil
}

// Money returns the profile balance.
func (s *Store) Money() (int, error) {
	var money int
	err := s.db.QueryRow("SELECT money FROM profile WHERE id = 1").Scan(&money)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot query balance: %w", err)
	}
	return money, nil
}

// AddMoney credits the balance. Negative amounts are rejected.
func (s *Store) AddMoney(amount int) error {
	if amount < 0 {
		return fmt.Errorf("storage: cannot add negative amount %d", amount)
	}
	_, err := s.db.Exec("UPDATE profile SET money = money + ? WHERE id = 1", amount)
	if err != nil {
		return fmt.Errorf("storage: cannot add money: %w", err)
	}
	return nil
}

// SpendMoney debits the balance, refusing to overdraw.
func (s *Store) SpendMoney(amount int) error {
	if amount < 0 {
		return fmt.Errorf("storage: cannot spend negative amount %d", amount)
	}
	res, err := s.db.Exec(
		"UPDATE profile SET money = money - ? WHERE id = 1 AND money >= ?",
		amount, amount,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot spend money: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot check spend result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage: insufficient funds for %d", amount)
	}
	return nil
}

// RecordUnlock marks a loot id as extracted, bumping its count.
func (s *Store) RecordUnlock(lootID string) error {
	_, err := s.db.Exec(
		`INSERT INTO unlocks (loot_id, count) VALUES (?, 1)
		 ON CONFLICT(loot_id) DO UPDATE SET count = count + 1`,
		lootID,
	)
	if err != nil {
		return fmt.Errorf("storage: cannot record unlock: %w", err)
	}
	return nil
}

// Unlocks returns the whole collection, most-extracted first.
func (s *Store) Unlocks() ([]Unlock, error) {
	rows, err := s.db.Query(
		"SELECT loot_id, count, first_found FROM unlocks ORDER BY count DESC, loot_id",
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query unlocks: %w", err)
	}
	defer rows.Close()

	var unlocks []Unlock
	for rows.Next() {
		var u Unlock
		var firstFound any
		if err := rows.Scan(&u.LootID, &u.Count, &firstFound); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		u.FirstFound = parseTimestamp(firstFound)
		unlocks = append(unlocks, u)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return unlocks, nil
}

// Consumables returns the current stock per gadget kind.
func (s *Store) Consumables() (map[engine.ConsumableKind]int, error) {
	rows, err := s.db.Query("SELECT kind, count FROM consumables")
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query consumables: %w", err)
	}
	defer rows.Close()

	stock := map[engine.ConsumableKind]int{}
	for rows.Next() {
		var kind string
		var count int
		if err := rows.Scan(&kind, &count); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		stock[engine.ConsumableKind(kind)] = count
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return stock, nil
}

// AddConsumable adds one unit of a gadget to the stock.
func (s *Store) AddConsumable(kind engine.ConsumableKind) error {
	_, err := s.db.Exec(
		`INSERT INTO consumables (kind, count) VALUES (?, 1)
		 ON CONFLICT(kind) DO UPDATE SET count = count + 1`,
		string(kind),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot add consumable: %w", err)
	}
	return nil
}

// SpendConsumable removes one unit of a gadget, refusing when out of stock.
func (s *Store) SpendConsumable(kind engine.ConsumableKind) error {
	res, err := s.db.Exec(
		"UPDATE consumables SET count = count - 1 WHERE kind = ? AND count > 0",
		string(kind),
	)
	if err != nil {
		return fmt.Errorf("storage: cannot spend consumable: %w", err)
	}
	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("storage: cannot check spend result: %w", err)
	}
	if n == 0 {
		return fmt.Errorf("storage: no %s in stock", kind)
	}
	return nil
}

// RecordRun saves a finished run. Returns the ID of the inserted record.
func (s *Store) RecordRun(rec RunRecord) (int64, error) {
	res, err := s.db.Exec(
		`INSERT INTO runs (archetype, outcome, payout, turns, loot_count)
		 VALUES (?, ?, ?, ?, ?)`,
		rec.Archetype, rec.Outcome, rec.Payout, rec.Turns, rec.LootCount,
	)
	if err != nil {
		return 0, fmt.Errorf("storage: cannot record run: %w", err)
	}
	id, err := res.LastInsertId()
	if err != nil {
		return 0, fmt.Errorf("storage: cannot get inserted ID: %w", err)
	}
	return id, nil
}

// RecentRuns retrieves the latest N runs, newest first.
func (s *Store) RecentRuns(limit int) ([]RunRecord, error) {
	if limit <= 0 {
		limit = 10
	}
	rows, err := s.db.Query(
		`SELECT id, archetype, outcome, payout, turns, loot_count, created_at
		 FROM runs
		 ORDER BY id DESC
		 LIMIT ?`,
		limit,
	)
	if err != nil {
		return nil, fmt.Errorf("storage: cannot query runs: %w", err)
	}
	defer rows.Close()

	var runs []RunRecord
	for rows.Next() {
		var r RunRecord
		var createdAt any
		if err := rows.Scan(&r.ID, &r.Archetype, &r.Outcome, &r.Payout, &r.Turns, &r.LootCount, &createdAt); err != nil {
			return nil, fmt.Errorf("storage: cannot scan row: %w", err)
		}
		r.CreatedAt = parseTimestamp(createdAt)
		runs = append(runs, r)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("storage: row iteration error: %w", err)
	}
	return runs, nil
}

// parseTimestamp handles both time.Time and string datetime values coming
// back from the driver.
func parseTimestamp(v any) time.Time {
	switch t := v.(type) {
	case time.Time:
		return t
	case string:
		if parsed, err := time.Parse("2006-01-02 15:04:05", t); err == nil {
			return parsed
		}
	}
	return time.Time{}
}
