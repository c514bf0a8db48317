package store

import (
	"context"
	"database/sql"
	"fmt"
	"os"
	"path/filepath"
	"time"

	_ "modernc.org/sqlite" // SQLite driver

	"github.com/claimscope/claimscope/internal/model"
)

// SQLiteStore keeps check history and fake-claim lists in a single
// SQLite file. The UNIQUE(text, region) natural key on checks makes
// resubmissions idempotent at the storage layer, where the contract
// says deduplication belongs.
type SQLiteStore struct {
	db     *sql.DB
	dbPath string
}

// OpenSQLite opens or creates the store under dir.
func OpenSQLite(dir string) (*SQLiteStore, error) {
	if err := os.MkdirAll(dir, 0750); err != nil {
		return nil, fmt.Errorf("create store directory: %w", err)
	}
	dbPath := filepath.Join(dir, "claimscope.db")

	db, err := sql.Open("sqlite", dbPath+"?mode=rwc")
	if err != nil {
		return nil, fmt.Errorf("open database: %w", err)
	}

	// SQLite supports a single writer; don't pool past it
	db.SetMaxOpenConns(1)
	db.SetMaxIdleConns(1)
	db.SetConnMaxLifetime(time.Hour)

	s := &SQLiteStore{db: db, dbPath: dbPath}

	if _, err := db.ExecContext(context.Background(), "PRAGMA journal_mode=WAL"); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("enable WAL mode: %w", err)
	}
	if err := s.createTables(); err != nil {
		_ = db.Close()
		return nil, fmt.Errorf("create tables: %w", err)
	}

	return s, nil
}

// Close closes the database connection.
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

func (s *SQLiteStore) createTables() error {
	schema := `
	-- One row per distinct (claim text, region) ever checked
	CREATE TABLE IF NOT EXISTS checks (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		region TEXT NOT NULL,
		text TEXT NOT NULL,
		text_en TEXT NOT NULL,
		label TEXT NOT NULL,
		confidence REAL NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP,
		UNIQUE(text, region)
	);

	CREATE INDEX IF NOT EXISTS idx_checks_region ON checks(region);

	-- Refuted claim texts accumulated per region; appends are kept as-is
	CREATE TABLE IF NOT EXISTS fake_claims (
		id INTEGER PRIMARY KEY AUTOINCREMENT,
		region TEXT NOT NULL,
		text TEXT NOT NULL,
		created_at DATETIME DEFAULT CURRENT_TIMESTAMP
	);

	CREATE INDEX IF NOT EXISTS idx_fake_claims_region ON fake_claims(region);
	`
	_, err := s.db.Exec(schema)
	return err
}

// UpsertCheck implements Store.
func (s *SQLiteStore) UpsertCheck(ctx context.Context, rec model.CheckRecord) error {
	_, err := s.db.ExecContext(ctx, `
		INSERT OR IGNORE INTO checks (region, text, text_en, label, confidence)
		VALUES (?, ?, ?, ?, ?)`,
		rec.Region, rec.OriginalText, rec.NormalizedText, rec.Verdict.Label, rec.Verdict.Confidence,
	)
	if err != nil {
		return fmt.Errorf("upsert check: %w", err)
	}
	return nil
}

// AppendFakeClaim implements Store.
func (s *SQLiteStore) AppendFakeClaim(ctx context.Context, region, text string) error {
	_, err := s.db.ExecContext(ctx,
		`INSERT INTO fake_claims (region, text) VALUES (?, ?)`, region, text)
	if err != nil {
		return fmt.Errorf("append fake claim: %w", err)
	}
	return nil
}

// FakeClaims implements Store.
func (s *SQLiteStore) FakeClaims(ctx context.Context, region string) ([]string, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT text FROM fake_claims WHERE region = ? ORDER BY id`, region)
	if err != nil {
		return nil, fmt.Errorf("query fake claims: %w", err)
	}
	defer rows.Close()

	var claims []string
	for rows.Next() {
		var text string
		if err := rows.Scan(&text); err != nil {
			return nil, fmt.Errorf("scan fake claim: %w", err)
		}
		claims = append(claims, text)
	}
	return claims, rows.Err()
}

// FakeCounts implements Store.
func (s *SQLiteStore) FakeCounts(ctx context.Context) (map[string]int, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT region, COUNT(*) FROM fake_claims GROUP BY region`)
	if err != nil {
		return nil, fmt.Errorf("query fake counts: %w", err)
	}
	defer rows.Close()

	counts := make(map[string]int)
	for rows.Next() {
		var region string
		var count int
		if err := rows.Scan(&region, &count); err != nil {
			return nil, fmt.Errorf("scan fake count: %w", err)
		}
		counts[region] = count
	}
	return counts, rows.Err()
}
