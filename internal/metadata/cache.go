package metadata

import (
	"context"
	"database/sql"
	"fmt"
	"time"

	_ "modernc.org/sqlite"
)

const cacheSchema = `
CREATE TABLE IF NOT EXISTS lookup_cache (
	key        TEXT PRIMARY KEY,
	value      TEXT NOT NULL,
	expires_at TIMESTAMP NOT NULL
);
`

// Cache is a SQLite-backed response cache for metadata lookups. Series
// listings change rarely, so resolved lookups are kept for a TTL and
// reused across runs.
type Cache struct {
	db  *sql.DB
	ttl time.Duration
}

// OpenCache opens (and creates if needed) a lookup cache at path.
// Use ":memory:" for an ephemeral cache.
func OpenCache(path string, ttl time.Duration) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, fmt.Errorf("open lookup cache: %w", err)
	}
	// One connection: SQLite serializes writes anyway, and in-memory
	// databases are per-connection.
	db.SetMaxOpenConns(1)
	if _, err := db.Exec(cacheSchema); err != nil {
		return nil, fmt.Errorf("apply cache schema: %w", err)
	}
	return &Cache{db: db, ttl: ttl}, nil
}

// Close closes the underlying database.
func (c *Cache) Close() error { return c.db.Close() }

// Get retrieves a cached value. The second return is false when the key
// is absent or expired.
func (c *Cache) Get(ctx context.Context, key string) ([]byte, bool) {
	var value string
	var expiresAt time.Time
	err := c.db.QueryRowContext(ctx,
		"SELECT value, expires_at FROM lookup_cache WHERE key = ?", key,
	).Scan(&value, &expiresAt)
	if err != nil || time.Now().After(expiresAt) {
		return nil, false
	}
	return []byte(value), true
}

// Set stores a value under the cache's TTL.
func (c *Cache) Set(ctx context.Context, key string, value []byte) error {
	_, err := c.db.ExecContext(ctx,
		`INSERT INTO lookup_cache (key, value, expires_at)
		 VALUES (?, ?, ?)
		 ON CONFLICT(key) DO UPDATE SET value = excluded.value, expires_at = excluded.expires_at`,
		key, string(value), time.Now().Add(c.ttl),
	)
	if err != nil {
		return fmt.Errorf("cache set: %w", err)
	}
	return nil
}

// Prune removes expired entries and returns how many were removed.
func (c *Cache) Prune(ctx context.Context) (int64, error) {
	result, err := c.db.ExecContext(ctx,
		"DELETE FROM lookup_cache WHERE expires_at < ?", time.Now(),
	)
	if err != nil {
		return 0, fmt.Errorf("cache prune: %w", err)
	}
	return result.RowsAffected()
}
