// ABOUTME: SQLite-based cache implementation for persistent caching
// ABOUTME: Provides a file-based cache that survives application restarts

package sqlite

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

const cleanupInterval = time.Hour

// Client implements the Cache interface using SQLite
type Client struct {
	db       *sql.DB
	filePath string
}

// NewSQLiteCache creates a new SQLite cache client
func NewSQLiteCache(filePath string) (*Client, error) {
	if filePath == "" {
		filePath = "pagesense-cache.db"
	}

	db, err := sql.Open("sqlite3", filePath)
	if err != nil {
		return nil, fmt.Errorf("failed to open SQLite database: %w", err)
	}

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to connect to SQLite database: %w", err)
	}

	client := &Client{
		db:       db,
		filePath: filePath,
	}

	if err := client.initSchema(); err != nil {
		return nil, fmt.Errorf("failed to initialize schema: %w", err)
	}

	go client.cleanupRoutine()

	return client, nil
}

// initSchema creates the cache table if it doesn't exist. expiry is a unix
// timestamp; zero means no expiration.
func (c *Client) initSchema() error {
	query := `
		CREATE TABLE IF NOT EXISTS cache (
			key TEXT PRIMARY KEY,
			value BLOB NOT NULL,
			expiry INTEGER NOT NULL
		);
		CREATE INDEX IF NOT EXISTS idx_cache_expiry ON cache(expiry);
	`
	_, err := c.db.Exec(query)
	return err
}

// Get retrieves a value from the cache
func (c *Client) Get(ctx context.Context, key string) ([]byte, error) {
	var value []byte
	var expiry int64

	row := c.db.QueryRowContext(ctx, "SELECT value, expiry FROM cache WHERE key = ?", key)
	if err := row.Scan(&value, &expiry); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.New("key not found")
		}
		return nil, err
	}

	if expiry > 0 && time.Now().Unix() > expiry {
		_, _ = c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key)
		return nil, errors.New("key not found")
	}

	return value, nil
}

// Set stores a value in the cache with the given TTL
func (c *Client) Set(ctx context.Context, key string, value []byte, ttl time.Duration) error {
	var expiry int64
	if ttl > 0 {
		expiry = time.Now().Add(ttl).Unix()
	}

	_, err := c.db.ExecContext(ctx,
		"INSERT OR REPLACE INTO cache (key, value, expiry) VALUES (?, ?, ?)",
		key, value, expiry,
	)
	return err
}

// Delete removes a key from the cache
func (c *Client) Delete(ctx context.Context, key string) error {
	_, err := c.db.ExecContext(ctx, "DELETE FROM cache WHERE key = ?", key)
	return err
}

// Close closes the underlying database
func (c *Client) Close() error {
	return c.db.Close()
}

// cleanupRoutine periodically removes expired entries
func (c *Client) cleanupRoutine() {
	ticker := time.NewTicker(cleanupInterval)
	defer ticker.Stop()

	for range ticker.C {
		_, _ = c.db.Exec("DELETE FROM cache WHERE expiry > 0 AND expiry < ?", time.Now().Unix())
	}
}
