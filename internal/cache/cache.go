// Package cache is a whole-file compile cache keyed by source content hash,
// backed by sqlite (modernc.org/sqlite, a pure-Go driver) through the
// standard sql.Open/db.Exec/db.Query idiom. It is pre-parse, whole-file
// caching: the CLI hashes a source file before invoking the pipeline and
// skips recompilation entirely on a hit. This is deliberately not the same
// thing as an incremental reparse — there is no partial re-lex or re-parse
// of a changed file, only a skip-or-don't-skip decision at file
// granularity.
package cache

import (
	"crypto/sha256"
	"database/sql"
	"encoding/hex"

	_ "modernc.org/sqlite"
)

const schema = `
CREATE TABLE IF NOT EXISTS compiled (
	hash       TEXT PRIMARY KEY,
	output     TEXT NOT NULL,
	created_at INTEGER NOT NULL
)`

// Cache is a single sqlite-backed store. It is safe for concurrent use
// because database/sql pools connections internally; SrcLang compiles are
// synchronous in the current design, so nothing in this package assumes
// otherwise.
type Cache struct {
	db *sql.DB
}

// Open opens (creating if necessary) a cache database at path and ensures
// its schema exists.
func Open(path string) (*Cache, error) {
	db, err := sql.Open("sqlite", path)
	if err != nil {
		return nil, err
	}
	if err := db.Ping(); err != nil {
		_ = db.Close()
		return nil, err
	}
	if _, err := db.Exec(schema); err != nil {
		_ = db.Close()
		return nil, err
	}
	return &Cache{db: db}, nil
}

// Close releases the underlying database handle.
func (c *Cache) Close() error {
	return c.db.Close()
}

// Hash returns the content-hash cache key for source.
func Hash(source string) string {
	sum := sha256.Sum256([]byte(source))
	return hex.EncodeToString(sum[:])
}

// Lookup returns the cached output for hash, if any.
func (c *Cache) Lookup(hash string) (output string, hit bool, err error) {
	row := c.db.QueryRow(`SELECT output FROM compiled WHERE hash = ?`, hash)
	if err := row.Scan(&output); err != nil {
		if err == sql.ErrNoRows {
			return "", false, nil
		}
		return "", false, err
	}
	return output, true, nil
}

// Store records output under hash, overwriting any prior entry.
func (c *Cache) Store(hash, output string, createdAtUnix int64) error {
	_, err := c.db.Exec(
		`INSERT INTO compiled (hash, output, created_at) VALUES (?, ?, ?)
		 ON CONFLICT(hash) DO UPDATE SET output = excluded.output, created_at = excluded.created_at`,
		hash, output, createdAtUnix,
	)
	return err
}
