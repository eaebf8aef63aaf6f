package main

import (
	"database/sql"
	"encoding/json"
	"time"

	_ "github.com/mattn/go-sqlite3"
)

// searchCache persists catalog search responses so repeated runs over a
// large library don't hammer the search service; library scans are
// quite slow otherwise. Entries expire after maxAge. A nil cache is a
// no-op, which keeps the engine testable without a database.
type searchCache struct {
	db *sql.DB
}

func openSearchCache(dbPath Path) (*searchCache, error) {
	db, err := sql.Open("sqlite3", string(dbPath))
	if err != nil {
		return nil, err
	}

	_, err = db.Exec(`CREATE TABLE IF NOT EXISTS searchResults (
		query TEXT NOT NULL COLLATE NOCASE PRIMARY KEY,
		response TEXT NOT NULL,
		fetchedAt INTEGER NOT NULL
	);`)
	if err != nil {
		db.Close()
		return nil, err
	}

	return &searchCache{db: db}, nil
}

func (c *searchCache) get(key string, maxAge time.Duration) ([]Candidate, bool) {
	if c == nil {
		return nil, false
	}

	var response string
	var fetchedAt int64
	err := c.db.QueryRow("SELECT response, fetchedAt FROM searchResults WHERE query = ?", key).
		Scan(&response, &fetchedAt)
	if err != nil {
		return nil, false
	}
	if time.Since(time.Unix(fetchedAt, 0)) > maxAge {
		return nil, false
	}

	var candidates []Candidate
	if err := json.Unmarshal([]byte(response), &candidates); err != nil {
		return nil, false
	}
	return candidates, true
}

func (c *searchCache) put(key string, candidates []Candidate) {
	if c == nil {
		return
	}

	response, err := json.Marshal(candidates)
	if err != nil {
		return
	}
	_, err = c.db.Exec("INSERT OR REPLACE INTO searchResults (query, response, fetchedAt) VALUES (?, ?, ?)",
		key, string(response), time.Now().Unix())
	if err != nil {
		Warn("could not write search cache:", err)
	}
}

func (c *searchCache) Close() error {
	if c == nil {
		return nil
	}
	return c.db.Close()
}
