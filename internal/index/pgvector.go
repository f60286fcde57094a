package index

import (
	"context"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"strings"
	"sync"
	"time"

	"github.com/jmoiron/sqlx"
	_ "github.com/lib/pq"
	"github.com/pgvector/pgvector-go"
)

// PgIndex is a pgvector-backed index. It exists for deployments where the
// listing set should survive restarts; contents are replaced wholesale on
// Build, with rebuilds serialized by a writer lock.
type PgIndex struct {
	db       *sqlx.DB
	embedder Embedder
	dims     int

	buildMu sync.Mutex
}

// NewPgIndex connects to PostgreSQL and prepares the index table.
func NewPgIndex(dsn string, maxConn, maxIdleConn, dims int, embedder Embedder) (*PgIndex, error) {
	// Disable prepared statement caching to avoid "unnamed prepared statement
	// does not exist" errors behind connection poolers
	if !strings.Contains(dsn, "?") {
		dsn += "?prefer_simple_protocol=true"
	} else {
		dsn += "&prefer_simple_protocol=true"
	}

	db, err := sqlx.Connect("postgres", dsn)
	if err != nil {
		return nil, fmt.Errorf("failed to connect to database: %w", err)
	}

	db.SetMaxOpenConns(maxConn)
	db.SetMaxIdleConns(maxIdleConn)
	db.SetConnMaxLifetime(5 * time.Minute)

	if err := db.Ping(); err != nil {
		return nil, fmt.Errorf("failed to ping database: %w", err)
	}

	p := &PgIndex{db: db, embedder: embedder, dims: dims}
	if err := p.ensureSchema(context.Background()); err != nil {
		return nil, err
	}
	return p, nil
}

// Close closes the database connection.
func (p *PgIndex) Close() error {
	return p.db.Close()
}

func (p *PgIndex) ensureSchema(ctx context.Context) error {
	schema := fmt.Sprintf(`
		CREATE EXTENSION IF NOT EXISTS vector;
		CREATE TABLE IF NOT EXISTS listing_index (
			id        TEXT PRIMARY KEY,
			text      TEXT NOT NULL,
			metadata  JSONB,
			embedding vector(%d),
			updated_at TIMESTAMPTZ NOT NULL DEFAULT NOW()
		)
	`, p.dims)
	if _, err := p.db.ExecContext(ctx, schema); err != nil {
		return fmt.Errorf("failed to ensure index schema: %w", err)
	}
	return nil
}

// Build replaces the index contents with the given entries.
func (p *PgIndex) Build(ctx context.Context, entries []Entry) error {
	if len(entries) == 0 {
		return fmt.Errorf("no entries to index")
	}

	p.buildMu.Lock()
	defer p.buildMu.Unlock()

	texts := make([]string, len(entries))
	for i, e := range entries {
		texts[i] = e.Text
	}

	vectors, err := p.embedder.Embed(ctx, texts)
	if err != nil {
		return fmt.Errorf("failed to embed %d texts: %w", len(texts), err)
	}
	if len(vectors) != len(entries) {
		return fmt.Errorf("embedder returned %d vectors for %d texts", len(vectors), len(entries))
	}

	tx, err := p.db.BeginTxx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to start transaction: %w", err)
	}
	defer tx.Rollback()

	if _, err := tx.ExecContext(ctx, `TRUNCATE listing_index`); err != nil {
		return fmt.Errorf("failed to truncate index: %w", err)
	}

	stmt, err := tx.PreparexContext(ctx,
		`INSERT INTO listing_index (id, text, metadata, embedding) VALUES ($1, $2, $3, $4)`)
	if err != nil {
		return fmt.Errorf("failed to prepare insert: %w", err)
	}
	defer stmt.Close()

	for i, e := range entries {
		vec := pgvector.NewVector(vectors[i])
		if _, err := stmt.ExecContext(ctx, e.ID, e.Text, jsonMap(e.Metadata), vec); err != nil {
			return fmt.Errorf("failed to insert entry %s: %w", e.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit index build: %w", err)
	}
	return nil
}

// Search embeds the query and returns the k nearest entries by cosine
// distance, most similar first.
func (p *PgIndex) Search(ctx context.Context, query string, k int) ([]Hit, error) {
	if k <= 0 {
		return nil, nil
	}

	var count int
	if err := p.db.GetContext(ctx, &count, `SELECT COUNT(*) FROM listing_index`); err != nil {
		return nil, fmt.Errorf("failed to check index: %w", err)
	}
	if count == 0 {
		return nil, ErrIndexNotBuilt
	}

	qvecs, err := p.embedder.Embed(ctx, []string{query})
	if err != nil {
		return nil, fmt.Errorf("failed to embed query: %w", err)
	}
	if len(qvecs) != 1 {
		return nil, fmt.Errorf("embedder returned %d vectors for one query", len(qvecs))
	}
	qvec := pgvector.NewVector(qvecs[0])

	rows := []struct {
		ID       string  `db:"id"`
		Text     string  `db:"text"`
		Metadata jsonMap `db:"metadata"`
		Score    float64 `db:"score"`
	}{}
	err = p.db.SelectContext(ctx, &rows, `
		SELECT id, text, metadata, 1 - (embedding <=> $1) AS score
		FROM listing_index
		ORDER BY embedding <=> $1
		LIMIT $2
	`, qvec, k)
	if err != nil {
		return nil, fmt.Errorf("failed to search index: %w", err)
	}

	hits := make([]Hit, 0, len(rows))
	for _, r := range rows {
		hits = append(hits, Hit{ID: r.ID, Text: r.Text, Metadata: r.Metadata, Score: r.Score})
	}
	return hits, nil
}

// jsonMap stores entry metadata as a JSONB column.
type jsonMap map[string]string

// Value implements driver.Valuer
func (j jsonMap) Value() (driver.Value, error) {
	if j == nil {
		return nil, nil
	}
	return json.Marshal(j)
}

// Scan implements sql.Scanner
func (j *jsonMap) Scan(value interface{}) error {
	if value == nil {
		*j = nil
		return nil
	}
	bytes, ok := value.([]byte)
	if !ok {
		return json.Unmarshal([]byte(value.(string)), j)
	}
	return json.Unmarshal(bytes, j)
}
