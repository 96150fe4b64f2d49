package content

import (
	"context"
	"database/sql"
	"encoding/json"
	"path/filepath"
	"strings"

	_ "modernc.org/sqlite" // registers the "sqlite" driver

	"github.com/KirkDiggler/ddb-importer/internal/compendium"
	"github.com/KirkDiggler/ddb-importer/internal/entities/vtt"
	"github.com/KirkDiggler/ddb-importer/internal/errors"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/clock"
	"github.com/KirkDiggler/ddb-importer/internal/pkg/idgen"
	"github.com/KirkDiggler/ddb-importer/internal/repositories/content/migrations"
	"github.com/KirkDiggler/ddb-importer/internal/storage/sqlitemigrate"
)

// SQLiteConfig contains configuration for the file-backed custom store
type SQLiteConfig struct {
	Path        string
	StoreID     string
	Label       string
	IDGenerator idgen.Generator
	Clock       clock.Clock
}

// Validate validates the SQLiteConfig
func (cfg *SQLiteConfig) Validate() error {
	if cfg == nil {
		return errors.InvalidArgument("config cannot be nil")
	}
	vb := errors.NewValidationBuilder()
	if strings.TrimSpace(cfg.Path) == "" {
		vb.RequiredField("Path")
	}
	return vb.Build()
}

// SQLiteStore is a custom store in a single SQLite file
type SQLiteStore struct {
	db    *sql.DB
	id    string
	label string
	ids   idgen.Generator
	clock clock.Clock
}

// OpenSQLite opens the database at cfg.Path, applies the bundled migrations
// and registers the store.
func OpenSQLite(ctx context.Context, cfg *SQLiteConfig) (*SQLiteStore, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	dsn := filepath.Clean(cfg.Path) + "?_pragma=busy_timeout(5000)&_pragma=foreign_keys(1)&_pragma=journal_mode(WAL)"
	db, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, errors.Wrap(err, "failed to open sqlite db")
	}
	if err := db.PingContext(ctx); err != nil {
		_ = db.Close()
		return nil, errors.WrapWithCode(err, errors.CodeUnavailable, "failed to ping sqlite db")
	}

	s := &SQLiteStore{
		db:    db,
		id:    storeIDOrDefault(cfg.StoreID),
		label: labelOrDefault(cfg.Label),
		ids:   cfg.IDGenerator,
		clock: cfg.Clock,
	}
	if s.ids == nil {
		s.ids = idgen.NewUUID(idPrefix)
	}
	if s.clock == nil {
		s.clock = clock.New()
	}

	if err := sqlitemigrate.Apply(ctx, db, migrations.FS, ".", s.clock); err != nil {
		_ = db.Close()
		return nil, errors.Wrap(err, "failed to migrate sqlite db")
	}

	if _, err := db.ExecContext(ctx,
		`INSERT OR IGNORE INTO compendium_stores (id, label, created_at) VALUES (?, ?, ?)`,
		s.id, s.label, s.clock.Now().UTC().UnixMilli()); err != nil {
		_ = db.Close()
		return nil, errors.Wrapf(err, "failed to register store %s", s.id)
	}

	return s, nil
}

// Close closes the database
func (s *SQLiteStore) Close() error {
	return s.db.Close()
}

// ID returns the store id
func (s *SQLiteStore) ID() string {
	return s.id
}

// Label returns the store's display label
func (s *SQLiteStore) Label(ctx context.Context) (string, error) {
	var label string
	err := s.db.QueryRowContext(ctx, `SELECT label FROM compendium_stores WHERE id = ?`, s.id).Scan(&label)
	if err != nil {
		return "", errors.Wrapf(err, "failed to read label of store %s", s.id)
	}
	return label, nil
}

// Index lists entries in insertion order
func (s *SQLiteStore) Index(ctx context.Context) ([]compendium.IndexEntry, error) {
	rows, err := s.db.QueryContext(ctx,
		`SELECT id, name, type FROM compendium_documents WHERE store_id = ? ORDER BY seq`, s.id)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to list store %s", s.id)
	}
	defer func() { _ = rows.Close() }()

	entries := []compendium.IndexEntry{}
	for rows.Next() {
		var entry compendium.IndexEntry
		var docType string
		if err := rows.Scan(&entry.ID, &entry.Name, &docType); err != nil {
			return nil, errors.Wrap(err, "failed to scan index entry")
		}
		entry.Type = vtt.DocumentType(docType)
		entries = append(entries, entry)
	}
	if err := rows.Err(); err != nil {
		return nil, errors.Wrapf(err, "failed to list store %s", s.id)
	}
	return entries, nil
}

// Document loads one document
func (s *SQLiteStore) Document(ctx context.Context, id string) (*vtt.Document, error) {
	if id == "" {
		return nil, errors.InvalidArgument(errIDEmpty)
	}

	var body string
	err := s.db.QueryRowContext(ctx,
		`SELECT body FROM compendium_documents WHERE store_id = ? AND id = ?`, s.id, id).Scan(&body)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, errors.NotFoundf("document %s not found in store %s", id, s.id)
		}
		return nil, errors.Wrapf(err, "failed to get document %s", id)
	}

	var doc vtt.Document
	if err := json.Unmarshal([]byte(body), &doc); err != nil {
		return nil, errors.Wrapf(err, "failed to unmarshal document %s", id)
	}
	return &doc, nil
}

// Create stores a copy of doc under a new id
func (s *SQLiteStore) Create(ctx context.Context, doc *vtt.Document) (*vtt.Document, error) {
	if err := validateDocument(doc); err != nil {
		return nil, err
	}

	stored := doc.Clone()
	stored.ID = s.ids.Generate()
	stored.Flags = vtt.DocumentFlags{}

	body, err := json.Marshal(stored)
	if err != nil {
		return nil, errors.Wrap(err, "failed to marshal document")
	}

	if _, err := s.db.ExecContext(ctx,
		`INSERT INTO compendium_documents (store_id, id, name, type, body, created_at) VALUES (?, ?, ?, ?, ?, ?)`,
		s.id, stored.ID, stored.Name, string(stored.Type), string(body), s.clock.Now().UTC().UnixMilli()); err != nil {
		return nil, errors.Wrapf(err, "failed to create document %s", stored.Name)
	}

	return stored, nil
}
