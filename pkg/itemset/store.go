package itemset

import (
	"context"
	"crypto/md5"
	"database/sql"
	_ "embed"
	"encoding/csv"
	"encoding/hex"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"path"
	"strings"

	_ "modernc.org/sqlite"
)

// FileName is the itemset table bundled in a form's media folder.
const FileName = "itemsets.csv"

const (
	columnListName    = "list_name"
	columnName        = "name"
	columnLabel       = "label"
	labelColumnPrefix = "label::"
)

var (
	// ErrNotFound is returned when no label exists for a code.
	ErrNotFound = errors.New("itemset: label not found")
	// ErrMissingColumn is returned when an itemsets file lacks a name or label
	// column.
	ErrMissingColumn = errors.New("itemset: missing column")
)

//go:embed schema.sql
var schemaSQL string

// Lookup resolves an item code to its display label.
type Lookup interface {
	ItemLabel(code, mediaFolder, language string) string
}

// LookupFunc adapts a function to Lookup.
type LookupFunc func(code, mediaFolder, language string) string

// ItemLabel calls fn.
func (fn LookupFunc) ItemLabel(code, mediaFolder, language string) string {
	return fn(code, mediaFolder, language)
}

// Store persists itemset tables in SQLite.
type Store struct {
	sqlDB *sql.DB
}

// Open opens the itemset database at dsn (":memory:" for a private in-memory
// store) and applies the schema.
func Open(dsn string) (*Store, error) {
	dsn = strings.TrimSpace(dsn)
	if dsn == "" {
		return nil, fmt.Errorf("itemset: dsn is required")
	}
	sqlDB, err := sql.Open("sqlite", dsn)
	if err != nil {
		return nil, fmt.Errorf("itemset: open sqlite db: %w", err)
	}
	// A single connection keeps ":memory:" databases shared across calls.
	sqlDB.SetMaxOpenConns(1)
	if err := sqlDB.Ping(); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("itemset: ping sqlite db: %w", err)
	}
	if _, err := sqlDB.Exec(schemaSQL); err != nil {
		_ = sqlDB.Close()
		return nil, fmt.Errorf("itemset: apply schema: %w", err)
	}
	return &Store{sqlDB: sqlDB}, nil
}

// Close closes the SQLite handle.
func (s *Store) Close() error {
	if s == nil || s.sqlDB == nil {
		return nil
	}
	return s.sqlDB.Close()
}

// PathHash returns the table key for a media folder.
func PathHash(mediaFolder string) string {
	sum := md5.Sum([]byte(path.Join(mediaFolder, FileName)))
	return hex.EncodeToString(sum[:])
}

type labelColumn struct {
	index    int
	language string
}

// Import replaces the itemset table for mediaFolder with the CSV read from r.
// The header must contain `name` and at least one `label` or `label::<lang>`
// column; `list_name` is optional. It returns the number of items imported.
func (s *Store) Import(ctx context.Context, mediaFolder string, r io.Reader) (int, error) {
	if err := ctx.Err(); err != nil {
		return 0, err
	}
	if s == nil || s.sqlDB == nil {
		return 0, fmt.Errorf("itemset: store is not configured")
	}

	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1
	header, err := reader.Read()
	if err != nil {
		return 0, fmt.Errorf("itemset: read header: %w", err)
	}

	nameIdx, listIdx := -1, -1
	var labels []labelColumn
	for i, raw := range header {
		col := strings.TrimSpace(strings.TrimPrefix(raw, "\ufeff"))
		switch {
		case col == columnName:
			nameIdx = i
		case col == columnListName:
			listIdx = i
		case col == columnLabel:
			labels = append(labels, labelColumn{index: i})
		case strings.HasPrefix(col, labelColumnPrefix):
			labels = append(labels, labelColumn{index: i, language: strings.TrimPrefix(col, labelColumnPrefix)})
		}
	}
	if nameIdx < 0 {
		return 0, fmt.Errorf("%w: %s", ErrMissingColumn, columnName)
	}
	if len(labels) == 0 {
		return 0, fmt.Errorf("%w: %s", ErrMissingColumn, columnLabel)
	}

	hash := PathHash(mediaFolder)
	tx, err := s.sqlDB.BeginTx(ctx, nil)
	if err != nil {
		return 0, fmt.Errorf("itemset: begin import: %w", err)
	}
	defer func() { _ = tx.Rollback() }()

	if _, err := tx.ExecContext(ctx, `DELETE FROM itemsets WHERE path_hash = ?`, hash); err != nil {
		return 0, fmt.Errorf("itemset: clear table: %w", err)
	}
	stmt, err := tx.PrepareContext(ctx,
		`INSERT OR REPLACE INTO itemsets (path_hash, list_name, name, language, label) VALUES (?, ?, ?, ?, ?)`)
	if err != nil {
		return 0, fmt.Errorf("itemset: prepare insert: %w", err)
	}
	defer stmt.Close()

	count := 0
	for {
		record, err := reader.Read()
		if errors.Is(err, io.EOF) {
			break
		}
		if err != nil {
			return 0, fmt.Errorf("itemset: read row: %w", err)
		}
		name := field(record, nameIdx)
		if name == "" {
			continue
		}
		list := field(record, listIdx)
		for _, col := range labels {
			if col.index >= len(record) {
				continue
			}
			if col.language != "" && strings.TrimSpace(record[col.index]) == "" {
				continue
			}
			if _, err := stmt.ExecContext(ctx, hash, list, name, col.language, record[col.index]); err != nil {
				return 0, fmt.Errorf("itemset: insert %q: %w", name, err)
			}
		}
		count++
	}

	if err := tx.Commit(); err != nil {
		return 0, fmt.Errorf("itemset: commit import: %w", err)
	}
	return count, nil
}

// Label returns the label of code in mediaFolder's table, preferring the
// column for language and falling back to the default `label` column. Empty
// language cells are not stored, so they fall back too.
func (s *Store) Label(ctx context.Context, code, mediaFolder, language string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}
	if s == nil || s.sqlDB == nil {
		return "", fmt.Errorf("itemset: store is not configured")
	}

	var label string
	err := s.sqlDB.QueryRowContext(ctx,
		`SELECT label FROM itemsets
		 WHERE path_hash = ? AND name = ? AND language IN (?, '')
		 ORDER BY CASE WHEN language = ? THEN 0 ELSE 1 END
		 LIMIT 1`,
		PathHash(mediaFolder), code, language, language,
	).Scan(&label)
	if errors.Is(err, sql.ErrNoRows) {
		return "", ErrNotFound
	}
	if err != nil {
		return "", fmt.Errorf("itemset: query label: %w", err)
	}
	return label, nil
}

// Lookup adapts the store to the synchronous Lookup contract. Misses and
// query failures render the code itself; failures are logged.
func (s *Store) Lookup(logger *slog.Logger) LookupFunc {
	if logger == nil {
		logger = slog.Default()
	}
	return func(code, mediaFolder, language string) string {
		label, err := s.Label(context.Background(), code, mediaFolder, language)
		if err == nil {
			return label
		}
		if !errors.Is(err, ErrNotFound) {
			logger.Warn("itemset: lookup label",
				slog.String("code", code),
				slog.String("media_folder", mediaFolder),
				slog.Any("error", err),
			)
		}
		return code
	}
}

func field(record []string, idx int) string {
	if idx < 0 || idx >= len(record) {
		return ""
	}
	return strings.TrimSpace(record[idx])
}
