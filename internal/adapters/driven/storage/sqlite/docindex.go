package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"strings"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
)

// documentIndex implements driven.DocumentIndex.
type documentIndex struct {
	store *Store
}

var _ driven.DocumentIndex = (*documentIndex)(nil)

const docColumns = `filepath, title, description, section, component_name,
	utility_classes, code_examples, aliases, toc, content, url`

// Rebuild replaces the documents collection inside one transaction.
// Duplicate filepaths in the input overwrite earlier entries rather
// than duplicating them.
func (i *documentIndex) Rebuild(ctx context.Context, records []domain.DocumentRecord) error {
	records = dedupeDocs(records)

	tx, err := i.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning rebuild: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, table := range []string{"doc_aliases", "doc_utilities", "docs_fts", "doc_metadata"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, rec := range records {
		if err := insertDoc(ctx, tx, rec); err != nil {
			return fmt.Errorf("indexing %s: %w", rec.Filepath, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rebuild: %w", err)
	}
	return nil
}

func dedupeDocs(records []domain.DocumentRecord) []domain.DocumentRecord {
	byPath := make(map[string]int, len(records))
	out := make([]domain.DocumentRecord, 0, len(records))
	for _, rec := range records {
		if idx, seen := byPath[rec.Filepath]; seen {
			out[idx] = rec
			continue
		}
		byPath[rec.Filepath] = len(out)
		out = append(out, rec)
	}
	return out
}

func insertDoc(ctx context.Context, tx *sql.Tx, rec domain.DocumentRecord) error {
	utilities, err := json.Marshal(rec.UtilityClasses)
	if err != nil {
		return fmt.Errorf("marshalling utility classes: %w", err)
	}
	examples, err := json.Marshal(rec.CodeExamples)
	if err != nil {
		return fmt.Errorf("marshalling code examples: %w", err)
	}
	aliases, err := json.Marshal(rec.Aliases)
	if err != nil {
		return fmt.Errorf("marshalling aliases: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO doc_metadata
			(filepath, slug, title, description, section, component_name,
			 utility_classes, code_examples, aliases, toc, content, url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.Filepath, strings.ToLower(rec.Slug()), rec.Title, rec.Description,
		rec.Section, rec.ComponentName, string(utilities), string(examples),
		string(aliases), rec.TOC, rec.Content, rec.URL)
	if err != nil {
		return fmt.Errorf("inserting metadata: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading insert id: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO docs_fts (rowid, title, description, content, section, component_name)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, rec.Title, rec.Description, rec.Content, rec.Section, rec.ComponentName)
	if err != nil {
		return fmt.Errorf("inserting full-text row: %w", err)
	}

	for _, class := range rec.UtilityClasses {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO doc_utilities (doc_id, class) VALUES (?, ?)", id, class); err != nil {
			return fmt.Errorf("inserting utility class: %w", err)
		}
	}
	for _, alias := range rec.Aliases {
		if _, err := tx.ExecContext(ctx,
			"INSERT OR IGNORE INTO doc_aliases (doc_id, alias) VALUES (?, ?)", id, strings.ToLower(alias)); err != nil {
			return fmt.Errorf("inserting alias: %w", err)
		}
	}

	return nil
}

// Search runs ranked FTS5 search. A query the FTS parser rejects is
// retried as a literal-token match rather than surfaced as an error.
func (i *documentIndex) Search(ctx context.Context, query string, limit int) ([]domain.DocumentResult, error) {
	return i.searchFiltered(ctx, query, limit, "")
}

// SearchExamples restricts ranked search to example-bearing documents.
func (i *documentIndex) SearchExamples(ctx context.Context, query string, limit int) ([]domain.DocumentResult, error) {
	return i.searchFiltered(ctx, query, limit, "AND m.code_examples NOT IN ('[]', 'null')")
}

func (i *documentIndex) searchFiltered(ctx context.Context, query string, limit int, filter string) ([]domain.DocumentResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.DocumentResult{}, nil
	}

	results, err := i.search(ctx, query, limit, filter)
	if err != nil {
		safe := SafeMatchQuery(query)
		if safe == "" {
			return []domain.DocumentResult{}, nil
		}
		if results, err = i.search(ctx, safe, limit, filter); err != nil {
			return nil, fmt.Errorf("searching documents: %w", err)
		}
	}
	return results, nil
}

func (i *documentIndex) search(ctx context.Context, match string, limit int, filter string) ([]domain.DocumentResult, error) {
	rows, err := i.store.db.QueryContext(ctx, `
		SELECT m.filepath, m.title, m.description, m.section, m.component_name,
		       m.utility_classes, m.code_examples, m.aliases, m.toc, m.content, m.url,
		       snippet(docs_fts, 2, '<mark>', '</mark>', '...', 64),
		       bm25(docs_fts)
		FROM docs_fts fts
		JOIN doc_metadata m ON m.id = fts.rowid
		WHERE docs_fts MATCH ? `+filter+`
		ORDER BY bm25(docs_fts), m.filepath
		LIMIT ?
	`, match, limit)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.DocumentResult
	for rows.Next() {
		var (
			rec     domain.DocumentRecord
			snippet string
			rank    float64
		)
		if err := scanDoc(rows, &rec, &snippet, &rank); err != nil {
			return nil, err
		}
		results = append(results, domain.DocumentResult{
			Record:  rec,
			Score:   math.Abs(rank),
			Snippet: snippet,
		})
	}
	if results == nil {
		results = []domain.DocumentResult{}
	}
	return results, rows.Err()
}

// GetBySlug matches the filename stem or any alias, case-insensitively.
func (i *documentIndex) GetBySlug(ctx context.Context, slug string) (*domain.DocumentRecord, error) {
	slug = strings.ToLower(strings.TrimSpace(slug))
	if slug == "" {
		return nil, domain.ErrInvalidInput
	}

	row := i.store.db.QueryRowContext(ctx, `
		SELECT `+docColumns+`
		FROM doc_metadata
		WHERE slug = ?
		   OR id IN (SELECT doc_id FROM doc_aliases WHERE alias = ?)
		ORDER BY filepath
		LIMIT 1
	`, slug, slug)

	return oneDoc(row)
}

// GetByComponent matches component_name exactly.
func (i *documentIndex) GetByComponent(ctx context.Context, name string) (*domain.DocumentRecord, error) {
	row := i.store.db.QueryRowContext(ctx, `
		SELECT `+docColumns+`
		FROM doc_metadata
		WHERE component_name = ?
		ORDER BY filepath
		LIMIT 1
	`, name)

	return oneDoc(row)
}

// GetBySection returns all pages of a section ordered by title.
func (i *documentIndex) GetBySection(ctx context.Context, section string) ([]domain.DocumentRecord, error) {
	return i.queryDocs(ctx, `
		SELECT `+docColumns+`
		FROM doc_metadata
		WHERE section = ?
		ORDER BY title, filepath
	`, section)
}

// GetByUtilityClass requires exact set membership.
func (i *documentIndex) GetByUtilityClass(ctx context.Context, token string) ([]domain.DocumentRecord, error) {
	return i.queryDocs(ctx, `
		SELECT `+docColumns+`
		FROM doc_metadata
		WHERE id IN (SELECT doc_id FROM doc_utilities WHERE class = ?)
		ORDER BY filepath
	`, token)
}

// GetByUtilityPrefix matches any token in the prefix family.
func (i *documentIndex) GetByUtilityPrefix(ctx context.Context, prefix string) ([]domain.DocumentRecord, error) {
	// Strip LIKE metacharacters; utility tokens never contain them.
	prefix = strings.NewReplacer("%", "", "_", "").Replace(prefix)
	return i.queryDocs(ctx, `
		SELECT `+docColumns+`
		FROM doc_metadata
		WHERE id IN (SELECT doc_id FROM doc_utilities WHERE class LIKE ?)
		ORDER BY filepath
	`, prefix+"%")
}

// ListSections returns section names with counts.
func (i *documentIndex) ListSections(ctx context.Context) ([]domain.SectionSummary, error) {
	rows, err := i.store.db.QueryContext(ctx, `
		SELECT section, COUNT(*)
		FROM doc_metadata
		WHERE section != ''
		GROUP BY section
		ORDER BY section
	`)
	if err != nil {
		return nil, fmt.Errorf("listing sections: %w", err)
	}
	defer rows.Close()

	var sections []domain.SectionSummary
	for rows.Next() {
		var s domain.SectionSummary
		if err := rows.Scan(&s.Section, &s.Count); err != nil {
			return nil, fmt.Errorf("scanning section: %w", err)
		}
		sections = append(sections, s)
	}
	if sections == nil {
		sections = []domain.SectionSummary{}
	}
	return sections, rows.Err()
}

// All returns every record ordered by filepath.
func (i *documentIndex) All(ctx context.Context) ([]domain.DocumentRecord, error) {
	return i.queryDocs(ctx, `
		SELECT `+docColumns+`
		FROM doc_metadata
		ORDER BY filepath
	`)
}

// Count returns the number of indexed documents.
func (i *documentIndex) Count(ctx context.Context) (int, error) {
	var n int
	err := i.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM doc_metadata").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting documents: %w", err)
	}
	return n, nil
}

func (i *documentIndex) queryDocs(ctx context.Context, query string, args ...any) ([]domain.DocumentRecord, error) {
	rows, err := i.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, fmt.Errorf("querying documents: %w", err)
	}
	defer rows.Close()

	var records []domain.DocumentRecord
	for rows.Next() {
		var rec domain.DocumentRecord
		if err := scanDoc(rows, &rec, nil, nil); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if records == nil {
		records = []domain.DocumentRecord{}
	}
	return records, rows.Err()
}

// scanner covers both *sql.Row and *sql.Rows.
type scanner interface {
	Scan(dest ...any) error
}

func scanDoc(s scanner, rec *domain.DocumentRecord, snippet *string, rank *float64) error {
	var utilities, examples, aliases string
	dest := []any{
		&rec.Filepath, &rec.Title, &rec.Description, &rec.Section,
		&rec.ComponentName, &utilities, &examples, &aliases, &rec.TOC,
		&rec.Content, &rec.URL,
	}
	if snippet != nil {
		dest = append(dest, snippet)
	}
	if rank != nil {
		dest = append(dest, rank)
	}
	if err := s.Scan(dest...); err != nil {
		return err
	}

	if err := json.Unmarshal([]byte(utilities), &rec.UtilityClasses); err != nil {
		return fmt.Errorf("unmarshalling utility classes: %w", err)
	}
	if err := json.Unmarshal([]byte(examples), &rec.CodeExamples); err != nil {
		return fmt.Errorf("unmarshalling code examples: %w", err)
	}
	if err := json.Unmarshal([]byte(aliases), &rec.Aliases); err != nil {
		return fmt.Errorf("unmarshalling aliases: %w", err)
	}
	return nil
}

func oneDoc(row *sql.Row) (*domain.DocumentRecord, error) {
	var rec domain.DocumentRecord
	err := scanDoc(row, &rec, nil, nil)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading document: %w", err)
	}
	return &rec, nil
}
