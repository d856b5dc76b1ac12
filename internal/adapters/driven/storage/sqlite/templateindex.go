package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
)

// templateIndex implements driven.TemplateIndex.
type templateIndex struct {
	store *Store
}

var _ driven.TemplateIndex = (*templateIndex)(nil)

const templateColumns = `name, title, category, description, complexity,
	html_path, css_files, js_files, components, utility_classes,
	has_rtl_variant, rtl_template_name, is_rtl, html_content, url`

// Rebuild replaces the templates collection inside one transaction.
func (i *templateIndex) Rebuild(ctx context.Context, records []domain.TemplateRecord) error {
	records = dedupeTemplates(records)

	tx, err := i.store.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("beginning rebuild: %w", err)
	}
	defer tx.Rollback() //nolint:errcheck

	for _, table := range []string{"templates_fts", "template_metadata"} {
		if _, err := tx.ExecContext(ctx, "DELETE FROM "+table); err != nil {
			return fmt.Errorf("clearing %s: %w", table, err)
		}
	}

	for _, rec := range records {
		if err := insertTemplate(ctx, tx, rec); err != nil {
			return fmt.Errorf("indexing template %s: %w", rec.Name, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("committing rebuild: %w", err)
	}
	return nil
}

func dedupeTemplates(records []domain.TemplateRecord) []domain.TemplateRecord {
	byName := make(map[string]int, len(records))
	out := make([]domain.TemplateRecord, 0, len(records))
	for _, rec := range records {
		if idx, seen := byName[rec.Name]; seen {
			out[idx] = rec
			continue
		}
		byName[rec.Name] = len(out)
		out = append(out, rec)
	}
	return out
}

func insertTemplate(ctx context.Context, tx *sql.Tx, rec domain.TemplateRecord) error {
	cssFiles, err := json.Marshal(rec.CSSFiles)
	if err != nil {
		return fmt.Errorf("marshalling css files: %w", err)
	}
	jsFiles, err := json.Marshal(rec.JSFiles)
	if err != nil {
		return fmt.Errorf("marshalling js files: %w", err)
	}
	components, err := json.Marshal(rec.Components)
	if err != nil {
		return fmt.Errorf("marshalling components: %w", err)
	}
	utilities, err := json.Marshal(rec.UtilityClasses)
	if err != nil {
		return fmt.Errorf("marshalling utility classes: %w", err)
	}

	res, err := tx.ExecContext(ctx, `
		INSERT INTO template_metadata
			(name, title, category, description, complexity, html_path,
			 css_files, js_files, components, utility_classes,
			 has_rtl_variant, rtl_template_name, is_rtl, html_content, url)
		VALUES (?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?, ?)
	`, rec.Name, rec.Title, string(rec.Category), rec.Description,
		string(rec.Complexity), rec.HTMLPath, string(cssFiles), string(jsFiles),
		string(components), string(utilities), rec.HasRTLVariant,
		rec.RTLTemplateName, rec.IsRTL, rec.HTMLContent, rec.URL)
	if err != nil {
		return fmt.Errorf("inserting metadata: %w", err)
	}

	id, err := res.LastInsertId()
	if err != nil {
		return fmt.Errorf("reading insert id: %w", err)
	}

	_, err = tx.ExecContext(ctx, `
		INSERT INTO templates_fts (rowid, name, title, description, category, components)
		VALUES (?, ?, ?, ?, ?, ?)
	`, id, rec.Name, rec.Title, rec.Description, string(rec.Category),
		strings.Join(rec.Components, " "))
	if err != nil {
		return fmt.Errorf("inserting full-text row: %w", err)
	}

	return nil
}

// Search runs ranked FTS5 search with an optional category filter.
// Query degradation mirrors the documents collection.
func (i *templateIndex) Search(ctx context.Context, query string, category domain.Category, limit int) ([]domain.TemplateResult, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return []domain.TemplateResult{}, nil
	}

	results, err := i.search(ctx, query, category, limit)
	if err != nil {
		safe := SafeMatchQuery(query)
		if safe == "" {
			return []domain.TemplateResult{}, nil
		}
		if results, err = i.search(ctx, safe, category, limit); err != nil {
			return nil, fmt.Errorf("searching templates: %w", err)
		}
	}
	return results, nil
}

func (i *templateIndex) search(ctx context.Context, match string, category domain.Category, limit int) ([]domain.TemplateResult, error) {
	query := `
		SELECT m.name, m.title, m.category, m.description, m.complexity,
		       m.html_path, m.css_files, m.js_files, m.components,
		       m.utility_classes, m.has_rtl_variant, m.rtl_template_name,
		       m.is_rtl, m.html_content, m.url,
		       snippet(templates_fts, 2, '<mark>', '</mark>', '...', 64),
		       bm25(templates_fts)
		FROM templates_fts fts
		JOIN template_metadata m ON m.id = fts.rowid
		WHERE templates_fts MATCH ?`
	args := []any{match}

	if category != "" {
		query += " AND m.category = ?"
		args = append(args, string(category))
	}
	query += `
		ORDER BY bm25(templates_fts), m.name
		LIMIT ?`
	args = append(args, limit)

	rows, err := i.store.db.QueryContext(ctx, query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	var results []domain.TemplateResult
	for rows.Next() {
		var (
			rec     domain.TemplateRecord
			snippet string
			rank    float64
		)
		if err := scanTemplate(rows, &rec, &snippet, &rank); err != nil {
			return nil, err
		}
		results = append(results, domain.TemplateResult{
			Record:  rec,
			Score:   math.Abs(rank),
			Snippet: snippet,
		})
	}
	if results == nil {
		results = []domain.TemplateResult{}
	}
	return results, rows.Err()
}

// GetByName matches the template name exactly.
func (i *templateIndex) GetByName(ctx context.Context, name string) (*domain.TemplateRecord, error) {
	row := i.store.db.QueryRowContext(ctx, `
		SELECT `+templateColumns+`
		FROM template_metadata
		WHERE name = ?
		LIMIT 1
	`, name)

	var rec domain.TemplateRecord
	err := scanTemplate(row, &rec, nil, nil)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, domain.ErrNotFound
	}
	if err != nil {
		return nil, fmt.Errorf("loading template: %w", err)
	}
	return &rec, nil
}

// ListCategories returns category counts and members.
func (i *templateIndex) ListCategories(ctx context.Context) ([]domain.CategorySummary, error) {
	rows, err := i.store.db.QueryContext(ctx, `
		SELECT category, COUNT(*), GROUP_CONCAT(name, ',')
		FROM template_metadata
		GROUP BY category
		ORDER BY category
	`)
	if err != nil {
		return nil, fmt.Errorf("listing categories: %w", err)
	}
	defer rows.Close()

	var summaries []domain.CategorySummary
	for rows.Next() {
		var (
			s       domain.CategorySummary
			members string
		)
		if err := rows.Scan(&s.Category, &s.Count, &members); err != nil {
			return nil, fmt.Errorf("scanning category: %w", err)
		}
		if members != "" {
			s.Templates = strings.Split(members, ",")
			sort.Strings(s.Templates)
		} else {
			s.Templates = []string{}
		}
		summaries = append(summaries, s)
	}
	if summaries == nil {
		summaries = []domain.CategorySummary{}
	}
	return summaries, rows.Err()
}

// All returns every record ordered by name.
func (i *templateIndex) All(ctx context.Context) ([]domain.TemplateRecord, error) {
	rows, err := i.store.db.QueryContext(ctx, `
		SELECT `+templateColumns+`
		FROM template_metadata
		ORDER BY name
	`)
	if err != nil {
		return nil, fmt.Errorf("querying templates: %w", err)
	}
	defer rows.Close()

	var records []domain.TemplateRecord
	for rows.Next() {
		var rec domain.TemplateRecord
		if err := scanTemplate(rows, &rec, nil, nil); err != nil {
			return nil, err
		}
		records = append(records, rec)
	}
	if records == nil {
		records = []domain.TemplateRecord{}
	}
	return records, rows.Err()
}

// Count returns the number of indexed templates.
func (i *templateIndex) Count(ctx context.Context) (int, error) {
	var n int
	err := i.store.db.QueryRowContext(ctx, "SELECT COUNT(*) FROM template_metadata").Scan(&n)
	if err != nil {
		return 0, fmt.Errorf("counting templates: %w", err)
	}
	return n, nil
}

func scanTemplate(s scanner, rec *domain.TemplateRecord, snippet *string, rank *float64) error {
	var cssFiles, jsFiles, components, utilities string
	dest := []any{
		&rec.Name, &rec.Title, &rec.Category, &rec.Description,
		&rec.Complexity, &rec.HTMLPath, &cssFiles, &jsFiles, &components,
		&utilities, &rec.HasRTLVariant, &rec.RTLTemplateName, &rec.IsRTL,
		&rec.HTMLContent, &rec.URL,
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

	if err := json.Unmarshal([]byte(cssFiles), &rec.CSSFiles); err != nil {
		return fmt.Errorf("unmarshalling css files: %w", err)
	}
	if err := json.Unmarshal([]byte(jsFiles), &rec.JSFiles); err != nil {
		return fmt.Errorf("unmarshalling js files: %w", err)
	}
	if err := json.Unmarshal([]byte(components), &rec.Components); err != nil {
		return fmt.Errorf("unmarshalling components: %w", err)
	}
	if err := json.Unmarshal([]byte(utilities), &rec.UtilityClasses); err != nil {
		return fmt.Errorf("unmarshalling utility classes: %w", err)
	}
	return nil
}
