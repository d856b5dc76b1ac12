package services

import (
	"context"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"
	"sync"

	"golang.org/x/sync/errgroup"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driving"
	docx "github.com/custodia-labs/bootdocs/internal/extract/docs"
	tmplx "github.com/custodia-labs/bootdocs/internal/extract/templates"
	"github.com/custodia-labs/bootdocs/internal/logger"
)

var _ driving.RefreshService = (*RefreshOrchestrator)(nil)

// extractWorkers bounds the parallel page extraction fan-out.
const extractWorkers = 8

// TemplatePage is the markup file that makes a directory a template.
const TemplatePage = "index.html"

// RefreshOrchestrator drives the sync-extract-rebuild pipeline. At most
// one refresh runs at a time; readers keep querying the previous
// collections until the rebuild commits.
type RefreshOrchestrator struct {
	syncer    driven.CorpusSyncer
	docs      driven.DocumentIndex
	templates driven.TemplateIndex
	catalog   driven.Catalog

	mu sync.Mutex
}

// NewRefreshOrchestrator creates a new refresh pipeline.
func NewRefreshOrchestrator(syncer driven.CorpusSyncer, docs driven.DocumentIndex, tmpl driven.TemplateIndex, catalog driven.Catalog) *RefreshOrchestrator {
	return &RefreshOrchestrator{
		syncer:    syncer,
		docs:      docs,
		templates: tmpl,
		catalog:   catalog,
	}
}

// Refresh synchronises the corpus and rebuilds both collections.
func (r *RefreshOrchestrator) Refresh(ctx context.Context) (*domain.RefreshResult, error) {
	if !r.mu.TryLock() {
		return nil, domain.ErrRebuildInProgress
	}
	defer r.mu.Unlock()

	logger.Section("Corpus Refresh")

	if err := r.syncer.Sync(ctx); err != nil {
		// The previous corpus and collections stay live.
		return nil, fmt.Errorf("%w: %v", domain.ErrSyncFailed, err)
	}

	result := &domain.RefreshResult{}

	docRecords, skipped, err := r.extractDocuments(ctx)
	if err != nil {
		return nil, err
	}
	result.FilesSkipped += skipped

	tmplRecords, skipped, err := r.extractTemplates(ctx)
	if err != nil {
		return nil, err
	}
	result.FilesSkipped += skipped

	if err := r.docs.Rebuild(ctx, docRecords); err != nil {
		return nil, fmt.Errorf("rebuild documents: %w", err)
	}
	if err := r.templates.Rebuild(ctx, tmplRecords); err != nil {
		return nil, fmt.Errorf("rebuild templates: %w", err)
	}
	result.DocumentsIndexed = len(docRecords)
	result.TemplatesIndexed = len(tmplRecords)

	logger.Info("Indexed %d documents, %d templates (%d files skipped)",
		result.DocumentsIndexed, result.TemplatesIndexed, result.FilesSkipped)
	return result, nil
}

// extractDocuments walks the docs subtree and extracts every page in
// parallel. A page that fails extraction is logged and skipped; the
// refresh carries on.
func (r *RefreshOrchestrator) extractDocuments(ctx context.Context) ([]domain.DocumentRecord, int, error) {
	root := r.syncer.DocsDir()

	var paths []string
	err := filepath.WalkDir(root, func(p string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() {
			return nil
		}
		rel, err := filepath.Rel(root, p)
		if err != nil {
			return err
		}
		rel = filepath.ToSlash(rel)
		if docx.Indexable(rel) {
			paths = append(paths, rel)
		}
		return nil
	})
	if err != nil {
		return nil, 0, fmt.Errorf("walk docs corpus: %w", err)
	}
	logger.Debug("Docs corpus: %d pages", len(paths))

	var (
		mu      sync.Mutex
		records []domain.DocumentRecord
		skipped int
	)
	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(extractWorkers)
	for _, rel := range paths {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			content, err := os.ReadFile(filepath.Join(root, filepath.FromSlash(rel)))
			if err != nil {
				return fmt.Errorf("read %s: %w", rel, err)
			}
			rec, err := docx.Extract(rel, content)
			if err != nil {
				logger.Warn("Skipping %s: %v", rel, err)
				mu.Lock()
				skipped++
				mu.Unlock()
				return nil
			}
			mu.Lock()
			records = append(records, *rec)
			mu.Unlock()
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, 0, err
	}

	sort.Slice(records, func(i, j int) bool { return records[i].Filepath < records[j].Filepath })
	return records, skipped, nil
}

// extractTemplates scans the examples subtree: each subdirectory with
// an index.html is one template. Asset-only directories are ignored.
func (r *RefreshOrchestrator) extractTemplates(ctx context.Context) ([]domain.TemplateRecord, int, error) {
	root := r.syncer.ExamplesDir()

	entries, err := os.ReadDir(root)
	if err != nil {
		if os.IsNotExist(err) {
			logger.Warn("No examples corpus at %s", root)
			return nil, 0, nil
		}
		return nil, 0, fmt.Errorf("read examples corpus: %w", err)
	}

	var (
		records []domain.TemplateRecord
		skipped int
	)
	for _, entry := range entries {
		if err := ctx.Err(); err != nil {
			return nil, 0, err
		}
		if !entry.IsDir() || strings.HasPrefix(entry.Name(), ".") || entry.Name() == "assets" {
			continue
		}
		name := entry.Name()
		html, err := os.ReadFile(filepath.Join(root, name, TemplatePage))
		if err != nil {
			if os.IsNotExist(err) {
				continue
			}
			logger.Warn("Skipping template %s: %v", name, err)
			skipped++
			continue
		}

		var curated *driven.TemplateMeta
		if meta, ok := r.catalog.TemplateMeta(name); ok {
			curated = &meta
		}
		rec, err := tmplx.Extract(name, html, curated)
		if err != nil {
			logger.Warn("Skipping template %s: %v", name, err)
			skipped++
			continue
		}
		records = append(records, *rec)
	}

	tmplx.LinkRTLVariants(records)
	logger.Debug("Templates corpus: %d templates", len(records))
	return records, skipped, nil
}
