// Package github syncs the documentation corpus from the upstream
// Bootstrap repository. It downloads the repository tarball at a pinned
// ref and extracts the docs and examples subtrees onto local disk.
package github

import (
	"archive/tar"
	"compress/gzip"
	"context"
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"
	"time"

	gh "github.com/google/go-github/v80/github"

	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
	"github.com/custodia-labs/bootdocs/internal/logger"
)

var _ driven.CorpusSyncer = (*Syncer)(nil)

const (
	// DefaultOwner and DefaultRepo name the upstream repository.
	DefaultOwner = "twbs"
	DefaultRepo  = "bootstrap"

	// DefaultRef pins the corpus to a release tag so rebuilds are
	// reproducible.
	DefaultRef = "v5.3.3"

	// DocsVersion is the version directory inside the docs subtree.
	DocsVersion = "5.3"

	// DownloadTimeout bounds the tarball download.
	DownloadTimeout = 5 * time.Minute

	// maxRedirects for the archive link; GitHub serves archives from a
	// redirect to codeload.
	maxRedirects = 3
)

// Repository subtrees extracted from the tarball.
const (
	docsSubtree     = "site/content/docs/" + DocsVersion + "/"
	examplesSubtree = "site/content/examples/"
)

// Options configures the syncer. Zero values take the defaults above.
type Options struct {
	Owner string
	Repo  string
	Ref   string

	// Token is an optional personal access token. Anonymous access
	// works but has a much lower rate limit.
	Token string

	// CorpusDir is the local root the corpus is extracted into.
	CorpusDir string
}

// Syncer downloads the corpus from GitHub. Extraction goes through a
// staging directory, so a failed sync never disturbs the corpus already
// on disk.
type Syncer struct {
	opts        Options
	gh          *gh.Client
	http        *http.Client
	rateLimiter *RateLimiter
}

// NewSyncer creates a corpus syncer for the configured repository.
func NewSyncer(opts Options) *Syncer {
	if opts.Owner == "" {
		opts.Owner = DefaultOwner
	}
	if opts.Repo == "" {
		opts.Repo = DefaultRepo
	}
	if opts.Ref == "" {
		opts.Ref = DefaultRef
	}

	client := gh.NewClient(nil)
	if opts.Token != "" {
		client = client.WithAuthToken(opts.Token)
	}

	return &Syncer{
		opts:        opts,
		gh:          client,
		http:        &http.Client{Timeout: DownloadTimeout},
		rateLimiter: NewRateLimiter(),
	}
}

// DocsDir returns the local documentation subtree root.
func (s *Syncer) DocsDir() string {
	return filepath.Join(s.opts.CorpusDir, "docs")
}

// ExamplesDir returns the local template subtree root.
func (s *Syncer) ExamplesDir() string {
	return filepath.Join(s.opts.CorpusDir, "examples")
}

// Sync downloads the repository tarball and extracts the docs and
// examples subtrees. The live corpus is replaced only after the whole
// archive extracted cleanly.
func (s *Syncer) Sync(ctx context.Context) error {
	logger.Section("Corpus Sync")
	logger.Info("Fetching %s/%s@%s", s.opts.Owner, s.opts.Repo, s.opts.Ref)

	if err := s.rateLimiter.Wait(ctx); err != nil {
		return fmt.Errorf("rate limit wait: %w", err)
	}

	archiveURL, resp, err := s.gh.Repositories.GetArchiveLink(
		ctx, s.opts.Owner, s.opts.Repo, gh.Tarball,
		&gh.RepositoryContentGetOptions{Ref: s.opts.Ref}, maxRedirects,
	)
	if err != nil {
		return fmt.Errorf("resolve archive link: %w", err)
	}
	if resp != nil {
		s.rateLimiter.UpdateFromResponse(resp.Response)
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodGet, archiveURL.String(), nil)
	if err != nil {
		return fmt.Errorf("build download request: %w", err)
	}
	download, err := s.http.Do(req)
	if err != nil {
		return fmt.Errorf("download archive: %w", err)
	}
	defer download.Body.Close()
	if download.StatusCode != http.StatusOK {
		return fmt.Errorf("download archive: unexpected status %s", download.Status)
	}

	staging, err := os.MkdirTemp(filepath.Dir(s.opts.CorpusDir), ".corpus-*")
	if err != nil {
		return fmt.Errorf("create staging dir: %w", err)
	}
	defer os.RemoveAll(staging)

	files, err := s.extractArchive(download.Body, staging)
	if err != nil {
		return fmt.Errorf("extract archive: %w", err)
	}
	if files == 0 {
		return fmt.Errorf("archive contained no corpus files under %s or %s", docsSubtree, examplesSubtree)
	}
	logger.Debug("Extracted %d corpus files", files)

	return s.swapCorpus(staging)
}

// extractArchive streams the gzipped tarball, keeping only files under
// the docs and examples subtrees. Returns the extracted file count.
func (s *Syncer) extractArchive(r io.Reader, staging string) (int, error) {
	gz, err := gzip.NewReader(r)
	if err != nil {
		return 0, fmt.Errorf("open gzip stream: %w", err)
	}
	defer gz.Close()

	tr := tar.NewReader(gz)
	count := 0
	for {
		hdr, err := tr.Next()
		if err == io.EOF {
			return count, nil
		}
		if err != nil {
			return 0, fmt.Errorf("read tar entry: %w", err)
		}
		if hdr.Typeflag != tar.TypeReg {
			continue
		}

		dest, ok := s.corpusPath(hdr.Name)
		if !ok {
			continue
		}
		target := filepath.Join(staging, filepath.FromSlash(dest))
		if !strings.HasPrefix(target, staging+string(os.PathSeparator)) {
			return 0, fmt.Errorf("archive entry escapes staging dir: %s", hdr.Name)
		}
		if err := os.MkdirAll(filepath.Dir(target), 0o755); err != nil {
			return 0, fmt.Errorf("create %s: %w", filepath.Dir(target), err)
		}
		f, err := os.Create(target)
		if err != nil {
			return 0, fmt.Errorf("create %s: %w", target, err)
		}
		if _, err := io.Copy(f, tr); err != nil {
			f.Close()
			return 0, fmt.Errorf("write %s: %w", target, err)
		}
		if err := f.Close(); err != nil {
			return 0, fmt.Errorf("close %s: %w", target, err)
		}
		count++
	}
}

// corpusPath maps a tarball entry name to its corpus-relative path.
// Entries outside the docs and examples subtrees are dropped. The
// tarball prefixes every entry with a "<repo>-<sha>/" directory.
func (s *Syncer) corpusPath(entry string) (string, bool) {
	_, rest, found := strings.Cut(entry, "/")
	if !found || strings.Contains(rest, "..") {
		return "", false
	}
	if rel, ok := strings.CutPrefix(rest, examplesSubtree); ok {
		return "examples/" + rel, true
	}
	if rel, ok := strings.CutPrefix(rest, docsSubtree); ok {
		return "docs/" + rel, true
	}
	return "", false
}

// swapCorpus replaces the live corpus with the staged one.
func (s *Syncer) swapCorpus(staging string) error {
	previous := s.opts.CorpusDir + ".previous"
	_ = os.RemoveAll(previous)

	if _, err := os.Stat(s.opts.CorpusDir); err == nil {
		if err := os.Rename(s.opts.CorpusDir, previous); err != nil {
			return fmt.Errorf("set aside previous corpus: %w", err)
		}
	}
	if err := os.Rename(staging, s.opts.CorpusDir); err != nil {
		// Put the previous corpus back so a failed swap is harmless.
		_ = os.Rename(previous, s.opts.CorpusDir)
		return fmt.Errorf("install corpus: %w", err)
	}
	_ = os.RemoveAll(previous)
	return nil
}
