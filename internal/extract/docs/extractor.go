// Package docs extracts structured records from markdown documentation
// pages. Extraction is a pure function over file content and path, so
// the package is testable with literal fixtures and has no knowledge of
// how the corpus is fetched.
package docs

import (
	"fmt"
	"path"
	"regexp"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
	"github.com/custodia-labs/bootdocs/internal/logger"
)

// PageExt is the only file extension treated as an indexable page.
const PageExt = ".mdx"

var (
	classAttrPattern = regexp.MustCompile(`class(?:Name)?=["']([^"']+)["']`)
	examplePattern   = regexp.MustCompile(`(?s)<Example[^>]*>(.*?)</Example>`)
)

// utilityPatterns is the fixed token grammar for utility classes, one
// anchored expression per prefix family. Tokens are matched whole, so
// "collapse" never passes as a col-* grid token.
var utilityPatterns = []*regexp.Regexp{
	// Spacing: m-*, mt-*, ms-*, p-*, px-*, ... with 0-5 or auto.
	regexp.MustCompile(`^[mp][tbsexy]?-(?:[0-5]|auto)$`),
	// Display, optionally responsive: d-flex, d-md-none, ...
	regexp.MustCompile(`^d-(?:(?:sm|md|lg|xl|xxl)-)?(?:none|inline|inline-block|block|grid|table|table-cell|table-row|flex|inline-flex)$`),
	// Flexbox.
	regexp.MustCompile(`^flex-(?:(?:sm|md|lg|xl|xxl)-)?(?:row|row-reverse|column|column-reverse|wrap|nowrap|wrap-reverse|fill|grow-[01]|shrink-[01])$`),
	regexp.MustCompile(`^justify-content-(?:(?:sm|md|lg|xl|xxl)-)?(?:start|end|center|between|around|evenly)$`),
	regexp.MustCompile(`^align-items-(?:(?:sm|md|lg|xl|xxl)-)?(?:start|end|center|baseline|stretch)$`),
	regexp.MustCompile(`^align-self-(?:(?:sm|md|lg|xl|xxl)-)?(?:start|end|center|baseline|stretch)$`),
	// Grid columns: col, col-6, col-md-4, col-auto.
	regexp.MustCompile(`^col(?:-(?:sm|md|lg|xl|xxl))?(?:-(?:[1-9]|1[0-2]|auto))?$`),
	// Colour.
	regexp.MustCompile(`^text-(?:primary|secondary|success|danger|warning|info|light|dark|body|muted|white|black-50|white-50)$`),
	regexp.MustCompile(`^bg-(?:primary|secondary|success|danger|warning|info|light|dark|body|white|transparent)$`),
	// Border and rounding.
	regexp.MustCompile(`^border(?:-(?:top|bottom|start|end|0))?$`),
	regexp.MustCompile(`^border-(?:primary|secondary|success|danger|warning|info|light|dark|white)$`),
	regexp.MustCompile(`^rounded(?:-(?:top|bottom|start|end|circle|pill|[0-3]))?$`),
	// Sizing.
	regexp.MustCompile(`^[wh]-(?:25|50|75|100|auto)$`),
	// Position.
	regexp.MustCompile(`^position-(?:static|relative|absolute|fixed|sticky)$`),
	// Text alignment and transforms.
	regexp.MustCompile(`^text-(?:start|end|center|justify|wrap|nowrap|break|truncate)$`),
	regexp.MustCompile(`^text-(?:lowercase|uppercase|capitalize)$`),
	// Typography weight and size.
	regexp.MustCompile(`^fw-(?:light|lighter|normal|bold|bolder)$`),
	regexp.MustCompile(`^fs-[1-6]$`),
}

// frontMatter is the leading metadata block of a page. Aliases may be
// a single string or a list in the source, so it carries a flexible
// unmarshaller.
type frontMatter struct {
	Title       string     `yaml:"title"`
	Description string     `yaml:"description"`
	Aliases     stringList `yaml:"aliases"`
	TOC         bool       `yaml:"toc"`
}

// stringList accepts both a YAML scalar and a YAML sequence.
type stringList []string

func (s *stringList) UnmarshalYAML(value *yaml.Node) error {
	switch value.Kind {
	case yaml.ScalarNode:
		var one string
		if err := value.Decode(&one); err != nil {
			return err
		}
		*s = []string{one}
		return nil
	case yaml.SequenceNode:
		var many []string
		if err := value.Decode(&many); err != nil {
			return err
		}
		*s = many
		return nil
	default:
		return fmt.Errorf("aliases: unsupported YAML node kind %d", value.Kind)
	}
}

// Indexable reports whether relPath names a page this extractor handles.
func Indexable(relPath string) bool {
	return strings.EqualFold(path.Ext(relPath), PageExt)
}

// Extract parses one documentation page into a DocumentRecord.
// relPath is the path relative to the docs root, using forward slashes.
//
// A structurally malformed metadata block degrades to derived defaults;
// extraction only fails on invalid arguments.
func Extract(relPath string, content []byte) (*domain.DocumentRecord, error) {
	if relPath == "" {
		return nil, fmt.Errorf("%w: empty path", domain.ErrInvalidInput)
	}

	meta, body := splitFrontMatter(relPath, string(content))

	section := extractSection(relPath)
	record := &domain.DocumentRecord{
		Filepath:    relPath,
		Title:       meta.Title,
		Description: meta.Description,
		Section:     section,
		Aliases:     normaliseAliases(meta.Aliases),
		TOC:         meta.TOC,
		Content:     body,
		URL:         domain.DocURL(relPath),
	}

	if section == "components" {
		record.ComponentName = componentName(relPath)
	}

	record.CodeExamples = extractCodeExamples(body)
	record.UtilityClasses = extractUtilityClasses(body)

	return record, nil
}

// splitFrontMatter separates the leading YAML block from the body.
// A missing or malformed block yields zero metadata and the full text.
func splitFrontMatter(relPath, content string) (frontMatter, string) {
	var meta frontMatter

	rest, ok := strings.CutPrefix(content, "---\n")
	if !ok {
		return meta, content
	}
	block, body, ok := strings.Cut(rest, "\n---\n")
	if !ok {
		// Unterminated block: treat the whole file as body.
		return meta, content
	}

	if err := yaml.Unmarshal([]byte(block), &meta); err != nil {
		logger.Warn("malformed front matter in %s: %v", relPath, err)
		return frontMatter{}, body
	}
	return meta, body
}

// extractSection derives the section from the first path segment,
// lower-cased. Pages without a directory get the default section.
func extractSection(relPath string) string {
	dir, _, found := strings.Cut(relPath, "/")
	if !found {
		return domain.DefaultSection
	}
	return strings.ToLower(dir)
}

// componentName derives the component slug from the filename stem.
func componentName(relPath string) string {
	stem := strings.TrimSuffix(path.Base(relPath), path.Ext(relPath))
	return strings.ReplaceAll(strings.ToLower(stem), " ", "-")
}

// extractCodeExamples returns the raw markup of each example block in
// page order. Blocks are matched to their closing tag, never split
// mid-element.
func extractCodeExamples(body string) []domain.CodeExample {
	matches := examplePattern.FindAllStringSubmatch(body, -1)
	examples := make([]domain.CodeExample, 0, len(matches))
	for _, m := range matches {
		snippet := strings.TrimSpace(m[1])
		if snippet == "" {
			continue
		}
		examples = append(examples, domain.CodeExample{
			ID:      fmt.Sprintf("example_%d", len(examples)+1),
			Content: snippet,
		})
	}
	return examples
}

// extractUtilityClasses collects utility tokens from class attributes
// inside example blocks only, so layout chrome around the examples does
// not pollute the set. The result is a sorted, de-duplicated slice.
func extractUtilityClasses(body string) []string {
	seen := make(map[string]struct{})
	for _, block := range examplePattern.FindAllStringSubmatch(body, -1) {
		for _, attr := range classAttrPattern.FindAllStringSubmatch(block[1], -1) {
			for _, token := range strings.Fields(attr[1]) {
				if IsUtilityClass(token) {
					seen[token] = struct{}{}
				}
			}
		}
	}
	return sortedKeys(seen)
}

// IsUtilityClass reports whether token matches the utility grammar.
func IsUtilityClass(token string) bool {
	for _, p := range utilityPatterns {
		if p.MatchString(token) {
			return true
		}
	}
	return false
}

func normaliseAliases(aliases []string) []string {
	out := make([]string, 0, len(aliases))
	seen := make(map[string]struct{})
	for _, a := range aliases {
		// Front matter aliases are URL paths; keep the final segment.
		a = strings.Trim(a, "/")
		if i := strings.LastIndex(a, "/"); i >= 0 {
			a = a[i+1:]
		}
		a = strings.ToLower(a)
		if a == "" {
			continue
		}
		if _, dup := seen[a]; dup {
			continue
		}
		seen[a] = struct{}{}
		out = append(out, a)
	}
	return out
}

func sortedKeys(set map[string]struct{}) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}
