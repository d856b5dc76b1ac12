// Package templates extracts structured records from full HTML page
// templates. Like the docs extractor it is a pure function over file
// content, independent of corpus fetching.
package templates

import (
	"bytes"
	"fmt"
	"sort"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/custodia-labs/bootdocs/internal/core/domain"
	"github.com/custodia-labs/bootdocs/internal/core/ports/driven"
)

// DefaultTitle is used when a template carries no <title> element.
const DefaultTitle = "Bootstrap Example"

// Complexity heuristic thresholds. A template under both low bounds is
// simple; over either high bound it is complex.
const (
	simpleMaxLines       = 150
	simpleMaxComponents  = 4
	complexMinLines      = 400
	complexMinComponents = 8
)

// classSignatures maps component names to class-token signatures.
// A component is present when any class token equals the signature or
// extends it with a hyphen ("nav" matches "nav" and "nav-link", never
// "navbar").
var classSignatures = map[string]string{
	"accordion":    "accordion",
	"alert":        "alert",
	"badge":        "badge",
	"breadcrumb":   "breadcrumb",
	"button":       "btn",
	"button-group": "btn-group",
	"card":         "card",
	"carousel":     "carousel",
	"dropdown":     "dropdown",
	"forms":        "form-control",
	"list-group":   "list-group",
	"modal":        "modal",
	"nav":          "nav",
	"navbar":       "navbar",
	"offcanvas":    "offcanvas",
	"pagination":   "pagination",
	"progress":     "progress",
	"spinner":      "spinner",
	"toast":        "toast",
}

// attrSignatures maps component names to attribute signatures.
var attrSignatures = map[string][2]string{
	"tooltip": {"data-bs-toggle", "tooltip"},
	"popover": {"data-bs-toggle", "popover"},
}

// Extract parses one template's markup into a TemplateRecord.
// name is the template directory name; curated is the catalog entry for
// that name, nil when the template is not in the fixed table.
func Extract(name string, html []byte, curated *driven.TemplateMeta) (*domain.TemplateRecord, error) {
	if name == "" {
		return nil, fmt.Errorf("%w: empty template name", domain.ErrInvalidInput)
	}

	doc, err := goquery.NewDocumentFromReader(bytes.NewReader(html))
	if err != nil {
		return nil, fmt.Errorf("parsing %s markup: %w", name, err)
	}

	components := detectComponents(doc)

	record := &domain.TemplateRecord{
		Name:        name,
		Title:       extractTitle(doc),
		HTMLPath:    name + "/index.html",
		HTMLContent: string(html),
		Components:  components,
		IsRTL:       strings.HasSuffix(name, domain.RTLSuffix),
		URL:         domain.TemplateURL(name),
	}
	record.CSSFiles, record.JSFiles = customAssets(name, doc)
	record.UtilityClasses = extractUtilityClasses(doc)

	if curated != nil {
		record.Category = curated.Category
		record.Description = curated.Description
		record.Complexity = curated.Complexity
		record.Components = mergeComponents(components, curated.Components)
	} else {
		record.Category = domain.CategoryOther
		record.Description = defaultDescription(name)
		record.Complexity = classifyComplexity(string(html), len(components))
	}
	if !record.Category.Valid() {
		record.Category = domain.CategoryOther
	}
	if record.Complexity == "" {
		record.Complexity = classifyComplexity(string(html), len(record.Components))
	}

	return record, nil
}

// DetectInMarkup scans a standalone markup fragment for component
// signatures. Unparseable fragments yield no components.
func DetectInMarkup(markup string) []string {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(markup))
	if err != nil {
		return nil
	}
	return detectComponents(doc)
}

// LinkRTLVariants sets the symmetric RTL link on every record pair.
// Both directions are only set once both records exist in the slice.
func LinkRTLVariants(records []domain.TemplateRecord) {
	byName := make(map[string]int, len(records))
	for i := range records {
		byName[records[i].Name] = i
	}

	for i := range records {
		if records[i].IsRTL {
			continue
		}
		variant := records[i].Name + domain.RTLSuffix
		j, ok := byName[variant]
		if !ok {
			continue
		}
		records[i].HasRTLVariant = true
		records[i].RTLTemplateName = variant
		records[j].RTLTemplateName = records[i].Name
	}
}

func extractTitle(doc *goquery.Document) string {
	title := strings.TrimSpace(doc.Find("title").First().Text())
	if title == "" {
		return DefaultTitle
	}
	return title
}

// customAssets returns same-directory CSS and JS references. External
// URLs, references into other directories and .rtl. variants do not
// count as custom files.
func customAssets(name string, doc *goquery.Document) (css, js []string) {
	doc.Find("link[href]").Each(func(_ int, s *goquery.Selection) {
		href, _ := s.Attr("href")
		if rel, _ := s.Attr("rel"); rel != "" && rel != "stylesheet" {
			return
		}
		if sameDirAsset(href, ".css") {
			css = append(css, name+"/"+href)
		}
	})
	doc.Find("script[src]").Each(func(_ int, s *goquery.Selection) {
		src, _ := s.Attr("src")
		if sameDirAsset(src, ".js") {
			js = append(js, name+"/"+src)
		}
	})
	return css, js
}

func sameDirAsset(ref, ext string) bool {
	if ref == "" || strings.Contains(ref, "://") || strings.HasPrefix(ref, "//") {
		return false
	}
	if strings.Contains(ref, "/") {
		return false
	}
	if strings.Contains(ref, ".rtl.") {
		return false
	}
	return strings.HasSuffix(ref, ext)
}

// detectComponents scans class tokens and marker attributes against the
// component signature table. The result is sorted and de-duplicated.
func detectComponents(doc *goquery.Document) []string {
	found := make(map[string]struct{})

	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		attr, _ := s.Attr("class")
		for _, token := range strings.Fields(attr) {
			for component, sig := range classSignatures {
				if token == sig || strings.HasPrefix(token, sig+"-") {
					found[component] = struct{}{}
				}
			}
		}
	})

	// forms also count plain <form> elements without framework classes.
	if doc.Find("form").Length() > 0 {
		found["forms"] = struct{}{}
	}
	// table requires an actual <table> carrying a table-* class.
	if _, ok := found["table"]; !ok {
		doc.Find("table[class]").EachWithBreak(func(_ int, s *goquery.Selection) bool {
			attr, _ := s.Attr("class")
			for _, token := range strings.Fields(attr) {
				if token == "table" || strings.HasPrefix(token, "table-") {
					found["table"] = struct{}{}
					return false
				}
			}
			return true
		})
	}

	for component, sig := range attrSignatures {
		if doc.Find(fmt.Sprintf("[%s=%q]", sig[0], sig[1])).Length() > 0 {
			found[component] = struct{}{}
		}
	}

	out := make([]string, 0, len(found))
	for c := range found {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}

// extractUtilityClasses collects utility tokens from every class
// attribute in the markup. Templates have no designated example
// regions, so the whole document is the example.
func extractUtilityClasses(doc *goquery.Document) []string {
	seen := make(map[string]struct{})
	doc.Find("[class]").Each(func(_ int, s *goquery.Selection) {
		attr, _ := s.Attr("class")
		for _, token := range strings.Fields(attr) {
			if isUtilityToken(token) {
				seen[token] = struct{}{}
			}
		}
	})

	out := make([]string, 0, len(seen))
	for k := range seen {
		out = append(out, k)
	}
	sort.Strings(out)
	return out
}

// utilityPrefixes is the template-side token filter: broader than the
// docs grammar since templates use the full utility surface.
var utilityPrefixes = []string{
	"d-", "flex-", "justify-", "align-", "text-", "bg-", "border-",
	"m-", "mt-", "mb-", "ms-", "me-", "mx-", "my-",
	"p-", "pt-", "pb-", "ps-", "pe-", "px-", "py-",
	"w-", "h-", "mw-", "mh-", "vw-", "vh-",
	"position-", "top-", "bottom-", "start-", "end-",
	"rounded-", "shadow-", "opacity-", "overflow-",
	"gap-", "col-", "row-", "g-", "gx-", "gy-",
	"fs-", "fw-", "fst-", "lh-", "font-",
}

func isUtilityToken(token string) bool {
	for _, prefix := range utilityPrefixes {
		if strings.HasPrefix(token, prefix) {
			return true
		}
	}
	return false
}

func classifyComplexity(html string, componentCount int) domain.Complexity {
	lines := strings.Count(html, "\n") + 1
	switch {
	case lines > complexMinLines || componentCount > complexMinComponents:
		return domain.ComplexityComplex
	case lines < simpleMaxLines && componentCount < simpleMaxComponents:
		return domain.ComplexitySimple
	default:
		return domain.ComplexityIntermediate
	}
}

func defaultDescription(name string) string {
	words := strings.Split(strings.ReplaceAll(name, "-", " "), " ")
	for i, w := range words {
		if w == "" {
			continue
		}
		words[i] = strings.ToUpper(w[:1]) + w[1:]
	}
	return strings.Join(words, " ") + " template"
}

func mergeComponents(detected, curated []string) []string {
	seen := make(map[string]struct{}, len(detected)+len(curated))
	for _, c := range detected {
		seen[c] = struct{}{}
	}
	for _, c := range curated {
		seen[c] = struct{}{}
	}
	out := make([]string, 0, len(seen))
	for c := range seen {
		out = append(out, c)
	}
	sort.Strings(out)
	return out
}
