// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"fmt"
	"regexp"
	"sort"
	"strings"

	"github.com/pdiddy/course-fetch/pkg/types"
)

const maxShortTitleLen = 30

var (
	parenPattern      = regexp.MustCompile(`\([^)]*\)`)
	whitespacePattern = regexp.MustCompile(`\s+`)
	nonWordPattern    = regexp.MustCompile(`[^a-zA-Z0-9_-]`)
)

// Dedupe sorts references by reference number (stable, ascending) and
// removes duplicate arXiv identifiers, keeping the first occurrence.
func Dedupe(refs []types.Reference) []types.Reference {
	sorted := make([]types.Reference, len(refs))
	copy(sorted, refs)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].RefNum < sorted[j].RefNum
	})

	seen := make(map[string]bool, len(sorted))
	unique := sorted[:0]
	for _, ref := range sorted {
		if seen[ref.ArxivID] {
			continue
		}
		seen[ref.ArxivID] = true
		unique = append(unique, ref)
	}
	return unique
}

// ShortTitle reduces a title/author string to a short filename-safe
// title: the segment before the first author separator, with
// parenthesized content stripped, whitespace collapsed to underscores,
// and anything outside [A-Za-z0-9_-] removed, truncated to 30 bytes.
func ShortTitle(titleAuthor string) string {
	title := titleAuthor
	for _, sep := range []string{" - ", ", ", ": "} {
		if idx := strings.Index(title, sep); idx >= 0 {
			title = strings.TrimSpace(title[:idx])
		}
	}

	title = strings.TrimSpace(parenPattern.ReplaceAllString(title, ""))
	title = whitespacePattern.ReplaceAllString(title, "_")
	title = nonWordPattern.ReplaceAllString(title, "")

	if len(title) > maxShortTitleLen {
		title = title[:maxShortTitleLen]
	}
	return title
}

// Filename returns the deterministic paper filename:
// NNN_ShortTitle_arxivID.pdf.
func Filename(ref types.Reference) string {
	return fmt.Sprintf("%03d_%s_%s.pdf", ref.RefNum, ShortTitle(ref.TitleAuthor), ref.ArxivID)
}
