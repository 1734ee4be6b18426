// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package papers discovers cited arXiv papers in the course page's
// references section and downloads their PDFs.
package papers

import (
	"fmt"
	"regexp"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"

	"github.com/pdiddy/course-fetch/internal/site"
	"github.com/pdiddy/course-fetch/pkg/types"
)

// arxivPDFBase is the canonical PDF endpoint. Declared as a var so
// tests can substitute an httptest server.
var arxivPDFBase = "https://arxiv.org/pdf/"

// Matches the abstract-page and direct-PDF forms of an arXiv link,
// anchored at the start so path prefixes cannot fake a match.
var (
	arxivAbsPattern = regexp.MustCompile(`^https://arxiv\.org/abs/(\d+\.\d+)(v\d+)?`)
	arxivPDFPattern = regexp.MustCompile(`^https://arxiv\.org/pdf/(\d+\.\d+)(v\d+)?\.pdf`)

	bracketPattern = regexp.MustCompile(`\[(.*?)\]`)
	refNumPattern  = regexp.MustCompile(`(\d+)\.`)
)

// arxivID extracts the arXiv identifier from an href, or "" when the
// href is not an arXiv link.
func arxivID(href string) string {
	if m := arxivPDFPattern.FindStringSubmatch(href); m != nil {
		return m[1]
	}
	if m := arxivAbsPattern.FindStringSubmatch(href); m != nil {
		return m[1]
	}
	return ""
}

// pdfURL normalizes an arXiv href to the canonical PDF URL. Direct PDF
// links pass through unchanged; abstract links are rewritten.
func pdfURL(href, id string) string {
	if strings.Contains(href, "pdf") {
		return href
	}
	return arxivPDFBase + id + ".pdf"
}

// Discover parses the references section into Reference records. The
// found flag is false when the page has no references heading at all.
//
// Three extraction paths, in order: the first ordered list after the
// heading; failing that, the first sibling container holding paragraph
// items; failing that, a whole-page scan of the elements after the
// heading with heuristic reference numbering.
func Discover(doc *goquery.Document, profile site.Profile) (refs []types.Reference, found bool) {
	var heading *goquery.Selection
	doc.Find("h1, h2, h3, h4, h5, h6").EachWithBreak(func(_ int, s *goquery.Selection) bool {
		if strings.TrimSpace(s.Text()) == profile.ReferencesHeading {
			heading = s
			return false
		}
		return true
	})
	if heading == nil {
		return nil, false
	}

	items := heading.NextAllFiltered("ol").First().Find("li")
	if items.Length() == 0 {
		heading.NextAll().EachWithBreak(func(_ int, sibling *goquery.Selection) bool {
			if ps := sibling.Find("p"); ps.Length() > 0 {
				items = ps
				return false
			}
			return true
		})
	}

	if items.Length() == 0 {
		return scanAfter(heading), true
	}
	return fromItems(items), true
}

// fromItems extracts references from structured list items. The item's
// position supplies the reference number; one item can yield several
// references when it links multiple arXiv papers.
func fromItems(items *goquery.Selection) []types.Reference {
	var refs []types.Reference
	items.Each(func(i int, item *goquery.Selection) {
		refNum := i + 1
		itemText := item.Text()

		item.Find("a").Each(func(_ int, link *goquery.Selection) {
			href, ok := link.Attr("href")
			if !ok {
				return
			}
			id := arxivID(href)
			if id == "" {
				return
			}

			titleAuthor := itemText
			if m := bracketPattern.FindStringSubmatch(titleAuthor); m != nil {
				titleAuthor = m[1]
			} else {
				titleAuthor = strings.TrimSpace(strings.ReplaceAll(titleAuthor, href, ""))
			}

			refs = append(refs, types.Reference{
				RefNum:      refNum,
				ArxivID:     id,
				TitleAuthor: titleAuthor,
				PDFURL:      pdfURL(href, id),
			})
		})
	})
	return refs
}

// scanAfter is the last-resort path: walk every element after the
// references heading for arXiv links. Reference numbers come from a
// leading "N." marker in the surrounding text when present, otherwise
// from a running counter. The counter is best-effort; malformed
// structure can make it diverge from true document order.
func scanAfter(heading *goquery.Selection) []types.Reference {
	var refs []types.Reference
	refNum := 1

	heading.NextAll().Each(func(_ int, sibling *goquery.Selection) {
		sibling.Find("a").Each(func(_ int, link *goquery.Selection) {
			href, ok := link.Attr("href")
			if !ok {
				return
			}
			id := arxivID(href)
			if id == "" {
				return
			}

			parentText := link.Parent().Text()
			if m := refNumPattern.FindStringSubmatch(parentText); m != nil {
				if n, err := strconv.Atoi(m[1]); err == nil {
					refNum = n
				}
			}

			titleAuthor := strings.TrimSpace(strings.ReplaceAll(parentText, href, ""))
			if titleAuthor == "" {
				titleAuthor = fmt.Sprintf("Reference %d", refNum)
			}

			refs = append(refs, types.Reference{
				RefNum:      refNum,
				ArxivID:     id,
				TitleAuthor: titleAuthor,
				PDFURL:      pdfURL(href, id),
			})
			refNum++
		})
	})
	return refs
}
