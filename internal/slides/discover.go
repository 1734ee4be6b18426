// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package slides discovers lecture slide decks on the course page and
// downloads them together with their optional materials archives.
package slides

import (
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"

	"github.com/pdiddy/course-fetch/internal/httputil"
	"github.com/pdiddy/course-fetch/internal/site"
	"github.com/pdiddy/course-fetch/pkg/types"
)

var titleCaser = cases.Title(language.English)

// lectureName turns a URL path segment into a display name:
// underscores to spaces, each word title-cased.
func lectureName(segment string) string {
	return titleCaser.String(strings.ReplaceAll(segment, "_", " "))
}

// Discover walks the course page for slide deck links, section by
// section in the profile's order, and probes each deck's sibling
// materials URL. If the section walk finds nothing it falls back to
// scanning every anchor on the page. The returned order is discovery
// order: section order, then in-section order.
func Discover(client *http.Client, doc *goquery.Document, profile site.Profile, w io.Writer) []types.Lecture {
	lectures := discoverBySection(client, doc, profile)
	if len(lectures) == 0 {
		fmt.Fprintln(w, "No slides under section headers, scanning all links...")
		lectures = discoverByScan(client, doc, profile)
	}
	return lectures
}

// discoverBySection locates each profile section header and collects
// slide links from the sibling elements that follow it, stopping at the
// next main section header.
func discoverBySection(client *http.Client, doc *goquery.Document, profile site.Profile) []types.Lecture {
	sections := make(map[string]bool, len(profile.Sections))
	for _, s := range profile.Sections {
		sections[s] = true
	}

	headers := doc.Find("h1, h2, h3")

	var lectures []types.Lecture
	for _, sectionName := range profile.Sections {
		var header *goquery.Selection
		headers.EachWithBreak(func(_ int, s *goquery.Selection) bool {
			if strings.TrimSpace(s.Text()) == sectionName {
				header = s
				return false
			}
			return true
		})
		if header == nil {
			continue
		}

		header.NextAll().EachWithBreak(func(_ int, sibling *goquery.Selection) bool {
			name := goquery.NodeName(sibling)
			if (name == "h1" || name == "h2") && sections[strings.TrimSpace(sibling.Text())] {
				return false
			}

			sibling.Find("a").Each(func(_ int, link *goquery.Selection) {
				href, ok := link.Attr("href")
				if !ok || !strings.HasPrefix(href, profile.URL) {
					return
				}
				if !strings.Contains(href, profile.SlidesMarker) {
					return
				}

				parts := strings.Split(strings.TrimPrefix(href, profile.URL), "/")
				if len(parts) < 3 {
					return
				}
				module := ""
				if len(parts) >= 4 {
					module = parts[len(parts)-3]
				}

				lectures = append(lectures, types.Lecture{
					Name:         lectureName(parts[len(parts)-2]),
					Module:       module,
					SlidesURL:    href,
					MaterialsURL: probeMaterials(client, href, profile),
				})
			})
			return true
		})
	}
	return lectures
}

// discoverByScan is the fallback path: every anchor on the page whose
// href ends with the slides marker, with relative hrefs resolved against
// the course URL.
func discoverByScan(client *http.Client, doc *goquery.Document, profile site.Profile) []types.Lecture {
	base, err := url.Parse(profile.URL)
	if err != nil {
		return nil
	}

	var lectures []types.Lecture
	doc.Find("a").Each(func(_ int, link *goquery.Selection) {
		href, ok := link.Attr("href")
		if !ok || !strings.HasSuffix(href, profile.SlidesMarker) {
			return
		}

		ref, err := url.Parse(href)
		if err != nil {
			return
		}
		slidesURL := base.ResolveReference(ref).String()

		parts := strings.Split(href, "/")
		if len(parts) < 2 {
			return
		}
		module := ""
		if len(parts) >= 3 {
			module = parts[len(parts)-3]
		}

		lectures = append(lectures, types.Lecture{
			Name:         lectureName(parts[len(parts)-2]),
			Module:       module,
			SlidesURL:    slidesURL,
			MaterialsURL: probeMaterials(client, slidesURL, profile),
		})
	})
	return lectures
}

// probeMaterials checks whether the materials archive colocated with a
// slide deck exists. Probe failures mean "no materials".
func probeMaterials(client *http.Client, slidesURL string, profile site.Profile) string {
	materialsURL := strings.ReplaceAll(slidesURL, profile.SlidesMarker, profile.MaterialsMarker)
	if httputil.Probe(client, materialsURL) {
		return materialsURL
	}
	return ""
}
