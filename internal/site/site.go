// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package site fetches a course page and describes its structure through
// a loadable course profile.
package site

import (
	"fmt"
	"net/http"

	"github.com/PuerkitoBio/goquery"
)

// Fetch retrieves the course page and parses it into a goquery document.
// A transport error, a non-200 response, or unparseable HTML is fatal to
// the calling pipeline.
func Fetch(client *http.Client, url string) (*goquery.Document, error) {
	resp, err := client.Get(url)
	if err != nil {
		return nil, fmt.Errorf("fetching course page: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return nil, fmt.Errorf("course page returned HTTP %d", resp.StatusCode)
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("parsing course page: %w", err)
	}
	return doc, nil
}
