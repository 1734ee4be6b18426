// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"time"

	"github.com/pdiddy/course-fetch/internal/download"
	"github.com/pdiddy/course-fetch/internal/site"
	"github.com/pdiddy/course-fetch/pkg/types"
)

// Download fetches every reference's PDF into cfg.OutDir, skipping files
// already present. Failures are logged and counted; the pass continues
// with the next item. A fixed pause follows each successful fetch.
func Download(client *http.Client, refs []types.Reference, cfg types.PapersConfig, w io.Writer) download.BatchResult {
	var result download.BatchResult
	bar := download.NewProgressBar(w, len(refs), "papers")

	for _, ref := range refs {
		filename := Filename(ref)

		switch {
		case download.Exists(cfg.OutDir, filename):
			fmt.Fprintf(w, "skipped: %s (already exists)\n", filename)
			result.Skipped++
		default:
			if err := download.Fetch(client, ref.PDFURL, filepath.Join(cfg.OutDir, filename)); err != nil {
				fmt.Fprintf(w, "failed: %s (%v)\n", filename, err)
				result.Failed++
				break
			}
			fmt.Fprintf(w, "downloaded: %s\n", filename)
			result.Downloaded++
			if cfg.DownloadDelay > 0 {
				time.Sleep(cfg.DownloadDelay)
			}
		}
		bar.Add(1)
	}

	fmt.Fprintf(w, "\nPapers summary: %d downloaded, %d skipped, %d failed (total: %d)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result
}

// Run executes the whole paper pipeline: fetch the course page, parse
// the references section, deduplicate, and download the PDFs. A page
// fetch or parse failure aborts the pipeline; a missing references
// section only reports and downloads nothing.
func Run(client *http.Client, profile site.Profile, cfg types.PapersConfig, w io.Writer) error {
	fmt.Fprintln(w, "=== Research Papers ===")

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", cfg.OutDir, err)
	}

	fmt.Fprintln(w, "Fetching course page...")
	doc, err := site.Fetch(client, profile.URL)
	if err != nil {
		return err
	}

	refs, found := Discover(doc, profile)
	if !found {
		fmt.Fprintln(w, "References section not found on the page.")
		return nil
	}
	for _, ref := range refs {
		fmt.Fprintf(w, "found: #%d %s (arxiv:%s)\n", ref.RefNum, ref.TitleAuthor, ref.ArxivID)
	}

	unique := Dedupe(refs)
	fmt.Fprintf(w, "Found %d unique papers to download\n", len(unique))

	Download(client, unique, cfg, w)
	return nil
}
