// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package slides

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

// Filename returns the deterministic slide deck filename for the lecture
// at the given 1-based index: NN_module_Name.pdf, sanitized.
func Filename(index int, lec types.Lecture) string {
	return download.SanitizeFilename(fmt.Sprintf("%02d_%s%s.pdf", index, modulePart(lec), lec.Name))
}

// MaterialsFilename returns the materials archive filename for the
// lecture at the given 1-based index: NN_module_Name_materials.zip.
func MaterialsFilename(index int, lec types.Lecture) string {
	return download.SanitizeFilename(fmt.Sprintf("%02d_%s%s_materials.zip", index, modulePart(lec), lec.Name))
}

func modulePart(lec types.Lecture) string {
	if lec.Module == "" {
		return ""
	}
	return lec.Module + "_"
}

// Download fetches every lecture's slide deck and materials archive into
// cfg.OutDir, skipping files already present. Failures are logged and
// counted; the pass continues with the next item. A fixed pause follows
// each successful fetch.
func Download(client *http.Client, lectures []types.Lecture, cfg types.SlidesConfig, w io.Writer) download.BatchResult {
	var result download.BatchResult
	bar := download.NewProgressBar(w, len(lectures), "slides")

	for i, lec := range lectures {
		index := i + 1

		fetchOne(client, lec.SlidesURL, Filename(index, lec), cfg, w, &result)
		if lec.HasMaterials() {
			fetchOne(client, lec.MaterialsURL, MaterialsFilename(index, lec), cfg, w, &result)
		}
		bar.Add(1)
	}

	fmt.Fprintf(w, "\nSlides summary: %d downloaded, %d skipped, %d failed (total: %d)\n",
		result.Downloaded, result.Skipped, result.Failed, result.Total())
	return result
}

// fetchOne downloads a single file unless it already exists. The skip
// path performs no network requests.
func fetchOne(client *http.Client, url, filename string, cfg types.SlidesConfig, w io.Writer, result *download.BatchResult) {
	if download.Exists(cfg.OutDir, filename) {
		fmt.Fprintf(w, "skipped: %s (already exists)\n", filename)
		result.Skipped++
		return
	}

	if err := download.Fetch(client, url, filepath.Join(cfg.OutDir, filename)); err != nil {
		fmt.Fprintf(w, "failed: %s (%v)\n", filename, err)
		result.Failed++
		return
	}

	fmt.Fprintf(w, "downloaded: %s\n", filename)
	result.Downloaded++
	if cfg.DownloadDelay > 0 {
		time.Sleep(cfg.DownloadDelay)
	}
}

// Run executes the whole slide pipeline: fetch the course page, discover
// lectures, and download their files. A page fetch or parse failure
// aborts the pipeline.
func Run(client *http.Client, profile site.Profile, cfg types.SlidesConfig, w io.Writer) error {
	fmt.Fprintln(w, "=== Lecture Slides ===")

	if err := os.MkdirAll(cfg.OutDir, 0o755); err != nil {
		return fmt.Errorf("creating %s: %w", cfg.OutDir, err)
	}

	fmt.Fprintln(w, "Fetching course page...")
	doc, err := site.Fetch(client, profile.URL)
	if err != nil {
		return err
	}

	lectures := Discover(client, doc, profile, w)
	fmt.Fprintf(w, "Found %d lectures with slides\n", len(lectures))
	for _, lec := range lectures {
		fmt.Fprintf(w, "- %s\n", lec.Name)
		if lec.HasMaterials() {
			fmt.Fprintln(w, "  (includes additional materials)")
		}
	}

	Download(client, lectures, cfg, w)
	return nil
}
