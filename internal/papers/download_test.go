// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package papers

import (
	"bytes"
	"fmt"
	"net/http"
	"net/http/httptest"
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/pdiddy/course-fetch/internal/site"
	"github.com/pdiddy/course-fetch/pkg/types"
)

func testPapersConfig(dir string) types.PapersConfig {
	return types.PapersConfig{
		HTTPConfig: types.HTTPConfig{
			Timeout:   10 * time.Second,
			UserAgent: "course-fetch-test/0.1",
		},
		OutDir:        dir,
		DownloadDelay: 0,
	}
}

func TestDownload(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "%PDF-1.4 "+r.URL.Path)
	}))
	defer ts.Close()

	dir := t.TempDir()
	refs := []types.Reference{
		{RefNum: 5, ArxivID: "1706.03762", TitleAuthor: "Attention Is All You Need", PDFURL: ts.URL + "/pdf/1706.03762.pdf"},
		{RefNum: 6, ArxivID: "2001.08361", TitleAuthor: "Scaling Laws", PDFURL: ts.URL + "/pdf/2001.08361.pdf"},
	}

	var buf bytes.Buffer
	result := Download(ts.Client(), refs, testPapersConfig(dir), &buf)

	if result.Downloaded != 2 || result.Failed != 0 {
		t.Errorf("result = %+v, want 2 downloaded", result)
	}
	for _, name := range []string{
		"005_Attention_Is_All_You_Need_1706.03762.pdf",
		"006_Scaling_Laws_2001.08361.pdf",
	} {
		if _, err := os.Stat(filepath.Join(dir, name)); err != nil {
			t.Errorf("missing %s: %v", name, err)
		}
	}
	if !strings.Contains(buf.String(), "Papers summary: 2 downloaded, 0 skipped, 0 failed") {
		t.Errorf("missing summary in output: %q", buf.String())
	}
}

func TestDownloadSkipExistingMakesNoRequests(t *testing.T) {
	requests := 0
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		requests++
		fmt.Fprint(w, "%PDF-1.4")
	}))
	defer ts.Close()

	dir := t.TempDir()
	ref := types.Reference{RefNum: 5, ArxivID: "1706.03762", TitleAuthor: "Attention Is All You Need", PDFURL: ts.URL + "/pdf/x.pdf"}
	if err := os.WriteFile(filepath.Join(dir, Filename(ref)), []byte("existing"), 0o644); err != nil {
		t.Fatal(err)
	}

	var buf bytes.Buffer
	result := Download(ts.Client(), []types.Reference{ref}, testPapersConfig(dir), &buf)

	if requests != 0 {
		t.Errorf("requests = %d, want 0 for skipped item", requests)
	}
	if result.Skipped != 1 || result.Downloaded != 0 {
		t.Errorf("result = %+v, want 1 skipped", result)
	}
	if !strings.Contains(buf.String(), "skipped:") {
		t.Errorf("missing skip line in output: %q", buf.String())
	}
}

func TestDownloadFailureContinues(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		if strings.Contains(r.URL.Path, "broken") {
			http.Error(w, "gone", http.StatusGone)
			return
		}
		fmt.Fprint(w, "%PDF-1.4")
	}))
	defer ts.Close()

	dir := t.TempDir()
	refs := []types.Reference{
		{RefNum: 1, ArxivID: "2101.00001", TitleAuthor: "Broken", PDFURL: ts.URL + "/broken.pdf"},
		{RefNum: 2, ArxivID: "2101.00002", TitleAuthor: "Fine", PDFURL: ts.URL + "/fine.pdf"},
	}

	var buf bytes.Buffer
	result := Download(ts.Client(), refs, testPapersConfig(dir), &buf)

	if result.Failed != 1 || result.Downloaded != 1 {
		t.Errorf("result = %+v, want 1 failed and 1 downloaded", result)
	}
	if _, err := os.Stat(filepath.Join(dir, "002_Fine_2101.00002.pdf")); err != nil {
		t.Errorf("second paper should still download: %v", err)
	}
	if !strings.Contains(buf.String(), "HTTP 410") {
		t.Errorf("failure line should carry the status: %q", buf.String())
	}
}

func TestRun(t *testing.T) {
	mux := http.NewServeMux()
	ts := httptest.NewServer(mux)
	defer ts.Close()

	origBase := arxivPDFBase
	arxivPDFBase = ts.URL + "/pdf/"
	defer func() { arxivPDFBase = origBase }()

	page := `<html><body>
<h2>References</h2>
<ol>
  <li>[Attention Is All You Need] Vaswani et al. <a href="https://arxiv.org/abs/1706.03762">link</a></li>
  <li>[Attention Is All You Need] duplicate <a href="https://arxiv.org/abs/1706.03762">link</a></li>
</ol>
</body></html>`

	mux.HandleFunc("/course/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, page)
	})
	mux.HandleFunc("/pdf/", func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, "%PDF-1.4")
	})

	profile := site.DefaultProfile()
	profile.URL = ts.URL + "/course/"
	dir := t.TempDir()

	var buf bytes.Buffer
	if err := Run(ts.Client(), profile, testPapersConfig(dir), &buf); err != nil {
		t.Fatalf("Run: %v", err)
	}

	// Duplicate arXiv ID collapses to the first reference.
	if !strings.Contains(buf.String(), "Found 1 unique papers to download") {
		t.Errorf("missing dedupe line in output: %q", buf.String())
	}
	if _, err := os.Stat(filepath.Join(dir, "001_Attention_Is_All_You_Need_1706.03762.pdf")); err != nil {
		t.Errorf("missing downloaded paper: %v", err)
	}
}

func TestRunNoReferencesSection(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		fmt.Fprint(w, `<html><body><h2>Schedule</h2></body></html>`)
	}))
	defer ts.Close()

	profile := site.DefaultProfile()
	profile.URL = ts.URL + "/"

	var buf bytes.Buffer
	if err := Run(ts.Client(), profile, testPapersConfig(t.TempDir()), &buf); err != nil {
		t.Fatalf("Run: %v", err)
	}
	if !strings.Contains(buf.String(), "References section not found") {
		t.Errorf("missing not-found message: %q", buf.String())
	}
}

func TestRunPageFetchFailureIsFatal(t *testing.T) {
	ts := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		http.Error(w, "down", http.StatusBadGateway)
	}))
	defer ts.Close()

	profile := site.DefaultProfile()
	profile.URL = ts.URL + "/"

	err := Run(ts.Client(), profile, testPapersConfig(t.TempDir()), &bytes.Buffer{})
	if err == nil {
		t.Fatal("expected error when course page fetch fails")
	}
}
