// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package download provides the shared pieces of both download passes:
// filename sanitization, skip-if-exists checks, and streaming a URL to
// disk through a temporary file.
package download

import (
	"fmt"
	"io"
	"net/http"
	"os"
	"path/filepath"
	"strings"

	"github.com/schollz/progressbar/v3"
)

// maxFilenameLen caps sanitized filenames.
const maxFilenameLen = 150

// illegalChars are characters stripped from filenames.
const illegalChars = `\/*?:"<>|`

// SanitizeFilename strips filesystem-illegal characters, replaces spaces
// with underscores, and truncates to 150 characters. Truncation counts
// runes, never splitting a multibyte character. It is idempotent.
func SanitizeFilename(name string) string {
	var b strings.Builder
	b.Grow(len(name))
	for _, r := range name {
		switch {
		case strings.ContainsRune(illegalChars, r):
		case r == ' ':
			b.WriteByte('_')
		default:
			b.WriteRune(r)
		}
	}
	sanitized := b.String()
	if runes := []rune(sanitized); len(runes) > maxFilenameLen {
		sanitized = string(runes[:maxFilenameLen])
	}
	return sanitized
}

// Exists reports whether a file with the given name is already present
// in dir.
func Exists(dir, name string) bool {
	_, err := os.Stat(filepath.Join(dir, name))
	return err == nil
}

// Fetch downloads url to destPath, streaming through a temporary file in
// the destination directory and renaming on success. A non-200 response
// is an error; the temp file never survives a failure.
func Fetch(client *http.Client, url, destPath string) error {
	resp, err := client.Get(url)
	if err != nil {
		return fmt.Errorf("HTTP request: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode != http.StatusOK {
		return fmt.Errorf("HTTP %d from %s", resp.StatusCode, url)
	}

	tmpFile, err := os.CreateTemp(filepath.Dir(destPath), ".fetch-*.tmp")
	if err != nil {
		return fmt.Errorf("creating temp file: %w", err)
	}
	tmpPath := tmpFile.Name()

	_, copyErr := io.Copy(tmpFile, resp.Body)
	closeErr := tmpFile.Close()
	if copyErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("writing download: %w", copyErr)
	}
	if closeErr != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("closing temp file: %w", closeErr)
	}

	if err := os.Rename(tmpPath, destPath); err != nil {
		os.Remove(tmpPath)
		return fmt.Errorf("renaming temp file: %w", err)
	}
	return nil
}

// NewProgressBar returns a progress bar for a batch of n downloads,
// rendered on w alongside the per-item status lines.
func NewProgressBar(w io.Writer, n int, description string) *progressbar.ProgressBar {
	return progressbar.NewOptions(n,
		progressbar.OptionSetWriter(w),
		progressbar.OptionSetDescription(description),
		progressbar.OptionShowCount(),
		progressbar.OptionOnCompletion(func() { fmt.Fprintln(w) }),
	)
}
