// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package download

// BatchResult holds the outcome of one download pass.
type BatchResult struct {
	Downloaded int
	Skipped    int
	Failed     int
}

// Total returns the total number of files processed.
func (r BatchResult) Total() int {
	return r.Downloaded + r.Skipped + r.Failed
}

// HasFailures reports whether any files failed to download.
func (r BatchResult) HasFailures() bool {
	return r.Failed > 0
}
