package types

import "time"

// HTTPConfig holds shared HTTP settings used by both pipelines.
type HTTPConfig struct {
	// Timeout is the HTTP request timeout.
	Timeout time.Duration `json:"timeout" yaml:"timeout"`

	// UserAgent is the User-Agent header sent with HTTP requests
	// (e.g. "course-fetch/0.1").
	UserAgent string `json:"user_agent" yaml:"user_agent"`
}

// SlidesConfig holds settings for the slide pipeline.
type SlidesConfig struct {
	HTTPConfig `yaml:",inline"`

	// OutDir is the directory slide decks and materials archives are
	// written to (default "adl-slides").
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// DownloadDelay is the pause after each successful fetch (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`
}

// PapersConfig holds settings for the paper pipeline.
type PapersConfig struct {
	HTTPConfig `yaml:",inline"`

	// OutDir is the directory paper PDFs are written to (default "adl-papers").
	OutDir string `json:"out_dir" yaml:"out_dir"`

	// DownloadDelay is the pause after each successful fetch (default 1s).
	DownloadDelay time.Duration `json:"download_delay" yaml:"download_delay"`
}
