// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package main

import (
	"os"
	"time"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/course-fetch/internal/httputil"
	"github.com/pdiddy/course-fetch/internal/papers"
	"github.com/pdiddy/course-fetch/internal/secrets"
	"github.com/pdiddy/course-fetch/internal/site"
	"github.com/pdiddy/course-fetch/internal/slides"
	"github.com/pdiddy/course-fetch/pkg/types"
)

const (
	defaultTimeout   = 60 * time.Second
	defaultDelay     = 1 * time.Second
	defaultUserAgent = "course-fetch/0.1"

	defaultSlidesDir = "adl-slides"
	defaultPapersDir = "adl-papers"
)

// stringSetting resolves a string option: the flag when set, then the
// config file / environment, then the built-in default.
func stringSetting(cmd *cobra.Command, flag, key, fallback string) string {
	if v, _ := cmd.Flags().GetString(flag); v != "" {
		return v
	}
	if v := viper.GetString(key); v != "" {
		return v
	}
	return fallback
}

// durationSetting resolves a duration option the same way.
func durationSetting(cmd *cobra.Command, flag, key string, fallback time.Duration) time.Duration {
	if v, _ := cmd.Flags().GetDuration(flag); v != 0 {
		return v
	}
	if v := viper.GetDuration(key); v != 0 {
		return v
	}
	return fallback
}

func runFetch(cmd *cobra.Command, args []string) error {
	wantSlides, _ := cmd.Flags().GetBool("slides")
	wantPapers, _ := cmd.Flags().GetBool("papers")
	if !wantSlides && !wantPapers {
		wantSlides = true
		wantPapers = true
	}

	profile := site.DefaultProfile()
	if path := stringSetting(cmd, "course", "course", ""); path != "" {
		p, err := site.LoadProfile(path)
		if err != nil {
			return err
		}
		profile = p
	}
	if u := viper.GetString("url"); u != "" && !cmd.Flags().Changed("course") {
		profile.URL = u
	}

	httpCfg := types.HTTPConfig{
		Timeout:   durationSetting(cmd, "timeout", "timeout", defaultTimeout),
		UserAgent: defaultUserAgent,
	}
	if ua := viper.GetString("user_agent"); ua != "" {
		httpCfg.UserAgent = ua
	}
	delay := durationSetting(cmd, "delay", "download_delay", defaultDelay)

	client := httputil.NewClient(httpCfg, secrets.Headers(loadedSecrets))
	w := os.Stdout

	if wantSlides {
		cfg := types.SlidesConfig{
			HTTPConfig:    httpCfg,
			OutDir:        stringSetting(cmd, "slides-dir", "slides_dir", defaultSlidesDir),
			DownloadDelay: delay,
		}
		if err := slides.Run(client, profile, cfg, w); err != nil {
			return err
		}
	}

	if wantPapers {
		cfg := types.PapersConfig{
			HTTPConfig:    httpCfg,
			OutDir:        stringSetting(cmd, "papers-dir", "papers_dir", defaultPapersDir),
			DownloadDelay: delay,
		}
		if err := papers.Run(client, profile, cfg, w); err != nil {
			return err
		}
	}

	return nil
}
