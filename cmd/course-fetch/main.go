// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

// Package main is the entry point for the course-fetch CLI.
package main

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/pdiddy/course-fetch/internal/secrets"
)

// version is set at build time via ldflags.
var version = "dev"

// loadedSecrets holds access credentials loaded from .secrets/ at startup.
var loadedSecrets map[string]string

// rootCmd is the base command for the course-fetch CLI. Running it with
// no selection flags downloads both slides and papers.
var rootCmd = &cobra.Command{
	Use:   "course-fetch",
	Short: "Download lecture slides and referenced papers from a course page",
	Long: `course-fetch scrapes a course webpage for lecture slide decks and the
arXiv papers cited in its references section, then downloads each into a
local directory. Files already present are skipped, so re-running resumes
where the last run left off.

With no selection flags both pipelines run; --slides or --papers restricts
the run to one of them.`,
	RunE: runFetch,
	PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
		s, err := secrets.Load(".secrets/")
		if err != nil {
			return err
		}
		loadedSecrets = s
		if len(s) > 0 {
			fmt.Fprintf(os.Stderr, "Loaded %d access credential(s)\n", len(s))
		}
		return nil
	},
}

func init() {
	cobra.OnInitialize(initConfig)

	rootCmd.PersistentFlags().String("config", "", "config file (default: ./course-fetch.yaml or ~/.config/course-fetch/config.yaml)")

	rootCmd.Flags().Bool("slides", false, "download lecture slides")
	rootCmd.Flags().Bool("papers", false, "download referenced papers")
	rootCmd.Flags().String("slides-dir", "", "directory for slides (default adl-slides)")
	rootCmd.Flags().String("papers-dir", "", "directory for papers (default adl-papers)")
	rootCmd.Flags().String("course", "", "course profile YAML file (default: built-in profile)")
	rootCmd.Flags().Duration("timeout", 0, "HTTP request timeout (default 60s)")
	rootCmd.Flags().Duration("delay", 0, "pause after each successful download (default 1s)")
}

func initConfig() {
	cfgFile, _ := rootCmd.PersistentFlags().GetString("config")
	if cfgFile != "" {
		viper.SetConfigFile(cfgFile)
	} else {
		viper.SetConfigName("course-fetch")
		viper.SetConfigType("yaml")
		viper.AddConfigPath(".")

		home, err := os.UserHomeDir()
		if err == nil {
			viper.AddConfigPath(filepath.Join(home, ".config", "course-fetch"))
		}
	}

	viper.SetEnvPrefix("COURSE_FETCH")
	viper.AutomaticEnv()

	if err := viper.ReadInConfig(); err == nil {
		fmt.Fprintln(os.Stderr, "Using config file:", viper.ConfigFileUsed())
	}
}

func main() {
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}
