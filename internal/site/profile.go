// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package site

import (
	"fmt"
	"os"

	"go.yaml.in/yaml/v3"
)

// Profile describes the structure of a course page: where it lives, the
// order of its main sections, and the link markers that identify slide
// decks, materials archives, and the references heading. A profile can
// be saved to a file and reused for other courses with the same layout.
type Profile struct {
	// URL is the course page URL. Slide links must live under it for the
	// primary discovery path.
	URL string `yaml:"url"`

	// Sections lists the main section headings in their expected order.
	Sections []string `yaml:"sections"`

	// SlidesMarker is the path suffix identifying a slide deck link.
	SlidesMarker string `yaml:"slides_marker"`

	// MaterialsMarker is the path suffix of the optional materials
	// archive colocated with a slide deck.
	MaterialsMarker string `yaml:"materials_marker"`

	// ReferencesHeading is the heading text of the cited-papers section.
	ReferencesHeading string `yaml:"references_heading"`
}

// DefaultProfile returns the profile for the Advances in Deep Learning
// course page.
func DefaultProfile() Profile {
	return Profile{
		URL: "https://ut.philkr.net/advances_in_deeplearning/",
		Sections: []string{
			"Getting Started",
			"Introduction",
			"Advanced Training",
			"Generative Models",
			"Large Language Models",
			"Computer Vision",
		},
		SlidesMarker:      "slides.pdf",
		MaterialsMarker:   "materials.zip",
		ReferencesHeading: "References",
	}
}

// LoadProfile reads a course profile from a YAML file. Fields left empty
// in the file fall back to the default profile, so a minimal file can
// override just the URL.
func LoadProfile(path string) (Profile, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return Profile{}, fmt.Errorf("reading course profile: %w", err)
	}
	p := DefaultProfile()
	if err := yaml.Unmarshal(data, &p); err != nil {
		return Profile{}, fmt.Errorf("parsing course profile %s: %w", path, err)
	}
	if p.URL == "" {
		return Profile{}, fmt.Errorf("course profile %s has no url", path)
	}
	return p, nil
}

// WriteProfile saves a course profile to a YAML file.
func WriteProfile(path string, p Profile) error {
	data, err := yaml.Marshal(&p)
	if err != nil {
		return fmt.Errorf("marshaling course profile: %w", err)
	}
	return os.WriteFile(path, data, 0o644)
}
