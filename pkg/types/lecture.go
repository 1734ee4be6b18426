// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Lecture holds the links discovered for one lecture on the course page.
// A lecture's identity is its 1-based position in discovery order; the
// download pass numbers filenames from that position.
type Lecture struct {
	// Name is the lecture name derived from the URL path segment
	// (underscores replaced with spaces, title-cased).
	Name string `json:"name" yaml:"name"`

	// Module is the module path segment the lecture belongs to.
	// Empty when the URL carries no module segment.
	Module string `json:"module,omitempty" yaml:"module,omitempty"`

	// SlidesURL is the absolute URL of the slide deck PDF.
	SlidesURL string `json:"slides_url" yaml:"slides_url"`

	// MaterialsURL is the absolute URL of the optional materials
	// archive. Empty when the existence probe found none.
	MaterialsURL string `json:"materials_url,omitempty" yaml:"materials_url,omitempty"`
}

// HasMaterials reports whether a materials archive was found for the lecture.
func (l Lecture) HasMaterials() bool { return l.MaterialsURL != "" }
