// Copyright Mesh Intelligence Inc., 2026. All rights reserved.

package types

// Reference holds one cited paper discovered in the references section.
// References are deduplicated by ArxivID, keeping the first occurrence
// in reference-number order.
type Reference struct {
	// RefNum is the reference number in document order (1-based).
	RefNum int `json:"ref_num" yaml:"ref_num"`

	// ArxivID is the YYMM.NNNNN-style arXiv identifier.
	ArxivID string `json:"arxiv_id" yaml:"arxiv_id"`

	// TitleAuthor is the heuristically cleaned title/author text of the
	// reference entry.
	TitleAuthor string `json:"title_author" yaml:"title_author"`

	// PDFURL is the canonical arXiv PDF URL for the paper.
	PDFURL string `json:"pdf_url" yaml:"pdf_url"`
}
