package models

import "strings"

// TextItem is one analyzable unit of social content: a post, a comment,
// or a review line. Engagement counters are optional and default to zero.
type TextItem struct {
	Text       string  `json:"text"`
	Likes      float64 `json:"likes,omitempty"`
	Shares     float64 `json:"shares,omitempty"`
	Comments   float64 `json:"comments,omitempty"`
	Location   string  `json:"location,omitempty"`
	Link       string  `json:"link,omitempty"`
	SourceFile string  `json:"source_file,omitempty"`
}

func (t TextItem) IsEmpty() bool {
	return strings.TrimSpace(t.Text) == ""
}
