package models

// AdjudicationResult is the contextual second opinion returned by an
// adjudication backend. Label is one of the sentiment constants and
// Polarity lies in [-1, 1].
type AdjudicationResult struct {
	Label    string  `json:"sentiment"`
	Polarity float64 `json:"polarity"`
}
