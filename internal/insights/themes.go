package insights

import (
	"sort"
	"strings"

	"github.com/bbalet/stopwords"
)

const (
	themeTopK    = 3
	minTokenLen  = 4
	themeDefault = "general topics"
)

// ExtractTheme summarizes a label's texts as a comma-separated phrase of its
// most frequent meaningful tokens. Tokens are lowercased, stripped of
// English stop-words, and filtered against extraStops (brand tokens and
// filler) plus a minimum length. When nothing survives filtering the
// sentinel phrase "general topics" is returned.
func ExtractTheme(texts []string, extraStops []string) string {
	if len(texts) == 0 {
		return themeDefault
	}

	blocked := make(map[string]struct{}, len(extraStops))
	for _, s := range extraStops {
		blocked[strings.ToLower(s)] = struct{}{}
	}

	joined := strings.ToLower(strings.Join(texts, " "))
	cleaned := stopwords.CleanString(joined, "en", false)

	counts := make(map[string]int)
	var order []string // first-seen order, the deterministic tie-break

	for _, token := range strings.Fields(cleaned) {
		token = strings.Trim(token, ".,!?:;\"'()[]")
		if len(token) < minTokenLen {
			continue
		}
		if _, ok := blocked[token]; ok {
			continue
		}
		if counts[token] == 0 {
			order = append(order, token)
		}
		counts[token]++
	}

	if len(order) == 0 {
		return themeDefault
	}

	// Stable sort on a first-seen-ordered slice: equal counts keep their
	// order of first appearance.
	sort.SliceStable(order, func(i, j int) bool {
		return counts[order[i]] > counts[order[j]]
	})

	if len(order) > themeTopK {
		order = order[:themeTopK]
	}

	return strings.Join(order, ", ")
}
