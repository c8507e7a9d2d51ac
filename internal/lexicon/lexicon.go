// Package lexicon holds the immutable keyword and pattern tables that drive
// every classifier: entity patterns, escalation triggers, emotion and
// category cues, and the fixed topic vocabulary. Tables are built once at
// construction and shared read-only across workers.
package lexicon

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/spacesedan/brandpulse/internal/models"
)

// EntityPatterns is one brand's ordered pattern set: typically the canonical
// name with optional whitespace, the no-space concatenation, and the
// at-mention form.
type EntityPatterns struct {
	Key      string
	Patterns []string
}

type entity struct {
	key string
	// All patterns compiled into one ordered alternation: scanning is
	// leftmost-first, so the canonical form consumes a mention before the
	// shorter abbreviated forms can double count it.
	re *regexp.Regexp
}

// Lexicon resolves brand mentions in free text. It is stateless after
// construction and safe for concurrent use.
type Lexicon struct {
	brand    string
	entities []entity
	byKey    map[string]*entity
}

// New compiles the given pattern sets. brand must be one of the entity keys;
// it names the brand of interest whose mention count feeds the virality
// boost and the insight filters.
func New(brand string, sets []EntityPatterns) (*Lexicon, error) {
	l := &Lexicon{
		brand: brand,
		byKey: make(map[string]*entity, len(sets)),
	}

	for _, set := range sets {
		if len(set.Patterns) == 0 {
			return nil, fmt.Errorf("lexicon: entity %q has no patterns", set.Key)
		}
		combined := "(?i)(?:" + strings.Join(set.Patterns, "|") + ")"
		re, err := regexp.Compile(combined)
		if err != nil {
			return nil, fmt.Errorf("lexicon: bad pattern set for entity %q: %w", set.Key, err)
		}
		l.entities = append(l.entities, entity{key: set.Key, re: re})
	}
	for i := range l.entities {
		l.byKey[l.entities[i].key] = &l.entities[i]
	}

	if _, ok := l.byKey[brand]; !ok {
		return nil, fmt.Errorf("lexicon: brand %q has no pattern set", brand)
	}

	return l, nil
}

// Default returns the stock banking lexicon with prime_bank as the brand of
// interest.
func Default() *Lexicon {
	l, err := New(DefaultBrand, DefaultEntityPatterns)
	if err != nil {
		panic(err)
	}
	return l
}

// Brand returns the brand-of-interest key.
func (l *Lexicon) Brand() string { return l.brand }

// Entities returns the known entity keys in declaration order.
func (l *Lexicon) Entities() []string {
	keys := make([]string, 0, len(l.entities))
	for _, e := range l.entities {
		keys = append(keys, e.key)
	}
	return keys
}

// MentionCount counts how many times any of the entity's patterns match the
// text. Unknown entities and empty text count zero.
func (l *Lexicon) MentionCount(text, entityKey string) int {
	if strings.TrimSpace(text) == "" {
		return 0
	}
	e, ok := l.byKey[entityKey]
	if !ok {
		return 0
	}

	return len(e.re.FindAllStringIndex(text, -1))
}

// BrandMentions counts mentions of the brand of interest.
func (l *Lexicon) BrandMentions(text string) int {
	return l.MentionCount(text, l.brand)
}

// IdentifyEntity reports which entity a text is about: "none" when no
// pattern set matches, the sole entity key when exactly one does, and
// "multiple" otherwise. The second return lists every matched entity in
// declaration order.
func (l *Lexicon) IdentifyEntity(text string) (string, []string) {
	if strings.TrimSpace(text) == "" {
		return models.EntityNone, nil
	}

	var matched []string
	for _, e := range l.entities {
		if e.re.MatchString(text) {
			matched = append(matched, e.key)
		}
	}

	switch len(matched) {
	case 0:
		return models.EntityNone, nil
	case 1:
		return matched[0], matched
	default:
		return models.EntityMultiple, matched
	}
}
