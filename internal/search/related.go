package search

import (
	"regexp"
	"sort"
	"strings"

	"github.com/tbourn/go-soft-portal/internal/domain"
)

// Result is a related entry with its similarity score.
type Result struct {
	Software domain.Software `json:"software"`
	Score    float64         `json:"score"`
}

// Option configures Related.
type Option func(*config)

type config struct {
	stopwords     map[string]struct{}
	minScore      float64
	sameCategory  float64
	includeDetail bool
}

func defaultConfig() config {
	return config{
		stopwords:    toSet(defaultStopwords),
		minScore:     0,
		sameCategory: 0.1,
	}
}

var defaultStopwords = []string{
	"a", "an", "and", "for", "of", "the", "to", "with", "your", "you", "is", "in", "on", "it",
}

// WithStopwords replaces the default stop-word list. A nil or empty list
// disables stop-word removal.
func WithStopwords(words []string) Option {
	return func(c *config) {
		c.stopwords = toSet(words)
	}
}

// WithMinScore drops candidates scoring at or below s.
func WithMinScore(s float64) Option {
	return func(c *config) {
		if s >= 0 {
			c.minScore = s
		}
	}
}

// WithCategoryBoost sets the bonus added when a candidate shares the
// target's category.
func WithCategoryBoost(b float64) Option {
	return func(c *config) {
		if b >= 0 {
			c.sameCategory = b
		}
	}
}

// WithDetailedDescription also tokenizes the long description.
func WithDetailedDescription() Option {
	return func(c *config) { c.includeDetail = true }
}

// Related ranks the other entries by Jaccard similarity between their token
// set and target's: |A ∩ B| / |A ∪ B|, plus a bonus for a shared category.
// At most k results are returned (k <= 0 means 3). Ties break on higher
// downloads, then on name.
func Related(entries []domain.Software, target domain.Software, k int, opts ...Option) []Result {
	cfg := defaultConfig()
	for _, o := range opts {
		o(&cfg)
	}
	if k <= 0 {
		k = 3
	}
	tTokens := cfg.tokens(target)
	if len(tTokens) == 0 {
		return nil
	}

	buf := make([]Result, 0, len(entries))
	for _, e := range entries {
		if e.ID == target.ID {
			continue
		}
		eTokens := cfg.tokens(e)
		over := overlap(tTokens, eTokens)
		score := 0.0
		if union := len(tTokens) + len(eTokens) - over; union > 0 {
			score = float64(over) / float64(union)
		}
		if target.Category != "" && e.Category == target.Category {
			score += cfg.sameCategory
		}
		if score <= cfg.minScore {
			continue
		}
		buf = append(buf, Result{Software: e, Score: score})
	}

	sort.SliceStable(buf, func(a, b int) bool {
		if buf[a].Score != buf[b].Score {
			return buf[a].Score > buf[b].Score
		}
		if buf[a].Software.Downloads != buf[b].Software.Downloads {
			return buf[a].Software.Downloads > buf[b].Software.Downloads
		}
		return buf[a].Software.Name < buf[b].Software.Name
	})
	if k > len(buf) {
		k = len(buf)
	}
	return buf[:k]
}

func (c config) tokens(s domain.Software) map[string]struct{} {
	text := s.Name + " " + s.Description
	if c.includeDetail {
		text += " " + s.DetailedDescription
	}
	return tokenize(text, c.stopwords)
}

var wordRE = regexp.MustCompile(`\p{L}+\p{N}*|\p{N}+`)

func tokenize(s string, stop map[string]struct{}) map[string]struct{} {
	words := wordRE.FindAllString(strings.ToLower(s), -1)
	if len(words) == 0 {
		return nil
	}
	out := make(map[string]struct{}, len(words))
	for _, w := range words {
		if _, skip := stop[w]; skip {
			continue
		}
		out[w] = struct{}{}
	}
	return out
}

func overlap(a, b map[string]struct{}) int {
	if len(a) == 0 || len(b) == 0 {
		return 0
	}
	if len(a) > len(b) {
		a, b = b, a
	}
	n := 0
	for k := range a {
		if _, ok := b[k]; ok {
			n++
		}
	}
	return n
}

func toSet(words []string) map[string]struct{} {
	m := make(map[string]struct{}, len(words))
	for _, w := range words {
		w = strings.ToLower(strings.TrimSpace(w))
		if w != "" {
			m[w] = struct{}{}
		}
	}
	if len(m) == 0 {
		return nil
	}
	return m
}
