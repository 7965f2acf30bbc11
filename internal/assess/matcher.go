package assess

import (
	"regexp"

	"github.com/havenline/crisiscore/internal/config"
)

// keywordMatcher is one precompiled whole-word matcher. Keywords are
// user-supplied configuration, so regex metacharacters are escaped and the
// pattern is anchored on word boundaries: "the" must not fire inside
// "therapist", "ass" must not fire inside "assignment".
type keywordMatcher struct {
	word string
	re   *regexp.Regexp
}

// comboMatcher detects a dangerous word pair. Both words must independently
// whole-word-match the text.
type comboMatcher struct {
	first, second keywordMatcher
}

// matcherSet holds every matcher derived from one configuration snapshot.
// Built once per snapshot so assessment never compiles regexes per call.
type matcherSet struct {
	critical []keywordMatcher
	high     []keywordMatcher
	moderate []keywordMatcher
	urgency  []keywordMatcher
	combos   []comboMatcher
}

func compileKeyword(word string) (keywordMatcher, bool) {
	if word == "" {
		return keywordMatcher{}, false
	}
	re, err := regexp.Compile(`(?i)\b` + regexp.QuoteMeta(word) + `\b`)
	if err != nil {
		// QuoteMeta makes this unreachable for any non-empty word, but a
		// malformed override must not take the scorer down.
		return keywordMatcher{}, false
	}
	return keywordMatcher{word: word, re: re}, true
}

func compileList(words []string) []keywordMatcher {
	out := make([]keywordMatcher, 0, len(words))
	for _, w := range words {
		if m, ok := compileKeyword(w); ok {
			out = append(out, m)
		}
	}
	return out
}

// buildMatcherSet compiles all keyword and combination matchers for cfg.
func buildMatcherSet(cfg *config.Config) *matcherSet {
	ms := &matcherSet{
		critical: compileList(cfg.Keywords.Critical),
		high:     compileList(cfg.Keywords.High),
		moderate: compileList(cfg.Keywords.Moderate),
		urgency:  compileList(cfg.Keywords.Urgency),
	}
	for _, combo := range cfg.Combinations {
		first, ok1 := compileKeyword(combo.First)
		second, ok2 := compileKeyword(combo.Second)
		if ok1 && ok2 {
			ms.combos = append(ms.combos, comboMatcher{first: first, second: second})
		}
	}
	return ms
}

func (m keywordMatcher) matches(text string) bool {
	return m.re.MatchString(text)
}
