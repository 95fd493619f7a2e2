package tokenizer

import (
	"sort"
	"strings"
	"unicode/utf8"
)

// matcher is an immutable longest-match recognizer compiled from a symbol
// set. It must be recompiled whenever the symbol set changes; a stale
// matcher is a correctness bug.
//
// Candidates are bucketed by their leading rune and kept sorted by rune
// length descending, then lexicographically ascending. The first prefix
// match in a bucket is therefore the longest, and among equal-length
// candidates the lexicographically smallest wins, which pins the
// tie-break independent of insertion order.
type matcher struct {
	buckets map[rune][]string
}

func compileMatcher(symbols map[string]struct{}) *matcher {
	m := &matcher{buckets: make(map[rune][]string)}
	for s := range symbols {
		if s == "" {
			continue
		}
		lead, _ := utf8.DecodeRuneInString(s)
		m.buckets[lead] = append(m.buckets[lead], s)
	}
	for lead, candidates := range m.buckets {
		sort.Slice(candidates, func(i, j int) bool {
			li, lj := utf8.RuneCountInString(candidates[i]), utf8.RuneCountInString(candidates[j])
			if li != lj {
				return li > lj
			}
			return candidates[i] < candidates[j]
		})
		m.buckets[lead] = candidates
	}
	return m
}

// match returns the longest symbol that is a prefix of text, or false if
// no symbol matches at this position.
func (m *matcher) match(text string) (string, bool) {
	if text == "" {
		return "", false
	}
	lead, _ := utf8.DecodeRuneInString(text)
	for _, candidate := range m.buckets[lead] {
		if strings.HasPrefix(text, candidate) {
			return candidate, true
		}
	}
	return "", false
}
