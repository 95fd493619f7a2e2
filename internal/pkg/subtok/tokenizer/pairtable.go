package tokenizer

// symbolPair is an ordered pair of adjacent symbols.
type symbolPair struct {
	left  string
	right string
}

// pairTable tracks how often each valid symbol pair occurs adjacently
// across the corpus. Between merge steps the counts are exact; entries
// that drop to zero or below are evicted immediately so a dead pair can
// never be selected as a merge target.
type pairTable map[symbolPair]int

func (t pairTable) add(p symbolPair, delta int) {
	n := t[p] + delta
	if n <= 0 {
		delete(t, p)
		return
	}
	t[p] = n
}

// merge folds the counts of another table into this one, used to combine
// per-document statistics.
func (t pairTable) merge(other pairTable) {
	for p, n := range other {
		t.add(p, n)
	}
}

// max returns the pair with the highest count. Ties are broken by the
// lexicographically smallest pair (left symbol first, then right) so that
// training is reproducible across runs and map iteration orders.
func (t pairTable) max() (symbolPair, int, bool) {
	var best symbolPair
	bestCount := 0
	found := false
	for p, n := range t {
		switch {
		case !found || n > bestCount:
			best, bestCount, found = p, n, true
		case n == bestCount && (p.left < best.left || (p.left == best.left && p.right < best.right)):
			best = p
		}
	}
	return best, bestCount, found
}
