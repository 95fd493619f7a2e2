package tokenizer

import (
	"unicode"
	"unicode/utf8"

	"github.com/sourcegraph/conc/iter"
)

func init() {
	Register("bpe", NewBPE)
}

// BPE learns a subword vocabulary with byte-pair-encoding style training:
// starting from single characters, the most frequent adjacent symbol pair
// is repeatedly merged into a composite symbol until the vocabulary budget
// or the frequency floor is hit, after which composite symbols that became
// rare are pruned and the loop resumes until a fixed point.
type BPE struct {
	subword
	numSymbols int
	minFreq    int
	crossWords bool
}

func NewBPE(cfg Config) (Tokenizer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &BPE{
		numSymbols: cfg.NumSymbols,
		minFreq:    cfg.MinFreq,
		crossWords: cfg.CrossWords,
	}, nil
}

func isWordRune(r rune) bool {
	return r == '_' || unicode.IsLetter(r) || unicode.IsDigit(r)
}

func isComposite(s string) bool {
	return utf8.RuneCountInString(s) > 1
}

// mergeable reports whether a symbol may take part in a merge across its
// boundary: composites always can, single characters only if they belong
// to the word class (letter, digit or underscore).
func mergeable(s string) bool {
	if isComposite(s) {
		return true
	}
	r, _ := utf8.DecodeRuneInString(s)
	return isWordRune(r)
}

// validPair reports whether two adjacent symbols are allowed to merge.
// With crossWords enabled anything goes; otherwise merges must not splice
// a word character together with punctuation or whitespace.
func (t *BPE) validPair(s1, s2 string) bool {
	if t.crossWords {
		return true
	}
	return mergeable(s1) && mergeable(s2)
}

// pairFreqs computes adjacent-pair statistics over the whole corpus in a
// single pass. Documents are independent here, so they are counted in
// parallel and the per-document tables summed.
func (t *BPE) pairFreqs(docs []*symbolList) pairTable {
	perDoc := iter.Map(docs, func(doc **symbolList) pairTable {
		stats := make(pairTable)
		for n := (*doc).head; n != nil; n = n.next {
			if n.next != nil && t.validPair(n.value, n.next.value) {
				stats[symbolPair{n.value, n.next.value}]++
			}
		}
		return stats
	})
	total := make(pairTable)
	for _, stats := range perDoc {
		total.merge(stats)
	}
	return total
}

// mergeSymbols merges every occurrence of (left, right) in the corpus into
// one composite symbol, updating the pair table incrementally: each merge
// site only touches the counts involving its immediate neighbors, so the
// cost is proportional to the number of occurrences, not the corpus size.
func (t *BPE) mergeSymbols(docs []*symbolList, freqs pairTable, left, right string) {
	merged := left + right
	t.addSymbol(merged)

	for _, doc := range docs {
		for n := doc.head; n != nil; n = n.next {
			if n.value != left || n.next == nil || n.next.value != right {
				continue
			}
			doc.mergeWithNext(n)
			if n.prev != nil && t.validPair(n.prev.value, merged) {
				freqs.add(symbolPair{n.prev.value, merged}, 1)
				freqs.add(symbolPair{n.prev.value, left}, -1)
			}
			if n.next != nil && t.validPair(merged, n.next.value) {
				freqs.add(symbolPair{merged, n.next.value}, 1)
				freqs.add(symbolPair{right, n.next.value}, -1)
			}
		}
	}

	// The merged pair can no longer occur anywhere.
	delete(freqs, symbolPair{left, right})
}

// mergingRun performs merges until the vocabulary budget is reached or the
// most frequent remaining pair falls below the frequency floor.
func (t *BPE) mergingRun(docs []*symbolList, freqs pairTable) {
	for len(t.symbols) < t.numSymbols {
		pair, count, ok := freqs.max()
		if !ok || count < t.minFreq {
			return
		}
		t.mergeSymbols(docs, freqs, pair.left, pair.right)
	}
}

// prune drops composite symbols whose occurrence count over the merged
// corpus fell below the frequency floor; their occurrences were absorbed
// into larger symbols during later merges. Single-character symbols are
// never pruned, which preserves full character coverage. Returns the
// number of symbols removed.
func (t *BPE) prune(docs []*symbolList) int {
	perDoc := iter.Map(docs, func(doc **symbolList) map[string]int {
		counts := make(map[string]int)
		for n := (*doc).head; n != nil; n = n.next {
			counts[n.value]++
		}
		return counts
	})
	counts := make(map[string]int)
	for _, c := range perDoc {
		for symbol, n := range c {
			counts[symbol] += n
		}
	}

	removed := 0
	for symbol := range t.symbols {
		if isComposite(symbol) && counts[symbol] < t.minFreq {
			delete(t.symbols, symbol)
			removed++
		}
	}
	if removed > 0 {
		t.detector = nil
	}
	return removed
}

// Fit trains the vocabulary on the corpus, discarding any prior state.
// Merge runs and prune passes alternate until a prune removes nothing,
// then the matcher is compiled over the final symbol set.
func (t *BPE) Fit(corpus []string) error {
	docs := make([]*symbolList, len(corpus))
	for i, doc := range corpus {
		docs[i] = newSymbolList(doc)
	}
	t.setSymbols(corpusRunes(corpus))

	freqs := t.pairFreqs(docs)
	for {
		t.mergingRun(docs, freqs)
		if t.prune(docs) == 0 {
			break
		}
	}

	t.compile()
	return nil
}
