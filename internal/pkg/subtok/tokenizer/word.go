package tokenizer

import (
	"sort"

	"github.com/dlclark/regexp2"
)

func init() {
	Register("word", NewWord)
}

// boundary matches a single non-word character. Splitting on it while
// keeping the separators means the input can be rebuilt by concatenating
// the resulting tokens.
var boundary = regexp2.MustCompile(`\W`, regexp2.None)

// splitBoundaries splits text at word/punctuation boundaries, keeping
// each separator character as its own token. Empty fields between
// adjacent separators are dropped.
func splitBoundaries(text string) []string {
	runes := []rune(text)
	var tokens []string
	last := 0
	m, _ := boundary.FindRunesMatch(runes)
	for m != nil {
		if m.Index > last {
			tokens = append(tokens, string(runes[last:m.Index]))
		}
		tokens = append(tokens, m.String())
		last = m.Index + m.Length
		m, _ = boundary.FindNextMatch(m)
	}
	if last < len(runes) {
		tokens = append(tokens, string(runes[last:]))
	}
	return tokens
}

// Word splits text into words, keeping punctuation and whitespace as
// individual tokens. Words occurring fewer than minFreq times are not
// retained in the vocabulary and decompose into characters at transform
// time.
type Word struct {
	numSymbols int
	minFreq    int
	symbols    map[string]struct{}
}

func NewWord(cfg Config) (Tokenizer, error) {
	if err := cfg.validate(); err != nil {
		return nil, err
	}
	return &Word{numSymbols: cfg.NumSymbols, minFreq: cfg.MinFreq}, nil
}

// Fit counts word tokens across the corpus and retains the most frequent
// ones up to the vocabulary budget. Every character seen in the corpus is
// always retained. Among equally frequent tokens the lexicographically
// smaller one is preferred, keeping training deterministic.
func (t *Word) Fit(corpus []string) error {
	symbols := corpusRunes(corpus)

	counts := make(map[string]int)
	for _, doc := range corpus {
		for _, token := range splitBoundaries(doc) {
			counts[token]++
		}
	}

	type tokenCount struct {
		token string
		count int
	}
	frequent := make([]tokenCount, 0, len(counts))
	for token, count := range counts {
		if count < t.minFreq {
			continue
		}
		if _, seen := symbols[token]; seen {
			continue
		}
		frequent = append(frequent, tokenCount{token, count})
	}
	sort.Slice(frequent, func(i, j int) bool {
		if frequent[i].count != frequent[j].count {
			return frequent[i].count > frequent[j].count
		}
		return frequent[i].token < frequent[j].token
	})

	free := t.numSymbols - len(symbols)
	for i := 0; i < len(frequent) && i < free; i++ {
		symbols[frequent[i].token] = struct{}{}
	}

	t.symbols = symbols
	return nil
}

// Transform splits text at word boundaries and emits each token that is
// in the vocabulary. Unknown tokens are broken into their characters;
// characters never seen during training are dropped.
func (t *Word) Transform(text string) ([]string, error) {
	if t.symbols == nil {
		return nil, ErrNotTrained
	}
	result := []string{}
	for _, token := range splitBoundaries(text) {
		if _, ok := t.symbols[token]; ok {
			result = append(result, token)
			continue
		}
		for _, r := range token {
			if _, ok := t.symbols[string(r)]; ok {
				result = append(result, string(r))
			}
		}
	}
	return result, nil
}

func (t *Word) Symbols() []string {
	if t.symbols == nil {
		return nil
	}
	out := make([]string, 0, len(t.symbols))
	for symbol := range t.symbols {
		out = append(out, symbol)
	}
	sort.Strings(out)
	return out
}
