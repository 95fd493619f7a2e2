package tokenizer

import (
	"sort"
	"unicode/utf8"
)

// subword is the shared core of the subword tokenizer variants. It owns
// the symbol set and the compiled matcher and implements greedy
// longest-match segmentation. Variants supply Fit; until Fit has run the
// symbol set is nil and Transform fails with ErrNotTrained.
type subword struct {
	symbols  map[string]struct{}
	detector *matcher
}

// setSymbols installs a new symbol set and invalidates any previously
// compiled matcher.
func (s *subword) setSymbols(symbols map[string]struct{}) {
	s.symbols = symbols
	s.detector = nil
}

func (s *subword) addSymbol(symbol string) {
	s.symbols[symbol] = struct{}{}
	s.detector = nil
}

// compile builds the longest-match detector for the current symbol set.
func (s *subword) compile() {
	s.detector = compileMatcher(s.symbols)
}

// Transform segments text greedily, preferring the longest recognized
// symbol at each position. A position where no symbol matches is skipped:
// the rune there is dropped from the output and the scan advances by one
// rune. This is deliberate lossy behavior, not an error.
func (s *subword) Transform(text string) ([]string, error) {
	if s.symbols == nil {
		return nil, ErrNotTrained
	}
	if s.detector == nil {
		s.compile()
	}
	tokens := []string{}
	for i := 0; i < len(text); {
		symbol, ok := s.detector.match(text[i:])
		if !ok {
			_, size := utf8.DecodeRuneInString(text[i:])
			i += size
			continue
		}
		tokens = append(tokens, symbol)
		i += len(symbol)
	}
	return tokens, nil
}

// Symbols returns the learned vocabulary in sorted order, or nil if the
// tokenizer has not been fitted.
func (s *subword) Symbols() []string {
	if s.symbols == nil {
		return nil
	}
	out := make([]string, 0, len(s.symbols))
	for symbol := range s.symbols {
		out = append(out, symbol)
	}
	sort.Strings(out)
	return out
}

// corpusRunes collects the distinct runes of a corpus as singleton
// symbols. Every tokenizer vocabulary starts from this set, which
// guarantees that any character seen during training stays representable.
func corpusRunes(corpus []string) map[string]struct{} {
	symbols := make(map[string]struct{})
	for _, doc := range corpus {
		for _, r := range doc {
			symbols[string(r)] = struct{}{}
		}
	}
	return symbols
}
