package tokenizer

import "errors"

// ErrNotTrained is returned by Transform when a tokenizer that requires
// training has not been fitted yet.
var ErrNotTrained = errors.New("tokenizer has not been fitted")

// Tokenizer learns a vocabulary from a corpus and segments text with it.
//
// Fit consumes an ordered collection of documents and replaces any
// previously learned state. Transform segments text into tokens drawn from
// the learned vocabulary; characters that cannot be represented are
// dropped from the output, not reported as errors.
type Tokenizer interface {
	Fit(corpus []string) error
	Transform(text string) ([]string, error)
	Symbols() []string
}

// Equal reports whether two tokenizers recognize the same vocabulary.
// Tokenizers with equal symbol sets are interchangeable regardless of how
// the sets were learned.
func Equal(a, b Tokenizer) bool {
	as, bs := a.Symbols(), b.Symbols()
	if len(as) != len(bs) {
		return false
	}
	set := make(map[string]struct{}, len(as))
	for _, s := range as {
		set[s] = struct{}{}
	}
	for _, s := range bs {
		if _, ok := set[s]; !ok {
			return false
		}
	}
	return true
}
