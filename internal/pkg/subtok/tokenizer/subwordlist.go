package tokenizer

func init() {
	Register("subwords", NewSubwordList)
}

// SubwordList is a subword tokenizer with a caller-supplied vocabulary
// instead of a trained one. Fit only collects the corpus characters and
// unions them with the given subwords; there is no merge loop.
type SubwordList struct {
	subword
	subwords []string
}

func NewSubwordList(cfg Config) (Tokenizer, error) {
	subwords := make([]string, 0, len(cfg.Subwords))
	for _, s := range cfg.Subwords {
		if s != "" {
			subwords = append(subwords, s)
		}
	}
	return &SubwordList{subwords: subwords}, nil
}

func (t *SubwordList) Fit(corpus []string) error {
	symbols := corpusRunes(corpus)
	for _, s := range t.subwords {
		symbols[s] = struct{}{}
	}
	t.setSymbols(symbols)
	t.compile()
	return nil
}
