package tokenizer

func init() {
	Register("char", NewChar)
}

// Char splits text into its individual characters. It needs no training
// and recognizes every character, so Transform is always valid.
type Char struct{}

func NewChar(Config) (Tokenizer, error) {
	return Char{}, nil
}

func (Char) Fit([]string) error {
	return nil
}

func (Char) Transform(text string) ([]string, error) {
	tokens := []string{}
	for _, r := range text {
		tokens = append(tokens, string(r))
	}
	return tokens, nil
}

func (Char) Symbols() []string {
	return nil
}
