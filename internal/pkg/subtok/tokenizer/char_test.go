package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestCharTransform(t *testing.T) {
	tok, err := NewChar(Config{})
	require.NoError(t, err)

	// valid without any training
	tokens, err := tok.Transform("héllo")
	require.NoError(t, err)
	require.Equal(t, []string{"h", "é", "l", "l", "o"}, tokens)

	tokens, err = tok.Transform("")
	require.NoError(t, err)
	require.Empty(t, tokens)
}

func TestCharFitIsNoop(t *testing.T) {
	tok, err := NewChar(Config{})
	require.NoError(t, err)
	require.NoError(t, tok.Fit([]string{"anything"}))

	tokens, err := tok.Transform("ab")
	require.NoError(t, err)
	require.Equal(t, []string{"a", "b"}, tokens)
}
