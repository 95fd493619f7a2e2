package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestRegistryKnownTokenizers(t *testing.T) {
	for _, name := range []string{"char", "word", "bpe", "subwords"} {
		require.True(t, IsRegistered(name), "%q should be registered", name)
		require.Contains(t, List(), name)
	}
}

func TestRegistryUnknownName(t *testing.T) {
	_, err := New("nope", Config{NumSymbols: 10, MinFreq: 2})
	require.Error(t, err)
	require.Contains(t, err.Error(), "unknown tokenizer")
	require.False(t, IsRegistered("nope"))
}

func TestRegistryNewByName(t *testing.T) {
	tok, err := New("bpe", Config{NumSymbols: 10, MinFreq: 2})
	require.NoError(t, err)
	require.IsType(t, &BPE{}, tok)

	tok, err = New("char", Config{})
	require.NoError(t, err)
	require.IsType(t, Char{}, tok)
}

func TestRegistryPropagatesConfigErrors(t *testing.T) {
	_, err := New("bpe", Config{NumSymbols: 0, MinFreq: 2})
	require.Error(t, err)

	_, err = New("word", Config{NumSymbols: 10, MinFreq: 0})
	require.Error(t, err)
}
