package tokenizer

import (
	"testing"

	"github.com/stretchr/testify/require"
)

func TestSymbolListFromDocument(t *testing.T) {
	l := newSymbolList("héllo")
	require.Equal(t, []string{"h", "é", "l", "l", "o"}, l.values())
	require.Equal(t, 5, l.len())
	require.Equal(t, "h", l.head.value)
	require.Equal(t, "o", l.tail.value)
}

func TestSymbolListEmpty(t *testing.T) {
	l := newSymbolList("")
	require.Nil(t, l.head)
	require.Nil(t, l.tail)
	require.Empty(t, l.values())
}

func TestMergeWithNextMiddle(t *testing.T) {
	l := newSymbolList("abcd")
	b := l.head.next
	victim := b.next

	l.mergeWithNext(b)

	require.Equal(t, []string{"a", "bc", "d"}, l.values())
	require.Equal(t, "a", b.prev.value)
	require.Equal(t, "d", b.next.value)
	require.Equal(t, b, b.next.prev)

	// retired node must be fully unlinked
	require.Nil(t, victim.prev)
	require.Nil(t, victim.next)
}

func TestMergeWithNextAtTail(t *testing.T) {
	l := newSymbolList("ab")
	l.mergeWithNext(l.head)

	require.Equal(t, []string{"ab"}, l.values())
	require.Equal(t, l.head, l.tail)
	require.Nil(t, l.head.next)
	require.Nil(t, l.head.prev)
}

func TestMergeDuringTraversal(t *testing.T) {
	// merging every ("a","a") pair while walking must visit the rest of
	// the list normally and leave no dangling links
	l := newSymbolList("aaabaa")
	for n := l.head; n != nil; n = n.next {
		if n.value == "a" && n.next != nil && n.next.value == "a" {
			l.mergeWithNext(n)
		}
	}
	require.Equal(t, []string{"aa", "a", "b", "aa"}, l.values())
}
