package tokenizer

// symbolNode is one element of a symbolList. After a merge the retired
// nodes have their links cleared; holding on to one is a bug.
type symbolNode struct {
	value string
	prev  *symbolNode
	next  *symbolNode
}

// symbolList is a doubly linked sequence of symbols supporting O(1)
// merges of adjacent elements. One list represents one document during
// training, starting with one node per rune.
type symbolList struct {
	head *symbolNode
	tail *symbolNode
}

func newSymbolList(doc string) *symbolList {
	l := &symbolList{}
	for _, r := range doc {
		l.append(string(r))
	}
	return l
}

func (l *symbolList) append(value string) {
	n := &symbolNode{value: value, prev: l.tail}
	if l.tail != nil {
		l.tail.next = n
	} else {
		l.head = n
	}
	l.tail = n
}

// mergeWithNext folds n's successor into n: n takes the concatenated
// value and adopts the successor's forward link. The successor is retired
// and unlinked so stale references cannot walk back into the list.
// Callers must ensure n.next is non-nil.
func (l *symbolList) mergeWithNext(n *symbolNode) {
	victim := n.next
	n.value += victim.value
	n.next = victim.next
	if victim.next != nil {
		victim.next.prev = n
	} else {
		l.tail = n
	}
	victim.prev = nil
	victim.next = nil
}

// values returns the current symbols in order.
func (l *symbolList) values() []string {
	var out []string
	for n := l.head; n != nil; n = n.next {
		out = append(out, n.value)
	}
	return out
}

func (l *symbolList) len() int {
	count := 0
	for n := l.head; n != nil; n = n.next {
		count++
	}
	return count
}
