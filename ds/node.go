package ds

import (
	"fmt"
	"strings"
)

// node is a single-link cell. Nodes never leave the list that allocated them.
type node[T any] struct {
	value T
	next  *node[T]
}

// format renders the chain starting at n as "[a, b, c]".
func format[T any](n *node[T]) string {
	var b strings.Builder
	b.WriteByte('[')
	for cur := n; cur != nil; cur = cur.next {
		if cur != n {
			b.WriteString(", ")
		}
		fmt.Fprint(&b, cur.value)
	}
	b.WriteByte(']')
	return b.String()
}
