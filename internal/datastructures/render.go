package datastructures

import (
	"bufio"
	"fmt"
	"io"
	"strings"
)

// Render writes the elements from head to tail, followed by the size.
// An empty list renders as "List is empty".
func (l *List[T]) Render(w io.Writer) error {
	bw := bufio.NewWriter(w)
	if l.length == 0 {
		bw.WriteString("List is empty\n")
		return bw.Flush()
	}

	bw.WriteString("Linked List: ")
	for h := l.head; h != 0; h = l.at(h).next {
		fmt.Fprintf(bw, "%v->", l.at(h).value)
	}
	bw.WriteString("NULL\n")
	fmt.Fprintf(bw, "Size: %d\n", l.length)
	return bw.Flush()
}

func (l *List[T]) String() string {
	var sb strings.Builder
	_ = l.Render(&sb)
	return sb.String()
}
