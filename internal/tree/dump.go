package tree

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes an indented listing of the tree to w, questions with
// their yes/no branches and guesses as leaves. Debug view, also served
// by the "zoo tree" command.
func Dump(w io.Writer, root *Node) {
	dump(w, root, "", 0)
}

func dump(w io.Writer, n *Node, label string, depth int) {
	if n == nil {
		return
	}
	indent := strings.Repeat("  ", depth)
	switch n.kind {
	case KindGuess:
		fmt.Fprintf(w, "%s%sGuess(%s)\n", indent, label, n.animal)
	case KindQuestion:
		fmt.Fprintf(w, "%s%sQuestion(%s)\n", indent, label, n.question)
		dump(w, n.yes, "yes: ", depth+1)
		dump(w, n.no, "no:  ", depth+1)
	}
}
