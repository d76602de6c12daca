package itree

import (
	"fmt"
	"strconv"
	"strings"
	"unicode/utf8"
)

// PrintOptions controls the rendering of nodes in Pretty and label output.
// The zero value renders a bare "(start,end)".
type PrintOptions struct {
	// TypeName prefixes each label with the node type name.
	TypeName bool
	// AttrNames labels each value, e.g. "start=5".
	AttrNames bool
	// MinMax includes the cached subtree bounds.
	MinMax bool
	// Height includes the cached node height.
	Height bool
}

// Label renders the node under the given options.
func (n *Node) Label(o PrintOptions) string {
	return n.label(o)
}

func (n *Node) label(o PrintOptions) string {
	type field struct {
		name  string
		value int64
	}
	fields := []field{{"start", n.start}, {"end", n.end}}
	if o.MinMax {
		fields = append(fields, field{"min", n.min}, field{"max", n.max})
	}
	if o.Height {
		fields = append(fields, field{"height", int64(n.height)})
	}

	parts := make([]string, len(fields))
	for i, f := range fields {
		if o.AttrNames {
			parts[i] = fmt.Sprintf("%s=%d", f.name, f.value)
		} else {
			parts[i] = strconv.FormatInt(f.value, 10)
		}
	}

	var b strings.Builder
	if o.TypeName {
		b.WriteString("Node")
	}
	b.WriteByte('(')
	b.WriteString(strings.Join(parts, ","))
	b.WriteByte(')')
	return b.String()
}

// Pretty renders the tree in order, one node per line, left subtree above
// its parent. A node is indented by the accumulated label width of its
// ancestors and prefixed with ┌ when it is a left child and └ when it is a
// right child; the root carries no corner. An empty tree renders as "".
func (t *Tree) Pretty(o PrintOptions) string {
	var b strings.Builder
	pretty(&b, t.root, false, 0, o)
	return b.String()
}

func pretty(b *strings.Builder, n *Node, rightChild bool, level int, o PrintOptions) {
	if n == nil {
		return
	}
	label := n.label(o)
	childLevel := level + utf8.RuneCountInString(label)

	pretty(b, n.c[sideLeft], false, childLevel, o)

	b.WriteString(strings.Repeat(" ", level))
	if level > 0 {
		if rightChild {
			b.WriteRune('└')
		} else {
			b.WriteRune('┌')
		}
	}
	b.WriteRune('–')
	b.WriteString(label)
	b.WriteByte('\n')

	pretty(b, n.c[sideRight], true, childLevel, o)
}
