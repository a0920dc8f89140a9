// Package structure defines the immutable tree describing how literals and calendar fields compose into text.
// A tree is produced by the builder package and consumed, unchanged, by both the renderer (package encode) and
// the parser (package decode).
package structure

import (
	"fmt"
	"github.com/davejbax/go-iso8601/internal/field"
	"strconv"
	"strings"
)

// Node is one element of a format structure
type Node interface {
	// Fields appends the descriptors of every field referenced by this node and its children
	Fields(into []*field.Descriptor) []*field.Descriptor

	fmt.Stringer
	node()
}

// Padding is the character used to pad a numeric field to its width
type Padding int

const (
	PaddingZero Padding = iota
	PaddingNone
	PaddingSpace
)

// Literal is fixed text that must appear verbatim
type Literal struct {
	Text string
}

func (l *Literal) Fields(into []*field.Descriptor) []*field.Descriptor { return into }

func (l *Literal) String() string { return strconv.Quote(l.Text) }

func (*Literal) node() {}

// Field is a single calendar field written as digits (or, for fractions, as the digits following a decimal
// point).
type Field struct {
	Descriptor *field.Descriptor

	// Width is the padded width; for fractions it is the minimum number of digits written
	Width   int
	Padding Padding
	Sign    field.SignPolicy

	// MaxDigits bounds the digits consumed when parsing; for fractions it also bounds the digits written
	MaxDigits int

	// Grouped fractions are written in groups of three digits (.5 is written as .500)
	Grouped bool
}

func (f *Field) Fields(into []*field.Descriptor) []*field.Descriptor {
	return append(into, f.Descriptor)
}

func (f *Field) String() string {
	if f.Descriptor.Kind == field.KindFraction {
		return fmt.Sprintf("%s(%d..%d)", f.Descriptor.Name, f.Width, f.MaxDigits)
	}

	var opts []string
	switch f.Padding {
	case PaddingNone:
		opts = append(opts, "unpadded")
	case PaddingSpace:
		opts = append(opts, fmt.Sprintf("space %d", f.Width))
	default:
		if f.Width != f.Descriptor.PadWidth {
			opts = append(opts, fmt.Sprintf("width %d", f.Width))
		}
	}

	if f.Sign != f.Descriptor.Sign {
		opts = append(opts, "sign "+f.Sign.String())
	}

	if len(opts) == 0 {
		return f.Descriptor.Name
	}

	return f.Descriptor.Name + "(" + strings.Join(opts, ", ") + ")"
}

func (*Field) node() {}

// Names writes a field as one of a fixed list of names, Names[0] standing for the descriptor's minimum value
type Names struct {
	Descriptor *field.Descriptor
	Names      []string
}

func (n *Names) Fields(into []*field.Descriptor) []*field.Descriptor {
	return append(into, n.Descriptor)
}

func (n *Names) String() string {
	return n.Descriptor.Name + "Name[" + strings.Join(n.Names, "|") + "]"
}

func (*Names) node() {}

// Sequence is an ordered concatenation of nodes
type Sequence struct {
	Items []Node
}

func (s *Sequence) Fields(into []*field.Descriptor) []*field.Descriptor {
	for _, item := range s.Items {
		into = item.Fields(into)
	}

	return into
}

func (s *Sequence) String() string {
	parts := make([]string, len(s.Items))
	for i, item := range s.Items {
		parts[i] = item.String()
	}

	return strings.Join(parts, " ")
}

func (*Sequence) node() {}

// Optional is a section that may be absent. When every field inside holds its default value, the section is
// omitted and OnAbsent (possibly empty) is written in its place; OnAbsent is also accepted when parsing.
type Optional struct {
	Inner    Node
	OnAbsent string
}

func (o *Optional) Fields(into []*field.Descriptor) []*field.Descriptor {
	return o.Inner.Fields(into)
}

func (o *Optional) String() string {
	if o.OnAbsent == "" {
		return "[" + o.Inner.String() + "]"
	}

	return "[" + o.Inner.String() + " | " + strconv.Quote(o.OnAbsent) + "]"
}

func (*Optional) node() {}

// Alternatives are tried in order when parsing. Only the first branch is ever used for rendering.
type Alternatives struct {
	Branches []Node
}

func (a *Alternatives) Fields(into []*field.Descriptor) []*field.Descriptor {
	for _, branch := range a.Branches {
		into = branch.Fields(into)
	}

	return into
}

func (a *Alternatives) String() string {
	parts := make([]string, len(a.Branches))
	for i, branch := range a.Branches {
		parts[i] = branch.String()
	}

	return "(" + strings.Join(parts, " / ") + ")"
}

func (*Alternatives) node() {}

// Signed writes a '+' or '-' for a whole group of fields, as in a UTC offset where '-00:30' must keep its sign
// even though every field is zero. Negative is a [field.KindFlag] field holding 1 for a negative group.
type Signed struct {
	Negative *field.Descriptor
	Inner    Node
}

func (s *Signed) Fields(into []*field.Descriptor) []*field.Descriptor {
	return s.Inner.Fields(append(into, s.Negative))
}

func (s *Signed) String() string {
	return "±(" + s.Inner.String() + ")"
}

func (*Signed) node() {}

var (
	_ Node = &Literal{}
	_ Node = &Field{}
	_ Node = &Names{}
	_ Node = &Sequence{}
	_ Node = &Optional{}
	_ Node = &Alternatives{}
	_ Node = &Signed{}
)

// AllDefault reports whether every field referenced by the node holds its default value in v. Unset fields and
// fields without a default never count as default.
func AllDefault(n Node, v *field.Values) bool {
	for _, d := range n.Fields(nil) {
		value, ok := v.Get(d)
		if !ok || !d.IsDefault(value) {
			return false
		}
	}

	return true
}
