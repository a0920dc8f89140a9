package builder

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-iso8601/internal/field"
	"github.com/davejbax/go-iso8601/internal/structure"
)

var (
	// ErrInvalidStructure indicates that the builder was used in a way that cannot produce a usable format
	ErrInvalidStructure = errors.New("invalid format structure")
)

// scope is a sequence under construction
type scope struct {
	items []structure.Node
}

// Builder accumulates a [structure.Node] tree. Appending methods add to the innermost open scope; Push opens a
// nested scope and the Pop methods close it into an Optional or Alternatives node in the enclosing scope.
//
// A Builder is single-use and not safe for concurrent use. Misuse is recorded rather than reported immediately:
// the first error is returned by [Builder.Build], so that builder callbacks don't need to check errors.
type Builder struct {
	allowed field.Set
	stack   []*scope
	err     error
}

// New creates a builder that accepts fields from the given capability set
func New(allowed field.Set) *Builder {
	return &Builder{
		allowed: allowed,
		stack:   []*scope{{}},
	}
}

func (b *Builder) fail(err error) {
	if b.err == nil {
		b.err = err
	}
}

func (b *Builder) current() *scope {
	return b.stack[len(b.stack)-1]
}

func (b *Builder) append(n structure.Node) {
	s := b.current()

	// Adjacent literals are merged so that parse failures report the whole expected text
	if lit, ok := n.(*structure.Literal); ok && len(s.items) > 0 {
		if prev, ok := s.items[len(s.items)-1].(*structure.Literal); ok {
			s.items[len(s.items)-1] = &structure.Literal{Text: prev.Text + lit.Text}
			return
		}
	}

	s.items = append(s.items, n)
}

func (b *Builder) checkAllowed(n structure.Node) bool {
	for _, d := range n.Fields(nil) {
		if !b.allowed.Contains(d) {
			b.fail(fmt.Errorf("%w: field %s is not available in a format over %s", ErrInvalidStructure, d.Name, b.allowed))
			return false
		}
	}

	return true
}

// Literal appends fixed text
func (b *Builder) Literal(text string) {
	if text == "" {
		return
	}

	b.append(&structure.Literal{Text: text})
}

// Field appends a numeric field with the descriptor's default width, padding and sign policy, as modified by opts
func (b *Builder) Field(d *field.Descriptor, opts ...FieldOption) {
	if d.Kind != field.KindInteger {
		b.fail(fmt.Errorf("%w: field %s cannot be written as an integer", ErrInvalidStructure, d.Name))
		return
	}

	f := &structure.Field{
		Descriptor: d,
		Width:      d.PadWidth,
		Padding:    structure.PaddingZero,
		Sign:       d.Sign,
		MaxDigits:  d.MaxDigits,
	}

	for _, opt := range opts {
		opt(f)
	}

	if f.Width < 1 || f.Width > 9 {
		b.fail(fmt.Errorf("%w: width %d for field %s is outside 1..9", ErrInvalidStructure, f.Width, d.Name))
		return
	}

	if f.Width > f.MaxDigits {
		f.MaxDigits = f.Width
	}

	if f.Sign == field.SignNever && d.Min < 0 {
		b.fail(fmt.Errorf("%w: field %s can be negative but its sign is never written", ErrInvalidStructure, d.Name))
		return
	}

	if b.checkAllowed(f) {
		b.append(f)
	}
}

// Fraction appends a fractional field written with between minDigits and maxDigits digits
func (b *Builder) Fraction(d *field.Descriptor, minDigits, maxDigits int, grouped bool) {
	if d.Kind != field.KindFraction {
		b.fail(fmt.Errorf("%w: field %s is not a fraction", ErrInvalidStructure, d.Name))
		return
	}

	if minDigits < 1 || maxDigits > 9 || minDigits > maxDigits {
		b.fail(fmt.Errorf("%w: fraction digits %d..%d must lie within 1..9", ErrInvalidStructure, minDigits, maxDigits))
		return
	}

	f := &structure.Field{
		Descriptor: d,
		Width:      minDigits,
		MaxDigits:  maxDigits,
		Grouped:    grouped,
		Sign:       field.SignNever,
	}

	if b.checkAllowed(f) {
		b.append(f)
	}
}

// Names appends a field written as one of names, names[0] standing for the descriptor's minimum
func (b *Builder) Names(d *field.Descriptor, names []string) {
	if len(names) != d.Max-d.Min+1 {
		b.fail(fmt.Errorf("%w: field %s needs %d names, got %d", ErrInvalidStructure, d.Name, d.Max-d.Min+1, len(names)))
		return
	}

	for _, name := range names {
		if name == "" {
			b.fail(fmt.Errorf("%w: field %s has an empty name", ErrInvalidStructure, d.Name))
			return
		}
	}

	n := &structure.Names{Descriptor: d, Names: append([]string(nil), names...)}
	if b.checkAllowed(n) {
		b.append(n)
	}
}

// Embed appends an already-built structure, e.g. the structure of another format
func (b *Builder) Embed(n structure.Node) {
	if b.checkAllowed(n) {
		b.append(n)
	}
}

// Push opens a nested scope
func (b *Builder) Push() {
	b.stack = append(b.stack, &scope{})
}

func (b *Builder) pop() (*scope, bool) {
	if len(b.stack) == 1 {
		b.fail(fmt.Errorf("%w: closing a scope that was never opened", ErrInvalidStructure))
		return nil, false
	}

	s := b.current()
	b.stack = b.stack[:len(b.stack)-1]

	return s, true
}

// PopOptional closes the innermost scope into an [structure.Optional] node
func (b *Builder) PopOptional(onAbsent string) {
	s, ok := b.pop()
	if !ok {
		return
	}

	if len(s.items) == 0 {
		b.fail(fmt.Errorf("%w: empty optional section", ErrInvalidStructure))
		return
	}

	inner := compile(s.items)
	for _, d := range inner.Fields(nil) {
		if !d.HasDefault {
			b.fail(fmt.Errorf("%w: field %s has no default value, so it cannot be in an optional section", ErrInvalidStructure, d.Name))
			return
		}
	}

	b.append(&structure.Optional{Inner: inner, OnAbsent: onAbsent})
}

// PopSigned closes the innermost scope into a [structure.Signed] node whose sign is stored in the flag field
// negative
func (b *Builder) PopSigned(negative *field.Descriptor) {
	s, ok := b.pop()
	if !ok {
		return
	}

	if negative.Kind != field.KindFlag {
		b.fail(fmt.Errorf("%w: field %s cannot hold a sign", ErrInvalidStructure, negative.Name))
		return
	}

	if len(s.items) == 0 {
		b.fail(fmt.Errorf("%w: empty signed section", ErrInvalidStructure))
		return
	}

	n := &structure.Signed{Negative: negative, Inner: compile(s.items)}
	if b.checkAllowed(n) {
		b.append(n)
	}
}

// PopAlternatives closes the innermost n scopes into a single [structure.Alternatives] node. Scopes are taken
// in the order they were opened, so the first opened scope is the one used for rendering.
func (b *Builder) PopAlternatives(n int) {
	if n < 1 {
		b.fail(fmt.Errorf("%w: alternatives need at least one branch", ErrInvalidStructure))
		return
	}

	if len(b.stack)-1 < n {
		b.fail(fmt.Errorf("%w: closing %d alternatives with only %d scopes open", ErrInvalidStructure, n, len(b.stack)-1))
		return
	}

	scopes := b.stack[len(b.stack)-n:]
	b.stack = b.stack[:len(b.stack)-n]

	branches := make([]structure.Node, 0, n)
	for i, s := range scopes {
		if len(s.items) == 0 {
			// Only the primary branch must produce output; other branches may accept empty input
			if i == 0 {
				b.fail(fmt.Errorf("%w: the primary alternative is empty", ErrInvalidStructure))
				return
			}
		}

		branches = append(branches, compile(s.items))
	}

	if n == 1 {
		b.append(branches[0])
		return
	}

	b.append(&structure.Alternatives{Branches: branches})
}

// Build finishes the structure. It fails if any builder call failed, if a scope is still open, or if the format
// is empty.
func (b *Builder) Build() (structure.Node, error) {
	if b.err != nil {
		return nil, b.err
	}

	if len(b.stack) != 1 {
		return nil, fmt.Errorf("%w: %d scope(s) left open", ErrInvalidStructure, len(b.stack)-1)
	}

	root := b.stack[0]
	if len(root.items) == 0 {
		return nil, fmt.Errorf("%w: empty format", ErrInvalidStructure)
	}

	n := compile(root.items)
	if err := checkSigned(n, false); err != nil {
		return nil, err
	}

	return n, nil
}

// checkSigned ensures that fields which only store a magnitude, such as the hours of a UTC offset, are written
// inside a signed group; otherwise negative values would lose their sign.
func checkSigned(n structure.Node, signed bool) error {
	switch n := n.(type) {
	case *structure.Field, *structure.Names:
		for _, d := range n.Fields(nil) {
			if !signed && field.MagnitudeFields.Contains(d) {
				return fmt.Errorf("%w: field %s must be inside a signed section", ErrInvalidStructure, d.Name)
			}
		}
	case *structure.Sequence:
		for _, item := range n.Items {
			if err := checkSigned(item, signed); err != nil {
				return err
			}
		}
	case *structure.Optional:
		return checkSigned(n.Inner, signed)
	case *structure.Alternatives:
		for _, branch := range n.Branches {
			if err := checkSigned(branch, signed); err != nil {
				return err
			}
		}
	case *structure.Signed:
		return checkSigned(n.Inner, true)
	}

	return nil
}

func compile(items []structure.Node) structure.Node {
	if len(items) == 1 {
		return items[0]
	}

	return &structure.Sequence{Items: append([]structure.Node(nil), items...)}
}
