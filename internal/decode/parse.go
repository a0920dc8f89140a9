package decode

import (
	"fmt"
	"github.com/davejbax/go-iso8601/internal/field"
	"github.com/davejbax/go-iso8601/internal/structure"
	"strconv"
	"strings"
)

type parser struct {
	input string

	// furthest is the failure detected at the greatest offset so far. When parsing fails as a whole, this is what
	// gets reported: the point the parser got furthest to is the most likely place for the actual mistake.
	furthest *Error
}

// Parse reads input according to the format structure n, returning the fields it found. The whole input must
// be consumed. The returned error is always an [*Error].
func Parse(n structure.Node, input string) (*field.Values, error) {
	p := &parser{input: input}

	var v field.Values
	end, err := p.parse(n, 0, &v)
	if err == nil && end != len(input) {
		err = p.mismatch(end, "end of input")
	}

	if err != nil {
		return nil, p.furthest
	}

	return &v, nil
}

func (p *parser) fail(err *Error) *Error {
	if p.furthest == nil || err.Offset > p.furthest.Offset {
		p.furthest = err
	}

	return err
}

func (p *parser) mismatch(offset int, expected string) *Error {
	return p.fail(&Error{Input: p.input, Offset: offset, Expected: expected, Err: ErrMismatch})
}

func (p *parser) outOfRange(offset int, d *field.Descriptor, value int) *Error {
	return p.fail(&Error{
		Input:    p.input,
		Offset:   offset,
		Expected: fmt.Sprintf("a value within %d..%d, got %d", d.Min, d.Max, value),
		Field:    d.Name,
		Err:      ErrFieldOutOfRange,
	})
}

// deeper returns whichever of a and b was detected at the greater offset, preferring a on ties
func deeper(a, b *Error) *Error {
	if a == nil || (b != nil && b.Offset > a.Offset) {
		return b
	}

	return a
}

func (p *parser) parse(n structure.Node, pos int, v *field.Values) (int, *Error) {
	switch n := n.(type) {
	case *structure.Literal:
		if !strings.HasPrefix(p.input[pos:], n.Text) {
			return pos, p.mismatch(pos, strconv.Quote(n.Text))
		}

		return pos + len(n.Text), nil

	case *structure.Field:
		if n.Descriptor.Kind == field.KindFraction {
			return p.parseFraction(n, pos, v)
		}

		return p.parseInteger(n, pos, v, 0)

	case *structure.Names:
		return p.parseNames(n, pos, v)

	case *structure.Sequence:
		for i, item := range n.Items {
			var err *Error
			if f, ok := item.(*structure.Field); ok && f.Descriptor.Kind == field.KindInteger {
				pos, err = p.parseInteger(f, pos, v, reservedDigits(n.Items[i+1:]))
			} else {
				pos, err = p.parse(item, pos, v)
			}

			if err != nil {
				return pos, err
			}
		}

		return pos, nil

	case *structure.Optional:
		saved := *v
		end, err := p.parse(n.Inner, pos, v)
		if err == nil {
			return end, nil
		}

		*v = saved
		if strings.HasPrefix(p.input[pos:], n.OnAbsent) {
			return pos + len(n.OnAbsent), nil
		}

		return pos, deeper(err, p.mismatch(pos, strconv.Quote(n.OnAbsent)))

	case *structure.Alternatives:
		saved := *v

		var best *Error
		for _, branch := range n.Branches {
			end, err := p.parse(branch, pos, v)
			if err == nil {
				return end, nil
			}

			*v = saved
			best = deeper(best, err)
		}

		return pos, best

	case *structure.Signed:
		if pos >= len(p.input) || (p.input[pos] != '+' && p.input[pos] != '-') {
			return pos, p.mismatch(pos, "'+' or '-'")
		}

		negative := 0
		if p.input[pos] == '-' {
			negative = 1
		}

		v.Set(n.Negative, negative)

		return p.parse(n.Inner, pos+1, v)

	default:
		panic(fmt.Sprintf("unexpected structure node %T", n))
	}
}

func isDigit(c byte) bool {
	return c >= '0' && c <= '9'
}

// fixedDigits reports how many digits the leading fixed-width fields of n always occupy, and whether n consists
// of nothing but such fields
func fixedDigits(n structure.Node) (int, bool) {
	switch n := n.(type) {
	case *structure.Field:
		if n.Descriptor.Kind != field.KindInteger || n.Padding != structure.PaddingZero {
			return 0, false
		}

		// an unsigned SignIfWide field is read at exactly its width
		if n.MaxDigits != n.Width && n.Sign != field.SignIfWide {
			return 0, false
		}

		return n.Width, true

	case *structure.Sequence:
		total := 0
		for _, item := range n.Items {
			digits, whole := fixedDigits(item)
			total += digits
			if !whole {
				return total, false
			}
		}

		return total, true
	}

	return 0, false
}

// reservedDigits is the number of digits that must be left for the fixed-width fields directly following a
// field, so that a variable-width field such as a signed year doesn't consume them
func reservedDigits(following []structure.Node) int {
	total := 0
	for _, n := range following {
		digits, whole := fixedDigits(n)
		total += digits
		if !whole {
			break
		}
	}

	return total
}

// parseInteger reads an integer field, leaving at least reserve digits of a digit run for the fields after it
func (p *parser) parseInteger(f *structure.Field, pos int, v *field.Values, reserve int) (int, *Error) {
	d := f.Descriptor
	start := pos

	if f.Padding == structure.PaddingSpace {
		for pos < len(p.input) && p.input[pos] == ' ' && pos-start < f.Width-1 {
			pos++
		}
	}

	negative, signed := false, false
	if pos < len(p.input) {
		switch c := p.input[pos]; {
		case c == '-' && f.Sign != field.SignNever:
			negative, signed = true, true
			pos++
		case c == '+' && (f.Sign == field.SignAlways || f.Sign == field.SignIfWide):
			signed = true
			pos++
		}
	}

	if f.Sign == field.SignAlways && !signed {
		return start, p.mismatch(pos, "'+' or '-' before "+d.Name)
	}

	minDigits, maxDigits := 1, f.MaxDigits
	if f.Padding == structure.PaddingZero {
		minDigits = f.Width
		if f.Sign == field.SignIfWide && !signed {
			maxDigits = f.Width
		}
	}

	limit := maxDigits
	if reserve > 0 {
		available := 0
		for pos+available < len(p.input) && available < maxDigits+reserve && isDigit(p.input[pos+available]) {
			available++
		}

		if available-reserve < limit {
			limit = max(available-reserve, minDigits)
		}
	}

	digitsStart := pos
	value := 0
	for pos < len(p.input) && pos-digitsStart < limit && isDigit(p.input[pos]) {
		value = value*10 + int(p.input[pos]-'0')
		pos++
	}

	if count := pos - digitsStart; count < minDigits {
		expected := fmt.Sprintf("%d digit(s) for %s", minDigits, d.Name)
		if minDigits != maxDigits {
			expected = fmt.Sprintf("%d to %d digits for %s", minDigits, maxDigits, d.Name)
		}

		return start, p.mismatch(pos, expected)
	}

	if negative {
		value = -value
	}

	if !d.InRange(value) {
		return start, p.outOfRange(start, d, value)
	}

	v.Set(d, value)

	return pos, nil
}

func (p *parser) parseFraction(f *structure.Field, pos int, v *field.Values) (int, *Error) {
	start := pos
	value, count := 0, 0
	for pos < len(p.input) && count < f.MaxDigits && isDigit(p.input[pos]) {
		value = value*10 + int(p.input[pos]-'0')
		count++
		pos++
	}

	if count < f.Width {
		return start, p.mismatch(pos, fmt.Sprintf("%d to %d digits for %s", f.Width, f.MaxDigits, f.Descriptor.Name))
	}

	for ; count < 9; count++ {
		value *= 10
	}

	v.Set(f.Descriptor, value)

	return pos, nil
}

func (p *parser) parseNames(n *structure.Names, pos int, v *field.Values) (int, *Error) {
	best := -1
	for i, name := range n.Names {
		if strings.HasPrefix(p.input[pos:], name) && (best == -1 || len(name) > len(n.Names[best])) {
			best = i
		}
	}

	if best == -1 {
		return pos, p.mismatch(pos, "one of "+strings.Join(n.Names, ", "))
	}

	v.Set(n.Descriptor, n.Descriptor.Min+best)

	return pos + len(n.Names[best]), nil
}
