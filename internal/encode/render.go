package encode

import (
	"errors"
	"fmt"
	"github.com/davejbax/go-iso8601/internal/field"
	"github.com/davejbax/go-iso8601/internal/structure"
	"strconv"
	"strings"
)

var (
	// ErrMissingField indicates that the structure references a field that the value source does not provide
	ErrMissingField = errors.New("field has no value")

	// ErrFieldOutOfRange indicates that a field's value cannot be written: it is outside the field's range, or it
	// is negative and the field's sign is never written
	ErrFieldOutOfRange = errors.New("field value out of range")
)

// Render writes the fields in v as text, following the format structure n
func Render(n structure.Node, v *field.Values) (string, error) {
	var sb strings.Builder
	if err := render(&sb, n, v); err != nil {
		return "", err
	}

	return sb.String(), nil
}

func render(sb *strings.Builder, n structure.Node, v *field.Values) error {
	switch n := n.(type) {
	case *structure.Literal:
		sb.WriteString(n.Text)

	case *structure.Field:
		if n.Descriptor.Kind == field.KindFraction {
			return renderFraction(sb, n, v)
		}

		return renderInteger(sb, n, v)

	case *structure.Names:
		value, err := lookup(n.Descriptor, v)
		if err != nil {
			return err
		}

		sb.WriteString(n.Names[value-n.Descriptor.Min])

	case *structure.Sequence:
		for _, item := range n.Items {
			if err := render(sb, item, v); err != nil {
				return err
			}
		}

	case *structure.Optional:
		if structure.AllDefault(n.Inner, v) {
			sb.WriteString(n.OnAbsent)
			return nil
		}

		return render(sb, n.Inner, v)

	case *structure.Alternatives:
		return render(sb, n.Branches[0], v)

	case *structure.Signed:
		negative, err := lookup(n.Negative, v)
		if err != nil {
			return err
		}

		if negative == 1 {
			sb.WriteByte('-')
		} else {
			sb.WriteByte('+')
		}

		return render(sb, n.Inner, v)

	default:
		// Every node type is handled above; this can only be reached by adding a node type without a renderer
		panic(fmt.Sprintf("unexpected structure node %T", n))
	}

	return nil
}

func lookup(d *field.Descriptor, v *field.Values) (int, error) {
	value, ok := v.Get(d)
	if !ok {
		return 0, fmt.Errorf("%w: %s", ErrMissingField, d.Name)
	}

	if !d.InRange(value) {
		return 0, fmt.Errorf("%w: %s is %d, must be within %d..%d", ErrFieldOutOfRange, d.Name, value, d.Min, d.Max)
	}

	return value, nil
}

func renderInteger(sb *strings.Builder, f *structure.Field, v *field.Values) error {
	value, err := lookup(f.Descriptor, v)
	if err != nil {
		return err
	}

	negative := value < 0
	if negative {
		value = -value
	}

	digits := strconv.Itoa(value)

	sign := ""
	switch f.Sign {
	case field.SignNever:
		if negative {
			return fmt.Errorf("%w: %s is negative but its sign is never written", ErrFieldOutOfRange, f.Descriptor.Name)
		}
	case field.SignIfNegative:
		if negative {
			sign = "-"
		}
	case field.SignAlways:
		sign = "+"
		if negative {
			sign = "-"
		}
	case field.SignIfWide:
		if negative {
			sign = "-"
		} else if f.Padding == structure.PaddingZero && len(digits) > f.Width {
			sign = "+"
		}
	}

	switch f.Padding {
	case structure.PaddingZero:
		sb.WriteString(sign)
		if pad := f.Width - len(digits); pad > 0 {
			sb.WriteString(strings.Repeat("0", pad))
		}
	case structure.PaddingSpace:
		if pad := f.Width - len(sign) - len(digits); pad > 0 {
			sb.WriteString(strings.Repeat(" ", pad))
		}
		sb.WriteString(sign)
	default:
		sb.WriteString(sign)
	}

	sb.WriteString(digits)

	return nil
}

func renderFraction(sb *strings.Builder, f *structure.Field, v *field.Values) error {
	value, err := lookup(f.Descriptor, v)
	if err != nil {
		return err
	}

	all := fmt.Sprintf("%09d", value)

	length := f.MaxDigits
	for length > f.Width && all[length-1] == '0' {
		length--
	}

	if f.Grouped {
		length = min((length+2)/3*3, f.MaxDigits)
	}

	sb.WriteString(all[:length])

	return nil
}
