package builder

import (
	"github.com/davejbax/go-iso8601/internal/field"
	"github.com/davejbax/go-iso8601/internal/structure"
)

// FieldOption overrides how a single numeric field is written
type FieldOption func(*structure.Field)

// WithPadding sets the padding character
func WithPadding(p structure.Padding) FieldOption {
	return func(f *structure.Field) {
		f.Padding = p
	}
}

// WithWidth sets the width the field is padded to
func WithWidth(width int) FieldOption {
	return func(f *structure.Field) {
		f.Width = width
	}
}

// WithSign overrides the field's sign policy
func WithSign(policy field.SignPolicy) FieldOption {
	return func(f *structure.Field) {
		f.Sign = policy
	}
}
