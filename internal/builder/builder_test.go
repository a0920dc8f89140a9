package builder_test

import (
	"github.com/davejbax/go-iso8601/internal/builder"
	"github.com/davejbax/go-iso8601/internal/field"
	"github.com/davejbax/go-iso8601/internal/structure"
	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"testing"
)

var allFields = field.DateFields.Union(field.TimeFields).Union(field.OffsetFields)

func TestBuilder_Build(t *testing.T) {
	b := builder.New(allFields)
	b.Field(field.Hour)
	b.Literal(":")
	b.Literal(":")
	b.Field(field.Minute, builder.WithPadding(structure.PaddingNone))
	b.Push()
	b.Literal(".")
	b.Fraction(field.Nanosecond, 3, 9, true)
	b.PopOptional("")

	n, err := b.Build()
	require.NoError(t, err, "Build should succeed for a valid structure")

	expected := &structure.Sequence{Items: []structure.Node{
		&structure.Field{Descriptor: field.Hour, Width: 2, MaxDigits: 2},
		&structure.Literal{Text: "::"},
		&structure.Field{Descriptor: field.Minute, Width: 2, MaxDigits: 2, Padding: structure.PaddingNone},
		&structure.Optional{Inner: &structure.Sequence{Items: []structure.Node{
			&structure.Literal{Text: "."},
			&structure.Field{Descriptor: field.Nanosecond, Width: 3, MaxDigits: 9, Grouped: true},
		}}},
	}}

	if diff := cmp.Diff(expected, n); diff != "" {
		t.Errorf("Build should compile the expected structure, adjacent literals merged (-expected +actual):\n%s", diff)
	}
}

func TestBuilder_SingleItemIsNotWrapped(t *testing.T) {
	b := builder.New(allFields)
	b.Field(field.Year)

	n, err := b.Build()
	require.NoError(t, err)

	assert.IsType(t, &structure.Field{}, n, "a single item should not be wrapped in a sequence")
}

func TestBuilder_Alternatives(t *testing.T) {
	b := builder.New(allFields)
	b.Push()
	b.Literal("T")
	b.Push()
	b.Literal("t")
	b.Push()
	b.PopAlternatives(3)

	n, err := b.Build()
	require.NoError(t, err, "only the primary alternative needs to be non-empty")

	alternatives, ok := n.(*structure.Alternatives)
	require.True(t, ok, "Build should produce an Alternatives node")
	assert.Len(t, alternatives.Branches, 3)
	assert.Equal(t, &structure.Literal{Text: "T"}, alternatives.Branches[0], "branches should keep the order they were opened in")
}

func TestBuilder_Errors(t *testing.T) {
	cases := []struct {
		name  string
		build func(b *builder.Builder)
	}{
		{"empty", func(b *builder.Builder) {}},
		{"unclosed scope", func(b *builder.Builder) {
			b.Field(field.Year)
			b.Push()
		}},
		{"pop without push", func(b *builder.Builder) {
			b.Field(field.Year)
			b.PopOptional("")
		}},
		{"field outside capabilities", func(b *builder.Builder) {
			b.Field(field.Hour)
		}},
		{"fraction as integer", func(b *builder.Builder) {
			b.Field(field.Nanosecond)
		}},
		{"integer as fraction", func(b *builder.Builder) {
			b.Fraction(field.Second, 1, 2, false)
		}},
		{"fraction bounds reversed", func(b *builder.Builder) {
			b.Fraction(field.Nanosecond, 5, 3, false)
		}},
		{"width zero", func(b *builder.Builder) {
			b.Field(field.Day, builder.WithWidth(0))
		}},
		{"optional without defaults", func(b *builder.Builder) {
			b.Push()
			b.Field(field.Day)
			b.PopOptional("")
		}},
		{"magnitude outside signed section", func(b *builder.Builder) {
			b.Field(field.OffsetMinutes)
		}},
		{"sign stored in non-flag", func(b *builder.Builder) {
			b.Push()
			b.Field(field.OffsetHours)
			b.PopSigned(field.OffsetHours)
		}},
		{"empty signed section", func(b *builder.Builder) {
			b.Push()
			b.PopSigned(field.OffsetNegative)
		}},
		{"too many alternatives", func(b *builder.Builder) {
			b.Push()
			b.Literal("a")
			b.PopAlternatives(2)
		}},
		{"empty name", func(b *builder.Builder) {
			b.Names(field.DayOfWeek, []string{"Mon", "Tue", "", "Thu", "Fri", "Sat", "Sun"})
		}},
	}

	for _, c := range cases {
		t.Run(c.name, func(t *testing.T) {
			t.Parallel()

			b := builder.New(field.DateFields.Union(field.OffsetFields).Union(field.SetOf(field.Nanosecond, field.Second)))
			c.build(b)

			_, err := b.Build()
			assert.ErrorIs(t, err, builder.ErrInvalidStructure, "Build should fail")
		})
	}
}

func TestBuilder_FirstErrorWins(t *testing.T) {
	b := builder.New(field.DateFields)
	b.Field(field.Hour)
	b.Field(field.Minute)

	_, err := b.Build()
	require.ErrorIs(t, err, builder.ErrInvalidStructure)
	assert.Contains(t, err.Error(), "field hour", "the first misuse should be reported")
}
