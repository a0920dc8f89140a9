package field

// Values holds an optional integer for every known field. It serves both as the source of field values when
// rendering and as the accumulator filled in while parsing.
//
// Values is a plain array-backed value: assigning it copies it, which is how the parser snapshots and restores
// state around optional sections and alternatives.
type Values struct {
	values [count]int
	set    [count]bool
}

// Set assigns a value to a field
func (v *Values) Set(d *Descriptor, value int) {
	v.values[d.ID] = value
	v.set[d.ID] = true
}

// Unset clears a field
func (v *Values) Unset(d *Descriptor) {
	v.values[d.ID] = 0
	v.set[d.ID] = false
}

// Get returns a field's value and whether it has been set
func (v *Values) Get(d *Descriptor) (int, bool) {
	return v.values[d.ID], v.set[d.ID]
}

// Has reports whether a field has been set
func (v *Values) Has(d *Descriptor) bool {
	return v.set[d.ID]
}

// GetOrDefault returns the field's value if set, or its default otherwise. The second return value is false only
// when the field is unset and has no default.
func (v *Values) GetOrDefault(d *Descriptor) (int, bool) {
	if v.set[d.ID] {
		return v.values[d.ID], true
	}

	if d.HasDefault {
		return d.Default, true
	}

	return 0, false
}

// SetFields returns the descriptors of every field that has been set, in ID order
func (v *Values) SetFields() []*Descriptor {
	var fields []*Descriptor
	for id, ok := range v.set {
		if ok {
			fields = append(fields, All[id])
		}
	}

	return fields
}
