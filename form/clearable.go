package form

// Clearable is an optional parameter that may also be sent empty. A nil
// *Clearable is omitted, a cleared one is sent as key= which unsets the field
// on the server, and a set one encodes its value.
type Clearable[T any] struct {
	value   T
	cleared bool
}

// Set returns a Clearable holding the given value.
func Set[T any](v T) *Clearable[T] {
	return &Clearable[T]{
		value: v,
	}
}

// Clear returns a Clearable that unsets the field it is assigned to.
func Clear[T any]() *Clearable[T] {
	return &Clearable[T]{
		cleared: true,
	}
}

// Value returns the held value, and whether one is held at all.
func (c *Clearable[T]) Value() (T, bool) { return c.value, !c.cleared }

func (c *Clearable[T]) Cleared() bool { return c.cleared }

// AppendForm implements the Appender interface.
func (c *Clearable[T]) AppendForm(vals *Values, keyParts []string) error {
	if c.cleared {
		vals.Add(FormatKey(keyParts), "")
		return nil
	}
	return AppendTo(vals, keyParts, c.value)
}
