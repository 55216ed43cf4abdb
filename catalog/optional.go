package catalog

import (
	"strconv"
)

// Optional holds a value the registration API may or may not have sent.
// The zero value is absent, which is distinct from a present zero value.
type Optional[T any] struct {
	value   T
	present bool
}

// Some returns a present Optional holding v.
func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, present: true}
}

// None returns an absent Optional.
func None[T any]() Optional[T] {
	return Optional[T]{}
}

func (o Optional[T]) Get() (T, bool) {
	return o.value, o.present
}

func (o Optional[T]) IsPresent() bool {
	return o.present
}

// OrZero returns the held value, or the zero value of T when absent.
func (o Optional[T]) OrZero() T {
	return o.value
}

// formatCell renders a present value in its natural textual form and an
// absent one as the empty string.
func formatCell(v any) string {
	switch t := v.(type) {
	case Optional[string]:
		return t.value
	case Optional[int64]:
		if !t.present {
			return ""
		}
		return strconv.FormatInt(t.value, 10)
	case Optional[float64]:
		if !t.present {
			return ""
		}
		return strconv.FormatFloat(t.value, 'f', -1, 64)
	case Optional[bool]:
		if !t.present {
			return ""
		}
		return strconv.FormatBool(t.value)
	}
	return ""
}
