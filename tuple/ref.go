package tuple

import "fmt"

// Ref is a read-only view of a value held elsewhere,
// usually a field of a tuple (see the RefsN functions).
//
// A Ref does not copy the value: changes to the
// original are visible through it. It should not be
// retained beyond the use of the original value.
type Ref[T any] struct {
	p *T
}

// Get returns the current value.
func (r Ref[T]) Get() T {
	return *r.p
}

func (r Ref[T]) String() string {
	return fmt.Sprint(*r.p)
}
