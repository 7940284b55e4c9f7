package switchlist

import (
	"errors"
	"fmt"
	"slices"
)

// ErrDuplicateValue is returned when two options share a value.
var ErrDuplicateValue = errors.New("duplicate option value")

// Option is a single selectable entry of a switch list.
type Option[V comparable] struct {
	Value V
	Label string
}

// Registry is the ordered, immutable set of options currently displayed.
// It is replaced wholesale on every update, never patched.
type Registry[V comparable] struct {
	options []Option[V]
	index   map[V]int
}

// NewRegistry copies opts into a new registry.
func NewRegistry[V comparable](opts []Option[V]) (*Registry[V], error) {
	r := &Registry[V]{
		options: slices.Clone(opts),
		index:   make(map[V]int, len(opts)),
	}
	for i, o := range r.options {
		if prev, ok := r.index[o.Value]; ok {
			return nil, fmt.Errorf("%w: %v at %d and %d", ErrDuplicateValue, o.Value, prev, i)
		}
		r.index[o.Value] = i
	}
	return r, nil
}

// Len returns the number of options.
func (r *Registry[V]) Len() int {
	return len(r.options)
}

// At returns the option at i, or false if i is out of range.
func (r *Registry[V]) At(i int) (Option[V], bool) {
	if i < 0 || i >= len(r.options) {
		return Option[V]{}, false
	}
	return r.options[i], true
}

// IndexOf returns the position of v.
func (r *Registry[V]) IndexOf(v V) (int, bool) {
	i, ok := r.index[v]
	return i, ok
}

// Options returns a copy of the ordered options.
func (r *Registry[V]) Options() []Option[V] {
	return slices.Clone(r.options)
}

// Equal reports whether opts has the same values and labels in the same order.
func (r *Registry[V]) Equal(opts []Option[V]) bool {
	return slices.Equal(r.options, opts)
}

// SameValues reports whether other holds the same values in the same order,
// regardless of labels.
func (r *Registry[V]) SameValues(other *Registry[V]) bool {
	if other == nil || len(r.options) != len(other.options) {
		return false
	}
	for i := range r.options {
		if r.options[i].Value != other.options[i].Value {
			return false
		}
	}
	return true
}
