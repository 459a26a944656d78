package pegium

import (
	"sync"
	"sync/atomic"
)

// Reference is an unresolved cross-reference to an AST node of type T: a
// textual key captured during parsing plus a lazily-invoked resolver
// supplied by the host. Resolution is not part of parsing; it happens on
// first Get, is cached, and is safe under concurrent readers via
// double-checked single initialization.
type Reference[T any] struct {
	key      string
	resolve  func(string) (*T, bool)
	mu       sync.Mutex
	resolved atomic.Bool
	target   *T
}

// Key returns the textual key captured for this reference.
func (r *Reference[T]) Key() string { return r.key }

// Get resolves and returns the referenced node, or nil if it cannot
// (yet) be resolved. A nil result leaves the reference unresolved so a
// later call can retry; the host decides what to do about an unresolved
// reference, this just never panics over one.
func (r *Reference[T]) Get() *T {
	if r.resolved.Load() {
		return r.target
	}
	r.mu.Lock()
	defer r.mu.Unlock()
	if !r.resolved.Load() {
		if v, ok := r.resolve(r.key); ok {
			r.target = v
			r.resolved.Store(true)
		}
	}
	return r.target
}

// AssignRef builds an assignment that sets a cross-reference field: the
// matched text becomes the reference's key, and resolve is the host-
// supplied lookup invoked lazily on first Reference.Get.
func AssignRef[T any, H any](field func(*H) *Reference[T], element Element, resolve func(string) (*T, bool)) *Assignment {
	return newAssignment(element, func(rec any, value any) {
		h, ok := rec.(*H)
		if !ok {
			panicf("assignRef: record is %T, not %T", rec, h)
		}
		key, ok := value.(string)
		if !ok {
			panicf("assignRef: cannot use value of type %T as a reference key", value)
		}
		*field(h) = Reference[T]{key: key, resolve: resolve}
	})
}

// AppendRef builds an assignment that appends a cross-reference to a
// vector field.
func AppendRef[T any, H any](field func(*H) *[]Reference[T], element Element, resolve func(string) (*T, bool)) *Assignment {
	return newAssignment(element, func(rec any, value any) {
		h, ok := rec.(*H)
		if !ok {
			panicf("appendRef: record is %T, not %T", rec, h)
		}
		key, ok := value.(string)
		if !ok {
			panicf("appendRef: cannot use value of type %T as a reference key", value)
		}
		fp := field(h)
		*fp = append(*fp, Reference[T]{key: key, resolve: resolve})
	})
}
