package state

import (
	"slices"
	"sync"
)

// Listener receives the new value of an observed field. A non-nil error stops
// notification of the remaining listeners and is returned to the setter.
type Listener[T any] func(T) error

// Unsubscribe removes a listener. Calls after the first are no-ops.
type Unsubscribe func()

type subscription[T any] struct {
	fn      Listener[T]
	removed bool // guarded by the owning Value's mu
}

// Value is a single observable field.
type Value[T any] struct {
	mu        sync.Mutex
	value     T
	equal     func(a, b T) bool
	listeners []*subscription[T]
}

// NewValue returns a Value compared with ==.
func NewValue[T comparable](initial T) *Value[T] {
	return NewValueFunc(initial, func(a, b T) bool { return a == b })
}

// NewValueFunc returns a Value compared with equal.
func NewValueFunc[T any](initial T, equal func(a, b T) bool) *Value[T] {
	return &Value[T]{value: initial, equal: equal}
}

// Get returns the current value.
func (v *Value[T]) Get() T {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.value
}

// Set stores next when it differs from the current value and then calls every
// listener in subscription order. It reports whether the value changed.
// Listeners run without the lock held, so they may read or set the Value. A
// listener unsubscribed by an earlier one during the same Set is skipped.
func (v *Value[T]) Set(next T) (bool, error) {
	v.mu.Lock()
	if v.equal(v.value, next) {
		v.mu.Unlock()
		return false, nil
	}
	v.value = next
	subs := slices.Clone(v.listeners)
	v.mu.Unlock()

	for _, s := range subs {
		if !v.live(s) {
			continue
		}
		if err := s.fn(next); err != nil {
			return true, err
		}
	}
	return true, nil
}

// Subscribe registers fn and returns the function that removes it.
func (v *Value[T]) Subscribe(fn Listener[T]) Unsubscribe {
	s := &subscription[T]{fn: fn}

	v.mu.Lock()
	v.listeners = append(v.listeners, s)
	v.mu.Unlock()

	var once sync.Once
	return func() {
		once.Do(func() {
			v.mu.Lock()
			defer v.mu.Unlock()
			s.removed = true
			v.listeners = slices.DeleteFunc(v.listeners, func(x *subscription[T]) bool {
				return x == s
			})
		})
	}
}

func (v *Value[T]) live(s *subscription[T]) bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return !s.removed
}

// Listeners returns the number of registered listeners.
func (v *Value[T]) Listeners() int {
	v.mu.Lock()
	defer v.mu.Unlock()
	return len(v.listeners)
}
