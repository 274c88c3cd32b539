// util/optional.go
// Copyright(c) 2024-2026 gogkit contributors, licensed under the GNU Public License, Version 3.
// SPDX: GPL-3.0-only

package util

// Optional is a value that may be unset; the zero Optional is unset.
// Distinguishes "never provided" from a legitimately zero value.
type Optional[T any] struct {
	value T
	set   bool
}

func Some[T any](v T) Optional[T] {
	return Optional[T]{value: v, set: true}
}

func (o Optional[T]) IsSet() bool { return o.set }

// Get returns the value and whether it was set; the value is the zero value
// of T when unset.
func (o Optional[T]) Get() (T, bool) {
	return o.value, o.set
}

// GetOr returns the value, or def when unset.
func (o Optional[T]) GetOr(def T) T {
	if o.set {
		return o.value
	}
	return def
}

func (o *Optional[T]) Set(v T) {
	o.value = v
	o.set = true
}

func (o *Optional[T]) Clear() {
	var zero T
	o.value = zero
	o.set = false
}
