// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

// Package slicest holds the few generic slice helpers the TUI components share.
package slicest

// Map applies fn to every element of s.
func Map[T any, S ~[]T, U any](s S, fn func(T) U) []U {
	return MapI(s, func(_ int, t T) U { return fn(t) })
}

// MapI is Map with the element index passed to fn.
func MapI[T any, S ~[]T, U any](s S, fn func(int, T) U) []U {
	if s == nil {
		return nil
	}
	result := make([]U, len(s))
	for i, t := range s {
		result[i] = fn(i, t)
	}
	return result
}

// Reduce folds s into a U starting from the zero value.
func Reduce[T any, S ~[]T, U any](s S, fn func(T, U) U) U {
	var zero U
	return ReduceD(s, zero, fn)
}

// ReduceD folds s into a U starting from init.
func ReduceD[T any, S ~[]T, U any](s S, init U, fn func(T, U) U) U {
	for _, t := range s {
		init = fn(t, init)
	}
	return init
}

// IndexFunc returns the index of the first element matching fn, or -1.
func IndexFunc[T any, S ~[]T](s S, fn func(T) bool) int {
	for i, t := range s {
		if fn(t) {
			return i
		}
	}
	return -1
}
