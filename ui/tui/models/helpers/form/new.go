// Copyright (c) 2026 Little Tools Team
// Little Tools - small, private utilities for everyday tasks
// This source code is licensed under the AGPLv3 license found in the LICENSE file.

package form

type NewOpt[T any] = func(form *Form[T])

func New[T any](opts ...NewOpt[T]) *Form[T] {
	form := &Form[T]{Gap: 1}
	for _, opt := range opts {
		opt(form)
	}
	return form
}

// WithInput adds input on a row of its own.
func WithInput[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		form.items = append(form.items, formItem{id: id, input: input})
		form.rows = append(form.rows, formRow{items: []int{len(form.items) - 1}})
	}
}

// WithInline adds input to the row of the previous input.
func WithInline[T any](id string, input FormInput) NewOpt[T] {
	return func(form *Form[T]) {
		if len(form.rows) == 0 {
			WithInput[T](id, input)(form)
			return
		}
		form.items = append(form.items, formItem{id: id, input: input})
		last := &form.rows[len(form.rows)-1]
		last.items = append(last.items, len(form.items)-1)
	}
}

// WithOnChange registers fn, called with the id of an input whose value
// changed.
func WithOnChange[T any](fn func(id string)) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnChange = fn
	}
}

// WithOnLeave registers fn, called with the id of an input that lost focus.
func WithOnLeave[T any](fn func(id string)) NewOpt[T] {
	return func(form *Form[T]) {
		form.OnLeave = fn
	}
}

func WithGap[T any](gap int) NewOpt[T] {
	return func(form *Form[T]) {
		form.Gap = gap
	}
}
