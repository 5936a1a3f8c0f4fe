package stack

import (
	"slices"
)

type Stack[T any] struct {
	items []T
}

func New[T any]() *Stack[T] {
	return &Stack[T]{}
}

// NewWithCapacity reduces allocations when approximate stack size is known.
func NewWithCapacity[T any](capacity int) *Stack[T] {
	return &Stack[T]{
		items: make([]T, 0, capacity),
	}
}

// From builds a stack whose top is the last element of items.
// The slice is copied.
func From[T any](items []T) *Stack[T] {
	return &Stack[T]{
		items: slices.Clone(items),
	}
}

// Push adds elements in order with the last element at the top.
func (s *Stack[T]) Push(items ...T) {
	s.items = append(s.items, items...)
}

func (s *Stack[T]) Pop() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	index := len(s.items) - 1
	item := s.items[index]
	s.items = s.items[:index]
	return item, true
}

func (s *Stack[T]) Peek() (T, bool) {
	if len(s.items) == 0 {
		var zero T
		return zero, false
	}

	return s.items[len(s.items)-1], true
}

func (s *Stack[T]) IsEmpty() bool {
	return len(s.items) == 0
}

func (s *Stack[T]) Size() int {
	return len(s.items)
}

// ToSlice orders from bottom to top of the stack.
func (s *Stack[T]) ToSlice() []T {
	return slices.Clone(s.items)
}

// DrainInto pops every element onto dst, reversing their order.
func (s *Stack[T]) DrainInto(dst *Stack[T]) {
	s.DrainUntil(dst, func(T) bool { return false })
}

// DrainUntil pops elements onto dst until the top satisfies stop.
// The stopping element stays on s.
func (s *Stack[T]) DrainUntil(dst *Stack[T], stop func(T) bool) {
	for {
		item, ok := s.Peek()
		if !ok || stop(item) {
			return
		}
		s.items = s.items[:len(s.items)-1]
		dst.Push(item)
	}
}
