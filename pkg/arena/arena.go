// Copyright 2025 FlintDB Authors.
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

// Package arena provides the append-only node stores that back the logical
// plan and expression IRs. Plan rewriting never holds two references into the
// same node: a value is taken out, transformed and put back (possibly at a
// fresh handle), which is what allows in-place graph mutation over shared
// substructure.
package arena

// Node is a handle into an Arena. It identifies a plan or expression node
// without owning it; all parent/child links in the IR are Nodes.
type Node uint32

// Arena is an append-only store from Node to T. A dangling Node is a bug in
// the caller, so lookups index the backing slice directly and panic on
// out-of-range handles rather than returning an error.
type Arena[T any] struct {
	items []T
}

// New creates an arena with the given initial capacity.
func New[T any](capacity int) *Arena[T] {
	return &Arena[T]{items: make([]T, 0, capacity)}
}

// Add inserts a value and returns its handle.
func (a *Arena[T]) Add(v T) Node {
	a.items = append(a.items, v)
	return Node(len(a.items) - 1)
}

// Get returns the value at n.
func (a *Arena[T]) Get(n Node) T {
	return a.items[n]
}

// Take removes and returns the value at n, leaving the zero value as a
// placeholder. The caller must Replace the slot before the enclosing rewrite
// returns, or the arena is left inconsistent.
func (a *Arena[T]) Take(n Node) T {
	v := a.items[n]
	var zero T
	a.items[n] = zero
	return v
}

// Replace re-inserts a value at an existing handle.
func (a *Arena[T]) Replace(n Node, v T) {
	a.items[n] = v
}

// Len returns the number of slots allocated so far.
func (a *Arena[T]) Len() int {
	return len(a.items)
}
