/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import "iter"

var (
	_ IQueue[string] = &SparseFIFOQueue[string]{}
	_ IQueue[string] = &SparseLIFOQueue[string]{}
)

// NewSparseFIFOQueue returns a FIFO queue backed by a map indexed by insertion position.
// Enqueue and Dequeue are O(1): removing the oldest element only advances a cursor. It is not thread safe.
func NewSparseFIFOQueue[T any]() IQueue[T] {
	return &SparseFIFOQueue[T]{}
}

// NewSparseLIFOQueue returns a LIFO queue backed by a map indexed by insertion position. It is not thread safe.
func NewSparseLIFOQueue[T any]() IQueue[T] {
	return &SparseLIFOQueue[T]{}
}

type SparseFIFOQueue[T any] struct {
	index indexMap[T]
}

func (q *SparseFIFOQueue[T]) Enqueue(value T) []T {
	q.index.push(value)
	return q.List()
}

func (q *SparseFIFOQueue[T]) EnqueueSequence(seq iter.Seq[T]) []T {
	q.index.pushSequence(seq)
	return q.List()
}

func (q *SparseFIFOQueue[T]) Peek() (element T, ok bool) {
	if q.IsEmpty() {
		return
	}
	return q.index.get(q.index.first)
}

func (q *SparseFIFOQueue[T]) Dequeue() (element T, ok bool) {
	if q.IsEmpty() {
		return
	}
	element, ok = q.index.take(q.index.first)
	q.index.first++
	return
}

func (q *SparseFIFOQueue[T]) List() []T {
	return q.index.values()
}

// Len counts the live entries rather than relying on the distance between cursors.
func (q *SparseFIFOQueue[T]) Len() int {
	return len(q.index.entries)
}

func (q *SparseFIFOQueue[T]) IsEmpty() bool {
	return q.index.first == q.index.last
}

func (q *SparseFIFOQueue[T]) Clear() {
	q.index.reset()
}

func (q *SparseFIFOQueue[T]) Values() iter.Seq[T] {
	return drain(q.Dequeue)
}

// SparseLIFOQueue only ever removes from the tail, so the head cursor stays at 0 and the tail cursor is the element count.
type SparseLIFOQueue[T any] struct {
	index indexMap[T]
}

func (q *SparseLIFOQueue[T]) Enqueue(value T) []T {
	q.index.push(value)
	return q.List()
}

func (q *SparseLIFOQueue[T]) EnqueueSequence(seq iter.Seq[T]) []T {
	q.index.pushSequence(seq)
	return q.List()
}

func (q *SparseLIFOQueue[T]) Peek() (element T, ok bool) {
	if q.IsEmpty() {
		return
	}
	return q.index.get(q.index.last - 1)
}

func (q *SparseLIFOQueue[T]) Dequeue() (element T, ok bool) {
	if q.IsEmpty() {
		return
	}
	element, ok = q.index.take(q.index.last - 1)
	q.index.last--
	return
}

func (q *SparseLIFOQueue[T]) List() []T {
	return q.index.values()
}

func (q *SparseLIFOQueue[T]) Len() int {
	return q.index.last
}

func (q *SparseLIFOQueue[T]) IsEmpty() bool {
	return q.index.last == 0
}

func (q *SparseLIFOQueue[T]) Clear() {
	q.index.reset()
}

func (q *SparseLIFOQueue[T]) Values() iter.Seq[T] {
	return drain(q.Dequeue)
}

// indexMap maps insertion positions to values. Live keys lie in [first, last).
type indexMap[T any] struct {
	entries map[int]T
	first   int
	last    int
}

func (m *indexMap[T]) push(value T) {
	if m.entries == nil {
		m.entries = make(map[int]T)
	}
	m.entries[m.last] = value
	m.last++
}

func (m *indexMap[T]) pushSequence(seq iter.Seq[T]) {
	if seq == nil {
		return
	}
	for v := range seq {
		m.push(v)
	}
}

func (m *indexMap[T]) get(key int) (element T, ok bool) {
	element, ok = m.entries[key]
	return
}

func (m *indexMap[T]) take(key int) (element T, ok bool) {
	element, ok = m.entries[key]
	if ok {
		delete(m.entries, key)
	}
	return
}

// values materialises the live entries in ascending key order.
func (m *indexMap[T]) values() []T {
	values := make([]T, 0, len(m.entries))
	for key := m.first; key < m.last; key++ {
		if v, ok := m.entries[key]; ok {
			values = append(values, v)
		}
	}
	return values
}

func (m *indexMap[T]) reset() {
	m.entries = nil
	m.first = 0
	m.last = 0
}
