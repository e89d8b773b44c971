/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package queue provides queues of values removed either in FIFO or LIFO order.
//
// Dedicated variants exist for a dense slice (NewArrayFIFOQueue, NewArrayLIFOQueue) and for a sparse index map
// (NewSparseFIFOQueue, NewSparseLIFOQueue). Adapter composes any IStorage with any IOrdering instead.
package queue

import (
	"iter"
	"slices"
)

var (
	_ IQueue[string] = &ArrayFIFOQueue[string]{}
	_ IQueue[string] = &ArrayLIFOQueue[string]{}
)

// NewArrayFIFOQueue returns a FIFO queue backed by a slice. It is not thread safe.
// Dequeue shifts every remaining element and is therefore O(n): NewSparseFIFOQueue avoids this cost.
func NewArrayFIFOQueue[T any]() IQueue[T] {
	return &ArrayFIFOQueue[T]{}
}

// NewArrayLIFOQueue returns a LIFO queue backed by a slice. It is not thread safe.
func NewArrayLIFOQueue[T any]() IQueue[T] {
	return &ArrayLIFOQueue[T]{}
}

type ArrayFIFOQueue[T any] struct {
	dense[T]
}

func (q *ArrayFIFOQueue[T]) Enqueue(value T) []T {
	q.add(value)
	return q.List()
}

func (q *ArrayFIFOQueue[T]) EnqueueSequence(seq iter.Seq[T]) []T {
	q.addSequence(seq)
	return q.List()
}

func (q *ArrayFIFOQueue[T]) Peek() (element T, ok bool) {
	return q.first()
}

func (q *ArrayFIFOQueue[T]) Dequeue() (element T, ok bool) {
	element, ok = q.first()
	if ok {
		q.removeFirst()
	}
	return
}

func (q *ArrayFIFOQueue[T]) Values() iter.Seq[T] {
	return drain(q.Dequeue)
}

type ArrayLIFOQueue[T any] struct {
	dense[T]
}

func (q *ArrayLIFOQueue[T]) Enqueue(value T) []T {
	q.add(value)
	return q.List()
}

func (q *ArrayLIFOQueue[T]) EnqueueSequence(seq iter.Seq[T]) []T {
	q.addSequence(seq)
	return q.List()
}

func (q *ArrayLIFOQueue[T]) Peek() (element T, ok bool) {
	return q.last()
}

func (q *ArrayLIFOQueue[T]) Dequeue() (element T, ok bool) {
	element, ok = q.last()
	if ok {
		q.removeLast()
	}
	return
}

func (q *ArrayLIFOQueue[T]) Values() iter.Seq[T] {
	return drain(q.Dequeue)
}

// dense is a contiguous sequence of values, oldest first.
type dense[T any] struct {
	values []T
}

func (d *dense[T]) List() []T {
	return copyOf(d.values)
}

func (d *dense[T]) Len() int {
	return len(d.values)
}

func (d *dense[T]) IsEmpty() bool {
	return len(d.values) == 0
}

func (d *dense[T]) Clear() {
	clear(d.values)
	d.values = nil
}

func (d *dense[T]) add(value T) {
	d.values = append(d.values, value)
}

func (d *dense[T]) addSequence(seq iter.Seq[T]) {
	if seq == nil {
		return
	}
	for v := range seq {
		d.add(v)
	}
}

func (d *dense[T]) first() (element T, ok bool) {
	if len(d.values) == 0 {
		return
	}
	return d.values[0], true
}

func (d *dense[T]) last() (element T, ok bool) {
	if len(d.values) == 0 {
		return
	}
	return d.values[len(d.values)-1], true
}

// removeFirst shifts all the remaining elements down one position.
func (d *dense[T]) removeFirst() {
	if len(d.values) == 0 {
		return
	}
	d.values = slices.Delete(d.values, 0, 1)
}

func (d *dense[T]) removeLast() {
	if len(d.values) == 0 {
		return
	}
	var zero T
	d.values[len(d.values)-1] = zero
	d.values = d.values[:len(d.values)-1]
}

// copyOf returns a copy of values which is never nil.
func copyOf[T any](values []T) []T {
	return append(make([]T, 0, len(values)), values...)
}

// drain returns a sequence dequeuing elements until the queue is empty or iteration stops.
func drain[T any](dequeue func() (T, bool)) iter.Seq[T] {
	return func(yield func(T) bool) {
		for {
			v, ok := dequeue()
			if !ok || !yield(v) {
				return
			}
		}
	}
}
