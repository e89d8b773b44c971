/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"iter"

	"github.com/sasha-s/go-deadlock"
)

var _ IQueue[string] = &SafeQueue[string]{}

// NewThreadSafeQueue returns a queue which can be shared between goroutines. Every call to q is serialised,
// so a Dequeue made of several storage calls (see Adapter) is atomic for concurrent callers.
// A nil q defaults to an array FIFO queue.
// This is inspired from https://github.com/hayageek/threadsafe.
func NewThreadSafeQueue[T any](q IQueue[T]) IQueue[T] {
	if q == nil {
		q = NewArrayFIFOQueue[T]()
	}
	return &SafeQueue[T]{
		q:  q,
		mu: deadlock.Mutex{},
	}
}

type SafeQueue[T any] struct {
	q  IQueue[T]
	mu deadlock.Mutex
}

func (q *SafeQueue[T]) Enqueue(value T) []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Enqueue(value)
}

// EnqueueSequence consumes seq while holding the lock: seq must not use the queue itself.
func (q *SafeQueue[T]) EnqueueSequence(seq iter.Seq[T]) []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.EnqueueSequence(seq)
}

func (q *SafeQueue[T]) Dequeue() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Dequeue()
}

func (q *SafeQueue[T]) Peek() (T, bool) {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Peek()
}

func (q *SafeQueue[T]) List() []T {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.List()
}

func (q *SafeQueue[T]) Len() int {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.Len()
}

func (q *SafeQueue[T]) IsEmpty() bool {
	q.mu.Lock()
	defer q.mu.Unlock()
	return q.q.IsEmpty()
}

func (q *SafeQueue[T]) Clear() {
	q.mu.Lock()
	defer q.mu.Unlock()
	q.q.Clear()
}

// Values takes the lock for each element rather than for the whole iteration, so other goroutines may
// interleave with the consumer of the sequence.
func (q *SafeQueue[T]) Values() iter.Seq[T] {
	return drain(q.Dequeue)
}
