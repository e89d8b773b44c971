/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"iter"
)

var _ IQueue[string] = &Adapter[string]{}

// NewAdapter returns a queue storing its elements in storage and removing them in the order given by ordering.
// The adapter owns both for its lifetime: they must not be shared with another queue.
// A nil storage defaults to an ArrayStorage and a nil ordering to FIFO.
//
// The adapter is not thread safe: Dequeue peeks then removes in two separate storage calls. Wrap it with
// NewThreadSafeQueue if it is shared between goroutines.
func NewAdapter[T any](storage IStorage[T], ordering IOrdering) *Adapter[T] {
	if storage == nil {
		storage = NewArrayStorage[T]()
	}
	if ordering == nil {
		ordering = FIFOOrdering{}
	}
	return &Adapter[T]{
		storage:  storage,
		ordering: ordering,
	}
}

type Adapter[T any] struct {
	storage  IStorage[T]
	ordering IOrdering
}

// Policy returns the removal order of the queue.
func (a *Adapter[T]) Policy() Policy {
	return a.ordering.Policy()
}

func (a *Adapter[T]) Enqueue(value T) []T {
	a.storage.Add(value)
	return a.storage.All()
}

func (a *Adapter[T]) EnqueueSequence(seq iter.Seq[T]) []T {
	if seq != nil {
		for v := range seq {
			a.storage.Add(v)
		}
	}
	return a.storage.All()
}

func (a *Adapter[T]) Dequeue() (element T, ok bool) {
	policy := a.ordering.Policy()
	element, ok = a.storage.Get(policy)
	if !ok {
		return
	}
	a.storage.Remove(policy)
	return
}

func (a *Adapter[T]) Peek() (element T, ok bool) {
	return a.storage.Get(a.ordering.Policy())
}

func (a *Adapter[T]) List() []T {
	return a.storage.All()
}

// Len returns the length of a snapshot of the storage contents.
func (a *Adapter[T]) Len() int {
	return len(a.storage.All())
}

func (a *Adapter[T]) IsEmpty() bool {
	return a.Len() == 0
}

func (a *Adapter[T]) Clear() {
	a.storage.Clear()
}

func (a *Adapter[T]) Values() iter.Seq[T] {
	return drain(a.Dequeue)
}
