/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import "iter"

//go:generate go tool mockgen -destination=../../mocks/mock_$GOPACKAGE.go -package=mocks github.com/ARM-software/golang-queues/collection/$GOPACKAGE IStorage,IOrdering

// IQueue specifies the behaviour of a collection whose removal order is defined by a Policy.
// Implementations are not thread safe unless stated otherwise (see NewThreadSafeQueue).
type IQueue[T any] interface {
	// Enqueue adds value as the newest element. It returns a copy of the queue contents in storage order.
	Enqueue(value T) []T
	// EnqueueSequence adds all the values of a sequence. It returns a copy of the queue contents in storage order.
	EnqueueSequence(seq iter.Seq[T]) []T
	// Dequeue removes and returns the element selected by the queue policy. It returns ok false if the queue is empty.
	Dequeue() (element T, ok bool)
	// Peek returns the element Dequeue would remove, without removing it. It returns ok false if the queue is empty.
	Peek() (element T, ok bool)
	// List returns a copy of all the elements in storage order i.e. oldest first, whatever the policy.
	List() []T
	// Len returns the number of elements in the queue.
	Len() int
	// IsEmpty states whether the queue is empty.
	IsEmpty() bool
	// Clear removes all elements from the queue.
	Clear()
	// Values returns all the elements in removal order. The queue will be empty as a result.
	Values() iter.Seq[T]
}

// IStorage describes where queue elements are kept, without committing to a removal order.
type IStorage[T any] interface {
	// All returns a copy of all the elements in storage order.
	All() []T
	// Get returns the element policy would select next. It returns ok false if the storage is empty.
	Get(policy Policy) (element T, ok bool)
	// Add appends value as the newest element.
	Add(value T)
	// Remove deletes the element policy would select next. It does nothing if the storage is empty.
	Remove(policy Policy)
	// Len returns the number of elements stored.
	Len() int
	// Clear removes all elements.
	Clear()
}

// IOrdering describes the removal order of a queue.
type IOrdering interface {
	Policy() Policy
}
