/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

const minRingCapacity = 8

// NewRingStorage returns a storage backed by a growable circular buffer.
// Elements are removed at either end in O(1) without any key deletion; the buffer doubles when full.
func NewRingStorage[T any]() *RingStorage[T] {
	return &RingStorage[T]{}
}

type RingStorage[T any] struct {
	buf    []T
	head   int // position of the oldest element
	length int
}

func (s *RingStorage[T]) All() []T {
	values := make([]T, 0, s.length)
	for i := 0; i < s.length; i++ {
		values = append(values, s.buf[s.wrapIndex(i)])
	}
	return values
}

func (s *RingStorage[T]) Get(policy Policy) (element T, ok bool) {
	if s.length == 0 {
		return
	}
	switch policy {
	case FIFO:
		return s.buf[s.head], true
	case LIFO:
		return s.buf[s.wrapIndex(s.length-1)], true
	}
	return
}

func (s *RingStorage[T]) Add(value T) {
	if s.length == len(s.buf) {
		s.grow()
	}
	s.buf[s.wrapIndex(s.length)] = value
	s.length++
}

func (s *RingStorage[T]) Remove(policy Policy) {
	if s.length == 0 {
		return
	}
	var zero T
	switch policy {
	case FIFO:
		s.buf[s.head] = zero
		s.head = s.wrapIndex(1)
		s.length--
	case LIFO:
		s.buf[s.wrapIndex(s.length-1)] = zero
		s.length--
	default:
		return
	}
	if s.length == 0 {
		s.head = 0
	}
}

func (s *RingStorage[T]) Len() int {
	return s.length
}

func (s *RingStorage[T]) Clear() {
	s.buf = nil
	s.head = 0
	s.length = 0
}

// Cap returns the number of elements the buffer holds before growing.
func (s *RingStorage[T]) Cap() int {
	return len(s.buf)
}

// wrapIndex converts a position relative to the head into an index of the buffer.
func (s *RingStorage[T]) wrapIndex(i int) int {
	return (s.head + i) % len(s.buf)
}

func (s *RingStorage[T]) grow() {
	capacity := max(2*len(s.buf), minRingCapacity)
	buf := make([]T, capacity)
	for i := 0; i < s.length; i++ {
		buf[i] = s.buf[s.wrapIndex(i)]
	}
	s.buf = buf
	s.head = 0
}
