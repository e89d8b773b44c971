/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"github.com/ARM-software/golang-queues/commonerrors"
)

var (
	_ IStorage[string] = &ArrayStorage[string]{}
	_ IStorage[string] = &SparseStorage[string]{}
	_ IStorage[string] = &RingStorage[string]{}
)

// NewStorage returns an empty storage of the given kind.
func NewStorage[T any](kind Kind) (IStorage[T], error) {
	switch kind {
	case KindArray:
		return NewArrayStorage[T](), nil
	case KindSparse:
		return NewSparseStorage[T](), nil
	case KindRing:
		return NewRingStorage[T](), nil
	}
	return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "unknown storage kind [%v]", kind)
}

// NewArrayStorage returns a storage backed by a slice. Removing the oldest element is O(n).
func NewArrayStorage[T any]() *ArrayStorage[T] {
	return &ArrayStorage[T]{}
}

type ArrayStorage[T any] struct {
	values dense[T]
}

func (s *ArrayStorage[T]) All() []T {
	return s.values.List()
}

func (s *ArrayStorage[T]) Get(policy Policy) (element T, ok bool) {
	switch policy {
	case FIFO:
		return s.values.first()
	case LIFO:
		return s.values.last()
	}
	return
}

func (s *ArrayStorage[T]) Add(value T) {
	s.values.add(value)
}

func (s *ArrayStorage[T]) Remove(policy Policy) {
	switch policy {
	case FIFO:
		s.values.removeFirst()
	case LIFO:
		s.values.removeLast()
	}
}

func (s *ArrayStorage[T]) Len() int {
	return s.values.Len()
}

func (s *ArrayStorage[T]) Clear() {
	s.values.Clear()
}

// NewSparseStorage returns a storage backed by a map indexed by insertion position, with O(1) removal at both ends.
func NewSparseStorage[T any]() *SparseStorage[T] {
	return &SparseStorage[T]{}
}

// SparseStorage supports removal at both ends of the same instance: it is empty when both cursors meet and
// its length is the number of live entries.
type SparseStorage[T any] struct {
	index indexMap[T]
}

func (s *SparseStorage[T]) All() []T {
	return s.index.values()
}

func (s *SparseStorage[T]) Get(policy Policy) (element T, ok bool) {
	if s.isEmpty() {
		return
	}
	switch policy {
	case FIFO:
		return s.index.get(s.index.first)
	case LIFO:
		return s.index.get(s.index.last - 1)
	}
	return
}

func (s *SparseStorage[T]) Add(value T) {
	s.index.push(value)
}

func (s *SparseStorage[T]) Remove(policy Policy) {
	if s.isEmpty() {
		return
	}
	switch policy {
	case FIFO:
		_, _ = s.index.take(s.index.first)
		s.index.first++
	case LIFO:
		_, _ = s.index.take(s.index.last - 1)
		s.index.last--
	}
}

func (s *SparseStorage[T]) Len() int {
	return len(s.index.entries)
}

func (s *SparseStorage[T]) Clear() {
	s.index.reset()
}

func (s *SparseStorage[T]) isEmpty() bool {
	return s.index.first == s.index.last
}
