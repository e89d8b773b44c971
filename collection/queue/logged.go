/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"iter"

	"github.com/go-logr/logr"
	"go.uber.org/atomic"

	"github.com/ARM-software/golang-queues/commonerrors"
)

const operationVerbosity = 1

var _ IQueue[string] = &LoggedQueue[string]{}

// Statistics summarises the activity of a LoggedQueue.
type Statistics struct {
	Enqueued      uint64
	Dequeued      uint64
	EmptyDequeues uint64
}

// NewLoggedQueue returns a queue reporting every operation made on q to logger at V-level 1. A discarding logger
// (e.g. logr.Discard()) is accepted, in which case only the statistics are kept.
// The counters it keeps are safe for concurrent use but the decorator does not make q itself thread safe.
func NewLoggedQueue[T any](q IQueue[T], logger logr.Logger) (*LoggedQueue[T], error) {
	if q == nil {
		return nil, commonerrors.New(commonerrors.ErrUndefined, "missing queue")
	}
	return &LoggedQueue[T]{
		q:             q,
		logger:        logger,
		enqueued:      atomic.NewUint64(0),
		dequeued:      atomic.NewUint64(0),
		emptyDequeues: atomic.NewUint64(0),
	}, nil
}

type LoggedQueue[T any] struct {
	q             IQueue[T]
	logger        logr.Logger
	enqueued      *atomic.Uint64
	dequeued      *atomic.Uint64
	emptyDequeues *atomic.Uint64
}

func (q *LoggedQueue[T]) Enqueue(value T) []T {
	values := q.q.Enqueue(value)
	q.enqueued.Inc()
	q.log("enqueue", len(values))
	return values
}

func (q *LoggedQueue[T]) EnqueueSequence(seq iter.Seq[T]) []T {
	before := q.q.Len()
	values := q.q.EnqueueSequence(seq)
	if added := len(values) - before; added > 0 {
		q.enqueued.Add(uint64(added))
	}
	q.log("enqueue sequence", len(values))
	return values
}

func (q *LoggedQueue[T]) Dequeue() (element T, ok bool) {
	element, ok = q.q.Dequeue()
	if ok {
		q.dequeued.Inc()
	} else {
		q.emptyDequeues.Inc()
	}
	q.log("dequeue", q.q.Len(), "found", ok)
	return
}

func (q *LoggedQueue[T]) Peek() (element T, ok bool) {
	element, ok = q.q.Peek()
	q.log("peek", q.q.Len(), "found", ok)
	return
}

func (q *LoggedQueue[T]) List() []T {
	return q.q.List()
}

func (q *LoggedQueue[T]) Len() int {
	return q.q.Len()
}

func (q *LoggedQueue[T]) IsEmpty() bool {
	return q.q.IsEmpty()
}

func (q *LoggedQueue[T]) Clear() {
	q.q.Clear()
	q.log("clear", q.q.Len())
}

func (q *LoggedQueue[T]) Values() iter.Seq[T] {
	return drain(q.Dequeue)
}

// Statistics returns the number of operations performed so far.
func (q *LoggedQueue[T]) Statistics() Statistics {
	return Statistics{
		Enqueued:      q.enqueued.Load(),
		Dequeued:      q.dequeued.Load(),
		EmptyDequeues: q.emptyDequeues.Load(),
	}
}

func (q *LoggedQueue[T]) log(operation string, length int, keysAndValues ...any) {
	q.logger.V(operationVerbosity).Info("queue operation", append([]any{"operation", operation, "length", length}, keysAndValues...)...)
}
