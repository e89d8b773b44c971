/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"io"

	"github.com/go-logr/logr"

	"github.com/ARM-software/golang-queues/commonerrors"
	"github.com/ARM-software/golang-queues/logs"
)

const loggerName = "queue"

var (
	Kinds    = []Kind{KindArray, KindSparse, KindRing}
	Policies = []Policy{FIFO, LIFO}
)

// NewQueue returns the dedicated queue for a storage kind and a policy.
// Ring storage has no dedicated variant: use NewAdapter with NewRingStorage instead.
func NewQueue[T any](kind Kind, policy Policy) (IQueue[T], error) {
	if !policy.IsAPolicy() {
		return nil, commonerrors.Newf(commonerrors.ErrInvalid, "unknown ordering policy [%v]", policy)
	}
	switch kind {
	case KindArray:
		if policy == LIFO {
			return NewArrayLIFOQueue[T](), nil
		}
		return NewArrayFIFOQueue[T](), nil
	case KindSparse:
		if policy == LIFO {
			return NewSparseLIFOQueue[T](), nil
		}
		return NewSparseFIFOQueue[T](), nil
	}
	return nil, commonerrors.Newf(commonerrors.ErrUnsupported, "no dedicated queue for storage [%v]", kind)
}

// NewFromConfiguration returns an adapter over the configured storage and ordering. When requested, operations are
// logged to logger and the queue is made thread safe, in that order so that log entries are serialised too.
func NewFromConfiguration[T any](cfg *Configuration, logger logr.Logger) (q IQueue[T], err error) {
	if cfg == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing queue configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		return
	}
	storage, err := NewStorage[T](cfg.Storage)
	if err != nil {
		return
	}
	ordering, err := NewOrdering(cfg.Ordering)
	if err != nil {
		return
	}
	q = NewAdapter[T](storage, ordering)
	if cfg.LogOperations {
		q, err = NewLoggedQueue[T](q, logger)
		if err != nil {
			q = nil
			return
		}
	}
	if cfg.ThreadSafe {
		q = NewThreadSafeQueue[T](q)
	}
	return
}

// NewConfiguredQueue is the same as NewFromConfiguration but builds the logger described by cfg.Logging.
// The returned closer releases the logger resources and must be closed once the queue is no longer used.
func NewConfiguredQueue[T any](cfg *Configuration) (q IQueue[T], closer io.Closer, err error) {
	if cfg == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing queue configuration")
		return
	}
	logger, loggerCloser, err := logs.NewLogger(&cfg.Logging, loggerName)
	if err != nil {
		return
	}
	q, err = NewFromConfiguration[T](cfg, logger)
	if err != nil {
		_ = loggerCloser.Close()
		return
	}
	closer = loggerCloser
	return
}
