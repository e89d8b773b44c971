/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"fmt"
	"runtime"
	"slices"
	"strconv"
	"testing"

	mapset "github.com/deckarep/golang-set/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.uber.org/atomic"
	"go.uber.org/goleak"
	"golang.org/x/sync/errgroup"
)

func TestThreadSafeQueue(t *testing.T) {
	const (
		enqueuers   = 8
		dequeuers   = 8
		perEnqueuer = 2_000
		total       = enqueuers * perEnqueuer
		repetitions = 5
	)

	tests := []struct {
		details     string
		constructor func() IQueue[string]
	}{
		{
			details:     "array FIFO queue",
			constructor: NewArrayFIFOQueue[string],
		},
		{
			details:     "sparse LIFO queue",
			constructor: NewSparseLIFOQueue[string],
		},
		{
			details: "sparse adapter with mixed removal",
			constructor: func() IQueue[string] {
				return NewAdapter[string](NewSparseStorage[string](), FIFOOrdering{})
			},
		},
		{
			details: "ring LIFO adapter",
			constructor: func() IQueue[string] {
				return NewAdapter[string](NewRingStorage[string](), LIFOOrdering{})
			},
		},
	}

	for _, test := range tests {
		t.Run(test.details, func(t *testing.T) {
			defer goleak.VerifyNone(t)
			for rep := 0; rep < repetitions; rep++ {
				q := NewThreadSafeQueue[string](test.constructor())
				id := atomic.NewUint64(0)
				popped := atomic.NewInt64(0)
				seen := mapset.NewSet[string]()

				g := errgroup.Group{}
				for e := 0; e < enqueuers; e++ {
					g.Go(func() error {
						for i := 0; i < perEnqueuer; i++ {
							q.Enqueue(strconv.FormatUint(id.Inc(), 10))
						}
						return nil
					})
				}
				for d := 0; d < dequeuers; d++ {
					g.Go(func() error {
						for popped.Load() < total {
							v, ok := q.Dequeue()
							if !ok {
								runtime.Gosched()
								continue
							}
							popped.Inc()
							if !seen.Add(v) {
								return fmt.Errorf("dequeued duplicate value %v in repetition %v", v, rep)
							}
						}
						return nil
					})
				}
				require.NoError(t, g.Wait())

				assert.Equal(t, int64(total), popped.Load())
				assert.Equal(t, total, seen.Cardinality())
				assert.True(t, q.IsEmpty())
				assert.Zero(t, q.Len())
			}
		})
	}
}

func TestThreadSafeQueueDefault(t *testing.T) {
	q := NewThreadSafeQueue[string](nil)
	q.EnqueueSequence(slices.Values([]string{"a", "b"}))
	assert.Equal(t, []string{"a", "b"}, q.List())
	v, ok := q.Peek()
	require.True(t, ok)
	assert.Equal(t, "a", v)
	assert.Equal(t, []string{"a", "b"}, slices.Collect(q.Values()))
	q.Enqueue("c")
	q.Clear()
	assert.True(t, q.IsEmpty())
}
