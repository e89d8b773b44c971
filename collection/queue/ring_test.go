/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"fmt"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRingStorageGrows(t *testing.T) {
	storage := NewRingStorage[string]()
	assert.Zero(t, storage.Cap())
	storage.Add("a")
	assert.Equal(t, minRingCapacity, storage.Cap())

	var expected []string
	expected = append(expected, "a")
	for i := 1; i < 3*minRingCapacity; i++ {
		v := fmt.Sprintf("v%d", i)
		storage.Add(v)
		expected = append(expected, v)
	}
	assert.Equal(t, 4*minRingCapacity, storage.Cap())
	assert.Equal(t, expected, storage.All())
	assert.Equal(t, len(expected), storage.Len())
}

func TestRingStorageWrapsAround(t *testing.T) {
	storage := NewRingStorage[string]()
	for i := 0; i < minRingCapacity; i++ {
		storage.Add(fmt.Sprintf("v%d", i))
	}
	for i := 0; i < minRingCapacity/2; i++ {
		storage.Remove(FIFO)
	}
	assert.Equal(t, minRingCapacity/2, storage.head)

	for i := minRingCapacity; i < minRingCapacity+minRingCapacity/2; i++ {
		storage.Add(fmt.Sprintf("v%d", i))
	}
	// the buffer is full but wrapped: no growth yet
	assert.Equal(t, minRingCapacity, storage.Cap())
	v, ok := storage.Get(FIFO)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf("v%d", minRingCapacity/2), v)
	v, ok = storage.Get(LIFO)
	require.True(t, ok)
	assert.Equal(t, fmt.Sprintf("v%d", minRingCapacity+minRingCapacity/2-1), v)

	storage.Add("last")
	assert.Equal(t, 2*minRingCapacity, storage.Cap())
	assert.Zero(t, storage.head)
	all := storage.All()
	require.Len(t, all, minRingCapacity+1)
	assert.Equal(t, fmt.Sprintf("v%d", minRingCapacity/2), all[0])
	assert.Equal(t, "last", all[len(all)-1])
}

func TestRingStorageReleasesRemovedElements(t *testing.T) {
	storage := NewRingStorage[string]()
	storage.Add("a")
	storage.Add("b")
	storage.Add("c")
	storage.Remove(FIFO)
	storage.Remove(LIFO)
	assert.Zero(t, storage.buf[0])
	assert.Zero(t, storage.buf[2])
	assert.Equal(t, "b", storage.buf[1])

	storage.Remove(LIFO)
	assert.Zero(t, storage.head)
	assert.Zero(t, storage.Len())
}
