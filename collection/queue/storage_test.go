/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/ARM-software/golang-queues/commonerrors"
	"github.com/ARM-software/golang-queues/commonerrors/errortest"
)

func TestNewStorage(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			storage, err := NewStorage[string](kind)
			require.NoError(t, err)
			require.NotNil(t, storage)
			assert.Zero(t, storage.Len())
		})
	}
	_, err := NewStorage[string](Kind(len(Kinds)))
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrUnsupported)
}

func TestStorage(t *testing.T) {
	for _, kind := range Kinds {
		t.Run(kind.String(), func(t *testing.T) {
			t.Run("empty storage", func(t *testing.T) {
				storage, err := NewStorage[string](kind)
				require.NoError(t, err)
				assert.Empty(t, storage.All())
				assert.NotNil(t, storage.All())
				for _, policy := range Policies {
					v, ok := storage.Get(policy)
					assert.False(t, ok)
					assert.Zero(t, v)
					storage.Remove(policy)
				}
				assert.Zero(t, storage.Len())
			})

			t.Run("get selects according to the policy", func(t *testing.T) {
				storage, err := NewStorage[string](kind)
				require.NoError(t, err)
				storage.Add("a")
				storage.Add("b")
				storage.Add("c")
				v, ok := storage.Get(FIFO)
				require.True(t, ok)
				assert.Equal(t, "a", v)
				v, ok = storage.Get(LIFO)
				require.True(t, ok)
				assert.Equal(t, "c", v)
				assert.Equal(t, []string{"a", "b", "c"}, storage.All())
				assert.Equal(t, 3, storage.Len())
			})

			t.Run("FIFO removal drops the oldest element", func(t *testing.T) {
				storage, err := NewStorage[string](kind)
				require.NoError(t, err)
				storage.Add("a")
				storage.Add("b")
				storage.Remove(FIFO)
				assert.Equal(t, []string{"b"}, storage.All())
				assert.Equal(t, 1, storage.Len())
				storage.Remove(FIFO)
				assert.Empty(t, storage.All())
				assert.Zero(t, storage.Len())
			})

			t.Run("mixed removal keeps a true count", func(t *testing.T) {
				storage, err := NewStorage[string](kind)
				require.NoError(t, err)
				for _, v := range []string{"a", "b", "c", "d", "e"} {
					storage.Add(v)
				}
				storage.Remove(FIFO)
				storage.Remove(LIFO)
				assert.Equal(t, []string{"b", "c", "d"}, storage.All())
				assert.Equal(t, 3, storage.Len())
				storage.Add("f")
				storage.Remove(FIFO)
				assert.Equal(t, []string{"c", "d", "f"}, storage.All())
				storage.Remove(LIFO)
				storage.Remove(LIFO)
				storage.Remove(FIFO)
				assert.Empty(t, storage.All())
				assert.Zero(t, storage.Len())
				_, ok := storage.Get(FIFO)
				assert.False(t, ok)
				storage.Remove(LIFO)
				assert.Zero(t, storage.Len())
			})

			t.Run("unknown policy", func(t *testing.T) {
				storage, err := NewStorage[string](kind)
				require.NoError(t, err)
				storage.Add(faker.Word())
				_, ok := storage.Get(Policy(len(Policies)))
				assert.False(t, ok)
				storage.Remove(Policy(len(Policies)))
				assert.Equal(t, 1, storage.Len())
			})

			t.Run("all returns a copy", func(t *testing.T) {
				storage, err := NewStorage[string](kind)
				require.NoError(t, err)
				storage.Add("a")
				all := storage.All()
				all[0] = "modified"
				assert.Equal(t, []string{"a"}, storage.All())
			})

			t.Run("clear then reuse", func(t *testing.T) {
				storage, err := NewStorage[string](kind)
				require.NoError(t, err)
				storage.Add(faker.Word())
				storage.Add(faker.Word())
				storage.Clear()
				assert.Zero(t, storage.Len())
				storage.Add("a")
				assert.Equal(t, []string{"a"}, storage.All())
			})
		})
	}
}

func TestArrayStorageFIFORemovalRemoves(t *testing.T) {
	storage := NewArrayStorage[string]()
	storage.Add("a")
	storage.Add("b")
	storage.Remove(FIFO)
	v, ok := storage.Get(FIFO)
	require.True(t, ok)
	assert.Equal(t, "b", v)
	assert.Equal(t, []string{"b"}, storage.values.values)
}

func TestSparseStorageEmptiness(t *testing.T) {
	storage := NewSparseStorage[string]()
	storage.Add("a")
	storage.Add("b")
	storage.Remove(FIFO)
	storage.Remove(LIFO)
	assert.Equal(t, storage.index.first, storage.index.last)
	assert.Zero(t, storage.Len())
	storage.Remove(FIFO)
	assert.Equal(t, 1, storage.index.first)
	assert.Equal(t, 1, storage.index.last)
	storage.Add("c")
	assert.Equal(t, []string{"c"}, storage.All())
}
