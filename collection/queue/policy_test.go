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

func TestParsePolicy(t *testing.T) {
	tests := []struct {
		text     string
		expected Policy
	}{
		{text: "fifo", expected: FIFO},
		{text: "FIFO", expected: FIFO},
		{text: " lifo ", expected: LIFO},
		{text: "Lifo", expected: LIFO},
	}
	for _, test := range tests {
		t.Run(test.text, func(t *testing.T) {
			policy, err := ParsePolicy(test.text)
			require.NoError(t, err)
			assert.Equal(t, test.expected, policy)
		})
	}
	_, err := ParsePolicy(faker.Word() + "-policy")
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}

func TestPolicyText(t *testing.T) {
	assert.Equal(t, "fifo", FIFO.String())
	assert.Equal(t, "lifo", LIFO.String())
	for _, policy := range Policies {
		text, err := policy.MarshalText()
		require.NoError(t, err)
		var decoded Policy
		require.NoError(t, decoded.UnmarshalText(text))
		assert.Equal(t, policy, decoded)
	}
	assert.False(t, Policy(len(Policies)).IsAPolicy())
	assert.ElementsMatch(t, Policies, PolicyValues())
}

func TestParseKind(t *testing.T) {
	for _, kind := range Kinds {
		parsed, err := ParseKind(kind.String())
		require.NoError(t, err)
		assert.Equal(t, kind, parsed)
	}
	parsed, err := ParseKind("SPARSE")
	require.NoError(t, err)
	assert.Equal(t, KindSparse, parsed)
	_, err = ParseKind("linked-list")
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
	assert.ElementsMatch(t, Kinds, KindValues())
	assert.Equal(t, []string{"array", "sparse", "ring"}, KindStrings())
}

func TestNewOrdering(t *testing.T) {
	for _, policy := range Policies {
		ordering, err := NewOrdering(policy)
		require.NoError(t, err)
		assert.Equal(t, policy, ordering.Policy())
	}
	assert.Equal(t, FIFO, FIFOOrdering{}.Policy())
	assert.Equal(t, LIFO, LIFOOrdering{}.Policy())
	_, err := NewOrdering(Policy(len(Policies)))
	require.Error(t, err)
	errortest.AssertError(t, err, commonerrors.ErrInvalid)
}
