/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"strings"

	"github.com/ARM-software/golang-queues/commonerrors"
)

// Policy defines which element of a queue is removed next.
//
//go:generate go tool enumer -type=Policy -text -transform=lower -output=policy_enumer.go
type Policy int

const (
	// FIFO (first in, first out) removes the earliest inserted element first.
	FIFO Policy = iota
	// LIFO (last in, first out) removes the most recently inserted element first.
	LIFO
)

// ParsePolicy returns the policy corresponding to its text form e.g. `fifo` or `LIFO`.
func ParsePolicy(s string) (Policy, error) {
	policy, err := PolicyString(strings.TrimSpace(s))
	if err != nil {
		return policy, commonerrors.WrapError(commonerrors.ErrInvalid, err, "unknown ordering policy")
	}
	return policy, nil
}
