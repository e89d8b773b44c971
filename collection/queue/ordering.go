/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import "github.com/ARM-software/golang-queues/commonerrors"

var (
	_ IOrdering = FIFOOrdering{}
	_ IOrdering = LIFOOrdering{}
)

// FIFOOrdering always removes the oldest element.
type FIFOOrdering struct{}

func (FIFOOrdering) Policy() Policy {
	return FIFO
}

// LIFOOrdering always removes the newest element.
type LIFOOrdering struct{}

func (LIFOOrdering) Policy() Policy {
	return LIFO
}

// NewOrdering returns the ordering corresponding to policy.
func NewOrdering(policy Policy) (IOrdering, error) {
	switch policy {
	case FIFO:
		return FIFOOrdering{}, nil
	case LIFO:
		return LIFOOrdering{}, nil
	}
	return nil, commonerrors.Newf(commonerrors.ErrInvalid, "unsupported ordering policy [%v]", policy)
}
