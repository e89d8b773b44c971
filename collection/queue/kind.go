/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	"strings"

	"github.com/ARM-software/golang-queues/commonerrors"
)

// Kind defines how queue elements are stored.
//
//go:generate go tool enumer -type=Kind -trimprefix=Kind -text -transform=lower -output=kind_enumer.go
type Kind int

const (
	// KindArray stores elements in a contiguous slice.
	KindArray Kind = iota
	// KindSparse stores elements in a map indexed by insertion position.
	KindSparse
	// KindRing stores elements in a growable circular buffer.
	KindRing
)

// ParseKind returns the storage kind corresponding to its text form e.g. `sparse`.
func ParseKind(s string) (Kind, error) {
	kind, err := KindString(strings.TrimSpace(s))
	if err != nil {
		return kind, commonerrors.WrapError(commonerrors.ErrInvalid, err, "unknown storage kind")
	}
	return kind, nil
}
