/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package commonerrors

import (
	"errors"
	"fmt"
	"testing"

	"github.com/go-faker/faker/v4"
	"github.com/stretchr/testify/assert"
)

func TestAny(t *testing.T) {
	assert.True(t, Any(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.False(t, Any(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.True(t, Any(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.False(t, Any(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrUnknown))
}

func TestNone(t *testing.T) {
	assert.False(t, None(ErrNotImplemented, ErrInvalid, ErrNotImplemented, ErrUnknown))
	assert.True(t, None(ErrNotImplemented, ErrInvalid, ErrUnknown))
	assert.True(t, None(fmt.Errorf("an error %w", ErrNotImplemented), ErrInvalid, ErrUnknown))
}

func TestNew(t *testing.T) {
	msg := faker.Sentence()
	err := New(ErrInvalid, msg)
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Contains(t, err.Error(), msg)

	assert.Equal(t, ErrUnsupported, New(ErrUnsupported, "  "))
	assert.True(t, errors.Is(New(nil, msg), ErrUnknown))

	err = Newf(ErrUnsupported, "storage [%v]", "ring")
	assert.True(t, errors.Is(err, ErrUnsupported))
	assert.Equal(t, "unsupported: storage [ring]", err.Error())
}

func TestWrapError(t *testing.T) {
	cause := errors.New(faker.Word())
	err := WrapError(ErrInvalid, cause, "could not parse policy")
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, fmt.Sprintf("invalid: could not parse policy: %v", cause), err.Error())

	err = WrapError(ErrInvalid, cause, "")
	assert.True(t, errors.Is(err, cause))
	assert.Equal(t, fmt.Sprintf("invalid: %v", cause), err.Error())

	err = WrapErrorf(ErrInvalid, nil, "field %v", "storage")
	assert.True(t, errors.Is(err, ErrInvalid))
	assert.Equal(t, "invalid: field storage", err.Error())
}
