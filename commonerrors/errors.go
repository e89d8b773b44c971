/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package commonerrors defines the sentinel errors returned by the queue packages.
package commonerrors

import (
	"errors"
	"fmt"
	"strings"
)

var (
	ErrNotImplemented = errors.New("not implemented")
	ErrUndefined      = errors.New("undefined")
	ErrInvalid        = errors.New("invalid")
	ErrUnsupported    = errors.New("unsupported")
	ErrUnknown        = errors.New("unknown")
	ErrUnexpected     = errors.New("unexpected")
)

// Any states whether any of the errors err correspond to target.
func Any(target error, err ...error) bool {
	for _, e := range err {
		if errors.Is(e, target) || errors.Is(target, e) {
			return true
		}
	}
	return false
}

// None states whether none of the errors err correspond to target.
func None(target error, err ...error) bool {
	return !Any(target, err...)
}

// New returns an error of type targetErr with an additional message.
func New(targetErr error, msg string) error {
	if targetErr == nil {
		targetErr = ErrUnknown
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return targetErr
	}
	return fmt.Errorf("%w: %v", targetErr, msg)
}

// Newf is similar to New but with a formatted message.
func Newf(targetErr error, format string, args ...any) error {
	return New(targetErr, fmt.Sprintf(format, args...))
}

// WrapError wraps originalErr into an error of type targetErr. Both remain reachable via errors.Is.
func WrapError(targetErr, originalErr error, msg string) error {
	if originalErr == nil {
		return New(targetErr, msg)
	}
	if targetErr == nil {
		targetErr = ErrUnknown
	}
	msg = strings.TrimSpace(msg)
	if msg == "" {
		return fmt.Errorf("%w: %w", targetErr, originalErr)
	}
	return fmt.Errorf("%w: %v: %w", targetErr, msg, originalErr)
}

// WrapErrorf is similar to WrapError but with a formatted message.
func WrapErrorf(targetErr, originalErr error, format string, args ...any) error {
	return WrapError(targetErr, originalErr, fmt.Sprintf(format, args...))
}
