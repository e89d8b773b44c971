/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package config

import (
	"errors"
	"fmt"
	"maps"
	"slices"
	"strings"

	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-queues/commonerrors"
)

// IValidationError defines a typical structure validation error.
// It always corresponds to commonerrors.ErrInvalid.
type IValidationError interface {
	error
	fmt.Stringer
	// GetTreePath returns the path to the faulty field e.g. `Logging->Backend`.
	GetTreePath() string
	// GetMapStructurePath returns the environment variable suffix of the faulty field e.g. `LOGGING_BACKEND`.
	GetMapStructurePath() string
	GetReason() string
	Unwrap() []error
}

// WrapValidationError converts the result of a structure validation into an IValidationError. It returns nil if err is nil.
func WrapValidationError(err error) error {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	return vErr
}

// WrapFieldValidationError records that the validation error err was raised by the field fieldName of a structure.
func WrapFieldValidationError(fieldName string, mapStructureName string, err error) error {
	vErr := newValidationError(err)
	if vErr == nil {
		return nil
	}
	vErr.recordField(fieldName, mapStructureName)
	return vErr
}

type validationError struct {
	tree             []string
	mapStructureTree []string
	reason           string
	cause            error
}

func (v *validationError) recordField(fieldName string, mapStructureName string) {
	if fieldName = strings.TrimSpace(fieldName); fieldName != "" {
		v.tree = slices.Insert(v.tree, 0, fieldName)
	}
	if mapStructureName = strings.TrimSpace(mapStructureName); mapStructureName != "" {
		v.mapStructureTree = slices.Insert(v.mapStructureTree, 0, strings.ToUpper(mapStructureName))
	}
}

func (v *validationError) GetTreePath() string {
	return strings.Join(v.tree, "->")
}

func (v *validationError) GetMapStructurePath() string {
	return strings.ReplaceAll(strings.Join(v.mapStructureTree, EnvVarSeparator), "-", EnvVarSeparator)
}

func (v *validationError) GetReason() string {
	return v.reason
}

func (v *validationError) Unwrap() []error {
	if v.cause == nil {
		return []error{commonerrors.ErrInvalid}
	}
	return []error{commonerrors.ErrInvalid, v.cause}
}

func (v *validationError) Error() string {
	var b strings.Builder
	b.WriteString("structure failed validation:")
	if tree := v.GetTreePath(); tree != "" {
		_, _ = fmt.Fprintf(&b, " (%v)", tree)
	}
	if path := v.GetMapStructurePath(); path != "" {
		_, _ = fmt.Fprintf(&b, " [%v]", path)
	}
	if v.reason != "" {
		_, _ = fmt.Fprintf(&b, " %v", v.reason)
	}
	return commonerrors.New(commonerrors.ErrInvalid, b.String()).Error()
}

func (v *validationError) String() string {
	return v.Error()
}

func newValidationError(err error) *validationError {
	if err == nil {
		return nil
	}
	var vErr *validationError
	if errors.As(err, &vErr) {
		return vErr
	}
	var oes validation.Errors
	if errors.As(err, &oes) && len(oes) > 0 {
		// Only the first faulty field, in alphabetical order, is reported.
		key := slices.Sorted(maps.Keys(oes))[0]
		sub := newValidationError(oes[key])
		sub.recordField(key, "")
		return sub
	}
	var oe validation.Error
	if errors.As(err, &oe) {
		return &validationError{reason: oe.Error(), cause: err}
	}
	return &validationError{reason: err.Error(), cause: err}
}
