/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logstest provides loggers to use in tests.
package logstest

import (
	"testing"

	"github.com/bombsimon/logrusr/v4"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/logr/testr"
	"github.com/sasha-s/go-deadlock"
	logrusTest "github.com/sirupsen/logrus/hooks/test"
)

// NewNullTestLogger returns a logger to nothing
func NewNullTestLogger() logr.Logger {
	internalLogger, _ := logrusTest.NewNullLogger()
	return logrusr.New(internalLogger)
}

// NewTestLogger returns a logger to use in tests
func NewTestLogger(t *testing.T) logr.Logger {
	return testr.New(t)
}

// NewRecordingLogger returns a logger emitting entries up to verbosity, and the recorder keeping them.
func NewRecordingLogger(verbosity int) (logr.Logger, *Recorder) {
	recorder := &Recorder{}
	return funcr.NewJSON(recorder.record, funcr.Options{Verbosity: verbosity}), recorder
}

// Recorder keeps the JSON entries of a logger. It is safe for concurrent use.
type Recorder struct {
	mu      deadlock.Mutex
	entries []string
}

func (r *Recorder) record(obj string) {
	r.mu.Lock()
	defer r.mu.Unlock()
	r.entries = append(r.entries, obj)
}

// Entries returns a copy of the entries recorded so far.
func (r *Recorder) Entries() []string {
	r.mu.Lock()
	defer r.mu.Unlock()
	return append([]string{}, r.entries...)
}

func (r *Recorder) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.entries)
}
