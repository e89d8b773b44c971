/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package logs creates the logr loggers queues report to, from a Configuration.
package logs

import (
	"io"
	"log"
	"os"
	"strings"

	"github.com/DeRuina/timberjack"
	"github.com/bombsimon/logrusr/v4"
	"github.com/evanphx/hclogr"
	"github.com/go-logr/logr"
	"github.com/go-logr/logr/funcr"
	"github.com/go-logr/stdr"
	"github.com/go-logr/zapr"
	"github.com/hashicorp/go-hclog"
	"github.com/hashicorp/go-multierror"
	"github.com/rs/zerolog"
	"github.com/sirupsen/logrus"
	"go.uber.org/zap"
	"go.uber.org/zap/zapcore"

	"github.com/ARM-software/golang-queues/commonerrors"
)

const (
	KeyLoggerName = "logger"
	syncError     = "invalid argument"               // sync error can happen on Linux (sync /dev/stderr: invalid argument) see https://github.com/uber-go/zap/issues/328
	ttySyncError  = "inappropriate ioctl for device" // same issue when the standard error is a terminal
)

// NewLogger returns a logger as described by cfg, and the closer releasing the resources it holds (log file, buffers).
// The closer must be called once the logger is no longer in use.
func NewLogger(cfg *Configuration, name string) (logger logr.Logger, closer io.Closer, err error) {
	logger = logr.Discard()
	closer = &closerStore{}
	if cfg == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing logging configuration")
		return
	}
	err = cfg.Validate()
	if err != nil {
		return
	}
	store := &closerStore{}
	var output io.Writer = os.Stderr
	if cfg.File != "" {
		rolling := &timberjack.Logger{
			Filename:   cfg.File,
			MaxSize:    cfg.MaxFileSizeMB,
			MaxBackups: cfg.MaxBackups,
			LocalTime:  false,
			Compress:   false,
		}
		store.register(rolling.Close)
		output = rolling
	}

	switch cfg.Backend {
	case BackendZap:
		logger = newZapLogger(output, cfg.Verbosity, store)
	case BackendLogrus:
		logger = newLogrusLogger(output, cfg.Verbosity)
	case BackendHclog:
		logger = newHclogLogger(output, cfg.Verbosity, name)
	case BackendZerolog:
		logger = newZerologLogger(output, cfg.Verbosity)
	case BackendStd:
		// stdr verbosity is process wide.
		stdr.SetVerbosity(cfg.Verbosity)
		logger = stdr.New(log.New(output, "", log.LstdFlags))
	case BackendNoop:
		logger = logr.Discard()
	default:
		err = commonerrors.Newf(commonerrors.ErrUnsupported, "unsupported logging backend [%v]", cfg.Backend)
		_ = store.Close()
		return
	}
	if name != "" && cfg.Backend != BackendHclog {
		logger = logger.WithName(name)
	}
	closer = store
	return
}

func newZapLogger(output io.Writer, verbosity int, store *closerStore) logr.Logger {
	// zapr maps V(n) onto zap level -n.
	level := zap.NewAtomicLevelAt(zapcore.Level(-int8(verbosity)))
	core := zapcore.NewCore(zapcore.NewJSONEncoder(zap.NewProductionEncoderConfig()), zapcore.AddSync(output), level)
	zapL := zap.New(core)
	store.register(func() error {
		err := zapL.Sync()
		if err != nil && (strings.Contains(err.Error(), syncError) || strings.Contains(err.Error(), ttySyncError)) {
			return nil
		}
		return err
	})
	return zapr.NewLogger(zapL)
}

func newLogrusLogger(output io.Writer, verbosity int) logr.Logger {
	l := logrus.New()
	l.SetOutput(output)
	switch {
	case verbosity <= 0:
		l.SetLevel(logrus.InfoLevel)
	case verbosity == 1:
		l.SetLevel(logrus.DebugLevel)
	default:
		l.SetLevel(logrus.TraceLevel)
	}
	return logrusr.New(l)
}

func newHclogLogger(output io.Writer, verbosity int, name string) logr.Logger {
	level := hclog.Info
	switch {
	case verbosity == 1:
		level = hclog.Debug
	case verbosity > 1:
		level = hclog.Trace
	}
	return hclogr.Wrap(hclog.New(&hclog.LoggerOptions{
		Name:   name,
		Level:  level,
		Output: output,
	}))
}

func newZerologLogger(output io.Writer, verbosity int) logr.Logger {
	zl := zerolog.New(output).With().Timestamp().Logger()
	return funcr.New(func(prefix, args string) {
		event := zl.Info()
		if prefix != "" {
			event = event.Str(KeyLoggerName, prefix)
		}
		event.Msg(args)
	}, funcr.Options{Verbosity: verbosity})
}

// closerStore closes resources in the reverse order of their registration.
type closerStore struct {
	closers []func() error
}

func (s *closerStore) register(closer func() error) {
	s.closers = append(s.closers, closer)
}

func (s *closerStore) Close() error {
	var result *multierror.Error
	for i := len(s.closers) - 1; i >= 0; i-- {
		result = multierror.Append(result, s.closers[i]())
	}
	s.closers = nil
	return result.ErrorOrNil()
}
