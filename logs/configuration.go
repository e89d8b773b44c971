/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package logs

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/ARM-software/golang-queues/config"
)

const (
	BackendZap     = "zap"
	BackendLogrus  = "logrus"
	BackendHclog   = "hclog"
	BackendZerolog = "zerolog"
	BackendStd     = "std"
	BackendNoop    = "noop"

	MaxVerbosity = 10
)

var Backends = []string{BackendZap, BackendLogrus, BackendHclog, BackendZerolog, BackendStd, BackendNoop}

// Configuration describes the logger queues report their activity to.
type Configuration struct {
	Backend       string `mapstructure:"backend"`          // One of Backends
	Verbosity     int    `mapstructure:"verbosity"`        // Highest logr V-level emitted
	File          string `mapstructure:"file"`             // If set, logs go to this rolling file instead of the standard error
	MaxFileSizeMB int    `mapstructure:"max_file_size_mb"` // Size of the log file before it gets rotated
	MaxBackups    int    `mapstructure:"max_backups"`      // Number of rotated files to retain
}

func (cfg *Configuration) Validate() error {
	backends := make([]any, 0, len(Backends))
	for i := range Backends {
		backends = append(backends, Backends[i])
	}
	return config.WrapValidationError(validation.ValidateStruct(cfg,
		validation.Field(&cfg.Backend, validation.Required, validation.In(backends...)),
		validation.Field(&cfg.Verbosity, validation.Min(0), validation.Max(MaxVerbosity)),
		validation.Field(&cfg.MaxFileSizeMB, validation.When(cfg.File != "", validation.Required, validation.Min(1))),
		validation.Field(&cfg.MaxBackups, validation.Min(0)),
	))
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		Backend:       BackendNoop,
		MaxFileSizeMB: 100,
		MaxBackups:    3,
	}
}
