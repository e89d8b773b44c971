/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

package queue

import (
	validation "github.com/go-ozzo/ozzo-validation/v4"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-queues/commonerrors"
	"github.com/ARM-software/golang-queues/config"
	"github.com/ARM-software/golang-queues/logs"
)

const (
	DefaultEnvVarPrefix = "queue"

	FlagStorage       = "storage"
	FlagOrdering      = "ordering"
	FlagThreadSafe    = "thread-safe"
	FlagLogOperations = "log-operations"
	FlagLogBackend    = "log-backend"
)

// flagKeys maps flags to the configuration key they set.
var flagKeys = map[string]string{
	FlagStorage:       "storage",
	FlagOrdering:      "ordering",
	FlagThreadSafe:    "thread_safe",
	FlagLogOperations: "log_operations",
	FlagLogBackend:    "logging.backend",
}

// Configuration describes how NewFromConfiguration builds a queue.
type Configuration struct {
	Storage       Kind               `mapstructure:"storage"`        // How elements are stored: array, sparse or ring
	Ordering      Policy             `mapstructure:"ordering"`       // Which element is removed next: fifo or lifo
	ThreadSafe    bool               `mapstructure:"thread_safe"`    // Whether the queue can be shared between goroutines
	LogOperations bool               `mapstructure:"log_operations"` // Whether every operation is logged
	Logging       logs.Configuration `mapstructure:"logging"`
}

func (cfg *Configuration) Validate() error {
	// Validate Embedded Structs
	err := config.ValidateEmbedded(cfg)
	if err != nil {
		return err
	}

	return config.WrapValidationError(validation.ValidateStruct(cfg,
		validation.Field(&cfg.Storage, validation.By(isKind)),
		validation.Field(&cfg.Ordering, validation.By(isPolicy)),
	))
}

func DefaultConfiguration() *Configuration {
	return &Configuration{
		Storage:  KindArray,
		Ordering: FIFO,
		Logging:  *logs.DefaultConfiguration(),
	}
}

// DefineFlags registers the flags overriding the queue configuration.
func DefineFlags(flags *pflag.FlagSet) {
	def := DefaultConfiguration()
	flags.String(FlagStorage, def.Storage.String(), "how queue elements are stored: one of array, sparse, ring")
	flags.String(FlagOrdering, def.Ordering.String(), "which element is removed next: one of fifo, lifo")
	flags.Bool(FlagThreadSafe, def.ThreadSafe, "whether the queue can be shared between goroutines")
	flags.Bool(FlagLogOperations, def.LogOperations, "whether every queue operation is logged")
	flags.String(FlagLogBackend, def.Logging.Backend, "logging backend: one of zap, logrus, hclog, zerolog, std, noop")
}

// BindFlags binds the flags defined by DefineFlags to their configuration keys so that flags which were set win
// over the environment.
func BindFlags(viperSession *viper.Viper, envVarPrefix string, flags *pflag.FlagSet) error {
	if flags == nil {
		return commonerrors.New(commonerrors.ErrUndefined, "missing flag set")
	}
	for _, name := range []string{FlagStorage, FlagOrdering, FlagThreadSafe, FlagLogOperations, FlagLogBackend} {
		if err := config.BindFlag(viperSession, envVarPrefix, flagKeys[name], flags.Lookup(name)); err != nil {
			return err
		}
	}
	return nil
}

// LoadConfiguration returns the queue configuration found in the environment (e.g. `QUEUE_STORAGE=sparse`) and,
// if flags is not nil, in the flags defined by DefineFlags.
func LoadConfiguration(envVarPrefix string, flags *pflag.FlagSet) (cfg *Configuration, err error) {
	session := viper.New()
	if flags != nil {
		err = BindFlags(session, envVarPrefix, flags)
		if err != nil {
			return
		}
	}
	loaded := DefaultConfiguration()
	err = config.LoadFromViper(session, envVarPrefix, loaded, DefaultConfiguration())
	if err != nil {
		return
	}
	cfg = loaded
	return
}

func isKind(value any) error {
	if kind, ok := value.(Kind); ok && kind.IsAKind() {
		return nil
	}
	return validation.NewError("validation_unknown_kind", "must be one of array, sparse, ring")
}

func isPolicy(value any) error {
	if policy, ok := value.(Policy); ok && policy.IsAPolicy() {
		return nil
	}
	return validation.NewError("validation_unknown_policy", "must be one of fifo, lifo")
}
