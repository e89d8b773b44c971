/*
 * Copyright (C) 2020-2026 Arm Limited or its affiliates and Contributors. All rights reserved.
 * SPDX-License-Identifier: Apache-2.0
 */

// Package config loads configuration structures from defaults, a `.env` file, environment variables and flags.
package config

import (
	"strings"

	"github.com/go-viper/mapstructure/v2"
	"github.com/joho/godotenv"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/ARM-software/golang-queues/commonerrors"
)

const (
	EnvVarSeparator    = "_"
	DotEnvFile         = ".env"
	configKeySeparator = "."
)

// Load loads the configuration from the environment (i.e. .env file, environment variables) into configurationToSet.
// Entries not found in the environment keep the values of defaultConfiguration.
// `envVarPrefix` defines the prefix environment variables use: with prefix "queue", the key `logging.backend` is read from `QUEUE_LOGGING_BACKEND`.
func Load(envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) error {
	return LoadFromViper(viper.New(), envVarPrefix, configurationToSet, defaultConfiguration)
}

// LoadFromViper is the same as `Load` but reuses the viper session provided, e.g. one with flags bound via BindFlag.
// Viper's precedence order applies: flags which were set, then environment, then defaults.
// Values implementing encoding.TextUnmarshaler (e.g. enumerations) are decoded from their text form.
func LoadFromViper(viperSession *viper.Viper, envVarPrefix string, configurationToSet IServiceConfiguration, defaultConfiguration IServiceConfiguration) (err error) {
	if viperSession == nil || configurationToSet == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing configuration or viper session")
		return
	}
	if defaultConfiguration != nil {
		var defaults map[string]any
		err = mapstructure.Decode(defaultConfiguration, &defaults)
		if err != nil {
			err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "could not process default configuration")
			return
		}
		err = viperSession.MergeConfigMap(defaults)
		if err != nil {
			return
		}
	}

	// Load .env file contents into environment, if it exists
	_ = godotenv.Load(DotEnvFile)

	setEnvOptions(viperSession, envVarPrefix)

	err = viperSession.Unmarshal(configurationToSet, viper.DecodeHook(mapstructure.ComposeDecodeHookFunc(
		mapstructure.TextUnmarshallerHookFunc(),
		mapstructure.StringToTimeDurationHookFunc(),
		mapstructure.StringToSliceHookFunc(","),
	)))
	if err != nil {
		err = commonerrors.WrapError(commonerrors.ErrInvalid, err, "unable to decode config into struct")
		return
	}
	err = configurationToSet.Validate()
	return
}

// BindFlag binds a flag to the configuration key `configKey` (e.g. `logging.backend`) and to its environment variable.
// A flag which was explicitly set takes precedence over the environment.
func BindFlag(viperSession *viper.Viper, envVarPrefix string, configKey string, flag *pflag.Flag) (err error) {
	if viperSession == nil {
		err = commonerrors.New(commonerrors.ErrUndefined, "missing viper session")
		return
	}
	if flag == nil {
		err = commonerrors.Newf(commonerrors.ErrUndefined, "missing flag for configuration key [%v]", configKey)
		return
	}
	setEnvOptions(viperSession, envVarPrefix)
	key := strings.ToLower(strings.TrimSpace(configKey))
	err = viperSession.BindPFlag(key, flag)
	if err != nil {
		return
	}
	err = viperSession.BindEnv(key, EnvVarName(envVarPrefix, key))
	return
}

// EnvVarName returns the name of the environment variable corresponding to a configuration key.
func EnvVarName(envVarPrefix string, configKey string) string {
	name := strings.NewReplacer(configKeySeparator, EnvVarSeparator).Replace(strings.TrimSpace(configKey))
	if envVarPrefix != "" {
		name = envVarPrefix + EnvVarSeparator + name
	}
	return strings.ToUpper(name)
}

func setEnvOptions(viperSession *viper.Viper, envVarPrefix string) {
	viperSession.SetEnvPrefix(envVarPrefix)
	viperSession.AllowEmptyEnv(false)
	viperSession.AutomaticEnv()
	viperSession.SetEnvKeyReplacer(strings.NewReplacer(configKeySeparator, EnvVarSeparator))
}
