// Copyright 2026 Benoit Pereira da Silva
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package main

import (
	"errors"
	"fmt"
	"strings"

	"github.com/rs/zerolog"
	"github.com/spf13/cobra"
	"github.com/spf13/viper"
)

const envPrefix = "STRARRAY"

// errFailed is returned when at least one input was rejected. The details
// have already been written to the command output.
var errFailed = errors.New("some inputs were rejected")

type config struct {
	Len      int    `mapstructure:"len"`
	Charset  string `mapstructure:"charset"`
	LogLevel string `mapstructure:"log-level"`
}

// app carries the state shared by the subcommands of one invocation.
type app struct {
	v      *viper.Viper
	cfg    config
	logger zerolog.Logger
}

func newRootCmd() *cobra.Command {
	a := &app{v: viper.New(), logger: zerolog.Nop()}

	root := &cobra.Command{
		Use:   "strarray",
		Short: "Validate and build fixed-length UTF-8 strings",
		Long: `strarray checks that text fits an N-byte UTF-8 buffer exactly.

Settings are read from flags, then STRARRAY_* environment variables, then the
optional --config file (toml or yaml).`,
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return a.load(cmd)
		},
	}

	root.PersistentFlags().IntP("len", "n", 0, "Byte length N of the buffer")
	root.PersistentFlags().String("config", "", "Config file (toml or yaml)")
	root.PersistentFlags().String("log-level", "warn", "Log level (trace, debug, info, warn, error, off)")

	root.AddCommand(
		newCheckCmd(a),
		newCollectCmd(a),
		newDecodeCmd(a),
		newRecordsCmd(a),
		newUUIDCmd(a),
	)
	return root
}

// load resolves the configuration of cmd and builds the logger.
func (a *app) load(cmd *cobra.Command) error {
	a.v.SetEnvPrefix(envPrefix)
	a.v.SetEnvKeyReplacer(strings.NewReplacer("-", "_"))
	a.v.AutomaticEnv()
	if err := a.v.BindPFlags(cmd.Flags()); err != nil {
		return fmt.Errorf("bind flags: %w", err)
	}

	if path := a.v.GetString("config"); path != "" {
		a.v.SetConfigFile(path)
		if err := a.v.ReadInConfig(); err != nil {
			return fmt.Errorf("read config %s: %w", path, err)
		}
	}

	if err := a.v.Unmarshal(&a.cfg); err != nil {
		return fmt.Errorf("decode config: %w", err)
	}
	if a.cfg.Len < 0 {
		return fmt.Errorf("invalid length %d: must not be negative", a.cfg.Len)
	}

	level, ok := parseLevel(a.cfg.LogLevel)
	if !ok && a.cfg.LogLevel != "" {
		return fmt.Errorf("unknown log level %q", a.cfg.LogLevel)
	}
	a.logger = newLogger(cmd.ErrOrStderr(), level)
	a.logger.Debug().
		Int("len", a.cfg.Len).
		Str("config", a.v.ConfigFileUsed()).
		Str("command", cmd.Name()).
		Msg("configuration loaded")
	return nil
}
