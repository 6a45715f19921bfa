/*
Copyright © 2022 - 2025 SUSE LLC

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

    http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

package config

import (
	"errors"
	"fmt"
	"io"
	"io/fs"
	"os"
	"path/filepath"
	"regexp"
	"strings"

	"github.com/sanity-io/litter"
	"github.com/sirupsen/logrus"
	"github.com/spf13/pflag"
	"github.com/spf13/viper"

	"github.com/rancher/elemental-devpath/pkg/config"
	"github.com/rancher/elemental-devpath/pkg/constants"
	"github.com/rancher/elemental-devpath/pkg/types"
)

var dumpOptions = litter.Options{
	HidePrivateFields: true,
	FieldExclusions:   regexp.MustCompile(`^(Logger|Fs|EFIVariables)$`),
}

// ReadConfigRun merges config files, environment and flags into a Config.
// Flags take precedence over environment variables, which take precedence over
// config.d files, which take precedence over config.yaml.
func ReadConfigRun(configDir string, flags *pflag.FlagSet, efivars types.EFIVariables) (*types.Config, error) {
	cfg := config.NewConfig(
		config.WithLogger(types.NewLogger()),
		config.WithEFIVariables(efivars),
	)

	if configDir == "" {
		configDir = constants.ConfigDir
	}

	viper.SetDefault("output", constants.OutputFormat)
	viper.SetDefault("strict", false)

	viper.AddConfigPath(configDir)
	viper.SetConfigType("yaml")
	viper.SetConfigName(constants.ConfigName)
	// If a config file is found, read it in.
	if err := viper.MergeInConfig(); err != nil {
		var notFound viper.ConfigFileNotFoundError
		if !errors.As(err, &notFound) {
			return cfg, fmt.Errorf("failed reading config in %s: %w", configDir, err)
		}
	}

	// Load extra config files on configdir/config.d/ so we can override config values
	if err := mergeDropIns(cfg.Fs, filepath.Join(configDir, constants.ConfigDropIn)); err != nil {
		return cfg, err
	}

	// Set the prefix for vars so we get only the ones starting with ELEMENTAL_DEVPATH
	viper.SetEnvPrefix(constants.EnvPrefix)
	replacer := strings.NewReplacer("-", "_")
	viper.SetEnvKeyReplacer(replacer)
	viper.AutomaticEnv() // read in environment variables that match

	if flags != nil {
		if err := viper.BindPFlags(flags); err != nil {
			return cfg, err
		}
	}

	setLogger(cfg)

	// unmarshal all the vars into the config object
	err := viper.Unmarshal(cfg, viper.DecodeHook(types.OutputFormatHook()))
	if err != nil {
		return cfg, fmt.Errorf("failed unmarshalling config: %w", err)
	}
	if err = cfg.Sanitize(); err != nil {
		return cfg, err
	}

	cfg.Logger.Debugf("Loaded config: %s", dumpOptions.Sdump(cfg))
	return cfg, nil
}

// mergeDropIns merges every yaml file of dir in lexical order
func mergeDropIns(vfs types.FS, dir string) error {
	entries, err := vfs.ReadDir(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("failed reading %s: %w", dir, err)
	}
	for _, entry := range entries {
		ext := filepath.Ext(entry.Name())
		if entry.IsDir() || (ext != ".yaml" && ext != ".yml") {
			continue
		}
		path, err := vfs.RawPath(filepath.Join(dir, entry.Name()))
		if err != nil {
			return err
		}
		viper.SetConfigFile(path)
		if err = viper.MergeInConfig(); err != nil {
			return fmt.Errorf("failed merging %s: %w", path, err)
		}
	}
	return nil
}

// setLogger applies the debug, quiet and logfile settings. Logs go to stderr
// so reports written on stdout stay parseable.
func setLogger(cfg *types.Config) {
	// Set debug level
	if viper.GetBool("debug") {
		cfg.Logger.SetLevel(types.DebugLevel())
	}

	// Set formatter so both file and stderr format are equal
	cfg.Logger.SetFormatter(&logrus.TextFormatter{
		ForceColors:      true,
		DisableColors:    false,
		DisableTimestamp: false,
		FullTimestamp:    true,
	})

	var out io.Writer = os.Stderr
	if viper.GetBool("quiet") {
		out = io.Discard
	}

	// Logfile
	logfile := viper.GetString("logfile")
	if logfile != "" {
		o, err := cfg.Fs.OpenFile(logfile, os.O_APPEND|os.O_CREATE|os.O_WRONLY, fs.ModePerm)
		if err != nil {
			cfg.Logger.Errorf("Could not open %s for logging to file: %s", logfile, err.Error())
		} else if viper.GetBool("quiet") { // if quiet is set, only set the log to the file
			out = o
		} else { // else set it to both stderr and the file
			out = io.MultiWriter(os.Stderr, o)
		}
	}
	cfg.Logger.SetOutput(out)
}
