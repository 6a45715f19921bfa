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

package types

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/mitchellh/mapstructure"
)

// OutputFormat selects how decoded device paths are reported
type OutputFormat string

const (
	OutputYAML OutputFormat = "yaml"
	OutputJSON OutputFormat = "json"
	OutputDump OutputFormat = "dump"
)

func ParseOutputFormat(s string) (OutputFormat, error) {
	switch f := OutputFormat(strings.ToLower(strings.TrimSpace(s))); f {
	case OutputYAML, OutputJSON, OutputDump:
		return f, nil
	case "":
		return OutputYAML, nil
	default:
		return "", fmt.Errorf("invalid output format '%s', valid formats are: yaml, json, dump", s)
	}
}

// OutputFormatHook is a mapstructure decode hook validating output formats
func OutputFormatHook() mapstructure.DecodeHookFuncType {
	return func(from reflect.Type, to reflect.Type, data interface{}) (interface{}, error) {
		if from.Kind() != reflect.String || to != reflect.TypeOf(OutputFormat("")) {
			return data, nil
		}
		return ParseOutputFormat(data.(string))
	}
}

// Config is the runtime configuration shared by all commands
type Config struct {
	Logger       Logger       `yaml:"-" mapstructure:"-"`
	Fs           FS           `yaml:"-" mapstructure:"-"`
	EFIVariables EFIVariables `yaml:"-" mapstructure:"-"`
	Output       OutputFormat `yaml:"output,omitempty" mapstructure:"output"`
	Strict       bool         `yaml:"strict,omitempty" mapstructure:"strict"`
}

// Sanitize checks the consistency of the struct, returns error
// if unsolvable inconsistencies are found
func (c *Config) Sanitize() error {
	if c.Logger == nil || c.Fs == nil || c.EFIVariables == nil {
		return fmt.Errorf("incomplete configuration, logger, filesystem and EFI variables are required")
	}
	f, err := ParseOutputFormat(string(c.Output))
	if err != nil {
		return err
	}
	c.Output = f
	return nil
}
