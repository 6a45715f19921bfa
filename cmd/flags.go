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

package cmd

import (
	"fmt"
	"strings"

	"github.com/spf13/cobra"
	"github.com/spf13/pflag"

	eleError "github.com/rancher/elemental-devpath/pkg/error"
	"github.com/rancher/elemental-devpath/pkg/constants"
	"github.com/rancher/elemental-devpath/pkg/types"
)

// addOutputFlags adds the flags selecting the report format
func addOutputFlags(cmd *cobra.Command) {
	cmd.Flags().VarP(newEnumFlag(constants.GetOutputFormats(), constants.OutputFormat), "output", "o",
		fmt.Sprintf("Report format, one of: %s", strings.Join(constants.GetOutputFormats(), ", ")))
	cmd.Flags().Bool("strict", false, "Fail on any inconsistency instead of reporting it")
}

// addInputFlags adds the flags describing where the raw device path comes from
func addInputFlags(cmd *cobra.Command) {
	cmd.Flags().String("hex", "", "Read the device path from a hex string instead of a file")
	cmd.Flags().Int("offset", 0, "Skip this many bytes of input before decoding")
}

// validateInputFlags checks inputs are not given twice
func validateInputFlags(_ types.Logger, flags *pflag.FlagSet, args []string) error {
	hex, _ := flags.GetString("hex")
	if hex != "" && len(args) > 0 {
		return eleError.New("flag hex and the input file argument are mutually exclusive, please only set one of them", eleError.ReadingInput)
	}
	offset, _ := flags.GetInt("offset")
	if offset < 0 {
		return eleError.New("'offset' can't be negative", eleError.ReadingInput)
	}
	return nil
}

type enum struct {
	Allowed []string
	Value   string
}

// newEnum give a list of allowed flag parameters, where the second argument is the default
func newEnumFlag(allowed []string, d string) *enum {
	return &enum{
		Allowed: allowed,
		Value:   d,
	}
}

func (a enum) String() string {
	return a.Value
}

func (a *enum) Set(p string) error {
	isIncluded := func(opts []string, val string) bool {
		for _, opt := range opts {
			if val == opt {
				return true
			}
		}
		return false
	}
	if !isIncluded(a.Allowed, p) {
		return fmt.Errorf("'%s' is not included in: %s", p, strings.Join(a.Allowed, ","))
	}
	a.Value = p
	return nil
}

func (a *enum) Type() string {
	return "string"
}
