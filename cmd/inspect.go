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

	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rancher/elemental-devpath/cmd/config"
	"github.com/rancher/elemental-devpath/pkg/devicepath"
	elementalError "github.com/rancher/elemental-devpath/pkg/error"
	"github.com/rancher/elemental-devpath/pkg/efi"
	"github.com/rancher/elemental-devpath/pkg/report"
)

func NewInspectCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "inspect [FILE|-]",
		Short: "Decodes a binary device path",
		Long: "Decodes the device path stored in FILE, on stdin when FILE is '-' or missing, " +
			"or given with --hex, and prints a structured report of its instances and nodes.",
		Args: cobra.MaximumNArgs(1),
		RunE: func(cmd *cobra.Command, args []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"), cmd.Flags(), efi.RealEFIVariables{})
			if err != nil {
				cfg.Logger.Errorf("Error reading config: %s\n", err)
				return elementalError.NewFromError(err, elementalError.ReadingRunConfig)
			}
			if err = validateInputFlags(cfg.Logger, cmd.Flags(), args); err != nil {
				cfg.Logger.Errorf("Invalid flags: %s\n", err)
				return err
			}

			data, err := readInput(cfg, cmd, args)
			if err != nil {
				cfg.Logger.Errorf("Error reading input: %s\n", err)
				return elementalError.NewFromError(err, elementalError.ReadingInput)
			}

			path, err := devicepath.FromBytes(data)
			if err != nil {
				cfg.Logger.Errorf("Error decoding device path: %s\n", err)
				return elementalError.NewFromError(err, elementalError.DecodingDevicePath)
			}
			if trailing := len(data) - path.Len(); trailing > 0 {
				if cfg.Strict {
					err = fmt.Errorf("%d bytes of trailing data after the device path", trailing)
					cfg.Logger.Errorf("Error decoding device path: %s\n", err)
					return elementalError.NewFromError(err, elementalError.DecodingDevicePath)
				}
				cfg.Logger.Warnf("ignoring %d bytes after the end of the device path", trailing)
			}

			r, err := report.NewPathReport(path)
			if err != nil {
				cfg.Logger.Errorf("Error decoding device path: %s\n", err)
				return elementalError.NewFromError(err, elementalError.DecodingDevicePath)
			}
			return writeReport(cfg, cmd, r)
		},
	}
	root.AddCommand(c)
	addInputFlags(c)
	addOutputFlags(c)
	return c
}

// register the subcommand into rootCmd
var _ = NewInspectCmd(rootCmd)
