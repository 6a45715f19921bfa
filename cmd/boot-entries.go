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
	"github.com/spf13/cobra"
	"github.com/spf13/viper"

	"github.com/rancher/elemental-devpath/cmd/config"
	elementalError "github.com/rancher/elemental-devpath/pkg/error"
	"github.com/rancher/elemental-devpath/pkg/efi"
	"github.com/rancher/elemental-devpath/pkg/report"
	"github.com/rancher/elemental-devpath/pkg/types"
)

func NewBootEntriesCmd(root *cobra.Command, efivars types.EFIVariables) *cobra.Command {
	c := &cobra.Command{
		Use:   "boot-entries",
		Args:  cobra.ExactArgs(0),
		Short: "Lists the boot entries stored in EFI variables",
		PreRunE: requireEFIVariables(efivars),
		RunE: func(cmd *cobra.Command, _ []string) error {
			cfg, err := config.ReadConfigRun(viper.GetString("config-dir"), cmd.Flags(), efivars)
			if err != nil {
				cfg.Logger.Errorf("Error reading config: %s\n", err)
				return elementalError.NewFromError(err, elementalError.ReadingRunConfig)
			}

			bm, err := efi.NewBootManagerForVariables(cfg.Logger, cfg.EFIVariables)
			if err != nil {
				cfg.Logger.Errorf("Error reading boot entries: %s\n", err)
				return elementalError.NewFromError(err, elementalError.ReadingEFIVariables)
			}
			if err = bm.Errors(); err != nil && cfg.Strict {
				cfg.Logger.Errorf("Error parsing boot entries: %s\n", err)
				return elementalError.NewFromError(err, elementalError.ParsingBootEntry)
			}

			r, err := report.NewBootEntriesReport(&bm)
			if err != nil {
				cfg.Logger.Errorf("Error decoding boot entries: %s\n", err)
				return elementalError.NewFromError(err, elementalError.DecodingDevicePath)
			}
			return writeReport(cfg, cmd, r)
		},
	}
	root.AddCommand(c)
	addOutputFlags(c)
	return c
}

// register the subcommand into rootCmd
var _ = NewBootEntriesCmd(rootCmd, efi.RealEFIVariables{})
