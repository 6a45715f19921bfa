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
	"encoding/hex"
	"fmt"
	"io"
	"strings"

	"github.com/spf13/cobra"

	"github.com/rancher/elemental-devpath/pkg/constants"
	"github.com/rancher/elemental-devpath/pkg/efi"
	eleError "github.com/rancher/elemental-devpath/pkg/error"
	"github.com/rancher/elemental-devpath/pkg/report"
	"github.com/rancher/elemental-devpath/pkg/types"
)

// requireEFIVariables returns a PreRunE hook failing early when vars can't be read
func requireEFIVariables(vars types.EFIVariables) func(*cobra.Command, []string) error {
	return func(_ *cobra.Command, _ []string) error {
		if !efi.VariablesSupported(vars) {
			return eleError.New("EFI variables are not available on this system", eleError.ReadingEFIVariables)
		}
		return nil
	}
}

// readInput loads the raw device path from --hex, stdin or a file and drops
// the first --offset bytes.
func readInput(cfg *types.Config, cmd *cobra.Command, args []string) ([]byte, error) {
	var data []byte
	var err error

	switch h, _ := cmd.Flags().GetString("hex"); {
	case h != "":
		h = strings.TrimPrefix(strings.Join(strings.Fields(h), ""), "0x")
		data, err = hex.DecodeString(h)
	case len(args) == 0 || args[0] == constants.StdinInput:
		cfg.Logger.Debugf("reading device path from stdin")
		data, err = io.ReadAll(cmd.InOrStdin())
	default:
		cfg.Logger.Debugf("reading device path from %s", args[0])
		data, err = cfg.Fs.ReadFile(args[0])
	}
	if err != nil {
		return nil, err
	}

	offset, _ := cmd.Flags().GetInt("offset")
	if offset > len(data) {
		return nil, fmt.Errorf("offset %d is past the %d bytes of input", offset, len(data))
	}
	return data[offset:], nil
}

// writeReport renders r in the configured format on the command output
func writeReport(cfg *types.Config, cmd *cobra.Command, r interface{}) error {
	out, err := report.Marshal(r, cfg.Output)
	if err != nil {
		cfg.Logger.Errorf("Error marshalling report: %s\n", err)
		return eleError.NewFromError(err, eleError.MarshallingOutput)
	}
	if _, err = cmd.OutOrStdout().Write(out); err != nil {
		cfg.Logger.Errorf("Error writing report: %s\n", err)
		return eleError.NewFromError(err, eleError.WritingOutput)
	}
	return nil
}
