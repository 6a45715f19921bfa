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

	"github.com/rancher/elemental-devpath/internal/version"
	eleError "github.com/rancher/elemental-devpath/pkg/error"
	"github.com/rancher/elemental-devpath/pkg/constants"
	"github.com/rancher/elemental-devpath/pkg/report"
	"github.com/rancher/elemental-devpath/pkg/types"
)

func NewVersionCmd(root *cobra.Command) *cobra.Command {
	c := &cobra.Command{
		Use:   "version",
		Args:  cobra.ExactArgs(0),
		Short: "Print the version",
		RunE: func(cmd *cobra.Command, _ []string) error {
			v := version.Get()
			if long, _ := cmd.Flags().GetBool("long"); !long {
				_, err := fmt.Fprintln(cmd.OutOrStdout(), v.Short())
				return err
			}

			format, _ := cmd.Flags().GetString("output")
			out, err := report.Marshal(v, types.OutputFormat(format))
			if err != nil {
				return eleError.NewFromError(err, eleError.MarshallingOutput)
			}
			_, err = cmd.OutOrStdout().Write(out)
			return err
		},
	}
	root.AddCommand(c)
	c.Flags().Bool("long", false, "Show long version info")
	c.Flags().VarP(newEnumFlag(constants.GetOutputFormats(), constants.OutputFormat), "output", "o",
		fmt.Sprintf("Format of the long version info, one of: %s", strings.Join(constants.GetOutputFormats(), ", ")))
	return c
}

// register the subcommand into rootCmd
var _ = NewVersionCmd(rootCmd)
