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
	"bytes"

	"github.com/spf13/cobra"
)

// executeCommandC runs cmd with args and returns whatever the invoked
// command wrote to its output stream. Errors printed by cobra are kept
// apart from the returned output.
func executeCommandC(cmd *cobra.Command, args ...string) (*cobra.Command, string, error) {
	stdout := &bytes.Buffer{}
	stderr := &bytes.Buffer{}
	cmd.SetOut(stdout)
	cmd.SetErr(stderr)
	cmd.SetArgs(args)
	defer func() {
		cmd.SetOut(nil)
		cmd.SetErr(nil)
	}()

	c, err := cmd.ExecuteC()
	if err != nil {
		return c, stderr.String(), err
	}
	return c, stdout.String(), nil
}
