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

package report

import (
	"encoding/json"
	"fmt"

	"github.com/sanity-io/litter"
	"gopkg.in/yaml.v3"

	"github.com/rancher/elemental-devpath/pkg/types"
)

var dumpOptions = litter.Options{
	StripPackageNames: true,
	HideZeroValues:    true,
}

// Marshal renders a report in the requested format
func Marshal(v interface{}, format types.OutputFormat) ([]byte, error) {
	switch format {
	case types.OutputYAML, "":
		return yaml.Marshal(v)
	case types.OutputJSON:
		out, err := json.MarshalIndent(v, "", "  ")
		if err != nil {
			return nil, err
		}
		return append(out, '\n'), nil
	case types.OutputDump:
		return []byte(dumpOptions.Sdump(v) + "\n"), nil
	default:
		return nil, fmt.Errorf("unsupported output format '%s'", format)
	}
}
