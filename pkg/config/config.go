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
	"github.com/twpayne/go-vfs/v4"

	"github.com/rancher/elemental-devpath/pkg/constants"
	"github.com/rancher/elemental-devpath/pkg/efi"
	"github.com/rancher/elemental-devpath/pkg/types"
)

type GenericOptions func(a *types.Config) error

func WithFs(fs types.FS) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.Fs = fs
		return nil
	}
}

func WithLogger(logger types.Logger) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.Logger = logger
		return nil
	}
}

func WithEFIVariables(vars types.EFIVariables) func(r *types.Config) error {
	return func(r *types.Config) error {
		r.EFIVariables = vars
		return nil
	}
}

func WithOutput(format string) func(r *types.Config) error {
	return func(r *types.Config) error {
		f, err := types.ParseOutputFormat(format)
		r.Output = f
		return err
	}
}

func NewConfig(opts ...GenericOptions) *types.Config {
	log := types.NewLogger()

	c := &types.Config{
		Fs:     vfs.OSFS,
		Logger: log,
		Output: types.OutputFormat(constants.OutputFormat),
	}
	for _, o := range opts {
		err := o(c)
		if err != nil {
			log.Errorf("error applying config option: %s", err.Error())
			return nil
		}
	}

	// delay the variables backend creation after the options in case we use WithEFIVariables
	if c.EFIVariables == nil {
		c.EFIVariables = efi.RealEFIVariables{}
	}

	return c
}
