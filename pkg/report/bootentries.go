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
	"encoding/hex"
	"errors"
	"fmt"

	"github.com/hashicorp/go-multierror"

	"github.com/rancher/elemental-devpath/pkg/efi"
)

// BootEntriesReport describes the boot device selection menu
type BootEntriesReport struct {
	BootOrder   []string          `yaml:"bootOrder,omitempty" json:"bootOrder,omitempty"`
	BootCurrent string            `yaml:"bootCurrent,omitempty" json:"bootCurrent,omitempty"`
	Entries     []BootEntryReport `yaml:"entries" json:"entries"`
	Errors      []string          `yaml:"errors,omitempty" json:"errors,omitempty"`
}

type BootEntryReport struct {
	Name         string         `yaml:"name" json:"name"`
	Description  string         `yaml:"description" json:"description"`
	Active       bool           `yaml:"active" json:"active"`
	Hidden       bool           `yaml:"hidden,omitempty" json:"hidden,omitempty"`
	Storage      *StorageReport `yaml:"storage,omitempty" json:"storage,omitempty"`
	FilePaths    []PathReport   `yaml:"filePaths" json:"filePaths"`
	OptionalData string         `yaml:"optionalData,omitempty" json:"optionalData,omitempty"`
}

type StorageReport struct {
	Partition HardDriveReport `yaml:"partition" json:"partition"`
	FilePath  string          `yaml:"filePath,omitempty" json:"filePath,omitempty"`
}

// NewBootEntriesReport describes the entries of bm. Entries the manager
// skipped are listed under Errors.
func NewBootEntriesReport(bm *efi.BootManager) (*BootEntriesReport, error) {
	report := &BootEntriesReport{Entries: []BootEntryReport{}}
	for _, num := range bm.BootOrder() {
		report.BootOrder = append(report.BootOrder, bootName(num))
	}
	if current, ok := bm.BootCurrent(); ok {
		report.BootCurrent = bootName(current)
	}
	for _, entry := range bm.Entries() {
		er, err := NewBootEntryReport(entry)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", entry.Name, err)
		}
		report.Entries = append(report.Entries, *er)
	}
	var merr *multierror.Error
	if errors.As(bm.Errors(), &merr) {
		for _, err := range merr.Errors {
			report.Errors = append(report.Errors, err.Error())
		}
	}
	return report, nil
}

func NewBootEntryReport(entry efi.BootEntryVariable) (*BootEntryReport, error) {
	opt := entry.LoadOption
	er := &BootEntryReport{
		Name:         entry.Name,
		Description:  opt.Description.String(),
		Active:       opt.IsActive(),
		Hidden:       opt.IsHidden(),
		OptionalData: hex.EncodeToString(opt.OptionalData),
	}
	for _, path := range opt.FilePaths {
		pr, err := NewPathReport(path)
		if err != nil {
			return nil, err
		}
		er.FilePaths = append(er.FilePaths, *pr)
	}
	if storage, err := opt.Storage(); err == nil {
		er.Storage = &StorageReport{
			Partition: *NewHardDriveReport(storage.Partition),
		}
		if storage.FilePath != nil {
			er.Storage.FilePath = storage.FilePath.String()
		}
	}
	return er, nil
}

func bootName(num int) string {
	return fmt.Sprintf("Boot%04X", num)
}
