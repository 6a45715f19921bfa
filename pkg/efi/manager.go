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

// Package efi reads the boot device selection menu from EFI variables
package efi

import (
	"errors"
	"fmt"
	"slices"

	efi "github.com/canonical/go-efilib"
	"github.com/hashicorp/go-multierror"

	"github.com/rancher/elemental-devpath/pkg/constants"
	"github.com/rancher/elemental-devpath/pkg/devicepath"
	"github.com/rancher/elemental-devpath/pkg/types"
)

// BootManager is a read-only view of the boot device selection menu entries (Boot0000...BootFFFF).
type BootManager struct {
	logger      types.Logger
	efivars     Variables                 // EFIVariables implementation
	entries     map[int]BootEntryVariable // The Boot<number> variables that hold a valid load option
	bootOrder   []int                     // The BootOrder variable, parsed
	bootCurrent int                       // The BootCurrent variable, -1 when unset
	errs        *multierror.Error         // Entries that could not be read or parsed
}

// BootEntryVariable defines a boot entry variable
type BootEntryVariable struct {
	BootNumber int                    // number of the Boot variable, for example, for Boot0004 this is 4
	Name       string                 // name of the variable
	Data       []byte                 // the data of the variable
	Attributes efi.VariableAttributes // any attributes set on the variable
	LoadOption *LoadOption            // the data of the variable parsed as a load option
}

// NewBootManagerForVariables returns a boot manager for the given EFIVariables manager.
// Entries that fail to decode are skipped and reported by Errors.
func NewBootManagerForVariables(logger types.Logger, efivars Variables) (BootManager, error) {
	bm := BootManager{
		logger:      logger,
		efivars:     efivars,
		entries:     make(map[int]BootEntryVariable),
		bootCurrent: -1,
	}

	names, err := GetVariableNames(efivars, efi.GlobalVariable)
	if err != nil {
		return BootManager{}, fmt.Errorf("cannot obtain list of global variables: %w", err)
	}

	bm.bootOrder, err = bm.readUint16s(constants.BootOrder)
	if err != nil {
		return BootManager{}, err
	}
	if current, err := bm.readUint16s(constants.BootCurrent); err != nil {
		bm.addError(err)
	} else if len(current) == 1 {
		bm.bootCurrent = current[0]
	}

	for _, name := range names {
		var entry BootEntryVariable
		if parsed, err := fmt.Sscanf(name, constants.BootPrefix+"%04X", &entry.BootNumber); len(name) != 8 || parsed != 1 || err != nil {
			continue
		}
		entry.Name = name
		entry.Data, entry.Attributes, err = efivars.GetVariable(efi.GlobalVariable, name)
		if err != nil {
			bm.addError(fmt.Errorf("cannot read %s: %w", name, err))
			continue
		}
		entry.LoadOption, err = ParseLoadOption(entry.Data)
		if err != nil {
			bm.addError(fmt.Errorf("cannot parse %s: %w", name, err))
			continue
		}
		bm.logger.Debugf("found boot entry %s: %s", name, entry.LoadOption.Description)
		bm.entries[entry.BootNumber] = entry
	}

	return bm, nil
}

func (bm *BootManager) addError(err error) {
	bm.logger.Warnf("skipping: %s", err.Error())
	bm.errs = multierror.Append(bm.errs, err)
}

// readUint16s reads a variable holding a packed array of 16 bit integers.
// A missing variable reads as an empty array.
func (bm *BootManager) readUint16s(name string) ([]int, error) {
	data, _, err := bm.efivars.GetVariable(efi.GlobalVariable, name)
	if errors.Is(err, efi.ErrVarNotExist) {
		bm.logger.Debugf("%s is not set", name)
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("cannot read %s: %w", name, err)
	}
	if len(data)%2 != 0 {
		return nil, fmt.Errorf("%w: %s has an odd size of %d bytes", devicepath.ErrInvalidLength, name, len(data))
	}
	values := devicepath.NewUint16Slice(data)
	out := make([]int, 0, values.Len())
	for v := range values.All() {
		out = append(out, int(v))
	}
	return out, nil
}

// BootOrder returns the parsed BootOrder variable
func (bm *BootManager) BootOrder() []int {
	return slices.Clone(bm.bootOrder)
}

// BootCurrent returns the entry the system booted from, if the firmware reported it
func (bm *BootManager) BootCurrent() (int, bool) {
	return bm.bootCurrent, bm.bootCurrent >= 0
}

// Entry returns the entry with the given boot number
func (bm *BootManager) Entry(num int) (BootEntryVariable, bool) {
	entry, ok := bm.entries[num]
	return entry, ok
}

// Entries lists the valid entries, the ones in the boot order first
func (bm *BootManager) Entries() []BootEntryVariable {
	out := make([]BootEntryVariable, 0, len(bm.entries))
	for _, num := range bm.bootOrder {
		if entry, ok := bm.entries[num]; ok && !slices.ContainsFunc(out, func(e BootEntryVariable) bool { return e.BootNumber == num }) {
			out = append(out, entry)
		}
	}
	var rest []int
	for num := range bm.entries {
		if !slices.Contains(bm.bootOrder, num) {
			rest = append(rest, num)
		}
	}
	slices.Sort(rest)
	for _, num := range rest {
		out = append(out, bm.entries[num])
	}
	return out
}

// Errors returns the aggregated failures of the skipped entries, nil if there are none
func (bm *BootManager) Errors() error {
	return bm.errs.ErrorOrNil()
}

// VariablesSupported indicates whether variables can be accessed.
func VariablesSupported(efiVars Variables) bool {
	_, err := efiVars.ListVariables()
	return err == nil
}

// GetVariableNames returns the names of every variable with the specified GUID.
func GetVariableNames(efiVars Variables, filterGUID efi.GUID) (names []string, err error) {
	vars, err := efiVars.ListVariables()
	if err != nil {
		return nil, err
	}
	for _, entry := range vars {
		if entry.GUID != filterGUID {
			continue
		}
		names = append(names, entry.Name)
	}
	slices.Sort(names)
	return names, nil
}
