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

package mocks

import (
	efi "github.com/canonical/go-efilib"
)

type mockEFIVariable struct {
	data  []byte
	attrs efi.VariableAttributes
}

// MockEFIVariables implements an in-memory variable store.
type MockEFIVariables struct {
	store   map[efi.VariableDescriptor]mockEFIVariable
	listErr error
	getErr  map[string]error
}

func NewMockEFIVariables() *MockEFIVariables {
	return &MockEFIVariables{
		store:  make(map[efi.VariableDescriptor]mockEFIVariable),
		getErr: make(map[string]error),
	}
}

// WithListError makes ListVariables fail, as on systems without EFI variables
func (m *MockEFIVariables) WithListError(err error) *MockEFIVariables {
	m.listErr = err
	return m
}

// WithGetError makes GetVariable fail for the given variable name
func (m *MockEFIVariables) WithGetError(name string, err error) *MockEFIVariables {
	m.getErr[name] = err
	return m
}

// ListVariables implements EFIVariables
func (m MockEFIVariables) ListVariables() (out []efi.VariableDescriptor, err error) {
	if m.listErr != nil {
		return nil, m.listErr
	}
	for k := range m.store {
		out = append(out, k)
	}
	return out, nil
}

// GetVariable implements EFIVariables
func (m MockEFIVariables) GetVariable(guid efi.GUID, name string) (data []byte, attrs efi.VariableAttributes, err error) {
	if err, ok := m.getErr[name]; ok {
		return nil, 0, err
	}
	out, ok := m.store[efi.VariableDescriptor{Name: name, GUID: guid}]
	if !ok {
		return nil, 0, efi.ErrVarNotExist
	}
	return out.data, out.attrs, nil
}

// SetVariable stores a variable, empty data deletes it
func (m MockEFIVariables) SetVariable(guid efi.GUID, name string, data []byte, attrs efi.VariableAttributes) error {
	if len(data) == 0 {
		delete(m.store, efi.VariableDescriptor{Name: name, GUID: guid})
	} else {
		m.store[efi.VariableDescriptor{Name: name, GUID: guid}] = mockEFIVariable{data, attrs}
	}
	return nil
}
