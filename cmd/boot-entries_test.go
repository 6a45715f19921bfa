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
	"errors"

	efilib "github.com/canonical/go-efilib"
	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"github.com/spf13/viper"
	"gopkg.in/yaml.v3"

	elementalError "github.com/rancher/elemental-devpath/pkg/error"
	"github.com/rancher/elemental-devpath/pkg/mocks"
	"github.com/rancher/elemental-devpath/pkg/report"
)

var _ = Describe("Boot entries", Label("boot-entries", "cmd"), func() {
	var vars *mocks.MockEFIVariables

	BeforeEach(func() {
		vars = mocks.NewMockEFIVariables()
		Expect(mocks.FakeBootEntries(vars, map[int]*efilib.LoadOption{
			0: mocks.FakeLoadOption("elemental-shim", `\EFI\ELEMENTAL\shim.efi`),
			4: mocks.FakeLoadOption("elemental-grub", `\EFI\ELEMENTAL\grub.efi`),
		}, 4, 0)).To(Succeed())
		rootCmd = NewRootCmd()
		_ = NewBootEntriesCmd(rootCmd, vars)
	})
	AfterEach(func() {
		viper.Reset()
	})

	It("lists the entries in boot order", func() {
		_, output, err := executeCommandC(rootCmd, "boot-entries")
		Expect(err).ToNot(HaveOccurred())

		var r report.BootEntriesReport
		Expect(yaml.Unmarshal([]byte(output), &r)).To(Succeed())
		Expect(r.BootOrder).To(Equal([]string{"Boot0004", "Boot0000"}))
		Expect(r.Entries).To(HaveLen(2))
		Expect(r.Entries[0].Description).To(Equal("elemental-grub"))
		Expect(r.Entries[0].Storage.FilePath).To(Equal(`\EFI\ELEMENTAL\grub.efi`))
		Expect(r.Entries[1].Name).To(Equal("Boot0000"))
		Expect(r.Errors).To(BeEmpty())
	})
	It("reports broken entries", func() {
		Expect(vars.SetVariable(efilib.GlobalVariable, "Boot0001", []byte{1, 0, 0, 0}, efilib.AttributeNonVolatile)).To(Succeed())
		_, output, err := executeCommandC(rootCmd, "boot-entries")
		Expect(err).ToNot(HaveOccurred())
		Expect(output).To(ContainSubstring("cannot parse Boot0001"))
	})
	It("fails on broken entries in strict mode", Label("flags"), func() {
		Expect(vars.SetVariable(efilib.GlobalVariable, "Boot0001", []byte{1, 0, 0, 0}, efilib.AttributeNonVolatile)).To(Succeed())
		_, _, err := executeCommandC(rootCmd, "boot-entries", "--strict")
		Expect(elementalError.ExitCode(err)).To(Equal(elementalError.ParsingBootEntry))
	})
	It("fails without EFI variables", func() {
		vars.WithListError(errors.New("no efivarfs"))
		_, _, err := executeCommandC(rootCmd, "boot-entries")
		Expect(elementalError.ExitCode(err)).To(Equal(elementalError.ReadingEFIVariables))
	})
})
