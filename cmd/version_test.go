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
	"encoding/json"

	. "github.com/onsi/ginkgo/v2"
	. "github.com/onsi/gomega"
	"gopkg.in/yaml.v3"

	"github.com/rancher/elemental-devpath/internal/version"
)

var _ = Describe("Version", Label("version", "cmd"), func() {
	BeforeEach(func() {
		rootCmd = NewRootCmd()
		_ = NewVersionCmd(rootCmd)
	})
	It("Reports the short version", func() {
		_, output, err := executeCommandC(rootCmd, "version")
		Expect(err).ToNot(HaveOccurred())
		Expect(output).To(Equal(version.Get().Short() + "\n"))
		Expect(output).To(HavePrefix(version.GetVersion() + "+g"))
	})
	It("Reports the long version as yaml by default", Label("flags"), func() {
		_, output, err := executeCommandC(rootCmd, "version", "--long")
		Expect(err).ToNot(HaveOccurred())

		var info version.BuildInfo
		Expect(yaml.Unmarshal([]byte(output), &info)).To(Succeed())
		Expect(info.Version).To(Equal(version.GetVersion()))
		Expect(info.GoVersion).ToNot(BeEmpty())
		Expect(output).To(ContainSubstring("go_version:"))
	})
	It("Reports the long version as json", Label("flags"), func() {
		_, output, err := executeCommandC(rootCmd, "version", "--long", "-o", "json")
		Expect(err).ToNot(HaveOccurred())

		var info version.BuildInfo
		Expect(json.Unmarshal([]byte(output), &info)).To(Succeed())
		Expect(info).To(Equal(version.Get()))
	})
	It("Rejects unknown formats", Label("flags"), func() {
		_, _, err := executeCommandC(rootCmd, "version", "--long", "-o", "xml")
		Expect(err).To(HaveOccurred())
	})
})

var _ = Describe("BuildInfo", Label("version"), func() {
	It("abbreviates long commits", func() {
		b := version.BuildInfo{Version: "v1.2.3", GitCommit: "0123456789abcdef"}
		Expect(b.Short()).To(Equal("v1.2.3+g0123456"))
	})
	It("keeps short commits untouched", func() {
		b := version.BuildInfo{Version: "v1.2.3", GitCommit: "abc"}
		Expect(b.Short()).To(Equal("v1.2.3+gabc"))
	})
})
