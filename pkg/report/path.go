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

// Package report turns decoded device paths into structured documents
package report

import (
	"encoding/hex"
	"fmt"

	"github.com/rancher/elemental-devpath/pkg/devicepath"
)

// PathReport describes a whole device path
type PathReport struct {
	Size      int              `yaml:"size" json:"size"`
	Instances []InstanceReport `yaml:"instances" json:"instances"`
}

// InstanceReport describes one instance, its terminator included
type InstanceReport struct {
	Index int          `yaml:"index" json:"index"`
	Size  int          `yaml:"size" json:"size"`
	Nodes []NodeReport `yaml:"nodes" json:"nodes"`
}

// NodeReport describes a single node. Only nodes of a known kind carry
// decoded fields.
type NodeReport struct {
	Offset    int              `yaml:"offset" json:"offset"`
	Type      string           `yaml:"type" json:"type"`
	SubType   string           `yaml:"subtype" json:"subtype"`
	Kind      string           `yaml:"kind,omitempty" json:"kind,omitempty"`
	Length    uint16           `yaml:"length" json:"length"`
	Data      string           `yaml:"data,omitempty" json:"data,omitempty"`
	ACPI      *ACPIReport      `yaml:"acpi,omitempty" json:"acpi,omitempty"`
	HardDrive *HardDriveReport `yaml:"hardDrive,omitempty" json:"hardDrive,omitempty"`
	FilePath  *string          `yaml:"filePath,omitempty" json:"filePath,omitempty"`
	Error     string           `yaml:"error,omitempty" json:"error,omitempty"`
}

type ACPIReport struct {
	HID string `yaml:"hid" json:"hid"`
	UID uint32 `yaml:"uid" json:"uid"`
}

type HardDriveReport struct {
	PartitionNumber uint32 `yaml:"partitionNumber" json:"partitionNumber"`
	PartitionStart  uint64 `yaml:"partitionStart" json:"partitionStart"`
	PartitionSize   uint64 `yaml:"partitionSize" json:"partitionSize"`
	Format          string `yaml:"format" json:"format"`
	Signature       string `yaml:"signature,omitempty" json:"signature,omitempty"`
}

// NewPathReport walks every instance and node of path
func NewPathReport(path devicepath.DevicePath) (*PathReport, error) {
	report := &PathReport{Size: path.Len()}
	offset := 0
	instances := path.InstanceIter()
	for instance := range instances.All() {
		ir := InstanceReport{Index: len(report.Instances), Size: instance.Len()}
		nodes := instance.NodeIter()
		for node := range nodes.All() {
			ir.Nodes = append(ir.Nodes, newNodeReport(node, offset))
			offset += int(node.Length())
		}
		if err := nodes.Err(); err != nil {
			return nil, fmt.Errorf("instance %d: %w", ir.Index, err)
		}
		if end, ok := instance.Terminator(); ok {
			ir.Nodes = append(ir.Nodes, newNodeReport(end, offset))
			offset += int(end.Length())
		}
		report.Instances = append(report.Instances, ir)
	}
	if err := instances.Err(); err != nil {
		return nil, err
	}
	return report, nil
}

func newNodeReport(node devicepath.Node, offset int) NodeReport {
	nr := NodeReport{
		Offset:  offset,
		Type:    node.DeviceType().String(),
		SubType: node.SubType().String(),
		Kind:    node.FullType().Name(),
		Length:  node.Length(),
		Data:    hex.EncodeToString(node.Data()),
	}

	switch node.FullType() {
	case devicepath.FullTypeACPI:
		if node.Length() != devicepath.ACPINodeLength {
			nr.Error = fmt.Sprintf("acpi node must be %d bytes long", devicepath.ACPINodeLength)
			break
		}
		acpi, _ := node.AsACPI()
		nr.ACPI = &ACPIReport{HID: acpi.HID().String(), UID: acpi.UID()}
	case devicepath.FullTypeMediaHardDrive:
		if node.Length() != devicepath.HardDriveMediaLength {
			nr.Error = fmt.Sprintf("hard drive media node must be %d bytes long", devicepath.HardDriveMediaLength)
			break
		}
		hd, _ := node.AsHardDriveMedia()
		nr.HardDrive = NewHardDriveReport(hd)
	case devicepath.FullTypeMediaFilePath:
		fp, _ := node.AsFilePathMedia()
		name, err := fp.PathName().ToCString16()
		if err != nil {
			nr.Error = err.Error()
			break
		}
		s := name.String()
		nr.FilePath = &s
	}
	return nr
}

func NewHardDriveReport(hd devicepath.HardDriveMediaNode) *HardDriveReport {
	r := &HardDriveReport{
		PartitionNumber: hd.PartitionNumber(),
		PartitionStart:  hd.PartitionStart(),
		PartitionSize:   hd.PartitionSize(),
		Format:          hd.PartitionFormat().String(),
	}
	if sig := hd.PartitionSignature(); sig != nil {
		r.Signature = sig.String()
	}
	return r
}
