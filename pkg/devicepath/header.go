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

package devicepath

import (
	"fmt"
)

// HeaderSize is the size of the header at the start of every node.
const HeaderSize = 4

// DeviceType is the coarse category of a node. Values not listed here are
// valid and kept as is.
type DeviceType uint8

const (
	DeviceTypeHardware     DeviceType = 0x01
	DeviceTypeACPI         DeviceType = 0x02
	DeviceTypeMessaging    DeviceType = 0x03
	DeviceTypeMedia        DeviceType = 0x04
	DeviceTypeBIOSBootSpec DeviceType = 0x05
	DeviceTypeEnd          DeviceType = 0x7f
)

func (t DeviceType) String() string {
	switch t {
	case DeviceTypeHardware:
		return "hardware"
	case DeviceTypeACPI:
		return "acpi"
	case DeviceTypeMessaging:
		return "messaging"
	case DeviceTypeMedia:
		return "media"
	case DeviceTypeBIOSBootSpec:
		return "bios-boot-spec"
	case DeviceTypeEnd:
		return "end"
	default:
		return fmt.Sprintf("DeviceType(0x%02x)", uint8(t))
	}
}

// DeviceSubType identifies a node within the namespace of its DeviceType, the
// same value means different things under different types.
type DeviceSubType uint8

// Hardware sub types
const (
	SubTypeHardwarePCI          DeviceSubType = 0x01
	SubTypeHardwarePCCard       DeviceSubType = 0x02
	SubTypeHardwareMemoryMapped DeviceSubType = 0x03
	SubTypeHardwareVendor       DeviceSubType = 0x04
	SubTypeHardwareController   DeviceSubType = 0x05
	SubTypeHardwareBMC          DeviceSubType = 0x06
)

// ACPI sub types
const (
	SubTypeACPI         DeviceSubType = 0x01
	SubTypeACPIExpanded DeviceSubType = 0x02
	SubTypeACPIADR      DeviceSubType = 0x03
	SubTypeACPINVDIMM   DeviceSubType = 0x04
)

// Messaging sub types
const (
	SubTypeMessagingATAPI             DeviceSubType = 0x01
	SubTypeMessagingSCSI              DeviceSubType = 0x02
	SubTypeMessagingFibreChannel      DeviceSubType = 0x03
	SubTypeMessaging1394              DeviceSubType = 0x04
	SubTypeMessagingUSB               DeviceSubType = 0x05
	SubTypeMessagingI2O               DeviceSubType = 0x06
	SubTypeMessagingInfiniband        DeviceSubType = 0x09
	SubTypeMessagingVendor            DeviceSubType = 0x0a
	SubTypeMessagingMACAddress        DeviceSubType = 0x0b
	SubTypeMessagingIPv4              DeviceSubType = 0x0c
	SubTypeMessagingIPv6              DeviceSubType = 0x0d
	SubTypeMessagingUART              DeviceSubType = 0x0e
	SubTypeMessagingUSBClass          DeviceSubType = 0x0f
	SubTypeMessagingUSBWWID           DeviceSubType = 0x10
	SubTypeMessagingDeviceLogicalUnit DeviceSubType = 0x11
	SubTypeMessagingSATA              DeviceSubType = 0x12
	SubTypeMessagingISCSI             DeviceSubType = 0x13
	SubTypeMessagingVLAN              DeviceSubType = 0x14
	SubTypeMessagingFibreChannelEx    DeviceSubType = 0x15
	SubTypeMessagingSCSISASEx         DeviceSubType = 0x16
	SubTypeMessagingNVMeNamespace     DeviceSubType = 0x17
	SubTypeMessagingURI               DeviceSubType = 0x18
	SubTypeMessagingUFS               DeviceSubType = 0x19
	SubTypeMessagingSD                DeviceSubType = 0x1a
	SubTypeMessagingBluetooth         DeviceSubType = 0x1b
	SubTypeMessagingWiFi              DeviceSubType = 0x1c
	SubTypeMessagingEMMC              DeviceSubType = 0x1d
	SubTypeMessagingBluetoothLE       DeviceSubType = 0x1e
	SubTypeMessagingDNS               DeviceSubType = 0x1f
	SubTypeMessagingNVDIMMNamespace   DeviceSubType = 0x20
)

// Media sub types
const (
	SubTypeMediaHardDrive           DeviceSubType = 0x01
	SubTypeMediaCDROM               DeviceSubType = 0x02
	SubTypeMediaVendor              DeviceSubType = 0x03
	SubTypeMediaFilePath            DeviceSubType = 0x04
	SubTypeMediaProtocol            DeviceSubType = 0x05
	SubTypeMediaPIWGFirmwareFile    DeviceSubType = 0x06
	SubTypeMediaPIWGFirmwareVolume  DeviceSubType = 0x07
	SubTypeMediaRelativeOffsetRange DeviceSubType = 0x08
	SubTypeMediaRAMDisk             DeviceSubType = 0x09
)

// BIOS boot specification sub type
const SubTypeBIOSBootSpecification DeviceSubType = 0x01

// End sub types
const (
	SubTypeEndInstance DeviceSubType = 0x01
	SubTypeEndEntire   DeviceSubType = 0xff
)

func (s DeviceSubType) String() string {
	return fmt.Sprintf("0x%02x", uint8(s))
}

// FullType is the (type, sub type) pair used to dispatch on node kinds.
type FullType struct {
	DeviceType DeviceType
	SubType    DeviceSubType
}

var (
	FullTypeACPI           = FullType{DeviceTypeACPI, SubTypeACPI}
	FullTypeMediaHardDrive = FullType{DeviceTypeMedia, SubTypeMediaHardDrive}
	FullTypeMediaFilePath  = FullType{DeviceTypeMedia, SubTypeMediaFilePath}
	FullTypeEndInstance    = FullType{DeviceTypeEnd, SubTypeEndInstance}
	FullTypeEndEntire      = FullType{DeviceTypeEnd, SubTypeEndEntire}
)

var fullTypeNames = map[FullType]string{
	{DeviceTypeHardware, SubTypeHardwarePCI}:                 "pci",
	{DeviceTypeHardware, SubTypeHardwarePCCard}:              "pccard",
	{DeviceTypeHardware, SubTypeHardwareMemoryMapped}:        "memory-mapped",
	{DeviceTypeHardware, SubTypeHardwareVendor}:              "hardware-vendor",
	{DeviceTypeHardware, SubTypeHardwareController}:          "controller",
	{DeviceTypeHardware, SubTypeHardwareBMC}:                 "bmc",
	{DeviceTypeACPI, SubTypeACPI}:                            "acpi",
	{DeviceTypeACPI, SubTypeACPIExpanded}:                    "acpi-expanded",
	{DeviceTypeACPI, SubTypeACPIADR}:                         "acpi-adr",
	{DeviceTypeACPI, SubTypeACPINVDIMM}:                      "nvdimm",
	{DeviceTypeMessaging, SubTypeMessagingATAPI}:             "atapi",
	{DeviceTypeMessaging, SubTypeMessagingSCSI}:              "scsi",
	{DeviceTypeMessaging, SubTypeMessagingFibreChannel}:      "fibre-channel",
	{DeviceTypeMessaging, SubTypeMessaging1394}:              "1394",
	{DeviceTypeMessaging, SubTypeMessagingUSB}:               "usb",
	{DeviceTypeMessaging, SubTypeMessagingI2O}:               "i2o",
	{DeviceTypeMessaging, SubTypeMessagingInfiniband}:        "infiniband",
	{DeviceTypeMessaging, SubTypeMessagingVendor}:            "messaging-vendor",
	{DeviceTypeMessaging, SubTypeMessagingMACAddress}:        "mac-address",
	{DeviceTypeMessaging, SubTypeMessagingIPv4}:              "ipv4",
	{DeviceTypeMessaging, SubTypeMessagingIPv6}:              "ipv6",
	{DeviceTypeMessaging, SubTypeMessagingUART}:              "uart",
	{DeviceTypeMessaging, SubTypeMessagingUSBClass}:          "usb-class",
	{DeviceTypeMessaging, SubTypeMessagingUSBWWID}:           "usb-wwid",
	{DeviceTypeMessaging, SubTypeMessagingDeviceLogicalUnit}: "device-logical-unit",
	{DeviceTypeMessaging, SubTypeMessagingSATA}:              "sata",
	{DeviceTypeMessaging, SubTypeMessagingISCSI}:             "iscsi",
	{DeviceTypeMessaging, SubTypeMessagingVLAN}:              "vlan",
	{DeviceTypeMessaging, SubTypeMessagingFibreChannelEx}:    "fibre-channel-ex",
	{DeviceTypeMessaging, SubTypeMessagingSCSISASEx}:         "sas-ex",
	{DeviceTypeMessaging, SubTypeMessagingNVMeNamespace}:     "nvme-namespace",
	{DeviceTypeMessaging, SubTypeMessagingURI}:               "uri",
	{DeviceTypeMessaging, SubTypeMessagingUFS}:               "ufs",
	{DeviceTypeMessaging, SubTypeMessagingSD}:                "sd",
	{DeviceTypeMessaging, SubTypeMessagingBluetooth}:         "bluetooth",
	{DeviceTypeMessaging, SubTypeMessagingWiFi}:              "wifi",
	{DeviceTypeMessaging, SubTypeMessagingEMMC}:              "emmc",
	{DeviceTypeMessaging, SubTypeMessagingBluetoothLE}:       "bluetooth-le",
	{DeviceTypeMessaging, SubTypeMessagingDNS}:               "dns",
	{DeviceTypeMessaging, SubTypeMessagingNVDIMMNamespace}:   "nvdimm-namespace",
	{DeviceTypeMedia, SubTypeMediaHardDrive}:                 "hard-drive",
	{DeviceTypeMedia, SubTypeMediaCDROM}:                     "cdrom",
	{DeviceTypeMedia, SubTypeMediaVendor}:                    "media-vendor",
	{DeviceTypeMedia, SubTypeMediaFilePath}:                  "file-path",
	{DeviceTypeMedia, SubTypeMediaProtocol}:                  "media-protocol",
	{DeviceTypeMedia, SubTypeMediaPIWGFirmwareFile}:          "firmware-file",
	{DeviceTypeMedia, SubTypeMediaPIWGFirmwareVolume}:        "firmware-volume",
	{DeviceTypeMedia, SubTypeMediaRelativeOffsetRange}:       "relative-offset-range",
	{DeviceTypeMedia, SubTypeMediaRAMDisk}:                   "ram-disk",
	{DeviceTypeBIOSBootSpec, SubTypeBIOSBootSpecification}:   "bbs",
	{DeviceTypeEnd, SubTypeEndInstance}:                      "end-instance",
	{DeviceTypeEnd, SubTypeEndEntire}:                        "end-entire",
}

// Name returns a short name for known pairs and an empty string otherwise.
func (t FullType) Name() string {
	return fullTypeNames[t]
}

func (t FullType) String() string {
	if name := t.Name(); name != "" {
		return name
	}
	return fmt.Sprintf("%s/%s", t.DeviceType, t.SubType)
}

// Header is present at the start of every node. Length covers the whole
// node, header included.
type Header struct {
	DeviceType DeviceType
	SubType    DeviceSubType
	Length     uint16
}

// ReadHeader decodes the header at the start of b without any validation.
// The caller guarantees b holds at least HeaderSize bytes.
func ReadHeader(b []byte) Header {
	return Header{
		DeviceType: DeviceType(b[0]),
		SubType:    DeviceSubType(b[1]),
		Length:     uint16At(b, 2),
	}
}

// HeaderFromBytes is ReadHeader for untrusted input.
func HeaderFromBytes(b []byte) (Header, error) {
	if len(b) < HeaderSize {
		return Header{}, fmt.Errorf("%w: header needs %d bytes, got %d", ErrInvalidLength, HeaderSize, len(b))
	}
	return ReadHeader(b), nil
}

// FullType returns the (type, sub type) pair of the header.
func (h Header) FullType() FullType {
	return FullType{DeviceType: h.DeviceType, SubType: h.SubType}
}
