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

package efi

import (
	"errors"
	"fmt"

	"github.com/rancher/elemental-devpath/pkg/devicepath"
)

// ErrNoStorage is returned when a device path has no hard drive media node
var ErrNoStorage = errors.New("no hard drive media node found")

// Storage is the partition a boot file lives on plus its path within it.
// FilePath is nil for paths that only name the partition.
type Storage struct {
	Partition devicepath.HardDriveMediaNode
	FilePath  devicepath.CString16
}

// FindStorage returns the first hard drive media node of path along with the
// file path node that follows it in the same instance.
func FindStorage(path devicepath.DevicePath) (*Storage, error) {
	instances := path.InstanceIter()
	for instance := range instances.All() {
		if s, err := instanceStorage(instance); s != nil || err != nil {
			return s, err
		}
	}
	if err := instances.Err(); err != nil {
		return nil, err
	}
	return nil, ErrNoStorage
}

func instanceStorage(instance devicepath.Instance) (*Storage, error) {
	var storage *Storage
	nodes := instance.NodeIter()
	for node := range nodes.All() {
		if storage != nil {
			if fp, ok := node.AsFilePathMedia(); ok {
				name, err := fp.PathName().ToCString16()
				if err != nil {
					return nil, fmt.Errorf("file path: %w", err)
				}
				storage.FilePath = name
			}
			return storage, nil
		}
		if node.FullType() != devicepath.FullTypeMediaHardDrive {
			continue
		}
		if node.Length() != devicepath.HardDriveMediaLength {
			return nil, fmt.Errorf("%w: hard drive media node of %d bytes", devicepath.ErrInvalidLength, node.Length())
		}
		hd, _ := node.AsHardDriveMedia()
		storage = &Storage{Partition: hd}
	}
	if err := nodes.Err(); err != nil {
		return nil, err
	}
	return storage, nil
}
