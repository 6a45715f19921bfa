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
	"errors"
)

var (
	// ErrInvalidLength is returned when a node header is truncated, declares
	// less than HeaderSize bytes or more bytes than are available.
	ErrInvalidLength = errors.New("invalid device path node length")

	// ErrMissingEndEntire is returned when a buffer is exhausted before an
	// end-entire node is found.
	ErrMissingEndEntire = errors.New("device path is not terminated by an end-entire node")
)
