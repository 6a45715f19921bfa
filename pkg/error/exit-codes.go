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

// provides a custom error interface and exit codes to use on elemental-devpath
package error

//
// Provided exit codes for elemental-devpath

// To make it easy to generate them you have to respect the structure:
//
// comment that explains the error
// const NamedConstant = ERRORCODE

// Error reading the run config
const ReadingRunConfig = 10

// Error reading the device path input
const ReadingInput = 11

// Error decoding a device path
const DecodingDevicePath = 12

// Error reading the EFI variables
const ReadingEFIVariables = 13

// Error parsing a boot entry
const ParsingBootEntry = 14

// Error marshalling the report
const MarshallingOutput = 15

// Error writing the report
const WritingOutput = 16

// Unknown error
const Unknown int = 255
