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

// FilePathMediaNode holds a file path as a nul-terminated UCS-2 string.
type FilePathMediaNode struct {
	node Node
}

// AsFilePathMedia returns the node as a FilePathMediaNode, false if it is of
// another kind.
func (n Node) AsFilePathMedia() (FilePathMediaNode, bool) {
	if n.FullType() != FullTypeMediaFilePath {
		return FilePathMediaNode{}, false
	}
	return FilePathMediaNode{node: n}, true
}

// Node returns the generic view of the node.
func (f FilePathMediaNode) Node() Node {
	return f.node
}

// PathName returns the path, still in the node buffer. It holds
// (Length()-4)/2 code units.
func (f FilePathMediaNode) PathName() UnalignedCStr16 {
	return UnalignedCStr16{codes: NewUint16Slice(f.node.Data())}
}
