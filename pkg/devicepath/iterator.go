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
	"iter"
)

type stopCondition int

const (
	// stop at either kind of end node, used within an instance
	stopAnyEnd stopCondition = iota
	// stop at the end-entire node only, used over a whole path
	stopEndEntire
	// yield every node, end nodes included
	stopNever
)

// NodeIterator walks consecutive nodes of a byte region. The terminating end
// node is never yielded. It cannot be rewound, ask the instance or path for a
// new one instead.
type NodeIterator struct {
	nodes []byte
	stop  stopCondition
	err   error
}

func newNodeIterator(nodes []byte, stop stopCondition) *NodeIterator {
	return &NodeIterator{nodes: nodes, stop: stop}
}

// Next returns the next node, false once iteration is over.
func (it *NodeIterator) Next() (Node, bool) {
	if len(it.nodes) == 0 {
		return Node{}, false
	}

	node, err := NodeFromBytes(it.nodes)
	if err != nil {
		it.err = err
		it.nodes = nil
		return Node{}, false
	}

	var stop bool
	switch it.stop {
	case stopAnyEnd:
		stop = node.IsEnd()
	case stopEndEntire:
		stop = node.IsEndEntire()
	}
	if stop {
		it.nodes = nil
		return Node{}, false
	}

	it.nodes = it.nodes[node.Length():]
	return node, true
}

// Err returns the error that ended iteration early, if any.
func (it *NodeIterator) Err() error {
	return it.err
}

// All returns a sequence over the remaining nodes.
func (it *NodeIterator) All() iter.Seq[Node] {
	return func(yield func(Node) bool) {
		for node, ok := it.Next(); ok; node, ok = it.Next() {
			if !yield(node) {
				return
			}
		}
	}
}

// InstanceIterator splits a device path into its instances.
type InstanceIterator struct {
	remaining []byte
	err       error
}

// Next returns the next instance, false once the path is exhausted.
func (it *InstanceIterator) Next() (Instance, bool) {
	if len(it.remaining) == 0 {
		return Instance{}, false
	}

	size, err := instanceSize(it.remaining)
	if err != nil {
		it.err = err
		it.remaining = nil
		return Instance{}, false
	}

	head, rest := it.remaining[:size:size], it.remaining[size:]
	it.remaining = rest
	return Instance{data: head}, true
}

// Err returns the error that ended iteration early, if any.
func (it *InstanceIterator) Err() error {
	return it.err
}

// All returns a sequence over the remaining instances.
func (it *InstanceIterator) All() iter.Seq[Instance] {
	return func(yield func(Instance) bool) {
		for instance, ok := it.Next(); ok; instance, ok = it.Next() {
			if !yield(instance) {
				return
			}
		}
	}
}

// instanceSize measures the nodes of b up to and including the first end
// node of either kind.
func instanceSize(b []byte) (int, error) {
	size := 0
	nodes := newNodeIterator(b, stopNever)
	for node, ok := nodes.Next(); ok; node, ok = nodes.Next() {
		size += int(node.Length())
		if node.IsEnd() {
			return size, nil
		}
	}
	if err := nodes.Err(); err != nil {
		return 0, fmt.Errorf("node at offset %d: %w", size, err)
	}
	return 0, ErrMissingEndEntire
}
