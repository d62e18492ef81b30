// Copyright 2025 Naren Yellavula
//
// Licensed under the Apache License, Version 2.0 (the "License");
// you may not use this file except in compliance with the License.
// You may obtain a copy of the License at
//
//     http://www.apache.org/licenses/LICENSE-2.0
//
// Unless required by applicable law or agreed to in writing, software
// distributed under the License is distributed on an "AS IS" BASIS,
// WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
// See the License for the specific language governing permissions and
// limitations under the License.

package dictionary

import (
	"fmt"
	"strings"
)

// OrderedCollection is the set of operations the Dictionary relies on.
type OrderedCollection interface {
	Len() uint
	Insert(newElement WordPair) error
	Retrieve(target WordPair) (*WordPair, error)
	TraverseInOrder(visit func(*WordPair)) error
	SearchPrefix(prefix string) []*WordPair
}

var _ OrderedCollection = (*Tree)(nil)

// Tree is an unbalanced binary search tree of word pairs ordered by key.
// Duplicate keys are rejected. Sorted input degrades it into a list, so
// every walk below uses a loop or an explicit stack rather than recursion.
type Tree struct {
	root     *node
	count    uint
	capacity uint // Maximum number of nodes, 0 for unbounded
}

// Option configures a Tree.
type Option func(*Tree)

// WithCapacity bounds the number of nodes the tree may allocate. Inserts
// beyond the bound fail with ErrAllocation.
func WithCapacity(n uint) Option {
	return func(t *Tree) {
		t.capacity = n
	}
}

func NewTree(opts ...Option) *Tree {
	tree := &Tree{}
	for _, opt := range opts {
		opt(tree)
	}
	return tree
}

// Len returns the number of stored elements in O(1).
func (tree *Tree) Len() uint {
	return tree.count
}

func (tree *Tree) newNode(element WordPair) (*node, error) {
	if tree.capacity > 0 && tree.count >= tree.capacity {
		return nil, fmt.Errorf("%w: capacity of %d nodes reached", ErrAllocation, tree.capacity)
	}
	return &node{element: element}, nil
}

// Insert stores a copy of newElement. A key that is already present yields
// ErrDuplicateKey and leaves the tree untouched.
func (tree *Tree) Insert(newElement WordPair) error {
	link := &tree.root
	for *link != nil {
		current := *link
		switch cmp := newElement.Compare(current.element); {
		case cmp > 0:
			link = &current.right
		case cmp < 0:
			link = &current.left
		default:
			return fmt.Errorf("%w: %q", ErrDuplicateKey, newElement.key)
		}
	}

	// Allocation is checked before anything is linked in.
	newNode, err := tree.newNode(newElement)
	if err != nil {
		return err
	}
	*link = newNode
	tree.count++
	return nil
}

// Retrieve returns the stored element whose key equals target's key.
func (tree *Tree) Retrieve(target WordPair) (*WordPair, error) {
	if tree.count == 0 {
		return nil, ErrEmptyCollection
	}

	current := tree.root
	for {
		switch cmp := target.Compare(current.element); {
		case cmp > 0:
			if !current.hasRight() {
				return nil, fmt.Errorf("%w: %q", ErrNotFound, target.key)
			}
			current = current.right
		case cmp < 0:
			if !current.hasLeft() {
				return nil, fmt.Errorf("%w: %q", ErrNotFound, target.key)
			}
			current = current.left
		default:
			return &current.element, nil
		}
	}
}

// TraverseInOrder calls visit on every element in ascending key order:
// left subtree, node, right subtree. visit must not modify the tree.
func (tree *Tree) TraverseInOrder(visit func(*WordPair)) error {
	if tree.count == 0 {
		return ErrEmptyCollection
	}

	stack := make([]*node, 0, 32)
	current := tree.root
	for current != nil || len(stack) > 0 {
		for current != nil {
			stack = append(stack, current)
			current = current.left
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		visit(&current.element)
		current = current.right
	}
	return nil
}

// SearchPrefix returns, in ascending order, every element whose key starts
// with prefix. Subtrees that cannot hold a match are skipped.
func (tree *Tree) SearchPrefix(prefix string) []*WordPair {
	var results []*WordPair

	stack := make([]*node, 0, 32)
	current := tree.root
	for current != nil || len(stack) > 0 {
		for current != nil {
			if current.element.key >= prefix {
				stack = append(stack, current)
				current = current.left
			} else {
				// Neither this node nor its left subtree can reach the prefix
				current = current.right
			}
		}
		if len(stack) == 0 {
			break
		}
		current = stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		// Keys sharing the prefix are contiguous in key order
		if !strings.HasPrefix(current.element.key, prefix) {
			break
		}
		results = append(results, &current.element)
		current = current.right
	}
	return results
}

// Min returns the element with the smallest key.
func (tree *Tree) Min() (*WordPair, error) {
	if tree.root == nil {
		return nil, ErrEmptyCollection
	}
	current := tree.root
	for current.hasLeft() {
		current = current.left
	}
	return &current.element, nil
}

// Max returns the element with the largest key.
func (tree *Tree) Max() (*WordPair, error) {
	if tree.root == nil {
		return nil, ErrEmptyCollection
	}
	current := tree.root
	for current.hasRight() {
		current = current.right
	}
	return &current.element, nil
}

// Height returns the number of nodes on the longest root-to-leaf path.
func (tree *Tree) Height() int {
	if tree.root == nil {
		return 0
	}

	height := 0
	level := []*node{tree.root}
	for len(level) > 0 {
		height++
		var next []*node
		for _, n := range level {
			if n.hasLeft() {
				next = append(next, n.left)
			}
			if n.hasRight() {
				next = append(next, n.right)
			}
		}
		level = next
	}
	return height
}

// Copy returns a deep clone. The clone shares no nodes with tree.
func (tree *Tree) Copy() *Tree {
	clone := &Tree{count: tree.count, capacity: tree.capacity}
	if tree.root == nil {
		return clone
	}

	type link struct {
		src, dst *node
	}
	clone.root = &node{element: tree.root.element}
	stack := []link{{src: tree.root, dst: clone.root}}
	for len(stack) > 0 {
		top := stack[len(stack)-1]
		stack = stack[:len(stack)-1]

		if top.src.hasLeft() {
			top.dst.left = &node{element: top.src.left.element}
			stack = append(stack, link{src: top.src.left, dst: top.dst.left})
		}
		if top.src.hasRight() {
			top.dst.right = &node{element: top.src.right.element}
			stack = append(stack, link{src: top.src.right, dst: top.dst.right})
		}
	}
	return clone
}

// Release tears the tree down, unlinking every node exactly once, and
// returns how many nodes were released. The tree is empty afterwards.
func (tree *Tree) Release() uint {
	var released uint
	if tree.root != nil {
		stack := []*node{tree.root}
		for len(stack) > 0 {
			n := stack[len(stack)-1]
			stack = stack[:len(stack)-1]

			if n.hasLeft() {
				stack = append(stack, n.left)
			}
			if n.hasRight() {
				stack = append(stack, n.right)
			}
			n.left, n.right = nil, nil
			released++
		}
	}

	tree.root = nil
	tree.count = 0
	return released
}
