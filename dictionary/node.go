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

// node owns its element copy and both child subtrees. No node is ever
// reachable from two parents.
type node struct {
	element WordPair
	left    *node // Keys strictly less than element's key
	right   *node // Keys strictly greater than element's key
}

func (n *node) hasLeft() bool  { return n.left != nil }
func (n *node) hasRight() bool { return n.right != nil }
