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

import "strings"

// WordPair associates a key term with its translation.
// Ordering and equality look at the key only.
type WordPair struct {
	key   string // Key term (e.g., "apple")
	value string // Translation (e.g., "pomme")
}

// NewProbe builds a key-only pair used to look an entry up.
func NewProbe(key string) WordPair {
	return WordPair{key: key}
}

// NewWordPair builds a pair from a key term and its translation.
func NewWordPair(key, value string) WordPair {
	return WordPair{key: key, value: value}
}

func (p WordPair) Key() string   { return p.key }
func (p WordPair) Value() string { return p.value }

// Compare returns -1, 0 or +1 depending on how p's key orders against other's.
func (p WordPair) Compare(other WordPair) int {
	return strings.Compare(p.key, other.key)
}

func (p WordPair) Less(other WordPair) bool    { return p.key < other.key }
func (p WordPair) Greater(other WordPair) bool { return p.key > other.key }
func (p WordPair) Equal(other WordPair) bool   { return p.key == other.key }

func (p WordPair) String() string {
	return p.key + ":" + p.value
}
