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

// Dictionary owns one Tree and forwards to it. Errors from the tree are
// returned as is.
type Dictionary struct {
	keyValuePairs *Tree
}

// Stats summarises the shape of a dictionary's tree.
type Stats struct {
	Count  uint
	Height int
	MinKey string
	MaxKey string
}

func NewDictionary(opts ...Option) *Dictionary {
	return &Dictionary{keyValuePairs: NewTree(opts...)}
}

func (d *Dictionary) Len() uint {
	return d.keyValuePairs.Len()
}

// Put inserts newElement. See Tree.Insert.
func (d *Dictionary) Put(newElement WordPair) error {
	return d.keyValuePairs.Insert(newElement)
}

// Get returns the stored pair matching target's key. See Tree.Retrieve.
func (d *Dictionary) Get(target WordPair) (*WordPair, error) {
	return d.keyValuePairs.Retrieve(target)
}

// ForEachInOrder visits every pair in ascending key order.
func (d *Dictionary) ForEachInOrder(visit func(*WordPair)) error {
	return d.keyValuePairs.TraverseInOrder(visit)
}

// Suggest returns the pairs whose key starts with prefix.
func (d *Dictionary) Suggest(prefix string) []*WordPair {
	return d.keyValuePairs.SearchPrefix(prefix)
}

func (d *Dictionary) Stats() Stats {
	stats := Stats{
		Count:  d.keyValuePairs.Len(),
		Height: d.keyValuePairs.Height(),
	}
	if lowest, err := d.keyValuePairs.Min(); err == nil {
		stats.MinKey = lowest.Key()
	}
	if highest, err := d.keyValuePairs.Max(); err == nil {
		stats.MaxKey = highest.Key()
	}
	return stats
}

// Close releases every node of the owned tree.
func (d *Dictionary) Close() {
	d.keyValuePairs.Release()
}
