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

import "errors"

var (
	// ErrDuplicateKey is returned when inserting a key that is already stored.
	ErrDuplicateKey = errors.New("element already exists")
	// ErrAllocation is returned when no storage is left for a new node.
	ErrAllocation = errors.New("unable to allocate node")
	// ErrNotFound is returned when a looked up key is not stored.
	ErrNotFound = errors.New("element not found")
	// ErrEmptyCollection is returned by reads on a tree without elements.
	ErrEmptyCollection = errors.New("binary search tree is empty")
)
