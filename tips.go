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

package main

import (
	"math/rand"

	"github.com/cybrota/translator/dictionary"
)

var tips = []string{
	"Type the first letters of a term to narrow the list",
	"Terms are matched by prefix and listed in dictionary order",
	"Press enter on a suggestion to copy its translation",
	"Use translator display --format table for a printable overview",
	"Duplicate terms in the data file keep their first translation",
	"A sorted data file builds a deep tree; translator stats shows its height",
	"Quote multi-word terms in the REPL: PUT \"ice cream\" glace",
}

// pickRandomString returns a random string from the provided slice.
// If the slice is empty, it returns an empty string.
func pickRandomString(list []string) string {
	if len(list) == 0 {
		return ""
	}
	return list[rand.Intn(len(list))]
}

func GetRandomTip() string {
	return pickRandomString(tips)
}

// GetRandomTerm returns one stored term, or "" for an empty dictionary.
func GetRandomTerm(d *dictionary.Dictionary) string {
	terms := make([]string, 0, d.Len())
	_ = d.ForEachInOrder(func(p *dictionary.WordPair) {
		terms = append(terms, p.Key())
	})
	return pickRandomString(terms)
}
