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

import "testing"

func TestWordPairOrdering(t *testing.T) {
	tests := []struct {
		a, b    WordPair
		compare int
	}{
		{NewWordPair("apple", "pomme"), NewWordPair("banana", "banane"), -1},
		{NewWordPair("banana", "banane"), NewWordPair("apple", "pomme"), 1},
		{NewWordPair("apple", "pomme"), NewProbe("apple"), 0},
		{NewWordPair("apple", "pomme"), NewWordPair("apple", "manzana"), 0},
		{NewProbe("Apple"), NewProbe("apple"), -1},
		{NewProbe(""), NewProbe("a"), -1},
	}

	for _, tc := range tests {
		if got := tc.a.Compare(tc.b); got != tc.compare {
			t.Errorf("%v.Compare(%v) = %d; want %d", tc.a, tc.b, got, tc.compare)
		}
		if got := tc.a.Less(tc.b); got != (tc.compare < 0) {
			t.Errorf("%v.Less(%v) = %v", tc.a, tc.b, got)
		}
		if got := tc.a.Greater(tc.b); got != (tc.compare > 0) {
			t.Errorf("%v.Greater(%v) = %v", tc.a, tc.b, got)
		}
		if got := tc.a.Equal(tc.b); got != (tc.compare == 0) {
			t.Errorf("%v.Equal(%v) = %v", tc.a, tc.b, got)
		}
	}
}

func TestNewProbe(t *testing.T) {
	p := NewProbe("cheese")
	if p.Key() != "cheese" || p.Value() != "" {
		t.Errorf("NewProbe(cheese) = %q/%q; want cheese/empty", p.Key(), p.Value())
	}
	if s := NewWordPair("cheese", "fromage").String(); s != "cheese:fromage" {
		t.Errorf("String() = %q; want %q", s, "cheese:fromage")
	}
}
