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

package render

import (
	"strings"

	"github.com/cybrota/translator/dictionary"
)

// PlainRenderer writes one "<key><delimiter><value>" line per pair, the
// same layout the loader reads.
type PlainRenderer struct {
	Delimiter string
}

func (r *PlainRenderer) Name() string { return "plain" }

func (r *PlainRenderer) Render(pairs []dictionary.WordPair) (string, error) {
	var sb strings.Builder
	for _, p := range pairs {
		sb.WriteString(p.Key())
		sb.WriteString(r.Delimiter)
		sb.WriteString(p.Value())
		sb.WriteByte('\n')
	}
	return sb.String(), nil
}
