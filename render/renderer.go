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
	"fmt"
	"sort"
	"strings"

	"github.com/cybrota/translator/dictionary"
)

// Renderer turns an ordered sequence of word pairs into printable text.
type Renderer interface {
	Name() string
	Render(pairs []dictionary.WordPair) (string, error)
}

// RendererManager keeps the renderers available to the display command.
type RendererManager struct {
	renderers map[string]Renderer
}

// NewRendererManager registers the plain, table and markdown renderers.
// style selects the glamour style used for markdown output.
func NewRendererManager(delimiter, style string) *RendererManager {
	manager := &RendererManager{renderers: make(map[string]Renderer)}

	manager.RegisterRenderer(&PlainRenderer{Delimiter: delimiter})
	manager.RegisterRenderer(&TableRenderer{})
	manager.RegisterRenderer(&MarkdownRenderer{Style: style, WordWrap: 80})

	return manager
}

// RegisterRenderer adds r, replacing any renderer with the same name.
func (rm *RendererManager) RegisterRenderer(r Renderer) {
	rm.renderers[r.Name()] = r
}

// Get returns the renderer registered under name.
func (rm *RendererManager) Get(name string) (Renderer, error) {
	r, ok := rm.renderers[strings.ToLower(name)]
	if !ok {
		return nil, fmt.Errorf("unknown format %q (available: %s)", name, strings.Join(rm.Names(), ", "))
	}
	return r, nil
}

// Names lists registered renderer names alphabetically.
func (rm *RendererManager) Names() []string {
	names := make([]string, 0, len(rm.renderers))
	for name := range rm.renderers {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Collect copies every pair of d in ascending key order.
func Collect(d *dictionary.Dictionary) ([]dictionary.WordPair, error) {
	pairs := make([]dictionary.WordPair, 0, d.Len())
	err := d.ForEachInOrder(func(p *dictionary.WordPair) {
		pairs = append(pairs, *p)
	})
	if err != nil {
		return nil, err
	}
	return pairs, nil
}
