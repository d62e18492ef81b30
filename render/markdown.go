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
	"strings"

	"github.com/charmbracelet/glamour"

	"github.com/cybrota/translator/dictionary"
)

// MarkdownRenderer builds a markdown table and renders it for the terminal
// with glamour.
type MarkdownRenderer struct {
	Style    string // glamour standard style: dark, light, notty...
	WordWrap int
}

func (r *MarkdownRenderer) Name() string { return "markdown" }

func (r *MarkdownRenderer) Render(pairs []dictionary.WordPair) (string, error) {
	style := r.Style
	if style == "" {
		style = "dark"
	}
	renderer, err := glamour.NewTermRenderer(
		glamour.WithStandardStyle(style),
		glamour.WithWordWrap(r.WordWrap),
	)
	if err != nil {
		return "", fmt.Errorf("failed to create markdown renderer: %v", err)
	}

	out, err := renderer.Render(MarkdownTable(pairs))
	if err != nil {
		return "", fmt.Errorf("failed to render markdown: %v", err)
	}
	return out, nil
}

// MarkdownTable formats pairs as a GitHub flavoured markdown table.
func MarkdownTable(pairs []dictionary.WordPair) string {
	var sb strings.Builder
	sb.WriteString("| Term | Translation |\n")
	sb.WriteString("|------|-------------|\n")
	for _, p := range pairs {
		fmt.Fprintf(&sb, "| %s | %s |\n", escapeCell(p.Key()), escapeCell(p.Value()))
	}
	return sb.String()
}

func escapeCell(s string) string {
	return strings.ReplaceAll(s, "|", `\|`)
}
