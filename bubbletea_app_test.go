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
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea"
)

func typeRunes(m Model, text string) Model {
	next, _ := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(text)})
	return next.(Model)
}

func TestModelSuggestions(t *testing.T) {
	tr := newTestTranslator(t, "apple:pomme\napricot:abricot\nbanana:banane\n", defaultConfig.Lookup)
	m := InitialModel(tr)

	if len(m.suggestions) != 3 {
		t.Fatalf("initial suggestions = %d; want all 3 terms", len(m.suggestions))
	}

	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)
	if !m.ready {
		t.Fatalf("model should be ready after a window size message")
	}

	m = typeRunes(m, "ap")
	if m.lastQuery != "ap" {
		t.Errorf("lastQuery = %q; want %q", m.lastQuery, "ap")
	}
	var keys []string
	for _, p := range m.suggestions {
		keys = append(keys, p.Key())
	}
	if strings.Join(keys, ",") != "apple,apricot" {
		t.Errorf("suggestions = %v; want [apple apricot]", keys)
	}

	view := m.View()
	for _, want := range []string{"Search Terms", "Terms (2)", "Translation"} {
		if !strings.Contains(view, want) {
			t.Errorf("view missing %q", want)
		}
	}
}

func TestModelFocusAndSelection(t *testing.T) {
	tr := newTestTranslator(t, "apple:pomme\napricot:abricot\n", defaultConfig.Lookup)
	m := InitialModel(tr)
	next, _ := m.Update(tea.WindowSizeMsg{Width: 120, Height: 40})
	m = next.(Model)

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
	m = next.(Model)
	if m.focusIndex != focusSuggestions {
		t.Fatalf("focusIndex = %d after tab; want suggestions", m.focusIndex)
	}

	next, _ = m.Update(tea.KeyMsg{Type: tea.KeyDown})
	m = next.(Model)
	pair, ok := m.selectedPair()
	if !ok || pair.Key() != "apricot" {
		t.Errorf("selected = %v, %v; want apricot", pair, ok)
	}

	for i := 0; i < 2; i++ {
		next, _ = m.Update(tea.KeyMsg{Type: tea.KeyTab})
		m = next.(Model)
	}
	if m.focusIndex != focusInput {
		t.Errorf("focus should cycle back to the input, got %d", m.focusIndex)
	}
}

func TestModelQuit(t *testing.T) {
	tr := newTestTranslator(t, "apple:pomme\n", defaultConfig.Lookup)
	_, cmd := InitialModel(tr).Update(tea.KeyMsg{Type: tea.KeyEsc})
	if cmd == nil {
		t.Fatalf("esc should return a quit command")
	}
	if _, ok := cmd().(tea.QuitMsg); !ok {
		t.Errorf("esc should quit")
	}
}
