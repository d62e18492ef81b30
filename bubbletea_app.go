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
	"errors"
	"fmt"
	"os"
	"strings"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/list"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/glamour"
	"github.com/charmbracelet/lipgloss"

	"github.com/cybrota/translator/dictionary"
)

// Upper bound on suggestions shown for a short prefix
const maxSuggestions = 200

// Focus targets, cycled with tab
const (
	focusInput = iota
	focusSuggestions
	focusDetail
)

// Model represents the Bubble Tea application state
type Model struct {
	ready bool

	textInput       textinput.Model
	suggestionsList list.Model
	detailViewport  viewport.Model

	translator *Translator

	// State
	focusIndex  int
	suggestions []dictionary.WordPair
	lastQuery   string
	tip         string

	// Styling
	styles          *Styles
	glamourRenderer *glamour.TermRenderer

	// Dimensions
	width  int
	height int
}

// Styles holds all the styling for the application
type Styles struct {
	BorderFocused lipgloss.Style
	BorderBlurred lipgloss.Style
	Title         lipgloss.Style
	HelpKey       lipgloss.Style
	HelpDesc      lipgloss.Style
	ErrorMessage  lipgloss.Style
}

// NewStyles creates the default styles
func NewStyles() *Styles {
	return &Styles{
		BorderFocused: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("62")).
			Bold(true),
		BorderBlurred: lipgloss.NewStyle().
			BorderStyle(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("240")),
		Title: lipgloss.NewStyle().
			Foreground(lipgloss.Color("39")).
			Padding(0, 1).
			Bold(true),
		HelpKey: lipgloss.NewStyle().
			Foreground(lipgloss.Color("241")).
			Bold(true),
		HelpDesc: lipgloss.NewStyle().
			Foreground(lipgloss.Color("243")),
		ErrorMessage: lipgloss.NewStyle().
			Foreground(lipgloss.Color("196")).
			Bold(true),
	}
}

// suggestionItem represents an item in the suggestions list
type suggestionItem struct {
	pair dictionary.WordPair
}

func (i suggestionItem) FilterValue() string { return i.pair.Key() }
func (i suggestionItem) Title() string       { return i.pair.Key() }
func (i suggestionItem) Description() string { return i.pair.Value() }

// InitialModel creates the initial model
func InitialModel(t *Translator) Model {
	ti := textinput.New()
	ti.Placeholder = "Type a term to translate..."
	ti.Focus()
	ti.CharLimit = 256
	ti.Width = 50

	suggestionsList := list.New([]list.Item{}, list.NewDefaultDelegate(), 0, 0)
	suggestionsList.SetShowTitle(false)
	suggestionsList.SetShowHelp(false)
	suggestionsList.SetFilteringEnabled(false)

	detailViewport := viewport.New(0, 0)

	glamourRenderer, _ := glamour.NewTermRenderer(
		glamour.WithStandardStyle(glamourStyle()),
		glamour.WithWordWrap(72),
	)

	model := Model{
		textInput:       ti,
		suggestionsList: suggestionsList,
		detailViewport:  detailViewport,
		translator:      t,
		focusIndex:      focusInput,
		styles:          NewStyles(),
		glamourRenderer: glamourRenderer,
		tip:             GetRandomTip(),
	}

	if term := GetRandomTerm(t.Dictionary()); term != "" {
		model.setDetail(fmt.Sprintf("Try typing **%s**", term))
	} else {
		model.setDetail("The dictionary is empty.")
	}
	model.updateSuggestions("")

	return model
}

// Init is called when the program starts
func (m Model) Init() tea.Cmd {
	return textinput.Blink
}

// Update handles all the I/O
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c", "esc":
			return m, tea.Quit
		}
		return m.updateKeys(msg)

	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		m.ready = true
	}

	return m, nil
}

func (m Model) updateKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg.String() {
	case "tab":
		m.focusIndex = (m.focusIndex + 1) % 3
		if m.focusIndex == focusInput {
			m.textInput.Focus()
		} else {
			m.textInput.Blur()
		}
		return m, nil
	case "enter":
		if m.focusIndex == focusInput {
			m.showLookup(m.textInput.Value())
			return m, nil
		}
		if pair, ok := m.selectedPair(); ok {
			// Copy translation to clipboard and quit
			return m, tea.Sequence(
				func() tea.Msg {
					if err := copyToClipboard(pair.Value()); err != nil {
						fmt.Fprintf(os.Stderr, "Failed to copy translation: %v\n", err)
					}
					return tea.Quit()
				},
			)
		}
		return m, nil
	case "up", "k":
		if m.focusIndex == focusSuggestions {
			m.suggestionsList.CursorUp()
			m.showSelected()
			return m, nil
		}
		if m.focusIndex == focusDetail {
			m.detailViewport.LineUp(1)
			return m, nil
		}
	case "down", "j":
		if m.focusIndex == focusSuggestions {
			m.suggestionsList.CursorDown()
			m.showSelected()
			return m, nil
		}
		if m.focusIndex == focusDetail {
			m.detailViewport.LineDown(1)
			return m, nil
		}
	}

	switch m.focusIndex {
	case focusInput:
		m.textInput, cmd = m.textInput.Update(msg)

		// Update suggestions when text changes
		currentQuery := m.textInput.Value()
		if currentQuery != m.lastQuery {
			m.updateSuggestions(currentQuery)
			m.lastQuery = currentQuery
		}
	case focusSuggestions:
		m.suggestionsList, cmd = m.suggestionsList.Update(msg)
	default:
		m.detailViewport, cmd = m.detailViewport.Update(msg)
	}

	return m, cmd
}

// View renders the UI
func (m Model) View() string {
	if !m.ready {
		return "Initializing..."
	}
	if m.width < 20 || m.height < 10 {
		return "Terminal too small. Please resize your terminal."
	}

	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	inputBox := m.boxStyle(focusInput).
		Width(leftWidth).
		Height(inputHeight).
		Padding(0, 1).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(m.boxTitle(focusInput, " 🔍 Search Terms")),
			m.textInput.View(),
		))

	listTitle := fmt.Sprintf(" 📋 Terms (%d)", len(m.suggestions))
	suggestionBox := m.boxStyle(focusSuggestions).
		Width(leftWidth).
		Height(listHeight).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(leftWidth-4).Render(m.boxTitle(focusSuggestions, listTitle)),
			m.suggestionsList.View(),
		))

	detailBox := m.boxStyle(focusDetail).
		Width(rightWidth).
		Height(inputHeight + listHeight + 2).
		Render(lipgloss.JoinVertical(
			lipgloss.Left,
			m.styles.Title.Width(rightWidth-4).Render(m.boxTitle(focusDetail, " 📖 Translation")),
			m.detailViewport.View(),
		))

	main := lipgloss.JoinHorizontal(
		lipgloss.Top,
		lipgloss.JoinVertical(lipgloss.Left, inputBox, suggestionBox),
		detailBox,
	)

	return lipgloss.JoinVertical(lipgloss.Left, main, m.renderHelp())
}

func (m Model) boxStyle(target int) lipgloss.Style {
	if m.focusIndex == target {
		return m.styles.BorderFocused
	}
	return m.styles.BorderBlurred
}

func (m Model) boxTitle(target int, title string) string {
	if m.focusIndex == target {
		return title + " (Active) "
	}
	return title + " "
}

func (m *Model) updateLayout() {
	inputHeight := 3
	listHeight := m.height - inputHeight - 6
	leftWidth := (m.width / 2) - 1
	rightWidth := m.width - leftWidth - 3

	m.textInput.Width = leftWidth - 4
	m.suggestionsList.SetSize(leftWidth-2, listHeight-2)
	m.detailViewport.Width = rightWidth - 2
	m.detailViewport.Height = inputHeight + listHeight
}

// updateSuggestions lists the stored terms starting with query
func (m *Model) updateSuggestions(query string) {
	matches := m.translator.Dictionary().Suggest(query)
	if len(matches) > maxSuggestions {
		matches = matches[:maxSuggestions]
	}

	items := make([]list.Item, len(matches))
	m.suggestions = make([]dictionary.WordPair, len(matches))
	for i, match := range matches {
		items[i] = suggestionItem{pair: *match}
		m.suggestions[i] = *match
	}
	m.suggestionsList.SetItems(items)
	m.suggestionsList.Select(0)

	if len(matches) > 0 && query != "" {
		m.showPair(m.suggestions[0])
	}
}

func (m Model) selectedPair() (dictionary.WordPair, bool) {
	index := m.suggestionsList.Index()
	if index < 0 || index >= len(m.suggestions) {
		return dictionary.WordPair{}, false
	}
	return m.suggestions[index], true
}

func (m *Model) showSelected() {
	if pair, ok := m.selectedPair(); ok {
		m.showPair(pair)
	}
}

// showLookup runs an exact lookup for the typed term
func (m *Model) showLookup(key string) {
	pair, err := m.translator.Lookup(key)
	if err != nil {
		if errors.Is(err, dictionary.ErrNotFound) {
			m.setDetail(fmt.Sprintf("No translation for **%s**.", key))
			return
		}
		m.detailViewport.SetContent(m.styles.ErrorMessage.Render(describeLookupError(err)))
		return
	}
	m.showPair(pair)
}

func (m *Model) showPair(pair dictionary.WordPair) {
	m.setDetail(fmt.Sprintf("# %s\n\n%s\n", pair.Key(), pair.Value()))
}

// setDetail renders markdown into the detail pane, falling back to raw text
func (m *Model) setDetail(content string) {
	if m.glamourRenderer != nil {
		if rendered, err := m.glamourRenderer.Render(content); err == nil {
			m.detailViewport.SetContent(rendered)
			return
		}
	}
	m.detailViewport.SetContent(content)
}

func (m Model) renderHelp() string {
	keys := []string{"enter", "tab", "↑/↓", "esc"}
	descs := []string{"translate / copy", "switch focus", "navigate", "quit"}

	var helpEntries []string
	for i, key := range keys {
		helpEntries = append(helpEntries,
			fmt.Sprintf("%s %s",
				m.styles.HelpKey.Render(key),
				m.styles.HelpDesc.Render(descs[i])))
	}
	helpEntries = append(helpEntries, m.styles.HelpDesc.Render("💡 "+m.tip))

	return lipgloss.NewStyle().
		Padding(1, 0, 0, 2).
		Render(strings.Join(helpEntries, " • "))
}

// copyToClipboard copies text to clipboard
func copyToClipboard(text string) error {
	if err := clipboard.WriteAll(text); err != nil {
		return err
	}
	fmt.Fprintf(os.Stderr, "📋 Copied %s%s%s to clipboard.\n", Green, text, Reset)
	return nil
}

// runBubbleTeaApp starts the Bubble Tea application
func runBubbleTeaApp(t *Translator) error {
	model := InitialModel(t)

	program := tea.NewProgram(
		model,
		tea.WithAltScreen(),
	)

	_, err := program.Run()
	return err
}
