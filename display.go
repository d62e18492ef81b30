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
	"io"
	"os"

	"github.com/cybrota/translator/dictionary"
	"github.com/cybrota/translator/render"
)

// glamourStyle picks the markdown style matching the detected terminal.
func glamourStyle() string {
	if GetTerminalMode() == TerminalModeLight {
		return "light"
	}
	return "dark"
}

// displayContent prints every pair of d in term order using the named
// renderer.
func displayContent(w io.Writer, d *dictionary.Dictionary, delimiter, format string) error {
	renderer, err := render.NewRendererManager(delimiter, glamourStyle()).Get(format)
	if err != nil {
		return err
	}

	pairs, err := render.Collect(d)
	if err != nil {
		if errors.Is(err, dictionary.ErrEmptyCollection) {
			fmt.Fprintf(w, "displayContent() unsuccessful because %v\n", err)
			return nil
		}
		return err
	}

	out, err := renderer.Render(pairs)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

// exportDictionary writes d in data file format to path, or to stdout
// when path is empty. An empty dictionary produces an empty file.
func exportDictionary(path string, d *dictionary.Dictionary, delimiter string) error {
	var w io.Writer = os.Stdout
	if path != "" {
		file, err := os.Create(path)
		if err != nil {
			return fmt.Errorf("failed to create %s: %v", path, err)
		}
		defer file.Close()
		w = file
	}
	return writeExport(w, d, delimiter)
}

func writeExport(w io.Writer, d *dictionary.Dictionary, delimiter string) error {
	pairs, err := render.Collect(d)
	if err != nil && !errors.Is(err, dictionary.ErrEmptyCollection) {
		return err
	}
	out, err := (&render.PlainRenderer{Delimiter: delimiter}).Render(pairs)
	if err != nil {
		return err
	}
	_, err = io.WriteString(w, out)
	return err
}

func writeStats(w io.Writer, stats dictionary.Stats) {
	fmt.Fprintf(w, "📊 %sDictionary statistics%s\n", Green, Reset)
	fmt.Fprintf(w, "  • entries: %d\n", stats.Count)
	fmt.Fprintf(w, "  • tree height: %d\n", stats.Height)
	if stats.Count == 0 {
		return
	}
	fmt.Fprintf(w, "  • first term: %s\n", stats.MinKey)
	fmt.Fprintf(w, "  • last term: %s\n", stats.MaxKey)
	if stats.Height > 2*minimalHeight(stats.Count) {
		fmt.Fprintf(w, "  %s⚠ tree is unbalanced; data file is probably sorted%s\n", Warning, Reset)
	}
}

// minimalHeight is the height of a perfectly balanced tree with n nodes.
func minimalHeight(n uint) int {
	height := 0
	for n > 0 {
		height++
		n >>= 1
	}
	return height
}
