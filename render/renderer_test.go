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
	"testing"

	"github.com/google/go-cmp/cmp"

	"github.com/cybrota/translator/dictionary"
)

func samplePairs() []dictionary.WordPair {
	return []dictionary.WordPair{
		dictionary.NewWordPair("apple", "pomme"),
		dictionary.NewWordPair("banana", "banane"),
		dictionary.NewWordPair("pipe", "a|b"),
	}
}

func TestRendererManager(t *testing.T) {
	manager := NewRendererManager(":", "notty")

	if diff := cmp.Diff([]string{"markdown", "plain", "table"}, manager.Names()); diff != "" {
		t.Errorf("Names() mismatch (-want +got):\n%s", diff)
	}

	for _, name := range []string{"plain", "TABLE", "markdown"} {
		r, err := manager.Get(name)
		if err != nil {
			t.Errorf("Get(%q): %v", name, err)
			continue
		}
		if r.Name() != strings.ToLower(name) {
			t.Errorf("Get(%q).Name() = %q", name, r.Name())
		}
	}

	if _, err := manager.Get("html"); err == nil || !strings.Contains(err.Error(), "unknown format") {
		t.Errorf("Get(html): expected unknown format error, got %v", err)
	}
}

func TestPlainRenderer(t *testing.T) {
	r := &PlainRenderer{Delimiter: "="}
	out, err := r.Render(samplePairs())
	if err != nil {
		t.Fatal(err)
	}
	want := "apple=pomme\nbanana=banane\npipe=a|b\n"
	if out != want {
		t.Errorf("Render() = %q; want %q", out, want)
	}

	if out, _ := r.Render(nil); out != "" {
		t.Errorf("Render(nil) = %q; want empty", out)
	}
}

func TestTableRenderer(t *testing.T) {
	out, err := (&TableRenderer{}).Render(samplePairs())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"Term", "Translation", "apple", "pomme", "banana", "banane"} {
		if !strings.Contains(out, want) {
			t.Errorf("table output missing %q:\n%s", want, out)
		}
	}
	if strings.Index(out, "apple") > strings.Index(out, "banana") {
		t.Errorf("table rows out of order:\n%s", out)
	}
}

func TestMarkdownTable(t *testing.T) {
	got := MarkdownTable(samplePairs())
	want := "| Term | Translation |\n" +
		"|------|-------------|\n" +
		"| apple | pomme |\n" +
		"| banana | banane |\n" +
		"| pipe | a\\|b |\n"
	if diff := cmp.Diff(want, got); diff != "" {
		t.Errorf("MarkdownTable mismatch (-want +got):\n%s", diff)
	}
}

func TestMarkdownRenderer(t *testing.T) {
	out, err := (&MarkdownRenderer{Style: "notty", WordWrap: 80}).Render(samplePairs())
	if err != nil {
		t.Fatal(err)
	}
	for _, want := range []string{"apple", "pomme", "banana"} {
		if !strings.Contains(out, want) {
			t.Errorf("markdown output missing %q:\n%s", want, out)
		}
	}
}

func TestCollect(t *testing.T) {
	d := dictionary.NewDictionary()
	if _, err := Collect(d); err == nil {
		t.Errorf("Collect on empty dictionary should fail")
	}

	for _, p := range []dictionary.WordPair{
		dictionary.NewWordPair("pear", "poire"),
		dictionary.NewWordPair("fig", "figue"),
	} {
		if err := d.Put(p); err != nil {
			t.Fatal(err)
		}
	}
	pairs, err := Collect(d)
	if err != nil {
		t.Fatal(err)
	}
	var got []string
	for _, p := range pairs {
		got = append(got, p.String())
	}
	if diff := cmp.Diff([]string{"fig:figue", "pear:poire"}, got); diff != "" {
		t.Errorf("Collect mismatch (-want +got):\n%s", diff)
	}
}
