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
	"bytes"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/cybrota/translator/dictionary"
)

func newTestDictionary(t *testing.T, keys ...string) *dictionary.Dictionary {
	t.Helper()
	d := dictionary.NewDictionary()
	for _, k := range keys {
		if err := d.Put(dictionary.NewWordPair(k, strings.ToUpper(k))); err != nil {
			t.Fatal(err)
		}
	}
	return d
}

func TestDisplayContent(t *testing.T) {
	var out bytes.Buffer
	d := newTestDictionary(t, "cherry", "apple", "banana")

	if err := displayContent(&out, d, ":", "plain"); err != nil {
		t.Fatal(err)
	}
	want := "apple:APPLE\nbanana:BANANA\ncherry:CHERRY\n"
	if out.String() != want {
		t.Errorf("displayContent = %q; want %q", out.String(), want)
	}

	if err := displayContent(&out, d, ":", "yaml"); err == nil {
		t.Errorf("unknown format should fail")
	}
}

func TestDisplayContentEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := displayContent(&out, dictionary.NewDictionary(), ":", "table"); err != nil {
		t.Fatal(err)
	}
	want := "displayContent() unsuccessful because binary search tree is empty\n"
	if out.String() != want {
		t.Errorf("output = %q; want %q", out.String(), want)
	}
}

func TestExportRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "export.txt")
	source := newTestDictionary(t, "m", "c", "x", "a")

	if err := exportDictionary(path, source, "|"); err != nil {
		t.Fatal(err)
	}
	data, err := os.ReadFile(path)
	if err != nil {
		t.Fatal(err)
	}
	if string(data) != "a|A\nc|C\nm|M\nx|X\n" {
		t.Errorf("export = %q", data)
	}

	reloaded := dictionary.NewDictionary()
	report, err := loadDictionaryFile(path, reloaded, "|", true, &bytes.Buffer{})
	if err != nil {
		t.Fatal(err)
	}
	if report.Inserted != 4 || reloaded.Len() != source.Len() {
		t.Errorf("reloaded %d entries; want %d", reloaded.Len(), source.Len())
	}
}

func TestWriteExportEmpty(t *testing.T) {
	var out bytes.Buffer
	if err := writeExport(&out, dictionary.NewDictionary(), ":"); err != nil {
		t.Fatal(err)
	}
	if out.Len() != 0 {
		t.Errorf("empty export wrote %q", out.String())
	}
}

func TestWriteStats(t *testing.T) {
	var out bytes.Buffer
	writeStats(&out, newTestDictionary(t, "a", "b", "c", "d", "e", "f", "g", "h", "i", "j").Stats())
	for _, want := range []string{"entries: 10", "tree height: 10", "first term: a", "last term: j", "unbalanced"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("stats output missing %q:\n%s", want, out.String())
		}
	}

	out.Reset()
	writeStats(&out, newTestDictionary(t, "d", "b", "f", "a", "c", "e", "g").Stats())
	if strings.Contains(out.String(), "unbalanced") {
		t.Errorf("balanced tree flagged as unbalanced:\n%s", out.String())
	}
}

func TestMinimalHeight(t *testing.T) {
	for n, want := range map[uint]int{0: 0, 1: 1, 2: 2, 3: 2, 7: 3, 8: 4} {
		if got := minimalHeight(n); got != want {
			t.Errorf("minimalHeight(%d) = %d; want %d", n, got, want)
		}
	}
}
