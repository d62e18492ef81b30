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
	"time"

	"github.com/google/go-cmp/cmp"
)

func TestLoadConfigMissingFile(t *testing.T) {
	config, err := loadConfigFrom(filepath.Join(t.TempDir(), configFileName))
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig, *config); diff != "" {
		t.Errorf("missing file should give defaults (-want +got):\n%s", diff)
	}
}

func TestLoadConfigPartialFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	data := `
dictionary:
  data_file: words.txt
  delimiter: "="
lookup:
  enable_cache: false
  cache_ttl: 90s
display:
  format: table
quiet: true
`
	if err := os.WriteFile(path, []byte(data), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatal(err)
	}

	want := defaultConfig
	want.Dictionary.DataFile = "words.txt"
	want.Dictionary.Delimiter = "="
	want.Lookup.EnableCache = false
	want.Lookup.CacheTTL = 90 * time.Second
	want.Display.Format = "table"
	want.Quiet = true
	if diff := cmp.Diff(want, *config); diff != "" {
		t.Errorf("config mismatch (-want +got):\n%s", diff)
	}
}

func TestLoadConfigInvalidFile(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := os.WriteFile(path, []byte("dictionary: [not, a, map"), 0644); err != nil {
		t.Fatal(err)
	}

	config, err := loadConfigFrom(path)
	if err == nil {
		t.Errorf("expected a parse error")
	}
	if config == nil || config.Dictionary.Delimiter != ":" {
		t.Errorf("invalid file should still yield defaults, got %+v", config)
	}
}

func TestCreateDefaultConfigFileRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), configFileName)
	if err := createDefaultConfigFile(path); err != nil {
		t.Fatal(err)
	}
	config, err := loadConfigFrom(path)
	if err != nil {
		t.Fatal(err)
	}
	if diff := cmp.Diff(defaultConfig, *config); diff != "" {
		t.Errorf("written defaults do not load back (-want +got):\n%s", diff)
	}
}

func TestWriteSettings(t *testing.T) {
	var out bytes.Buffer
	writeSettings(&out, defaults())
	for _, want := range []string{"data_file", "dataFile.txt", "delimiter", "unbounded", "enable_cache", "format"} {
		if !strings.Contains(out.String(), want) {
			t.Errorf("settings output missing %q", want)
		}
	}
}
