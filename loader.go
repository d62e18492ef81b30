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
	"bufio"
	"errors"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/schollz/progressbar/v3"

	"github.com/cybrota/translator/dictionary"
)

// Files below this size load too fast for a progress bar to be useful
const progressMinBytes = 1 << 20

// LoadReport summarises one pass over a data file.
type LoadReport struct {
	Lines    int
	Inserted int
	Rejected int
}

// parseWordPair splits a data line at the first delimiter. A line without
// the delimiter becomes a key with an empty translation.
func parseWordPair(line, delimiter string) dictionary.WordPair {
	pos := strings.Index(line, delimiter)
	if pos < 0 {
		return dictionary.NewWordPair(line, "")
	}
	return dictionary.NewWordPair(line[:pos], line[pos+len(delimiter):])
}

// loadDictionary inserts every "<key><delimiter><value>" line of r into d.
// Rejected lines are reported to out and do not stop the load.
func loadDictionary(r io.Reader, d *dictionary.Dictionary, delimiter string, out io.Writer, bar *progressbar.ProgressBar) (LoadReport, error) {
	var report LoadReport

	scanner := bufio.NewScanner(r)
	// Increase buffer size for long glossary entries
	buf := make([]byte, 0, 64*1024)
	scanner.Buffer(buf, 1024*1024)
	for scanner.Scan() {
		line := scanner.Text()
		if bar != nil {
			_ = bar.Add(len(line) + 1)
		}

		line = strings.TrimRight(line, "\r")
		if strings.TrimSpace(line) == "" {
			continue
		}
		report.Lines++

		err := d.Put(parseWordPair(line, delimiter))
		switch {
		case err == nil:
			report.Inserted++
		case errors.Is(err, dictionary.ErrDuplicateKey), errors.Is(err, dictionary.ErrAllocation):
			report.Rejected++
			fmt.Fprintf(out, "put() unsuccessful because %v\n", err)
		default:
			return report, err
		}
	}

	if err := scanner.Err(); err != nil {
		return report, fmt.Errorf("failed to read dictionary data: %v", err)
	}
	return report, nil
}

// loadDictionaryFile opens path and loads it into d, showing a progress
// bar on stderr for large files unless quiet is set.
func loadDictionaryFile(path string, d *dictionary.Dictionary, delimiter string, quiet bool, out io.Writer) (LoadReport, error) {
	file, err := os.Open(path)
	if err != nil {
		if os.IsNotExist(err) {
			return LoadReport{}, fmt.Errorf("unable to open file %s", path)
		}
		return LoadReport{}, err
	}
	defer file.Close()

	var bar *progressbar.ProgressBar
	if !quiet {
		fmt.Fprintln(out, "Reading...")
		if stat, err := file.Stat(); err == nil && stat.Size() >= progressMinBytes {
			bar = progressbar.NewOptions64(stat.Size(),
				progressbar.OptionSetWriter(os.Stderr),
				progressbar.OptionSetDescription("📖 Loading dictionary..."),
				progressbar.OptionSetWidth(50),
				progressbar.OptionShowBytes(true),
				progressbar.OptionClearOnFinish(),
			)
		}
	}

	report, err := loadDictionary(file, d, delimiter, out, bar)
	if bar != nil {
		_ = bar.Finish()
	}
	if err != nil {
		return report, err
	}

	if !quiet {
		fmt.Fprintln(out, "Finished reading.")
	}
	return report, nil
}
