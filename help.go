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
	"fmt"
	"runtime"

	markdown "github.com/MichaelMure/go-term-markdown"
)

func getHelpMessage() string {
	message := fmt.Sprintf(`

 **Translator %s**

Look up translations from a word-pair dictionary file.
Each line of the data file holds a term and its translation separated by a delimiter, e.g. *apple:pomme*.

Built with Go %s

# 1. Commands
* *translator* reads terms from stdin, one per line, and prints each translation
* *translator display* prints every pair in term order (--format plain, table or markdown)
* *translator export* writes the dictionary back out in data file format
* *translator repl* opens an interactive prompt (PUT, GET, FIND, LIST, COUNT, STATS)
* *translator tui* opens a terminal UI with live suggestions
* *translator stats* shows the size and height of the dictionary tree
* *translator settings* shows the configuration in ~/.translator.yaml

# 2. Data file
* Default file is dataFile.txt in the working directory, override with --file
* Default delimiter is ':', override with --delimiter
* Duplicate terms are reported and skipped; the first occurrence wins

# Please be aware
* Copy to clipboard in the TUI on Linux or Unix requires 'xclip' or 'xsel' command to be installed

# License
Licensed under the Apache License, Version 2.0
Copyright © 2025 Naren Yellavula

`, version, runtime.Version())
	result := markdown.Render(string(message), 80, 3)
	return string(result)
}
