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
	"fmt"
	"io"
	"strings"
)

// runProbes reads one key per line from in and writes each translation,
// or the reason it could not be found, to out.
func runProbes(in io.Reader, out io.Writer, t *Translator) error {
	scanner := bufio.NewScanner(in)
	for scanner.Scan() {
		key := strings.TrimRight(scanner.Text(), "\r")

		pair, err := t.Lookup(key)
		if err != nil {
			fmt.Fprintln(out, describeLookupError(err))
			continue
		}
		fmt.Fprintln(out, pair.String())
	}
	return scanner.Err()
}
