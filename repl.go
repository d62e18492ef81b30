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
	"strings"

	"github.com/fatih/color"
	"github.com/mattn/go-shellwords"

	"github.com/cybrota/translator/dictionary"
	"github.com/cybrota/translator/render"
)

// Repl is an interactive line interface over a Translator.
type Repl struct {
	scanner    *bufio.Scanner
	out        io.Writer
	translator *Translator
	plain      *render.PlainRenderer

	success *color.Color
	failure *color.Color
	prompt  *color.Color
}

func NewRepl(in io.Reader, out io.Writer, t *Translator, delimiter string) *Repl {
	return &Repl{
		scanner:    bufio.NewScanner(in),
		out:        out,
		translator: t,
		plain:      &render.PlainRenderer{Delimiter: delimiter},
		success:    color.New(color.FgGreen),
		failure:    color.New(color.FgRed),
		prompt:     color.New(color.FgCyan, color.Bold),
	}
}

// Start runs until EXIT or end of input.
func (r *Repl) Start() {
	r.printHelp()
	r.printPrompt()
	for r.scanner.Scan() {
		if quit := r.processInput(r.scanner.Text()); quit {
			return
		}
		r.printPrompt()
	}
	fmt.Fprintln(r.out)
}

func (r *Repl) printHelp() {
	fmt.Fprint(r.out, `
Translator REPL

Available Commands:
  PUT <key> <value>  Add a word pair (quote multi-word terms)
  GET <key>          Look up the translation of a term
  FIND <prefix>      List terms starting with prefix
  LIST               List every word pair in order
  COUNT              Number of stored word pairs
  STATS              Tree shape summary
  HELP               Show this help
  EXIT               Terminate this session

`)
}

func (r *Repl) printPrompt() {
	r.prompt.Fprint(r.out, "> ")
}

// splitCommand splits a REPL line into words, honouring shell quoting.
func splitCommand(line string) ([]string, error) {
	args, err := shellwords.Parse(line)
	if err != nil {
		return nil, fmt.Errorf("failed to parse command %q: %v", line, err)
	}
	return args, nil
}

func (r *Repl) processInput(line string) bool {
	fields, err := splitCommand(line)
	if err != nil {
		r.failure.Fprintln(r.out, err)
		return false
	}
	if len(fields) < 1 {
		return false
	}

	command := strings.ToLower(fields[0])
	switch command {
	default:
		r.failure.Fprintf(r.out, "Unknown command \"%s\"\n", command)
	case "put", "set":
		r.processPutCommand(fields[1:])
	case "get":
		r.processGetCommand(fields[1:])
	case "find":
		r.processFindCommand(fields[1:])
	case "list":
		r.processListCommand()
	case "count":
		fmt.Fprintln(r.out, r.translator.Dictionary().Len())
	case "stats":
		writeStats(r.out, r.translator.Dictionary().Stats())
	case "help":
		r.printHelp()
	case "exit", "quit":
		return true
	}
	return false
}

func (r *Repl) processPutCommand(args []string) {
	if len(args) != 2 {
		fmt.Fprintln(r.out, "Usage: PUT <key> <value>")
		return
	}
	if err := r.translator.Put(dictionary.NewWordPair(args[0], args[1])); err != nil {
		r.failure.Fprintf(r.out, "put() unsuccessful because %v\n", err)
		return
	}
	r.success.Fprintf(r.out, "Added %s\n", args[0])
}

func (r *Repl) processGetCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: GET <key>")
		return
	}
	pair, err := r.translator.Lookup(args[0])
	if err != nil {
		r.failure.Fprintln(r.out, describeLookupError(err))
		return
	}
	fmt.Fprintln(r.out, pair.Value())
}

func (r *Repl) processFindCommand(args []string) {
	if len(args) != 1 {
		fmt.Fprintln(r.out, "Usage: FIND <prefix>")
		return
	}
	matches := r.translator.Dictionary().Suggest(args[0])
	if len(matches) == 0 {
		r.failure.Fprintf(r.out, "No terms start with %q\n", args[0])
		return
	}
	pairs := make([]dictionary.WordPair, 0, len(matches))
	for _, p := range matches {
		pairs = append(pairs, *p)
	}
	out, _ := r.plain.Render(pairs)
	fmt.Fprint(r.out, out)
}

func (r *Repl) processListCommand() {
	pairs, err := render.Collect(r.translator.Dictionary())
	if err != nil {
		if errors.Is(err, dictionary.ErrEmptyCollection) {
			r.failure.Fprintf(r.out, "displayContent() unsuccessful because %v\n", err)
			return
		}
		r.failure.Fprintln(r.out, err)
		return
	}
	out, _ := r.plain.Render(pairs)
	fmt.Fprint(r.out, out)
}
