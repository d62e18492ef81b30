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
	"io"
	"log"
	"os"

	"github.com/spf13/cobra"

	"github.com/cybrota/translator/dictionary"
)

var version = "v1.0.0"

func main() {
	asciiLogo := `
▀█▀ █▀█ ▄▀█ █▄ █ █▀ █   ▄▀█ ▀█▀ █▀█ █▀█
 █  █▀▄ █▀█ █ ▀█ ▄█ █▄▄ █▀█  █  █▄█ █▀▄
Word-pair dictionary backed by a binary search tree [Version: %s%s%s]

`

	InitializeColors()
	asciiLogo = fmt.Sprintf(asciiLogo, Green, version, Reset)

	var cmdDisplay = &cobra.Command{
		Use:   "display",
		Short: "Print every word pair in term order",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Display loads the dictionary and prints all entries in ascending term order`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, t := openTranslator(cmd, os.Stdout)
			defer t.Dictionary().Close()

			format, _ := cmd.Flags().GetString("format")
			if format == "" {
				format = config.Display.Format
			}
			if err := displayContent(os.Stdout, t.Dictionary(), config.Dictionary.Delimiter, format); err != nil {
				log.Fatalf("%v", err)
			}
		},
	}
	cmdDisplay.Flags().String("format", "", "output format: plain, table or markdown")

	var cmdExport = &cobra.Command{
		Use:   "export",
		Short: "Write the dictionary back out in data file format",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, t := openTranslator(cmd, os.Stderr)
			defer t.Dictionary().Close()

			output, _ := cmd.Flags().GetString("output")
			if err := exportDictionary(output, t.Dictionary(), config.Dictionary.Delimiter); err != nil {
				log.Fatalf("Error exporting dictionary: %v", err)
			}
		},
	}
	cmdExport.Flags().StringP("output", "o", "", "file to write (default stdout)")

	var cmdStats = &cobra.Command{
		Use:   "stats",
		Short: "Show size and shape of the dictionary tree",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, t := openTranslator(cmd, os.Stdout)
			defer t.Dictionary().Close()

			writeStats(os.Stdout, t.Dictionary().Stats())
		},
	}

	var cmdRepl = &cobra.Command{
		Use:   "repl",
		Short: "Interactive prompt to add and look up word pairs",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			config, t := openTranslator(cmd, os.Stdout)
			defer t.Dictionary().Close()

			NewRepl(os.Stdin, os.Stdout, t, config.Dictionary.Delimiter).Start()
		},
	}

	var cmdTui = &cobra.Command{
		Use:   "tui",
		Short: "Launches the terminal UI to browse translations",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Tui opens a search box with live suggestions and translation preview`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, t := openTranslator(cmd, os.Stdout)
			defer t.Dictionary().Close()

			if err := runBubbleTeaApp(t); err != nil {
				log.Fatalf("Error running terminal UI: %v", err)
			}
		},
	}

	var cmdSettings = &cobra.Command{
		Use:   "settings",
		Short: "Show configuration settings, creating the default file if needed",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			displaySettings(os.Stdout)
		},
	}

	var cmdUsage = &cobra.Command{
		Use:   "usage",
		Short: "Print Translator usage guide",
		Long:  fmt.Sprintf("%s\n%s", asciiLogo, `Usage displays the translator CLI usage guide`),
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(getHelpMessage())
		},
	}

	var cmdVersion = &cobra.Command{
		Use:   "version",
		Short: "Print Translator version",
		Args:  cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			fmt.Println(version)
		},
	}

	var rootCmd = &cobra.Command{
		Use:     "translator",
		Version: version,
		Long:    asciiLogo + "Without a subcommand, each line read from stdin is looked up and its translation printed.",
		Args:    cobra.NoArgs,
		Run: func(cmd *cobra.Command, args []string) {
			_, t := openTranslator(cmd, os.Stdout)
			defer t.Dictionary().Close()

			if err := runProbes(os.Stdin, os.Stdout, t); err != nil {
				log.Fatalf("Error reading probes: %v", err)
			}
		},
	}
	rootCmd.PersistentFlags().StringP("file", "f", "", "dictionary data file (default from config, dataFile.txt)")
	rootCmd.PersistentFlags().StringP("delimiter", "d", "", "separator between term and translation (default \":\")")
	rootCmd.PersistentFlags().BoolP("quiet", "q", false, "suppress loading messages and progress")

	rootCmd.AddCommand(cmdDisplay, cmdExport, cmdStats, cmdRepl, cmdTui, cmdSettings, cmdUsage, cmdVersion)
	if err := rootCmd.Execute(); err != nil {
		os.Exit(1)
	}
}

// openTranslator loads configuration, applies flag overrides and loads the
// data file. Loading messages go to status.
func openTranslator(cmd *cobra.Command, status io.Writer) (*Config, *Translator) {
	config, err := LoadConfig()
	if err != nil {
		log.Printf("Failed to load configuration: %v. Using default settings.", err)
	}
	applyFlagOverrides(cmd, config)

	var opts []dictionary.Option
	if config.Dictionary.MaxEntries > 0 {
		opts = append(opts, dictionary.WithCapacity(config.Dictionary.MaxEntries))
	}
	words := dictionary.NewDictionary(opts...)

	if _, err := loadDictionaryFile(config.Dictionary.DataFile, words, config.Dictionary.Delimiter, config.Quiet, status); err != nil {
		log.Fatalf("Error reading dictionary: %v", err)
	}
	return config, NewTranslator(words, config.Lookup)
}

func applyFlagOverrides(cmd *cobra.Command, config *Config) {
	flags := cmd.Flags()
	if flags.Changed("file") {
		config.Dictionary.DataFile, _ = flags.GetString("file")
	}
	if flags.Changed("delimiter") {
		if delimiter, _ := flags.GetString("delimiter"); delimiter != "" {
			config.Dictionary.Delimiter = delimiter
		}
	}
	if flags.Changed("quiet") {
		config.Quiet, _ = flags.GetBool("quiet")
	}
}
