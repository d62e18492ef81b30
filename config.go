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
	"os"
	"path/filepath"
	"time"

	"gopkg.in/yaml.v3"
)

const configFileName = ".translator.yaml"

type DictionaryConfig struct {
	DataFile   string `yaml:"data_file"`
	Delimiter  string `yaml:"delimiter"`
	MaxEntries uint   `yaml:"max_entries"` // 0 means unbounded
}

type LookupConfig struct {
	EnableCache       bool          `yaml:"enable_cache"`
	CacheTTL          time.Duration `yaml:"cache_ttl"`
	BloomFilterSize   uint          `yaml:"bloom_filter_size"`
	BloomFilterHashes uint          `yaml:"bloom_filter_hashes"`
}

type DisplayConfig struct {
	Format string `yaml:"format"` // plain, table or markdown
}

type Config struct {
	Dictionary DictionaryConfig `yaml:"dictionary"`
	Lookup     LookupConfig     `yaml:"lookup"`
	Display    DisplayConfig    `yaml:"display"`
	Quiet      bool             `yaml:"quiet"`
}

var defaultConfig = Config{
	Dictionary: DictionaryConfig{
		DataFile:  "dataFile.txt",
		Delimiter: ":",
	},
	Lookup: LookupConfig{
		EnableCache:       true,
		CacheTTL:          30 * time.Minute,
		BloomFilterSize:   1 << 20,
		BloomFilterHashes: 5,
	},
	Display: DisplayConfig{
		Format: "plain",
	},
}

func getConfigPath() (string, error) {
	homeDir, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(homeDir, configFileName), nil
}

// LoadConfig reads ~/.translator.yaml. A missing or unreadable file
// yields the defaults.
func LoadConfig() (*Config, error) {
	configPath, err := getConfigPath()
	if err != nil {
		return defaults(), nil
	}
	return loadConfigFrom(configPath)
}

func loadConfigFrom(configPath string) (*Config, error) {
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		return defaults(), nil
	}

	data, err := os.ReadFile(configPath)
	if err != nil {
		return defaults(), nil
	}

	// Start from the defaults so a partial file only overrides what it names
	config := defaults()
	if err := yaml.Unmarshal(data, config); err != nil {
		return defaults(), fmt.Errorf("failed to parse %s: %v", configPath, err)
	}
	if config.Dictionary.Delimiter == "" {
		config.Dictionary.Delimiter = defaultConfig.Dictionary.Delimiter
	}

	return config, nil
}

func defaults() *Config {
	config := defaultConfig
	return &config
}

func createDefaultConfigFile(configPath string) error {
	data, err := yaml.Marshal(&defaultConfig)
	if err != nil {
		return fmt.Errorf("failed to marshal default config: %v", err)
	}

	err = os.WriteFile(configPath, data, 0644)
	if err != nil {
		return fmt.Errorf("failed to write config file: %v", err)
	}

	return nil
}

func displaySettings(w io.Writer) {
	configPath, err := getConfigPath()
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to get config path: %v\n", err)
		return
	}

	configExists := true
	if _, err := os.Stat(configPath); os.IsNotExist(err) {
		configExists = false
		fmt.Fprintf(w, "📝 Configuration file not found. Creating default configuration...\n\n")

		if err := createDefaultConfigFile(configPath); err != nil {
			fmt.Fprintf(w, "❌ Failed to create default config file: %v\n", err)
			return
		}
		fmt.Fprintf(w, "✅ Created default configuration at: %s\n\n", configPath)
	}

	config, err := loadConfigFrom(configPath)
	if err != nil {
		fmt.Fprintf(w, "❌ Failed to load configuration: %v\n", err)
		return
	}

	fmt.Fprintf(w, "🔧 Translator Configuration Settings\n")
	fmt.Fprintf(w, "═══════════════════════════════════\n\n")

	if configExists {
		fmt.Fprintf(w, "📍 Config file: %s\n", configPath)
	} else {
		fmt.Fprintf(w, "📍 Config file: %s (newly created)\n", configPath)
	}

	fmt.Fprintf(w, "📊 Current settings:\n\n")
	writeSettings(w, config)
}

func writeSettings(w io.Writer, config *Config) {
	fmt.Fprintf(w, "📖 %sDictionary:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sdata_file%s: %s\n", Green, Reset, config.Dictionary.DataFile)
	fmt.Fprintf(w, "  • %sdelimiter%s: %q\n", Green, Reset, config.Dictionary.Delimiter)
	if config.Dictionary.MaxEntries == 0 {
		fmt.Fprintf(w, "  • %smax_entries%s: unbounded\n\n", Green, Reset)
	} else {
		fmt.Fprintf(w, "  • %smax_entries%s: %d\n\n", Green, Reset, config.Dictionary.MaxEntries)
	}

	fmt.Fprintf(w, "🔍 %sLookup:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %senable_cache%s: %t\n", Green, Reset, config.Lookup.EnableCache)
	fmt.Fprintf(w, "  • %scache_ttl%s: %s\n", Green, Reset, config.Lookup.CacheTTL)
	fmt.Fprintf(w, "  • %sbloom_filter_size%s: %d bits\n", Green, Reset, config.Lookup.BloomFilterSize)
	fmt.Fprintf(w, "  • %sbloom_filter_hashes%s: %d\n\n", Green, Reset, config.Lookup.BloomFilterHashes)

	fmt.Fprintf(w, "🖨  %sDisplay:%s\n", Green, Reset)
	fmt.Fprintf(w, "  • %sformat%s: %s\n", Green, Reset, config.Display.Format)
	fmt.Fprintf(w, "  • %squiet%s: %t\n\n", Green, Reset, config.Quiet)
}
