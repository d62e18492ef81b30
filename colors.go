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
	"os"
	"strings"
)

// ANSI escape sequences used for console output. Empty until
// InitializeColors runs, which keeps test output plain.
var Green, Info, Warning, Error, Reset string

type TerminalMode int

const (
	TerminalModeUnknown TerminalMode = iota
	TerminalModeLight
	TerminalModeDark
)

var detectedMode TerminalMode

// detectTerminalMode attempts to detect whether the terminal is in light or dark mode
func detectTerminalMode() TerminalMode {
	// Check environment variables that might indicate the theme
	if colorScheme := os.Getenv("COLORFGBG"); colorScheme != "" {
		// COLORFGBG format is typically "foreground;background"
		// Higher background numbers usually indicate dark mode
		parts := strings.Split(colorScheme, ";")
		if len(parts) >= 2 {
			bg := parts[len(parts)-1]
			// Dark background colors are typically 0-8, light are 15, 7, etc.
			if bg == "0" || bg == "8" || bg == "16" {
				return TerminalModeDark
			} else if bg == "15" || bg == "7" || bg == "255" {
				return TerminalModeLight
			}
		}
	}

	// Check TERM_THEME environment variable (some terminals set this)
	if theme := os.Getenv("TERM_THEME"); theme != "" {
		theme = strings.ToLower(theme)
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	// Check other common environment variables
	if theme := os.Getenv("THEME"); theme != "" {
		theme = strings.ToLower(theme)
		if strings.Contains(theme, "dark") {
			return TerminalModeDark
		} else if strings.Contains(theme, "light") {
			return TerminalModeLight
		}
	}

	// Default to dark mode as it's more common in terminals
	return TerminalModeDark
}

// InitializeColors detects the terminal mode and picks matching ANSI colors
func InitializeColors() {
	detectedMode = detectTerminalMode()
	Green, Info, Warning, Error, Reset = GetANSIColors()
}

// GetTerminalMode returns the detected terminal mode
func GetTerminalMode() TerminalMode {
	return detectedMode
}

// ANSI color codes for terminal output (adaptive to mode)
func GetANSIColors() (success, info, warning, error, reset string) {
	// For light mode terminals, use darker colors for better contrast
	// For dark mode terminals, use brighter colors
	if detectedMode == TerminalModeLight {
		success = "\033[32m" // Green
		info = "\033[34m"    // Blue
		warning = "\033[33m" // Yellow
		error = "\033[31m"   // Red
	} else {
		success = "\033[92m" // Bright Green
		info = "\033[96m"    // Bright Cyan
		warning = "\033[93m" // Bright Yellow
		error = "\033[91m"   // Bright Red
	}

	reset = "\033[0m"
	return
}
