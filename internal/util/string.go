// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package util

import "strings"

// TruncateRunes truncates a string to a maximum number of runes, appending
// "..." when anything was cut. Rune-aware so UTF-8 text is never split
// mid-character.
func TruncateRunes(s string, maxRunes int) string {
	if maxRunes <= 0 {
		return ""
	}
	runes := []rune(s)
	if len(runes) <= maxRunes {
		return s
	}
	if maxRunes <= 3 {
		return string(runes[:maxRunes])
	}
	return string(runes[:maxRunes-3]) + "..."
}

// PadRight pads s with spaces to the given rune width, truncating when the
// input is longer. Used to align fixed-width labels.
func PadRight(s string, width int) string {
	runes := []rune(s)
	if len(runes) >= width {
		return TruncateRunes(s, width)
	}
	return s + strings.Repeat(" ", width-len(runes))
}
