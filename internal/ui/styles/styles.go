// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package styles provides the visual styling system for the portal TUI.
// All colors use Lip Gloss AdaptiveColor for automatic light/dark detection.
package styles

import "github.com/charmbracelet/lipgloss"

// =============================================================================
// COLORS
// =============================================================================

// Cyan - Brand color, focused elements, selections
var Cyan = lipgloss.AdaptiveColor{Light: "#0891B2", Dark: "#22D3EE"}

// Emerald - Success states, approved leaves, running timer
var Emerald = lipgloss.AdaptiveColor{Light: "#059669", Dark: "#34D399"}

// Rose - Errors, rejected leaves
var Rose = lipgloss.AdaptiveColor{Light: "#E11D48", Dark: "#FB7185"}

// Amber - Warnings, pending leaves
var Amber = lipgloss.AdaptiveColor{Light: "#D97706", Dark: "#FBBF24"}

// Surface - Main background
var Surface = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// SurfaceDim - Slightly darker/lighter surface for headers/footers
var SurfaceDim = lipgloss.AdaptiveColor{Light: "#F5F5F5", Dark: "#181825"}

// Overlay - Borders, separators
var Overlay = lipgloss.AdaptiveColor{Light: "#E5E5E5", Dark: "#313244"}

// TextPrimary - Main body text
var TextPrimary = lipgloss.AdaptiveColor{Light: "#1F2937", Dark: "#CDD6F4"}

// TextSecondary - Labels, less prominent text
var TextSecondary = lipgloss.AdaptiveColor{Light: "#6B7280", Dark: "#A6ADC8"}

// TextMuted - Hints, timestamps
var TextMuted = lipgloss.AdaptiveColor{Light: "#9CA3AF", Dark: "#6C7086"}

// TextInverse - Text on colored backgrounds
var TextInverse = lipgloss.AdaptiveColor{Light: "#FFFFFF", Dark: "#1E1E2E"}

// =============================================================================
// SHARED STYLES
// =============================================================================

// Title renders page headings.
var Title = lipgloss.NewStyle().Bold(true).Foreground(Cyan)

// Label renders form field labels.
var Label = lipgloss.NewStyle().Foreground(TextSecondary)

// ErrorLine renders error text under a form or in the status bar.
var ErrorLine = lipgloss.NewStyle().Foreground(Rose)

// SuccessLine renders confirmations.
var SuccessLine = lipgloss.NewStyle().Foreground(Emerald)

// Hint renders key hints.
var Hint = lipgloss.NewStyle().Foreground(TextMuted)

// Panel wraps boxed content such as the notice board.
var Panel = lipgloss.NewStyle().
	Border(lipgloss.RoundedBorder()).
	BorderForeground(Overlay).
	Padding(0, 1)

// MenuItem renders an unselected sidebar entry.
var MenuItem = lipgloss.NewStyle().Foreground(TextSecondary).Padding(0, 1)

// MenuSelected renders the active sidebar entry.
var MenuSelected = lipgloss.NewStyle().
	Foreground(TextInverse).
	Background(Cyan).
	Bold(true).
	Padding(0, 1)

// TimerRunning highlights the live elapsed-time readout.
var TimerRunning = lipgloss.NewStyle().Bold(true).Foreground(Emerald)

// StatusForLeave returns the style for a leave status cell.
func StatusForLeave(status string) lipgloss.Style {
	switch status {
	case "Approved":
		return SuccessLine
	case "Rejected":
		return ErrorLine
	default:
		return lipgloss.NewStyle().Foreground(Amber)
	}
}
