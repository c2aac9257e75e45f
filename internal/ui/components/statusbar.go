// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package components provides the visual UI components for the portal TUI.
package components

import (
	"fmt"

	"github.com/charmbracelet/lipgloss"

	"github.com/staffdesk/staffdesk-tui/internal/ui/styles"
	"github.com/staffdesk/staffdesk-tui/internal/util"
)

// =============================================================================
// STATUS BAR
// =============================================================================

// StatusBar is the bottom bar: identity on the left, transient status or
// error on the right.
type StatusBar struct {
	UserName string
	Role     string
	Message  string
	IsError  bool
	Width    int
}

// NewStatusBar creates a status bar sized for an 80-column terminal until
// the first WindowSizeMsg arrives.
func NewStatusBar() *StatusBar {
	return &StatusBar{Width: 80}
}

// SetMessage sets a transient informational message.
func (s *StatusBar) SetMessage(msg string) {
	s.Message = msg
	s.IsError = false
}

// SetError sets a transient error message. The TUI analogue of the
// browser alert dialog: shown until the next action, never retried.
func (s *StatusBar) SetError(err error) {
	if err == nil {
		s.Message = ""
		s.IsError = false
		return
	}
	s.Message = err.Error()
	s.IsError = true
}

// Clear removes any transient message.
func (s *StatusBar) Clear() {
	s.Message = ""
	s.IsError = false
}

// View renders the bar.
func (s *StatusBar) View() string {
	left := "not signed in"
	if s.UserName != "" {
		left = fmt.Sprintf("%s (%s)", s.UserName, s.Role)
	}

	right := s.Message
	rightStyle := lipgloss.NewStyle().Foreground(styles.TextSecondary)
	if s.IsError {
		rightStyle = styles.ErrorLine
	}

	avail := s.Width - lipgloss.Width(left) - 3
	if avail < 0 {
		avail = 0
	}
	right = util.TruncateRunes(right, avail)

	bar := lipgloss.NewStyle().
		Background(styles.SurfaceDim).
		Foreground(styles.TextPrimary).
		Width(s.Width).
		Padding(0, 1)

	gap := s.Width - lipgloss.Width(left) - lipgloss.Width(right) - 2
	if gap < 1 {
		gap = 1
	}
	return bar.Render(left + lipgloss.NewStyle().Width(gap).Render("") + rightStyle.Render(right))
}
