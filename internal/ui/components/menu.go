// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package components

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/staffdesk/staffdesk-tui/internal/nav"
	"github.com/staffdesk/staffdesk-tui/internal/ui/styles"
)

// =============================================================================
// SIDEBAR MENU
// =============================================================================

// Menu is the role-filtered sidebar. Items come from the navigation table
// and never reorder.
type Menu struct {
	Items    []nav.Destination
	Selected int
}

// NewMenu creates a menu over the given destinations.
func NewMenu(items []nav.Destination) *Menu {
	return &Menu{Items: items}
}

// SetItems replaces the destinations, clamping the selection.
func (m *Menu) SetItems(items []nav.Destination) {
	m.Items = items
	if m.Selected >= len(items) {
		m.Selected = 0
	}
}

// Next moves the selection down, wrapping.
func (m *Menu) Next() {
	if len(m.Items) == 0 {
		return
	}
	m.Selected = (m.Selected + 1) % len(m.Items)
}

// Prev moves the selection up, wrapping.
func (m *Menu) Prev() {
	if len(m.Items) == 0 {
		return
	}
	m.Selected = (m.Selected - 1 + len(m.Items)) % len(m.Items)
}

// Current returns the selected destination.
func (m *Menu) Current() (nav.Destination, bool) {
	if m.Selected < 0 || m.Selected >= len(m.Items) {
		return nav.Destination{}, false
	}
	return m.Items[m.Selected], true
}

// Select moves the selection to the given route when present.
func (m *Menu) Select(route nav.Route) {
	for i, d := range m.Items {
		if d.Route == route {
			m.Selected = i
			return
		}
	}
}

// View renders the sidebar with the active route highlighted.
func (m *Menu) View(active nav.Route) string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("staffdesk"))
	b.WriteString("\n\n")
	for i, d := range m.Items {
		style := styles.MenuItem
		if d.Route == active {
			style = styles.MenuSelected
		} else if i == m.Selected {
			style = styles.MenuItem.Foreground(styles.Cyan)
		}
		b.WriteString(style.Render(d.Label))
		b.WriteString("\n")
	}
	return lipgloss.NewStyle().
		Border(lipgloss.NormalBorder(), false, true, false, false).
		BorderForeground(styles.Overlay).
		PaddingRight(1).
		Render(b.String())
}
