// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/staffdesk/staffdesk-tui/internal/model"
	"github.com/staffdesk/staffdesk-tui/internal/ui/styles"
	"github.com/staffdesk/staffdesk-tui/internal/util"
)

// =============================================================================
// LEAVE REQUESTS PAGE (manager/HR/admin review)
// =============================================================================

type requestsPage struct {
	leaves []model.Leave
	list   table.Model
}

func newRequestsPage() requestsPage {
	columns := []table.Column{
		{Title: "Employee", Width: 12},
		{Title: "Type", Width: 14},
		{Title: "From", Width: 12},
		{Title: "To", Width: 12},
		{Title: "Reason", Width: 24},
		{Title: "Status", Width: 10},
	}
	list := table.New(table.WithColumns(columns), table.WithHeight(12), table.WithFocused(true))
	return requestsPage{list: list}
}

func (p *requestsPage) loadCmd(m *Model) tea.Cmd {
	u := m.session.Current()
	if u == nil {
		return nil
	}
	return managerLeavesCmd(m.client, u.ID)
}

func (p *requestsPage) setLeaves(leaves []model.Leave) {
	p.leaves = leaves
	rows := make([]table.Row, len(leaves))
	for i, l := range leaves {
		status := string(l.Status)
		if status == "" {
			status = string(model.LeavePending)
		}
		rows[i] = table.Row{
			l.EmployeeID, l.LeaveType, l.FromDate, l.ToDate,
			util.TruncateRunes(l.Reason, 24), status,
		}
	}
	p.list.SetRows(rows)
}

func (p *requestsPage) selected() (model.Leave, bool) {
	i := p.list.Cursor()
	if i < 0 || i >= len(p.leaves) {
		return model.Leave{}, false
	}
	return p.leaves[i], true
}

func (p *requestsPage) update(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case managerLeavesMsg:
		if msg.err != nil {
			m.statusBar.SetError(msg.err)
			return nil
		}
		p.setLeaves(msg.leaves)
		return nil

	case actionDoneMsg:
		if msg.err != nil {
			m.statusBar.SetError(msg.err)
			return nil
		}
		m.statusBar.SetMessage("decision recorded")
		return p.loadCmd(m)

	case tea.KeyMsg:
		u := m.session.Current()
		switch msg.String() {
		case "y":
			if l, ok := p.selected(); ok && l.Pending() && u != nil {
				return updateLeaveCmd(m.client, l.ID, model.LeaveApproved, u.ID)
			}
			return nil
		case "n":
			if l, ok := p.selected(); ok && l.Pending() && u != nil {
				return updateLeaveCmd(m.client, l.ID, model.LeaveRejected, u.ID)
			}
			return nil
		case "r":
			return p.loadCmd(m)
		}
		var cmd tea.Cmd
		p.list, cmd = p.list.Update(msg)
		return cmd
	}
	return nil
}

func (p *requestsPage) view() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Leave Requests"))
	b.WriteString("\n\n")
	b.WriteString(p.list.View())
	b.WriteString("\n\n")
	if l, ok := p.selected(); ok {
		status := string(l.Status)
		if status == "" {
			status = string(model.LeavePending)
		}
		b.WriteString(styles.Label.Render("Selected: ") + styles.StatusForLeave(status).Render(status))
		b.WriteString("\n")
	}
	b.WriteString(styles.Hint.Render("y: approve / n: reject / r: refresh"))
	return styles.Panel.Render(b.String())
}
