// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

import (
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/staffdesk/staffdesk-tui/internal/model"
	"github.com/staffdesk/staffdesk-tui/internal/ui/styles"
)

// =============================================================================
// LEAVE PAGE (my leaves + apply form)
// =============================================================================

type leavePage struct {
	leaves  []model.Leave
	list    table.Model
	inputs  []textinput.Model // from date, to date, reason
	typeIdx int
	focus   int // -1 means the list has focus
	busy    bool
	errText string
}

const leaveFields = 3

func newLeavePage() leavePage {
	mk := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 200
		return in
	}
	columns := []table.Column{
		{Title: "Type", Width: 14},
		{Title: "From", Width: 12},
		{Title: "To", Width: 12},
		{Title: "Status", Width: 10},
	}
	list := table.New(table.WithColumns(columns), table.WithHeight(8))
	return leavePage{
		list:   list,
		inputs: []textinput.Model{mk("from (YYYY-MM-DD)"), mk("to (YYYY-MM-DD)"), mk("reason")},
		focus:  -1,
	}
}

func (p *leavePage) formFocused() bool { return p.focus >= 0 }

func (p *leavePage) selected() (model.Leave, bool) {
	i := p.list.Cursor()
	if i < 0 || i >= len(p.leaves) {
		return model.Leave{}, false
	}
	return p.leaves[i], true
}

func (p *leavePage) loadCmd(m *Model) tea.Cmd {
	u := m.session.Current()
	if u == nil {
		return nil
	}
	return myLeavesCmd(m.client, u.ID)
}

func (p *leavePage) setLeaves(leaves []model.Leave) {
	p.leaves = leaves
	rows := make([]table.Row, len(leaves))
	for i, l := range leaves {
		status := string(l.Status)
		if status == "" {
			status = string(model.LeavePending)
		}
		rows[i] = table.Row{l.LeaveType, l.FromDate, l.ToDate, status}
	}
	p.list.SetRows(rows)
}

func (p *leavePage) update(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case myLeavesMsg:
		if msg.err != nil {
			m.statusBar.SetError(msg.err)
			return nil
		}
		p.setLeaves(msg.leaves)
		return nil

	case actionDoneMsg:
		p.busy = false
		if msg.err != nil {
			p.errText = msg.err.Error()
			return nil
		}
		p.errText = ""
		for i := range p.inputs {
			p.inputs[i].SetValue("")
		}
		m.statusBar.SetMessage("leave request submitted")
		return p.loadCmd(m)

	case tea.KeyMsg:
		return p.handleKey(m, msg)
	}
	return nil
}

func (p *leavePage) handleKey(m *Model, key tea.KeyMsg) tea.Cmd {
	switch key.String() {
	case "a":
		if p.focus < 0 {
			p.setFocus(0)
			return nil
		}
	case "esc":
		if p.focus >= 0 {
			p.setFocus(-1)
			return nil
		}
	case "tab", "down":
		if p.focus >= 0 {
			p.setFocus((p.focus + 1) % (leaveFields + 1))
			return nil
		}
	case "shift+tab", "up":
		if p.focus >= 0 {
			p.setFocus((p.focus + leaveFields) % (leaveFields + 1))
			return nil
		}
	case "left", "right":
		if p.focus == leaveFields {
			delta := 1
			if key.String() == "left" {
				delta = len(model.LeaveTypes) - 1
			}
			p.typeIdx = (p.typeIdx + delta) % len(model.LeaveTypes)
			return nil
		}
	case "enter":
		if p.focus >= 0 {
			return p.submit(m)
		}
	}

	if p.focus >= 0 && p.focus < leaveFields {
		var cmd tea.Cmd
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(key)
		return cmd
	}
	if p.focus < 0 {
		var cmd tea.Cmd
		p.list, cmd = p.list.Update(key)
		return cmd
	}
	return nil
}

func (p *leavePage) setFocus(focus int) {
	p.focus = focus
	for i := range p.inputs {
		if i == focus {
			p.inputs[i].Focus()
		} else {
			p.inputs[i].Blur()
		}
	}
}

func (p *leavePage) submit(m *Model) tea.Cmd {
	if p.busy {
		return nil
	}
	u := m.session.Current()
	if u == nil {
		return nil
	}
	leave := model.Leave{
		EmployeeID: u.ID,
		ManagerID:  u.ManagerID,
		LeaveType:  model.LeaveTypes[p.typeIdx],
		FromDate:   strings.TrimSpace(p.inputs[0].Value()),
		ToDate:     strings.TrimSpace(p.inputs[1].Value()),
		Reason:     strings.TrimSpace(p.inputs[2].Value()),
	}
	if leave.FromDate == "" || leave.ToDate == "" || leave.Reason == "" {
		p.errText = "from, to and reason are required"
		return nil
	}
	p.busy = true
	p.errText = ""
	return applyLeaveCmd(m.client, leave)
}

func (p *leavePage) view() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("My Leaves"))
	b.WriteString("\n\n")
	b.WriteString(p.list.View())
	b.WriteString("\n\n")

	if p.focus >= 0 {
		labels := []string{"From", "To", "Reason"}
		b.WriteString(styles.Title.Render("Apply Leave") + "\n\n")
		for i, in := range p.inputs {
			b.WriteString(styles.Label.Render(labels[i]) + "\n" + in.View() + "\n\n")
		}
		leaveType := model.LeaveTypes[p.typeIdx]
		typeLine := "  " + leaveType + "  "
		if p.focus == leaveFields {
			typeLine = styles.MenuSelected.Render(leaveType)
		}
		b.WriteString(styles.Label.Render("Type") + "\n" + typeLine + "\n\n")
		if p.busy {
			b.WriteString(styles.Hint.Render("submitting...") + "\n")
		}
		if p.errText != "" {
			b.WriteString(styles.ErrorLine.Render(p.errText) + "\n")
		}
		b.WriteString(styles.Hint.Render("enter: submit / esc: cancel"))
	} else {
		if l, ok := p.selected(); ok {
			status := string(l.Status)
			if status == "" {
				status = string(model.LeavePending)
			}
			b.WriteString(styles.Label.Render("Selected: ") + styles.StatusForLeave(status).Render(status))
			b.WriteString("\n")
		}
		b.WriteString(styles.Hint.Render("a: apply for leave / up-down: browse"))
	}
	return styles.Panel.Render(b.String())
}
