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
	"github.com/staffdesk/staffdesk-tui/internal/util"
)

// =============================================================================
// DEPARTMENTS PAGE (client-local CRUD)
// =============================================================================

type departmentsPage struct {
	departments []model.Department
	list        table.Model
	name        textinput.Model
	description textinput.Model
	editing     string // ID being edited, empty for a new row
	focus       int    // -1 list, 0 name, 1 description
	errText     string
}

func newDepartmentsPage() departmentsPage {
	name := textinput.New()
	name.Placeholder = "name"
	name.CharLimit = 80

	description := textinput.New()
	description.Placeholder = "description"
	description.CharLimit = 200

	columns := []table.Column{
		{Title: "Name", Width: 20},
		{Title: "Description", Width: 40},
	}
	list := table.New(table.WithColumns(columns), table.WithHeight(10), table.WithFocused(true))

	return departmentsPage{list: list, name: name, description: description, focus: -1}
}

func (p *departmentsPage) formFocused() bool { return p.focus >= 0 }

func (p *departmentsPage) refreshRows() {
	rows := make([]table.Row, len(p.departments))
	for i, d := range p.departments {
		rows[i] = table.Row{d.Name, util.TruncateRunes(d.Description, 40)}
	}
	p.list.SetRows(rows)
}

func (p *departmentsPage) selected() (model.Department, bool) {
	i := p.list.Cursor()
	if i < 0 || i >= len(p.departments) {
		return model.Department{}, false
	}
	return p.departments[i], true
}

func (p *departmentsPage) update(m *Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	if p.focus >= 0 {
		switch key.String() {
		case "esc":
			p.closeForm()
			return nil
		case "tab", "down", "up", "shift+tab":
			p.setFocus(1 - p.focus)
			return nil
		case "enter":
			p.submit()
			return nil
		}
		var cmd tea.Cmd
		if p.focus == 0 {
			p.name, cmd = p.name.Update(key)
		} else {
			p.description, cmd = p.description.Update(key)
		}
		return cmd
	}

	switch key.String() {
	case "a":
		p.editing = ""
		p.name.SetValue("")
		p.description.SetValue("")
		p.setFocus(0)
		return nil
	case "e":
		if d, ok := p.selected(); ok {
			p.editing = d.ID
			p.name.SetValue(d.Name)
			p.description.SetValue(d.Description)
			p.setFocus(0)
		}
		return nil
	case "d":
		if d, ok := p.selected(); ok {
			p.remove(d.ID)
			m.statusBar.SetMessage("department deleted")
		}
		return nil
	}

	var cmd tea.Cmd
	p.list, cmd = p.list.Update(key)
	return cmd
}

func (p *departmentsPage) setFocus(focus int) {
	p.focus = focus
	if focus == 0 {
		p.name.Focus()
		p.description.Blur()
	} else {
		p.description.Focus()
		p.name.Blur()
	}
}

func (p *departmentsPage) closeForm() {
	p.focus = -1
	p.name.Blur()
	p.description.Blur()
	p.errText = ""
}

func (p *departmentsPage) submit() {
	name := strings.TrimSpace(p.name.Value())
	if name == "" {
		p.errText = "name is required"
		return
	}
	description := strings.TrimSpace(p.description.Value())

	if p.editing == "" {
		p.departments = append(p.departments, model.NewDepartment(name, description))
	} else {
		for i := range p.departments {
			if p.departments[i].ID == p.editing {
				p.departments[i].Name = name
				p.departments[i].Description = description
				break
			}
		}
	}
	p.refreshRows()
	p.closeForm()
}

func (p *departmentsPage) remove(id string) {
	out := p.departments[:0]
	for _, d := range p.departments {
		if d.ID != id {
			out = append(out, d)
		}
	}
	p.departments = out
	p.refreshRows()
}

func (p *departmentsPage) view() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Departments"))
	b.WriteString("\n\n")
	b.WriteString(p.list.View())
	b.WriteString("\n\n")

	if p.focus >= 0 {
		heading := "Add Department"
		if p.editing != "" {
			heading = "Edit Department"
		}
		b.WriteString(styles.Title.Render(heading) + "\n\n")
		b.WriteString(styles.Label.Render("Name") + "\n" + p.name.View() + "\n\n")
		b.WriteString(styles.Label.Render("Description") + "\n" + p.description.View() + "\n\n")
		if p.errText != "" {
			b.WriteString(styles.ErrorLine.Render(p.errText) + "\n")
		}
		b.WriteString(styles.Hint.Render("enter: save / esc: cancel"))
	} else {
		b.WriteString(styles.Hint.Render("a: add / e: edit / d: delete"))
	}
	return styles.Panel.Render(b.String())
}
