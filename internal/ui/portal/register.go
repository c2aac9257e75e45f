// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/staffdesk/staffdesk-tui/internal/api"
	"github.com/staffdesk/staffdesk-tui/internal/model"
	"github.com/staffdesk/staffdesk-tui/internal/nav"
	"github.com/staffdesk/staffdesk-tui/internal/ui/styles"
)

// =============================================================================
// REGISTER PAGE
// =============================================================================

type registerPage struct {
	inputs  []textinput.Model // full name, email, password, joining date
	roleIdx int
	focus   int
	busy    bool
	errText string
	done    bool
}

const registerFields = 4

func newRegisterPage() registerPage {
	mk := func(placeholder string) textinput.Model {
		in := textinput.New()
		in.Placeholder = placeholder
		in.CharLimit = 120
		return in
	}
	inputs := []textinput.Model{
		mk("full name"),
		mk("email"),
		mk("password"),
		mk("joining date (YYYY-MM-DD)"),
	}
	inputs[2].EchoMode = textinput.EchoPassword
	inputs[0].Focus()
	// Registration defaults to the least privileged role.
	roleIdx := len(model.AllRoles) - 1
	return registerPage{inputs: inputs, roleIdx: roleIdx}
}

func (p *registerPage) update(m *Model, msg tea.Msg) tea.Cmd {
	if res, ok := msg.(registerResultMsg); ok {
		p.busy = false
		if res.err != nil {
			p.errText = res.err.Error()
			return nil
		}
		p.done = true
		return nil
	}

	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "esc":
		m.route = nav.LandingRoute
		return nil

	case "tab", "down":
		p.setFocus((p.focus + 1) % (registerFields + 1))
		return nil

	case "shift+tab", "up":
		p.setFocus((p.focus + registerFields) % (registerFields + 1))
		return nil

	case "left", "right":
		// The role selector is the last focus slot.
		if p.focus == registerFields {
			delta := 1
			if key.String() == "left" {
				delta = len(model.AllRoles) - 1
			}
			p.roleIdx = (p.roleIdx + delta) % len(model.AllRoles)
			return nil
		}

	case "enter":
		if p.busy {
			return nil
		}
		if p.done {
			m.route = nav.LandingRoute
			return nil
		}
		req := api.RegisterRequest{
			FullName:    strings.TrimSpace(p.inputs[0].Value()),
			Email:       strings.TrimSpace(p.inputs[1].Value()),
			Password:    p.inputs[2].Value(),
			Role:        model.AllRoles[p.roleIdx].String(),
			JoiningDate: strings.TrimSpace(p.inputs[3].Value()),
		}
		if req.FullName == "" || req.Email == "" || req.Password == "" {
			p.errText = "full name, email and password are required"
			return nil
		}
		p.busy = true
		p.errText = ""
		return registerCmd(m.client, req)
	}

	if p.focus < registerFields {
		var cmd tea.Cmd
		p.inputs[p.focus], cmd = p.inputs[p.focus].Update(msg)
		return cmd
	}
	return nil
}

func (p *registerPage) setFocus(focus int) {
	p.focus = focus
	for i := range p.inputs {
		if i == focus {
			p.inputs[i].Focus()
		} else {
			p.inputs[i].Blur()
		}
	}
}

func (p *registerPage) view() string {
	if p.done {
		return styles.Panel.Render(
			styles.SuccessLine.Render("Account created.") + "\n\n" +
				styles.Hint.Render("enter: back to sign in"))
	}

	labels := []string{"Full name", "Email", "Password", "Joining date"}
	var b strings.Builder
	b.WriteString(styles.Title.Render("Create account"))
	b.WriteString("\n\n")
	for i, in := range p.inputs {
		b.WriteString(styles.Label.Render(labels[i]) + "\n" + in.View() + "\n\n")
	}

	role := model.AllRoles[p.roleIdx].String()
	roleLine := "  " + role + "  "
	if p.focus == registerFields {
		roleLine = styles.MenuSelected.Render(role)
	}
	b.WriteString(styles.Label.Render("Role") + "\n" + roleLine + "\n\n")

	if p.busy {
		b.WriteString(styles.Hint.Render("creating account...") + "\n")
	}
	if p.errText != "" {
		b.WriteString(styles.ErrorLine.Render(p.errText) + "\n")
	}
	b.WriteString("\n" + styles.Hint.Render("tab: next field / left-right: role / enter: submit / esc: back"))
	return styles.Panel.Render(b.String())
}
