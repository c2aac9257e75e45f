// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

import (
	"strings"

	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/staffdesk/staffdesk-tui/internal/nav"
	"github.com/staffdesk/staffdesk-tui/internal/ui/styles"
)

// =============================================================================
// LOGIN PAGE
// =============================================================================

type loginPage struct {
	email    textinput.Model
	password textinput.Model
	focus    int
	busy     bool
	errText  string
}

func newLoginPage() loginPage {
	email := textinput.New()
	email.Placeholder = "email"
	email.CharLimit = 120
	email.Focus()

	password := textinput.New()
	password.Placeholder = "password"
	password.CharLimit = 120
	password.EchoMode = textinput.EchoPassword

	return loginPage{email: email, password: password}
}

func (p *loginPage) update(m *Model, msg tea.Msg) tea.Cmd {
	key, ok := msg.(tea.KeyMsg)
	if !ok {
		return nil
	}

	switch key.String() {
	case "tab", "shift+tab", "up", "down":
		p.focus = 1 - p.focus
		if p.focus == 0 {
			p.email.Focus()
			p.password.Blur()
		} else {
			p.password.Focus()
			p.email.Blur()
		}
		return nil

	case "ctrl+r":
		m.route = nav.RouteRegister
		return nil

	case "enter":
		if p.busy {
			return nil
		}
		email := strings.TrimSpace(p.email.Value())
		password := p.password.Value()
		if email == "" || password == "" {
			p.errText = "email and password are required"
			return nil
		}
		p.busy = true
		p.errText = ""
		return loginCmd(m.client, email, password)
	}

	var cmd tea.Cmd
	if p.focus == 0 {
		p.email, cmd = p.email.Update(msg)
	} else {
		p.password, cmd = p.password.Update(msg)
	}
	return cmd
}

func (p *loginPage) view() string {
	var b strings.Builder
	b.WriteString(styles.Title.Render("Sign in"))
	b.WriteString("\n\n")
	b.WriteString(styles.Label.Render("Email") + "\n" + p.email.View() + "\n\n")
	b.WriteString(styles.Label.Render("Password") + "\n" + p.password.View() + "\n\n")
	if p.busy {
		b.WriteString(styles.Hint.Render("signing in...") + "\n")
	}
	if p.errText != "" {
		b.WriteString(styles.ErrorLine.Render(p.errText) + "\n")
	}
	b.WriteString("\n" + styles.Hint.Render("enter: sign in / ctrl+r: register / ctrl+c: quit"))
	return styles.Panel.Render(b.String())
}
