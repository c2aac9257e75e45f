// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

import (
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/staffdesk/staffdesk-tui/internal/api"
	"github.com/staffdesk/staffdesk-tui/internal/config"
	"github.com/staffdesk/staffdesk-tui/internal/nav"
	"github.com/staffdesk/staffdesk-tui/internal/session"
	"github.com/staffdesk/staffdesk-tui/internal/timer"
	"github.com/staffdesk/staffdesk-tui/internal/ui/components"
)

// =============================================================================
// ROOT MODEL
// =============================================================================

// Model is the root Bubble Tea model. It owns the session, the navigation
// guard, the API client, and the per-page sub-state.
type Model struct {
	session *session.Container
	guard   *nav.Guard
	client  *api.Client

	route   nav.Route
	width   int
	height  int
	compact bool

	menu      *components.Menu
	statusBar *components.StatusBar

	login       loginPage
	register    registerPage
	dashboard   dashboardPage
	leave       leavePage
	requests    requestsPage
	departments departmentsPage
}

// New builds the root model. Restore must already have run on the session;
// the starting route follows from whether a user was rehydrated.
func New(sess *session.Container, client *api.Client) *Model {
	m := &Model{
		session:     sess,
		guard:       nav.NewGuard(sess),
		client:      client,
		statusBar:   components.NewStatusBar(),
		login:       newLoginPage(),
		register:    newRegisterPage(),
		dashboard:   newDashboardPage(),
		leave:       newLeavePage(),
		requests:    newRequestsPage(),
		departments: newDepartmentsPage(),
	}
	m.menu = components.NewMenu(m.guard.Visible())
	m.compact = config.Global().UI.CompactMode

	if sess.IsAuthenticated() {
		m.enter(nav.RouteDashboard)
	} else {
		m.route = nav.LandingRoute
	}
	m.syncIdentity()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	if m.route == nav.RouteDashboard {
		return m.dashboard.loadCmd(m)
	}
	return nil
}

// syncIdentity refreshes the status bar and menu from the session.
func (m *Model) syncIdentity() {
	m.menu.SetItems(m.guard.Visible())
	if u := m.session.Current(); u != nil {
		m.statusBar.UserName = u.FullName
		m.statusBar.Role = u.Role.String()
	} else {
		m.statusBar.UserName = ""
		m.statusBar.Role = ""
	}
}

// enter navigates to a route, running the guard first. Denied routes fall
// back to the landing page.
func (m *Model) enter(route nav.Route) tea.Cmd {
	if !m.guard.CanRender(route) {
		m.route = nav.LandingRoute
		return nil
	}
	m.route = route
	m.menu.Select(route)
	m.statusBar.Clear()

	switch route {
	case nav.RouteDashboard, nav.RouteProfile:
		return m.dashboard.loadCmd(m)
	case nav.RouteApplyLeave:
		return m.leave.loadCmd(m)
	case nav.RouteLeaveRequests:
		return m.requests.loadCmd(m)
	}
	return nil
}

// logout wipes the session and returns to the landing route.
func (m *Model) logout() {
	m.dashboard.indicator.Stop()
	if err := m.session.Logout(); err != nil {
		m.statusBar.SetError(err)
	}
	m.route = nav.LandingRoute
	m.login = newLoginPage()
	m.syncIdentity()
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.statusBar.Width = msg.Width
		return m, nil

	case tea.KeyMsg:
		switch msg.String() {
		case "ctrl+c":
			return m, tea.Quit
		case "ctrl+l":
			if m.session.IsAuthenticated() {
				m.logout()
				return m, nil
			}
		}
		if m.session.IsAuthenticated() {
			switch msg.String() {
			case "ctrl+n":
				m.menu.Next()
				return m, nil
			case "ctrl+p":
				m.menu.Prev()
				return m, nil
			case "enter":
				// Enter activates the menu selection only when the page
				// itself has no focused input (pages claim enter first).
				if d, ok := m.menu.Current(); ok && !m.pageWantsKeys() {
					return m, m.enter(d.Route)
				}
			}
		}

	case loginResultMsg:
		return m, m.handleLogin(msg)

	case ConfigReloadedMsg:
		m.compact = config.Global().UI.CompactMode
		m.statusBar.SetMessage("configuration reloaded")
		return m, nil

	case timer.TickMsg:
		return m, m.dashboard.indicator.Update(msg)
	}

	return m, m.updatePage(msg)
}

// pageWantsKeys reports whether the active page has a focused text input.
func (m *Model) pageWantsKeys() bool {
	switch m.route {
	case nav.RouteLanding:
		return true
	case nav.RouteRegister:
		return true
	case nav.RouteApplyLeave:
		return m.leave.formFocused()
	case nav.RouteDepartments:
		return m.departments.formFocused()
	}
	return false
}

// updatePage dispatches to the active page.
func (m *Model) updatePage(msg tea.Msg) tea.Cmd {
	switch m.route {
	case nav.RouteLanding:
		return m.login.update(m, msg)
	case nav.RouteRegister:
		return m.register.update(m, msg)
	case nav.RouteDashboard, nav.RouteProfile:
		return m.dashboard.update(m, msg)
	case nav.RouteApplyLeave:
		return m.leave.update(m, msg)
	case nav.RouteLeaveRequests:
		return m.requests.update(m, msg)
	case nav.RouteDepartments:
		return m.departments.update(m, msg)
	}
	return nil
}

// handleLogin installs a successful login in the session and moves to the
// dashboard.
func (m *Model) handleLogin(msg loginResultMsg) tea.Cmd {
	m.login.busy = false
	if msg.err != nil {
		m.login.errText = msg.err.Error()
		return nil
	}
	if err := m.session.Login(msg.user, msg.token); err != nil {
		m.statusBar.SetError(err)
	}
	m.syncIdentity()
	return m.enter(nav.RouteDashboard)
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.route {
	case nav.RouteLanding:
		body = m.login.view()
	case nav.RouteRegister:
		body = m.register.view()
	case nav.RouteDashboard, nav.RouteProfile:
		body = m.dashboard.view(m)
	case nav.RouteApplyLeave:
		body = m.leave.view()
	case nav.RouteLeaveRequests:
		body = m.requests.view()
	case nav.RouteDepartments:
		body = m.departments.view()
	default:
		body = m.login.view()
	}

	if m.session.IsAuthenticated() {
		body = lipgloss.JoinHorizontal(lipgloss.Top, m.menu.View(m.route), " ", body)
	}
	return lipgloss.JoinVertical(lipgloss.Left, body, m.statusBar.View())
}
