// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

import (
	"errors"
	"fmt"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/staffdesk/staffdesk-tui/internal/api"
	"github.com/staffdesk/staffdesk-tui/internal/model"
	"github.com/staffdesk/staffdesk-tui/internal/timer"
	"github.com/staffdesk/staffdesk-tui/internal/ui/styles"
	"github.com/staffdesk/staffdesk-tui/internal/util"
)

// =============================================================================
// DASHBOARD PAGE
// =============================================================================

type dashboardPage struct {
	profile       model.User
	today         model.AttendanceRecord
	yesterday     model.AttendanceRecord
	announcements []model.Announcement
	indicator     *timer.Indicator
}

func newDashboardPage() dashboardPage {
	return dashboardPage{indicator: timer.New()}
}

// loadCmd fetches everything the dashboard shows.
func (p *dashboardPage) loadCmd(m *Model) tea.Cmd {
	u := m.session.Current()
	if u == nil {
		return nil
	}
	return tea.Batch(
		profileCmd(m.client, u.ID),
		attendanceCmd(m.client, u.ID),
		announcementsCmd(m.client, u.EffectiveRole()),
	)
}

func (p *dashboardPage) update(m *Model, msg tea.Msg) tea.Cmd {
	switch msg := msg.(type) {
	case profileMsg:
		if msg.err != nil {
			m.statusBar.SetError(msg.err)
			return nil
		}
		p.profile = msg.user
		if err := m.session.SetUser(msg.user); err != nil {
			m.statusBar.SetError(err)
		}
		m.syncIdentity()
		return nil

	case attendanceMsg:
		if msg.err != nil {
			m.statusBar.SetError(msg.err)
			return nil
		}
		now := time.Now()
		p.today, _ = model.FindByDate(msg.records, model.FormatDate(now))
		p.yesterday, _ = model.FindByDate(msg.records, model.FormatDate(now.AddDate(0, 0, -1)))
		p.indicator.SetTimes(p.today.CheckIn, p.today.CheckOut, now)
		return p.indicator.TickCmd()

	case announcementsMsg:
		if msg.err != nil {
			m.statusBar.SetError(msg.err)
			return nil
		}
		role := m.session.Role()
		p.announcements = model.FilterAnnouncements(msg.items, role, time.Now())
		return nil

	case actionDoneMsg:
		if msg.err != nil {
			if errors.Is(msg.err, api.ErrAlreadyCheckedIn) {
				m.statusBar.SetMessage("You have already checked in today.")
			} else {
				m.statusBar.SetError(msg.err)
			}
			return nil
		}
		m.statusBar.SetMessage(msg.action + " recorded")
		// Reload attendance so the timer picks up the new state.
		if u := m.session.Current(); u != nil {
			return attendanceCmd(m.client, u.ID)
		}
		return nil

	case tea.KeyMsg:
		u := m.session.Current()
		if u == nil {
			return nil
		}
		switch msg.String() {
		case "i":
			return checkInCmd(m.client, u.ID)
		case "o":
			return checkOutCmd(m.client, u.ID)
		case "r":
			return p.loadCmd(m)
		}
	}
	return nil
}

func attendanceLine(label string, r model.AttendanceRecord) string {
	in, out := r.CheckIn, r.CheckOut
	if in == "" {
		in = "--:--"
	}
	if out == "" {
		out = "--:--"
	}
	return fmt.Sprintf("%s  in %s  out %s", styles.Label.Render(util.PadRight(label, 9)), in, out)
}

func (p *dashboardPage) view(m *Model) string {
	var left strings.Builder
	left.WriteString(styles.Title.Render("Dashboard"))
	left.WriteString("\n\n")

	if p.profile.FullName != "" {
		left.WriteString(p.profile.FullName + "  " + styles.Hint.Render(p.profile.Email) + "\n")
		if p.profile.Position != "" {
			left.WriteString(styles.Label.Render(p.profile.Position) + "\n")
		}
		left.WriteString("\n")
	}

	left.WriteString(attendanceLine("Today", p.today) + "\n")
	left.WriteString(attendanceLine("Yesterday", p.yesterday) + "\n\n")

	switch p.indicator.State() {
	case timer.Running:
		left.WriteString("Working time " + styles.TimerRunning.Render(p.indicator.Display()) + "\n")
	default:
		left.WriteString("Working time " + styles.Hint.Render(p.indicator.Display()) + "\n")
	}
	left.WriteString("\n" + styles.Hint.Render("i: check in / o: check out / r: refresh"))

	// Compact mode drops the right-hand panel so the dashboard fits
	// narrow terminals.
	if m.compact {
		return styles.Panel.Render(left.String())
	}

	var right strings.Builder
	right.WriteString(styles.Title.Render("Notice Board"))
	right.WriteString("\n\n")
	if len(p.announcements) == 0 {
		right.WriteString(styles.Hint.Render("no announcements") + "\n")
	}
	for _, a := range p.announcements {
		right.WriteString(util.TruncateRunes(a.Title, 40) + "\n")
		right.WriteString(styles.Hint.Render(
			fmt.Sprintf("%s, expires %s", a.PostedBy, a.ExpiryDate.Format(model.DateLayout))) + "\n")
	}
	right.WriteString("\n" + styles.Title.Render("Company Holidays") + "\n\n")
	for _, h := range model.CompanyHolidays {
		right.WriteString(styles.Hint.Render(h.Date) + "  " + h.Name + "\n")
	}

	return lipgloss.JoinHorizontal(lipgloss.Top,
		styles.Panel.Render(left.String()),
		" ",
		styles.Panel.Render(right.String()))
}
