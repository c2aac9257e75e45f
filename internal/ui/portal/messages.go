// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package portal

import (
	"context"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/staffdesk/staffdesk-tui/internal/api"
	"github.com/staffdesk/staffdesk-tui/internal/model"
)

// apiTimeout bounds every background API call.
const apiTimeout = 30 * time.Second

// =============================================================================
// MESSAGES
// =============================================================================

type loginResultMsg struct {
	user  model.User
	token string
	err   error
}

type registerResultMsg struct {
	err error
}

type attendanceMsg struct {
	records []model.AttendanceRecord
	err     error
}

type announcementsMsg struct {
	items []model.Announcement
	err   error
}

type profileMsg struct {
	user model.User
	err  error
}

type myLeavesMsg struct {
	leaves []model.Leave
	err    error
}

type managerLeavesMsg struct {
	leaves []model.Leave
	err    error
}

// actionDoneMsg reports a write (check-in, check-out, apply, approve).
// refresh names the follow-up load to run on success.
type actionDoneMsg struct {
	action string
	err    error
}

// ConfigReloadedMsg announces that the on-disk configuration was reloaded.
// The config watcher sends it from outside the program; the model responds
// by re-reading the global config.
type ConfigReloadedMsg struct{}

// =============================================================================
// COMMANDS
// =============================================================================

func loginCmd(client *api.Client, email, password string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()
		user, token, err := client.Login(ctx, email, password)
		return loginResultMsg{user: user, token: token, err: err}
	}
}

func registerCmd(client *api.Client, req api.RegisterRequest) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()
		return registerResultMsg{err: client.Register(ctx, req)}
	}
}

func attendanceCmd(client *api.Client, employeeID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()
		records, err := client.MyAttendance(ctx, employeeID)
		return attendanceMsg{records: records, err: err}
	}
}

func announcementsCmd(client *api.Client, role model.Role) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()
		items, err := client.Announcements(ctx, role)
		return announcementsMsg{items: items, err: err}
	}
}

func profileCmd(client *api.Client, employeeID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()
		user, err := client.EmployeeDetails(ctx, employeeID)
		return profileMsg{user: user, err: err}
	}
}

func myLeavesCmd(client *api.Client, employeeID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()
		leaves, err := client.MyLeaves(ctx, employeeID)
		return myLeavesMsg{leaves: leaves, err: err}
	}
}

func managerLeavesCmd(client *api.Client, managerID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()
		leaves, err := client.LeavesForManager(ctx, managerID)
		return managerLeavesMsg{leaves: leaves, err: err}
	}
}

func checkInCmd(client *api.Client, employeeID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()
		return actionDoneMsg{action: "check-in", err: client.CheckIn(ctx, employeeID)}
	}
}

func checkOutCmd(client *api.Client, employeeID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()
		return actionDoneMsg{action: "check-out", err: client.CheckOut(ctx, employeeID)}
	}
}

func applyLeaveCmd(client *api.Client, leave model.Leave) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()
		return actionDoneMsg{action: "apply-leave", err: client.ApplyLeave(ctx, leave)}
	}
}

func updateLeaveCmd(client *api.Client, leaveID string, status model.LeaveStatus, managerID string) tea.Cmd {
	return func() tea.Msg {
		ctx, cancel := context.WithTimeout(context.Background(), apiTimeout)
		defer cancel()
		return actionDoneMsg{action: "update-leave", err: client.UpdateLeaveStatus(ctx, leaveID, status, managerID)}
	}
}
