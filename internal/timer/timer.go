// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package timer implements the live elapsed-time indicator shown next to
// today's attendance. It is a small state machine driven by the check-in
// and check-out clock strings:
//
//	Idle (no check-in) -> Running (check-in only) -> Stopped (check-out set)
//
// While Running, the display is the zero-padded "HH:MM" elapsed since the
// check-in time of day, refreshed once per second by a Bubble Tea tick.
// Entering Stopped resets the display to "00:00".
package timer

import (
	"fmt"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/staffdesk/staffdesk-tui/internal/model"
)

// =============================================================================
// STATE
// =============================================================================

// State is the indicator's phase.
type State int

const (
	// Idle means no check-in has happened today.
	Idle State = iota
	// Running means checked in and not yet checked out.
	Running
	// Stopped means both check-in and check-out are set.
	Stopped
)

// ZeroDisplay is the display value outside the Running state.
const ZeroDisplay = "00:00"

// TickMsg is emitted once per second while the indicator runs. Generation
// identifies the tick loop that produced it; messages from a superseded
// generation are dropped.
type TickMsg struct {
	Generation int
	Now        time.Time
}

// Indicator tracks elapsed working time for the current day.
type Indicator struct {
	state      State
	checkIn    string
	generation int
	display    string
}

// New returns an indicator in the Idle state.
func New() *Indicator {
	return &Indicator{display: ZeroDisplay}
}

// =============================================================================
// TRANSITIONS
// =============================================================================

// SetTimes feeds the current check-in/check-out strings, transitioning the
// state machine. Any input change bumps the generation, cancelling ticks
// already in flight.
func (i *Indicator) SetTimes(checkIn, checkOut string, now time.Time) {
	i.generation++
	i.checkIn = checkIn

	switch {
	case checkIn == "":
		i.state = Idle
		i.display = ZeroDisplay
	case checkOut != "":
		i.state = Stopped
		i.display = ZeroDisplay
	default:
		i.state = Running
		i.display = i.Elapsed(now)
	}
}

// Stop tears the indicator down, invalidating any in-flight tick.
func (i *Indicator) Stop() {
	i.generation++
	i.state = Idle
	i.checkIn = ""
	i.display = ZeroDisplay
}

// State returns the current phase.
func (i *Indicator) State() State { return i.state }

// Display returns the current "HH:MM" value.
func (i *Indicator) Display() string { return i.display }

// =============================================================================
// TICKING
// =============================================================================

// TickCmd schedules the next one-second tick for the current generation.
// It returns nil unless the indicator is Running.
func (i *Indicator) TickCmd() tea.Cmd {
	if i.state != Running {
		return nil
	}
	gen := i.generation
	return tea.Tick(time.Second, func(t time.Time) tea.Msg {
		return TickMsg{Generation: gen, Now: t}
	})
}

// Update handles a TickMsg: stale generations are dropped, live ones
// refresh the display and schedule the next tick.
func (i *Indicator) Update(msg TickMsg) tea.Cmd {
	if msg.Generation != i.generation || i.state != Running {
		return nil
	}
	i.display = i.Elapsed(msg.Now)
	return i.TickCmd()
}

// Elapsed computes the zero-padded "HH:MM" since the check-in time of day,
// anchored to now's date. Malformed check-in text clamps to midnight; a
// check-in later than now yields "00:00" rather than a negative value.
func (i *Indicator) Elapsed(now time.Time) string {
	var h, m int
	if t, err := time.Parse(model.ClockLayout, i.checkIn); err == nil {
		h, m = t.Hour(), t.Minute()
	}
	start := time.Date(now.Year(), now.Month(), now.Day(), h, m, 0, 0, now.Location())
	d := now.Sub(start)
	if d < 0 {
		d = 0
	}
	return fmt.Sprintf("%02d:%02d", int(d.Hours()), int(d.Minutes())%60)
}
