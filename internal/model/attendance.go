// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// DateLayout is the wire format for calendar dates ("YYYY-MM-DD").
const DateLayout = "2006-01-02"

// ClockLayout is the wire format for check-in/check-out clock times ("HH:MM").
const ClockLayout = "15:04"

// AttendanceRecord is one day of check-in/check-out state for an employee.
// CheckIn and CheckOut hold "HH:MM" clock strings; either may be empty when
// the corresponding event has not happened yet.
type AttendanceRecord struct {
	ID         string `json:"_id,omitempty"`
	EmployeeID string `json:"userId,omitempty"`
	Date       string `json:"date"`
	CheckIn    string `json:"checkIn,omitempty"`
	CheckOut   string `json:"checkOut,omitempty"`
	Status     string `json:"status,omitempty"`
}

// CheckedIn reports whether the record has a check-in time.
func (a AttendanceRecord) CheckedIn() bool { return a.CheckIn != "" }

// CheckedOut reports whether the record has a check-out time.
func (a AttendanceRecord) CheckedOut() bool { return a.CheckOut != "" }

// FormatDate renders t in the wire date format.
func FormatDate(t time.Time) string {
	return t.Format(DateLayout)
}

// FindByDate returns the record whose Date matches the given day, if any.
func FindByDate(records []AttendanceRecord, day string) (AttendanceRecord, bool) {
	for _, r := range records {
		if r.Date == day {
			return r, true
		}
	}
	return AttendanceRecord{}, false
}
