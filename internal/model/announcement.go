// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "time"

// VisibilityAll marks an announcement as visible to every role.
const VisibilityAll = "All"

// Announcement is a notice posted to the company notice board. Visibility
// is either "All" or the name of the single role allowed to see it.
type Announcement struct {
	ID         string    `json:"_id,omitempty"`
	Title      string    `json:"title"`
	Message    string    `json:"message"`
	PostedBy   string    `json:"postedBy"`
	PostedDate time.Time `json:"postedDate"`
	ExpiryDate time.Time `json:"expiryDate"`
	Visibility string    `json:"visibility,omitempty"`
}

// VisibleTo reports whether the announcement should be shown to the given
// role at the given instant. Expired announcements are hidden regardless
// of visibility scope.
func (a Announcement) VisibleTo(role Role, now time.Time) bool {
	if a.ExpiryDate.Before(now) {
		return false
	}
	return a.Visibility == VisibilityAll || a.Visibility == role.String()
}

// FilterAnnouncements returns the announcements visible to role at now,
// preserving input order.
func FilterAnnouncements(in []Announcement, role Role, now time.Time) []Announcement {
	out := make([]Announcement, 0, len(in))
	for _, a := range in {
		if a.VisibleTo(role, now) {
			out = append(out, a)
		}
	}
	return out
}
