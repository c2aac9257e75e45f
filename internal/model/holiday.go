// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

// Holiday is one row in the static company holiday table shown on the
// dashboard.
type Holiday struct {
	Date string
	Name string
}

// CompanyHolidays is the fixed holiday calendar rendered on the dashboard.
var CompanyHolidays = []Holiday{
	{Date: "2023-12-25", Name: "Christmas"},
	{Date: "2024-01-01", Name: "New Year's Day"},
	{Date: "2024-07-04", Name: "Independence Day"},
	{Date: "2024-11-28", Name: "Thanksgiving"},
	{Date: "2024-12-25", Name: "Christmas"},
	{Date: "2025-01-01", Name: "New Year's Day"},
	{Date: "2025-07-04", Name: "Independence Day"},
	{Date: "2025-11-27", Name: "Thanksgiving"},
}
