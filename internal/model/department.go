// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package model

import "github.com/google/uuid"

// Department is an organizational unit managed on the departments page.
// Rows are client-local; IDs are generated on creation.
type Department struct {
	ID          string `json:"id"`
	Name        string `json:"name"`
	Description string `json:"description,omitempty"`
}

// NewDepartment creates a department with a fresh random ID.
func NewDepartment(name, description string) Department {
	return Department{
		ID:          uuid.NewString(),
		Name:        name,
		Description: description,
	}
}
