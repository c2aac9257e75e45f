// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package styles

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestStatusForLeave(t *testing.T) {
	assert.Equal(t, Emerald, StatusForLeave("Approved").GetForeground())
	assert.Equal(t, Rose, StatusForLeave("Rejected").GetForeground())
	assert.Equal(t, Amber, StatusForLeave("Pending").GetForeground())

	// Missing status renders as pending, matching the table fallback.
	assert.Equal(t, Amber, StatusForLeave("").GetForeground())
}
