// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

package cli

import (
	"fmt"

	"github.com/staffdesk/staffdesk-tui/internal/config"
	"github.com/staffdesk/staffdesk-tui/internal/store"
)

// HandleConfig implements "staffdesk config [path]".
func HandleConfig(args []string) error {
	if len(args) > 0 && args[0] == "path" {
		path, err := config.Path()
		if err != nil {
			return err
		}
		fmt.Println(path)
		return nil
	}

	cfg := config.Global()
	fmt.Printf("api.base_url     = %s\n", cfg.API.BaseURL)
	fmt.Printf("api.timeout_secs = %d\n", cfg.API.TimeoutSecs)
	fmt.Printf("ui.theme         = %s\n", cfg.UI.Theme)
	fmt.Printf("ui.compact_mode  = %t\n", cfg.UI.CompactMode)
	if cfg.Storage.Path != "" {
		fmt.Printf("storage.path     = %s\n", cfg.Storage.Path)
	}
	return nil
}

// HandleLogout implements "staffdesk logout": wipes the persisted session
// without starting the TUI.
func HandleLogout(storePath string) error {
	var st *store.Store
	var err error
	if storePath != "" {
		st, err = store.Open(storePath)
	} else {
		st, err = store.OpenDefault()
	}
	if err != nil {
		return err
	}
	defer st.Close()

	if err := st.Clear(); err != nil {
		return err
	}
	fmt.Println("Session cleared.")
	return nil
}
