// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// staffdesk is the terminal client for the employee management portal.
package main

import (
	"fmt"
	"os"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/staffdesk/staffdesk-tui/internal/api"
	"github.com/staffdesk/staffdesk-tui/internal/cli"
	"github.com/staffdesk/staffdesk-tui/internal/config"
	"github.com/staffdesk/staffdesk-tui/internal/session"
	"github.com/staffdesk/staffdesk-tui/internal/store"
	"github.com/staffdesk/staffdesk-tui/internal/ui/portal"
)

// Version information (set via ldflags at build time).
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

func init() {
	cli.Version = Version
	cli.GitCommit = GitCommit
	cli.BuildDate = BuildDate
}

func main() {
	cmd, args := cli.Parse()

	switch cmd {
	case cli.CmdTUI:
		runTUI()
	case cli.CmdVersion:
		cli.PrintVersion()
	case cli.CmdConfig:
		if err := cli.HandleConfig(args); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdLogout:
		if err := cli.HandleLogout(config.Global().Storage.Path); err != nil {
			fmt.Fprintf(os.Stderr, "Error: %v\n", err)
			os.Exit(1)
		}
	case cli.CmdHelp:
		cli.PrintUsage()
	default:
		cli.PrintUsage()
		os.Exit(1)
	}
}

func runTUI() {
	cfg := config.Global()

	var st *store.Store
	var err error
	if cfg.Storage.Path != "" {
		st, err = store.Open(cfg.Storage.Path)
	} else {
		st, err = store.OpenDefault()
	}
	if err != nil {
		fmt.Fprintf(os.Stderr, "Error: failed to open session store: %v\n", err)
		os.Exit(1)
	}
	defer st.Close()

	// The restore must finish before any view renders, so the first frame
	// already knows whether a user is signed in.
	sess := session.New(st)
	if err := sess.Restore(); err != nil {
		fmt.Fprintf(os.Stderr, "Warning: failed to restore session: %v\n", err)
	}

	client := api.NewClient(cfg.API.BaseURL).
		WithTimeout(time.Duration(cfg.API.TimeoutSecs) * time.Second).
		WithTokenSource(sess)

	p := tea.NewProgram(portal.New(sess, client), tea.WithAltScreen())

	// Reload the UI config when the file changes on disk and tell the
	// running program so it can re-read the global values.
	if path, err := config.Path(); err == nil {
		if w, err := config.NewWatcher(path, func() {
			p.Send(portal.ConfigReloadedMsg{})
		}); err == nil {
			if err := w.Watch(); err == nil {
				defer w.Close()
			}
		}
	}

	if _, err := p.Run(); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}
