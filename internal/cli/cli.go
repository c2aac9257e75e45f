// Copyright (c) 2024-2025 Jesse Morgan / Morgan Forge
// SPDX-License-Identifier: AGPL-3.0-or-later

// Package cli parses command-line arguments and implements the non-TUI
// subcommands.
package cli

import (
	"fmt"
	"os"
	"strings"
)

// Version information, set by main at build time.
var (
	Version   = "dev"
	GitCommit = "unknown"
	BuildDate = "unknown"
)

// Command identifies which subcommand was requested.
type Command int

const (
	// CmdTUI runs the interactive portal (the default).
	CmdTUI Command = iota
	// CmdVersion prints version information.
	CmdVersion
	// CmdConfig prints or edits configuration.
	CmdConfig
	// CmdLogout wipes the persisted session.
	CmdLogout
	// CmdHelp prints usage.
	CmdHelp
	// CmdUnknown is anything unrecognized.
	CmdUnknown
)

// ParseArgs maps an argument list to a command plus its remaining args.
func ParseArgs(argv []string) (Command, []string) {
	if len(argv) == 0 {
		return CmdTUI, nil
	}
	cmd := strings.ToLower(argv[0])
	rest := argv[1:]

	switch cmd {
	case "tui":
		return CmdTUI, rest
	case "version", "--version", "-v":
		return CmdVersion, rest
	case "config":
		return CmdConfig, rest
	case "logout":
		return CmdLogout, rest
	case "help", "--help", "-h":
		return CmdHelp, rest
	}
	return CmdUnknown, argv
}

// Parse reads os.Args.
func Parse() (Command, []string) {
	return ParseArgs(os.Args[1:])
}

const usageText = `staffdesk - employee portal for the terminal

Usage:
  staffdesk                Run the portal
  staffdesk config         Show the active configuration
  staffdesk config path    Show the configuration file location
  staffdesk logout         Clear the saved session
  staffdesk version        Print version information

Version: %s
`

// PrintUsage prints the usage/help text.
func PrintUsage() {
	fmt.Printf(usageText, Version)
}

// PrintVersion prints version information.
func PrintVersion() {
	fmt.Printf("staffdesk version %s\n", Version)
	fmt.Printf("  Git commit: %s\n", GitCommit)
	fmt.Printf("  Build date: %s\n", BuildDate)
}
