/*
Copyright © 2026 Statio Authors
SPDX-License-Identifier: Apache-2.0
*/
package dashboard

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette for the dashboard. All colors use
// lipgloss ANSI 256-color codes for broad terminal compatibility.
type Theme struct {
	// Name identifies the theme in the status bar.
	Name string

	// Text colors.
	NormalText lipgloss.Color
	FaintText  lipgloss.Color

	// UI chrome.
	HeaderForeground lipgloss.Color
	BorderColor      lipgloss.Color
	HelpText         lipgloss.Color

	// Active tab highlight.
	ActiveTabBackground lipgloss.Color
	ActiveTabForeground lipgloss.Color

	// Facet status accents.
	StatusGood lipgloss.Color
	StatusWarn lipgloss.Color
}

// DarkTheme is the default scheme for dark terminal backgrounds.
var DarkTheme = Theme{
	Name:                "dark",
	NormalText:          lipgloss.Color("252"),
	FaintText:           lipgloss.Color("245"),
	HeaderForeground:    lipgloss.Color("255"),
	BorderColor:         lipgloss.Color("240"),
	HelpText:            lipgloss.Color("241"),
	ActiveTabBackground: lipgloss.Color("25"),
	ActiveTabForeground: lipgloss.Color("255"),
	StatusGood:          lipgloss.Color("114"), // green
	StatusWarn:          lipgloss.Color("208"), // orange
}

// LightTheme is the scheme for light terminal backgrounds.
var LightTheme = Theme{
	Name:                "light",
	NormalText:          lipgloss.Color("235"),
	FaintText:           lipgloss.Color("243"),
	HeaderForeground:    lipgloss.Color("232"),
	BorderColor:         lipgloss.Color("250"),
	HelpText:            lipgloss.Color("246"),
	ActiveTabBackground: lipgloss.Color("153"),
	ActiveTabForeground: lipgloss.Color("232"),
	StatusGood:          lipgloss.Color("28"),
	StatusWarn:          lipgloss.Color("166"),
}
