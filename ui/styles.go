// Package ui implements the terminal screens: a tab bar over a few named
// pages, and the Share page that renders the live map.
package ui

import "github.com/charmbracelet/lipgloss"

var (
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#6BCB77")).
			Padding(0, 1)

	boxStyle = lipgloss.NewStyle().
			Border(lipgloss.RoundedBorder()).
			BorderForeground(lipgloss.Color("#6BCB77")).
			Padding(0, 1)

	infoStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#E8E8E8"))

	mutedStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888"))

	helpStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(1, 0, 0, 0)

	alertStyle = lipgloss.NewStyle().
			Border(lipgloss.ThickBorder()).
			BorderForeground(lipgloss.Color("#E53935")).
			Foreground(lipgloss.Color("#E53935")).
			Padding(0, 2)

	activeTabStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#101F38")).
			Background(lipgloss.Color("#6BCB77")).
			Padding(0, 2)

	tabStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#888888")).
			Padding(0, 2)

	formLabelStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#6BCB77"))

	// Map tiles.
	gridStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#444444"))

	terrainStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#2E5E33"))

	selfMarkerStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(lipgloss.Color("#2196F3"))
)
