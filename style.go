package main

import "github.com/charmbracelet/lipgloss"

const (
	headerTextFGColor = "#c0c0c0"
	markerFGColor     = "#f5c542"
)

var (
	// Styles
	appstyle    = lipgloss.NewStyle().Margin(1, 2)
	headerStyle = lipgloss.NewStyle().Bold(true).Foreground(lipgloss.Color(headerTextFGColor))

	paneStyle = lipgloss.NewStyle().
			BorderStyle(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("240")).
			BorderLeft(true).BorderRight(true)

	channelLabelStyle = lipgloss.NewStyle().Bold(true).Width(8)

	// One colour per waveform channel, in channel order.
	channelStyles = [numChannels]lipgloss.Style{
		lipgloss.NewStyle().Foreground(lipgloss.Color("6")),  // RF mag
		lipgloss.NewStyle().Foreground(lipgloss.Color("14")), // RF ph
		lipgloss.NewStyle().Foreground(lipgloss.Color("2")),  // Gx
		lipgloss.NewStyle().Foreground(lipgloss.Color("3")),  // Gy
		lipgloss.NewStyle().Foreground(lipgloss.Color("5")),  // Gz
		lipgloss.NewStyle().Foreground(lipgloss.Color("1")),  // ADC
	}

	measureMarkerStyle = lipgloss.NewStyle().Foreground(lipgloss.Color(markerFGColor))

	trDrawerArea = lipgloss.NewStyle().
			Border(lipgloss.NormalBorder()).
			BorderForeground(lipgloss.Color("245")).
			Padding(0, 0).BorderLeft(true)
)
