// Package tui implements the Bubble Tea TUI for chatbox.
package tui

import (
	"github.com/charmbracelet/lipgloss"

	"github.com/hay-kot/chatbox/internal/styles"
)

// Styles used for rendering the TUI.
var (
	// Title style for the view header.
	titleStyle = lipgloss.NewStyle().
			Bold(true).
			Foreground(styles.ColorBlue).
			PaddingLeft(1)

	// Selected tab in the route bar.
	viewSelectedStyle = lipgloss.NewStyle().
				Foreground(styles.ColorBlue).
				Bold(true)

	// Unselected tab in the route bar.
	viewNormalStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray)

	// Sender label for the user's messages.
	userLabelStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGreen).
			Bold(true)

	// Sender label for assistant replies.
	aiLabelStyle = lipgloss.NewStyle().
			Foreground(styles.ColorBlue).
			Bold(true)

	// Timestamp and token count next to the sender.
	metaStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray)

	// Body of a message.
	contentStyle = lipgloss.NewStyle().
			Foreground(styles.ColorWhite).
			PaddingLeft(2)

	// Placeholder shown for an empty conversation or empty message.
	emptyStyle = lipgloss.NewStyle().
			Foreground(styles.ColorGray).
			Italic(true)

	// Error line shown above the help bar.
	errorStyle = lipgloss.NewStyle().
			Foreground(styles.ColorRed).
			PaddingLeft(1)

	// Greeting on the welcome view.
	greetingStyle = lipgloss.NewStyle().
			Foreground(styles.ColorWhite).
			PaddingLeft(1)

	// Help bar padding.
	helpBarStyle = lipgloss.NewStyle().
			PaddingLeft(1)

	// bannerStyle styles the ASCII art banner.
	bannerStyle = styles.BannerStyle.
			PaddingLeft(1).
			PaddingBottom(1)
)

const iconDot = "•"
