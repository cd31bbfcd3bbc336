package views

import (
	"github.com/charmbracelet/lipgloss"
)

// Core colors
var (
	primaryColor    = lipgloss.Color("#ffb000") // Amber phosphor
	secondaryColor  = lipgloss.Color("#FFFFFF") // Pure white for labels
	accentColor     = lipgloss.Color("#ffb000") // Amber for borders
	errorColor      = lipgloss.Color("#ff4040") // Validation failures
	backgroundColor = lipgloss.Color("#000000") // Pure black
	boxBgColor      = lipgloss.Color("#000000") // Pure black for boxes

	// Sweep gradient (amber only)
	sweepColors = []lipgloss.Color{
		lipgloss.Color("#331e00"), // Darkest amber
		lipgloss.Color("#663c00"),
		lipgloss.Color("#995a00"),
		lipgloss.Color("#ffb000"), // Peak bright
		lipgloss.Color("#ffb000"), // Keep bright
		lipgloss.Color("#ffb000"), // Keep bright
		lipgloss.Color("#995a00"),
		lipgloss.Color("#663c00"),
	}
)

// Styles holds all the application styles
type Styles struct {
	Banner     lipgloss.Style
	Box        lipgloss.Style
	Info       lipgloss.Style
	InfoLabel  lipgloss.Style
	Help       lipgloss.Style
	DialogBox  lipgloss.Style
	Input      lipgloss.Style
	DialogText lipgloss.Style
	ErrorText  lipgloss.Style
	KeyStyle   lipgloss.Style
	DescStyle  lipgloss.Style
}

// NewStyles creates a new Styles instance
func NewStyles() *Styles {
	s := &Styles{}

	s.Banner = lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor).
		Background(backgroundColor)

	s.Box = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(2, 4).
		Background(boxBgColor).
		Width(50)

	s.Info = lipgloss.NewStyle().
		Foreground(primaryColor).
		Bold(true)

	s.InfoLabel = lipgloss.NewStyle().
		Foreground(secondaryColor).
		Width(15).
		Align(lipgloss.Right)

	s.Help = lipgloss.NewStyle().
		Foreground(secondaryColor).
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Background(boxBgColor).
		Padding(1, 4).
		Align(lipgloss.Center)

	s.DialogBox = lipgloss.NewStyle().
		Border(lipgloss.RoundedBorder()).
		BorderForeground(accentColor).
		Padding(1, 2).
		Background(boxBgColor).
		Width(72).
		Align(lipgloss.Center)

	s.Input = lipgloss.NewStyle().
		Foreground(primaryColor).
		Background(boxBgColor).
		Bold(true)

	s.DialogText = lipgloss.NewStyle().
		Foreground(secondaryColor).
		Background(boxBgColor)

	s.ErrorText = lipgloss.NewStyle().
		Foreground(errorColor).
		Bold(true)

	s.KeyStyle = lipgloss.NewStyle().
		Foreground(primaryColor)

	s.DescStyle = lipgloss.NewStyle().
		Foreground(secondaryColor)

	return s
}

// RenderBanner creates the standard banner
func (s *Styles) RenderBanner() string {
	banner := []string{
		"───────────────── VendorMAC ─────────────────",
		lipgloss.NewStyle().Foreground(secondaryColor).Render("Vendor-Consistent MAC Spoofing"),
		"──────────────────────────────────────────────",
	}

	bannerStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(primaryColor).
		Background(backgroundColor).
		Width(50).
		MarginBottom(1).
		Align(lipgloss.Center)

	return lipgloss.JoinVertical(
		lipgloss.Center,
		bannerStyle.Render(banner[0]),
		bannerStyle.Render(banner[1]),
		bannerStyle.Render(banner[2]),
	)
}
