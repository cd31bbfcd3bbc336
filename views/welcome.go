package views

import (
	"runtime"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// WelcomeView handles the welcome screen
type WelcomeView struct {
	styles  *Styles
	width   int
	height  int
	frame   int
	version string
	iface   string
}

// NewWelcomeView creates a new welcome view
func NewWelcomeView(styles *Styles, version string) *WelcomeView {
	return &WelcomeView{
		styles:  styles,
		version: version,
	}
}

// SetDimensions updates the view dimensions
func (v *WelcomeView) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// SetFrame updates the animation frame
func (v *WelcomeView) SetFrame(frame int) {
	v.frame = frame
}

// SetInterface updates the target interface shown on the splash
func (v *WelcomeView) SetInterface(name string) {
	v.iface = name
}

// Render generates the view
func (v *WelcomeView) Render() string {
	banner := v.styles.RenderBanner()

	sweep := v.renderSweep()

	sysInfo := []string{
		v.formatInfoLine("Version", v.version),
		v.formatInfoLine("Interface", v.iface),
		v.formatInfoLine("OS", runtime.GOOS),
	}

	infoBox := v.styles.Box.Padding(0, 1).Align(lipgloss.Center).Render(strings.Join(sysInfo, "\n"))

	content := lipgloss.JoinVertical(
		lipgloss.Center,
		banner,
		"\n",
		sweep,
		"\n",
		infoBox,
	)

	return lipgloss.Place(
		v.width,
		v.height,
		lipgloss.Center,
		lipgloss.Center,
		content,
	)
}

// Helper function to format info lines with consistent labels
func (v *WelcomeView) formatInfoLine(label, value string) string {
	labelWidth := 15
	valueWidth := 10

	if len(value) > valueWidth {
		value = value[:valueWidth]
	} else {
		value = value + strings.Repeat(" ", valueWidth-len(value))
	}

	paddedLabel := lipgloss.NewStyle().
		Foreground(primaryColor).
		Align(lipgloss.Right).
		Width(labelWidth).
		Render(label + ":")

	paddedValue := lipgloss.NewStyle().
		Foreground(secondaryColor).
		Align(lipgloss.Left).
		Width(valueWidth).
		Render(value)

	return lipgloss.JoinHorizontal(lipgloss.Left, paddedLabel, " ", paddedValue)
}

// renderSweep creates the animated sweep display
func (v *WelcomeView) renderSweep() string {
	var coloredParts []string
	barWidth := 24
	peakPos := v.frame % barWidth

	for i := 0; i < barWidth; i++ {
		dist := abs(i - peakPos)
		if dist > barWidth/2 {
			dist = barWidth - dist
		}
		colorIndex := dist % len(sweepColors)
		style := lipgloss.NewStyle().Foreground(sweepColors[colorIndex])
		coloredParts = append(coloredParts, style.Render("█"))
	}

	return v.styles.Box.Copy().
		Width(56).
		Padding(0, 1).
		Align(lipgloss.Center).
		Render(
			v.styles.DialogText.Bold(true).Render("Device Survey") + "\n" +
				strings.Join(coloredParts, ""),
		)
}

// abs returns the absolute value of x
func abs(x int) int {
	if x < 0 {
		return -x
	}
	return x
}
