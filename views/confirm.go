package views

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// ConfirmView handles the address confirmation screen
type ConfirmView struct {
	styles    *Styles
	width     int
	height    int
	selection Selection
}

// NewConfirmView creates a new confirmation view
func NewConfirmView(styles *Styles) *ConfirmView {
	return &ConfirmView{
		styles: styles,
	}
}

// SetDimensions updates the view dimensions
func (v *ConfirmView) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// SetSelection updates the chosen record and generated address
func (v *ConfirmView) SetSelection(sel Selection) {
	v.selection = sel
}

// Render generates the view
func (v *ConfirmView) Render() string {
	banner := v.styles.RenderBanner()

	var content strings.Builder
	content.WriteString(v.styles.DialogText.Bold(true).Render("Confirm New Hardware Address"))
	content.WriteString("\n\n")

	rec := v.selection.Record
	rows := []struct{ label, value string }{
		{"Interface", v.selection.Interface},
		{"Current MAC", v.selection.CurrentMAC},
		{"Type", rec.ProductType},
		{"Manufacturer", rec.Manufacturer},
		{"Product", rec.ProductName},
		{"Model", rec.Model},
		{"Vendor OUI", strings.Join(rec.OUI[:], ":")},
		{"New Address", v.selection.Address},
	}

	labelStyle := v.styles.DialogText.Copy().
		Width(14).
		Align(lipgloss.Right).
		Foreground(primaryColor)

	valueStyle := v.styles.DialogText.Copy().
		Foreground(secondaryColor)

	for _, row := range rows {
		content.WriteString(lipgloss.JoinHorizontal(
			lipgloss.Left,
			labelStyle.Render(row.label),
			"  ",
			valueStyle.Render(row.value),
		))
		content.WriteString("\n")
	}

	content.WriteString("\n")

	keyHelp := []string{
		v.styles.KeyStyle.Render("↵") + v.styles.DescStyle.Render(" Apply"),
		v.styles.KeyStyle.Render("esc") + v.styles.DescStyle.Render(" Back"),
	}
	content.WriteString(v.styles.Help.Render(strings.Join(keyHelp, " • ")))

	dialog := v.styles.DialogBox.Render(content.String())

	fullContent := lipgloss.JoinVertical(
		lipgloss.Center,
		banner,
		"\n",
		dialog,
	)

	return lipgloss.Place(
		v.width,
		v.height,
		lipgloss.Center,
		lipgloss.Center,
		fullContent,
	)
}
