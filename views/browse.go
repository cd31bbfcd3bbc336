package views

import (
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/table"
	"github.com/charmbracelet/lipgloss"
	"github.com/vendormac/vendormac/oui"
)

// BrowseView handles the survey browsing screen: the full ordered survey in
// a scrollable table plus a line-number input field.
type BrowseView struct {
	styles        *Styles
	width         int
	height        int
	records       []oui.SurveyRecord
	selectedIndex int
	tableOffset   int
	input         string
	errText       string
	table         table.Model
}

// NewBrowseView creates a new browse view
func NewBrowseView(styles *Styles) *BrowseView {
	return &BrowseView{
		styles: styles,
	}
}

// SetDimensions updates the view dimensions
func (v *BrowseView) SetDimensions(width, height int) {
	v.width = width
	v.height = height
}

// SetRecords updates the survey records shown in the table
func (v *BrowseView) SetRecords(records []oui.SurveyRecord) {
	v.records = records
}

// SetSelectedIndex updates the highlighted row
func (v *BrowseView) SetSelectedIndex(index int) {
	v.selectedIndex = index
}

// SetTableOffset updates the table scroll offset
func (v *BrowseView) SetTableOffset(offset int) {
	v.tableOffset = offset
}

// SetInput updates the line-number input field
func (v *BrowseView) SetInput(input string) {
	v.input = input
}

// SetError updates the validation error shown under the input field
func (v *BrowseView) SetError(text string) {
	v.errText = text
}

// Render generates the view
func (v *BrowseView) Render() string {
	banner := v.styles.RenderBanner()

	title := v.styles.DialogText.
		Bold(true).
		Padding(0, 1).
		Foreground(primaryColor).
		Align(lipgloss.Center).
		Render("Select a Device from the Survey")

	// Reserve space for banner(4), title(1), input(2), help(3), margins
	reservedHeight := 14
	availableHeight := v.height - reservedHeight
	visibleRows := min(availableHeight, len(v.records))
	if visibleRows < 1 {
		visibleRows = 1
	}

	startIdx := v.tableOffset
	endIdx := min(startIdx+visibleRows, len(v.records))

	var rows []table.Row
	for _, rec := range v.records[startIdx:endIdx] {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", rec.LineNumber),
			rec.InterfaceClass,
			truncate(rec.Manufacturer, 16),
			truncate(rec.ProductName, 20),
			truncate(rec.Model, 12),
			strings.Join(rec.OUI[:], ":"),
		})
	}

	columns := []table.Column{
		{Title: "Line", Width: 5},
		{Title: "If", Width: 5},
		{Title: "Manufacturer", Width: 16},
		{Title: "Product", Width: 20},
		{Title: "Model", Width: 12},
		{Title: "OUI", Width: 9},
	}

	tableStyle := table.Styles{
		Header: lipgloss.NewStyle().
			Bold(true).
			Foreground(primaryColor).
			Align(lipgloss.Left),
		Selected: lipgloss.NewStyle().
			Background(primaryColor).
			Foreground(lipgloss.Color("#000000")).
			Bold(true).
			Align(lipgloss.Left),
		Cell: lipgloss.NewStyle().
			Foreground(secondaryColor).
			Align(lipgloss.Left),
	}

	t := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithFocused(true),
		table.WithHeight(visibleRows),
		table.WithStyles(tableStyle),
	)

	if len(rows) > 0 {
		cursorPos := v.selectedIndex - v.tableOffset
		if cursorPos >= 0 && cursorPos < len(rows) {
			t.SetCursor(cursorPos)
		}
	}
	v.table = t

	tableView := v.table.View()
	if v.tableOffset > 0 {
		tableView = v.styles.DialogText.Foreground(primaryColor).SetString("▲").String() + "\n" + tableView
	}
	if v.tableOffset+visibleRows < len(v.records) {
		tableView = tableView + "\n" + v.styles.DialogText.Foreground(primaryColor).SetString("▼").String()
	}

	// Line-number input with cursor
	inputLine := lipgloss.JoinHorizontal(
		lipgloss.Left,
		v.styles.DialogText.Copy().Foreground(primaryColor).Render("Line number: "),
		v.styles.Input.Render(v.input+"│"),
	)

	var errLine string
	if v.errText != "" {
		errLine = v.styles.ErrorText.Render(v.errText)
	}

	helpText := "↑↓ Select • PgUp/PgDn Jump • 0-9 Type Line • Enter Confirm • Esc Abort"
	helpBox := v.styles.Help.Copy().
		Width(v.width-4).
		Padding(0, 1).
		Render(helpText)

	mainLayout := lipgloss.JoinVertical(
		lipgloss.Center,
		banner,
		title,
		tableView,
		"",
		inputLine,
		errLine,
	)

	mainView := lipgloss.Place(
		v.width,
		v.height-3,
		lipgloss.Center,
		lipgloss.Top,
		mainLayout,
	)

	return lipgloss.JoinVertical(
		lipgloss.Top,
		mainView,
		helpBox,
	)
}

// Helper functions
func truncate(s string, length int) string {
	if len(s) <= length {
		return s
	}
	return s[:length-3] + "..."
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
