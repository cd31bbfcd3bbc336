package main

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/vendormac/vendormac/hwaddr"
	"github.com/vendormac/vendormac/oui"
	"github.com/vendormac/vendormac/views"
)

// Screen states
const (
	screenWelcome = "welcome"
	screenBrowse  = "browse"
	screenConfirm = "confirm"
)

const browsePageSize = 10

type welcomeTimerMsg struct{}

func welcomeTimer() tea.Cmd {
	return tea.Tick(900*time.Millisecond, func(t time.Time) tea.Msg {
		return welcomeTimerMsg{}
	})
}

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(time.Millisecond*80, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// browseModel drives the interactive selection flow:
// welcome → browse → confirm. The confirmed record and its generated
// address are read off the model after the program exits.
type browseModel struct {
	currentScreen string
	ifaceName     string
	currentMAC    string
	survey        *oui.Survey
	rng           hwaddr.Rand

	width  int
	height int
	frame  int

	selectedIndex int
	tableOffset   int
	input         string
	inputErr      string

	chosen    oui.SurveyRecord
	address   string
	confirmed bool
	aborted   bool

	styles      *views.Styles
	welcomeView *views.WelcomeView
	browseView  *views.BrowseView
	confirmView *views.ConfirmView
}

func newBrowseModel(ifaceName, currentMAC string, survey *oui.Survey, rng hwaddr.Rand) *browseModel {
	styles := views.NewStyles()

	return &browseModel{
		currentScreen: screenWelcome,
		ifaceName:     ifaceName,
		currentMAC:    currentMAC,
		survey:        survey,
		rng:           rng,
		styles:        styles,
		welcomeView:   views.NewWelcomeView(styles, version),
		browseView:    views.NewBrowseView(styles),
		confirmView:   views.NewConfirmView(styles),
	}
}

// Init implements tea.Model
func (m *browseModel) Init() tea.Cmd {
	return tea.Batch(welcomeTimer(), tick())
}

// Update implements tea.Model
func (m *browseModel) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case welcomeTimerMsg:
		if m.currentScreen == screenWelcome {
			m.currentScreen = screenBrowse
		}
		return m, nil
	case tickMsg:
		m.frame++
		if m.currentScreen == screenWelcome {
			return m, tick()
		}
		return m, nil
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tea.KeyMsg:
		return m.handleKey(msg)
	}

	return m, nil
}

func (m *browseModel) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		// Interrupt aborts the whole operation; nothing has been applied
		// to the interface yet.
		m.aborted = true
		return m, tea.Quit
	case "esc":
		switch m.currentScreen {
		case screenConfirm:
			m.currentScreen = screenBrowse
		case screenBrowse:
			m.aborted = true
			return m, tea.Quit
		}
	case "up", "k":
		if m.currentScreen == screenBrowse && m.selectedIndex > 0 {
			m.selectedIndex--
			if m.selectedIndex < m.tableOffset {
				m.tableOffset = m.selectedIndex
			}
		}
	case "down", "j":
		if m.currentScreen == screenBrowse && m.selectedIndex < m.survey.Len()-1 {
			m.selectedIndex++
			if m.selectedIndex >= m.tableOffset+browsePageSize {
				m.tableOffset = m.selectedIndex - browsePageSize + 1
			}
		}
	case "pgup":
		if m.currentScreen == screenBrowse {
			m.tableOffset = max(0, m.tableOffset-browsePageSize)
			m.selectedIndex = max(m.selectedIndex-browsePageSize, m.tableOffset)
		}
	case "pgdown":
		if m.currentScreen == screenBrowse {
			maxOffset := max(0, m.survey.Len()-browsePageSize)
			m.tableOffset = min(maxOffset, m.tableOffset+browsePageSize)
			m.selectedIndex = min(m.selectedIndex+browsePageSize, m.survey.Len()-1)
		}
	case "backspace":
		if m.currentScreen == screenBrowse && len(m.input) > 0 {
			m.input = m.input[:len(m.input)-1]
		}
	case "enter":
		switch m.currentScreen {
		case screenWelcome:
			m.currentScreen = screenBrowse
		case screenBrowse:
			m.selectLine()
		case screenConfirm:
			m.confirmed = true
			return m, tea.Quit
		}
	default:
		if m.currentScreen == screenBrowse && len(msg.String()) == 1 {
			m.input += msg.String()
		}
	}

	return m, nil
}

// selectLine validates the typed line number, falling back to the
// highlighted row when nothing was typed. Invalid or out-of-range input
// keeps the operator on the browse screen with an error, re-prompting until
// corrected or aborted.
func (m *browseModel) selectLine() {
	var rec oui.SurveyRecord

	if m.input == "" {
		records := m.survey.Records()
		if len(records) == 0 {
			m.inputErr = "survey is empty"
			return
		}
		rec = records[m.selectedIndex]
	} else {
		n, err := parseLineNumber(m.input)
		if err != nil {
			m.inputErr = err.Error()
			m.input = ""
			return
		}
		found, err := m.survey.ByLine(n)
		if err != nil {
			m.inputErr = fmt.Sprintf("no survey entry at line %d", n)
			m.input = ""
			return
		}
		rec = found
	}

	m.inputErr = ""
	m.chosen = rec
	m.address = hwaddr.Assemble(rec.OUI, m.rng)
	m.confirmView.SetSelection(views.Selection{
		Interface:  m.ifaceName,
		CurrentMAC: m.currentMAC,
		Record:     rec,
		Address:    m.address,
	})
	m.currentScreen = screenConfirm
}

// parseLineNumber accepts only positive integers.
func parseLineNumber(s string) (int, error) {
	n, err := strconv.Atoi(strings.TrimSpace(s))
	if err != nil || n < 1 {
		return 0, fmt.Errorf("%q is not a positive line number", s)
	}
	return n, nil
}

// View implements tea.Model
func (m *browseModel) View() string {
	switch m.currentScreen {
	case screenWelcome:
		m.welcomeView.SetDimensions(m.width, m.height)
		m.welcomeView.SetFrame(m.frame)
		m.welcomeView.SetInterface(m.ifaceName)
		return m.welcomeView.Render()
	case screenBrowse:
		m.browseView.SetDimensions(m.width, m.height)
		m.browseView.SetRecords(m.survey.Records())
		m.browseView.SetSelectedIndex(m.selectedIndex)
		m.browseView.SetTableOffset(m.tableOffset)
		m.browseView.SetInput(m.input)
		m.browseView.SetError(m.inputErr)
		return m.browseView.Render()
	case screenConfirm:
		m.confirmView.SetDimensions(m.width, m.height)
		return m.confirmView.Render()
	default:
		return "Unknown screen"
	}
}

// Helper functions
func max(a, b int) int {
	if a > b {
		return a
	}
	return b
}

func min(a, b int) int {
	if a < b {
		return a
	}
	return b
}
