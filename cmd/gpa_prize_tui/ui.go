package main

import (
	"fmt"
	"os"
	"strings"

	"github.com/charmbracelet/bubbles/filepicker"
	"github.com/charmbracelet/bubbles/spinner"
	"github.com/charmbracelet/bubbles/table"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/scims/gpa_prize_tui/internal/prize"
	"github.com/scims/gpa_prize_tui/internal/roster"
	"github.com/scims/gpa_prize_tui/internal/source"
)

const (
	WHITE       = lipgloss.Color("#FFFFFF")
	BLUE        = lipgloss.Color("#0043a8")
	GREY        = lipgloss.Color("#626262")
	LIGHT_GREEN = lipgloss.Color("#B9FBC0")
	RED         = lipgloss.Color("#FF5555")
	YELLOW      = lipgloss.Color("#F1FA8C")
	LIGHT_BLUE  = lipgloss.Color("#8BE9FD")
	TURQUOISE   = lipgloss.Color("#98F5E1")
	SILVER      = lipgloss.Color("#A9B2D8")
)

type ViewType int

const (
	ChooseView ViewType = iota
	PickView
	LoadingView
	ReportView
)

type RosterLoadedMsg struct {
	Result source.Result
}

type LoadingState struct {
	Reason     string
	HelpText   string
	BottomText string
}

const (
	optionSample = iota
	optionFile
)

type model struct {
	width        int
	height       int
	currentView  ViewType
	option       int
	spinner      spinner.Model
	filepicker   filepicker.Model
	loadingState LoadingState

	picker       prize.Picker
	notice       string
	winners      []roster.Student
	alphabetical []roster.Student
	eligible     int
	table        table.Model
}

func NewModel() model {
	s := spinner.New()
	s.Style = lipgloss.NewStyle().Foreground(BLUE)
	s.Spinner = spinner.Points

	fp := filepicker.New()
	fp.AllowedTypes = []string{".csv", ".txt", ".html", ".htm"}
	if wd, err := os.Getwd(); err == nil {
		fp.CurrentDirectory = wd
	}

	return model{
		currentView: ChooseView,
		option:      optionSample,
		spinner:     s,
		filepicker:  fp,
		picker:      prize.NewPicker(),
	}
}

func (m model) Init() tea.Cmd {
	return m.spinner.Tick
}

func loadRoster(choice source.Choice, picker source.Picker) tea.Cmd {
	return func() tea.Msg {
		return RosterLoadedMsg{Result: source.Resolve(choice, picker)}
	}
}

func (m model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	var cmd tea.Cmd

	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.filepicker.Height = max(msg.Height-8, 5)

	case spinner.TickMsg:
		m.spinner, cmd = m.spinner.Update(msg)
		return m, cmd

	case RosterLoadedMsg:
		m.notice = msg.Result.Notice
		m.winners = m.picker.TopRecipients(msg.Result.Students)
		m.alphabetical = m.picker.Alphabetical(msg.Result.Students)
		m.eligible = m.picker.CountEligible(msg.Result.Students)
		m.table = m.initWinnersTable(m.winners)
		m.currentView = ReportView

	case tea.KeyMsg:
		return m.handleKeyPress(msg)

	default:
		if m.currentView == PickView {
			m.filepicker, cmd = m.filepicker.Update(msg)
			return m, cmd
		}
	}

	return m, nil
}

func (m model) handleKeyPress(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch m.currentView {
	case ChooseView:
		return m.handleChooseKeys(msg)
	case PickView:
		return m.handlePickKeys(msg)
	case LoadingView:
		return m.handleLoadingKeys(msg)
	case ReportView:
		return m.handleReportKeys(msg)
	default:
		return m, nil
	}
}

func (m model) handleChooseKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit

	case "up", "k", "down", "j", "tab":
		m.option = (m.option + 1) % 2

	case "1":
		m.option = optionSample
		return m.confirmChoice()

	case "2":
		m.option = optionFile
		return m.confirmChoice()

	case "enter", " ":
		return m.confirmChoice()
	}
	return m, nil
}

func (m model) confirmChoice() (tea.Model, tea.Cmd) {
	if m.option == optionFile {
		m.currentView = PickView
		return m, m.filepicker.Init()
	}

	m.setLoadingState("🎓 Loading built-in sample", "Building the prize queue", "• Q: Cancel and quit")
	m.currentView = LoadingView
	return m, tea.Batch(
		m.spinner.Tick,
		loadRoster(source.BuiltinSample, nil),
	)
}

func (m model) handlePickKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c":
		return m, tea.Quit

	case "esc":
		// Cancelled selection falls back to the built-in sample.
		m.setLoadingState("🎓 Loading built-in sample", "File selection cancelled", "• Q: Cancel and quit")
		m.currentView = LoadingView
		return m, tea.Batch(
			m.spinner.Tick,
			loadRoster(source.ExternalFile, source.PathPicker("")),
		)
	}

	var cmd tea.Cmd
	m.filepicker, cmd = m.filepicker.Update(msg)

	if ok, path := m.filepicker.DidSelectFile(msg); ok {
		m.setLoadingState("📄 Loading roster file", fmt.Sprintf("Reading %s", path), "• Q: Cancel and quit")
		m.currentView = LoadingView
		return m, tea.Batch(
			m.spinner.Tick,
			loadRoster(source.ExternalFile, source.PathPicker(path)),
		)
	}

	return m, cmd
}

func (m model) handleLoadingKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q":
		return m, tea.Quit
	}
	return m, nil
}

func (m model) handleReportKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "q", "enter":
		return m, tea.Quit

	case "r":
		m.notice = ""
		m.winners = nil
		m.alphabetical = nil
		m.eligible = 0
		m.currentView = ChooseView

	case "up", "k", "down", "j":
		var cmd tea.Cmd
		m.table, cmd = m.table.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *model) setLoadingState(reason, helpText, bottomText string) {
	m.loadingState = LoadingState{
		Reason:     reason,
		HelpText:   helpText,
		BottomText: bottomText,
	}
}

func (m model) View() string {
	switch m.currentView {
	case ChooseView:
		return m.renderChoose()
	case PickView:
		return m.renderPick()
	case LoadingView:
		return m.renderLoading()
	case ReportView:
		return m.renderReport()
	default:
		return "Unknown view"
	}
}

func (m model) renderChoose() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(LIGHT_BLUE).
		MarginBottom(2)

	selectedStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(WHITE).
		Background(BLUE).
		Padding(0, 1)

	normalStyle := lipgloss.NewStyle().
		Foreground(SILVER).
		Padding(0, 1)

	helpStyle := lipgloss.NewStyle().
		Foreground(GREY).
		MarginTop(1)

	title := titleStyle.Render("SCIMS $1000 Prize - GPA Priority Queue")

	options := []string{
		"1) Built-in sample (hardcoded)",
		"2) Pick a CSV/TXT/HTML roster file",
	}

	var optionList []string
	for i, option := range options {
		if i == m.option {
			optionList = append(optionList, selectedStyle.Render(fmt.Sprintf("→ %s", option)))
		} else {
			optionList = append(optionList, normalStyle.Render(fmt.Sprintf("  %s", option)))
		}
	}

	helpText := helpStyle.Render("• ↑/↓: Navigate • 1/2: Direct select • Enter: Confirm • Ctrl+C/Q: Quit")

	content := lipgloss.JoinVertical(lipgloss.Center,
		title,
		strings.Join(optionList, "\n"),
		helpText,
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m model) renderPick() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(LIGHT_BLUE).
		MarginBottom(1)

	helpStyle := lipgloss.NewStyle().
		Foreground(GREY).
		MarginTop(1)

	title := titleStyle.Render("Select students CSV/TXT/HTML (name,gpa)")
	helpText := helpStyle.Render("• ↑/↓: Navigate • Enter: Select • Esc: Cancel (use sample) • Ctrl+C: Quit")

	content := lipgloss.JoinVertical(lipgloss.Left,
		title,
		m.filepicker.View(),
		helpText,
	)

	return lipgloss.NewStyle().Padding(1, 2).Render(content)
}

func (m model) renderLoading() string {
	reasonStyle := lipgloss.NewStyle().
		Foreground(WHITE).
		Bold(true).
		MarginBottom(1)

	helpStyle := lipgloss.NewStyle().
		Foreground(GREY).
		MarginTop(1)

	quitStyle := lipgloss.NewStyle().
		Foreground(GREY).
		MarginTop(1)

	content := lipgloss.JoinVertical(lipgloss.Center,
		reasonStyle.Render(m.loadingState.Reason),
		m.spinner.View(),
		helpStyle.Render(m.loadingState.HelpText),
		quitStyle.Render(m.loadingState.BottomText),
	)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m model) renderReport() string {
	titleStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(LIGHT_BLUE).
		MarginBottom(1)

	noticeStyle := lipgloss.NewStyle().
		Foreground(YELLOW).
		MarginBottom(1)

	sectionStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(TURQUOISE).
		MarginTop(1)

	nameStyle := lipgloss.NewStyle().
		Foreground(SILVER)

	summaryStyle := lipgloss.NewStyle().
		Bold(true).
		Foreground(LIGHT_GREEN).
		MarginTop(1)

	helpStyle := lipgloss.NewStyle().
		Foreground(GREY).
		MarginTop(1)

	title := titleStyle.Render(fmt.Sprintf("🎓 Top GPA Students (up to %d, GPA > %.2f)",
		m.picker.MaxRecipients, m.picker.Threshold))

	sections := []string{title}

	if m.notice != "" {
		sections = append(sections, noticeStyle.Render(m.notice))
	}

	if len(m.winners) == 0 {
		noneStyle := lipgloss.NewStyle().Foreground(RED)
		sections = append(sections, noneStyle.Render("No eligible students."))
	} else {
		sections = append(sections, m.table.View())
	}

	var alphaList []string
	for _, s := range m.alphabetical {
		alphaList = append(alphaList, nameStyle.Render(s.String()))
	}
	if len(alphaList) > 0 {
		sections = append(sections,
			sectionStyle.Render("📜 Eligible Students (Alphabetical):"),
			strings.Join(alphaList, "\n"),
		)
	}

	sections = append(sections,
		summaryStyle.Render(fmt.Sprintf("Total eligible (GPA > %.2f): %d", m.picker.Threshold, m.eligible)),
		helpStyle.Render("• ↑/↓: Scroll winners • R: Start over • Enter/Q: Quit"),
	)

	content := lipgloss.JoinVertical(lipgloss.Center, sections...)

	return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, content)
}

func (m model) initWinnersTable(winners []roster.Student) table.Model {
	columns := []table.Column{
		{Title: "#", Width: 3},
		{Title: "Name", Width: 24},
		{Title: "GPA", Width: 6},
	}

	var rows []table.Row
	for i, s := range winners {
		rows = append(rows, table.Row{
			fmt.Sprintf("%d", i+1),
			s.Name,
			fmt.Sprintf("%.2f", s.GPA),
		})
	}

	tableHeight := min(max(len(rows)+1, 3), 10)

	tbl := table.New(
		table.WithColumns(columns),
		table.WithRows(rows),
		table.WithHeight(tableHeight),
		table.WithFocused(true),
	)

	s := table.DefaultStyles()
	s.Header = s.Header.
		BorderStyle(lipgloss.NormalBorder()).
		BorderForeground(BLUE).
		BorderBottom(true).
		Bold(true)
	s.Selected = s.Selected.
		Foreground(WHITE).
		Background(BLUE).
		Bold(true)
	tbl.SetStyles(s)

	return tbl
}
