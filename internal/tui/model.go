// Package tui provides the Bubble Tea roster tracker interface.
package tui

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/cursor"
	"github.com/charmbracelet/bubbles/textinput"
	"github.com/charmbracelet/bubbles/viewport"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/verte-zerg/gridiron/internal/logger"
	"github.com/verte-zerg/gridiron/internal/model"
	"github.com/verte-zerg/gridiron/internal/session"
)

var (
	activeNavStyle = lipgloss.NewStyle().
			Foreground(lipgloss.Color("#F0F0F0")).
			Bold(true).
			Padding(0, 1).
			Border(lipgloss.RoundedBorder(), true).
			BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveNavStyle = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
	headerStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	positionStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A")).Bold(true)
	selectedStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
)

// Model implements the Bubble Tea tracker UI.
type Model struct {
	sess *session.Session
	log  *logger.Logger

	activeTab int
	viewport  viewport.Model

	width  int
	height int

	rows   []trackerRow
	cursor int
	offset int

	editing   bool
	nameInput textinput.Model

	activity string
	errMsg   string
}

// NewModel constructs the tracker UI around a session.
func NewModel(sess *session.Session, log *logger.Logger) *Model {
	if log == nil {
		log = logger.Nop()
	}
	m := &Model{
		sess:     sess,
		log:      log,
		viewport: viewport.New(0, 0),
	}
	for i, v := range model.Views {
		if v == sess.View() {
			m.activeTab = i
		}
	}
	m.nameInput = textinput.New()
	m.nameInput.Prompt = "Name: "
	m.nameInput.Placeholder = "player name"
	m.nameInput.CharLimit = 64
	m.nameInput.Cursor.SetMode(cursor.CursorBlink)
	m.refresh()
	return m
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.updateLayout()
		return m, nil
	case tea.KeyMsg:
		if msg.Type == tea.KeyCtrlC {
			return m, tea.Quit
		}
		if m.editing {
			return m.updateNameInput(msg)
		}
		switch msg.String() {
		case "q":
			return m, tea.Quit
		case "left", "h":
			m.moveTab(-1)
			return m, nil
		case "right", "l":
			m.moveTab(1)
			return m, nil
		case "1", "2", "3", "4", "5", "6":
			m.selectTab(int(msg.Runes[0] - '1'))
			return m, nil
		}
		if m.currentView() == model.ViewTracker {
			return m.updateTracker(msg)
		}
		var cmd tea.Cmd
		m.viewport, cmd = m.viewport.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View implements tea.Model.
func (m *Model) View() string {
	if m.width == 0 || m.height == 0 {
		return ""
	}
	headerHeight, bodyHeight, footerHeight := m.layoutHeights()
	header := fitLines(m.renderTabs(), m.width, headerHeight)
	body := fitLines(m.renderBody(bodyHeight), m.width, bodyHeight)
	footer := fitLines(m.renderFooter(), m.width, footerHeight)
	return strings.Join([]string{header, body, footer}, "\n")
}

func (m *Model) currentView() model.View {
	return model.Views[m.activeTab]
}

func (m *Model) moveTab(delta int) {
	count := len(model.Views)
	next := m.activeTab + delta
	if next < 0 {
		next = count - 1
	}
	if next >= count {
		next = 0
	}
	m.selectTab(next)
}

func (m *Model) selectTab(idx int) {
	if idx < 0 || idx >= len(model.Views) {
		return
	}
	if m.apply(session.SelectView{View: model.Views[idx]}) {
		m.activeTab = idx
		m.viewport.GotoTop()
		m.updateLayout()
	}
}

func (m *Model) updateTracker(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	row, ok := m.selectedRow()
	if !ok {
		return m, nil
	}
	switch msg.String() {
	case "up", "k":
		if m.cursor > 0 {
			m.cursor--
		}
	case "down", "j":
		if m.cursor < len(m.rows)-1 {
			m.cursor++
		}
	case "g", "home":
		m.cursor = 0
	case "G", "end":
		m.cursor = len(m.rows) - 1
	case "a":
		if m.apply(session.AddPlayer{Position: row.pos}) {
			m.focus(trackerRow{pos: row.pos, index: m.sess.Roster().Len(row.pos) - 1})
		}
	case "x", "delete":
		if row.index < 0 {
			return m, nil
		}
		if m.apply(session.RemovePlayer{Position: row.pos, Index: row.index}) {
			next := trackerRow{pos: row.pos, index: row.index}
			if row.index >= m.sess.Roster().Len(row.pos) {
				next.index = row.index - 1
			}
			m.focus(next)
		}
	case "y", "Y", "t", "T":
		if row.index < 0 {
			return m, nil
		}
		m.cycleField(row, msg.String())
	case "enter":
		if row.index < 0 {
			return m, nil
		}
		p, err := m.sess.Roster().Player(row.pos, row.index)
		if err != nil {
			m.errMsg = err.Error()
			return m, nil
		}
		m.editing = true
		m.nameInput.SetValue(p.Name)
		m.nameInput.CursorEnd()
		return m, m.nameInput.Focus()
	}
	return m, nil
}

func (m *Model) cycleField(row trackerRow, key string) {
	p, err := m.sess.Roster().Player(row.pos, row.index)
	if err != nil {
		m.errMsg = err.Error()
		return
	}
	delta := 1
	if key == "Y" || key == "T" {
		delta = -1
	}
	ev := session.EditField{Position: row.pos, Index: row.index}
	if key == "y" || key == "Y" {
		ev.Field = model.FieldClassYear
		ev.Value = string(cycleYear(p.ClassYear, delta))
	} else {
		ev.Field = model.FieldDevelopmentTrait
		ev.Value = string(cycleTrait(p.DevelopmentTrait, delta))
	}
	m.apply(ev)
}

func (m *Model) updateNameInput(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.Type {
	case tea.KeyEsc:
		m.editing = false
		m.nameInput.Blur()
		return m, nil
	case tea.KeyEnter:
		m.editing = false
		m.nameInput.Blur()
		if row, ok := m.selectedRow(); ok && row.index >= 0 {
			m.apply(session.EditField{
				Position: row.pos,
				Index:    row.index,
				Field:    model.FieldName,
				Value:    strings.TrimSpace(m.nameInput.Value()),
			})
		}
		return m, nil
	}
	var cmd tea.Cmd
	m.nameInput, cmd = m.nameInput.Update(msg)
	return m, cmd
}

// apply runs ev against the session and refreshes derived state. It reports
// whether the event succeeded.
func (m *Model) apply(ev session.Event) bool {
	err := m.sess.Apply(context.Background(), ev)
	if err != nil {
		m.errMsg = err.Error()
	} else {
		m.errMsg = ""
	}
	m.refresh()
	return err == nil
}

func (m *Model) refresh() {
	selected, hadSelection := m.selectedRow()
	m.rows = buildTrackerRows(m.sess.Roster())
	if hadSelection {
		m.focus(selected)
	}
	if m.cursor >= len(m.rows) {
		m.cursor = len(m.rows) - 1
	}
	m.activity = m.sess.LastActivity(context.Background())
	m.updateLayout()
}

func (m *Model) focus(target trackerRow) {
	if idx := rowIndex(m.rows, target); idx >= 0 {
		m.cursor = idx
		return
	}
	if idx := rowIndex(m.rows, trackerRow{pos: target.pos, index: -1}); idx >= 0 {
		m.cursor = idx
	}
}

func (m *Model) selectedRow() (trackerRow, bool) {
	if m.cursor < 0 || m.cursor >= len(m.rows) {
		return trackerRow{}, false
	}
	return m.rows[m.cursor], true
}

func (m *Model) renderViewport() {
	view := m.currentView()
	if view == model.ViewTracker {
		return
	}
	content, err := session.RenderView(m.sess.Roster(), view)
	if err != nil {
		m.log.Error("failed to render view", "view", view, "error", err)
		content = "Failed to render view."
	}
	m.viewport.SetContent(strings.TrimRight(content, "\n"))
}

func (m *Model) layoutHeights() (headerHeight, bodyHeight, footerHeight int) {
	headerHeight = lipgloss.Height(m.renderTabs())
	footerHeight = 1
	if m.errMsg != "" || m.activity != "" {
		footerHeight++
	}
	if m.editing {
		footerHeight++
	}
	bodyHeight = m.height - headerHeight - footerHeight
	if bodyHeight < 1 {
		bodyHeight = 1
	}
	return headerHeight, bodyHeight, footerHeight
}

func (m *Model) updateLayout() {
	if m.width <= 0 || m.height <= 0 {
		return
	}
	_, bodyHeight, _ := m.layoutHeights()
	m.viewport.Width = m.width
	m.viewport.Height = bodyHeight
	m.nameInput.Width = maxInt(10, m.width-lipgloss.Width(m.nameInput.Prompt)-2)
	m.renderViewport()
}

func (m *Model) renderTabs() string {
	parts := make([]string, 0, len(model.Views))
	for i, v := range model.Views {
		label := fmt.Sprintf("%d %s", i+1, v.Title())
		if i == m.activeTab {
			parts = append(parts, activeNavStyle.Render(label))
		} else {
			parts = append(parts, inactiveNavStyle.Render(label))
		}
	}
	return lipgloss.JoinHorizontal(lipgloss.Top, parts...)
}

func (m *Model) renderBody(height int) string {
	if m.currentView() != model.ViewTracker {
		return m.viewport.View()
	}
	lines := renderTrackerLines(m.sess.Roster(), m.rows, m.cursor)
	start, end := visibleWindow(len(lines), m.cursor, height, m.offset)
	m.offset = start
	return strings.Join(lines[start:end], "\n")
}

func (m *Model) renderFooter() string {
	lines := []string{}
	if m.editing {
		lines = append(lines, m.nameInput.View())
	}
	switch {
	case m.errMsg != "":
		lines = append(lines, errorStyle.Render(m.errMsg))
	case m.activity != "":
		lines = append(lines, headerStyle.Render("Last: "+m.activity))
	}
	lines = append(lines, m.renderHelp())
	return strings.Join(lines, "\n")
}

func (m *Model) renderHelp() string {
	if m.editing {
		return headerStyle.Render("enter: save  esc: cancel")
	}
	if m.currentView() == model.ViewTracker {
		return headerStyle.Render("Nav: up/down  Add: a  Remove: x  Name: enter  Year: y/Y  Trait: t/T  Tabs: left/right 1-6  Quit: q")
	}
	return headerStyle.Render("Tabs: left/right 1-6  Scroll: up/down/pgup/pgdn  Quit: q")
}

func fitLines(s string, width, height int) string {
	lines := strings.Split(s, "\n")
	if len(lines) > height {
		lines = lines[:height]
	}
	for len(lines) < height {
		lines = append(lines, "")
	}
	for i, line := range lines {
		if lipgloss.Width(line) < width {
			lines[i] = line + strings.Repeat(" ", width-lipgloss.Width(line))
		}
	}
	return strings.Join(lines, "\n")
}

func maxInt(a, b int) int {
	if a > b {
		return a
	}
	return b
}
