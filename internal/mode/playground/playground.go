// Package playground provides a component showcase and theme token viewer.
package playground

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/formkit/internal/keys"
	"github.com/zjrosen/formkit/internal/log"
	"github.com/zjrosen/formkit/internal/pubsub"
	"github.com/zjrosen/formkit/internal/ui/panes"
	"github.com/zjrosen/formkit/internal/ui/styles"
)

// FocusPane represents which pane has focus.
type FocusPane int

const (
	// FocusSidebar means the sidebar has focus.
	FocusSidebar FocusPane = iota
	// FocusDemo means the demo area has focus.
	FocusDemo
)

const (
	maxLogLines = 50
	logHeight   = 8
)

// Model holds the playground state.
type Model struct {
	// View state
	focus         FocusPane
	selectedIndex int
	lastAction    string
	logLines      []string

	// Components
	demos          []ComponentDemo
	demoModel      DemoModel
	demoModelIndex int // tracks which demo is currently loaded

	// Widget changes arrive on changes; log entries on the logger's broker.
	changes        *pubsub.Broker[string]
	changeListener *pubsub.ContinuousListener[string]
	logListener    *log.LogListener
	cancel         context.CancelFunc

	// Dimensions
	width    int
	height   int
	quitting bool
}

// New creates a new playground model.
func New() Model {
	ctx, cancel := context.WithCancel(context.Background())
	changes := pubsub.NewBroker[string]()

	return Model{
		focus:          FocusSidebar,
		demos:          GetComponentDemos(),
		demoModelIndex: -1, // no demo loaded yet
		changes:        changes,
		changeListener: pubsub.NewContinuousListener(ctx, changes),
		logListener:    log.NewListener(ctx),
		cancel:         cancel,
		width:          100,
		height:         30,
	}
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.changeListener.Listen(), m.logListener.Listen())
}

// LastAction returns the most recent widget change shown under the demo.
func (m Model) LastAction() string { return m.lastAction }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		if m.demoModel != nil {
			m.demoModel = m.demoModel.SetSize(m.getDemoAreaDimensions())
		}
		return m, nil

	case pubsub.Event[string]:
		switch msg.Type {
		case pubsub.ChangedEvent:
			m.lastAction = msg.Payload
			return m, m.changeListener.Listen()
		case pubsub.LoggedEvent:
			m.logLines = append(m.logLines, strings.TrimRight(msg.Payload, "\n"))
			if over := len(m.logLines) - maxLogLines; over > 0 {
				m.logLines = m.logLines[over:]
			}
			return m, m.logListener.Listen()
		}
		return m, nil

	case tea.KeyMsg:
		return m.handleKeyMsg(msg)

	case tea.MouseMsg:
		if m.demoModel != nil {
			var cmd tea.Cmd
			m.demoModel, cmd = m.demoModel.Update(msg)
			return m, cmd
		}
		return m, nil
	}

	// Cursor blinks and other ticks belong to the demo
	if m.demoModel != nil {
		var cmd tea.Cmd
		m.demoModel, cmd = m.demoModel.Update(msg)
		return m, cmd
	}
	return m, nil
}

// handleKeyMsg handles keyboard input.
func (m Model) handleKeyMsg(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Common.Quit):
		m.quitting = true
		m.cancel()
		return m, tea.Quit

	case key.Matches(msg, keys.Playground.SwitchPane):
		if m.focus == FocusSidebar {
			return m, m.focusDemo()
		}
		m.focusSidebar()
		return m, nil

	case key.Matches(msg, keys.Playground.Reset) && m.demoModel != nil:
		m.demoModel = m.demoModel.Reset()
		m.lastAction = "Reset: " + m.demos[m.selectedIndex].Name
		if m.focus == FocusDemo {
			return m, m.demoModel.Activate()
		}
		return m, nil
	}

	if m.focus == FocusSidebar {
		return m.handleSidebarKeys(msg)
	}
	return m.handleDemoKeys(msg)
}

// ensureDemoLoaded loads the demo for the current selection if not already loaded.
func (m *Model) ensureDemoLoaded() {
	if m.demoModelIndex != m.selectedIndex && m.selectedIndex < len(m.demos) {
		w, h := m.getDemoAreaDimensions()
		m.demoModel = m.demos[m.selectedIndex].Create(m.changes, w, h)
		m.demoModelIndex = m.selectedIndex
		log.Debug(log.CatMode, "Loaded demo", "name", m.demos[m.selectedIndex].Name)
	}
}

func (m *Model) focusDemo() tea.Cmd {
	m.ensureDemoLoaded()
	m.focus = FocusDemo
	return m.demoModel.Activate()
}

func (m *Model) focusSidebar() {
	if m.demoModel != nil {
		m.demoModel.Focusable().Blur()
	}
	m.focus = FocusSidebar
}

// handleSidebarKeys handles keys when sidebar is focused.
func (m Model) handleSidebarKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, keys.Common.Down):
		m.selectedIndex++
		if m.selectedIndex >= len(m.demos) {
			m.selectedIndex = 0 // Wrap to top
		}
		m.ensureDemoLoaded()
	case key.Matches(msg, keys.Common.Up):
		m.selectedIndex--
		if m.selectedIndex < 0 {
			m.selectedIndex = len(m.demos) - 1 // Wrap to bottom
		}
		m.ensureDemoLoaded()
	case key.Matches(msg, keys.Common.Enter), key.Matches(msg, keys.Common.Right):
		return m, m.focusDemo()
	}
	return m, nil
}

// handleDemoKeys handles keys when demo area is focused.
func (m Model) handleDemoKeys(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	// Esc returns focus to sidebar unless the demo needs it, e.g. an open select
	if key.Matches(msg, keys.Common.Escape) && !m.demoModel.NeedsEscKey() {
		m.focusSidebar()
		return m, nil
	}

	// The imperative focus handle, as a parent form would call it
	if key.Matches(msg, keys.Component.Focus) {
		f := m.demoModel.Focusable()
		cmd := f.Focus()
		m.lastAction = "Focus() called, focused=" + boolString(f.Focused())
		return m, cmd
	}

	var cmd tea.Cmd
	m.demoModel, cmd = m.demoModel.Update(msg)
	return m, cmd
}

func boolString(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// getDemoAreaDimensions calculates the demo area dimensions.
func (m Model) getDemoAreaDimensions() (int, int) {
	demoWidth := m.width - m.getSidebarWidth() - 2 - 4 // gap and borders
	demoHeight := m.height - logHeight - 6             // log pane, header and footer
	return max(demoWidth, 20), max(demoHeight, 10)
}

// getSidebarWidth returns the sidebar width (30% of total, min 20, max 30).
func (m Model) getSidebarWidth() int {
	w := m.width * 30 / 100
	return max(min(w, 30), 20)
}

// View implements tea.Model.
func (m Model) View() string {
	if m.quitting {
		return ""
	}
	return zone.Scan((&m).renderComponentListView())
}

// renderComponentListView renders the sidebar, the demo area with the log
// feed under it, and the footer.
func (m *Model) renderComponentListView() string {
	m.ensureDemoLoaded()

	sidebarWidth := m.getSidebarWidth()
	gap := 2
	demoWidth := m.width - sidebarWidth - gap
	contentHeight := m.height - 3

	sidebar := panes.BorderedPane(panes.BorderConfig{
		Content:            renderSidebar(m.demos, m.selectedIndex, sidebarWidth-2),
		Width:              sidebarWidth,
		Height:             contentHeight,
		TopLeft:            "Components",
		Focused:            m.focus == FocusSidebar,
		FocusedBorderColor: styles.BorderHighlightFocusColor,
	})

	var demoName string
	if m.selectedIndex < len(m.demos) {
		demoName = m.demos[m.selectedIndex].Name
	}
	demoArea := panes.BorderedPane(panes.BorderConfig{
		Content:            renderDemoArea(m.demoModel, m.lastAction),
		Width:              demoWidth,
		Height:             contentHeight - logHeight,
		TopLeft:            demoName,
		Focused:            m.focus == FocusDemo,
		FocusedBorderColor: styles.BorderHighlightFocusColor,
	})

	logPane := panes.BorderedPane(panes.BorderConfig{
		Content: renderLog(m.logLines, logHeight-2),
		Width:   demoWidth,
		Height:  logHeight,
		TopLeft: "Log",
	})

	right := lipgloss.JoinVertical(lipgloss.Left, demoArea, logPane)
	mainContent := lipgloss.JoinHorizontal(lipgloss.Top, sidebar, strings.Repeat(" ", gap), right)

	footerStyle := lipgloss.NewStyle().Foreground(styles.TextMutedColor).Width(m.width)
	footerParts := []string{"Ctrl+O: Switch panes", "Ctrl+F: Focus()"}
	if m.demoModel != nil {
		footerParts = append(footerParts, "Ctrl+R: Reset")
	}
	footerParts = append(footerParts, "Ctrl+C: Quit")
	footer := footerStyle.Render(strings.Join(footerParts, "  │  "))

	return mainContent + "\n" + footer
}

// renderDemoArea renders the demo with the last action line under it.
func renderDemoArea(demo DemoModel, lastAction string) string {
	if demo == nil {
		return ""
	}
	action := lastAction
	if action == "" {
		action = "(none)"
	}
	return demo.View() + "\n\n" + styles.MutedStyle.Render("Last action: "+action)
}

// renderLog renders the newest lines that fit in height.
func renderLog(lines []string, height int) string {
	if len(lines) == 0 {
		return styles.MutedStyle.Render("no log entries")
	}
	if len(lines) > height {
		lines = lines[len(lines)-height:]
	}
	return styles.MutedStyle.Render(strings.Join(lines, "\n"))
}
