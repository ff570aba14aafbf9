// Package prompt runs a single relative range selector as an interactive
// prompt: the user picks a range, submits it, and the caller reads Result.
package prompt

import (
	"context"
	"fmt"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	zone "github.com/lrstanley/bubblezone"

	"github.com/zjrosen/formkit/internal/config"
	"github.com/zjrosen/formkit/internal/daterange"
	"github.com/zjrosen/formkit/internal/i18n"
	"github.com/zjrosen/formkit/internal/keys"
	"github.com/zjrosen/formkit/internal/log"
	"github.com/zjrosen/formkit/internal/pubsub"
	"github.com/zjrosen/formkit/internal/ui/panes"
	"github.com/zjrosen/formkit/internal/ui/relativerange"
	"github.com/zjrosen/formkit/internal/ui/styles"
	"github.com/zjrosen/formkit/internal/watcher"
)

const defaultWidth = 64

// BuildFunc turns a loaded configuration into selector settings. The command
// layer supplies it so flag overrides survive a reload.
type BuildFunc func(cfg config.Config) (relativerange.Config, error)

// Config configures a prompt.
type Config struct {
	Selector relativerange.Config

	// ConfigPath, Build and Watcher enable hot reload. All three are optional;
	// without a watcher the prompt never reloads.
	ConfigPath string
	Build      BuildFunc
	Watcher    *watcher.Watcher
}

// Model is the prompt state.
type Model struct {
	config   Config
	selector relativerange.Model
	help     help.Model

	initCmd  tea.Cmd
	ctx      context.Context
	cancel   context.CancelFunc
	listener *pubsub.ContinuousListener[watcher.WatcherEvent]

	status    string
	statusErr bool
	changes   int

	width     int
	submitted bool
	cancelled bool
}

// New creates a prompt with keyboard focus on the first control.
func New(cfg Config) Model {
	m := Model{
		config: cfg,
		help:   help.New(),
		width:  defaultWidth,
	}
	m.ctx, m.cancel = context.WithCancel(context.Background())
	if cfg.Watcher != nil {
		m.listener = pubsub.NewContinuousListener(m.ctx, cfg.Watcher.Broker())
	}
	m.mount(cfg.Selector)
	return m
}

func (m *Model) mount(cfg relativerange.Config) {
	m.selector = relativerange.New(cfg)
	m.initCmd = m.selector.FocusFirst()
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.Batch(m.initCmd, m.listener.Listen())
}

// Result returns the submitted value. ok is false when the prompt was
// cancelled or is still running.
func (m Model) Result() (daterange.RelativeValue, bool) {
	if !m.submitted {
		return daterange.RelativeValue{}, false
	}
	return m.selector.Value(), true
}

// Cancelled reports whether the user dismissed the prompt.
func (m Model) Cancelled() bool { return m.cancelled }

// Value returns the selector's current value.
func (m Model) Value() daterange.RelativeValue { return m.selector.Value() }

// Update implements tea.Model.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = min(msg.Width, defaultWidth*2)
		m.help.Width = m.width - 4
		return m, nil

	case tea.KeyMsg:
		switch {
		case key.Matches(msg, keys.Common.Quit):
			return m.finish(false)
		case key.Matches(msg, keys.Component.Save):
			return m.finish(true)
		case key.Matches(msg, keys.Common.Escape) && !m.selector.Capturing():
			return m.finish(false)
		case key.Matches(msg, keys.Common.Help):
			m.help.ShowAll = !m.help.ShowAll
			return m, nil
		case key.Matches(msg, keys.Component.Focus):
			return m, m.selector.Focus()
		}

	case relativerange.ChangeMsg:
		m.changes++
		m.status = ""
		log.Debug(log.CatMode, "Prompt value changed", "value", msg.Value.String(), "changes", m.changes)
		return m, nil

	case pubsub.Event[watcher.WatcherEvent]:
		switch msg.Payload.Type {
		case watcher.ConfigChanged:
			m.reload()
		case watcher.WatcherError:
			log.Warn(log.CatWatcher, "Watcher error received", "error", msg.Payload.Error)
		}
		return m, tea.Batch(m.initCmd, m.listener.Listen())
	}

	var cmd tea.Cmd
	m.selector, cmd = m.selector.Update(msg)
	return m, cmd
}

// reload re-reads the config file and re-mounts the selector seeded with the
// value it currently shows. A broken file keeps the current selector.
func (m *Model) reload() {
	m.initCmd = nil
	if m.config.Build == nil || m.config.ConfigPath == "" {
		return
	}

	cfg, err := config.Load(m.config.ConfigPath)
	if err == nil {
		var selCfg relativerange.Config
		selCfg, err = m.config.Build(cfg)
		if err == nil {
			current := m.selector.Value()
			selCfg.InitialSelection = &current
			m.config.Selector = selCfg
			m.mount(selCfg)
			m.status, m.statusErr = "config reloaded", false
			log.Info(log.CatConfig, "Reloaded config", "path", m.config.ConfigPath, "value", current.String())
			return
		}
	}

	m.status, m.statusErr = fmt.Sprintf("config not reloaded: %v", err), true
	log.ErrorErr(log.CatConfig, "Failed to reload config", err, "path", m.config.ConfigPath)
}

func (m Model) finish(submit bool) (tea.Model, tea.Cmd) {
	m.submitted = submit
	m.cancelled = !submit
	m.cancel()
	log.Info(log.CatMode, "Prompt finished", "submitted", submit, "value", m.selector.Value().String())
	return m, tea.Quit
}

// View implements tea.Model.
func (m Model) View() string {
	if m.submitted || m.cancelled {
		return ""
	}

	format := m.config.Selector.Strings.FormatRelativeRange
	if format == nil {
		format = i18n.English().FormatRelativeRange
	}
	title := "formkit"
	if v := m.selector.Value(); !v.Amount.IsEmpty() {
		title = format(v)
	}

	sections := []string{m.selector.View(), ""}
	if m.status != "" {
		style := styles.MutedStyle
		if m.statusErr {
			style = styles.ErrorStyle
		}
		sections = append(sections, style.Render(m.status))
	}
	sections = append(sections, m.help.View(keys.PromptKeyMap{}))

	frame := panes.BorderedPane(panes.BorderConfig{
		Content:            lipgloss.NewStyle().Padding(0, 1).Render(lipgloss.JoinVertical(lipgloss.Left, sections...)),
		Width:              m.width,
		TopLeft:            title,
		Focused:            m.selector.Focused(),
		FocusedBorderColor: styles.BorderHighlightFocusColor,
	})
	return zone.Scan(frame)
}

// SelectorConfig derives selector settings from a validated configuration.
func SelectorConfig(cfg config.Config) (relativerange.Config, error) {
	s, err := i18n.Lookup(cfg.Lang)
	if err != nil {
		return relativerange.Config{}, err
	}

	opts := cfg.Options()
	initial, err := cfg.InitialSelection(opts)
	if err != nil {
		return relativerange.Config{}, err
	}

	return relativerange.Config{
		DateOnly:         cfg.Form.DateOnly,
		SingleGrid:       cfg.Form.SingleGrid,
		Options:          opts,
		InitialSelection: initial,
		Strings:          s,
	}, nil
}
