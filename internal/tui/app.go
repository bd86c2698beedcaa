// Package tui contains the Bubble Tea user interface.
package tui

import (
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/atotto/clipboard"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"

	"github.com/asteroid-belt/ashsha/internal/config"
	"github.com/asteroid-belt/ashsha/internal/db"
	"github.com/asteroid-belt/ashsha/internal/favorites"
	"github.com/asteroid-belt/ashsha/internal/generator"
	"github.com/asteroid-belt/ashsha/internal/log"
	"github.com/asteroid-belt/ashsha/internal/models"
	"github.com/asteroid-belt/ashsha/internal/render"
	"github.com/asteroid-belt/ashsha/internal/telemetry"
	"github.com/asteroid-belt/ashsha/internal/tui/components"
	"github.com/asteroid-belt/ashsha/internal/tui/design"
	"github.com/asteroid-belt/ashsha/internal/tui/theme"
	"github.com/asteroid-belt/ashsha/pkg/colorhash"
	"github.com/asteroid-belt/ashsha/pkg/version"
)

// copiedFor is how long the "COPIED!" badge stays visible.
const copiedFor = 1500 * time.Millisecond

// historyShown is the number of history rows rendered below the swatch.
const historyShown = 10

// Focus identifies which part of the screen receives keys.
type Focus int

const (
	FocusInput Focus = iota
	FocusHistory
)

// HistorySource lists and forgets recorded derivations. *db.DB satisfies it.
type HistorySource interface {
	ListHistory(limit int) ([]models.HistoryEntry, error)
	ClearHistory() (int64, error)
	ClearCurrentState() error
}

// Model is the main Bubble Tea model for the TUI.
type Model struct {
	gen       *generator.Generator
	history   HistorySource
	favorites *favorites.Store
	cfg       *config.Config
	telemetry telemetry.Client
	keymap    Keymap
	styles    Styles

	input    textinput.Model
	debounce time.Duration
	seq      int

	result    *colorhash.Result
	saved     bool
	err       error
	showTrace bool

	entries []models.HistoryEntry
	cursor  int
	focus   Focus

	clearConfirm *components.ConfirmDialog

	copied  bool
	copySeq int
	copyFn  func(string) error

	// State
	width    int
	height   int
	ready    bool
	quitting bool

	// Session tracking
	sessionStart  time.Time
	colorsDerived int
}

// Message types for Bubble Tea
type (
	// previewTickMsg fires once the debounce interval after a keystroke ends.
	previewTickMsg struct{ seq int }

	copiedResetMsg struct{ seq int }

	restoredMsg struct {
		result *colorhash.Result
		err    error
	}

	generatedMsg struct {
		result *colorhash.Result
		err    error
	}

	historyLoadedMsg struct {
		entries []models.HistoryEntry
		err     error
	}

	historyClearedMsg struct {
		removed int64
		err     error
	}
)

// NewModel creates a new TUI model. history and favs may be nil.
func NewModel(gen *generator.Generator, history HistorySource, favs *favorites.Store, conf *config.Config, tc telemetry.Client) *Model {
	if conf == nil {
		conf = config.DefaultConfig()
	}
	if tc == nil {
		tc = telemetry.NewNoop()
	}
	theme.Set(conf.UI.Theme)

	ti := textinput.New()
	ti.Placeholder = "Type anything..."
	ti.Prompt = "› "
	ti.CharLimit = conf.Input.MaxBytes
	ti.Focus()

	return &Model{
		gen:          gen,
		history:      history,
		favorites:    favs,
		cfg:          conf,
		telemetry:    tc,
		keymap:       DefaultKeymap(),
		styles:       DefaultStyles(),
		input:        ti,
		debounce:     time.Duration(conf.UI.DebounceMs) * time.Millisecond,
		copyFn:       clipboard.WriteAll,
		sessionStart: time.Now(),
	}
}

// Init restores the last derivation and loads history.
func (m *Model) Init() tea.Cmd {
	return tea.Batch(
		textinput.Blink,
		m.restoreCmd(),
		m.loadHistoryCmd(),
	)
}

// Update handles incoming messages.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.ready = true
		m.input.Width = max(m.width-8, 10)
		return m, nil

	case tea.KeyMsg:
		return m.handleKey(msg)

	case previewTickMsg:
		if msg.seq != m.seq {
			return m, nil
		}
		m.preview()
		return m, nil

	case copiedResetMsg:
		if msg.seq == m.copySeq {
			m.copied = false
		}
		return m, nil

	case restoredMsg:
		if msg.err != nil {
			log.Errorf("restore state: %v", msg.err)
			return m, nil
		}
		if msg.result != nil && m.input.Value() == "" {
			m.result = msg.result
			m.saved = true
			m.input.SetValue(msg.result.Input)
			m.input.CursorEnd()
		}
		return m, nil

	case generatedMsg:
		m.err = msg.err
		if msg.result != nil {
			m.result = msg.result
		}
		if msg.err != nil {
			m.saved = false
			return m, nil
		}
		m.saved = true
		m.colorsDerived++
		return m, m.loadHistoryCmd()

	case historyLoadedMsg:
		if msg.err != nil {
			log.Errorf("load history: %v", msg.err)
			return m, nil
		}
		m.entries = msg.entries
		if m.cursor >= len(m.entries) {
			m.cursor = max(len(m.entries)-1, 0)
		}
		if len(m.entries) == 0 && m.focus == FocusHistory {
			m.setFocus(FocusInput)
		}
		return m, nil

	case historyClearedMsg:
		if msg.err != nil {
			m.err = msg.err
			return m, nil
		}
		m.telemetry.TrackHistoryCleared(int(msg.removed))
		m.saved = false
		return m, m.loadHistoryCmd()
	}

	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	return m, cmd
}

func (m *Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if m.clearConfirm != nil {
		done, confirmed := m.clearConfirm.HandleKey(msg)
		if !done {
			return m, nil
		}
		m.clearConfirm = nil
		if confirmed {
			return m, m.clearHistoryCmd()
		}
		return m, nil
	}

	switch {
	case key.Matches(msg, m.keymap.Quit):
		m.quitting = true
		m.trackSessionExit()
		return m, tea.Quit

	case key.Matches(msg, m.keymap.Copy):
		return m, m.copy()

	case key.Matches(msg, m.keymap.Trace):
		m.showTrace = !m.showTrace
		return m, nil

	case key.Matches(msg, m.keymap.Favorite):
		m.toggleFavorite()
		return m, nil

	case key.Matches(msg, m.keymap.Clear):
		if m.history != nil && len(m.entries) > 0 {
			m.clearConfirm = components.NewConfirmDialog(
				"Clear history?",
				fmt.Sprintf("Forget %d saved colors. Favorites are kept.", len(m.entries)),
			)
		}
		return m, nil

	case key.Matches(msg, m.keymap.Toggle):
		if m.focus == FocusInput && len(m.entries) > 0 {
			m.setFocus(FocusHistory)
		} else {
			m.setFocus(FocusInput)
		}
		return m, nil
	}

	if m.focus == FocusHistory {
		switch {
		case key.Matches(msg, m.keymap.Up):
			if m.cursor > 0 {
				m.cursor--
			}
		case key.Matches(msg, m.keymap.Down):
			if m.cursor < len(m.entries)-1 {
				m.cursor++
			}
		case key.Matches(msg, m.keymap.Generate):
			if m.cursor < len(m.entries) {
				text := m.entries[m.cursor].Text
				m.input.SetValue(text)
				m.input.CursorEnd()
				m.seq++
				return m, m.generateCmd(text)
			}
		}
		return m, nil
	}

	if key.Matches(msg, m.keymap.Generate) {
		m.seq++
		return m, m.generateCmd(m.input.Value())
	}

	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	if m.input.Value() == before {
		return m, cmd
	}
	return m, tea.Batch(cmd, m.schedulePreview())
}

// schedulePreview starts a new debounce window. Ticks from older windows are
// dropped when they arrive.
func (m *Model) schedulePreview() tea.Cmd {
	m.seq++
	seq := m.seq
	return tea.Tick(m.debounce, func(time.Time) tea.Msg {
		return previewTickMsg{seq: seq}
	})
}

func (m *Model) preview() {
	res, err := m.gen.Preview(m.input.Value())
	m.saved = false
	switch {
	case errors.Is(err, colorhash.ErrEmptyInput):
		m.result, m.err = nil, nil
	case err != nil:
		m.result, m.err = nil, err
	default:
		m.result, m.err = res, nil
	}
}

func (m *Model) copy() tea.Cmd {
	if m.result == nil {
		return nil
	}
	if err := m.copyFn(m.result.HexColor); err != nil {
		m.err = fmt.Errorf("copy to clipboard: %w", err)
		return nil
	}
	m.telemetry.TrackColorCopied(telemetry.SourceTUI)
	m.copied = true
	m.copySeq++
	seq := m.copySeq
	return tea.Tick(copiedFor, func(time.Time) tea.Msg {
		return copiedResetMsg{seq: seq}
	})
}

func (m *Model) toggleFavorite() {
	if m.favorites == nil || m.result == nil {
		return
	}
	var err error
	if m.favorites.IsFavorite(m.result.Input) {
		err = m.favorites.Remove(m.result.Input)
		if err == nil {
			m.telemetry.TrackFavoriteRemoved()
		}
	} else {
		err = m.favorites.Add(m.result.Input, m.result.HexColor)
		if err == nil {
			m.telemetry.TrackFavoriteAdded()
		}
	}
	if err != nil {
		m.err = err
	}
}

func (m *Model) setFocus(f Focus) {
	m.focus = f
	if f == FocusInput {
		m.input.Focus()
	} else {
		m.input.Blur()
	}
}

func (m *Model) restoreCmd() tea.Cmd {
	return func() tea.Msg {
		res, err := m.gen.Restore()
		return restoredMsg{result: res, err: err}
	}
}

func (m *Model) generateCmd(text string) tea.Cmd {
	return func() tea.Msg {
		res, err := m.gen.Generate(text, telemetry.SourceTUI)
		if errors.Is(err, colorhash.ErrEmptyInput) {
			err = errors.New("type something first")
		}
		return generatedMsg{result: res, err: err}
	}
}

func (m *Model) loadHistoryCmd() tea.Cmd {
	if m.history == nil {
		return nil
	}
	return func() tea.Msg {
		entries, err := m.history.ListHistory(m.cfg.History.Limit)
		return historyLoadedMsg{entries: entries, err: err}
	}
}

func (m *Model) clearHistoryCmd() tea.Cmd {
	return func() tea.Msg {
		removed, err := m.history.ClearHistory()
		if err == nil {
			err = m.history.ClearCurrentState()
		}
		if err != nil {
			err = fmt.Errorf("clear history: %w", err)
		}
		return historyClearedMsg{removed: removed, err: err}
	}
}

// trackSessionExit tracks app exit and flushes telemetry.
func (m *Model) trackSessionExit() {
	durationMs := time.Since(m.sessionStart).Milliseconds()
	m.telemetry.TrackAppExited("tui", durationMs, m.colorsDerived)
}

// View renders the screen.
func (m *Model) View() string {
	if !m.ready {
		return "Loading..."
	}
	if m.quitting {
		return ""
	}
	if m.clearConfirm != nil {
		return m.clearConfirm.CenteredView(m.width, m.height)
	}

	sections := []string{m.headerView(), m.inputView(), m.resultView()}
	if m.showTrace && m.result != nil {
		sections = append(sections, render.Explain(m.result))
	}
	sections = append(sections, m.historyView(), m.footerView())
	return lipgloss.JoinVertical(lipgloss.Left, sections...)
}

func (m *Model) headerView() string {
	logo := design.LogoMinimal
	if m.width >= 60 && m.height >= 30 {
		logo = strings.TrimPrefix(design.Logo, "\n")
	}
	return m.styles.Logo.Render(logo) + "  " + m.styles.HeaderVersion.Render(version.Short())
}

func (m *Model) inputView() string {
	style := m.styles.InputBox
	if m.focus != FocusInput {
		style = m.styles.InputBoxBlurred
	}
	return style.Width(max(m.width-4, 20)).Render(m.input.View())
}

func (m *Model) resultView() string {
	if m.err != nil {
		return m.styles.StatusError.Render("✗ " + m.err.Error())
	}
	if m.result == nil {
		return m.styles.Muted.Render("Start typing to see its color.")
	}

	var status []string
	if m.saved {
		status = append(status, m.styles.StatusOK.Render("saved"))
	}
	if m.favorites != nil && m.favorites.IsFavorite(m.result.Input) {
		status = append(status, m.styles.Highlight.Render("★"))
	}
	if m.copied {
		status = append(status, m.styles.StatusOK.Render("COPIED!"))
	}

	swatch := render.Swatch(m.result, max(min(m.width-4, 40), 12))
	return lipgloss.JoinHorizontal(lipgloss.Center, swatch, "  ", strings.Join(status, " "))
}

func (m *Model) historyView() string {
	var b strings.Builder
	b.WriteString(m.styles.ListTitle.Render("History"))
	b.WriteString("\n")
	if len(m.entries) == 0 {
		b.WriteString(m.styles.Muted.Render("  nothing saved yet"))
		return b.String()
	}

	start := 0
	if m.cursor >= historyShown {
		start = m.cursor - historyShown + 1
	}
	end := min(start+historyShown, len(m.entries))
	for i := start; i < end; i++ {
		e := m.entries[i]
		line := render.ColorLine(e.Text, e.HexColor)
		if m.focus == FocusHistory && i == m.cursor {
			b.WriteString(m.styles.ListItemSelected.Render("› " + line))
		} else {
			b.WriteString(m.styles.ListItem.Render("  " + line))
		}
		if i < end-1 {
			b.WriteString("\n")
		}
	}
	return b.String()
}

func (m *Model) footerView() string {
	if m.width >= 90 {
		return m.styles.Footer.Render(m.keymap.HelpText())
	}
	return m.styles.Footer.Render(m.keymap.QuickHelpText())
}

// Run executes the TUI program.
func Run(database *db.DB, favs *favorites.Store, conf *config.Config, tc telemetry.Client) error {
	gen := generator.New(database, conf, tc)
	model := NewModel(gen, database, favs, conf, tc)
	p := tea.NewProgram(model, tea.WithAltScreen())

	if _, err := p.Run(); err != nil {
		return fmt.Errorf("error running TUI: %w", err)
	}
	return nil
}
