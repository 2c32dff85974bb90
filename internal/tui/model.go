// Package tui provides the Bubble Tea typing interface.
package tui

import (
	"fmt"
	"strings"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	"github.com/charmbracelet/bubbles/textinput"
	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"go.uber.org/zap"

	"github.com/verte-zerg/typetest/internal/model"
	"github.com/verte-zerg/typetest/internal/session"
	"github.com/verte-zerg/typetest/internal/source"
	"github.com/verte-zerg/typetest/internal/stats"
)

type tickMsg session.Tick

// cmdScheduler turns engine ticks into Bubble Tea commands so that ticks
// reach the engine through the same update loop as key presses.
type cmdScheduler struct {
	pending []tea.Cmd
}

func (s *cmdScheduler) Schedule(after time.Duration, tick session.Tick) {
	s.pending = append(s.pending, tea.Tick(after, func(time.Time) tea.Msg {
		return tickMsg(tick)
	}))
}

func (s *cmdScheduler) flush() tea.Cmd {
	if len(s.pending) == 0 {
		return nil
	}
	cmds := s.pending
	s.pending = nil
	return tea.Batch(cmds...)
}

// Model implements the Bubble Tea typing UI.
type Model struct {
	engine *session.Engine
	sched  *cmdScheduler
	log    *zap.Logger

	input textinput.Model
	keys  keyMap
	help  help.Model

	width  int
	height int

	errMsg    string
	rejected  bool
	result    model.Result
	hasResult bool
}

var (
	titleStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0")).Bold(true)
	correctStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#F0F0F0"))
	incorrectStyle   = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	pendingStyle     = lipgloss.NewStyle().Foreground(lipgloss.Color("#8C8C8C"))
	currentWordStyle = lipgloss.NewStyle().Foreground(lipgloss.Color("#C89A3A"))
	upcomingStyle    = lipgloss.NewStyle().Foreground(lipgloss.Color("#4A4A4A"))
	footerStyle      = lipgloss.NewStyle().Foreground(lipgloss.Color("#6E6E6E"))
	errorStyle       = lipgloss.NewStyle().Foreground(lipgloss.Color("#FF4D4F"))
	activeDuration   = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#F0F0F0")).
				Bold(true).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#C89A3A"))
	inactiveDuration = lipgloss.NewStyle().
				Foreground(lipgloss.Color("#B0B0B0")).
				Padding(0, 1).
				Border(lipgloss.RoundedBorder(), true).
				BorderForeground(lipgloss.Color("#4A4A4A"))
)

// NewModel constructs a typing TUI model around a fresh session engine.
func NewModel(cfg model.Config, pool []string, selector *source.Selector, log *zap.Logger) *Model {
	if log == nil {
		log = zap.NewNop()
	}
	sched := &cmdScheduler{}
	engine := session.New(session.Config{
		Duration:     cfg.Duration,
		WordsPerLine: cfg.WordsPerLine,
	}, pool, selector, sched, log.Named("session"))

	input := textinput.New()
	input.Prompt = "> "
	input.Placeholder = "Start typing here..."

	return &Model{
		engine: engine,
		sched:  sched,
		log:    log,
		input:  input,
		keys:   newKeyMap(),
		help:   help.New(),
	}
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	return nil
}

// Result returns the score of the last finished session.
func (m *Model) Result() (model.Result, bool) {
	return m.result, m.hasResult
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		return m, nil
	case tickMsg:
		if m.engine.Tick(session.Tick(msg)) {
			m.checkFinished()
		}
		return m, m.sched.flush()
	case tea.KeyMsg:
		if key.Matches(msg, m.keys.ForceQ) {
			return m, tea.Quit
		}
		switch m.engine.Phase() {
		case session.PhaseSetup:
			return m.updateSetup(msg)
		case session.PhaseTyping:
			return m.updateTyping(msg)
		default:
			return m.updateFinished(msg)
		}
	default:
		if m.engine.Phase() == session.PhaseTyping {
			var cmd tea.Cmd
			m.input, cmd = m.input.Update(msg)
			return m, cmd
		}
		return m, nil
	}
}

func (m *Model) updateSetup(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Prev):
		m.shiftDuration(-1)
	case key.Matches(msg, m.keys.Next):
		m.shiftDuration(1)
	case key.Matches(msg, m.keys.Pick):
		idx := int(msg.String()[0] - '1')
		m.selectDuration(model.Durations[idx])
	case key.Matches(msg, m.keys.Start):
		return m, m.start()
	}
	return m, nil
}

func (m *Model) updateTyping(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	if key.Matches(msg, m.keys.Abort) {
		m.restart()
		return m, nil
	}
	before := m.input.Value()
	var cmd tea.Cmd
	m.input, cmd = m.input.Update(msg)
	value := m.input.Value()
	if value == before {
		return m, cmd
	}

	line := m.engine.Lines()[m.engine.LineIndex()]
	outcome := m.engine.SubmitInput(value)
	// Every space is a completion attempt; only flag a full-length mismatch.
	m.rejected = outcome == session.OutcomeRejected && stats.WordCount(value) >= stats.WordCount(line)
	switch outcome {
	case session.OutcomeAdvanced:
		m.input.SetValue("")
	case session.OutcomeCompleted:
		m.checkFinished()
	}
	return m, tea.Batch(cmd, m.sched.flush())
}

func (m *Model) updateFinished(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch {
	case key.Matches(msg, m.keys.Quit):
		return m, tea.Quit
	case key.Matches(msg, m.keys.Restart):
		m.restart()
	}
	return m, nil
}

func (m *Model) shiftDuration(delta int) {
	idx := durationIndex(m.engine.Duration()) + delta
	if idx < 0 || idx >= len(model.Durations) {
		return
	}
	m.selectDuration(model.Durations[idx])
}

func (m *Model) selectDuration(seconds int) {
	if err := m.engine.SelectDuration(seconds); err != nil {
		m.errMsg = err.Error()
		return
	}
	m.errMsg = ""
}

func (m *Model) start() tea.Cmd {
	if err := m.engine.Start(); err != nil {
		m.log.Error("failed to start session", zap.Error(err))
		m.errMsg = err.Error()
		return nil
	}
	m.errMsg = ""
	m.rejected = false
	m.hasResult = false
	m.input.Reset()
	return m.input.Focus()
}

func (m *Model) restart() {
	m.engine.Restart()
	m.input.Reset()
	m.input.Blur()
	m.rejected = false
	m.hasResult = false
	m.errMsg = ""
}

func (m *Model) checkFinished() {
	if m.engine.Phase() != session.PhaseFinished {
		return
	}
	m.input.Blur()
	result, err := m.engine.Score()
	if err != nil {
		m.log.Error("failed to score session", zap.Error(err))
		return
	}
	m.result = result
	m.hasResult = true
	m.log.Info("session scored",
		zap.Int("duration", result.Duration),
		zap.Int("words", result.WordsTyped),
		zap.Float64("wps", result.WordsPerSecond),
		zap.Int("accuracy", result.AccuracyPercent),
	)
}

// View implements tea.Model.
func (m *Model) View() string {
	var body string
	switch m.engine.Phase() {
	case session.PhaseSetup:
		body = m.viewSetup()
	case session.PhaseTyping:
		body = m.viewTyping()
	default:
		body = m.viewFinished()
	}
	if m.width == 0 || m.height == 0 {
		return body
	}
	footer := m.renderFooter()
	if footer == "" || m.height < 3 {
		return lipgloss.Place(m.width, m.height, lipgloss.Center, lipgloss.Center, body)
	}
	content := lipgloss.Place(m.width, m.height-1, lipgloss.Center, lipgloss.Center, body)
	footerLine := lipgloss.Place(m.width, 1, lipgloss.Center, lipgloss.Center, footer)
	return content + "\n" + footerLine
}

func (m *Model) viewSetup() string {
	choices := make([]string, 0, len(model.Durations))
	for _, d := range model.Durations {
		label := fmt.Sprintf("%d min", d/60)
		if d == m.engine.Duration() {
			choices = append(choices, activeDuration.Render(label))
		} else {
			choices = append(choices, inactiveDuration.Render(label))
		}
	}
	parts := []string{
		titleStyle.Render("Typing Speed Test"),
		"",
		"Select test duration:",
		lipgloss.JoinHorizontal(lipgloss.Top, choices...),
	}
	if m.errMsg != "" {
		parts = append(parts, errorStyle.Render(m.errMsg))
	}
	parts = append(parts, "", m.help.View(bindings{m.keys.Prev, m.keys.Next, m.keys.Pick, m.keys.Start, m.keys.Quit}))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) viewTyping() string {
	snap := m.engine.Snapshot()
	width := m.contentWidth()
	rendered := make([]string, 0, len(snap.Lines))
	for i, line := range snap.Lines {
		words := strings.Split(line, " ")
		switch {
		case i < snap.LineIndex:
			rendered = append(rendered, wrapStyledWords(buildStyledWords(words, completedMarks(len(words)), correctStyle), width))
		case i == snap.LineIndex:
			rendered = append(rendered, wrapStyledWords(buildStyledWords(words, snap.Marks, pendingStyle), width))
		default:
			rendered = append(rendered, wrapStyledWords(buildStyledWords(words, nil, upcomingStyle), width))
		}
	}
	parts := []string{
		titleStyle.Render(fmt.Sprintf("Time left: %ds", snap.TimeLeft)),
		"",
		strings.Join(rendered, "\n"),
		"",
		m.input.View(),
	}
	if m.rejected {
		parts = append(parts, errorStyle.Render("Line does not match, keep editing"))
	}
	parts = append(parts, "", m.help.View(bindings{m.keys.Abort, m.keys.ForceQ}))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) viewFinished() string {
	parts := []string{titleStyle.Render("Test Complete!"), ""}
	if m.hasResult {
		parts = append(parts,
			fmt.Sprintf("Words per second (WPS): %s", stats.FormatWPS(m.result.WordsPerSecond)),
			fmt.Sprintf("Accuracy: %d%%", m.result.AccuracyPercent),
		)
	}
	parts = append(parts, "", m.help.View(bindings{m.keys.Restart, m.keys.Quit}))
	return lipgloss.JoinVertical(lipgloss.Left, parts...)
}

func (m *Model) renderFooter() string {
	if m.engine.Phase() == session.PhaseSetup {
		return ""
	}
	lines := m.engine.Lines()
	if len(lines) == 0 {
		return ""
	}
	done := m.engine.LineIndex()
	if m.hasResult {
		done = m.result.LinesCompleted
	}
	progress := int(float64(done) / float64(len(lines)) * 100)
	segments := []string{
		fmt.Sprintf("Line %d/%d", minInt(m.engine.LineIndex()+1, len(lines)), len(lines)),
		fmt.Sprintf("Progress %d%%", progress),
		fmt.Sprintf("Time %ds/%ds", m.engine.TimeLeft(), m.engine.Duration()),
	}
	if m.hasResult {
		segments = append(segments, fmt.Sprintf("%s WPS · %d%%", stats.FormatWPS(m.result.WordsPerSecond), m.result.AccuracyPercent))
	}
	return footerStyle.Render(strings.Join(segments, "  "))
}

func (m *Model) contentWidth() int {
	if m.width == 0 {
		return 0
	}
	width := int(float64(m.width) * 0.70)
	if width < 1 {
		width = 1
	}
	return width
}

func durationIndex(seconds int) int {
	for i, d := range model.Durations {
		if d == seconds {
			return i
		}
	}
	return 0
}

func completedMarks(n int) []session.WordMark {
	marks := make([]session.WordMark, n)
	for i := range marks {
		marks[i] = session.WordCorrect
	}
	return marks
}

func minInt(a, b int) int {
	if a < b {
		return a
	}
	return b
}
