package tui

import (
	"errors"
	"fmt"
	"io"
	"log/slog"
	"math/rand"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
	"github.com/san-kum/gfxlab/internal/config"
	"github.com/san-kum/gfxlab/internal/keymap"
	"github.com/san-kum/gfxlab/internal/lab"
	"github.com/san-kum/gfxlab/internal/rubik"
	"github.com/san-kum/gfxlab/internal/storage"
	"github.com/san-kum/gfxlab/internal/viz"
)

const (
	frameDt      = float32(1.0 / 60)
	historySize  = 12
	traceSamples = 48
)

type Options struct {
	Config *config.Config
	Store  *storage.Store
	Logger *slog.Logger
}

type model struct {
	cube  *rubik.Cube
	anim  *rubik.Animator
	rec   *storage.Recorder
	store *storage.Store
	log   *slog.Logger

	theme   viz.Theme
	history []string
	angles  []float64
	status  string
	savedID string
	ticking bool
	frame   int

	width  int
	height int
}

func newModel(opts Options) *model {
	cfg := opts.Config
	if cfg == nil {
		cfg = config.DefaultConfig()
	}
	log := opts.Logger
	if log == nil {
		log = slog.New(slog.NewTextHandler(io.Discard, nil))
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}

	m := &model{
		cube:   rubik.NewCube(cfg.Spacing()),
		anim:   rubik.NewAnimator(rand.New(rand.NewSource(seed))),
		rec:    storage.NewRecorder("tui", seed),
		store:  opts.Store,
		log:    log,
		theme:  viz.CurrentTheme,
		status: "ready",
		width:  80,
		height: 24,
	}
	cfg.ConfigureAnimator(m.anim)
	m.anim.OnTurn = m.onTurn
	m.anim.OnSolved = func() {
		m.status = "solved"
		m.log.Info("solved", "moves", len(m.history))
	}
	return m
}

func (m *model) onTurn(mv rubik.Move) {
	m.rec.Turn(mv.String(), m.anim.Randomizing())
	m.history = append(m.history, mv.String())
	if len(m.history) > historySize {
		m.history = m.history[1:]
	}
	m.rec.SetSolved(m.cube.IsSolved())
}

func (m *model) Init() tea.Cmd { return nil }

type tickMsg time.Time

func tick() tea.Cmd {
	return tea.Tick(16*time.Millisecond, func(t time.Time) tea.Msg { return tickMsg(t) })
}

func (m *model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.KeyMsg:
		return m.handleKey(msg)
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		return m, nil
	case tickMsg:
		m.step()
		if m.anim.Busy() {
			return m, tick()
		}
		m.ticking = false
		return m, nil
	}
	return m, nil
}

// step advances the animation by one frame.
func (m *model) step() {
	m.frame++
	if err := m.anim.Advance(m.cube, frameDt); err != nil {
		m.status = err.Error()
		m.log.Error("advance", "err", err)
		return
	}
	if m.anim.Animating() {
		angle := float64(m.anim.Angle())
		m.rec.Tick(float64(frameDt), angle)
		m.angles = append(m.angles, angle)
		if len(m.angles) > traceSamples {
			m.angles = m.angles[1:]
		}
	}
	if !m.anim.Busy() && m.status != "solved" {
		m.status = "ready"
	}
}

func (m *model) startTicking() tea.Cmd {
	if m.ticking {
		return nil
	}
	m.ticking = true
	return tick()
}

func (m *model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	switch msg.String() {
	case "ctrl+c", "esc", "q":
		m.save()
		return m, tea.Quit
	case "tab":
		m.theme = viz.NextTheme(m.theme.Name)
		return m, nil
	case "0":
		m.anim.Stop(m.cube)
		m.cube.Reset()
		m.status = "reset"
		return m, nil
	}

	action, ok := keymap.Lookup(msg.String())
	if !ok {
		return m, nil
	}

	switch action.Kind {
	case keymap.KindTurn:
		if err := m.anim.Start(action.Move); err != nil {
			m.report(err)
			return m, nil
		}
		m.status = "turning " + action.Move.String()
		m.log.Debug("turn", "move", action.Move.String())
		return m, m.startTicking()
	case keymap.KindScramble:
		if err := m.anim.Scramble(0); err != nil {
			m.report(err)
			return m, nil
		}
		m.status = "scrambling"
		m.log.Info("randomized", "moves", m.anim.ScrambleMoves)
		return m, m.startTicking()
	}
	return m, nil
}

func (m *model) report(err error) {
	if errors.Is(err, lab.ErrBusy) {
		m.status = "busy"
		return
	}
	m.status = err.Error()
	m.log.Warn("key action", "err", err)
}

func (m *model) save() {
	if m.store == nil || m.rec.Empty() {
		return
	}
	id, err := m.store.Save(m.rec.Session())
	if err != nil {
		m.log.Error("save session", "err", err)
		return
	}
	m.savedID = id
	m.log.Info("session saved", "id", id)
}

func (m *model) View() string {
	var b strings.Builder

	b.WriteString("\n  " + viz.GradientText("g f x l a b   c u b e", m.theme.Primary, m.theme.Accent) + "\n")
	b.WriteString("  " + viz.Separator(44) + "\n\n")

	net := viz.NetOf(m.cube).Render(m.theme)
	side := m.sidePanel()
	b.WriteString(lipgloss.JoinHorizontal(lipgloss.Top, indent(net, 2), "    ", side))
	b.WriteString("\n\n")

	b.WriteString(viz.KeyHint.Render("  turns: e/r t/y u/i  f/g h/j k/l  z/x c/v b/n") + "\n")
	b.WriteString(viz.KeyHint.Render("  p scramble  0 reset  tab theme  q quit") + "\n")
	return b.String()
}

func (m *model) sidePanel() string {
	var lines []string

	status := viz.StatusIdle.Render(m.status)
	switch {
	case m.anim.Pulsing() || m.status == "solved":
		status = viz.StatusSolved.Render("solved")
	case m.anim.Busy():
		status = viz.StatusTurning.Render(viz.AnimatedSpinner(m.frame) + " " + m.status)
	}
	lines = append(lines, viz.HeaderStyle.Render("status"), status)
	if m.anim.Animating() {
		lines = append(lines, viz.Selected.Render(m.anim.Current().String()))
	}
	lines = append(lines, "")

	progress := 0.0
	if m.anim.TargetAngle > 0 {
		progress = float64(m.anim.Angle() / m.anim.TargetAngle)
	}
	lines = append(lines, viz.ProgressBar(progress, 20))

	if m.anim.Randomizing() {
		lines = append(lines, viz.Metric("scramble", fmt.Sprintf("%d/%d", m.anim.Scrambled(), m.anim.ScrambleMoves)))
	}
	lines = append(lines,
		viz.Metric("moves", len(m.rec.Session().Moves)),
		viz.Metric("solved", m.cube.IsSolved()),
		viz.MetricLabel.Render("theme: ")+viz.Title.Render(m.theme.Name),
		"",
		viz.MetricLabel.Render("angle ")+viz.Sparkline(m.angles, 20),
		"",
		viz.HeaderStyle.Render("last moves"),
		viz.Subtle.Render(wrapMoves(m.history, 4)),
	)
	if m.savedID != "" {
		lines = append(lines, "", viz.Subtle.Render("saved "+m.savedID))
	}
	return viz.Panel.Render(strings.Join(lines, "\n"))
}

// wrapMoves prints perLine moves per line.
func wrapMoves(moves []string, perLine int) string {
	var rows []string
	for i := 0; i < len(moves); i += perLine {
		end := i + perLine
		if end > len(moves) {
			end = len(moves)
		}
		rows = append(rows, strings.Join(moves[i:end], " "))
	}
	return strings.Join(rows, "\n")
}

func indent(s string, n int) string {
	pad := strings.Repeat(" ", n)
	lines := strings.Split(s, "\n")
	for i := range lines {
		lines[i] = pad + lines[i]
	}
	return strings.Join(lines, "\n")
}

// Run starts the terminal cube viewer and blocks until it exits.
func Run(opts Options) error {
	p := tea.NewProgram(newModel(opts), tea.WithAltScreen())
	_, err := p.Run()
	return err
}
