// Package watch is a terminal preview of an animated blob. Keys drive the
// hover, press, complexity, speed and color mode of a live Animator.
package watch

import (
	"sync"
	"time"

	"github.com/charmbracelet/bubbles/help"
	"github.com/charmbracelet/bubbles/key"
	tea "github.com/charmbracelet/bubbletea"

	"github.com/nyxui/nyx/blob"
	"github.com/nyxui/nyx/render"
	"github.com/nyxui/nyx/theme"
)

// Preview bounds, in terminal columns.
const (
	DefaultCells = 40
	MinCells     = 8
	MaxCells     = 80
)

// Options tunes the preview.
type Options struct {
	FPS   int // ticks per second; <= 0 selects 30
	Cells int // blob edge in columns; 0 selects DefaultCells
}

type tickMsg time.Time

// preview holds what the view draws. It is shared by every copy of Model
// and fed by the animator's frame observer and the mode subscription.
type preview struct {
	mu    sync.Mutex
	frame blob.Frame
	mode  theme.Mode
	stop  func()
}

func (p *preview) setFrame(f blob.Frame) {
	p.mu.Lock()
	p.frame = f
	p.mu.Unlock()
}

func (p *preview) setMode(m theme.Mode) {
	p.mu.Lock()
	p.mode = m
	p.mu.Unlock()
}

func (p *preview) state() (blob.Frame, theme.Mode) {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.frame, p.mode
}

func (p *preview) close() {
	p.mu.Lock()
	stop := p.stop
	p.stop = nil
	p.mu.Unlock()
	if stop != nil {
		stop()
	}
}

// Model is the bubbletea model of the preview.
type Model struct {
	animator *blob.Animator
	renderer *render.Renderer
	modes    *theme.Context
	view     *preview

	keys keyMap
	help help.Model

	interval time.Duration
	cells    int
	width    int
	height   int
	quitting bool
}

// NewModel wraps a and r. The animator is started for manual ticking if it
// is still idle; modes may be nil, in which case the mode key is inert.
func NewModel(a *blob.Animator, r *render.Renderer, modes *theme.Context, opts Options) Model {
	fps := opts.FPS
	if fps <= 0 {
		fps = 30
	}
	cells := opts.Cells
	if cells == 0 {
		cells = DefaultCells
	}

	v := &preview{mode: modes.Mode()}
	a.OnFrame(v.setFrame)
	a.Start(nil)
	v.setFrame(a.Frame())
	if modes != nil {
		v.stop = modes.Subscribe(v.setMode)
	}

	return Model{
		animator: a,
		renderer: r,
		modes:    modes,
		view:     v,
		keys:     defaultKeyMap(),
		help:     help.New(),
		interval: time.Second / time.Duration(fps),
		cells:    clampCells(cells),
		width:    80,
		height:   24,
	}
}

func clampCells(n int) int {
	return max(MinCells, min(MaxCells, n))
}

func tick(d time.Duration) tea.Cmd {
	return tea.Tick(d, func(t time.Time) tea.Msg {
		return tickMsg(t)
	})
}

// Init starts the tick loop.
func (m Model) Init() tea.Cmd {
	return tick(m.interval)
}

// Update handles ticks, key presses and resizes.
func (m Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch msg := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = msg.Width
		m.height = msg.Height
		m.help.Width = msg.Width
		// Two pixel rows per line, plus room for title, status and help.
		m.cells = clampCells(min(msg.Width-4, (msg.Height-8)*2))
		return m, nil

	case tickMsg:
		if m.quitting {
			return m, nil
		}
		m.animator.Advance(m.interval)
		m.renderer.Advance(m.interval)
		return m, tick(m.interval)

	case tea.KeyMsg:
		return m.handleKey(msg)
	}
	return m, nil
}

func (m Model) handleKey(msg tea.KeyMsg) (tea.Model, tea.Cmd) {
	snap := m.animator.Snapshot()
	cfg := m.animator.Config()

	switch {
	case key.Matches(msg, m.keys.Quit):
		m.quitting = true
		m.animator.Stop()
		m.view.close()
		return m, tea.Quit
	case key.Matches(msg, m.keys.Hover):
		m.animator.SetHovered(!snap.Hovered)
	case key.Matches(msg, m.keys.Click):
		m.animator.SetClicked(!snap.Clicked)
	case key.Matches(msg, m.keys.More):
		m.animator.SetComplexity(cfg.Complexity + 1)
	case key.Matches(msg, m.keys.Less):
		m.animator.SetComplexity(max(cfg.Complexity-1, blob.MinLevel))
	case key.Matches(msg, m.keys.Speed):
		m.animator.SetSpeed(cfg.Speed%blob.MaxLevel + 1)
	case key.Matches(msg, m.keys.Smooth):
		m.animator.SetSmooth(!cfg.Smooth)
	case key.Matches(msg, m.keys.Mode):
		if m.modes != nil {
			if m.modes.Mode() == theme.Dark {
				m.modes.SetMode(theme.Light)
			} else {
				m.modes.SetMode(theme.Dark)
			}
		}
	case key.Matches(msg, m.keys.Pulse):
		m.renderer.SetPulse(!m.renderer.Style().Pulse)
	case key.Matches(msg, m.keys.Help):
		m.help.ShowAll = !m.help.ShowAll
	}
	return m, nil
}
