package watch

import (
	"image"
	"image/color"
	"image/draw"
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/stretchr/testify/require"

	"github.com/nyxui/nyx"
	"github.com/nyxui/nyx/blob"
	"github.com/nyxui/nyx/render"
	"github.com/nyxui/nyx/theme"
)

func newTestModel(t *testing.T) (Model, *blob.Animator, *theme.Context) {
	t.Helper()

	a := blob.NewAnimator(blob.Config{Smooth: true, HoverEffect: true, ClickEffect: true}, blob.WithSeed(3))
	modes := theme.NewContext(theme.Light)
	style := render.DefaultStyle()
	style.Size = render.SizeSM
	r := render.New(style, render.WithContext(modes))
	t.Cleanup(a.Stop)

	return NewModel(a, r, modes, Options{FPS: 10, Cells: 20}), a, modes
}

func runes(s string) tea.KeyMsg {
	return tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune(s)}
}

func update(t *testing.T, m Model, msg tea.Msg) (Model, tea.Cmd) {
	t.Helper()
	next, cmd := m.Update(msg)
	model, ok := next.(Model)
	require.True(t, ok)
	return model, cmd
}

func TestNewModelStartsAnimator(t *testing.T) {
	m, a, _ := newTestModel(t)

	require.Equal(t, blob.Running, a.Snapshot().State)
	require.NotEmpty(t, a.Frame().Path)
	require.Equal(t, 100*time.Millisecond, m.interval)
	require.NotNil(t, m.Init())
}

func TestTickAdvancesAnimation(t *testing.T) {
	m, a, _ := newTestModel(t)

	before := a.Snapshot().Progress
	m, cmd := update(t, m, tickMsg(time.Now()))
	require.NotNil(t, cmd)
	require.Greater(t, a.Snapshot().Progress, before)
	require.NotEmpty(t, m.View())
}

func TestKeysDriveAnimator(t *testing.T) {
	m, a, modes := newTestModel(t)

	m, _ = update(t, m, runes("h"))
	require.True(t, a.Snapshot().Hovered)
	m, _ = update(t, m, runes("h"))
	require.False(t, a.Snapshot().Hovered)

	m, _ = update(t, m, runes("c"))
	require.True(t, a.Snapshot().Clicked)

	m, _ = update(t, m, runes("+"))
	require.Equal(t, 4, a.Config().Complexity)
	for range 6 {
		m, _ = update(t, m, runes("-"))
	}
	require.Equal(t, blob.MinLevel, a.Config().Complexity)

	m, _ = update(t, m, runes("s"))
	require.Equal(t, 4, a.Config().Speed)
	m, _ = update(t, m, runes("s"))
	m, _ = update(t, m, runes("s"))
	require.Equal(t, 1, a.Config().Speed)

	m, _ = update(t, m, runes("m"))
	require.False(t, a.Config().Smooth)

	m, _ = update(t, m, runes("d"))
	require.Equal(t, theme.Dark, modes.Mode())

	m, _ = update(t, m, runes("?"))
	require.True(t, m.help.ShowAll)
}

func TestQuitStopsAnimator(t *testing.T) {
	m, a, _ := newTestModel(t)

	m, cmd := update(t, m, tea.KeyMsg{Type: tea.KeyCtrlC})
	require.NotNil(t, cmd)
	require.IsType(t, tea.QuitMsg{}, cmd())
	require.Equal(t, blob.Stopped, a.Snapshot().State)
	require.Equal(t, "", m.View())

	_, cmd = update(t, m, tickMsg(time.Now()))
	require.Nil(t, cmd)
}

func TestPreviewFollowsFramesAndMode(t *testing.T) {
	m, a, modes := newTestModel(t)

	frame, mode := m.view.state()
	require.Equal(t, a.Frame(), frame)
	require.Equal(t, theme.Light, mode)

	m, _ = update(t, m, tickMsg(time.Now()))
	frame, _ = m.view.state()
	require.Equal(t, a.Frame(), frame)
	require.Greater(t, frame.Progress, 0.0)

	modes.SetMode(theme.Dark)
	_, mode = m.view.state()
	require.Equal(t, theme.Dark, mode)

	m, _ = update(t, m, runes("q"))
	modes.SetMode(theme.Light)
	_, mode = m.view.state()
	require.Equal(t, theme.Dark, mode, "quit should drop the mode subscription")
}

func TestPulseKeyTogglesPulse(t *testing.T) {
	m, _, _ := newTestModel(t)
	require.False(t, m.renderer.Style().Pulse)

	m, _ = update(t, m, runes("p"))
	require.True(t, m.renderer.Style().Pulse)
	require.Equal(t, 1.0, m.renderer.Opacity())

	m, _ = update(t, m, tickMsg(time.Now()))
	require.Less(t, m.renderer.Opacity(), 1.0)
	require.Contains(t, m.View(), "pulse")

	m, _ = update(t, m, runes("p"))
	require.False(t, m.renderer.Style().Pulse)
	require.Equal(t, 1.0, m.renderer.Opacity())
}

func TestWindowSizeFitsBlob(t *testing.T) {
	m, _, _ := newTestModel(t)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 100, Height: 20})
	require.Equal(t, 24, m.cells)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 6, Height: 6})
	require.Equal(t, MinCells, m.cells)

	m, _ = update(t, m, tea.WindowSizeMsg{Width: 400, Height: 200})
	require.Equal(t, MaxCells, m.cells)
}

func TestArtBlankAroundSquare(t *testing.T) {
	t.Parallel()

	img := image.NewRGBA(image.Rect(0, 0, 40, 40))
	draw.Draw(img, image.Rect(10, 10, 30, 30), image.NewUniform(color.RGBA{R: 255, A: 255}), image.Point{}, draw.Src)

	art := Art(img, 20, nyx.Hex("#000000"))
	lines := strings.Split(art, "\n")
	require.Len(t, lines, 10)

	require.Equal(t, strings.Repeat(" ", 20), lines[0])
	require.Equal(t, strings.Repeat(" ", 20), lines[9])
	require.Contains(t, lines[5], upperHalf)
}

func TestArtEmpty(t *testing.T) {
	t.Parallel()

	require.Equal(t, "", Art(image.NewRGBA(image.Rect(0, 0, 0, 0)), 10, nyx.Hex("#fff")))
	require.Equal(t, "", Art(image.NewRGBA(image.Rect(0, 0, 4, 4)), 0, nyx.Hex("#fff")))
}

func TestBackdrop(t *testing.T) {
	t.Parallel()

	require.Equal(t, darkBackdrop, Backdrop(theme.Dark))
	require.Equal(t, lightBackdrop, Backdrop(theme.Light))
}
