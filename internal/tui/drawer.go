package tui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/lipgloss"
)

const (
	drawerFrame    = 16 * time.Millisecond
	drawerMaxWidth = 34
)

type drawerFrameMsg time.Time

func drawerTickCmd() tea.Cmd {
	return tea.Tick(drawerFrame, func(t time.Time) tea.Msg {
		return drawerFrameMsg(t)
	})
}

// drawerAnim tracks how far the panel has slid in, 0 hidden and 1 fully shown.
type drawerAnim struct {
	progress  float64
	running   bool
	frameStep float64 // progress per frame; 0 means no transition
}

func newDrawerAnim(transition time.Duration) drawerAnim {
	a := drawerAnim{}
	if transition > 0 {
		a.frameStep = float64(drawerFrame) / float64(transition)
		if a.frameStep > 1 {
			a.frameStep = 1
		}
	}
	return a
}

// start begins moving toward open (or closed). It returns a tick command
// only when no tick is already in flight.
func (a *drawerAnim) start(open bool) tea.Cmd {
	if a.frameStep == 0 {
		a.progress = target(open)
		return nil
	}
	if a.running || a.progress == target(open) {
		return nil
	}
	a.running = true
	return drawerTickCmd()
}

// step advances one frame toward open.
func (a *drawerAnim) step(open bool) tea.Cmd {
	goal := target(open)
	if a.progress < goal {
		a.progress = math.Min(goal, a.progress+a.frameStep)
	} else if a.progress > goal {
		a.progress = math.Max(goal, a.progress-a.frameStep)
	}
	if a.progress == goal {
		a.running = false
		return nil
	}
	return drawerTickCmd()
}

func (a drawerAnim) visible() bool {
	return a.progress > 0
}

func target(open bool) float64 {
	if open {
		return 1
	}
	return 0
}

func drawerWidth(total int) int {
	w := drawerMaxWidth
	if total-4 < w {
		w = total - 4
	}
	if w < 10 {
		w = 10
	}
	return w
}

// overlayDrawer places the panel on the right edge of the page, sliding in
// by progress, with the rest of the page dimmed behind it.
func overlayDrawer(page, panel string, width, height int, progress float64) string {
	panelW := drawerWidth(width)
	shown := int(math.Round(float64(panelW) * progress))
	if shown <= 0 {
		return page
	}
	if shown > width {
		shown = width
	}

	backdrop := backdropStyle.
		Width(width - shown).
		MaxWidth(width - shown).
		Height(height).
		MaxHeight(height).
		Render(page)

	p := drawerPanelStyle.
		Width(panelW - 1).
		Height(height).
		MaxHeight(height).
		Render(panel)
	p = lipgloss.NewStyle().MaxWidth(shown).Render(p)

	return lipgloss.JoinHorizontal(lipgloss.Top, backdrop, p)
}

func drawerHeader(width int) string {
	title := drawerTitleStyle.Render("Filters")
	closeBtn := subtleStyle.Render("✕")
	gap := width - lipgloss.Width(title) - lipgloss.Width(closeBtn)
	if gap < 1 {
		gap = 1
	}
	return title + strings.Repeat(" ", gap) + closeBtn
}
