package tui

import (
	"math"
	"strings"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/charmbracelet/harmonica"
)

const (
	flipFPS       = 60
	flipFrequency = 7.0
	flipDamping   = 1.0 // critically damped: no overshoot past the target
	flipSettle    = 0.01
)

// flipFrameMsg advances a running flip by one frame.
type flipFrameMsg struct {
	id int
}

// flip animates a view switch. Progress runs from 0 to 1 on a spring; the
// outgoing view folds shut over the first half and the incoming view opens
// over the second.
type flip struct {
	spring   harmonica.Spring
	pos, vel float64
	from, to View
	active   bool
	id       int // discards frames from a superseded flip
}

func newFlip() flip {
	return flip{spring: harmonica.NewSpring(harmonica.FPS(flipFPS), flipFrequency, flipDamping)}
}

// start begins a flip and returns the first frame command.
func (f *flip) start(from, to View) tea.Cmd {
	f.from, f.to = from, to
	f.pos, f.vel = 0, 0
	f.active = true
	f.id++
	return f.frame()
}

// step advances one frame. It reports false once the spring has settled.
func (f *flip) step(msg flipFrameMsg) (tea.Cmd, bool) {
	if !f.active || msg.id != f.id {
		return nil, false
	}
	f.pos, f.vel = f.spring.Update(f.pos, f.vel, 1)
	if math.Abs(1-f.pos) < flipSettle && math.Abs(f.vel) < flipSettle {
		f.active = false
		return nil, false
	}
	return f.frame(), true
}

func (f *flip) frame() tea.Cmd {
	id := f.id
	return tea.Tick(time.Second/flipFPS, func(time.Time) tea.Msg {
		return flipFrameMsg{id: id}
	})
}

// showing reports which view is on screen and how open it is (0..1).
func (f flip) showing() (View, float64) {
	p := math.Max(0, math.Min(1, f.pos))
	if p < 0.5 {
		return f.from, 1 - 2*p
	}
	return f.to, 2*p - 1
}

// fold keeps the middle frac of content's lines within height h, blanking the
// rest, so the view appears to rotate about its horizontal axis.
func fold(content string, frac float64, h int) string {
	lines := strings.Split(content, "\n")
	for len(lines) < h {
		lines = append(lines, "")
	}
	lines = lines[:h]

	keep := int(math.Round(frac * float64(h)))
	top := (h - keep) / 2
	for i := range lines {
		if i < top || i >= top+keep {
			lines[i] = ""
		}
	}
	return strings.Join(lines, "\n")
}
