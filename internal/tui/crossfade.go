package tui

import (
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"twinforge/internal/wizard"
)

// Crossfade timing: the text swaps after the first interval, the new
// gradient is promoted to the base layer after the second.
const (
	textSwapDelay       = 250 * time.Millisecond
	gradientPromoteTime = 400 * time.Millisecond
)

type crossfadeTextMsg struct{ seq int }
type crossfadePromoteMsg struct{ seq int }

// crossfade is the preview's two-phase transition state. At most one
// crossfade is in flight: seq tokens invalidate ticks from a
// superseded transition.
type crossfade struct {
	seq int

	// current is the preview whose text is on screen; base is the
	// gradient on the base layer. staged holds the preview a running
	// crossfade will reveal; pending mirrors its gradient while it
	// waits for promotion.
	current wizard.PreviewState
	base    wizard.GradientSpec
	hasBase bool

	staged  wizard.PreviewState
	pending *wizard.GradientSpec

	textVisible bool
}

// set installs a preview immediately, with no transition. Used for the
// first synthesis on entering the preview step.
func (f *crossfade) set(p wizard.PreviewState) {
	f.seq++
	f.current = p
	f.base = p.Gradient
	f.hasBase = true
	f.pending = nil
	f.textVisible = true
}

// begin stages a newly committed preview and returns the two phase
// timers. Any prior in-flight crossfade is superseded.
func (f *crossfade) begin(p wizard.PreviewState) tea.Cmd {
	f.seq++
	seq := f.seq
	f.staged = p
	g := p.Gradient
	f.pending = &g
	f.textVisible = false
	return tea.Batch(
		tea.Tick(textSwapDelay, func(time.Time) tea.Msg { return crossfadeTextMsg{seq: seq} }),
		tea.Tick(gradientPromoteTime, func(time.Time) tea.Msg { return crossfadePromoteMsg{seq: seq} }),
	)
}

// cancel drops any pending overlay and stale timers (by bumping seq).
// The currently visible preview stays.
func (f *crossfade) cancel() {
	f.seq++
	f.pending = nil
	f.textVisible = f.hasBase
}

// onText handles the first phase: the staged text becomes visible.
func (f *crossfade) onText(msg crossfadeTextMsg) bool {
	if msg.seq != f.seq {
		return false
	}
	f.current = f.staged
	f.textVisible = true
	return true
}

// onPromote handles the second phase: the pending gradient becomes the
// base layer.
func (f *crossfade) onPromote(msg crossfadePromoteMsg) bool {
	if msg.seq != f.seq || f.pending == nil {
		return false
	}
	f.base = *f.pending
	f.hasBase = true
	f.pending = nil
	return true
}

// fading reports whether a transition is in flight.
func (f *crossfade) fading() bool { return f.pending != nil || !f.textVisible }
