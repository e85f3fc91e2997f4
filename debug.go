package gameshell

import "github.com/hajimehoshi/ebiten/v2"

// debugInterval is how often frame stats are logged, in seconds.
const debugInterval = 1.0

// debugStats accumulates per-interval counters. Only used when
// Options.Debug is set.
type debugStats struct {
	elapsed float64
	updates int
	toggles int
}

// debugTick counts an update and logs the stats once per interval.
func (g *Game) debugTick(dt float64) {
	if !g.opts.Debug {
		return
	}
	s := &g.debug
	s.elapsed += dt
	s.updates++
	if s.elapsed < debugInterval {
		return
	}

	p := PlayerBounds(g.world)
	g.logger.Debug("frame stats",
		"fps", g.fps.FramesPerSecond,
		"dropped", g.fps.DroppedFrames,
		"updates", s.updates,
		"actualTPS", ebiten.ActualTPS(),
		"mode", g.window.Mode(),
		"toggles", s.toggles,
		"player", p.Position(),
	)
	*s = debugStats{}
}
