package gameshell

// FPSCounter measures drawn frames per second and counts dropped frames.
// A frame is dropped when the engine runs an update tick without drawing
// since the previous tick, which happens when the loop falls behind.
type FPSCounter struct {
	// FramesPerSecond is the number of draws during the last full second.
	FramesPerSecond int
	// DroppedFrames is the total number of dropped frames so far.
	DroppedFrames int

	elapsed   float64
	frames    int
	drawn     bool
	firstTick bool
}

// Update is called once per update tick with the elapsed time in seconds.
func (f *FPSCounter) Update(dt float64) {
	if f.firstTick && !f.drawn {
		f.DroppedFrames++
	}
	f.firstTick = true
	f.drawn = false

	f.elapsed += dt
	if f.elapsed < 1 {
		return
	}
	f.FramesPerSecond = f.frames
	f.frames = 0
	// A stall longer than a second restarts the window instead of
	// reporting several empty seconds in a row.
	if f.elapsed >= 2 {
		f.elapsed = 0
	} else {
		f.elapsed--
	}
}

// Draw is called once per drawn frame.
func (f *FPSCounter) Draw() {
	f.frames++
	f.drawn = true
}
