// Package animation drives timed playback of text art: frame
// scheduling, easing curves, the effect catalog, and the render loop
// that composes them against a terminal surface.
package animation

import (
	"math"
	"time"
)

// Timeline schedules a fixed number of frames across a playback
// duration. It is loop-local state, advanced once per tick by the
// renderer, and carries no concurrency guarantees of its own.
type Timeline struct {
	durationMS   uint64
	fps          int
	startTime    time.Time
	started      bool
	currentFrame int
	totalFrames  int
}

// NewTimeline derives the frame count from duration and rate:
// ceil(durationMS/1000 * fps). fps must be positive for FrameDuration
// to be meaningful; fps <= 0 is not rejected here, a zero total frame
// count plays a single frame at full progress.
func NewTimeline(durationMS uint64, fps int) *Timeline {
	totalFrames := int(math.Ceil(float64(durationMS) / 1000.0 * float64(fps)))
	if totalFrames < 0 {
		totalFrames = 0
	}
	return &Timeline{
		durationMS:  durationMS,
		fps:         fps,
		totalFrames: totalFrames,
	}
}

// Start records the start instant and rewinds to frame zero
func (t *Timeline) Start() {
	t.startTime = time.Now()
	t.started = true
	t.currentFrame = 0
}

// Reset clears the start instant and rewinds to frame zero
func (t *Timeline) Reset() {
	t.started = false
	t.currentFrame = 0
}

// IsComplete reports whether every scheduled frame has been consumed
func (t *Timeline) IsComplete() bool {
	return t.currentFrame >= t.totalFrames
}

// Progress returns normalized playback position in [0, 1].
// A zero frame count reports full progress so degenerate playbacks
// paint exactly one final frame.
func (t *Timeline) Progress() float64 {
	if t.totalFrames == 0 {
		return 1.0
	}
	p := float64(t.currentFrame) / float64(t.totalFrames)
	if p > 1.0 {
		return 1.0
	}
	return p
}

// NextFrame advances by one frame, saturating at the total.
// It reports whether the timeline advanced.
func (t *Timeline) NextFrame() bool {
	if t.IsComplete() {
		return false
	}
	t.currentFrame++
	return true
}

// FrameDuration returns the fixed inter-frame interval, 1000/fps
// milliseconds. Requires fps > 0.
func (t *Timeline) FrameDuration() time.Duration {
	return time.Duration(1000/t.fps) * time.Millisecond
}

// Elapsed returns wall time since Start, zero if never started
func (t *Timeline) Elapsed() time.Duration {
	if !t.started {
		return 0
	}
	return time.Since(t.startTime)
}

// CurrentFrame returns the zero-based frame index
func (t *Timeline) CurrentFrame() int {
	return t.currentFrame
}

// TotalFrames returns the scheduled frame count
func (t *Timeline) TotalFrames() int {
	return t.totalFrames
}

// FPS returns the configured frame rate
func (t *Timeline) FPS() int {
	return t.fps
}

// DurationMS returns the configured duration in milliseconds
func (t *Timeline) DurationMS() uint64 {
	return t.durationMS
}
