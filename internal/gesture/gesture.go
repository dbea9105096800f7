// Package gesture turns a vertical pointer drag into one discrete outcome.
//
// A drag has two phases. While the pointer moves, a Drag only tracks a
// presentational offset. On release, Resolve decides once between tap,
// dismiss and cancel.
package gesture

import "time"

// Outcome is the result of a finished drag.
type Outcome int

// Outcomes.
const (
	Cancel  Outcome = iota // Below every threshold; nothing happens
	Tap                    // No significant movement
	Dismiss                // Past the distance or velocity threshold
)

// String returns the outcome name.
func (o Outcome) String() string {
	switch o {
	case Tap:
		return "tap"
	case Dismiss:
		return "dismiss"
	default:
		return "cancel"
	}
}

// Thresholds tune swipe-to-dismiss. Upward movement is negative.
type Thresholds struct {
	Distance float64 // Dismiss when offset < -Distance
	Velocity float64 // Dismiss when velocity < -Velocity (units per second)
	TapSlop  float64 // |offset| <= TapSlop with no dismiss is a tap
}

// Resolve decides the outcome of a drag released at offset with velocity.
// Either trigger alone dismisses.
func Resolve(offset, velocity float64, th Thresholds) Outcome {
	if offset < -th.Distance || velocity < -th.Velocity {
		return Dismiss
	}
	if abs(offset) <= th.TapSlop {
		return Tap
	}
	return Cancel
}

// velocityWindow is how far back Release looks when estimating velocity.
const velocityWindow = 100 * time.Millisecond

type sample struct {
	at time.Time
	y  float64
}

// Drag tracks one in-progress vertical drag.
// The zero value is idle.
type Drag struct {
	samples []sample
	key     string
	startY  float64
	offset  float64
	minY    float64 // Offsets are clamped to [minY, maxY]
	maxY    float64
	active  bool
}

// Start begins a drag of the item identified by key at pointer row y.
// min and max clamp the visible offset; a zero range disables clamping.
func (d *Drag) Start(key string, y float64, at time.Time, minOffset, maxOffset float64) {
	*d = Drag{
		key:     key,
		startY:  y,
		minY:    minOffset,
		maxY:    maxOffset,
		active:  true,
		samples: []sample{{at: at, y: y}},
	}
}

// Active reports whether a drag is in progress.
func (d *Drag) Active() bool {
	return d.active
}

// Key returns the item being dragged.
func (d *Drag) Key() string {
	return d.key
}

// Offset returns the current clamped offset from the start row.
func (d *Drag) Offset() float64 {
	return d.offset
}

// Move records the pointer at row y.
func (d *Drag) Move(y float64, at time.Time) {
	if !d.active {
		return
	}
	d.samples = append(d.samples, sample{at: at, y: y})
	d.offset = d.clamp(y - d.startY)
}

// Release ends the drag at row y and returns the unclamped offset and the
// release velocity. The drag becomes idle.
func (d *Drag) Release(y float64, at time.Time) (offset, velocity float64) {
	if !d.active {
		return 0, 0
	}
	d.samples = append(d.samples, sample{at: at, y: y})
	offset = y - d.startY
	velocity = d.velocity()
	*d = Drag{}
	return offset, velocity
}

// Cancel abandons the drag without an outcome.
func (d *Drag) Cancel() {
	*d = Drag{}
}

func (d *Drag) velocity() float64 {
	if len(d.samples) < 2 {
		return 0
	}
	last := d.samples[len(d.samples)-1]
	// Oldest sample inside the window, or the previous sample when the
	// pointer paused longer than the window.
	ref := d.samples[len(d.samples)-2]
	for i := len(d.samples) - 2; i >= 0; i-- {
		if last.at.Sub(d.samples[i].at) > velocityWindow {
			break
		}
		ref = d.samples[i]
	}
	dt := last.at.Sub(ref.at).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.y - ref.y) / dt
}

func (d *Drag) clamp(v float64) float64 {
	if d.minY == 0 && d.maxY == 0 {
		return v
	}
	if v < d.minY {
		return d.minY
	}
	if v > d.maxY {
		return d.maxY
	}
	return v
}

func abs(v float64) float64 {
	if v < 0 {
		return -v
	}
	return v
}
