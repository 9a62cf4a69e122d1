package trail

const (
	// Capacity is the size of the shader's point uniform array. The Trail
	// never holds more points than this.
	Capacity = 64

	// HardMaxLength is the longest trail the sampler will ever grow,
	// independent of velocity. Kept below Capacity.
	HardMaxLength = 48
)

// CursorPoint is a trail sample in device pixels with the origin at the
// bottom-left of the canvas.
type CursorPoint struct {
	X, Y float64
}

// Trail is an ordered sequence of points, oldest first.
type Trail struct {
	points []CursorPoint
}

func New() *Trail {
	return &Trail{points: make([]CursorPoint, 0, Capacity)}
}

func (t *Trail) Len() int {
	return len(t.points)
}

// Tail returns the newest point.
func (t *Trail) Tail() (CursorPoint, bool) {
	if len(t.points) == 0 {
		return CursorPoint{}, false
	}
	return t.points[len(t.points)-1], true
}

// Append adds p as the newest point, dropping the oldest when the trail is
// already at Capacity.
func (t *Trail) Append(p CursorPoint) {
	if len(t.points) == Capacity {
		t.EvictFront()
	}
	t.points = append(t.points, p)
}

// TrimTo removes points from the front until at most n remain.
func (t *Trail) TrimTo(n int) {
	if n < 0 {
		n = 0
	}
	excess := len(t.points) - n
	if excess <= 0 {
		return
	}
	copy(t.points, t.points[excess:])
	t.points = t.points[:n]
}

// EvictFront removes the oldest point. Returns false on an empty trail.
func (t *Trail) EvictFront() bool {
	if len(t.points) == 0 {
		return false
	}
	copy(t.points, t.points[1:])
	t.points = t.points[:len(t.points)-1]
	return true
}

// Snapshot copies the current points into dst and returns it. Renderers take
// a snapshot at the start of a frame so later mutations don't leak into the
// frame being drawn.
func (t *Trail) Snapshot(dst []CursorPoint) []CursorPoint {
	return append(dst[:0], t.points...)
}

func (t *Trail) Reset() {
	t.points = t.points[:0]
}
