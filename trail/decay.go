package trail

// Decay shrinks an idle trail by one point every EveryFrames ticks. Moving
// resets the schedule so the first eviction after motion stops is always a
// full interval away.
type Decay struct {
	EveryFrames int
	counter     int
}

func NewDecay(everyFrames int) *Decay {
	if everyFrames < 1 {
		everyFrames = 1
	}
	return &Decay{EveryFrames: everyFrames}
}

// Tick advances the schedule by one frame and returns true if a point was
// evicted.
func (d *Decay) Tick(t *Trail, idle bool) bool {
	if !idle {
		d.counter = 0
		return false
	}
	if t.Len() == 0 {
		d.counter = 0
		return false
	}
	d.counter++
	if d.counter < d.EveryFrames {
		return false
	}
	d.counter = 0
	return t.EvictFront()
}
