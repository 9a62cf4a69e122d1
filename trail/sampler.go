package trail

import "math"

// Config controls how pointer samples become trail points. Velocities are in
// viewport pixels per second, spacings in device pixels.
type Config struct {
	BaseLength        float64 // points kept at zero velocity
	LengthPerVelocity float64 // extra points per px/s
	MaxLength         int     // user cap, clamped to HardMaxLength

	BaseSpacing        float64 // minimum gap between accepted points
	SpacingPerVelocity float64 // extra gap per px/s
	MaxSpacingBonus    float64 // cap on the velocity part of the gap

	IdleVelocity  float64 // below this the pointer counts as idle
	IdleTimeoutMs float64 // no movement for this long zeroes velocity
}

func DefaultConfig() Config {
	return Config{
		BaseLength:         16,
		LengthPerVelocity:  1.0 / 50,
		MaxLength:          HardMaxLength,
		BaseSpacing:        2,
		SpacingPerVelocity: 1.0 / 100,
		MaxSpacingBonus:    10,
		IdleVelocity:       20,
		IdleTimeoutMs:      80,
	}
}

// Sampler turns raw pointer positions into trail points.
type Sampler struct {
	cfg   Config
	trail *Trail

	dpr      float64
	heightPx float64

	hasLast    bool
	lastX      float64
	lastY      float64
	lastMs     float64
	lastMoveMs float64
	velocity   float64
}

func NewSampler(cfg Config, t *Trail) *Sampler {
	return &Sampler{
		cfg:      cfg,
		trail:    t,
		dpr:      1,
		heightPx: 0,
	}
}

// SetViewport sets the device pixel ratio and the canvas height in device
// pixels used to map viewport coordinates into trail space.
func (s *Sampler) SetViewport(dpr, canvasHeightPx float64) {
	if !isFinite(dpr) || dpr <= 0 {
		dpr = 1
	}
	s.dpr = dpr
	s.heightPx = canvasHeightPx
}

func (s *Sampler) Trail() *Trail {
	return s.trail
}

// Velocity is the last measured pointer speed in px/s.
func (s *Sampler) Velocity() float64 {
	return s.velocity
}

// Idle reports whether the pointer is slow enough for idle decay.
func (s *Sampler) Idle() bool {
	return s.velocity < s.cfg.IdleVelocity
}

// MaxPoints is the trail length cap for velocity v.
func (s *Sampler) MaxPoints(v float64) int {
	n := int(math.Floor(s.cfg.BaseLength + v*s.cfg.LengthPerVelocity))
	limit := s.cfg.MaxLength
	if limit <= 0 || limit > HardMaxLength {
		limit = HardMaxLength
	}
	return max(0, min(n, limit))
}

// Spacing is the minimum distance a new point must be from the tail at
// velocity v.
func (s *Sampler) Spacing(v float64) float64 {
	return s.cfg.BaseSpacing + math.Min(v*s.cfg.SpacingPerVelocity, s.cfg.MaxSpacingBonus)
}

// OnPointerMove records a pointer sample in viewport pixels at time nowMs.
// It returns true when a point was appended. Degenerate samples (non-finite
// coordinates, time not moving forward) are dropped without touching state.
func (s *Sampler) OnPointerMove(rawX, rawY, nowMs float64) bool {
	if !isFinite(rawX) || !isFinite(rawY) || !isFinite(nowMs) {
		return false
	}

	if s.hasLast {
		elapsed := nowMs - s.lastMs
		if elapsed <= 0 {
			return false
		}
		dist := math.Hypot(rawX-s.lastX, rawY-s.lastY)
		s.velocity = dist / (elapsed / 1000)
		if dist > 0 {
			s.lastMoveMs = nowMs
		}
	} else {
		s.velocity = 0
		s.lastMoveMs = nowMs
	}
	s.hasLast = true
	s.lastX, s.lastY, s.lastMs = rawX, rawY, nowMs

	p := CursorPoint{
		X: rawX * s.dpr,
		Y: s.heightPx - rawY*s.dpr,
	}

	if tail, ok := s.trail.Tail(); ok {
		if math.Hypot(p.X-tail.X, p.Y-tail.Y) <= s.Spacing(s.velocity) {
			return false
		}
	}

	s.trail.Append(p)
	s.trail.TrimTo(s.MaxPoints(s.velocity))
	return true
}

// Settle zeroes velocity once the pointer has not moved for IdleTimeoutMs.
// The display loop calls it every tick since a resting pointer produces no
// events.
func (s *Sampler) Settle(nowMs float64) {
	if !s.hasLast || !isFinite(nowMs) {
		return
	}
	if nowMs-s.lastMoveMs >= s.cfg.IdleTimeoutMs {
		s.velocity = 0
	}
}

// Reset forgets the previous sample and clears the trail.
func (s *Sampler) Reset() {
	s.hasLast = false
	s.velocity = 0
	s.trail.Reset()
}

func isFinite(f float64) bool {
	return !math.IsNaN(f) && !math.IsInf(f, 0)
}
