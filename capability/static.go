package capability

import (
	"os"
	"runtime"
	"strconv"
	"sync"
)

// Static is an Environment whose values come from flags and environment
// variables. SetReducedMotion notifies subscribers, which is how desktop
// builds emulate the accessibility media query.
type Static struct {
	mu        sync.Mutex
	mobile    bool
	reduced   bool
	nextID    int
	listeners map[int]func(bool)
}

func NewStatic(mobile, reducedMotion bool) *Static {
	return &Static{
		mobile:    mobile,
		reduced:   reducedMotion,
		listeners: map[int]func(bool){},
	}
}

// FromEnv builds a Static environment from GOOEY_MOBILE and
// GOOEY_REDUCED_MOTION, OR-ed with the given flag values. Android and iOS
// builds are always treated as touch-primary.
func FromEnv(mobileFlag, reducedFlag bool) *Static {
	mobile := mobileFlag || envBool("GOOEY_MOBILE") || runtime.GOOS == "android" || runtime.GOOS == "ios"
	reduced := reducedFlag || envBool("GOOEY_REDUCED_MOTION")
	return NewStatic(mobile, reduced)
}

func (s *Static) IsMobile() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.mobile
}

func (s *Static) ReducedMotion() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.reduced
}

func (s *Static) OnReducedMotionChange(fn func(bool)) func() {
	s.mu.Lock()
	defer s.mu.Unlock()
	id := s.nextID
	s.nextID++
	s.listeners[id] = fn
	return func() {
		s.mu.Lock()
		defer s.mu.Unlock()
		delete(s.listeners, id)
	}
}

// SetReducedMotion changes the preference and notifies listeners.
func (s *Static) SetReducedMotion(reduced bool) {
	s.mu.Lock()
	s.reduced = reduced
	fns := make([]func(bool), 0, len(s.listeners))
	for _, fn := range s.listeners {
		fns = append(fns, fn)
	}
	s.mu.Unlock()

	for _, fn := range fns {
		fn(reduced)
	}
}

func envBool(key string) bool {
	v, ok := os.LookupEnv(key)
	if !ok {
		return false
	}
	b, err := strconv.ParseBool(v)
	return err == nil && b
}
