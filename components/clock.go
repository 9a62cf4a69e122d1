package components

import "github.com/yohamta/donburi"

// ClockData counts fixed-rate updates since the scene started
type ClockData struct {
	Ticks int64
}

var Clock = donburi.NewComponentType[ClockData]()
