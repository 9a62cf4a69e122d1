package components

import "github.com/yohamta/donburi"

// ViewportData is the window geometry last reported by Layout
type ViewportData struct {
	Width, Height float64 // viewport size in window pixels
	DPR           float64 // device scale factor, capped at the render scale cap
	CanvasW       int     // ceil(Width*DPR)
	CanvasH       int
}

var Viewport = donburi.NewComponentType[ViewportData]()
