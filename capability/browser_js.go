//go:build js && wasm

package capability

import (
	"regexp"
	"syscall/js"
)

var mobileUA = regexp.MustCompile(`(?i)android|webos|iphone|ipad|ipod|blackberry|iemobile|opera mini|mobile`)

const reducedMotionQuery = "(prefers-reduced-motion: reduce)"

// Browser reads capabilities from the page the wasm module runs in.
type Browser struct {
	query js.Value
}

func NewBrowser() *Browser {
	b := &Browser{}
	if mm := js.Global().Get("matchMedia"); mm.Type() == js.TypeFunction {
		b.query = js.Global().Call("matchMedia", reducedMotionQuery)
	}
	return b
}

// IsMobile uses the user agent, then the touch point count.
func (b *Browser) IsMobile() bool {
	nav := js.Global().Get("navigator")
	if !nav.Truthy() {
		return false
	}
	if ua := nav.Get("userAgent"); ua.Type() == js.TypeString && mobileUA.MatchString(ua.String()) {
		return true
	}
	if tp := nav.Get("maxTouchPoints"); tp.Type() == js.TypeNumber && tp.Int() > 0 {
		// Touch laptops report touch points too; only count them when the
		// primary pointer is coarse.
		coarse := js.Global().Call("matchMedia", "(pointer: coarse)")
		return coarse.Truthy() && coarse.Get("matches").Bool()
	}
	return false
}

func (b *Browser) ReducedMotion() bool {
	if !b.query.Truthy() {
		return false
	}
	return b.query.Get("matches").Bool()
}

func (b *Browser) OnReducedMotionChange(fn func(bool)) func() {
	if !b.query.Truthy() {
		return func() {}
	}
	cb := js.FuncOf(func(this js.Value, args []js.Value) any {
		if len(args) > 0 {
			fn(args[0].Get("matches").Bool())
		}
		return nil
	})
	b.query.Call("addEventListener", "change", cb)
	return func() {
		b.query.Call("removeEventListener", "change", cb)
		cb.Release()
	}
}
