//go:build js && wasm

package main

import "github.com/automoto/gooey-cursor/capability"

// The page decides; the flags cannot be passed to a wasm module.
func environment(bool, bool) capability.Environment {
	return capability.NewBrowser()
}
