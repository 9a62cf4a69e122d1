//go:build !(js && wasm)

package main

import "github.com/automoto/gooey-cursor/capability"

func environment(mobile, reducedMotion bool) capability.Environment {
	return capability.FromEnv(mobile, reducedMotion)
}
