package assets

import (
	"embed"
	"fmt"

	"github.com/hajimehoshi/ebiten/v2"
)

//go:embed shaders/*.kage
var shaderFS embed.FS

const gooeyShaderPath = "shaders/gooey.kage"

// GooeyShaderSource returns the Kage source of the trail shader.
func GooeyShaderSource() ([]byte, error) {
	return shaderFS.ReadFile(gooeyShaderPath)
}

// CompileGooeyShader compiles the trail shader. The caller owns the result
// and must Deallocate it.
func CompileGooeyShader() (*ebiten.Shader, error) {
	src, err := GooeyShaderSource()
	if err != nil {
		return nil, fmt.Errorf("assets: read %s: %w", gooeyShaderPath, err)
	}
	sh, err := ebiten.NewShader(src)
	if err != nil {
		return nil, fmt.Errorf("assets: compile %s: %w", gooeyShaderPath, err)
	}
	return sh, nil
}
