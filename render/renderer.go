// Package render draws the trail on the GPU with the gooey Kage shader and a
// ping-pong pair of offscreen images.
package render

import (
	"errors"
	"fmt"
	"image"

	"github.com/hajimehoshi/ebiten/v2"
	"go.uber.org/zap"

	"github.com/automoto/gooey-cursor/assets"
	"github.com/automoto/gooey-cursor/field"
	"github.com/automoto/gooey-cursor/pipeline"
	"github.com/automoto/gooey-cursor/trail"
)

var ErrShaderCompile = errors.New("render: shader compile failed")

// ScreenBlend composites the overlay like CSS mix-blend-mode: screen.
var ScreenBlend = ebiten.Blend{
	BlendFactorSourceRGB:        ebiten.BlendFactorOne,
	BlendFactorSourceAlpha:      ebiten.BlendFactorOne,
	BlendFactorDestinationRGB:   ebiten.BlendFactorOneMinusSourceColor,
	BlendFactorDestinationAlpha: ebiten.BlendFactorOneMinusSourceAlpha,
	BlendOperationRGB:           ebiten.BlendOperationAdd,
	BlendOperationAlpha:         ebiten.BlendOperationAdd,
}

// Renderer owns every GPU resource of the effect. Create one per mount and
// Dispose it on unmount.
type Renderer struct {
	opts     field.Options
	shader   *ebiten.Shader
	buffers  *pipeline.PingPong[*ebiten.Image]
	uniforms *Uniforms
	snapshot []trail.CursorPoint

	drawOp *ebiten.DrawRectShaderOptions
	blitOp *ebiten.DrawImageOptions
	log    *zap.Logger
}

// New compiles the shader and allocates a width x height pair.
func New(opts field.Options, width, height int, log *zap.Logger) (*Renderer, error) {
	if log == nil {
		log = zap.NewNop()
	}
	if err := opts.Validate(); err != nil {
		return nil, err
	}
	shader, err := assets.CompileGooeyShader()
	if err != nil {
		return nil, fmt.Errorf("%w: %v", ErrShaderCompile, err)
	}
	buffers, err := pipeline.New[*ebiten.Image](imageAllocator{}, width, height)
	if err != nil {
		shader.Deallocate()
		return nil, err
	}

	r := &Renderer{
		opts:     opts,
		shader:   shader,
		buffers:  buffers,
		uniforms: NewUniforms(opts),
		snapshot: make([]trail.CursorPoint, 0, trail.Capacity),
		drawOp:   &ebiten.DrawRectShaderOptions{Blend: ebiten.BlendCopy},
		blitOp:   &ebiten.DrawImageOptions{Blend: ScreenBlend},
		log:      log,
	}
	r.drawOp.Uniforms = r.uniforms.Map()
	log.Info("trail renderer ready", zap.Int("width", width), zap.Int("height", height))
	return r, nil
}

// SetColor swaps the colour uniform. Nothing is recompiled.
func (r *Renderer) SetColor(c field.RGB) {
	r.opts.Color = c
	r.uniforms.SetColor(c)
}

// Resize recreates both targets at the new canvas size.
func (r *Renderer) Resize(width, height int) error {
	if w, h := r.buffers.Size(); w == width && h == height {
		return nil
	}
	if err := r.buffers.Resize(width, height); err != nil {
		return err
	}
	r.log.Debug("trail buffers resized", zap.Int("width", width), zap.Int("height", height))
	return nil
}

// Draw renders one frame of t into the pair and composites the result onto
// screen.
func (r *Renderer) Draw(screen *ebiten.Image, t *trail.Trail) error {
	r.snapshot = t.Snapshot(r.snapshot)
	r.uniforms.SetPoints(r.snapshot)

	written, err := r.buffers.Step(func(read, write *ebiten.Image) error {
		write.Clear()
		r.drawOp.Images[0] = read
		w, h := r.buffers.Size()
		write.DrawRectShader(w, h, r.shader, r.drawOp)
		r.drawOp.Images[0] = nil
		return nil
	})
	if err != nil {
		return err
	}
	screen.DrawImage(written, r.blitOp)
	return nil
}

func (r *Renderer) Parity() int {
	return r.buffers.Parity()
}

func (r *Renderer) Size() (int, int) {
	return r.buffers.Size()
}

// LiveBuffers is the number of offscreen images currently allocated.
func (r *Renderer) LiveBuffers() int {
	return r.buffers.Live()
}

// Dispose frees the images and the shader.
func (r *Renderer) Dispose() {
	r.buffers.Dispose()
	if r.shader != nil {
		r.shader.Deallocate()
		r.shader = nil
	}
	r.log.Info("trail renderer disposed")
}

// imageAllocator creates offscreen images. Ebitengine panics on allocation
// failure; that is turned into an error so the pipeline can retry.
type imageAllocator struct{}

func (imageAllocator) Allocate(width, height int) (img *ebiten.Image, err error) {
	defer func() {
		if rec := recover(); rec != nil {
			img = nil
			err = fmt.Errorf("render: new image %dx%d: %v", width, height, rec)
		}
	}()
	return ebiten.NewImageWithOptions(image.Rect(0, 0, width, height), &ebiten.NewImageOptions{
		Unmanaged: true,
	}), nil
}

func (imageAllocator) Release(img *ebiten.Image) {
	if img != nil {
		img.Deallocate()
	}
}
