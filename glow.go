package neuro3d

import (
	"fmt"

	"github.com/chewxy/math32"
	"github.com/hajimehoshi/ebiten/v2"
)

// thresholdShaderSrc keeps pixels whose luminance clears the threshold
// and blacks out the rest. Everything after that is plain image scaling.
var thresholdShaderSrc = []byte(`
//kage:unit pixels

package main

var Threshold float

func Fragment(dst vec4, src vec2, color vec4) vec4 {
	c := imageSrc0At(src)
	lum := 0.2126*c.r + 0.7152*c.g + 0.0722*c.b
	if lum < Threshold {
		return vec4(0)
	}
	return c
}
`)

// GlowPass is the brightness-threshold bloom applied after the base
// scene pass: extract bright pixels into a buffer downscaled by the
// bloom radius, then composite it back upscaled with linear filtering
// and additive blending. The downscale/upscale round trip is what
// spreads the light.
type GlowPass struct {
	threshold float32
	strength  float32
	radius    int

	shader *ebiten.Shader
	bright *ebiten.Image
}

func NewGlowPass(threshold, strength float64, radius int) (*GlowPass, error) {
	if radius < 1 {
		return nil, fmt.Errorf("glow radius must be at least 1, got %d", radius)
	}
	shader, err := ebiten.NewShader(thresholdShaderSrc)
	if err != nil {
		return nil, fmt.Errorf("compiling threshold shader: %w", err)
	}
	return &GlowPass{
		threshold: float32(threshold),
		strength:  float32(strength),
		radius:    radius,
		shader:    shader,
	}, nil
}

// Resize replaces the bright buffer for a new viewport size. Must be
// called before the first Apply and after every viewport change.
func (g *GlowPass) Resize(width, height int) {
	bw := max(1, width/g.radius)
	bh := max(1, height/g.radius)
	if g.bright != nil {
		if b := g.bright.Bounds(); b.Dx() == bw && b.Dy() == bh {
			return
		}
		g.bright.Deallocate()
	}
	g.bright = ebiten.NewImage(bw, bh)
}

// Apply composites the glow of src onto dst. Returns an error instead
// of drawing when the pass cannot run this frame; the caller is
// expected to keep the un-glowed frame and move on.
func (g *GlowPass) Apply(dst, src *ebiten.Image) error {
	if g.bright == nil {
		return fmt.Errorf("glow pass not sized")
	}
	srcBounds := src.Bounds()
	if srcBounds.Dx() <= 0 || srcBounds.Dy() <= 0 {
		return fmt.Errorf("degenerate glow source %v", srcBounds)
	}

	g.bright.Clear()

	scaleDown := 1 / float32(g.radius)
	shaderOp := &ebiten.DrawRectShaderOptions{}
	shaderOp.GeoM.Scale(float64(scaleDown), float64(scaleDown))
	shaderOp.Images[0] = src
	shaderOp.Uniforms = map[string]any{
		"Threshold": g.threshold,
	}
	g.bright.DrawRectShader(srcBounds.Dx(), srcBounds.Dy(), g.shader, shaderOp)

	op := &ebiten.DrawImageOptions{}
	op.GeoM.Scale(float64(g.radius), float64(g.radius))
	op.Filter = ebiten.FilterLinear
	op.Blend = ebiten.BlendLighter
	s := math32.Min(g.strength, 1)
	op.ColorScale.Scale(g.strength, g.strength, g.strength, s)
	dst.DrawImage(g.bright, op)

	return nil
}
