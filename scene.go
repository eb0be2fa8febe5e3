package neuro3d

import (
	"fmt"
	"image/color"
	"math"

	"github.com/aquilax/go-perlin"
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl64"
	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// Vertical field of view of the perspective projection.
	fovY = 60.0 * math.Pi / 180.0

	// nearPlane culls geometry at or behind the camera.
	nearPlane = 1.0

	// pointSizeScale converts a neuron's world size into its projected
	// half-extent.
	pointSizeScale = 0.35
)

// Palette for the three neuron categories. Base is the crowd, accent
// breaks it up, rare reads as the bright "active" nodes the glow pass
// picks out.
var (
	colorBase   = color.RGBA{R: 74, G: 158, B: 255, A: 255}
	colorAccent = color.RGBA{R: 255, G: 110, B: 199, A: 255}
	colorRare   = color.RGBA{R: 255, G: 255, B: 255, A: 255}
)

func (c ColorCategory) baseColor() color.RGBA {
	switch c {
	case CategoryRare:
		return colorRare
	case CategoryAccent:
		return colorAccent
	default:
		return colorBase
	}
}

// Scene holds the registered renderables: the neuron point cloud, the
// synapse line set, and a static wireframe cube marking the sampling
// volume. Contents never change after assembly; only the camera and the
// uniforms move between frames.
type Scene struct {
	neurons  []Neuron
	synapses []Synapse
	cube     [][2]mgl64.Vec3

	background color.RGBA
	fogDensity float64
	shimmer    *perlin.Perlin
}

// NewScene assembles the renderables from a sampled network. bound is
// the half-extent of the debug wireframe cube, normally the sampling
// sphere radius.
func NewScene(neurons []Neuron, synapses []Synapse, bound float64, background color.RGBA, fogDensity float64, seed int64) *Scene {
	return &Scene{
		neurons:    neurons,
		synapses:   synapses,
		cube:       cubeEdges(bound),
		background: background,
		fogDensity: fogDensity,
		shimmer:    perlin.NewPerlin(2, 2, 3, seed),
	}
}

// cubeEdges returns the 12 edges of an axis-aligned cube with the given
// half-extent, centered on the origin.
func cubeEdges(half float64) [][2]mgl64.Vec3 {
	corner := func(i int) mgl64.Vec3 {
		sign := func(bit int) float64 {
			if i&bit != 0 {
				return half
			}
			return -half
		}
		return mgl64.Vec3{sign(1), sign(2), sign(4)}
	}

	var edges [][2]mgl64.Vec3
	for i := 0; i < 8; i++ {
		for _, bit := range []int{1, 2, 4} {
			if i&bit == 0 {
				edges = append(edges, [2]mgl64.Vec3{corner(i), corner(i | bit)})
			}
		}
	}
	return edges
}

// projected is a point mapped to screen space, with the camera-space
// distance kept for fog and size attenuation.
type projected struct {
	x, y  float32
	dist  float32
	scale float32 // focal length over camera depth
}

// project maps a world point through the view matrix onto the screen.
// ok is false for points at or behind the near plane; those are culled,
// not clipped.
func project(view mgl64.Mat4, p mgl64.Vec3, focal, cx, cy float32) (projected, bool) {
	cam := view.Mul4x1(p.Vec4(1))
	z := cam.Z()
	if z >= -nearPlane {
		return projected{}, false
	}

	depth := float32(-z)
	scale := focal / depth
	return projected{
		x:     cx + float32(cam.X())*scale,
		y:     cy - float32(cam.Y())*scale,
		dist:  math32.Sqrt(float32(cam.X()*cam.X()+cam.Y()*cam.Y()) + depth*depth),
		scale: scale,
	}, true
}

// focalLength derives the projection's focal length in pixels from the
// viewport height and the fixed vertical field of view.
func focalLength(height int) float32 {
	return float32(height) / 2 / math32.Tan(float32(fovY)/2)
}

// fogFactor is the surviving fraction of a color at the given distance,
// exponential falloff.
func (s *Scene) fogFactor(dist float32) float32 {
	return math32.Exp(-float32(s.fogDensity) * dist)
}

// scaleColor multiplies the RGB channels by f, clamped to [0, 1].
func scaleColor(clr color.RGBA, f float64) color.RGBA {
	f = clampFloat(f, 0, 1)
	clr.R = uint8(float64(clr.R) * f)
	clr.G = uint8(float64(clr.G) * f)
	clr.B = uint8(float64(clr.B) * f)
	return clr
}

// fogged blends a color toward the background by the fog factor.
func (s *Scene) fogged(clr color.RGBA, factor float32) color.RGBA {
	mix := func(c, bg uint8) uint8 {
		return uint8(float32(bg) + (float32(c)-float32(bg))*factor)
	}
	return color.RGBA{
		R: mix(clr.R, s.background.R),
		G: mix(clr.G, s.background.G),
		B: mix(clr.B, s.background.B),
		A: clr.A,
	}
}

// Paint renders one frame of the scene into dst: background fill, the
// wireframe cube, then every synapse in build order, then every neuron.
// Line order matters: segments drawn later sit on top, and the build
// order is part of the intended look.
func (s *Scene) Paint(dst *ebiten.Image, view mgl64.Mat4, u Uniforms) error {
	bounds := dst.Bounds()
	width, height := bounds.Dx(), bounds.Dy()
	if width <= 0 || height <= 0 {
		return fmt.Errorf("degenerate viewport %dx%d", width, height)
	}

	dst.Fill(s.background)

	focal := focalLength(height)
	cx := float32(width) / 2
	cy := float32(height) / 2

	wireColor := s.fogged(color.RGBA{R: 60, G: 60, B: 90, A: 255}, 0.6)
	for _, edge := range s.cube {
		a, okA := project(view, edge[0], focal, cx, cy)
		b, okB := project(view, edge[1], focal, cx, cy)
		if !okA || !okB {
			continue
		}
		strokeSegment(dst, a.x, a.y, b.x, b.y, wireColor)
	}

	for i, syn := range s.synapses {
		a, okA := project(view, syn.A, focal, cx, cy)
		b, okB := project(view, syn.B, focal, cx, cy)
		if !okA || !okB {
			continue
		}

		// Slow sine pulse traveling along the build order.
		pulse := 0.35 + 0.25*math.Sin(u.Lines.Time*1.5+float64(i)*0.21)
		factor := s.fogFactor((a.dist + b.dist) / 2)

		clr := u.Lines.Color
		clr.A = uint8(255 * pulse)
		strokeSegment(dst, a.x, a.y, b.x, b.y, s.fogged(clr, factor))
	}

	for i, n := range s.neurons {
		p, ok := project(view, n.Position, focal, cx, cy)
		if !ok {
			continue
		}

		// Per-neuron brightness shimmer keyed on the time uniform.
		bright := 0.8 + 0.2*s.shimmer.Noise2D(float64(i)*0.137+0.31, u.Points.Time*0.35)

		clr := scaleColor(n.Category.baseColor(), bright)

		half := float32(n.Size) * p.scale * pointSizeScale
		drawPointQuad(dst, p.x, p.y, half, s.fogged(clr, s.fogFactor(p.dist)))
	}

	return nil
}
