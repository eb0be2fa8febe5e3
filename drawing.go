package neuro3d

import (
	"image"
	"image/color"

	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/vector"
)

var (
	whiteImage = ebiten.NewImage(3, 3)
	whiteSub   *ebiten.Image
)

func init() {
	whiteImage.Fill(color.White)
	whiteSub = whiteImage.SubImage(image.Rect(1, 1, 2, 2)).(*ebiten.Image)
}

// drawPointQuad paints one neuron as a screen-aligned diamond of the
// given half-extent. Diamonds batch as two triangles against the shared
// white sub-image, same trick as filling any convex polygon.
func drawPointQuad(dst *ebiten.Image, x, y, half float32, clr color.RGBA) {
	if half <= 0 {
		return
	}

	cr := float32(clr.R) / 255.0
	cg := float32(clr.G) / 255.0
	cb := float32(clr.B) / 255.0
	ca := float32(clr.A) / 255.0

	xs := [4]float32{x, x + half, x, x - half}
	ys := [4]float32{y - half, y, y + half, y}

	vertices := make([]ebiten.Vertex, 4)
	for i := range vertices {
		vertices[i] = ebiten.Vertex{
			DstX:   xs[i],
			DstY:   ys[i],
			SrcX:   1,
			SrcY:   1,
			ColorR: cr,
			ColorG: cg,
			ColorB: cb,
			ColorA: ca,
		}
	}

	op := &ebiten.DrawTrianglesOptions{}
	op.AntiAlias = true
	dst.DrawTriangles(vertices, []uint16{0, 1, 2, 0, 2, 3}, whiteSub, op)
}

// strokeSegment draws a single 1px line segment.
func strokeSegment(dst *ebiten.Image, x1, y1, x2, y2 float32, clr color.Color) {
	vector.StrokeLine(dst, x1, y1, x2, y2, 1, clr, false)
}
