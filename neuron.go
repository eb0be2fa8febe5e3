package neuro3d

import (
	"math"
	"math/rand"

	"github.com/go-gl/mathgl/mgl64"
)

// ColorCategory picks which palette entry a neuron is rendered with.
type ColorCategory int

const (
	CategoryBase ColorCategory = iota
	CategoryAccent
	CategoryRare
)

func (c ColorCategory) String() string {
	switch c {
	case CategoryRare:
		return "rare"
	case CategoryAccent:
		return "accent"
	default:
		return "base"
	}
}

// Neuron is a single node of the network. All fields are fixed at
// sampling time and never change for the rest of the session.
type Neuron struct {
	Position mgl64.Vec3
	Category ColorCategory
	Size     float64
}

// SampleNeurons places count neurons uniformly inside a sphere of the
// given radius, then squashes the vertical axis by flatten (<1) so the
// cloud reads as a disc rather than a ball.
//
// Uniform volume density needs r = radius * cbrt(u) for the radial
// draw and phi = acos(2u-1) for the polar angle; sampling either one
// uniformly instead would pile points up near the surface or the poles.
func SampleNeurons(rng *rand.Rand, count int, radius, flatten float64) []Neuron {
	if count <= 0 {
		return nil
	}

	neurons := make([]Neuron, 0, count)
	for i := 0; i < count; i++ {
		r := radius * math.Cbrt(rng.Float64())
		theta := rng.Float64() * 2 * math.Pi
		phi := math.Acos(2*rng.Float64() - 1)

		sinPhi := math.Sin(phi)
		pos := mgl64.Vec3{
			r * sinPhi * math.Cos(theta),
			r * math.Cos(phi) * flatten,
			r * sinPhi * math.Sin(theta),
		}

		// 10% rare, 30% accent, 60% base.
		var cat ColorCategory
		switch u := rng.Float64(); {
		case u > 0.9:
			cat = CategoryRare
		case u > 0.6:
			cat = CategoryAccent
		default:
			cat = CategoryBase
		}

		neurons = append(neurons, Neuron{
			Position: pos,
			Category: cat,
			Size:     1 + 2*rng.Float64(),
		})
	}

	return neurons
}
