package neuro3d

import (
	"math/rand"
	"testing"
)

func TestSampleNeuronsCount(t *testing.T) {
	testCases := []struct {
		name  string
		count int
		want  int
	}{
		{name: "zero points", count: 0, want: 0},
		{name: "negative count treated as empty", count: -3, want: 0},
		{name: "one point", count: 1, want: 1},
		{name: "many points", count: 500, want: 500},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			rng := rand.New(rand.NewSource(1))
			got := SampleNeurons(rng, tc.count, 40, 0.6)
			if len(got) != tc.want {
				t.Errorf("got %d neurons, want %d", len(got), tc.want)
			}
		})
	}
}

func TestSampleNeuronsInsideSphere(t *testing.T) {
	const (
		radius  = 40.0
		flatten = 0.6
	)
	rng := rand.New(rand.NewSource(7))
	neurons := SampleNeurons(rng, 5000, radius, flatten)

	for i, n := range neurons {
		// Undo the vertical flattening before checking the bound; the
		// radial draw happens on the unflattened sphere.
		x, y, z := n.Position.X(), n.Position.Y()/flatten, n.Position.Z()
		if mag := x*x + y*y + z*z; mag > radius*radius*(1+1e-9) {
			t.Fatalf("neuron %d outside sampling sphere: |p|^2 = %v", i, mag)
		}
	}
}

func TestSampleNeuronsFlattening(t *testing.T) {
	const (
		radius  = 40.0
		flatten = 0.6
	)
	rng := rand.New(rand.NewSource(7))
	for i, n := range SampleNeurons(rng, 5000, radius, flatten) {
		if y := n.Position.Y(); y > radius*flatten+1e-9 || y < -radius*flatten-1e-9 {
			t.Fatalf("neuron %d not flattened: y = %v", i, y)
		}
	}
}

func TestSampleNeuronsCategorySplit(t *testing.T) {
	rng := rand.New(rand.NewSource(11))
	neurons := SampleNeurons(rng, 20000, 40, 0.6)

	counts := map[ColorCategory]int{}
	for _, n := range neurons {
		counts[n.Category]++
	}

	total := float64(len(neurons))
	testCases := []struct {
		name     string
		category ColorCategory
		want     float64
	}{
		{name: "rare is the top decile", category: CategoryRare, want: 0.10},
		{name: "accent is the next band", category: CategoryAccent, want: 0.30},
		{name: "base is the remainder", category: CategoryBase, want: 0.60},
	}

	const tolerance = 0.02
	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			got := float64(counts[tc.category]) / total
			if got < tc.want-tolerance || got > tc.want+tolerance {
				t.Errorf("category %v fraction = %v, want %v +- %v", tc.category, got, tc.want, tolerance)
			}
		})
	}
}

func TestSampleNeuronsSizeRange(t *testing.T) {
	rng := rand.New(rand.NewSource(13))
	for i, n := range SampleNeurons(rng, 2000, 40, 0.6) {
		if n.Size < 1 || n.Size > 3 {
			t.Fatalf("neuron %d size %v outside [1, 3]", i, n.Size)
		}
	}
}
