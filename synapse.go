package neuro3d

import "github.com/go-gl/mathgl/mgl64"

// Synapse is an undirected line segment between two neurons. Endpoints
// are captured by value when the network is built, so later code cannot
// accidentally move a line by mutating a neuron.
type Synapse struct {
	A mgl64.Vec3
	B mgl64.Vec3
}

// BuildSynapses connects every pair of neurons closer than maxDistance,
// scanning from each point i to the points after it. The scan for a
// point stops once its match counter has exceeded maxDegree, so a single
// point can end up with maxDegree+1 outgoing segments; that slight
// overshoot is part of the look and is kept on purpose.
//
// The output order (i ascending, then j ascending within each i) is what
// the line pass draws in, so it must stay stable.
//
// Worst case this is O(n^2) with the early exit as the only pruning.
// Fine for a few thousand neurons, which is all this ever renders.
func BuildSynapses(neurons []Neuron, maxDistance float64, maxDegree int) []Synapse {
	var synapses []Synapse
	for i := 0; i < len(neurons); i++ {
		degree := 0
		for j := i + 1; j < len(neurons); j++ {
			if neurons[i].Position.Sub(neurons[j].Position).Len() >= maxDistance {
				continue
			}
			synapses = append(synapses, Synapse{
				A: neurons[i].Position,
				B: neurons[j].Position,
			})
			degree++
			if degree > maxDegree {
				break
			}
		}
	}
	return synapses
}
