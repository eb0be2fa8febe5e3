package neuro3d

import "image/color"

// PointUniforms is the uniform group shared by every rendered neuron.
type PointUniforms struct {
	Time float64
}

// LineUniforms is the uniform group shared by every synapse line.
type LineUniforms struct {
	Time  float64
	Color color.RGBA
}

// Uniforms collects all shader-visible state the animation loop updates
// each tick. The render passes treat these as read-only inputs.
type Uniforms struct {
	Points PointUniforms
	Lines  LineUniforms
}

// SetTime pushes the current clock into every time-keyed uniform group.
func (u *Uniforms) SetTime(t float64) {
	u.Points.Time = t
	u.Lines.Time = t
}
