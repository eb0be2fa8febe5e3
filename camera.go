package neuro3d

import (
	"math"

	"github.com/go-gl/mathgl/mgl64"
)

const (
	// orbitRate is the idle rotation speed in radians per second.
	orbitRate = 0.1

	// orbitPointerGain converts the normalized pointer offset into an
	// extra orbit angle, so dragging the pointer right swings the
	// camera around the cloud.
	orbitPointerGain = 0.004

	// orbitSmoothing is the fraction of the remaining distance the
	// camera covers each tick. Applied per tick, not per second, so
	// settling time varies with the refresh rate.
	orbitSmoothing = 0.05
)

// StepOrbit returns the next camera position given the current clock,
// input snapshot and previous position. The desired position sits on a
// circle of targetRadius around the origin at a height set by the
// pointer, and the camera eases toward it one smoothing step at a time.
// Pure function: no state beyond the arguments.
func StepOrbit(elapsed, pointerX, pointerY, targetRadius float64, prev mgl64.Vec3) mgl64.Vec3 {
	angle := elapsed*orbitRate + pointerX*orbitPointerGain

	desired := mgl64.Vec3{
		math.Sin(angle) * targetRadius,
		pointerY,
		math.Cos(angle) * targetRadius,
	}

	return mgl64.Vec3{
		prev.X() + (desired.X()-prev.X())*orbitSmoothing,
		prev.Y() + (desired.Y()-prev.Y())*orbitSmoothing,
		prev.Z() + (desired.Z()-prev.Z())*orbitSmoothing,
	}
}

// OrbitCamera owns the camera position between ticks and derives the
// view matrix from it. Orientation is never stored: after every move
// the camera is pointed back at the world origin.
type OrbitCamera struct {
	position mgl64.Vec3
	view     mgl64.Mat4
}

// NewOrbitCamera places the camera on the +Z axis at the given distance,
// looking at the origin.
func NewOrbitCamera(distance float64) *OrbitCamera {
	c := &OrbitCamera{position: mgl64.Vec3{0, 0, distance}}
	c.lookAtOrigin()
	return c
}

// Advance moves the camera one smoothing step toward the orbit target
// for this tick and re-derives its orientation.
func (c *OrbitCamera) Advance(elapsed float64, in InputSnapshot) {
	c.position = StepOrbit(elapsed, in.PointerX, in.PointerY, in.TargetRadius, c.position)
	c.lookAtOrigin()
}

func (c *OrbitCamera) lookAtOrigin() {
	c.view = mgl64.LookAtV(c.position, mgl64.Vec3{}, mgl64.Vec3{0, 1, 0})
}

func (c *OrbitCamera) Position() mgl64.Vec3 {
	return c.position
}

// View returns the world-to-camera matrix for the current position.
func (c *OrbitCamera) View() mgl64.Mat4 {
	return c.view
}
