package neuro3d

const (
	// pointerScale maps raw pixels-from-center to the pointer offset
	// the camera consumes.
	pointerScale = 0.1

	// zoomScale maps a raw scroll delta to a change in target radius.
	zoomScale = 0.1

	minTargetRadius = 20.0
	maxTargetRadius = 200.0
)

// InputState is a latest-value snapshot cell for the continuous input
// signals: pointer offset from the viewport center and the accumulated
// zoom target. Only the most recent value of each matters, so there is
// no queue. Written and read on the game loop goroutine only.
type InputState struct {
	pointerX     float64
	pointerY     float64
	targetRadius float64
	width        int
	height       int
}

// InputSnapshot is the per-tick view of InputState handed to the camera.
type InputSnapshot struct {
	PointerX     float64
	PointerY     float64
	TargetRadius float64
}

func NewInputState(width, height int, startRadius float64) *InputState {
	return &InputState{
		width:        width,
		height:       height,
		targetRadius: clampFloat(startRadius, minTargetRadius, maxTargetRadius),
	}
}

// SetPointer overwrites the pointer offset with the latest raw cursor
// position, normalized to a scaled offset from the viewport center.
func (s *InputState) SetPointer(x, y int) {
	s.pointerX = (float64(x) - float64(s.width)/2) * pointerScale
	s.pointerY = (float64(y) - float64(s.height)/2) * pointerScale
}

// AddScroll folds a raw scroll delta into the zoom target. Drift past
// the radius bounds is clamped silently, never reported.
func (s *InputState) AddScroll(delta float64) {
	s.targetRadius = clampFloat(s.targetRadius+delta*zoomScale, minTargetRadius, maxTargetRadius)
}

// Resize records the new viewport size so pointer normalization keeps
// measuring from the true center.
func (s *InputState) Resize(width, height int) {
	s.width = width
	s.height = height
}

func (s *InputState) Snapshot() InputSnapshot {
	return InputSnapshot{
		PointerX:     s.pointerX,
		PointerY:     s.pointerY,
		TargetRadius: s.targetRadius,
	}
}

func clampFloat(value, min, max float64) float64 {
	if value < min {
		return min
	}
	if value > max {
		return max
	}
	return value
}
