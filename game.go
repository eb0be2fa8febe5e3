package neuro3d

import (
	"fmt"
	"log"
	"math/rand"
	"sync/atomic"
	"time"

	"github.com/hajimehoshi/ebiten/v2"
)

const (
	// DefaultWidth and DefaultHeight are the initial window size; the
	// viewport follows the window afterwards.
	DefaultWidth  = 1280
	DefaultHeight = 800

	// startRadius is where the camera orbit begins before any zoom
	// input arrives.
	startRadius = 100.0

	// wheelStep converts one ebiten wheel unit into the raw scroll
	// delta the zoom accumulator expects. Negative because wheel-up
	// should zoom in.
	wheelStep = -40.0
)

// App is the per-frame driver: it owns the clock, the input cell, the
// camera and the render passes, and implements ebiten.Game so the host
// loop calls Update and Draw once per display refresh.
type App struct {
	scene    *Scene
	camera   *OrbitCamera
	input    *InputState
	uniforms Uniforms
	glow     *GlowPass

	frame  *ebiten.Image
	width  int
	height int

	start   time.Time
	stopped atomic.Bool
}

// NewApp validates the configuration, samples the network and assembles
// the scene. Generation happens here, synchronously, so the network is
// complete before the first tick ever runs.
func NewApp(cfg Config) (*App, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	background, err := parseHexColor(cfg.Background)
	if err != nil {
		return nil, err
	}
	lineColor, err := parseHexColor(cfg.LineColor)
	if err != nil {
		return nil, err
	}

	seed := cfg.Seed
	if seed == 0 {
		seed = time.Now().UnixNano()
	}
	rng := rand.New(rand.NewSource(seed))

	log.Println("Sampling network...")
	neurons := SampleNeurons(rng, cfg.PointCount, cfg.SphereRadius, cfg.FlattenFactor)
	synapses := BuildSynapses(neurons, cfg.ConnectionDistance, cfg.MaxDegree)
	log.Printf("Sampled %d neurons, %d synapses (seed %d)", len(neurons), len(synapses), seed)

	glow, err := NewGlowPass(cfg.BloomThreshold, cfg.BloomStrength, cfg.BloomRadius)
	if err != nil {
		return nil, fmt.Errorf("setting up glow pass: %w", err)
	}

	app := &App{
		scene:  NewScene(neurons, synapses, cfg.SphereRadius, background, cfg.FogDensity, seed),
		camera: NewOrbitCamera(startRadius),
		input:  NewInputState(DefaultWidth, DefaultHeight, startRadius),
		glow:   glow,
		start:  time.Now(),
	}
	app.uniforms.Lines.Color = lineColor

	log.Println("Initialization complete.")
	return app, nil
}

// Stop makes the next Update return ebiten.Termination, ending the run
// loop cleanly. Safe to call from any goroutine.
func (a *App) Stop() {
	a.stopped.Store(true)
}

// Update is one animation tick: poll the input signals into the
// snapshot cell, read the clock once, push it into the uniforms, then
// step the camera toward its orbit target.
func (a *App) Update() error {
	if a.stopped.Load() {
		return ebiten.Termination
	}

	cx, cy := ebiten.CursorPosition()
	a.input.SetPointer(cx, cy)
	if _, wy := ebiten.Wheel(); wy != 0 {
		a.input.AddScroll(wy * wheelStep)
	}

	elapsed := time.Since(a.start).Seconds()
	a.uniforms.SetTime(elapsed)
	a.camera.Advance(elapsed, a.input.Snapshot())

	return nil
}

// Draw renders the base scene pass into the offscreen frame, composites
// it, and applies the glow pass on top. A failing pass drops this
// frame's output and the loop simply carries on next tick; a dropped
// frame beats a dead loop.
func (a *App) Draw(screen *ebiten.Image) {
	if a.frame == nil {
		return
	}

	if err := a.scene.Paint(a.frame, a.camera.View(), a.uniforms); err != nil {
		log.Printf("dropping frame: %v", err)
		return
	}

	screen.DrawImage(a.frame, nil)

	if err := a.glow.Apply(screen, a.frame); err != nil {
		log.Printf("glow pass skipped: %v", err)
	}
}

// Layout tracks the outside (window) size and propagates resizes to the
// offscreen frame, the glow buffers and the pointer normalization
// before the next Draw runs.
func (a *App) Layout(outsideWidth, outsideHeight int) (int, int) {
	width := max(1, outsideWidth)
	height := max(1, outsideHeight)

	if width != a.width || height != a.height {
		a.width = width
		a.height = height
		if a.frame != nil {
			a.frame.Deallocate()
		}
		a.frame = ebiten.NewImage(width, height)
		a.glow.Resize(width, height)
		a.input.Resize(width, height)
	}

	return width, height
}
