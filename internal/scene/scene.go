// Package scene runs the per-frame signal to visual pipeline: it polls audio,
// advances the pulse and the motion effects, picks a hue and hands the result
// to the active shape.
package scene

import (
	"errors"
	"log/slog"
	"math/rand"
	"sync"

	"github.com/iburimskiy/pulse-heart/internal/audio"
	"github.com/iburimskiy/pulse-heart/internal/config"
	"github.com/iburimskiy/pulse-heart/internal/motion"
	"github.com/iburimskiy/pulse-heart/internal/shape"
	"github.com/iburimskiy/pulse-heart/internal/signal"
)

// Instructions is the overlay shown until hidden with E.
const Instructions = "Upload a PNG image to replace the heart.\n" +
	"Press ENTER to keep the heart.\n" +
	"Press R to toggle rotation.\n" +
	"Press B to toggle bouncing.\n" +
	"Press E to hide/show instructions and upload button.\n" +
	"Press any other key for fullscreen."

// Command is a discrete user action.
type Command int

const (
	CmdNone Command = iota
	CmdResetHeart
	CmdToggleRotation
	CmdToggleBounce
	CmdToggleInstructions
	CmdToggleFullscreen
)

func (c Command) String() string {
	switch c {
	case CmdResetHeart:
		return "reset-heart"
	case CmdToggleRotation:
		return "toggle-rotation"
	case CmdToggleBounce:
		return "toggle-bounce"
	case CmdToggleInstructions:
		return "toggle-instructions"
	case CmdToggleFullscreen:
		return "toggle-fullscreen"
	}
	return "none"
}

// Renderer is the host canvas: shape drawing plus the frame-level operations
// the orchestrator needs.
type Renderer interface {
	shape.Canvas
	// Background washes the whole canvas with black at alpha, leaving a trail
	// of earlier frames.
	Background(alpha uint8)
	// Push saves the transform and moves the origin to (x, y) rotated by deg.
	Push(x, y, deg float64)
	Pop()
	Text(s string, x, y float64)
}

// Frame is the outcome of one Update, consumed by Draw.
type Frame struct {
	Number   uint64
	Width    float64
	Height   float64
	Position motion.Vec
	Rotation float64 // degrees applied to the transform
	Hue      float64
	Pulse    float64
	Bands    signal.Bands
}

// Orchestrator owns all state carried between frames. Update and Draw and
// HandleCommand must be called from one goroutine.
type Orchestrator struct {
	log     *slog.Logger
	profile config.Profile
	input   audio.Input

	pulse  *signal.Smoother
	motion *motion.State
	colors signal.ColorStrategy
	heart  shape.Drawer

	picture          *shape.Picture
	showInstructions bool
	fullscreen       bool
	lastErr          error

	frame Frame

	pending chan loadResult
	loads   sync.WaitGroup
}

// New builds an orchestrator for profile on a width x height canvas. A nil
// input is treated as silence.
func New(profile config.Profile, input audio.Input, width, height float64, rng *rand.Rand, log *slog.Logger) *Orchestrator {
	if input == nil {
		input = audio.Silence{}
	}
	pulse := signal.NewSmoother(signal.Range{
		InMin:  config.LevelInMin,
		InMax:  config.LevelInMax,
		OutMin: config.PulseMin,
		OutMax: config.PulseMax,
	}, config.PulseSmoothing, 0)

	o := &Orchestrator{
		log:              log,
		profile:          profile,
		input:            input,
		pulse:            pulse,
		motion:           motion.NewState(width, height, rng),
		showInstructions: true,
	}

	switch profile.Color {
	case config.ColorBand:
		o.colors = signal.BandColor{}
	default:
		o.colors = signal.FrameColor{}
	}

	switch profile.Shape {
	case config.ShapeFixedHeart:
		o.heart = shape.FixedHeart()
	case config.ShapeRing:
		o.heart = shape.NewRing(profile.RingParticles, profile.RingScaling, profile.RingSpin)
	default:
		o.heart = shape.GlowHeart()
	}

	o.frame.Width, o.frame.Height = width, height
	o.frame.Position = o.motion.Bounce.Position
	return o
}

// HandleCommand applies a user command. Its effect is visible from the next
// Update on.
func (o *Orchestrator) HandleCommand(cmd Command) {
	switch cmd {
	case CmdResetHeart:
		o.picture = nil
		o.lastErr = nil
	case CmdToggleRotation:
		o.motion.Rotation.Toggle()
	case CmdToggleBounce:
		o.motion.Bounce.Toggle()
	case CmdToggleInstructions:
		o.showInstructions = !o.showInstructions
	case CmdToggleFullscreen:
		o.fullscreen = !o.fullscreen
	default:
		return
	}
	o.log.Debug("command", "cmd", cmd.String())
}

// Upload starts load on its own goroutine. The result is picked up by a later
// Update: on success the picture replaces the heart, on failure nothing
// changes and the error is kept for the overlay.
func (o *Orchestrator) Upload(load LoadFunc) error {
	if o.pending != nil {
		return ErrLoadPending
	}
	ch := make(chan loadResult, 1)
	o.pending = ch
	o.loads.Add(1)
	go func() {
		defer o.loads.Done()
		img, err := load()
		ch <- loadResult{img: img, err: err}
	}()
	return nil
}

// Loading reports whether an upload is in flight.
func (o *Orchestrator) Loading() bool { return o.pending != nil }

func (o *Orchestrator) pollUpload() {
	if o.pending == nil {
		return
	}
	select {
	case res := <-o.pending:
		o.pending = nil
		switch {
		case errors.Is(res.err, ErrCanceled):
			o.log.Debug("upload canceled")
		case res.err != nil:
			o.lastErr = res.err
			o.log.Warn("upload rejected", "error", res.err)
		case res.img == nil:
			o.log.Warn("upload returned no image")
		default:
			o.picture = &shape.Picture{Img: res.img}
			o.lastErr = nil
			b := res.img.Bounds()
			o.log.Info("picture loaded", "width", b.Dx(), "height", b.Dy())
		}
	default:
	}
}

// Update advances one frame on a canvas of the given size.
func (o *Orchestrator) Update(width, height float64) Frame {
	o.pollUpload()

	// Collisions use the size the shape was last drawn at.
	size := shape.Extent(o.activeShape(), o.pulse.Value()).Width
	pos := o.motion.Bounce.Update(width, height, size)
	o.motion.Rotation.Update()

	reading := o.input.Read()
	pulse := o.pulse.Update(reading.Level)

	n := o.frame.Number + 1
	o.frame = Frame{
		Number:   n,
		Width:    width,
		Height:   height,
		Position: pos,
		Rotation: o.motion.Rotation.Applied(),
		Hue:      o.colors.Hue(n, reading.Bands),
		Pulse:    pulse,
		Bands:    reading.Bands,
	}
	return o.frame
}

// Draw renders the latest frame.
func (o *Orchestrator) Draw(r Renderer) {
	f := o.frame
	r.Background(o.profile.TrailAlpha)

	r.Push(f.Position.X, f.Position.Y, f.Rotation)
	o.activeShape().Draw(r, shape.Params{Hue: f.Hue, Pulse: f.Pulse, Frame: f.Number, Bands: f.Bands})
	r.Pop()

	if o.showInstructions {
		text := Instructions
		if o.lastErr != nil {
			text += "\nError: " + o.lastErr.Error()
		}
		r.Text(text, config.InstructionsX, f.Height-config.InstructionsOffset)
	}
}

// Tick is Update followed by Draw.
func (o *Orchestrator) Tick(width, height float64, r Renderer) Frame {
	f := o.Update(width, height)
	o.Draw(r)
	return f
}

func (o *Orchestrator) activeShape() shape.Drawer {
	if o.picture != nil {
		return *o.picture
	}
	return o.heart
}

// ShowingPicture reports whether the user picture replaces the heart.
func (o *Orchestrator) ShowingPicture() bool { return o.picture != nil }

// ShowInstructions reports whether the overlay and upload control are visible.
func (o *Orchestrator) ShowInstructions() bool { return o.showInstructions }

// Fullscreen is the fullscreen state the host should be in.
func (o *Orchestrator) Fullscreen() bool { return o.fullscreen }

// SetFullscreen records a fullscreen change made by the host itself.
func (o *Orchestrator) SetFullscreen(on bool) { o.fullscreen = on }

// Motion exposes the motion state for inspection.
func (o *Orchestrator) Motion() *motion.State { return o.motion }

// LastError is the most recent rejected upload, cleared by a successful load
// or a reset.
func (o *Orchestrator) LastError() error { return o.lastErr }

// Close waits for an in-flight upload to finish. It blocks for as long as an
// open file dialog does, so the host exits without it and only tests call it
// to settle the loader goroutine.
func (o *Orchestrator) Close() {
	o.loads.Wait()
}
