package ui

import (
	"math"
	"time"

	"github.com/Equilibrio22/Vorb/pkg/graphics"
	"github.com/charmbracelet/harmonica"
)

// TweenFunc produces the in-flight value of an animated raw geometry
// field. It receives the initial and target values and the current and
// final clocks of the transition window. Implementations must return
// exactly initial at current == 0; the widget snaps to target once the
// window elapses, so the final sample never has to land exactly.
type TweenFunc func(initial, target float64, current, final time.Duration) float64

// Eased builds a TweenFunc from an easing curve mapping linear progress
// in [0, 1] to eased progress.
func Eased(curve func(float64) float64) TweenFunc {
	return func(initial, target float64, current, final time.Duration) float64 {
		if final <= 0 || current >= final {
			return target
		}
		t := float64(current) / float64(final)
		if curve != nil {
			t = curve(t)
		}
		return initial + (target-initial)*t
	}
}

// Standard tweens. The bezier control points match the CSS timing
// functions of the same names.
var (
	TweenLinear    = Eased(nil)
	TweenEase      = Eased(CubicBezier(0.25, 0.1, 0.25, 1.0))
	TweenEaseIn    = Eased(CubicBezier(0.4, 0.0, 1.0, 1.0))
	TweenEaseOut   = Eased(CubicBezier(0.0, 0.0, 0.2, 1.0))
	TweenEaseInOut = Eased(CubicBezier(0.4, 0.0, 0.2, 1.0))
)

// springRate is the simulation step rate for spring tweens.
const springRate = 60

// Spring returns a TweenFunc driven by a damped harmonic oscillator.
// Damping ratios below 1 overshoot the target and settle; 1 is critical
// damping. The oscillator is re-simulated from the initial value on each
// sample, so the tween stays stateless and an overwritten transition
// starts a fresh spring segment.
func Spring(angularFrequency, dampingRatio float64) TweenFunc {
	return func(initial, target float64, current, final time.Duration) float64 {
		if final <= 0 || current >= final {
			return target
		}
		spring := harmonica.NewSpring(harmonica.FPS(springRate), angularFrequency, dampingRatio)
		steps := int(current.Seconds() * springRate)
		pos, vel := initial, 0.0
		for i := 0; i < steps; i++ {
			pos, vel = spring.Update(pos, vel, target)
		}
		return pos
	}
}

// CubicBezier returns an easing curve matching CSS cubic-bezier() with
// control points (x1,y1) and (x2,y2). The curve runs from (0,0) to (1,1).
func CubicBezier(x1, y1, x2, y2 float64) func(float64) float64 {
	return func(t float64) float64 {
		if t <= 0 {
			return 0
		}
		if t >= 1 {
			return 1
		}

		// Newton-Raphson converges quickly for most inputs.
		u := t
		for i := 0; i < 8; i++ {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				return bezierSample(y1, y2, clampUnit(u))
			}
			dx := bezierDerivative(x1, x2, u)
			if math.Abs(dx) < 1e-7 {
				break
			}
			u -= x / dx
		}

		// Bisection fallback guarantees a stable solution in [0,1].
		lo, hi := 0.0, 1.0
		u = clampUnit(u)
		for i := 0; i < 12; i++ {
			x := bezierSample(x1, x2, u) - t
			if math.Abs(x) < 1e-7 {
				break
			}
			if x > 0 {
				hi = u
			} else {
				lo = u
			}
			u = (lo + hi) * 0.5
		}
		return bezierSample(y1, y2, u)
	}
}

func bezierSample(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*t*a + 3*inv*t*t*b + t*t*t
}

func bezierDerivative(a, b, t float64) float64 {
	inv := 1 - t
	return 3*inv*inv*a + 6*inv*t*(b-a) + 3*t*t*(1-b)
}

func clampUnit(v float64) float64 {
	if v < 0 {
		return 0
	}
	if v > 1 {
		return 1
	}
	return v
}

// Transition animates a scalar raw length from an initial to a target
// value over a bounded time window.
//
// Current advances monotonically toward Final and never past it. Once
// Current reaches Final the transition is inert: CurrentRaw returns the
// exact raw target forever after.
type Transition struct {
	RawInitial Length
	RawTarget  Length

	// InitialProcessed and TargetProcessed are the resolved pixel values
	// of the endpoints, snapshotted when the transition was installed.
	InitialProcessed float64
	TargetProcessed  float64

	Current time.Duration
	Final   time.Duration

	Tween TweenFunc
}

// Advance moves the transition clock forward, capping at Final.
func (t *Transition) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	t.Current += dt
	if t.Current > t.Final {
		t.Current = t.Final
	}
}

// Done reports whether the window has elapsed.
func (t *Transition) Done() bool {
	return t.Current >= t.Final
}

// CurrentRaw returns the raw value for the current clock. The result
// carries the target's unit; widgets convert the initial value into that
// unit when installing the transition.
func (t *Transition) CurrentRaw() Length {
	if t.Done() {
		return t.RawTarget
	}
	fn := t.Tween
	if fn == nil {
		fn = TweenLinear
	}
	v := fn(t.RawInitial.Value, t.RawTarget.Value, t.Current, t.Final)
	return Length{Value: v, Unit: t.RawTarget.Unit}
}

// CurrentProcessed interpolates between the processed endpoint snapshots
// for the current clock. It gives renderers a pixel value mid-flight
// without re-resolving units; the endpoints stay as installed even if
// the parent extents change during the window.
func (t *Transition) CurrentProcessed() float64 {
	if t.Done() {
		return t.TargetProcessed
	}
	fn := t.Tween
	if fn == nil {
		fn = TweenLinear
	}
	return fn(t.InitialProcessed, t.TargetProcessed, t.Current, t.Final)
}

// Transition2 animates a two-axis raw length with a shared clock and
// tween. Each axis interpolates independently.
type Transition2 struct {
	RawInitial Length2
	RawTarget  Length2

	InitialProcessed graphics.Offset
	TargetProcessed  graphics.Offset

	Current time.Duration
	Final   time.Duration

	Tween TweenFunc
}

// Advance moves the transition clock forward, capping at Final.
func (t *Transition2) Advance(dt time.Duration) {
	if dt < 0 {
		return
	}
	t.Current += dt
	if t.Current > t.Final {
		t.Current = t.Final
	}
}

// Done reports whether the window has elapsed.
func (t *Transition2) Done() bool {
	return t.Current >= t.Final
}

// CurrentRaw returns the raw pair for the current clock.
func (t *Transition2) CurrentRaw() Length2 {
	if t.Done() {
		return t.RawTarget
	}
	fn := t.Tween
	if fn == nil {
		fn = TweenLinear
	}
	return Length2{
		X: Length{
			Value: fn(t.RawInitial.X.Value, t.RawTarget.X.Value, t.Current, t.Final),
			Unit:  t.RawTarget.X.Unit,
		},
		Y: Length{
			Value: fn(t.RawInitial.Y.Value, t.RawTarget.Y.Value, t.Current, t.Final),
			Unit:  t.RawTarget.Y.Unit,
		},
	}
}

// CurrentProcessed interpolates the processed endpoint snapshots for the
// current clock, axis by axis.
func (t *Transition2) CurrentProcessed() graphics.Offset {
	if t.Done() {
		return t.TargetProcessed
	}
	fn := t.Tween
	if fn == nil {
		fn = TweenLinear
	}
	return graphics.Offset{
		X: fn(t.InitialProcessed.X, t.TargetProcessed.X, t.Current, t.Final),
		Y: fn(t.InitialProcessed.Y, t.TargetProcessed.Y, t.Current, t.Final),
	}
}
