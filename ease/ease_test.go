package ease

import (
	"math"
	"testing"

	"github.com/stretchr/testify/assert"
)

const tol = 1e-9

// all easing functions under their exported names, for sweep tests.
var allFuncs = map[string]Func{
	"Linear":            Linear,
	"InQuad":            InQuad,
	"OutQuad":           OutQuad,
	"InOutQuad":         InOutQuad,
	"InCubic":           InCubic,
	"OutCubic":          OutCubic,
	"InOutCubic":        InOutCubic,
	"InQuart":           InQuart,
	"OutQuart":          OutQuart,
	"InOutQuart":        InOutQuart,
	"InQuint":           InQuint,
	"OutQuint":          OutQuint,
	"InOutQuint":        InOutQuint,
	"InSmoothstep":      InSmoothstep,
	"OutSmoothstep":     OutSmoothstep,
	"InOutSmoothstep":   InOutSmoothstep,
	"InSmootherstep":    InSmootherstep,
	"OutSmootherstep":   OutSmootherstep,
	"InOutSmootherstep": InOutSmootherstep,
	"InSine":            InSine,
	"OutSine":           OutSine,
	"InOutSine":         InOutSine,
	"InBounce":          InBounce,
	"OutBounce":         OutBounce,
	"InOutBounce":       InOutBounce,
	"InCirc":            InCirc,
	"OutCirc":           OutCirc,
	"InOutCirc":         InOutCirc,
	"InExpo":            InExpo,
	"OutExpo":           OutExpo,
	"InOutExpo":         InOutExpo,
	"InBack":            InBack,
	"OutBack":           OutBack,
	"InOutBack":         InOutBack,
	"InElastic":         InElastic,
	"OutElastic":        OutElastic,
	"InOutElastic":      InOutElastic,
}

// Expo and Elastic curves are asymptotic and don't hit their endpoints
// exactly; everything else must.
var inexactEndpoints = map[string]bool{
	"InExpo":     true,
	"OutExpo":    true,
	"InOutExpo":  true,
	"InElastic":  true,
	"OutElastic": true,
}

func TestEndpoints(t *testing.T) {
	for name, fn := range allFuncs {
		t.Run(name, func(t *testing.T) {
			if inexactEndpoints[name] {
				assert.InDelta(t, 0, fn(0), 2e-3, "f(0)")
				assert.InDelta(t, 1, fn(1), 2e-3, "f(1)")
				return
			}
			assert.InDelta(t, 0, fn(0), tol, "f(0)")
			assert.InDelta(t, 1, fn(1), tol, "f(1)")
		})
	}
}

func TestMidpointValues(t *testing.T) {
	cases := []struct {
		name string
		fn   Func
		want float64
	}{
		{"Linear", Linear, 0.5},
		{"InQuad", InQuad, 0.25},
		{"OutQuad", OutQuad, 0.75},
		{"InOutQuad", InOutQuad, 0.5},
		{"InCubic", InCubic, 0.125},
		{"OutCubic", OutCubic, 0.875},
		{"InOutCubic", InOutCubic, 0.5},
		{"InQuart", InQuart, 0.0625},
		{"OutQuart", OutQuart, 0.9375},
		{"InQuint", InQuint, 0.03125},
		{"OutQuint", OutQuint, 0.96875},
		{"InOutSmoothstep", InOutSmoothstep, 0.5},
		{"InOutSmootherstep", InOutSmootherstep, 0.5},
		{"InSine", InSine, 1 - math.Sqrt2/2},
		{"OutSine", OutSine, math.Sqrt2 / 2},
		{"InOutSine", InOutSine, 0.5},
		{"InCirc", InCirc, 1 - math.Sqrt(0.75)},
		{"OutCirc", OutCirc, math.Sqrt(0.75)},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.InDelta(t, tc.want, tc.fn(0.5), tol)
		})
	}
}

func TestInOutSymmetry(t *testing.T) {
	// In/Out pairs mirror each other: out(t) == 1 - in(1-t).
	pairs := []struct {
		name    string
		in, out Func
	}{
		{"Quad", InQuad, OutQuad},
		{"Cubic", InCubic, OutCubic},
		{"Quart", InQuart, OutQuart},
		{"Quint", InQuint, OutQuint},
		{"Sine", InSine, OutSine},
		{"Bounce", InBounce, OutBounce},
		{"Circ", InCirc, OutCirc},
	}
	for _, p := range pairs {
		t.Run(p.name, func(t *testing.T) {
			for ti := 0; ti <= 10; ti++ {
				x := float64(ti) / 10
				assert.InDelta(t, 1-p.in(1-x), p.out(x), tol, "t=%v", x)
			}
		})
	}
}

func TestMonotonicFamiliesNonDecreasing(t *testing.T) {
	// Back, Elastic and Bounce are deliberately non-monotonic; every other
	// curve must be non-decreasing over [0,1].
	skip := map[string]bool{
		"InBack": true, "OutBack": true, "InOutBack": true,
		"InElastic": true, "OutElastic": true, "InOutElastic": true,
		"InBounce": true, "OutBounce": true, "InOutBounce": true,
	}
	for name, fn := range allFuncs {
		if skip[name] {
			continue
		}
		t.Run(name, func(t *testing.T) {
			prev := fn(0)
			for i := 1; i <= 200; i++ {
				x := float64(i) / 200
				cur := fn(x)
				if cur < prev-tol {
					t.Fatalf("%s decreased at t=%v: %v < %v", name, x, cur, prev)
				}
				prev = cur
			}
		})
	}
}

func TestOvershootCurves(t *testing.T) {
	// Back pulls below zero early and Elastic overshoots past one late.
	assert.Less(t, InBack(0.2), 0.0)
	assert.Greater(t, OutBack(0.5), 1.0)

	over := false
	for i := 1; i < 100; i++ {
		if OutElastic(float64(i)/100) > 1 {
			over = true
			break
		}
	}
	assert.True(t, over, "OutElastic should exceed 1 somewhere in (0,1)")
}

func TestOutOfRangeInputDoesNotPanic(t *testing.T) {
	inputs := []float64{-10, -1, -0.001, 1.001, 2, 10, math.Inf(1), math.Inf(-1), math.NaN()}
	for name, fn := range allFuncs {
		for _, x := range inputs {
			func() {
				defer func() {
					if r := recover(); r != nil {
						t.Errorf("%s(%v) panicked: %v", name, x, r)
					}
				}()
				fn(x)
			}()
		}
	}
}

func TestBouncePartition(t *testing.T) {
	// Touch points between bounce segments stay continuous.
	for _, x := range []float64{1 / 2.75, 2 / 2.75, 2.5 / 2.75} {
		lo := OutBounce(x - 1e-9)
		hi := OutBounce(x + 1e-9)
		assert.InDelta(t, lo, hi, 1e-6, "discontinuity at %v", x)
	}
}
