// Package ease provides easing curves for the aspen tween engine.
//
// Every function maps a normalized progress t to an eased progress. Inputs
// typically fall in [0, 1] but the functions are defined over the full real
// line and never panic; overshoot curves (Back, Elastic) intentionally
// return values outside [0, 1].
package ease

import "math"

// Func maps normalized progress to eased progress. Implementations must be
// deterministic and side-effect free.
type Func func(t float64) float64

const (
	halfPi = math.Pi / 2

	// Bounce partition boundaries.
	b1 = 1 / 2.75
	b2 = 2 / 2.75
	b3 = 1.5 / 2.75
	b4 = 2.5 / 2.75
	b5 = 2.25 / 2.75
	b6 = 2.625 / 2.75

	elasticAmplitude = 1.0
	elasticPeriod    = 0.4

	backOvershoot = 1.70158
)

// Linear returns t unchanged.
func Linear(t float64) float64 { return t }

// InQuad accelerates from zero velocity.
func InQuad(t float64) float64 { return t * t }

// OutQuad decelerates to zero velocity.
func OutQuad(t float64) float64 { return -t * (t - 2) }

// InOutQuad accelerates until halfway, then decelerates.
func InOutQuad(t float64) float64 {
	if t <= 0.5 {
		return t * t * 2
	}
	u := t - 1
	return 1 - u*u*2
}

// InCubic accelerates from zero velocity.
func InCubic(t float64) float64 { return t * t * t }

// OutCubic decelerates to zero velocity.
func OutCubic(t float64) float64 {
	u := t - 1
	return 1 + u*u*u
}

// InOutCubic accelerates until halfway, then decelerates.
func InOutCubic(t float64) float64 {
	if t <= 0.5 {
		return t * t * t * 4
	}
	u := t - 1
	return 1 + u*u*u*4
}

// InQuart accelerates from zero velocity.
func InQuart(t float64) float64 { return t * t * t * t }

// OutQuart decelerates to zero velocity.
func OutQuart(t float64) float64 {
	u := t - 1
	return 1 - u*u*u*u
}

// InOutQuart accelerates until halfway, then decelerates.
func InOutQuart(t float64) float64 {
	if t <= 0.5 {
		return t * t * t * t * 8
	}
	u := t*2 - 2
	return (1-u*u*u*u)/2 + 0.5
}

// InQuint accelerates from zero velocity.
func InQuint(t float64) float64 { return t * t * t * t * t }

// OutQuint decelerates to zero velocity.
func OutQuint(t float64) float64 {
	u := t - 1
	return u*u*u*u*u + 1
}

// InOutQuint accelerates until halfway, then decelerates.
func InOutQuint(t float64) float64 {
	u := t * 2
	if u < 1 {
		return u * u * u * u * u / 2
	}
	u -= 2
	return (u*u*u*u*u + 2) / 2
}

// InSmoothstep is the accelerating half of the smoothstep polynomial.
func InSmoothstep(t float64) float64 { return 2 * InOutSmoothstep(t/2) }

// OutSmoothstep is the decelerating half of the smoothstep polynomial.
func OutSmoothstep(t float64) float64 { return 2*InOutSmoothstep(t/2+0.5) - 1 }

// InOutSmoothstep is the classic smoothstep polynomial 3t²-2t³.
func InOutSmoothstep(t float64) float64 { return t * t * (t*-2 + 3) }

// InSmootherstep is the accelerating half of the smootherstep polynomial.
func InSmootherstep(t float64) float64 { return 2 * InOutSmootherstep(t/2) }

// OutSmootherstep is the decelerating half of the smootherstep polynomial.
func OutSmootherstep(t float64) float64 { return 2*InOutSmootherstep(t/2+0.5) - 1 }

// InOutSmootherstep is Perlin's smootherstep polynomial 6t⁵-15t⁴+10t³.
func InOutSmootherstep(t float64) float64 { return t * t * t * (t*(t*6-15) + 10) }

// InSine accelerates along a quarter sine wave.
func InSine(t float64) float64 { return -math.Cos(halfPi*t) + 1 }

// OutSine decelerates along a quarter sine wave.
func OutSine(t float64) float64 { return math.Sin(halfPi * t) }

// InOutSine follows a half sine wave.
func InOutSine(t float64) float64 { return -math.Cos(math.Pi*t)/2 + 0.5 }

// InBounce bounces with increasing amplitude toward the end value.
func InBounce(t float64) float64 { return 1 - OutBounce(1-t) }

// OutBounce bounces with decreasing amplitude after overshooting.
func OutBounce(t float64) float64 {
	switch {
	case t < b1:
		return 7.5625 * t * t
	case t < b2:
		return 7.5625*(t-b3)*(t-b3) + 0.75
	case t < b4:
		return 7.5625*(t-b5)*(t-b5) + 0.9375
	default:
		return 7.5625*(t-b6)*(t-b6) + 0.984375
	}
}

// InOutBounce bounces in during the first half and out during the second.
func InOutBounce(t float64) float64 {
	if t < 0.5 {
		return (1 - OutBounce(1-2*t)) / 2
	}
	return (1 + OutBounce(2*t-1)) / 2
}

// InCirc accelerates along a quarter circle arc.
func InCirc(t float64) float64 { return -(math.Sqrt(1-t*t) - 1) }

// OutCirc decelerates along a quarter circle arc.
func OutCirc(t float64) float64 { return math.Sqrt(1 - (t-1)*(t-1)) }

// InOutCirc follows circle arcs in both halves.
func InOutCirc(t float64) float64 {
	if t <= 0.5 {
		return (math.Sqrt(1-t*t*4) - 1) / -2
	}
	return (math.Sqrt(1-(t*2-2)*(t*2-2)) + 1) / 2
}

// InExpo accelerates exponentially.
func InExpo(t float64) float64 { return math.Pow(2, 10*(t-1)) }

// OutExpo decelerates exponentially.
func OutExpo(t float64) float64 { return -math.Pow(2, -10*t) + 1 }

// InOutExpo accelerates exponentially until halfway, then decelerates.
func InOutExpo(t float64) float64 {
	if t < 0.5 {
		return math.Pow(2, 10*(t*2-1)) / 2
	}
	return (-math.Pow(2, -10*(t*2-1)) + 2) / 2
}

// InBack pulls backward before accelerating toward the end value.
func InBack(t float64) float64 {
	return t * t * ((backOvershoot+1)*t - backOvershoot)
}

// OutBack overshoots the end value before settling.
func OutBack(t float64) float64 {
	u := t - 1
	return 1 - u*u*(-(backOvershoot+1)*u-backOvershoot)
}

// InOutBack pulls backward, overshoots, then settles.
func InOutBack(t float64) float64 {
	u := t * 2
	if u < 1 {
		return u * u * ((backOvershoot+1)*u - backOvershoot) / 2
	}
	u = t*2 - 2
	return (1-u*u*(-(backOvershoot+1)*u-backOvershoot))/2 + 0.5
}

// InElastic oscillates with exponentially growing amplitude.
func InElastic(t float64) float64 {
	u := t - 1
	return -(elasticAmplitude * math.Pow(2, 10*u) *
		math.Sin((u-(elasticPeriod/(2*math.Pi)*math.Asin(1/elasticAmplitude)))*
			(2*math.Pi)/elasticPeriod))
}

// OutElastic oscillates with exponentially decaying amplitude.
func OutElastic(t float64) float64 {
	return elasticAmplitude*math.Pow(2, -10*t)*
		math.Sin((t-(elasticPeriod/(2*math.Pi)*math.Asin(1/elasticAmplitude)))*
			(2*math.Pi)/elasticPeriod) + 1
}

// InOutElastic oscillates in during the first half and out during the second.
func InOutElastic(t float64) float64 {
	u := t - 0.5
	if t < 0.5 {
		return -0.5 * (math.Pow(2, 10*u) *
			math.Sin((u-elasticPeriod/4)*(2*math.Pi)/elasticPeriod))
	}
	return math.Pow(2, -10*u)*
		math.Sin((u-elasticPeriod/4)*(2*math.Pi)/elasticPeriod)*0.5 + 1
}
