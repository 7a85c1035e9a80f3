// Package normal maps uniform samples onto standard-normal quantiles.
package normal

import "math"

// Domain the generator clamps uniforms into before calling Quantile
const (
	MinProbability = 0.0001
	MaxProbability = 0.9999
)

// Wichura, Algorithm AS241 (PPND16), coefficients in ascending powers.
// Relative accuracy is about 1e-16 over (0,1).
var (
	centralNum = [8]float64{
		3.3871328727963666080e0,
		1.3314166789178437745e+2,
		1.9715909503065514427e+3,
		1.3731693765509461125e+4,
		4.5921953931549871457e+4,
		6.7265770927008700853e+4,
		3.3430575583588128105e+4,
		2.5090809287301226727e+3,
	}
	centralDen = [8]float64{
		1.0,
		4.2313330701600911252e+1,
		6.8718700749205790830e+2,
		5.3941960214247511077e+3,
		2.1213794301586595867e+4,
		3.9307895800092710610e+4,
		2.8729085735721942674e+4,
		5.2264952788528545610e+3,
	}
	nearNum = [8]float64{
		1.42343711074968357734e0,
		4.63033784615654529590e0,
		5.76949722146069140550e0,
		3.64784832476320460504e0,
		1.27045825245236838258e0,
		2.41780725177450611770e-1,
		2.27238449892691845833e-2,
		7.74545014278341407640e-4,
	}
	nearDen = [8]float64{
		1.0,
		2.05319162663775882187e0,
		1.67638483018380384940e0,
		6.89767334985100004550e-1,
		1.48103976427480074590e-1,
		1.51986665636164571966e-2,
		5.47593808499534494600e-4,
		1.05075007164441684324e-9,
	}
	tailNum = [8]float64{
		6.65790464350110377720e0,
		5.46378491116411436990e0,
		1.78482653991729133580e0,
		2.96560571828504891230e-1,
		2.65321895265761230930e-2,
		1.24266094738807843860e-3,
		2.71155556874348757815e-5,
		2.01033439929228813265e-7,
	}
	tailDen = [8]float64{
		1.0,
		5.99832206555887937690e-1,
		1.36929880922735805310e-1,
		1.48753612908506148525e-2,
		7.86869131145613259100e-4,
		1.84631831751005468180e-5,
		1.42151175831644588870e-7,
		2.04426310338993978564e-15,
	}
)

const (
	centralSplit = 0.425
	tailSplit    = 5.0
	centralConst = 0.180625 // centralSplit²
	nearConst    = 1.6
)

// Quantile returns z with Φ(z) = p.
// p must lie strictly inside (0,1); callers clamp with Clamp first.
// Outside the domain the result is NaN (p outside [0,1]) or ±Inf (p = 0 or 1).
func Quantile(p float64) float64 {
	if math.IsNaN(p) || p < 0 || p > 1 {
		return math.NaN()
	}
	if p == 0 {
		return math.Inf(-1)
	}
	if p == 1 {
		return math.Inf(1)
	}

	q := p - 0.5
	if math.Abs(q) <= centralSplit {
		r := centralConst - q*q
		return q * rational(&centralNum, &centralDen, r)
	}

	r := p
	if q > 0 {
		r = 1 - p
	}
	r = math.Sqrt(-math.Log(r))

	var z float64
	if r <= tailSplit {
		z = rational(&nearNum, &nearDen, r-nearConst)
	} else {
		z = rational(&tailNum, &tailDen, r-tailSplit)
	}

	if q < 0 {
		return -z
	}
	return z
}

// Clamp pins u into [MinProbability, MaxProbability]
func Clamp(u float64) float64 {
	if math.IsNaN(u) || u < MinProbability {
		return MinProbability
	}
	if u > MaxProbability {
		return MaxProbability
	}
	return u
}

// rational evaluates num(x)/den(x) with Horner's scheme
func rational(num, den *[8]float64, x float64) float64 {
	n, d := num[7], den[7]
	for i := 6; i >= 0; i-- {
		n = n*x + num[i]
		d = d*x + den[i]
	}
	return n / d
}
