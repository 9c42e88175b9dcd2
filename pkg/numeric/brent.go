package numeric

import (
	"math"

	"github.com/pkg/errors"
)

var (
	// ErrNoBracket is returned when f has the same sign at both bracket ends.
	ErrNoBracket = errors.New("no sign change across bracket")
	// ErrNoConvergence is returned when the iteration limit is reached.
	ErrNoConvergence = errors.New("root finder did not converge")
)

const (
	maxIterations = 100
	tolerance     = 1e-12
)

var epsilon = math.Nextafter(1, 2) - 1

// BrentRoot locates a zero of f inside [lo, hi] using Brent's method,
// combining bisection with secant and inverse quadratic interpolation.
// The bracket must straddle a sign change of f.
func BrentRoot(f func(float64) float64, lo, hi float64) (float64, error) {
	a, b := lo, hi
	fa, fb := f(a), f(b)
	if fa == 0 {
		return a, nil
	}
	if fb == 0 {
		return b, nil
	}
	if (fa > 0) == (fb > 0) {
		return 0, errors.Wrapf(ErrNoBracket, "f(%g)=%g and f(%g)=%g", a, fa, b, fb)
	}

	c, fc := a, fa
	d := b - a
	e := d
	for i := 0; i < maxIterations; i++ {
		if (fb > 0) == (fc > 0) {
			c, fc = a, fa
			d = b - a
			e = d
		}
		if math.Abs(fc) < math.Abs(fb) {
			a, b, c = b, c, b
			fa, fb, fc = fb, fc, fb
		}

		tol := 2*epsilon*math.Abs(b) + tolerance/2
		xm := (c - b) / 2
		if math.Abs(xm) <= tol || fb == 0 {
			return b, nil
		}

		if math.Abs(e) >= tol && math.Abs(fa) > math.Abs(fb) {
			s := fb / fa
			var p, q float64
			if a == c {
				// secant step
				p = 2 * xm * s
				q = 1 - s
			} else {
				// inverse quadratic interpolation
				q = fa / fc
				r := fb / fc
				p = s * (2*xm*q*(q-r) - (b-a)*(r-1))
				q = (q - 1) * (r - 1) * (s - 1)
			}
			if p > 0 {
				q = -q
			}
			p = math.Abs(p)
			if 2*p < math.Min(3*xm*q-math.Abs(tol*q), math.Abs(e*q)) {
				e = d
				d = p / q
			} else {
				// interpolation rejected, fall back to bisection
				d = xm
				e = d
			}
		} else {
			d = xm
			e = d
		}

		a, fa = b, fb
		if math.Abs(d) > tol {
			b += d
		} else {
			b += math.Copysign(tol, xm)
		}
		fb = f(b)
	}
	return 0, errors.Wrapf(ErrNoConvergence, "after %d iterations near %g", maxIterations, b)
}
