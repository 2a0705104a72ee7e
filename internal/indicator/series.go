package indicator

import "math"

// Rolling-window helpers shared by the technique implementations.
//
// Positions before a full window are NaN, and a NaN anywhere inside a
// window makes that window's result NaN. Comparisons against NaN are
// always false, so a NaN that survives to a threshold check reads as
// "no signal" rather than a spurious one. Final reads go through
// valueAt/lastValue, which reject NaN and infinities outright.

func nanSlice(n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = math.NaN()
	}
	return out
}

// rollingMean returns the windowed arithmetic mean of xs.
func rollingMean(xs []float64, window int) []float64 {
	out := nanSlice(len(xs))
	if window <= 0 || len(xs) < window {
		return out
	}
	for i := window - 1; i < len(xs); i++ {
		sum := 0.0
		for j := i - window + 1; j <= i; j++ {
			sum += xs[j]
		}
		out[i] = sum / float64(window)
	}
	return out
}

// rollingStd returns the windowed sample standard deviation (n-1 divisor).
func rollingStd(xs []float64, window int) []float64 {
	out := nanSlice(len(xs))
	if window <= 1 || len(xs) < window {
		return out
	}
	for i := window - 1; i < len(xs); i++ {
		mean := 0.0
		for j := i - window + 1; j <= i; j++ {
			mean += xs[j]
		}
		mean /= float64(window)

		ss := 0.0
		for j := i - window + 1; j <= i; j++ {
			d := xs[j] - mean
			ss += d * d
		}
		out[i] = math.Sqrt(ss / float64(window-1))
	}
	return out
}

// rollingMin returns the windowed minimum of xs.
func rollingMin(xs []float64, window int) []float64 {
	out := nanSlice(len(xs))
	if window <= 0 || len(xs) < window {
		return out
	}
	for i := window - 1; i < len(xs); i++ {
		m := xs[i-window+1]
		for j := i - window + 2; j <= i; j++ {
			if math.IsNaN(xs[j]) {
				m = math.NaN()
				break
			}
			if xs[j] < m {
				m = xs[j]
			}
		}
		out[i] = m
	}
	return out
}

// rollingMax returns the windowed maximum of xs.
func rollingMax(xs []float64, window int) []float64 {
	out := nanSlice(len(xs))
	if window <= 0 || len(xs) < window {
		return out
	}
	for i := window - 1; i < len(xs); i++ {
		m := xs[i-window+1]
		for j := i - window + 2; j <= i; j++ {
			if math.IsNaN(xs[j]) {
				m = math.NaN()
				break
			}
			if xs[j] > m {
				m = xs[j]
			}
		}
		out[i] = m
	}
	return out
}

// rollingMAD returns the windowed mean absolute deviation of xs.
func rollingMAD(xs []float64, window int) []float64 {
	out := nanSlice(len(xs))
	if window <= 0 || len(xs) < window {
		return out
	}
	for i := window - 1; i < len(xs); i++ {
		mean := 0.0
		for j := i - window + 1; j <= i; j++ {
			mean += xs[j]
		}
		mean /= float64(window)

		dev := 0.0
		for j := i - window + 1; j <= i; j++ {
			dev += math.Abs(xs[j] - mean)
		}
		out[i] = dev / float64(window)
	}
	return out
}

// ema returns the exponential moving average of xs with the given span.
// It seeds with the first value and applies the recursive form
// ema[i] = alpha*xs[i] + (1-alpha)*ema[i-1] where alpha = 2/(span+1).
func ema(xs []float64, span int) []float64 {
	out := make([]float64, len(xs))
	if len(xs) == 0 {
		return out
	}
	alpha := 2.0 / (float64(span) + 1.0)
	out[0] = xs[0]
	for i := 1; i < len(xs); i++ {
		out[i] = alpha*xs[i] + (1-alpha)*out[i-1]
	}
	return out
}

// diff returns first differences; the first position is NaN.
func diff(xs []float64) []float64 {
	out := nanSlice(len(xs))
	for i := 1; i < len(xs); i++ {
		out[i] = xs[i] - xs[i-1]
	}
	return out
}

// valueAt returns xs[i] when it is a usable number. It reports false
// for out-of-range indexes and for NaN or infinite values, which arise
// from windows that never filled or from degenerate arithmetic.
func valueAt(xs []float64, i int) (float64, bool) {
	if i < 0 || i >= len(xs) {
		return 0, false
	}
	v := xs[i]
	if math.IsNaN(v) || math.IsInf(v, 0) {
		return 0, false
	}
	return v, true
}

// lastValue returns the final element of xs via the same guards as valueAt.
func lastValue(xs []float64) (float64, bool) {
	return valueAt(xs, len(xs)-1)
}
