package main

import (
	"math"

	"gonum.org/v1/gonum/dsp/window"
)

// kTotalDecimation is the fixed end-to-end rate reduction applied by the
// three cascaded FIR stages: 8 * 5 * 5.
const kTotalDecimation = 200.0

// oddTapCount forces a tap count to the odd length the windowed-sinc
// design requires, with a floor of 3.
func oddTapCount(taps int) int {
	if taps%2 == 1 && taps >= 3 {
		return taps
	}
	l := taps | 1
	if l < 3 {
		l = 3
	}
	return l
}

// designLowpass returns windowed-sinc low-pass FIR coefficients for the
// given tap count and cutoff, expressed as a fraction of sample rate in
// (0, 0.5). The Hamming taper comes from gonum's window package rather
// than a hand-rolled cosine, but the shape matches the classic
// 0.54-0.46*cos(2*pi*n/(L-1)) window.
func designLowpass(taps int, cutoff float64) []float64 {
	l := oddTapCount(taps)
	h := make([]float64, l)
	mid := float64(l-1) / 2
	for n := 0; n < l; n++ {
		m := float64(n) - mid
		if m == 0 {
			h[n] = 2 * cutoff
			continue
		}
		h[n] = math.Sin(2*math.Pi*cutoff*m) / (math.Pi * m)
	}
	h = window.Hamming(h)

	var sum float64
	for _, v := range h {
		sum += v
	}
	if sum != 0 {
		for i := range h {
			h[i] /= sum
		}
	}
	return h
}

// firDecimator is a stateful decimating FIR filter. It owns a circular
// history buffer, a write index, and a decimation phase counter; none of
// that state is visible outside process, so callers may chunk their input
// however they like without affecting the output (save for the filter's
// own startup transient).
type firDecimator struct {
	factor int
	taps   []float64

	state    []complex64
	writeIdx int
	phase    int
}

// newFIRDecimator builds a decimator for the given decimation factor, tap
// count, and normalized cutoff. A non-positive factor or zero tap count
// isn't rejected here; process will simply emit nothing, since DSP
// components never fail at runtime, only at construction of the taps.
func newFIRDecimator(factor, taps int, cutoff float64) *firDecimator {
	var h []float64
	if taps > 0 {
		h = designLowpass(taps, cutoff)
	}
	return &firDecimator{
		factor: factor,
		taps:   h,
		state:  make([]complex64, len(h)),
	}
}

// process runs one chunk of input samples through the filter, returning
// the decimated output produced by this chunk alone. State persists
// across calls.
func (f *firDecimator) process(in []complex64) []complex64 {
	if f.factor <= 0 || len(f.taps) == 0 {
		return nil
	}
	n := len(f.state)
	out := make([]complex64, 0, len(in)/f.factor+1)
	for _, s := range in {
		f.state[f.writeIdx] = s
		f.writeIdx++
		if f.writeIdx == n {
			f.writeIdx = 0
		}

		f.phase++
		if f.phase != f.factor {
			continue
		}
		f.phase = 0

		var acc complex64
		idx := f.writeIdx
		for _, tap := range f.taps {
			if idx == 0 {
				idx = n - 1
			} else {
				idx--
			}
			acc += f.state[idx] * complex(float32(tap), 0)
		}
		out = append(out, acc)
	}
	return out
}
