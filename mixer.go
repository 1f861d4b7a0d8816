package main

import "math"

// mixer applies a continuous-phase complex frequency shift in place.
// Positive shiftHz raises the signal's apparent frequency (multiplication
// by exp(+j*phi)); a zero shift is a no-op that leaves samples bit-exact.
type mixer struct {
	shiftHz float64
	step    float64
	phase   float64
}

func newMixer(sampleRate, shiftHz float64) *mixer {
	if sampleRate <= 0 {
		sampleRate = 1
	}
	m := &mixer{shiftHz: shiftHz}
	if shiftHz != 0 {
		m.step = 2 * math.Pi * shiftHz / sampleRate
	}
	return m
}

// mix multiplies each sample by cos(phi)+j*sin(phi), advancing phi by the
// fixed per-sample step and folding it back into (-pi, pi].
func (m *mixer) mix(samples []complex64) {
	if m.shiftHz == 0 || len(samples) == 0 {
		return
	}
	for i, s := range samples {
		c := float32(math.Cos(m.phase))
		sn := float32(math.Sin(m.phase))
		samples[i] = s * complex(c, sn)

		m.phase += m.step
		for m.phase > math.Pi {
			m.phase -= 2 * math.Pi
		}
		for m.phase <= -math.Pi {
			m.phase += 2 * math.Pi
		}
	}
}
