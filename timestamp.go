package main

import (
	"math"
	"math/big"
	"time"
)

// timestampEncoder maps an output sample index to an absolute wall-clock
// instant, anchored once on first use. The anchor is immutable for the
// life of the encoder; reset clears it so the next call re-anchors.
type timestampEncoder struct {
	outputRateHz float64

	anchored bool
	baseSec  uint32
	baseNsec uint32
}

func newTimestampEncoder(outputRateHz float64) *timestampEncoder {
	return &timestampEncoder{outputRateHz: outputRateHz}
}

func (t *timestampEncoder) reset() {
	t.anchored = false
}

func (t *timestampEncoder) anchor(now time.Time) {
	t.baseSec = uint32(now.Unix())
	t.baseNsec = uint32(now.Nanosecond())
	t.anchored = true
}

// headerForSample returns the (seconds, nanoseconds) pair for the given
// output sample index. The caller reinterprets each value's bit pattern
// as a float32 when placing it into the header sample.
func (t *timestampEncoder) headerForSample(n uint64) (sec, nsec uint32) {
	if !t.anchored {
		t.anchor(time.Now())
	}

	base := uint64(t.baseSec)*1_000_000_000 + uint64(t.baseNsec)

	var totalNsec uint64
	if rate, ok := exactPositiveRate(t.outputRateHz); ok {
		// Use >=96-bit intermediate precision so runs of days don't
		// overflow or lose bits the way a naive uint64 multiply would.
		elapsed := new(big.Int).Mul(new(big.Int).SetUint64(n), big.NewInt(1_000_000_000))
		elapsed.Div(elapsed, big.NewInt(int64(rate)))
		total := new(big.Int).Add(new(big.Int).SetUint64(base), elapsed)
		totalNsec = total.Uint64()
	} else {
		absolute := float64(t.baseSec) + float64(t.baseNsec)*1e-9 + float64(n)/t.outputRateHz
		s := math.Floor(absolute)
		frac := absolute - s
		ns := math.Round(frac * 1e9)
		if ns >= 1e9 {
			ns -= 1e9
			s++
		}
		totalNsec = uint64(s)*1_000_000_000 + uint64(ns)
	}

	sec64 := totalNsec / 1_000_000_000
	nsec64 := totalNsec % 1_000_000_000
	return uint32(sec64), uint32(nsec64)
}

// exactPositiveRate reports whether rate is an exact positive integer,
// returning it as a uint64 when so.
func exactPositiveRate(rate float64) (uint64, bool) {
	if rate <= 0 || rate != math.Trunc(rate) {
		return 0, false
	}
	return uint64(rate), true
}
