package main

import (
	"math"
	"testing"
)

const tapSumTolerance = 1e-3

func TestDesignLowpassNormalizesAndIsOdd(t *testing.T) {
	cases := []struct {
		taps   int
		cutoff float64
	}{
		{128, 0.45 / 8},
		{80, 0.45 / 5},
		{2, 0.1},
		{1, 0.2},
		{17, 0.3},
	}

	for _, c := range cases {
		h := designLowpass(c.taps, c.cutoff)
		if len(h) < 3 || len(h)%2 == 0 {
			t.Fatalf("designLowpass(%d, %v): length %d is not odd and >=3", c.taps, c.cutoff, len(h))
		}

		var sum float64
		for _, v := range h {
			sum += v
		}
		if math.Abs(sum-1) > tapSumTolerance {
			t.Fatalf("designLowpass(%d, %v): taps sum to %v, want ~1", c.taps, c.cutoff, sum)
		}
	}
}

func TestFIRDecimatorRateForConstantInput(t *testing.T) {
	const factor = 4
	f := newFIRDecimator(factor, 17, 0.45/factor)

	in := make([]complex64, 20)
	for i := range in {
		in[i] = complex(1, 0)
	}

	out := f.process(in)
	if got, want := len(out), 5; got != want {
		t.Fatalf("output length = %d, want %d", got, want)
	}
}

func TestFIRDecimatorChunkInvariance(t *testing.T) {
	const factor = 5
	total := make([]complex64, 300)
	for i := range total {
		total[i] = complex(float32(math.Sin(float64(i)*0.05)), float32(math.Cos(float64(i)*0.07)))
	}

	whole := newFIRDecimator(factor, 41, 0.45/factor)
	wholeOut := whole.process(total)

	chunked := newFIRDecimator(factor, 41, 0.45/factor)
	var chunkedOut []complex64
	for _, size := range []int{7, 13, 1, 50, 29, 200} {
		if size > len(total) {
			size = len(total)
		}
		chunkedOut = append(chunkedOut, chunked.process(total[:size])...)
		total = total[size:]
		if len(total) == 0 {
			break
		}
	}

	// The decimator's state is purely sequential: splitting the input
	// into arbitrary chunks cannot change the result, since every input
	// sample updates the same circular buffer and phase counter
	// regardless of where a chunk boundary happened to fall.
	if len(wholeOut) != len(chunkedOut) {
		t.Fatalf("output length differs: whole=%d chunked=%d", len(wholeOut), len(chunkedOut))
	}
	for i := range wholeOut {
		if wholeOut[i] != chunkedOut[i] {
			t.Fatalf("sample %d differs: whole=%v chunked=%v", i, wholeOut[i], chunkedOut[i])
		}
	}
}

func TestFIRDecimatorInvalidConfigReturnsEmpty(t *testing.T) {
	f := newFIRDecimator(0, 17, 0.1)
	if out := f.process(make([]complex64, 10)); out != nil {
		t.Fatalf("expected nil output for non-positive factor, got %v", out)
	}

	g := newFIRDecimator(4, 0, 0.1)
	if out := g.process(make([]complex64, 10)); out != nil {
		t.Fatalf("expected nil output for zero taps, got %v", out)
	}
}

func BenchmarkFIRDecimatorProcess(b *testing.B) {
	f := newFIRDecimator(8, 128, 0.45/8)
	in := make([]complex64, 16384)
	for i := range in {
		in[i] = complex(1, 0)
	}

	b.SetBytes(int64(len(in)) * 8)
	b.ReportAllocs()
	b.ResetTimer()
	for n := 0; n < b.N; n++ {
		f.process(in)
	}
}
