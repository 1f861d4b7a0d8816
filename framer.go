package main

import (
	"encoding/binary"
	"math"
)

// framer packetizes decimated output into fixed-size datagrams: a
// one-sample timestamp header followed by payloadSamples consecutive
// complex samples.
type framer struct {
	packetSamples  int
	payloadSamples int
	ts             *timestampEncoder
}

func newFramer(packetSamples int, ts *timestampEncoder) *framer {
	return &framer{
		packetSamples:  packetSamples,
		payloadSamples: packetSamples - 1,
		ts:             ts,
	}
}

// frame builds one datagram's worth of complex samples for the given
// output sample index and payload slice. len(payload) must equal
// f.payloadSamples.
func (f *framer) frame(sampleIndex uint64, payload []complex64) []complex64 {
	sec, nsec := f.ts.headerForSample(sampleIndex)
	out := make([]complex64, 0, f.packetSamples)
	out = append(out, complex(math.Float32frombits(sec), math.Float32frombits(nsec)))
	out = append(out, payload...)
	return out
}

// encodeFrame serializes a frame as little-endian interleaved float32
// pairs, ready for a UDP payload.
func encodeFrame(frame []complex64) []byte {
	buf := make([]byte, len(frame)*8)
	for i, s := range frame {
		binary.LittleEndian.PutUint32(buf[i*8:], math.Float32bits(real(s)))
		binary.LittleEndian.PutUint32(buf[i*8+4:], math.Float32bits(imag(s)))
	}
	return buf
}
