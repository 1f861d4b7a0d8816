package main

import (
	"encoding/binary"
	"math"

	"github.com/pkg/errors"
)

// SampleFormat selects the on-wire width of one complex input sample.
type SampleFormat int

const (
	// SampleFormatFloat32 decodes two little-endian float32 values per
	// sample (8 bytes total). This is the default, matching the
	// uavrt-compatible source variant.
	SampleFormatFloat32 SampleFormat = iota
	// SampleFormatInt16 decodes two little-endian signed int16 values per
	// sample, each scaled by 1/32768 (4 bytes total).
	SampleFormatInt16
)

// BytesPerSample is kBytesPerIQ for the given format.
func (f SampleFormat) BytesPerSample() int {
	if f == SampleFormatInt16 {
		return 4
	}
	return 8
}

const int16Scale = 1.0 / 32768.0

// decodeIQ converts an aligned byte slice into complex samples. The
// caller is responsible for alignment: len(data) must be a multiple of
// f.BytesPerSample().
func decodeIQ(f SampleFormat, data []byte) ([]complex64, error) {
	width := f.BytesPerSample()
	if len(data)%width != 0 {
		return nil, errors.Errorf("unaligned IQ byte stream: %d bytes is not a multiple of %d", len(data), width)
	}

	n := len(data) / width
	out := make([]complex64, n)

	switch f {
	case SampleFormatInt16:
		for i := 0; i < n; i++ {
			off := i * width
			iv := int16(binary.LittleEndian.Uint16(data[off:]))
			qv := int16(binary.LittleEndian.Uint16(data[off+2:]))
			out[i] = complex(float32(iv)*int16Scale, float32(qv)*int16Scale)
		}
	default:
		for i := 0; i < n; i++ {
			off := i * width
			iv := math.Float32frombits(binary.LittleEndian.Uint32(data[off:]))
			qv := math.Float32frombits(binary.LittleEndian.Uint32(data[off+4:]))
			out[i] = complex(iv, qv)
		}
	}

	return out, nil
}
