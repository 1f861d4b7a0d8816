package main

import "testing"

func TestDecodeIQFloat32(t *testing.T) {
	// -1.0, 0.0 as little-endian float32 pairs.
	data := []byte{0x00, 0x00, 0x80, 0xBF, 0x00, 0x00, 0x00, 0x00}
	out, err := decodeIQ(SampleFormatFloat32, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(out) != 1 {
		t.Fatalf("len(out) = %d, want 1", len(out))
	}
	if real(out[0]) != -1.0 || imag(out[0]) != 0.0 {
		t.Fatalf("sample = %v, want (-1, 0)", out[0])
	}
}

func TestDecodeIQInt16(t *testing.T) {
	// i = -32768 (0x8000), q = 16384 (0x4000)
	data := []byte{0x00, 0x80, 0x00, 0x40}
	out, err := decodeIQ(SampleFormatInt16, data)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got, want := real(out[0]), float32(-1.0); got != want {
		t.Fatalf("I = %v, want %v", got, want)
	}
	if got, want := imag(out[0]), float32(0.5); got != want {
		t.Fatalf("Q = %v, want %v", got, want)
	}
}

func TestDecodeIQUnaligned(t *testing.T) {
	if _, err := decodeIQ(SampleFormatFloat32, make([]byte, 3)); err == nil {
		t.Fatal("expected alignment error")
	}
	if _, err := decodeIQ(SampleFormatInt16, make([]byte, 3)); err == nil {
		t.Fatal("expected alignment error")
	}
}

func TestBytesPerSample(t *testing.T) {
	if got, want := SampleFormatFloat32.BytesPerSample(), 8; got != want {
		t.Fatalf("float32 width = %d, want %d", got, want)
	}
	if got, want := SampleFormatInt16.BytesPerSample(), 4; got != want {
		t.Fatalf("int16 width = %d, want %d", got, want)
	}
}
