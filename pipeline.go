package main

import (
	"io"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"golang.org/x/xerrors"
)

// datagramSender is the narrow interface the pipeline needs from the UDP
// emitter; tests substitute a fake to observe emitted datagrams without a
// real socket.
type datagramSender interface {
	send(payload []byte)
}

// pipeline owns every piece of state that must survive across stdin read
// iterations: the mixer's phase, each FIR stage's circular buffer and
// decimation phase, the timestamp anchor, the output sample counter, the
// trailing byte carry, and the emission buffer. Every stage owns its own
// state exclusively; samples flow between them by value.
type pipeline struct {
	format SampleFormat

	mixer                  *mixer
	stage1, stage2, stage3 *firDecimator
	ts                     *timestampEncoder
	frm                    *framer
	emit                   datagramSender
	log                    *logrus.Logger

	carry       []byte
	buffer      []complex64
	samplesSent uint64
}

func newPipeline(cfg *Config, emit datagramSender, log *logrus.Logger) *pipeline {
	ts := newTimestampEncoder(cfg.OutputRate())
	frm := newFramer(cfg.PacketSamples, ts)

	return &pipeline{
		format: cfg.SampleFormat,
		mixer:  newMixer(cfg.InputRate, cfg.ShiftHz),
		stage1: newFIRDecimator(8, 8*16, 0.45/8),
		stage2: newFIRDecimator(5, 5*16, 0.45/5),
		stage3: newFIRDecimator(5, 5*16, 0.45/5),
		ts:     ts,
		frm:    frm,
		emit:   emit,
		log:    log,
		buffer: make([]complex64, 0, frm.payloadSamples*2),
		carry:  make([]byte, 0, cfg.SampleFormat.BytesPerSample()),
	}
}

// run drives the top-level read/route/drain loop until EOF or a fatal
// error. chunkSamples is the caller-chosen complex samples per read.
func (p *pipeline) run(r io.Reader, chunkSamples int) error {
	chunkBytes := chunkSamples * p.format.BytesPerSample()
	chunk := make([]byte, chunkBytes)

	for {
		n, err := io.ReadFull(r, chunk)
		if n > 0 {
			if perr := p.processChunk(chunk[:n]); perr != nil {
				return perr
			}
		}
		if err != nil {
			if err == io.EOF || err == io.ErrUnexpectedEOF {
				break
			}
			return errors.Wrap(err, "reading input")
		}
	}

	if len(p.carry) != 0 {
		return errors.Errorf("unaligned input at EOF: %d trailing byte(s)", len(p.carry))
	}
	return nil
}

// processChunk implements steps 2-4 of the top-level loop contract:
// prepend carry, split into an aligned prefix and new carry, decode, mix,
// run the three decimation stages, then drain the emission buffer.
func (p *pipeline) processChunk(data []byte) error {
	width := p.format.BytesPerSample()

	combined := make([]byte, 0, len(p.carry)+len(data))
	combined = append(combined, p.carry...)
	combined = append(combined, data...)

	usable := (len(combined) / width) * width
	toConvert := combined[:usable]

	carry := make([]byte, len(combined)-usable)
	copy(carry, combined[usable:])
	p.carry = carry

	if len(toConvert) == 0 {
		return nil
	}

	samples, err := decodeIQ(p.format, toConvert)
	if err != nil {
		return xerrors.Errorf("decode chunk: %w", err)
	}

	p.mixer.mix(samples)
	decimated := p.stage3.process(p.stage2.process(p.stage1.process(samples)))
	if len(decimated) > 0 {
		p.buffer = append(p.buffer, decimated...)
	}

	for len(p.buffer) >= p.frm.payloadSamples {
		payload := p.buffer[:p.frm.payloadSamples]
		frame := p.frm.frame(p.samplesSent, payload)
		p.emit.send(encodeFrame(frame))

		p.buffer = append(p.buffer[:0], p.buffer[p.frm.payloadSamples:]...)
		p.samplesSent += uint64(p.frm.payloadSamples)
	}

	return nil
}
