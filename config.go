package main

import (
	"flag"
	"fmt"
	"io"
	"net"
	"strconv"
	"strings"

	"github.com/pkg/errors"
)

// errHelpRequested is returned by ParseConfig when -help was given; the
// caller should exit 0 having already printed usage.
var errHelpRequested = errors.New("help requested")

// Config holds the immutable-after-startup configuration described in
// spec section 3. ShiftHz is already converted from the --shift-khz flag
// into Hz.
type Config struct {
	InputRate     float64
	ShiftHz       float64
	PacketSamples int
	ChunkSamples  int
	IP            string
	Ports         []int
	SampleFormat  SampleFormat
}

// ParseConfig parses args (typically os.Args[1:]) into a Config. Usage
// and flag-parsing errors are written to stderr. A nil error means cfg is
// fully validated and ready to drive construction of the pipeline.
func ParseConfig(args []string, stderr io.Writer) (*Config, error) {
	fs := flag.NewFlagSet("iqdecim", flag.ContinueOnError)
	fs.SetOutput(stderr)

	inputRate := fs.Float64("input-rate", 768000, "incoming complex IQ sample rate, in Hz")
	shiftKhz := fs.Float64("shift-khz", 10, "pre-decimation frequency shift, in kHz")
	frame := fs.Int("frame", 1024, "complex samples per UDP datagram, including the timestamp header")
	chunk := fs.Int("chunk", 16384, "complex samples read per stdin chunk")
	ip := fs.String("ip", "127.0.0.1", "destination IPv4 address")
	ports := fs.String("ports", "10000,10001", "comma-separated destination UDP ports")

	fs.Usage = func() {
		fmt.Fprintln(stderr, "Usage of iqdecim:")
		fs.PrintDefaults()
	}

	if err := fs.Parse(args); err != nil {
		if err == flag.ErrHelp {
			return nil, errHelpRequested
		}
		return nil, errors.Wrap(err, "parsing flags")
	}

	cfg := &Config{
		InputRate:     *inputRate,
		ShiftHz:       *shiftKhz * 1000,
		PacketSamples: *frame,
		ChunkSamples:  *chunk,
		IP:            *ip,
		SampleFormat:  SampleFormatFloat32,
	}

	if cfg.InputRate <= 0 {
		return nil, errors.New("--input-rate must be positive")
	}
	if cfg.PacketSamples < 2 {
		return nil, errors.New("--frame must be at least 2 samples (timestamp + payload)")
	}
	if cfg.ChunkSamples <= 0 {
		return nil, errors.New("--chunk must be positive")
	}
	if parsed := net.ParseIP(cfg.IP); parsed == nil || parsed.To4() == nil {
		return nil, errors.Errorf("--ip %q is not a valid IPv4 address", cfg.IP)
	}

	portList, err := parsePorts(*ports)
	if err != nil {
		return nil, err
	}
	cfg.Ports = portList

	return cfg, nil
}

// OutputRate is the post-decimation sample rate derived from InputRate.
func (c *Config) OutputRate() float64 {
	return c.InputRate / kTotalDecimation
}

// parsePorts splits a comma-separated port list into ints. A port value
// of 0 is kept in the list (it is dropped later, at emitter construction,
// per the configuration contract); only a wholly empty list is an error.
func parsePorts(csv string) ([]int, error) {
	var out []int
	for _, tok := range strings.Split(csv, ",") {
		tok = strings.TrimSpace(tok)
		if tok == "" {
			continue
		}
		v, err := strconv.ParseUint(tok, 10, 16)
		if err != nil {
			return nil, errors.Wrapf(err, "--ports value %q", tok)
		}
		out = append(out, int(v))
	}
	if len(out) == 0 {
		return nil, errors.New("--ports requires at least one port number")
	}
	return out, nil
}
