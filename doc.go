/*
IQDECIM is a streaming IQ decimation pipeline for narrow-band telemetry
detection. It reads an interleaved complex IQ byte stream from stdin,
mixes it down by a configurable frequency offset, decimates it by a fixed
factor of 200 through a three-stage cascaded FIR filter, and emits the
resulting samples as timestamped UDP datagrams to one or more destination
ports.

Command-line Flags:

	-input-rate=768000

Incoming complex IQ sample rate, in Hz.

	-shift-khz=10

Frequency shift applied before decimation, in kHz. Positive values raise
the signal's apparent frequency; negative values lower it.

	-frame=1024

Complex samples per UDP datagram, including the one-sample timestamp
header. Payload samples per datagram is one less than this value.

	-chunk=16384

Complex samples read per stdin chunk.

	-ip=127.0.0.1

Destination IPv4 address.

	-ports=10000,10001

Comma-separated destination UDP ports. A port of 0 is silently dropped.

Each outgoing datagram begins with a one-sample header whose in-phase and
quadrature float32 fields are the bit patterns of, respectively, the
seconds and nanoseconds of the wall-clock instant corresponding to the
first payload sample, followed by payloadSamples consecutive decimated
complex samples.
*/
package main
