// IQDECIM - A streaming IQ decimation pipeline for narrow-band telemetry detection.
// Copyright (C) 2015 Douglas Hall
//
// This program is free software: you can redistribute it and/or modify
// it under the terms of the GNU Affero General Public License as published
// by the Free Software Foundation, either version 3 of the License, or
// (at your option) any later version.
//
// This program is distributed in the hope that it will be useful,
// but WITHOUT ANY WARRANTY; without even the implied warranty of
// MERCHANTABILITY or FITNESS FOR A PARTICULAR PURPOSE.  See the
// GNU Affero General Public License for more details.
//
// You should have received a copy of the GNU Affero General Public License
// along with this program.  If not, see <http://www.gnu.org/licenses/>.

package main

import (
	"fmt"
	"io"
	"os"
	"os/signal"
	"syscall"

	"github.com/sirupsen/logrus"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdin))
}

// run wires the CLI, the UDP emitter, and the pipeline together and maps
// the outcome to the exit codes from spec section 6: 0 success/EOF, 1
// fatal runtime error, 64 argument error.
func run(args []string, stdin io.Reader) int {
	signal.Ignore(syscall.SIGPIPE)

	log := logrus.New()
	log.SetFormatter(&logrus.TextFormatter{FullTimestamp: true})

	cfg, err := ParseConfig(args, os.Stderr)
	if err != nil {
		if err == errHelpRequested {
			return 0
		}
		fmt.Fprintln(os.Stderr, "Argument error:", err)
		return 64
	}

	emit, err := newEmitter(cfg.IP, cfg.Ports, log)
	if err != nil {
		log.WithError(err).Error("failed to construct UDP emitter")
		return 1
	}
	defer emit.Close()

	log.WithFields(logrus.Fields{
		"input_rate":  cfg.InputRate,
		"output_rate": cfg.OutputRate(),
		"shift_hz":    cfg.ShiftHz,
		"frame":       cfg.PacketSamples,
		"chunk":       cfg.ChunkSamples,
		"ip":          cfg.IP,
		"ports":       cfg.Ports,
	}).Info("starting pipeline")

	p := newPipeline(cfg, emit, log)
	if err := p.run(stdin, cfg.ChunkSamples); err != nil {
		log.WithError(err).Error("fatal pipeline error")
		return 1
	}

	log.WithFields(logrus.Fields{
		"samples_sent": p.samplesSent,
		"send_errors":  emit.sendErrors,
	}).Info("stream complete")
	return 0
}
