// Command chst applies a single audio effect to a 16-bit PCM WAV stream.
//
// Usage:
//
//	chst <subcommand> [options] [-]
//
// Subcommands:
//
//	clipper   waveshaping clipper with one-pole smoothing
//	eq        Butterworth high-pass/low-pass equalizer
//	curves    export clipper transfer curves to CSV
//
// Examples:
//
//	chst clipper --type tanh -i 6 -m 0.8 - < in.wav > out.wav
//	chst eq --hpf-freq 80 --lpf-freq 12000 - < in.wav > out.wav
//	chst clipper --type cubic --output-csv clip.csv < in.wav
//	chst curves --types hard,tanh,atan --output-csv curves.csv
package main

import (
	"os"

	"github.com/cwbudde/chst/internal/cli"
)

func main() {
	os.Exit(cli.Run(cli.DefaultEnv(), os.Args[1:]))
}
