package cli

import (
	"errors"
	"flag"
	"fmt"
	"io"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/chst/dsp/effects"
	"github.com/cwbudde/chst/internal/csvexport"
	"github.com/cwbudde/chst/internal/wavio"
)

// ErrEmptyInput is reported when the decoded WAV stream has no samples.
var ErrEmptyInput = errors.New("input WAV contains no samples")

var errNoOutput = errors.New("either stream mode (-) or --output-csv must be specified")

// commonOptions are shared by every effect subcommand.
type commonOptions struct {
	stream       bool
	inputGainDB  float64
	outputGainDB float64
	mix          float64
	outputCSV    string
	report       bool
	verbose      bool
}

func (o *commonOptions) register(fs *flag.FlagSet) {
	fs.BoolVar(&o.stream, "stream", false, "read WAV from stdin and write WAV to stdout (same as -)")
	fs.Float64Var(&o.inputGainDB, "input-gain", 0, "input gain in dB")
	fs.Float64Var(&o.inputGainDB, "i", 0, "shorthand for --input-gain")
	fs.Float64Var(&o.outputGainDB, "output-gain", 0, "output gain in dB")
	fs.Float64Var(&o.outputGainDB, "o", 0, "shorthand for --output-gain")
	fs.Float64Var(&o.mix, "mix", 1, "wet/dry mix, clamped to [0, 1]")
	fs.Float64Var(&o.mix, "m", 1, "shorthand for --mix")
	fs.StringVar(&o.outputCSV, "output-csv", "", "write sample,input,output rows to `file`")
	fs.StringVar(&o.outputCSV, "c", "", "shorthand for --output-csv")
	fs.BoolVar(&o.report, "report", false, "log level and spectral statistics of input and output")
	fs.BoolVar(&o.verbose, "verbose", false, "enable debug logging")
}

func (o *commonOptions) processorOptions() []effects.ProcessorOption {
	return []effects.ProcessorOption{
		effects.WithInputGainDB(o.inputGainDB),
		effects.WithOutputGainDB(o.outputGainDB),
		effects.WithMix(o.mix),
	}
}

// newFlagSet creates a subcommand flag set writing usage to w.
func newFlagSet(name, synopsis string, w io.Writer) *flag.FlagSet {
	fs := flag.NewFlagSet("chst "+name, flag.ContinueOnError)
	fs.SetOutput(w)
	fs.Usage = func() {
		fmt.Fprintf(w, "Usage: chst %s [options] [-]\n\n%s\n\nOptions:\n", name, synopsis)
		fs.PrintDefaults()
	}

	return fs
}

// parseArgs parses args into fs. A bare "-" selects stream mode; the flag
// package would otherwise stop at it. Returns done=true with the exit code
// when the command should stop (help or usage error).
func parseArgs(fs *flag.FlagSet, args []string, stream *bool) (done bool, code int) {
	rest := make([]string, 0, len(args))

	for _, a := range args {
		if a == "-" {
			if stream != nil {
				*stream = true
			}

			continue
		}

		rest = append(rest, a)
	}

	if err := fs.Parse(rest); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return true, exitOK
		}

		return true, exitFailure
	}

	if fs.NArg() > 0 {
		fmt.Fprintf(fs.Output(), "unexpected arguments: %v\n", fs.Args())
		fs.Usage()

		return true, exitFailure
	}

	return false, exitOK
}

// effectProcessor is the part of an effect the pipeline needs.
type effectProcessor interface {
	ProcessInPlace(buf []float64)
}

// buildFunc constructs the effect once the input sample rate is known.
type buildFunc func(sampleRate float64) (effectProcessor, error)

// runEffect reads WAV from stdin, processes it and writes the results.
// CSV is written before the WAV stream so a CSV failure leaves stdout empty.
func runEffect(env Env, log *logrus.Entry, opts *commonOptions, build buildFunc) int {
	if !opts.stream && opts.outputCSV == "" {
		log.Error(errNoOutput)
		return exitFailure
	}

	in, err := wavio.Read(env.Stdin)
	if err != nil {
		log.WithError(err).Error("failed to read WAV from stdin")
		return exitFailure
	}

	if len(in.Samples) == 0 {
		log.WithError(ErrEmptyInput).Error("nothing to process")
		return exitFailure
	}

	log = log.WithFields(logrus.Fields{
		"samples":     len(in.Samples),
		"channels":    in.Channels,
		"sample_rate": in.SampleRate,
	})
	log.Debug("decoded input")

	proc, err := build(float64(in.SampleRate))
	if err != nil {
		log.WithError(err).Error("invalid effect parameters")
		return exitFailure
	}

	dry := wavio.ToFloat(in.Samples)
	wet := append([]float64(nil), dry...)
	proc.ProcessInPlace(wet)

	if opts.report {
		report(log, "input", dry, float64(in.SampleRate))
		report(log, "output", wet, float64(in.SampleRate))
	}

	if opts.outputCSV != "" {
		if err := csvexport.WritePairs(opts.outputCSV, dry, wet); err != nil {
			log.WithError(err).WithField("path", opts.outputCSV).Error("failed to export CSV")
			return exitFailure
		}

		log.WithField("path", opts.outputCSV).Info("exported CSV")
	}

	if opts.stream {
		out := &wavio.Audio{
			Samples:     wavio.ToPCM16(wet),
			Channels:    in.Channels,
			SampleRate:  in.SampleRate,
			TotalFrames: in.TotalFrames,
		}

		if err := wavio.Write(env.Stdout, out); err != nil {
			log.WithError(err).Error("failed to write WAV to stdout")
			return exitFailure
		}
	}

	log.Debug("done")

	return exitOK
}
