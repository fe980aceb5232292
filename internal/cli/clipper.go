package cli

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/chst/dsp/effects"
)

func runClipper(env Env, args []string) int {
	var (
		opts  commonOptions
		typ   string
		alpha float64
	)

	fs := newFlagSet("clipper", "Waveshaping clipper with optional one-pole smoothing.", env.Stderr)
	opts.register(fs)
	fs.StringVar(&typ, "type", "hard", "clipper curve: hard, tanh, atan, cubic or smooth")
	fs.Float64Var(&alpha, "alpha", 0, "smoothing amount in [0, 1]; 0 disables smoothing")

	if done, code := parseArgs(fs, args, &opts.stream); done {
		return code
	}

	log := newLogger(env.Stderr, opts.verbose, env.ExitFunc).WithField("effect", "clipper")

	curve, err := effects.ParseCurve(typ)
	if err != nil {
		log.WithError(err).Fatal("invalid clipper type")
		return exitFailure
	}

	log = log.WithFields(logrus.Fields{"curve": curve.String(), "alpha": alpha})

	return runEffect(env, log, &opts, func(float64) (effectProcessor, error) {
		return effects.NewClipper(curve, alpha, opts.processorOptions()...)
	})
}
