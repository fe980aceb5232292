package cli

import (
	"github.com/sirupsen/logrus"

	"github.com/cwbudde/chst/dsp/effects"
)

func runEQ(env Env, args []string) int {
	var (
		opts     commonOptions
		hpf, lpf float64
	)

	fs := newFlagSet("eq", "Butterworth high-pass followed by Butterworth low-pass.", env.Stderr)
	opts.register(fs)
	fs.Float64Var(&hpf, "hpf-freq", 0, "high-pass cutoff in Hz; 0 disables the stage")
	fs.Float64Var(&lpf, "lpf-freq", 0, "low-pass cutoff in Hz; 0 disables the stage")

	if done, code := parseArgs(fs, args, &opts.stream); done {
		return code
	}

	log := newLogger(env.Stderr, opts.verbose, env.ExitFunc).WithFields(logrus.Fields{
		"effect":   "eq",
		"hpf_freq": hpf,
		"lpf_freq": lpf,
	})

	return runEffect(env, log, &opts, func(sampleRate float64) (effectProcessor, error) {
		eq, err := effects.NewEQ(hpf, lpf, sampleRate, opts.processorOptions()...)
		if err != nil {
			return nil, err
		}

		if !eq.HighPassEnabled() && !eq.LowPassEnabled() {
			log.Warn("no filter stage engaged; only gain and mix are applied")
		}

		if !eq.Stable() {
			log.Warn("filter coefficients are unstable at this sample rate")
		}

		return eq, nil
	})
}
