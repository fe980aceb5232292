package cli

import (
	"strings"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/chst/dsp/effects"
	"github.com/cwbudde/chst/internal/csvexport"
)

func runCurves(env Env, args []string) int {
	var (
		types         string
		from, to, stp float64
		outputCSV     string
		verbose       bool
	)

	fs := newFlagSet("curves", "Sweep the clipper transfer curves and export them to CSV.", env.Stderr)
	fs.StringVar(&types, "types", "", "comma-separated curves to export (default all)")
	fs.Float64Var(&from, "from", -2, "first input value")
	fs.Float64Var(&to, "to", 2, "last input value")
	fs.Float64Var(&stp, "step", 0.1, "input increment")
	fs.StringVar(&outputCSV, "output-csv", "", "destination CSV `file` (required)")
	fs.StringVar(&outputCSV, "c", "", "shorthand for --output-csv")
	fs.BoolVar(&verbose, "verbose", false, "enable debug logging")

	if done, code := parseArgs(fs, args, nil); done {
		return code
	}

	log := newLogger(env.Stderr, verbose, env.ExitFunc).WithField("effect", "curves")

	curves, err := selectCurves(types)
	if err != nil {
		log.WithError(err).Fatal("invalid clipper type")
		return exitFailure
	}

	if outputCSV == "" {
		log.Error("--output-csv is required")
		return exitFailure
	}

	input, err := csvexport.Sweep(from, to, stp)
	if err != nil {
		log.WithError(err).Error("invalid sweep")
		return exitFailure
	}

	columns := make([]csvexport.Column, len(curves))
	for i, c := range curves {
		fn := c.Func()
		values := make([]float64, len(input))

		for j, x := range input {
			values[j] = fn(x)
		}

		columns[i] = csvexport.Column{Name: c.String(), Values: values}
		log.WithField("curve", c.String()).Debug("swept curve")
	}

	if err := csvexport.WriteCurves(outputCSV, input, columns); err != nil {
		log.WithError(err).WithField("path", outputCSV).Error("failed to export CSV")
		return exitFailure
	}

	log.WithFields(logrus.Fields{
		"path":    outputCSV,
		"curves":  len(curves),
		"samples": len(input),
	}).Info("exported curves")

	return exitOK
}

// selectCurves parses a comma-separated curve list. Empty means all curves.
func selectCurves(list string) ([]effects.Curve, error) {
	if strings.TrimSpace(list) == "" {
		return effects.Curves(), nil
	}

	var curves []effects.Curve

	for _, name := range strings.Split(list, ",") {
		if strings.TrimSpace(name) == "" {
			continue
		}

		c, err := effects.ParseCurve(name)
		if err != nil {
			return nil, err
		}

		curves = append(curves, c)
	}

	if len(curves) == 0 {
		return effects.Curves(), nil
	}

	return curves, nil
}
