package cli

import (
	"math"

	"github.com/sirupsen/logrus"

	"github.com/cwbudde/chst/stats/frequency"
	timestats "github.com/cwbudde/chst/stats/time"
)

// report logs level and spectral statistics of buf. Spectral analysis
// failures are logged and do not fail the command.
func report(log *logrus.Entry, label string, buf []float64, sampleRate float64) {
	ts := timestats.Calculate(buf)

	fields := logrus.Fields{
		"signal":       label,
		"peak_db":      round2(ts.Peak_dB),
		"rms_db":       round2(ts.RMS_dB),
		"crest_db":     round2(ts.CrestFactor_dB),
		"dc":           ts.DC,
		"zero_crosses": ts.ZeroCrossings,
		"overs":        ts.Overs,
	}

	fs, err := frequency.Analyze(buf, sampleRate)
	if err != nil {
		log.WithFields(fields).WithError(err).Warn("spectral analysis failed")
		return
	}

	fields["centroid_hz"] = round2(fs.Centroid)
	fields["rolloff_hz"] = round2(fs.Rolloff)
	fields["peak_hz"] = round2(fs.PeakFreq)
	fields["flatness"] = fs.Flatness

	log.WithFields(fields).Info("signal report")
}

func round2(v float64) float64 {
	return math.Round(v*100) / 100
}
