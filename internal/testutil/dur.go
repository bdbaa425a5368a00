package testutil

import (
	"time"

	"github.com/onsi/ginkgo/v2"
	"github.com/onsi/gomega/gmeasure"
)

// RunDurationExp samples f n times under a gmeasure experiment and attaches
// the result to the spec report, rounding measurements to the given
// precision.
func RunDurationExp(name string, n int, precision time.Duration, f func()) {
	exp := gmeasure.NewExperiment(name)
	ginkgo.AddReportEntry(exp.Name, exp)
	exp.Sample(func(idx int) {
		exp.MeasureDuration(name, f, gmeasure.Precision(precision))
	}, gmeasure.SamplingConfig{N: n})
}
