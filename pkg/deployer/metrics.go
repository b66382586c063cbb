/*
Copyright © 2025 Jorge C. Riveros
SPDX-License-Identifier: Apache-2.0
*/
package deployer

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	runsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devaci",
		Name:      "runs_total",
		Help:      "Number of deploy runs by outcome.",
	}, []string{"status"})

	templatesTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: "devaci",
		Name:      "templates_total",
		Help:      "Number of templates processed by outcome.",
	}, []string{"status"})

	renderFailuresTotal = promauto.NewCounter(prometheus.CounterOpts{
		Namespace: "devaci",
		Name:      "render_failures_total",
		Help:      "Number of templates that failed to render or build.",
	})

	commitDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "devaci",
		Name:      "commit_duration_seconds",
		Help:      "Time spent committing configuration to the controller.",
		Buckets:   prometheus.DefBuckets,
	})

	runDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: "devaci",
		Name:      "run_duration_seconds",
		Help:      "Time spent on a full deploy run.",
		Buckets:   prometheus.DefBuckets,
	})
)

const (
	statusSuccess = "success"
	statusFailure = "failure"
)

func statusOf(ok bool) string {
	if ok {
		return statusSuccess
	}
	return statusFailure
}
