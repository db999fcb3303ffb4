/*
Copyright 2026 The fairdiv Authors

Licensed under the Apache License, Version 2.0 (the "License");
you may not use this file except in compliance with the License.
You may obtain a copy of the License at

	http://www.apache.org/licenses/LICENSE-2.0

Unless required by applicable law or agreed to in writing, software
distributed under the License is distributed on an "AS IS" BASIS,
WITHOUT WARRANTIES OR CONDITIONS OF ANY KIND, either express or implied.
See the License for the specific language governing permissions and
limitations under the License.
*/

// Package metrics exposes Prometheus counters for allocation validation
// outcomes. Counters are registered on the default registry and served by
// the CLI's serve mode.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"

	"github.com/fairdiv/allocation-engine/pkg/core"
)

var (
	validationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fairdiv_validations_total",
			Help: "Number of fractional allocation validations, by result.",
		},
		[]string{"result"},
	)

	diagnosticsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "fairdiv_validation_diagnostics_total",
			Help: "Number of validation diagnostics emitted, by kind.",
		},
		[]string{"kind"},
	)
)

// RecordValidation counts one validation outcome. A nil diagnostic counts
// as accepted; anything else counts as rejected and increments the
// per-kind diagnostic counter.
func RecordValidation(diag *core.Diagnostic) {
	if diag == nil {
		validationsTotal.WithLabelValues("accepted").Inc()
		return
	}
	validationsTotal.WithLabelValues("rejected").Inc()
	diagnosticsTotal.WithLabelValues(string(diag.Kind)).Inc()
}
