package metrics

import (
	"github.com/prometheus/client_golang/prometheus"

	"github.com/c9s/streamta/pkg/indicator"
	"github.com/c9s/streamta/pkg/indicatorset"
)

var IndicatorValueMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "streamta_indicator_value",
		Help: "the last committed indicator value",
	}, []string{"set", "indicator"})

var IndicatorWarmMetrics = prometheus.NewGaugeVec(
	prometheus.GaugeOpts{
		Name: "streamta_indicator_warm",
		Help: "1 once the indicator has applied enough samples to be meaningful",
	}, []string{"set", "indicator"})

var IndicatorSamplesMetrics = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Name: "streamta_indicator_samples_total",
		Help: "number of samples applied to the indicator",
	}, []string{"set", "indicator"})

// Updatable is implemented by every indicator of the indicator package.
type Updatable interface {
	OnUpdate(cb func(r indicator.Result))
}

// Observe records a committed result.
func Observe(setName, id string, r indicator.Result) {
	labels := prometheus.Labels{"set": setName, "indicator": id}
	IndicatorValueMetrics.With(labels).Set(r.Value)
	IndicatorSamplesMetrics.With(labels).Inc()

	warm := 0.0
	if r.Warm {
		warm = 1.0
	}
	IndicatorWarmMetrics.With(labels).Set(warm)
}

// Bind exports every result committed by a single indicator.
func Bind(setName, id string, u Updatable) {
	u.OnUpdate(func(r indicator.Result) {
		Observe(setName, id, r)
	})
}

// BindSet exports every result committed through the set.
func BindSet(set *indicatorset.Set) {
	set.OnUpdate(func(id string, r indicator.Result) {
		Observe(set.Name, id, r)
	})
}

func init() {
	prometheus.MustRegister(
		IndicatorValueMetrics,
		IndicatorWarmMetrics,
		IndicatorSamplesMetrics,
	)
}
