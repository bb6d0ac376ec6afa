package maglayout

import "github.com/prometheus/client_golang/prometheus"

type metrics struct {
	buildSummaryVec   *prometheus.SummaryVec
	annotationCounter *prometheus.CounterVec
	skippedCounter    prometheus.Counter
	imagesCounter     prometheus.Counter
	progressGauge     prometheus.Gauge

	validationCounterVec *prometheus.CounterVec
}

func newMetrics(registerer prometheus.Registerer) *metrics {

	const prometheusLabelCategory = "category"

	m := &metrics{
		buildSummaryVec: prometheus.NewSummaryVec(
			prometheus.SummaryOpts{
				Name:       "maglayout_build_durations_seconds",
				Help:       "time to build one annotation including opening its images",
				Objectives: map[float64]float64{0.5: 0.05, 0.9: 0.01, 0.99: 0.001},
			},
			[]string{prometheusLabelCategory},
		),
		annotationCounter: prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: "maglayout_annotations_total",
				Help: "number of annotations yielded",
			},
			[]string{prometheusLabelCategory},
		),
		skippedCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "maglayout_annotations_skipped_total",
			Help: "number of malformed annotation files, that were skipped",
		}),
		imagesCounter: prometheus.NewCounter(prometheus.CounterOpts{
			Name: "maglayout_images_opened_total",
			Help: "number of page images resolved and opened",
		}),
		progressGauge: prometheus.NewGauge(prometheus.GaugeOpts{
			Name: "maglayout_walk_progress_files",
			Help: "annotation files processed in the current walk",
		}),
		validationCounterVec: newValidationCounterVec(),
	}

	if registerer != nil {
		registerer.MustRegister(
			m.buildSummaryVec,
			m.annotationCounter,
			m.skippedCounter,
			m.imagesCounter,
			m.progressGauge,
			m.validationCounterVec,
		)
	}
	return m
}
