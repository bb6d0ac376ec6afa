package maglayout

import (
	"github.com/foomo/maglayout/vo"
	"github.com/prometheus/client_golang/prometheus"
)

func newValidationCounterVec() *prometheus.CounterVec {
	return prometheus.NewCounterVec(
		prometheus.CounterOpts{
			Name: "maglayout_validations_total",
			Help: "closed set validations of yielded annotations",
		},
		[]string{"level"},
	)
}

func (m *metrics) trackValidations(validations vo.Validations) {
	levels := map[vo.ValidationLevel]int{}
	for _, v := range validations {
		levels[v.Level]++
	}
	for level, count := range levels {
		m.validationCounterVec.WithLabelValues(string(level)).Add(float64(count))
	}
}
