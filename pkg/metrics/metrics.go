package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const (
	ResultAllowed = "allowed"
	ResultDenied  = "denied"
)

var Decisions = prometheus.NewCounterVec(
	prometheus.CounterOpts{
		Namespace: "seva_access",
		Name:      "decisions_total",
		Help:      "Access decisions by check and result.",
	},
	[]string{"check", "result"},
)

func init() {
	prometheus.MustRegister(Decisions)
}

func ObserveDecision(check string, allowed bool) {
	result := ResultDenied
	if allowed {
		result = ResultAllowed
	}

	Decisions.WithLabelValues(check, result).Inc()
}

func Handler() http.Handler {
	return promhttp.Handler()
}
