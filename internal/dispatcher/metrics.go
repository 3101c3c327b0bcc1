package dispatcher

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

const (
	outcomeOk   = "ok"
	outcomeFail = "fail"
)

var mutationsTotal = promauto.NewCounterVec(
	prometheus.CounterOpts{
		Name: "feed_mutations_total",
		Help: "Feed mutations by operation and outcome",
	},
	[]string{"operation", "outcome"},
)
