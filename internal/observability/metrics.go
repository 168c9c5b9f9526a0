package observability

import (
	"github.com/prometheus/client_golang/prometheus"
)

var (
	parseResults = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tripweaver",
		Subsystem: "itinerary",
		Name:      "parse_results_total",
		Help:      "Itinerary parses by outcome: structured, unstructured or cached.",
	}, []string{"result"})

	generationFailures = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "tripweaver",
		Subsystem: "itinerary",
		Name:      "generation_failures_total",
		Help:      "Generator calls that failed or returned nothing.",
	})

	destinationLookups = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "tripweaver",
		Subsystem: "destinations",
		Name:      "destination_lookups_total",
		Help:      "Places lookups by outcome.",
	}, []string{"outcome"})
)

const (
	ParseStructured   = "structured"
	ParseUnstructured = "unstructured"
	ParseCached       = "cached"

	LookupOK         = "ok"
	LookupNotEnabled = "not_enabled"
	LookupError      = "error"
)

func init() {
	prometheus.MustRegister(parseResults, generationFailures, destinationLookups)
}

func RecordParse(result string) {
	parseResults.WithLabelValues(result).Inc()
}

func RecordGenerationFailure() {
	generationFailures.Inc()
}

func RecordDestinationLookup(outcome string) {
	destinationLookups.WithLabelValues(outcome).Inc()
}
