package metrics

import (
	"sync"

	"github.com/prometheus/client_golang/prometheus"
)

const (
	metricPrefix = "registry_"

	resultSuccess = "success"
	resultError   = "error"
)

var (
	registerOnce sync.Once

	mutations         *prometheus.CounterVec
	maintenanceEvents prometheus.Counter
	importRows        *prometheus.CounterVec
	exports           *prometheus.CounterVec
)

// Init registers the registry metrics. Safe to call more than once.
func Init() {
	registerOnce.Do(func() {
		mutations = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "mutations_total",
				Help: "Total write operations by entity, operation and result",
			},
			[]string{"entity", "op", "result"},
		)
		maintenanceEvents = prometheus.NewCounter(
			prometheus.CounterOpts{
				Name: metricPrefix + "maintenance_events_total",
				Help: "Total maintenance journal rows appended",
			},
		)
		importRows = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "import_rows_total",
				Help: "Bulk import rows by outcome",
			},
			[]string{"outcome"},
		)
		exports = prometheus.NewCounterVec(
			prometheus.CounterOpts{
				Name: metricPrefix + "exports_total",
				Help: "Report exports by format",
			},
			[]string{"format"},
		)

		prometheus.MustRegister(mutations, maintenanceEvents, importRows, exports)
	})
}

func ObserveMutation(entity, op string, err error) {
	if mutations == nil {
		return
	}
	result := resultSuccess
	if err != nil {
		result = resultError
	}
	mutations.WithLabelValues(entity, op, result).Inc()
}

func ObserveMaintenanceEvent() {
	if maintenanceEvents != nil {
		maintenanceEvents.Inc()
	}
}

func ObserveImportRow(outcome string) {
	if importRows != nil {
		importRows.WithLabelValues(outcome).Inc()
	}
}

func ObserveExport(format string) {
	if exports != nil {
		exports.WithLabelValues(format).Inc()
	}
}
