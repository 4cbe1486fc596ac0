package metrics

import "time"

// RecordSourceOutcome records one source's aggregation outcome.
// Outcome is one of "success", "timeout", "unavailable", "malformed_response".
func RecordSourceOutcome(source, outcome string, duration time.Duration) {
	IdeaSourceOutcomesTotal.WithLabelValues(source, outcome).Inc()
	IdeaSourceFetchDuration.WithLabelValues(source).Observe(duration.Seconds())
}

// RecordAggregation records the wall time of one complete fan-out.
func RecordAggregation(duration time.Duration) {
	IdeaAggregationDuration.Observe(duration.Seconds())
}

// RecordLogin records the result of one login attempt.
func RecordLogin(success bool) {
	result := "success"
	if !success {
		result = "failure"
	}
	AuthLoginsTotal.WithLabelValues(result).Inc()
}

// RecordDBQuery records the duration of a database query operation.
// Operation should describe the query type (e.g., "select_recipes", "insert_user").
func RecordDBQuery(operation string, duration time.Duration) {
	DBQueryDuration.WithLabelValues(operation).Observe(duration.Seconds())
}

// ObserveDBQuery is the defer form of RecordDBQuery:
//
//	defer metrics.ObserveDBQuery("select_recipes", time.Now())
func ObserveDBQuery(operation string, start time.Time) {
	RecordDBQuery(operation, time.Since(start))
}
