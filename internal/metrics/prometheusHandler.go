package metrics

import (
	"net/http"
	"time"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var HttpRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "http_requests_total",
	Help: "Total number of requests labelled by path and status",
}, []string{"path", "status"})

var countJobsInQueue = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "count_jobs_in_queue",
	Help: "Number of conversion jobs in queue",
})

var dispatcherSignalCount = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "dispatcher_signal_count",
	Help: "How often the dispatcher has signaled to start worker",
})

var activeWorkerCount = promauto.NewGauge(prometheus.GaugeOpts{
	Name: "active_worker_count",
	Help: "Number of active workers",
})

var rejectedUploads = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "rejected_uploads_total",
	Help: "Uploaded files that got no document record, by detected type",
}, []string{"doc_type"})

var authAttempts = promauto.NewCounterVec(prometheus.CounterOpts{
	Name: "auth_attempts_total",
	Help: "Login and signup attempts by outcome",
}, []string{"action", "outcome"})

type HttpStatusRecorder struct {
	http.ResponseWriter
	Status int
}

func (r *HttpStatusRecorder) WriteHeader(code int) {
	r.Status = code
	r.ResponseWriter.WriteHeader(code)
}

func IncrementJobsInQueue() {
	countJobsInQueue.Inc()
}

func DecrementJobsInQueue() {
	countJobsInQueue.Dec()
}

func StartDispatcherSignalCount() {
	dispatcherSignalCount.Inc()
}

func IncrementActiveWorkerCount() {
	activeWorkerCount.Inc()
}
func DecrementActiveWorkerCount() {
	activeWorkerCount.Dec()
}

func CountRejectedUpload(docType string) {
	rejectedUploads.WithLabelValues(docType).Inc()
}

func CountAuthAttempt(action string, outcome string) {
	authAttempts.WithLabelValues(action, outcome).Inc()
}

var conversionDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "document_conversion_duration_seconds",
	Help:    "Total time spent converting an uploaded document.",
	Buckets: []float64{.05, .1, .5, 1, 2, 5, 10, 30},
}, []string{"doc_type", "status"})

var dependencyLatency = promauto.NewHistogramVec(prometheus.HistogramOpts{
	Name:    "dependency_latency_seconds",
	Help:    "Latency of external service calls.",
	Buckets: []float64{.05, .1, .25, .5, 1, 2, 5, 10, 30, 60},
}, []string{"service"})

func CaptureExecutionMetrics(label string, timeElapsed time.Duration) {
	dependencyLatency.WithLabelValues(label).Observe(timeElapsed.Seconds())
}

func CaptureConversionMetrics(docType string, status string, timeElapsed time.Duration) {
	conversionDuration.WithLabelValues(docType, status).Observe(timeElapsed.Seconds())
}
