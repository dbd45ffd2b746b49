package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	HTTPRequests = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dawah", Name: "http_requests_total", Help: "HTTP requests by method and status",
	}, []string{"method", "status"})
	ReportSubmissions = prometheus.NewCounterVec(prometheus.CounterOpts{
		Namespace: "dawah", Name: "report_submissions_total", Help: "Accepted report submissions by category",
	}, []string{"category"})
	SubmissionConflicts = prometheus.NewCounter(prometheus.CounterOpts{
		Namespace: "dawah", Name: "submission_conflicts_total", Help: "Rejected same-day duplicate submissions",
	})
)

func init() {
	prometheus.MustRegister(HTTPRequests, ReportSubmissions, SubmissionConflicts)
}

func Handler() http.Handler { return promhttp.Handler() }
