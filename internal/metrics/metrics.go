package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	VouchersIssuedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starcheck_vouchers_issued_total",
			Help: "Total number of vouchers issued",
		},
		[]string{"kind", "via"},
	)

	VouchersClaimedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starcheck_vouchers_claimed_total",
			Help: "Total number of vouchers claimed",
		},
		[]string{"kind"},
	)

	ClaimFailuresTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starcheck_claim_failures_total",
			Help: "Total number of failed claim attempts",
		},
		[]string{"reason"},
	)

	VerificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starcheck_verifications_total",
			Help: "Total number of verification submissions",
		},
		[]string{"source"},
	)

	HTTPRequestsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "starcheck_http_requests_total",
			Help: "Total number of HTTP requests to the webhook server",
		},
		[]string{"method", "path", "status"},
	)

	HTTPRequestDuration = promauto.NewHistogramVec(
		prometheus.HistogramOpts{
			Name:    "starcheck_http_request_duration_seconds",
			Help:    "HTTP request duration in seconds",
			Buckets: prometheus.DefBuckets,
		},
		[]string{"method", "path"},
	)
)

func RecordIssue(gift, inline bool) {
	VouchersIssuedTotal.WithLabelValues(kind(gift), via(inline)).Inc()
}

func RecordClaim(gift bool) {
	VouchersClaimedTotal.WithLabelValues(kind(gift)).Inc()
}

func RecordClaimFailure(reason string) {
	ClaimFailuresTotal.WithLabelValues(reason).Inc()
}

func RecordVerification(source string) {
	VerificationsTotal.WithLabelValues(source).Inc()
}

func RecordHTTPRequest(method, path, status string, duration float64) {
	HTTPRequestsTotal.WithLabelValues(method, path, status).Inc()
	HTTPRequestDuration.WithLabelValues(method, path).Observe(duration)
}

func kind(gift bool) string {
	if gift {
		return "gift"
	}
	return "stars"
}

func via(inline bool) string {
	if inline {
		return "inline"
	}
	return "menu"
}
