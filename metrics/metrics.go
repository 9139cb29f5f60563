package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	ContactSubmissions = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_contact_submissions_total",
		Help: "Contact form submissions by outcome (succeeded, failed, ignored)",
	}, []string{"outcome"})

	ContactInFlight = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "landing_contact_submissions_in_flight",
		Help: "Contact submissions waiting on the backend",
	})

	RateLimited = promauto.NewCounter(prometheus.CounterOpts{
		Name: "landing_rate_limited_total",
		Help: "Requests rejected by the rate limiter",
	})

	PageViews = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "landing_page_views_total",
		Help: "Rendered pages by route",
	}, []string{"page"})
)
