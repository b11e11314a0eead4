package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Web server metrics.
var (
	HTTPRequestsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xlit_http_requests_total",
		Help: "Total HTTP requests by route, method, and status code",
	}, []string{"route", "method", "status"})

	HTTPRequestDuration = promauto.NewHistogramVec(prometheus.HistogramOpts{
		Name:    "xlit_http_request_duration_seconds",
		Help:    "HTTP request duration in seconds",
		Buckets: []float64{0.005, 0.01, 0.025, 0.05, 0.1, 0.25, 0.5, 1, 2.5, 5},
	}, []string{"route", "method"})

	RateLimitHits = promauto.NewCounter(prometheus.CounterOpts{
		Name: "xlit_rate_limit_hits_total",
		Help: "Total rate limit rejections",
	})
)

// Engine metrics.
var (
	TransliterationsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xlit_transliterations_total",
		Help: "Transliteration calls by method and result",
	}, []string{"method", "result"})

	TransliterationDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Name:    "xlit_transliteration_duration_seconds",
		Help:    "Transliteration call duration in seconds",
		Buckets: []float64{0.0005, 0.001, 0.005, 0.01, 0.05, 0.1, 0.5, 1},
	})

	TransliteratedChars = promauto.NewCounter(prometheus.CounterOpts{
		Name: "xlit_transliterated_chars_total",
		Help: "Total characters transliterated",
	})
)

// Translation memory metrics.
var (
	SegmentsStored = promauto.NewGauge(prometheus.GaugeOpts{
		Name: "xlit_memory_segments",
		Help: "Number of segment pairs in the translation memory",
	})

	TMXExportsTotal = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "xlit_tmx_exports_total",
		Help: "TMX exports by result",
	}, []string{"result"})
)
