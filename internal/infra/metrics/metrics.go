// Package metrics exposes the Prometheus collectors shared by the tagger and
// the HTTP API.
package metrics

import (
	"net/http"

	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

const namespace = "cryptotags"

var (
	ArticlesTagged = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "articles_tagged_total",
		Help:      "Articles processed by the tagger, by result (tagged, untagged, empty).",
	}, []string{"result"})

	LabelsExtracted = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "labels_extracted_total",
		Help:      "Labels attached to articles, by label.",
	}, []string{"label"})

	TagDuration = promauto.NewHistogram(prometheus.HistogramOpts{
		Namespace: namespace,
		Name:      "tag_duration_seconds",
		Help:      "Time spent extracting labels from one article.",
		Buckets:   []float64{0.0001, 0.0005, 0.001, 0.005, 0.01, 0.05, 0.1},
	})

	ExtractRequests = promauto.NewCounterVec(prometheus.CounterOpts{
		Namespace: namespace,
		Name:      "extract_requests_total",
		Help:      "HTTP extraction requests, by mode and status.",
	}, []string{"mode", "status"})
)

func Handler() http.Handler {
	return promhttp.Handler()
}
