// Package observability exposes Prometheus metrics for the categorizer.
package observability

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

var (
	// ClassificationsTotal counts successful classifications by decided media type.
	ClassificationsTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediacat_classifications_total",
			Help: "Number of successful classifications, partitioned by media type.",
		},
		[]string{"media_type"},
	)

	// UploadsRejectedTotal counts classify requests that never produced a result.
	UploadsRejectedTotal = promauto.NewCounterVec(
		prometheus.CounterOpts{
			Name: "mediacat_uploads_rejected_total",
			Help: "Number of rejected classify requests, partitioned by reason.",
		},
		[]string{"reason"},
	)
)
