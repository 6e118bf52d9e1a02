package metrics

import (
	"errors"
	"net/http"

	"github.com/cmlabs-hris/employee-manager-go/internal/pkg/validator"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
	"github.com/prometheus/client_golang/prometheus/promhttp"
)

var (
	StorageFailures = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "employee_manager_storage_failures_total",
		Help: "Number of storage operations that failed, by operation",
	}, []string{"operation"})

	ValidationRejections = promauto.NewCounterVec(prometheus.CounterOpts{
		Name: "employee_manager_validation_rejections_total",
		Help: "Number of user inputs rejected by validation, by field",
	}, []string{"field"})
)

// Handler serves the default registry in the Prometheus text format.
func Handler() http.Handler {
	return promhttp.Handler()
}

// CountRejections records every field rejection carried by err.
func CountRejections(err error) {
	var errs validator.ValidationErrors
	if errors.As(err, &errs) {
		for _, e := range errs {
			ValidationRejections.WithLabelValues(e.Field).Inc()
		}
		return
	}
	var single validator.ValidationError
	if errors.As(err, &single) {
		ValidationRejections.WithLabelValues(single.Field).Inc()
	}
}
