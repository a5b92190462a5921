package observability

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestMetricsExist(t *testing.T) {
	assert.NotNil(t, RequestDuration)
	assert.NotNil(t, ActiveConnections)
	assert.NotNil(t, ApplicationsSubmitted)
	assert.NotNil(t, ValidationFailures)
	assert.NotNil(t, DatabaseOperations)
	assert.NotNil(t, EmailsSent)
	assert.NotNil(t, ReceiptsGenerated)
	assert.NotNil(t, CacheHits)
	assert.NotNil(t, ExternalLookupDuration)
	assert.NotNil(t, RateLimitRejections)
}

func TestApplicationsSubmitted(t *testing.T) {
	before := testutil.ToFloat64(ApplicationsSubmitted.WithLabelValues("success"))
	ApplicationsSubmitted.WithLabelValues("success").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(ApplicationsSubmitted.WithLabelValues("success")))
}

func TestEmailsSent(t *testing.T) {
	before := testutil.ToFloat64(EmailsSent.WithLabelValues("staff", "error"))
	EmailsSent.WithLabelValues("staff", "error").Inc()
	EmailsSent.WithLabelValues("applicant", "success").Inc()
	assert.Equal(t, before+1, testutil.ToFloat64(EmailsSent.WithLabelValues("staff", "error")))
}

func TestActiveConnections(t *testing.T) {
	before := testutil.ToFloat64(ActiveConnections)
	ActiveConnections.Inc()
	ActiveConnections.Inc()
	ActiveConnections.Dec()
	assert.Equal(t, before+1, testutil.ToFloat64(ActiveConnections))
	ActiveConnections.Dec()
}

func TestHistograms(t *testing.T) {
	RequestDuration.WithLabelValues("/v1/applications", "POST", "200").Observe(0.5)
	ExternalLookupDuration.WithLabelValues("viacep", "success").Observe(0.12)
}
