package metrics

import (
	"testing"

	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/assert"
)

func TestLoginAttempt_CuentaSesionesSoloEnOK(t *testing.T) {
	m := New("panel_test")

	m.LoginAttempt(LoginOK)
	m.LoginAttempt(LoginInvalid)
	m.LoginAttempt(LoginInvalid)

	assert.Equal(t, 1.0, testutil.ToFloat64(m.loginAttempts.WithLabelValues(LoginOK)))
	assert.Equal(t, 2.0, testutil.ToFloat64(m.loginAttempts.WithLabelValues(LoginInvalid)))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.sessionsIssued))
}

func TestRequestFinished_EquilibraEnCurso(t *testing.T) {
	m := New("panel_test")

	m.RequestStarted()
	m.RequestFinished("GET", "/roles", "200", 0.01)

	assert.Equal(t, 0.0, testutil.ToFloat64(m.httpInFlight))
	assert.Equal(t, 1.0, testutil.ToFloat64(m.httpRequestsTotal.WithLabelValues("GET", "/roles", "200")))
}

func TestNew_DosInstanciasNoColisionan(t *testing.T) {
	assert.NotPanics(t, func() {
		New("panel_test")
		New("panel_test")
	})
}

func TestMetricsNil_NoHacePanic(t *testing.T) {
	var m *Metrics
	assert.NotPanics(t, func() {
		m.RequestStarted()
		m.RequestFinished("GET", "/", "200", 0)
		m.LoginAttempt(LoginOK)
		m.AccessDenied("forbidden")
	})
}
