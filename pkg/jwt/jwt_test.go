package jwt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	pkgjwt "github.com/jhoicas/panel-admin/pkg/jwt"
)

const (
	testSecret = "test-secret-key-for-unit-tests"
	testIssuer = "panel-admin-test"
)

func TestSignAndParseSession(t *testing.T) {
	signed, err := pkgjwt.SignSession(testSecret, testIssuer, "tok-123", time.Now().Add(time.Hour))
	require.NoError(t, err)

	token, err := pkgjwt.ParseSession(testSecret, testIssuer, signed)
	require.NoError(t, err)
	assert.Equal(t, "tok-123", token)
}

func TestParseSession_SecretIncorrecto(t *testing.T) {
	signed, err := pkgjwt.SignSession(testSecret, testIssuer, "tok-123", time.Now().Add(time.Hour))
	require.NoError(t, err)

	_, err = pkgjwt.ParseSession("otro-secret-completamente-distinto", testIssuer, signed)
	assert.Error(t, err, "secret incorrecto debe invalidar la cookie")
}

func TestParseSession_Expirado(t *testing.T) {
	signed, err := pkgjwt.SignSession(testSecret, testIssuer, "tok-123", time.Now().Add(-time.Minute))
	require.NoError(t, err)

	_, err = pkgjwt.ParseSession(testSecret, testIssuer, signed)
	assert.Error(t, err)
}

func TestParseSession_Basura(t *testing.T) {
	_, err := pkgjwt.ParseSession(testSecret, testIssuer, "token.invalido.aqui")
	assert.Error(t, err)

	_, err = pkgjwt.SignSession("", testIssuer, "tok", time.Now().Add(time.Hour))
	assert.Error(t, err)
}
