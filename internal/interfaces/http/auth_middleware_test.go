package http_test

import (
	"net/http"
	"net/http/httptest"
	"net/url"
	"testing"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/jhoicas/panel-admin/internal/application/auth"
	pkgjwt "github.com/jhoicas/panel-admin/pkg/jwt"
)

// ──────────────────────────────────────────────────────────────────────────────
// Sin sesión
// ──────────────────────────────────────────────────────────────────────────────

// Una navegación GET sin sesión va al login.
func TestSinSesion_GETRedirigeALogin(t *testing.T) {
	env := newTestEnv(t)
	for _, path := range []string{"/dashboard", "/dashboard/users", "/roles", "/dashboard/settings"} {
		resp := env.get(t, path, nil)
		assert.Equal(t, http.StatusFound, resp.StatusCode, path)
		assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation), path)
	}
}

// Una mutación sin sesión se rechaza con 403.
func TestSinSesion_POSTDevuelve403(t *testing.T) {
	env := newTestEnv(t)
	resp := env.postForm(t, "/roles", url.Values{"name": {"x"}}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)

	resp = env.postForm(t, "/dashboard/users", url.Values{"username": {"x"}}, nil)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
}

// Un cliente JSON sin sesión recibe 401 en lugar de un redirect.
func TestSinSesion_JSONDevuelve401(t *testing.T) {
	env := newTestEnv(t)
	resp := env.getJSON(t, "/dashboard/users", nil, nil)
	assert.Equal(t, http.StatusUnauthorized, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "UNAUTHENTICATED")
}

// ──────────────────────────────────────────────────────────────────────────────
// Cookie y ciclo de vida de la sesión
// ──────────────────────────────────────────────────────────────────────────────

func TestCookie_AtributosDeSeguridad(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "admin", "admin123")

	assert.True(t, cookie.HttpOnly)
	assert.Equal(t, http.SameSiteLaxMode, cookie.SameSite)
	assert.Equal(t, "/", cookie.Path)
	assert.WithinDuration(t, time.Now().Add(auth.DefaultSessionTTL), cookie.Expires, time.Minute)
}

func TestCookie_AlteradaSeRechaza(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "admin", "admin123")

	tampered := *cookie
	tampered.Value = "x" + cookie.Value
	resp := env.get(t, "/dashboard", &tampered)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

// Una cookie bien firmada con un token que el servidor no emitió no autentica.
func TestCookie_TokenDesconocidoSeRechaza(t *testing.T) {
	env := newTestEnv(t)
	value, err := pkgjwt.SignSession(testSecret, testIssuer, "token-inventado", time.Now().Add(time.Hour))
	require.NoError(t, err)

	resp := env.get(t, "/dashboard", &http.Cookie{Name: testCookieName, Value: value})
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

func TestLogout_InvalidaLaSesion(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "admin", "admin123")
	require.Equal(t, http.StatusOK, env.get(t, "/dashboard", cookie).StatusCode)

	resp := env.postForm(t, "/logout", nil, cookie)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))

	// La cookie vieja ya no sirve aunque el navegador la reenvíe.
	resp = env.get(t, "/dashboard", cookie)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

func TestLogout_SinSesionRedirige(t *testing.T) {
	env := newTestEnv(t)
	resp := env.postForm(t, "/logout", nil, nil)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

func TestSesion_ExpiraA24Horas(t *testing.T) {
	now := time.Now()
	env := newTestEnv(t, auth.WithClock(func() time.Time { return now }))
	cookie := env.login(t, "admin", "admin123")

	now = now.Add(23 * time.Hour)
	assert.Equal(t, http.StatusOK, env.get(t, "/dashboard", cookie).StatusCode)

	now = now.Add(time.Hour)
	resp := env.get(t, "/dashboard", cookie)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
	assert.Equal(t, "/login", resp.Header.Get(fiber.HeaderLocation))
}

// ──────────────────────────────────────────────────────────────────────────────
// Control de acceso por rol
// ──────────────────────────────────────────────────────────────────────────────

func TestRequireRole_AdminAccedeRutaAdmin(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "admin", "admin123")

	assert.Equal(t, http.StatusOK, env.get(t, "/roles", cookie).StatusCode)
	assert.Equal(t, http.StatusOK, env.get(t, "/dashboard/settings", cookie).StatusCode)
}

// admin cumple cualquier rol requerido.
func TestRequireRole_AdminAccedeRutaManager(t *testing.T) {
	env := newTestEnv(t)
	cookie := env.login(t, "admin", "admin123")

	assert.Equal(t, http.StatusOK, env.get(t, "/dashboard/users/new", cookie).StatusCode)
}

func TestRequireRole_ManagerAccedeRutaManager(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "gestor", "pw", "manager")
	cookie := env.login(t, "gestor", "pw")

	assert.Equal(t, http.StatusOK, env.get(t, "/dashboard/users/new", cookie).StatusCode)
	resp := env.postForm(t, "/dashboard/users", url.Values{"username": {"creado"}}, cookie)
	assert.Equal(t, http.StatusFound, resp.StatusCode)
}

// manager no hereda permisos de admin.
func TestRequireRole_ManagerBloqueadoEnRutaAdmin(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "gestor", "pw", "manager")
	cookie := env.login(t, "gestor", "pw")

	resp := env.get(t, "/roles", cookie)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Equal(t, "Forbidden", bodyString(t, resp))

	assert.Equal(t, http.StatusForbidden, env.postForm(t, "/dashboard/users/1/delete", nil, cookie).StatusCode)
	assert.Equal(t, http.StatusForbidden, env.postForm(t, "/dashboard/settings", url.Values{"company_name": {"x"}}, cookie).StatusCode)
}

func TestRequireRole_UserBloqueadoEnRutaManager(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "basico", "pw", "user")
	cookie := env.login(t, "basico", "pw")

	assert.Equal(t, http.StatusOK, env.get(t, "/dashboard", cookie).StatusCode)
	assert.Equal(t, http.StatusOK, env.get(t, "/dashboard/users", cookie).StatusCode)
	assert.Equal(t, http.StatusForbidden, env.get(t, "/dashboard/users/new", cookie).StatusCode)
	assert.Equal(t, http.StatusForbidden, env.postForm(t, "/dashboard/users", url.Values{"username": {"x"}}, cookie).StatusCode)
}

// Un rol creado en el catálogo solo cumple rutas que lo exijan por nombre exacto.
func TestRequireRole_RolPersonalizadoSinPrivilegios(t *testing.T) {
	env := newTestEnv(t)
	env.createUser(t, "auditora", "pw", "auditor")
	cookie := env.login(t, "auditora", "pw")

	assert.Equal(t, http.StatusForbidden, env.get(t, "/dashboard/users/new", cookie).StatusCode)

	req := httptest.NewRequest(http.MethodGet, "/roles", nil)
	req.Header.Set(fiber.HeaderAccept, fiber.MIMEApplicationJSON)
	resp := env.do(t, req, cookie)
	assert.Equal(t, http.StatusForbidden, resp.StatusCode)
	assert.Contains(t, bodyString(t, resp), "FORBIDDEN")
}
