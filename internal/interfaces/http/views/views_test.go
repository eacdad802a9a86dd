package views

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRender_EscapaContenido(t *testing.T) {
	e, err := New()
	require.NoError(t, err)

	var buf bytes.Buffer
	err = e.Render(&buf, "error", map[string]interface{}{
		"Title":   "Error",
		"Status":  404,
		"Detail":  "<script>alert(1)</script>",
	})
	require.NoError(t, err)
	assert.Contains(t, buf.String(), "&lt;script&gt;")
	assert.NotContains(t, buf.String(), "<script>alert(1)</script>")
}

func TestRender_PaginaInexistente(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	assert.Error(t, e.Render(&bytes.Buffer{}, "no-existe", nil))
}

func TestLoad_CompilaTodasLasPaginas(t *testing.T) {
	e, err := New()
	require.NoError(t, err)
	for _, name := range []string{"login", "register", "dashboard", "users", "user_form", "roles", "settings", "error"} {
		_, ok := e.pages[name]
		assert.True(t, ok, "falta la página %s", name)
	}
}
